// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/beyond-client/models"
	"github.com/go-resty/resty/v2"
)

// errorBody covers both error shapes the API produces: the envelope form
// {"success":false,"error":{...}} and the framework form {"detail": ...}.
type errorBody struct {
	Error  *models.APIError `json:"error"`
	Detail json.RawMessage  `json:"detail"`
}

type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if e := parseErrorBody(resp.Body()); e != nil {
		apiErr.Code = e.Code
		apiErr.Message = e.Message
		apiErr.Details = e.Details
	}

	return apiErr
}

func parseErrorBody(body []byte) *models.APIError {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return nil
	}
	if eb.Error != nil && (eb.Error.Code != "" || eb.Error.Message != "") {
		return eb.Error
	}

	return parseDetail(eb.Detail)
}

func parseDetail(raw json.RawMessage) *models.APIError {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	switch raw[0] {
	case '{':
		var e models.APIError
		if err := json.Unmarshal(raw, &e); err != nil || (e.Code == "" && e.Message == "") {
			return nil
		}
		return &e
	case '"':
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil || msg == "" {
			return nil
		}
		return &models.APIError{Message: msg}
	case '[':
		var items []validationItem
		if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
			return nil
		}
		e := &models.APIError{Code: "VALIDATION_ERROR", Message: items[0].Msg}
		for _, it := range items {
			e.Details = append(e.Details, models.ErrorDetail{Field: fieldFromLoc(it.Loc), Message: it.Msg})
		}
		return e
	}

	return nil
}

// fieldFromLoc turns ["body","email"] into "email"; the leading location
// segment is dropped when more than one segment is present.
func fieldFromLoc(loc []any) string {
	if len(loc) > 1 {
		loc = loc[1:]
	}
	parts := make([]string, 0, len(loc))
	for _, p := range loc {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ".")
}
