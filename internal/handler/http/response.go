// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/utils"
	"github.com/MKhiriev/beyond-client/internal/validators"
	"github.com/MKhiriev/beyond-client/models"
)

type successBody struct {
	Success bool         `json:"success"`
	Data    any          `json:"data"`
	Message string       `json:"message"`
	Meta    *models.Meta `json:"meta"`
}

type detailBody struct {
	Detail any `json:"detail"`
}

type detailError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type validationItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, data any, message string, meta *models.Meta) {
	writeBody(w, r, status, successBody{Success: true, Data: data, Message: message, Meta: meta})
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeBody(w, r, status, detailBody{Detail: detailError{Code: code, Message: message}})
}

func writeDetailText(w http.ResponseWriter, r *http.Request, status int, text string) {
	writeBody(w, r, status, detailBody{Detail: text})
}

func writeValidationError(w http.ResponseWriter, r *http.Request, location string, verr *validators.ValidationError) {
	items := make([]validationItem, 0, len(verr.Details))
	for _, d := range verr.Details {
		items = append(items, validationItem{Loc: []string{location, d.Field}, Msg: d.Message, Type: "value_error"})
	}
	writeBody(w, r, http.StatusUnprocessableEntity, detailBody{Detail: items})
}

func writeBody(w http.ResponseWriter, r *http.Request, status int, body any) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeBody reads a JSON request body into out. A malformed body gives a
// 422 response and false.
func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid request body")
		writeBody(w, r, http.StatusUnprocessableEntity, detailBody{Detail: []validationItem{{
			Loc:  []string{"body"},
			Msg:  "invalid JSON body",
			Type: "value_error.jsondecode",
		}}})
		return false
	}
	return true
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeDetailText(w, r, http.StatusNotFound, "Not Found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeDetailText(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
}
