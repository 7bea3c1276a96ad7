// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/beyond-client/models"
)

var (
	ErrNetwork           = errors.New("network error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrEmptyAddress      = errors.New("empty address")
	ErrInvalidAddress    = errors.New("address must include host and scheme")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx answer from the API. Code and Message are empty when
// the body carried no recognisable error object.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []models.ErrorDetail
}

func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

// Unwrap returns the sentinel for the status code.
func (e *APIError) Unwrap() error {
	return statusSentinel(e.StatusCode)
}

// HasBody reports whether the server sent its own error message.
func (e *APIError) HasBody() bool {
	return e.Message != ""
}

// Model returns the error as the wire-level object.
func (e *APIError) Model() *models.APIError {
	return &models.APIError{Code: e.Code, Message: e.Message, Details: e.Details}
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}
