// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/beyond-client/internal/adapter"
)

// mapAdapterError translates an adapter failure of op (ErrLoginFailed or
// ErrRegistrationFailed) into an [*OperationError] carrying the message to
// show the user: the server's own message when it sent one, the generic
// network message for transport or decoding failures, and fallback otherwise.
func mapAdapterError(op error, fallback string, err error) *OperationError {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	switch {
	case errors.As(err, &apiErr):
		msg := fallback
		if apiErr.HasBody() {
			msg = apiErr.Message
		}
		return &OperationError{Op: op, Message: msg, Err: err}

	case errors.Is(err, adapter.ErrNetwork), errors.Is(err, adapter.ErrMalformedResponse):
		return &OperationError{Op: op, Message: MsgNetworkError, Err: errors.Join(ErrNetwork, err)}
	}

	return &OperationError{Op: op, Message: fallback, Err: err}
}
