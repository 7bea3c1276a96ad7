// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionStatus is the state-machine label of a session.
type SessionStatus string

const (
	SessionLoading       SessionStatus = "loading"
	SessionAuthenticated SessionStatus = "authenticated"
	SessionAnonymous     SessionStatus = "anonymous"
)

// SessionState is an immutable snapshot of the client's authentication
// state. IsAuthenticated is true iff User is non-nil.
type SessionState struct {
	// User is the record confirmed by the last successful /me call.
	User *User

	// IsAuthenticated mirrors User != nil.
	IsAuthenticated bool

	// IsLoading is true only until the initial hydration settles.
	IsLoading bool

	// LastError is the message of the most recent failed login or
	// registration attempt. It is cleared when a new attempt starts.
	LastError string
}

// Status derives the state-machine label from the snapshot.
func (s SessionState) Status() SessionStatus {
	switch {
	case s.IsLoading:
		return SessionLoading
	case s.IsAuthenticated:
		return SessionAuthenticated
	default:
		return SessionAnonymous
	}
}

// Clone returns a copy that shares no memory with s.
func (s SessionState) Clone() SessionState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// SetUser marks the session authenticated as user. Loading is over.
func (s *SessionState) SetUser(user User) {
	s.User = &user
	s.IsAuthenticated = true
	s.IsLoading = false
}

// SetAnonymous drops the user. Loading is over. LastError is kept.
func (s *SessionState) SetAnonymous() {
	s.User = nil
	s.IsAuthenticated = false
	s.IsLoading = false
}
