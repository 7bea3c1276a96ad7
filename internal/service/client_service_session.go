// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/beyond-client/internal/adapter"
	"github.com/MKhiriev/beyond-client/internal/logger"
	"github.com/MKhiriev/beyond-client/internal/store"
	"github.com/MKhiriev/beyond-client/internal/utils"
	"github.com/MKhiriev/beyond-client/models"
)

var _ SessionService = (*SessionManager)(nil)

// SessionManager owns the client's authentication state: it hydrates the
// session from the stored access token, logs in, registers and logs out.
//
// Every operation takes a generation number when it starts. State changes
// (and the token store writes that go with them) are applied only when their
// generation is not older than the last applied one, so a slow result never
// overwrites a newer one.
type SessionManager struct {
	adapter adapter.ServerAdapter
	tokens  store.TokenStore
	logger  *logger.Logger

	mu         sync.Mutex
	state      models.SessionState
	issued     uint64
	applied    uint64
	errApplied uint64
	observers  []func(models.SessionState)

	notifyMu   sync.Mutex
	loaded     chan struct{}
	loadedOnce sync.Once

	opsMu    sync.Mutex
	inflight int
	idle     chan struct{} // closed when inflight drops to zero
}

// NewSessionManager returns a manager in the loading state and starts the
// initial hydration in the background. Hydration stops early when ctx is
// cancelled.
func NewSessionManager(ctx context.Context, serverAdapter adapter.ServerAdapter, tokens store.TokenStore, log *logger.Logger) *SessionManager {
	m := &SessionManager{
		adapter: serverAdapter,
		tokens:  tokens,
		logger:  log.WithComponent("session"),
		state:   models.SessionState{IsLoading: true},
		loaded:  make(chan struct{}),
	}

	gen := m.begin()
	done := m.track()
	go func() {
		defer done()
		m.hydrate(ctx, gen)
	}()

	return m
}

// State implements [SessionService].
func (m *SessionManager) State() models.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.Clone()
}

// Status returns the state machine label of the current session.
func (m *SessionManager) Status() models.SessionStatus {
	return m.State().Status()
}

// Loaded implements [SessionService].
func (m *SessionManager) Loaded() <-chan struct{} {
	return m.loaded
}

// OnChange implements [SessionService]. fn is called outside the manager's
// lock with the state current at the time of the call.
func (m *SessionManager) OnChange(fn func(models.SessionState)) {
	if fn == nil {
		return
	}

	m.mu.Lock()
	m.observers = append(m.observers, fn)
	m.mu.Unlock()
}

// Refresh implements [SessionService]. It has the same contract as the
// initial hydration.
func (m *SessionManager) Refresh(ctx context.Context) {
	defer m.track()()
	m.hydrate(ctx, m.begin())
}

// Wait blocks until no operation, including the initial hydration, is in
// flight, or until ctx is done. Callers use it before closing the token
// store.
func (m *SessionManager) Wait(ctx context.Context) error {
	m.opsMu.Lock()
	if m.inflight == 0 {
		m.opsMu.Unlock()
		return nil
	}
	idle := m.idle
	m.opsMu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login implements [SessionService]. On success the token pair is persisted
// and the user is hydrated with the same generation; Login reports success
// even if that hydration fails.
func (m *SessionManager) Login(ctx context.Context, email, password string) error {
	defer m.track()()
	gen := m.begin()
	m.setLastError(gen, "")

	pair, err := m.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		opErr := mapAdapterError(ErrLoginFailed, MsgLoginFailed, err)
		m.logger.Debug().Err(err).
			Str("func", "SessionManager.Login").
			Str("message", opErr.Message).
			Msg("login rejected")
		m.setLastError(gen, opErr.Message)
		return opErr
	}

	applied, err := m.commit(gen, func(_ *models.SessionState) error {
		return m.tokens.SavePair(ctx, pair)
	})
	if err != nil {
		m.logger.Err(err).Str("func", "SessionManager.Login").Msg("failed to persist token pair")
		m.setLastError(gen, MsgLoginFailed)
		return &OperationError{Op: ErrLoginFailed, Message: MsgLoginFailed, Err: err}
	}
	if !applied {
		return nil
	}

	m.logTokenInfo(pair.AccessToken)
	m.fetchUser(ctx, gen, pair.AccessToken)

	return nil
}

// Register implements [SessionService]. It never changes the authentication
// state or the token store.
func (m *SessionManager) Register(ctx context.Context, email, password, name string) error {
	defer m.track()()
	gen := m.begin()
	m.setLastError(gen, "")

	err := m.adapter.Register(ctx, models.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		opErr := mapAdapterError(ErrRegistrationFailed, MsgRegistrationFailed, err)
		m.logger.Debug().Err(err).
			Str("func", "SessionManager.Register").
			Str("message", opErr.Message).
			Msg("registration rejected")
		m.setLastError(gen, opErr.Message)
		return opErr
	}

	return nil
}

// Logout implements [SessionService]. The remote call is best-effort: the
// tokens are cleared and the state reset whatever it returns.
func (m *SessionManager) Logout(ctx context.Context) {
	defer m.track()()
	gen := m.begin()

	token, err := m.tokens.AccessToken(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Str("func", "SessionManager.Logout").Msg("failed to read access token")
	}
	if token != "" {
		if err = m.adapter.Logout(ctx, token); err != nil {
			m.logger.Warn().Err(err).Str("func", "SessionManager.Logout").Msg("remote logout failed, logging out locally")
		}
	}

	// ctx may already be cancelled here; the local logout still has to happen
	m.commitAnonymous(context.WithoutCancel(ctx), gen, "SessionManager.Logout")
}

// hydrate reads the stored access token and resolves it to a user.
func (m *SessionManager) hydrate(ctx context.Context, gen uint64) {
	token, err := m.tokens.AccessToken(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Warn().Err(err).Str("func", "SessionManager.hydrate").Msg("failed to read access token")
		m.commitAnonymous(ctx, gen, "SessionManager.hydrate")
		return
	}

	if token == "" {
		_, _ = m.commit(gen, func(s *models.SessionState) error {
			s.SetAnonymous()
			return nil
		})
		return
	}

	m.logTokenInfo(token)
	m.fetchUser(ctx, gen, token)
}

// fetchUser runs the success path of hydration for token.
func (m *SessionManager) fetchUser(ctx context.Context, gen uint64, token string) {
	user, err := m.adapter.Me(ctx, token)
	if err != nil {
		if ctx.Err() != nil {
			m.logger.Debug().Err(err).Str("func", "SessionManager.fetchUser").Msg("hydration cancelled")
			return
		}
		m.logger.Warn().Err(err).Str("func", "SessionManager.fetchUser").Msg("session hydration failed, falling back to anonymous")
		m.commitAnonymous(ctx, gen, "SessionManager.fetchUser")
		return
	}

	_, _ = m.commit(gen, func(s *models.SessionState) error {
		s.SetUser(user)
		return nil
	})
}

// commitAnonymous clears the token pair and resets the session. A failure
// to clear the store is logged and does not prevent the reset.
func (m *SessionManager) commitAnonymous(ctx context.Context, gen uint64, funcName string) {
	_, _ = m.commit(gen, func(s *models.SessionState) error {
		if err := m.tokens.ClearPair(ctx); err != nil {
			m.logger.Warn().Err(err).Str("func", funcName).Msg("failed to clear token pair")
		}
		s.SetAnonymous()
		return nil
	})
}

// track marks an operation as in flight until the returned func is called.
func (m *SessionManager) track() func() {
	m.opsMu.Lock()
	if m.inflight == 0 {
		m.idle = make(chan struct{})
	}
	m.inflight++
	m.opsMu.Unlock()

	return func() {
		m.opsMu.Lock()
		m.inflight--
		if m.inflight == 0 {
			close(m.idle)
		}
		m.opsMu.Unlock()
	}
}

func (m *SessionManager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.issued++
	return m.issued
}

// commit runs fn against a copy of the state if gen is still current. The
// copy replaces the state only when fn succeeds. It reports whether the
// result was applied.
func (m *SessionManager) commit(gen uint64, fn func(s *models.SessionState) error) (bool, error) {
	m.mu.Lock()
	if gen < m.applied {
		m.mu.Unlock()
		m.logger.Debug().
			Str("func", "SessionManager.commit").
			Uint64("generation", gen).
			Msg("discarding stale result")
		return false, nil
	}

	next := m.state.Clone()
	if err := fn(&next); err != nil {
		m.mu.Unlock()
		return false, err
	}
	m.applied = gen
	m.state = next
	m.mu.Unlock()

	m.notify()
	return true, nil
}

// setLastError records msg as the error of the attempt gen, unless a newer
// attempt already wrote one.
func (m *SessionManager) setLastError(gen uint64, msg string) {
	m.mu.Lock()
	if gen < m.errApplied {
		m.mu.Unlock()
		return
	}
	m.errApplied = gen
	changed := m.state.LastError != msg
	m.state.LastError = msg
	m.mu.Unlock()

	if changed {
		m.notify()
	}
}

func (m *SessionManager) notify() {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	state := m.state.Clone()
	observers := make([]func(models.SessionState), len(m.observers))
	copy(observers, m.observers)
	m.mu.Unlock()

	if !state.IsLoading {
		m.loadedOnce.Do(func() { close(m.loaded) })
	}

	for _, fn := range observers {
		fn(state)
	}
}

// logTokenInfo logs what the access token claims about itself. Tokens that
// are not JWTs are only opaque strings to the client, so a parse failure is
// not an error.
func (m *SessionManager) logTokenInfo(token string) {
	info, err := utils.ParseUnverifiedClaims(token)
	if err != nil {
		return
	}

	m.logger.Debug().
		Str("func", "SessionManager.logTokenInfo").
		Str("subject", info.Subject).
		Time("expires_at", info.ExpiresAt).
		Bool("expired", info.Expired(time.Now())).
		Msg("using access token")
}
