// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/beyond-client/internal/logger"
)

// DefaultRevalidateInterval is used by Start when no interval is given.
const DefaultRevalidateInterval = 5 * time.Minute

type sessionWatchJob struct {
	session SessionService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionWatchJob creates a job that calls session.Refresh on a ticker.
// The job is idle until Start is called.
func NewSessionWatchJob(session SessionService, log *logger.Logger) SessionWatchJob {
	return &sessionWatchJob{session: session, logger: log.WithComponent("session_watch")}
}

// Start implements [SessionWatchJob]. It stops any previously running job,
// then launches a background goroutine that refreshes the session every
// interval. A zero or negative interval means [DefaultRevalidateInterval].
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *sessionWatchJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRevalidateInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Dur("interval", interval).Msg("session watch started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.session.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements [SessionWatchJob]. It is a no-op when the job is not
// running.
func (j *sessionWatchJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
