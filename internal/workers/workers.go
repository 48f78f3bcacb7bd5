// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// Workers runs a fixed set of workers, each in its own goroutine, sharing one
// cancellable context.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	group  *errgroup.Group
	cancel context.CancelFunc

	logger *logger.Logger
}

// NewWorkers returns a stopped aggregate of ws.
func NewWorkers(logger *logger.Logger, ws ...Worker) *Workers {
	return &Workers{
		workers: ws,
		logger:  logger,
	}
}

// Start launches every worker under a context derived from ctx. Calling Start
// on running workers is a no-op.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.group != nil {
		return
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.group, ctx = errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		w.group.Go(func() error {
			return worker.Run(ctx)
		})
	}

	w.logger.Debug().Int("count", len(w.workers)).Msg("workers started")
}

// Stop cancels the workers and waits until all of them have returned. It
// reports the first worker error. Stop without Start returns nil.
func (w *Workers) Stop() error {
	w.mu.Lock()
	group, cancel := w.group, w.cancel
	w.group, w.cancel = nil, nil
	w.mu.Unlock()

	if group == nil {
		return nil
	}

	cancel()
	err := group.Wait()
	if err != nil {
		w.logger.Error().Err(err).Msg("worker failed")
	}

	w.logger.Debug().Msg("workers stopped")
	return err
}
