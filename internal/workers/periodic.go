// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"
)

// Task is one unit of periodic work. Its context expires after one interval.
type Task func(ctx context.Context)

// Periodic is a [Worker] calling a task every interval.
type Periodic struct {
	interval time.Duration
	task     Task
}

// NewPeriodic returns a worker running task every interval. The first call
// happens one interval after Run starts.
func NewPeriodic(interval time.Duration, task Task) *Periodic {
	return &Periodic{
		interval: interval,
		task:     task,
	}
}

// Run ticks until ctx is done and always returns nil.
func (p *Periodic) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			taskCtx, cancel := context.WithTimeout(ctx, p.interval)
			p.task(taskCtx)
			cancel()
		}
	}
}
