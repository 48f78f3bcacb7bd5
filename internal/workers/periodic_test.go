// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodic_RunsTaskUntilCancelled(t *testing.T) {
	calls := make(chan struct{}, 10)
	p := NewPeriodic(5*time.Millisecond, func(context.Context) {
		select {
		case calls <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("task was never run")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPeriodic_TaskContextHasDeadline(t *testing.T) {
	deadlines := make(chan bool, 1)
	p := NewPeriodic(5*time.Millisecond, func(ctx context.Context) {
		_, ok := ctx.Deadline()
		select {
		case deadlines <- ok:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = p.Run(ctx) }()

	select {
	case ok := <-deadlines:
		require.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("task was never run")
	}
}

func TestPeriodic_NoRunBeforeFirstInterval(t *testing.T) {
	called := make(chan struct{}, 1)
	p := NewPeriodic(time.Hour, func(context.Context) { called <- struct{}{} })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.NoError(t, p.Run(ctx))
	assert.Empty(t, called)
}
