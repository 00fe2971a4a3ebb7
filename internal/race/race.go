// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package race

import (
	"context"
	"time"
)

// Operation is a unit of work taking part in a race.
type Operation[T any] func(ctx context.Context) (T, error)

type outcome[T any] struct {
	value T
	err   error
}

func start[T any](ctx context.Context, ops []Operation[T]) <-chan outcome[T] {
	// buffered so that losing goroutines never block on send
	results := make(chan outcome[T], len(ops))
	for _, op := range ops {
		go func() {
			value, err := op(ctx)
			results <- outcome[T]{value: value, err: err}
		}()
	}
	return results
}

// FirstResolved returns the outcome of the first operation to finish,
// whether it succeeded or failed. The remaining operations are cancelled.
func FirstResolved[T any](ctx context.Context, ops ...Operation[T]) (T, error) {
	var zero T
	if len(ops) == 0 {
		return zero, ErrNoOperations
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	select {
	case res := <-start(ctx, ops):
		return res.value, res.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// FirstSuccess returns the value of the first operation that succeeds. The
// second result is false when every operation failed or ctx ended first.
func FirstSuccess[T any](ctx context.Context, ops ...Operation[T]) (T, bool) {
	var zero T
	if len(ops) == 0 {
		return zero, false
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := start(ctx, ops)
	for range ops {
		select {
		case res := <-results:
			if res.err == nil {
				return res.value, true
			}
		case <-ctx.Done():
			return zero, false
		}
	}
	return zero, false
}

// WithTimeout races op against a timer. If d elapses first the result is
// ErrTimeout and op's context is cancelled.
func WithTimeout[T any](ctx context.Context, d time.Duration, op Operation[T]) (T, error) {
	return FirstResolved(ctx, op, delay[T](d))
}

func delay[T any](d time.Duration) Operation[T] {
	return func(ctx context.Context) (T, error) {
		var zero T
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			return zero, ErrTimeout
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}
