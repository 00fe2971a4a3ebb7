// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"
)

// TickFunc is called by TOTPTicker with the time of the tick.
type TickFunc func(ctx context.Context, now time.Time) error

// TOTPTicker calls a function once on start and then at every boundary of a
// TOTP period, i.e. whenever the codes of that period change.
type TOTPTicker struct {
	period time.Duration
	tick   TickFunc
	now    func() time.Time
}

// NewTOTPTicker builds a ticker for period. A non-positive period falls back
// to the default TOTP period of 30 seconds.
func NewTOTPTicker(period time.Duration, tick TickFunc) *TOTPTicker {
	if period <= 0 {
		period = 30 * time.Second
	}
	return &TOTPTicker{period: period, tick: tick, now: time.Now}
}

// Run implements Worker.
func (t *TOTPTicker) Run(ctx context.Context) error {
	if err := t.tick(ctx, t.now()); err != nil {
		return err
	}

	timer := time.NewTimer(t.untilNextBoundary())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			if err := t.tick(ctx, t.now()); err != nil {
				return err
			}
			timer.Reset(t.untilNextBoundary())
		}
	}
}

func (t *TOTPTicker) untilNextBoundary() time.Duration {
	now := t.now()
	p := int64(t.period)
	next := (now.UnixNano()/p + 1) * p
	return time.Unix(0, next).Sub(now)
}
