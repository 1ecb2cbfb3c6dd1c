package services

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultPollInterval    = 5 * time.Second
	defaultPollMaxInterval = 80 * time.Second
	defaultPollTimeout     = 15 * time.Minute
)

// PollSettings bounds a wait on the platform's asynchronous state.
// Zero fields fall back to the defaults above.
type PollSettings struct {
	Interval    time.Duration
	MaxInterval time.Duration
	Timeout     time.Duration
}

func (p PollSettings) withDefaults() PollSettings {
	if p.Interval <= 0 {
		p.Interval = defaultPollInterval
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = defaultPollMaxInterval
	}
	if p.Timeout <= 0 {
		p.Timeout = defaultPollTimeout
	}
	return p
}

// pollUntil invokes check until it reports done, sleeping between
// rounds with exponential backoff from settings.Interval up to
// settings.MaxInterval. The wait ends with timeoutErr once
// settings.Timeout has elapsed, or with ctx.Err() when the context is
// cancelled. Errors from check abort the wait immediately.
func pollUntil(ctx context.Context, settings PollSettings, timeoutErr error, check func(context.Context) (bool, error)) error {
	settings = settings.withDefaults()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = settings.Interval
	bo.MaxInterval = settings.MaxInterval
	bo.MaxElapsedTime = settings.Timeout
	bo.Reset()

	for {
		done, err := check(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		next := bo.NextBackOff()
		if next == backoff.Stop {
			return timeoutErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}
	}
}
