package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 3
	DefaultDelay       = 500 * time.Millisecond
)

// ErrExhausted marks an error returned after every attempt failed.
var ErrExhausted = errors.New("retry attempts exhausted")

// Policy retries an operation a bounded number of times with a fixed delay
// between attempts. Only errors accepted by Retryable are retried; any other
// error is returned as soon as it is seen.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	Retryable   func(error) bool
	Logger      *zap.SugaredLogger
	// OnRetry is called before sleeping ahead of another attempt.
	OnRetry func(op string, attempt int, err error)
}

// Default returns the policy used for every read against the ledger node.
func Default(logger *zap.SugaredLogger) Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		Delay:       DefaultDelay,
		Retryable:   Transient,
		Logger:      logger,
	}
}

// Do runs fn until it succeeds, returns a non-retryable error, the context is
// done, or the attempts run out.
func (p Policy) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}

		if ctx.Err() != nil {
			return err
		}

		if !p.retryable(err) {
			return err
		}

		if attempt == maxAttempts {
			break
		}

		if p.Logger != nil {
			p.Logger.Warnw("remote call failed, retrying",
				"op", op,
				"attempt", attempt,
				"max_attempts", maxAttempts,
				"delay", p.Delay,
				"error", err)
		}
		if p.OnRetry != nil {
			p.OnRetry(op, attempt, err)
		}

		if sleepErr := sleep(ctx, p.Delay); sleepErr != nil {
			return fmt.Errorf("%s interrupted: %w", op, errors.Join(sleepErr, err))
		}
	}

	return fmt.Errorf("%s: %w after %d attempts: %w", op, ErrExhausted, maxAttempts, err)
}

func (p Policy) retryable(err error) bool {
	if p.Retryable == nil {
		return Transient(err)
	}
	return p.Retryable(err)
}

// Value is Do for operations that produce a result.
func Value[T any](ctx context.Context, p Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := p.Do(ctx, op, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}

// Transient reports whether err is a connectivity failure that happened
// before a response was received: refused or reset connections, DNS and
// dial errors, timeouts, and bodies cut short in transit. A *url.Error only
// counts when its cause does; a bad scheme or malformed URL fails the same
// way on every attempt.
func Transient(err error) bool {
	if err == nil {
		return false
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		err = urlErr.Err
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
