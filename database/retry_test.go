package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func fastRetry() RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.InitialDelay = time.Millisecond
	cfg.MaxDelay = 2 * time.Millisecond
	return cfg
}

func TestRetryWithBackoffRetriesTransientErrors(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), fastRetry(), func() error {
		calls++
		if calls < 3 {
			return errors.New("connection reset by peer")
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestRetryWithBackoffStopsOnPermanentErrors(t *testing.T) {
	calls := 0
	perm := &pgconn.PgError{Code: "23505"}
	err := RetryWithBackoff(context.Background(), fastRetry(), func() error {
		calls++
		return perm
	})
	if !errors.Is(err, perm) || calls != 1 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestIsRetryableError(t *testing.T) {
	if !isRetryableError(&pgconn.PgError{Code: "40001"}) {
		t.Error("serialization failure should retry")
	}
	if isRetryableError(nil) {
		t.Error("nil should not retry")
	}
	if isRetryableError(context.Canceled) {
		t.Error("cancellation should not retry")
	}
	if !isRetryableError(errors.New("read tcp: EOF")) {
		t.Error("EOF should retry")
	}
}

func TestRetryWithBackoffGivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), fastRetry(), func() error {
		calls++
		return errors.New("i/o timeout")
	})
	if err == nil || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}
