package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"navlend-backend/internal/usecase/compliance"
)

type countingChecker struct {
	runs atomic.Int64
}

func (c *countingChecker) CheckDue(ctx context.Context, asOf time.Time) ([]compliance.CheckResult, error) {
	c.runs.Add(1)
	return []compliance.CheckResult{{CovenantID: "c1", Status: "compliant"}}, nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestScheduler_RunsImmediatelyAndPerInterval(t *testing.T) {
	checker := &countingChecker{}
	s := New(checker, 20*time.Millisecond, discard())

	s.Start(context.Background())
	deadline := time.After(2 * time.Second)
	for checker.runs.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("runs = %d after 2s, want >= 3", checker.runs.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	s.Stop()
}

func TestScheduler_StopHaltsTheLoop(t *testing.T) {
	checker := &countingChecker{}
	s := New(checker, 10*time.Millisecond, discard())

	s.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	s.Stop()

	after := checker.runs.Load()
	time.Sleep(50 * time.Millisecond)
	if got := checker.runs.Load(); got != after {
		t.Errorf("runs advanced after Stop: %d -> %d", after, got)
	}
}

func TestScheduler_ParentContextCancellation(t *testing.T) {
	checker := &countingChecker{}
	s := New(checker, 10*time.Millisecond, discard())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(15 * time.Millisecond)
	cancel()
	s.Stop() // must not hang after parent cancellation

	if checker.runs.Load() == 0 {
		t.Error("expected at least the immediate run")
	}
}
