package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestStartRunsImmediateCycle(t *testing.T) {
	cycles := make(chan string, 10)
	s := New(func(ctx context.Context, language string, count int) (int, error) {
		cycles <- language
		return count, nil
	})

	if err := s.Start(time.Hour, 3); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()

	select {
	case language := <-cycles:
		if language != "english" {
			t.Errorf("first cycle should be english, got %q", language)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no generation cycle ran after Start")
	}
}

func TestLanguageRotation(t *testing.T) {
	cycles := make(chan string, 10)
	s := New(func(ctx context.Context, language string, count int) (int, error) {
		cycles <- language
		return count, nil
	})

	if err := s.Start(20*time.Millisecond, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()

	want := []string{"english", "hindi", "global", "english"}
	for i, expected := range want {
		select {
		case language := <-cycles:
			if language != expected {
				t.Errorf("cycle %d: expected %q, got %q", i, expected, language)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("cycle %d never ran", i)
		}
	}
}

func TestStartWhileRunningFails(t *testing.T) {
	s := New(func(ctx context.Context, language string, count int) (int, error) {
		return count, nil
	})

	if err := s.Start(time.Hour, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()

	if err := s.Start(time.Hour, 1); err != ErrAlreadyRunning {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestStartRejectsNonPositiveInterval(t *testing.T) {
	s := New(func(ctx context.Context, language string, count int) (int, error) {
		return count, nil
	})
	if err := s.Start(0, 1); err == nil {
		t.Error("expected error for zero interval")
		s.Stop()
	}
}

func TestStopWaitsForInFlightCycle(t *testing.T) {
	var calls int32
	s := New(func(ctx context.Context, language string, count int) (int, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return count, nil
	})

	if err := s.Start(time.Hour, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Stop()

	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("expected exactly one cycle, got %d", calls)
	}

	running, _ := s.Status()
	if running {
		t.Error("scheduler should report stopped after Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s := New(func(ctx context.Context, language string, count int) (int, error) {
		return count, nil
	})
	s.Stop() // never started

	if err := s.Start(time.Hour, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Stop()
	s.Stop()
}

func TestStatusReportsInterval(t *testing.T) {
	s := New(func(ctx context.Context, language string, count int) (int, error) {
		return count, nil
	})

	if running, _ := s.Status(); running {
		t.Error("new scheduler should not be running")
	}

	if err := s.Start(42*time.Minute, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Stop()

	running, interval := s.Status()
	if !running {
		t.Error("scheduler should report running")
	}
	if interval != 42*time.Minute {
		t.Errorf("expected 42m interval, got %s", interval)
	}
}

func TestRestartAfterStop(t *testing.T) {
	cycles := make(chan struct{}, 10)
	s := New(func(ctx context.Context, language string, count int) (int, error) {
		cycles <- struct{}{}
		return count, nil
	})

	if err := s.Start(time.Hour, 1); err != nil {
		t.Fatalf("first Start failed: %v", err)
	}
	<-cycles
	s.Stop()

	if err := s.Start(time.Hour, 1); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	defer s.Stop()

	select {
	case <-cycles:
	case <-time.After(2 * time.Second):
		t.Fatal("no cycle after restart")
	}
}
