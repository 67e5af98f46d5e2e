// Package scheduler runs the automated content generation loop: one
// generation cycle immediately on start, then one per interval, rotating
// through languages. Cycles never overlap; a tick that fires while a cycle
// is still running is dropped.
package scheduler

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"
)

// ErrAlreadyRunning is returned by Start when the scheduler is active.
var ErrAlreadyRunning = errors.New("scheduler is already running")

// Cycle post volume when no explicit count is pinned.
const (
	minPostsPerCycle = 15
	maxPostsPerCycle = 25
)

var languageRotation = []string{"english", "hindi", "global"}

// GenerateFunc produces count posts in a language and reports how many were
// actually stored.
type GenerateFunc func(ctx context.Context, language string, count int) (int, error)

// Scheduler drives periodic content generation
type Scheduler struct {
	generate GenerateFunc

	mu       sync.Mutex
	running  bool
	interval time.Duration
	posts    int // 0 = random 15-25 per cycle
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates a stopped Scheduler
func New(generate GenerateFunc) *Scheduler {
	return &Scheduler{generate: generate}
}

// Start launches the generation loop. posts pins the per-cycle count;
// 0 picks a random count each cycle.
func (s *Scheduler) Start(interval time.Duration, posts int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}
	if interval <= 0 {
		return errors.New("interval must be positive")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.running = true
	s.interval = interval
	s.posts = posts
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, interval, posts, s.done)
	log.Printf("Scheduler started with interval %s", interval)
	return nil
}

// Stop cancels the loop and waits for any in-flight cycle to finish
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	log.Println("Scheduler stopped.")
}

// Status reports whether the loop is running and its interval
func (s *Scheduler) Status() (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running, s.interval
}

func (s *Scheduler) run(ctx context.Context, interval time.Duration, posts int, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	cycle := 0
	s.runCycle(ctx, cycle, posts)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cycle++
			s.runCycle(ctx, cycle, posts)
			// Drop any tick queued while the cycle ran, so cycles
			// never pile up behind a slow generation.
			select {
			case <-ticker.C:
			default:
			}
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context, cycle, posts int) {
	language := languageRotation[cycle%len(languageRotation)]
	count := posts
	if count <= 0 {
		count = minPostsPerCycle + rand.Intn(maxPostsPerCycle-minPostsPerCycle+1)
	}

	log.Printf("Auto content generation: cycle %d, %d posts in %s", cycle, count, language)
	stored, err := s.generate(ctx, language, count)
	if err != nil {
		log.Printf("Generation cycle failed: %v", err)
		return
	}
	log.Printf("Successfully generated %d posts", stored)
}
