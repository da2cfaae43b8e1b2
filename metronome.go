package main

import (
	"context"
	"sync/atomic"
	"time"
)

type Metronome struct {
	schedule *Schedule
	sinks    []TickSink
	// limit stops the metronome after that many ticks; 0 runs until the
	// context ends.
	limit  uint
	paused atomic.Bool
}

func NewMetronome(s *Schedule, limit uint, sinks ...TickSink) *Metronome {
	return &Metronome{schedule: s, sinks: sinks, limit: limit}
}

// TogglePause pauses or resumes counting and reports whether the metronome
// is now paused. Paused ticks are dropped, so counting resumes where it
// stopped.
func (m *Metronome) TogglePause() bool {
	for {
		old := m.paused.Load()
		if m.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (m *Metronome) Paused() bool {
	return m.paused.Load()
}

// Run clicks the first tick right away and one more for every value read
// from ticks. It returns the number of ticks counted.
func (m *Metronome) Run(ctx context.Context, ticks <-chan time.Time) (uint, error) {
	var tick uint
	emit := func() error {
		level := m.schedule.Level(tick)
		for _, sink := range m.sinks {
			if err := sink.Tick(tick, level); err != nil {
				return err
			}
		}
		tick++
		return nil
	}

	if err := emit(); err != nil {
		return tick, err
	}
	for {
		if m.limit > 0 && tick >= m.limit {
			return tick, nil
		}
		select {
		case <-ctx.Done():
			return tick, nil
		case _, ok := <-ticks:
			if !ok {
				return tick, nil
			}
			if m.paused.Load() {
				continue
			}
			if err := emit(); err != nil {
				return tick, err
			}
		}
	}
}

const maxDrift = 10 * time.Millisecond

func drifted(now, expected time.Time) bool {
	drift := now.Sub(expected)
	return drift > maxDrift || drift < -maxDrift
}

// StartTicker feeds a ticker at interval into out, resetting it whenever it drifts
// more than maxDrift from the expected time.
func StartTicker(ctx context.Context, interval time.Duration) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		nextTick := time.Now().Add(interval)
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if drifted(now, nextTick) {
					ticker.Reset(interval)
					nextTick = now
				}
				nextTick = nextTick.Add(interval)

				select {
				case out <- now:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
