package playback

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// Session drives the progress flow for one playback lifetime. It owns the
// mutable cells the hosted web client kept in refs (latest observed time,
// reported duration), so teardown always flushes current values rather than
// ones captured at subscription time.
//
// Three kinds of saves happen over a session:
//   - one immediate save at t=0 when Run starts, so the title appears in
//     "Continue Watching" as soon as playback opens
//   - one save per throttle threshold crossing
//   - one unconditional flush of the latest observed position at teardown,
//     when any forward progress was seen
type Session struct {
	target   Target
	reporter *Reporter
	throttle *Throttle
	logger   *log.Logger

	mu          sync.Mutex
	currentTime float64
	duration    float64
}

// NewSession creates a playback session for the given target. The target must
// carry the user id explicitly; the initial save fires before any broader
// session state could be consulted.
func NewSession(target Target, reporter *Reporter, throttle *Throttle, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		target:   target,
		reporter: reporter,
		throttle: throttle,
		logger:   logger,
	}
}

// Run consumes player messages until the channel closes or the context is
// canceled, then performs the teardown flush. The initial t=0 save fires
// before the first message is read.
func (s *Session) Run(ctx context.Context, events <-chan Message) {
	s.logger.Debug("initial history save", "movie", s.target.MovieID)
	s.reporter.Report(ctx, s.target, 0, s.snapshotDuration())

	defer s.flush()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-events:
			if !ok {
				return
			}
			s.handle(ctx, msg)
		}
	}
}

// Handle processes a single validated player message outside Run, for callers
// that drive the loop themselves.
func (s *Session) handle(ctx context.Context, msg Message) {
	switch msg.Type {
	case TypeMediaData:
		s.mu.Lock()
		s.duration = msg.MediaData.Duration
		s.mu.Unlock()

	case TypePlayerEvent:
		if msg.PlayerEvent.Event != EventTimeUpdate {
			return
		}
		t := msg.PlayerEvent.CurrentTime

		s.mu.Lock()
		s.currentTime = t
		duration := s.duration
		save := s.throttle.Observe(t)
		s.mu.Unlock()

		if save {
			s.logger.Debug("saving progress", "currentTime", t)
			s.reporter.Report(ctx, s.target, t, duration)
		}
	}
}

// flush performs the teardown save of the last known position. The write uses
// a fresh context: the session's own context is typically canceled by the
// time teardown runs.
func (s *Session) flush() {
	s.mu.Lock()
	t, duration := s.currentTime, s.duration
	s.mu.Unlock()

	if t <= 0 {
		return
	}
	s.logger.Debug("saving progress on teardown", "currentTime", t)
	s.reporter.Report(context.Background(), s.target, t, duration)
}

func (s *Session) snapshotDuration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// Position returns the latest observed playback position.
func (s *Session) Position() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTime
}
