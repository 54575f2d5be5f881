package playback

import (
	"context"
	"testing"
	"time"

	tu "github.com/streamix/streamix-cli/internal/testing"
)

func mediaData(duration float64) Message {
	return Message{Type: TypeMediaData, MediaData: &MediaData{Duration: duration}}
}

func timeUpdate(currentTime float64) Message {
	return Message{Type: TypePlayerEvent, PlayerEvent: &PlayerEvent{Event: EventTimeUpdate, CurrentTime: currentTime}}
}

func newTestSession(interactions *tu.MockInteractions) *Session {
	reporter := NewReporter(interactions, 0.9, nil)
	return NewSession(Target{UserID: "u1", MovieID: "m1"}, reporter, NewThrottle(15), nil)
}

func TestSession(t *testing.T) {
	t.Run("Run", func(t *testing.T) {
		t.Run("saves immediately on start", func(t *testing.T) {
			interactions := &tu.MockInteractions{}
			session := newTestSession(interactions)

			events := make(chan Message)
			close(events)
			session.Run(context.Background(), events)

			if len(interactions.UpdatedEntries) != 1 {
				t.Fatalf("expected one save, got %d", len(interactions.UpdatedEntries))
			}
			first := interactions.UpdatedEntries[0]
			if first.StartAt != 0 || first.UserID != "u1" {
				t.Errorf("expected a t=0 save with explicit user id, got %+v", first)
			}
		})

		t.Run("throttles periodic saves and flushes on teardown", func(t *testing.T) {
			interactions := &tu.MockInteractions{}
			session := newTestSession(interactions)

			events := make(chan Message, 8)
			events <- mediaData(100)
			events <- timeUpdate(10)   // below threshold
			events <- timeUpdate(16)   // save
			events <- timeUpdate(25)   // below threshold
			events <- timeUpdate(31.5) // save
			events <- timeUpdate(40)   // below threshold, flushed at teardown
			close(events)

			session.Run(context.Background(), events)

			saves := interactions.UpdatedEntries
			if len(saves) != 4 {
				t.Fatalf("expected 4 saves (start, two throttled, flush), got %d", len(saves))
			}
			positions := []float64{0, 16, 31.5, 40}
			for i, want := range positions {
				if saves[i].StartAt != want {
					t.Errorf("save %d: expected position %.1f, got %.1f", i, want, saves[i].StartAt)
				}
			}
			for _, save := range saves {
				if save.Duration != 0 && save.Duration != 100 {
					t.Errorf("unexpected duration %.1f", save.Duration)
				}
			}
		})

		t.Run("teardown flushes the latest position not a stale one", func(t *testing.T) {
			interactions := &tu.MockInteractions{}
			session := newTestSession(interactions)

			events := make(chan Message, 4)
			events <- mediaData(100)
			events <- timeUpdate(20) // save
			events <- timeUpdate(22) // only seen by the flush
			close(events)

			session.Run(context.Background(), events)

			last := interactions.UpdatedEntries[len(interactions.UpdatedEntries)-1]
			if last.StartAt != 22 {
				t.Errorf("expected flush at the latest position 22, got %.1f", last.StartAt)
			}
		})

		t.Run("no flush without forward progress", func(t *testing.T) {
			interactions := &tu.MockInteractions{}
			session := newTestSession(interactions)

			events := make(chan Message, 2)
			events <- mediaData(100)
			close(events)

			session.Run(context.Background(), events)

			if len(interactions.UpdatedEntries) != 1 {
				t.Errorf("expected only the start save, got %d", len(interactions.UpdatedEntries))
			}
		})

		t.Run("flush marks completion past the ratio", func(t *testing.T) {
			interactions := &tu.MockInteractions{}
			session := newTestSession(interactions)

			events := make(chan Message, 3)
			events <- mediaData(100)
			events <- timeUpdate(95)
			close(events)

			session.Run(context.Background(), events)

			last := interactions.UpdatedEntries[len(interactions.UpdatedEntries)-1]
			if !last.Completed {
				t.Error("expected completed flag at 95% on teardown")
			}
		})

		t.Run("context cancellation still flushes", func(t *testing.T) {
			interactions := &tu.MockInteractions{}
			session := newTestSession(interactions)

			ctx, cancel := context.WithCancel(context.Background())
			events := make(chan Message, 2)
			events <- timeUpdate(30)

			done := make(chan struct{})
			go func() {
				session.Run(ctx, events)
				close(done)
			}()

			for session.Position() != 30 {
				time.Sleep(time.Millisecond)
			}
			cancel()
			<-done

			last := interactions.UpdatedEntries[len(interactions.UpdatedEntries)-1]
			if last.StartAt != 30 {
				t.Errorf("expected flush at 30 after cancellation, got %.1f", last.StartAt)
			}
		})

		t.Run("ignores non-timeupdate events", func(t *testing.T) {
			interactions := &tu.MockInteractions{}
			session := newTestSession(interactions)

			events := make(chan Message, 3)
			events <- mediaData(100)
			events <- Message{Type: TypePlayerEvent, PlayerEvent: &PlayerEvent{Event: "pause", CurrentTime: 50}}
			close(events)

			session.Run(context.Background(), events)

			if len(interactions.UpdatedEntries) != 1 {
				t.Errorf("expected pause to be ignored, got %d saves", len(interactions.UpdatedEntries))
			}
			if session.Position() != 0 {
				t.Errorf("expected position to stay at 0, got %.1f", session.Position())
			}
		})
	})
}
