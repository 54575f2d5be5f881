package playback

import (
	"testing"

	"github.com/streamix/streamix-cli/internal/models"
)

func intPtr(n int) *int { return &n }

func TestResolveResume(t *testing.T) {
	t.Run("resumes an unfinished title", func(t *testing.T) {
		history := []models.HistoryEntry{
			{MovieID: "m1", StartAt: 123.9, Completed: false},
		}

		offset, ok := ResolveResume(history, "m1", nil, nil)
		if !ok {
			t.Fatal("expected a resume offset")
		}
		if offset != 123 {
			t.Errorf("expected floored offset 123, got %.1f", offset)
		}
	})

	t.Run("completed titles start over", func(t *testing.T) {
		history := []models.HistoryEntry{
			{MovieID: "m1", StartAt: 500, Completed: true},
		}

		if _, ok := ResolveResume(history, "m1", nil, nil); ok {
			t.Error("expected no resume for a completed title")
		}
	})

	t.Run("zero progress starts over", func(t *testing.T) {
		history := []models.HistoryEntry{
			{MovieID: "m1", StartAt: 0, Completed: false},
		}

		if _, ok := ResolveResume(history, "m1", nil, nil); ok {
			t.Error("expected no resume without forward progress")
		}
	})

	t.Run("no matching entry starts over", func(t *testing.T) {
		history := []models.HistoryEntry{
			{MovieID: "other", StartAt: 50},
		}

		if _, ok := ResolveResume(history, "m1", nil, nil); ok {
			t.Error("expected no resume for an unseen title")
		}
	})

	t.Run("first matching entry decides", func(t *testing.T) {
		history := []models.HistoryEntry{
			{MovieID: "m1", StartAt: 500, Completed: true},
			{MovieID: "m1", StartAt: 50, Completed: false},
		}

		if _, ok := ResolveResume(history, "m1", nil, nil); ok {
			t.Error("expected the first (completed) entry to decide")
		}
	})

	t.Run("episode scoping", func(t *testing.T) {
		history := []models.HistoryEntry{
			{MovieID: "show", StartAt: 100, Season: intPtr(1), Episode: intPtr(1)},
			{MovieID: "show", StartAt: 40, Season: intPtr(1), Episode: intPtr(2)},
		}

		t.Run("matches the requested episode", func(t *testing.T) {
			offset, ok := ResolveResume(history, "show", intPtr(1), intPtr(2))
			if !ok || offset != 40 {
				t.Errorf("expected resume at 40 for S01E02, got %.0f ok=%v", offset, ok)
			}
		})

		t.Run("unseen episode starts over", func(t *testing.T) {
			if _, ok := ResolveResume(history, "show", intPtr(2), intPtr(1)); ok {
				t.Error("expected no resume for an unseen episode")
			}
		})

		t.Run("nil season and episode act as wildcards", func(t *testing.T) {
			offset, ok := ResolveResume(history, "show", nil, nil)
			if !ok || offset != 100 {
				t.Errorf("expected wildcard match on the first entry, got %.0f ok=%v", offset, ok)
			}
		})
	})
}
