package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/shared"
)

func TestInteractionService(t *testing.T) {
	ctx := context.Background()

	t.Run("AddToWatchlist", func(t *testing.T) {
		t.Run("posts the entry", func(t *testing.T) {
			var gotPath string
			var gotEntry models.WatchlistEntry
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				json.NewDecoder(r.Body).Decode(&gotEntry)
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			svc := NewInteractionService(server.URL, ClientOpts{})
			entry := models.WatchlistEntry{UserID: "u1", MovieID: "m1", MovieTitle: "Arrival"}
			if err := svc.AddToWatchlist(ctx, entry); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotPath != "/watchlist/add" {
				t.Errorf("expected /watchlist/add, got %s", gotPath)
			}
			if gotEntry != entry {
				t.Errorf("expected entry %+v, got %+v", entry, gotEntry)
			}
		})

		t.Run("requires ids", func(t *testing.T) {
			svc := NewInteractionService("http://unused", ClientOpts{})
			if err := svc.AddToWatchlist(ctx, models.WatchlistEntry{UserID: "u1"}); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	})

	t.Run("RemoveFromWatchlist posts both ids", func(t *testing.T) {
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		svc := NewInteractionService(server.URL, ClientOpts{})
		if err := svc.RemoveFromWatchlist(ctx, "u1", "m1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotBody["userId"] != "u1" || gotBody["movieId"] != "m1" {
			t.Errorf("unexpected payload: %+v", gotBody)
		}
	})

	t.Run("Watchlist fetches by user id", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`[{"userId":"u1","movieId":"m1"}]`))
		}))
		defer server.Close()

		svc := NewInteractionService(server.URL, ClientOpts{})
		entries, err := svc.Watchlist(ctx, "u1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotPath != "/watchlist/u1" {
			t.Errorf("expected /watchlist/u1, got %s", gotPath)
		}
		if len(entries) != 1 || entries[0].MovieID != "m1" {
			t.Errorf("unexpected entries: %+v", entries)
		}
	})

	t.Run("UpdateHistory", func(t *testing.T) {
		t.Run("posts the full record", func(t *testing.T) {
			var gotEntry models.HistoryEntry
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewDecoder(r.Body).Decode(&gotEntry)
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			season, episode := 1, 3
			svc := NewInteractionService(server.URL, ClientOpts{})
			entry := models.HistoryEntry{
				UserID: "u1", MovieID: "show", StartAt: 42.5, Duration: 3600,
				Season: &season, Episode: &episode,
			}
			if err := svc.UpdateHistory(ctx, entry); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotEntry.StartAt != 42.5 || gotEntry.Duration != 3600 {
				t.Errorf("unexpected positions: %+v", gotEntry)
			}
			if gotEntry.Season == nil || *gotEntry.Season != 1 || gotEntry.Episode == nil || *gotEntry.Episode != 3 {
				t.Errorf("expected S01E03 on the wire, got %+v", gotEntry)
			}
		})

		t.Run("requires a user id", func(t *testing.T) {
			svc := NewInteractionService("http://unused", ClientOpts{})
			if err := svc.UpdateHistory(ctx, models.HistoryEntry{MovieID: "m1"}); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	})

	t.Run("History fetches by user id", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`[{"userId":"u1","movieId":"m1","startAt":120,"completed":false}]`))
		}))
		defer server.Close()

		svc := NewInteractionService(server.URL, ClientOpts{})
		entries, err := svc.History(ctx, "u1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotPath != "/history/u1" {
			t.Errorf("expected /history/u1, got %s", gotPath)
		}
		if len(entries) != 1 || entries[0].StartAt != 120 {
			t.Errorf("unexpected entries: %+v", entries)
		}
	})
}
