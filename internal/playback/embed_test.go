package playback

import (
	"errors"
	"testing"

	"github.com/streamix/streamix-cli/internal/shared"
)

func testPlayerConfig() shared.PlayerConfig {
	return shared.PlayerConfig{
		EmbedBaseURL: "https://vidlink.pro",
		PrimaryColor: "B20710",
		Autoplay:     true,
	}
}

func TestEmbedURL(t *testing.T) {
	t.Run("movie URL", func(t *testing.T) {
		got, err := EmbedURL(testPlayerConfig(), "movie", 603, nil, nil, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := "https://vidlink.pro/movie/603?autoplay=true&primaryColor=B20710"
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("movie URL with resume offset", func(t *testing.T) {
		got, err := EmbedURL(testPlayerConfig(), "movie", 603, nil, nil, 123.7)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := "https://vidlink.pro/movie/603?autoplay=true&primaryColor=B20710&startAt=123"
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("tv URL includes season and episode", func(t *testing.T) {
		got, err := EmbedURL(testPlayerConfig(), "tv", 1399, intPtr(2), intPtr(5), 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := "https://vidlink.pro/tv/1399/2/5?autoplay=true&primaryColor=B20710"
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("tv without season and episode fails", func(t *testing.T) {
		if _, err := EmbedURL(testPlayerConfig(), "tv", 1399, nil, nil, 0); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing base URL fails", func(t *testing.T) {
		if _, err := EmbedURL(shared.PlayerConfig{}, "movie", 603, nil, nil, 0); !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("no query when nothing is configured", func(t *testing.T) {
		cfg := shared.PlayerConfig{EmbedBaseURL: "https://vidlink.pro/"}
		got, err := EmbedURL(cfg, "movie", 603, nil, nil, 0)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != "https://vidlink.pro/movie/603" {
			t.Errorf("expected bare path, got %s", got)
		}
	})
}
