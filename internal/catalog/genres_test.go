package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/streamix/streamix-cli/internal/models"
	tu "github.com/streamix/streamix-cli/internal/testing"
)

func TestGenreCache(t *testing.T) {
	t.Run("Load", func(t *testing.T) {
		t.Run("merges movie and tv genres", func(t *testing.T) {
			catalog := &tu.MockCatalog{
				GenresFn: func(ctx context.Context, kind string) ([]models.Genre, error) {
					if kind == models.TypeMovie {
						return []models.Genre{{TmdbID: 28, Name: "Action"}}, nil
					}
					return []models.Genre{{TmdbID: 10765, Name: "Sci-Fi & Fantasy"}}, nil
				},
			}
			cache := NewGenreCache(catalog)

			if err := cache.Load(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if cache.Name(28) != "Action" {
				t.Errorf("expected movie genre to resolve, got %q", cache.Name(28))
			}
			if cache.Name(10765) != "Sci-Fi & Fantasy" {
				t.Errorf("expected tv genre to resolve, got %q", cache.Name(10765))
			}
		})

		t.Run("fetches at most once", func(t *testing.T) {
			calls := 0
			catalog := &tu.MockCatalog{
				GenresFn: func(ctx context.Context, kind string) ([]models.Genre, error) {
					calls++
					return nil, nil
				},
			}
			cache := NewGenreCache(catalog)

			cache.Load(context.Background())
			cache.Load(context.Background())

			if calls != 2 {
				t.Errorf("expected exactly one movie and one tv fetch, got %d calls", calls)
			}
		})

		t.Run("caches the first error", func(t *testing.T) {
			boom := errors.New("boom")
			calls := 0
			catalog := &tu.MockCatalog{
				GenresFn: func(ctx context.Context, kind string) ([]models.Genre, error) {
					calls++
					return nil, boom
				},
			}
			cache := NewGenreCache(catalog)

			if err := cache.Load(context.Background()); !errors.Is(err, boom) {
				t.Fatalf("expected the fetch error, got %v", err)
			}
			if err := cache.Load(context.Background()); !errors.Is(err, boom) {
				t.Fatalf("expected the cached error, got %v", err)
			}
			if calls != 1 {
				t.Errorf("expected no retry after failure, got %d calls", calls)
			}
		})
	})

	t.Run("Names drops unknown ids", func(t *testing.T) {
		cache := NewStaticGenreCache(map[int64]string{1: "Action", 2: "Drama"})

		names := cache.Names([]int64{1, 99, 2})
		if len(names) != 2 || names[0] != "Action" || names[1] != "Drama" {
			t.Errorf("expected [Action Drama], got %v", names)
		}
	})

	t.Run("Label", func(t *testing.T) {
		cache := NewStaticGenreCache(map[int64]string{1: "Action", 2: "Drama", 3: "Comedy", 4: "Horror"})

		t.Run("joins with separators", func(t *testing.T) {
			got := cache.Label([]int64{1, 2})
			if got != "Action • Drama" {
				t.Errorf("expected 'Action • Drama', got %q", got)
			}
		})

		t.Run("caps at three genres", func(t *testing.T) {
			got := cache.Label([]int64{1, 2, 3, 4})
			if got != "Action • Drama • Comedy" {
				t.Errorf("expected three genres, got %q", got)
			}
		})

		t.Run("empty for unknown ids", func(t *testing.T) {
			if got := cache.Label([]int64{42}); got != "" {
				t.Errorf("expected empty label, got %q", got)
			}
		})
	})
}
