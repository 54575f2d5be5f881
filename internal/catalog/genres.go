// Package catalog contains client-side helpers over catalog service data:
// the per-session genre name cache and list merging rules.
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/services"
)

// maxDisplayGenres caps the genre labels shown per title.
const maxDisplayGenres = 3

// GenreCache resolves TMDB genre IDs to display names. It is loaded at most
// once per process and immutable afterwards; construct a new cache to reload.
// The explicit object replaces the module-level singleton of the hosted web
// client so tests can inject their own mapping.
type GenreCache struct {
	catalog services.Catalog

	once  sync.Once
	names map[int64]string
	err   error
}

// NewGenreCache creates an empty cache backed by the given catalog client.
func NewGenreCache(c services.Catalog) *GenreCache {
	return &GenreCache{catalog: c}
}

// NewStaticGenreCache creates a pre-loaded cache from a fixed mapping.
func NewStaticGenreCache(names map[int64]string) *GenreCache {
	g := &GenreCache{names: names}
	g.once.Do(func() {})
	return g
}

// Load fetches the movie and TV genre lists and merges them into the lookup
// table. Subsequent calls return the first result.
func (g *GenreCache) Load(ctx context.Context) error {
	g.once.Do(func() {
		names := make(map[int64]string)
		for _, kind := range []string{models.TypeMovie, models.TypeTV} {
			genres, err := g.catalog.Genres(ctx, kind)
			if err != nil {
				g.err = err
				return
			}
			for _, genre := range genres {
				names[genre.TmdbID] = genre.Name
			}
		}
		g.names = names
	})
	return g.err
}

// Name resolves a single genre ID, returning "" for unknown IDs.
func (g *GenreCache) Name(id int64) string {
	return g.names[id]
}

// Names resolves genre IDs to their known names, dropping unknown IDs.
func (g *GenreCache) Names(ids []int64) []string {
	var names []string
	for _, id := range ids {
		if name, ok := g.names[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Label renders up to three genre names as a display label.
func (g *GenreCache) Label(ids []int64) string {
	names := g.Names(ids)
	if len(names) > maxDisplayGenres {
		names = names[:maxDisplayGenres]
	}
	return strings.Join(names, " • ")
}
