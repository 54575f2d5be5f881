// Catalog service client for the Streamix /movie and /tv endpoints
package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/shared"
)

// CatalogService implements [Catalog]. The movie and TV mirrors live under
// separate base paths on the gateway, so the service holds one transport per
// mirror and dispatches on the kind argument.
type CatalogService struct {
	movie *Client
	tv    *Client
}

var _ Catalog = (*CatalogService)(nil)

// NewCatalogService creates a catalog client for the movie and TV base URLs
// (e.g. http://localhost:8080/movie and http://localhost:8080/tv).
func NewCatalogService(movieURL, tvURL string, opts ClientOpts) *CatalogService {
	return &CatalogService{
		movie: NewClient(movieURL, opts),
		tv:    NewClient(tvURL, opts),
	}
}

func (s *CatalogService) transport(kind string) (*Client, error) {
	switch kind {
	case models.TypeMovie, "":
		return s.movie, nil
	case models.TypeTV:
		return s.tv, nil
	default:
		return nil, fmt.Errorf("%w: unknown content kind %q", shared.ErrInvalidInput, kind)
	}
}

func (s *CatalogService) list(ctx context.Context, kind, path string) ([]models.ContentItem, error) {
	c, err := s.transport(kind)
	if err != nil {
		return nil, err
	}
	var items []models.ContentItem
	if err := c.Get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// All fetches the full cached catalog for the given kind.
func (s *CatalogService) All(ctx context.Context, kind string) ([]models.ContentItem, error) {
	return s.list(ctx, kind, "/all")
}

// ByCategory fetches the catalog rows for a category slug such as "Action".
func (s *CatalogService) ByCategory(ctx context.Context, kind, slug string) ([]models.ContentItem, error) {
	return s.list(ctx, kind, "/category/"+url.PathEscape(slug))
}

// ByID fetches a single item by its service-assigned ID.
func (s *CatalogService) ByID(ctx context.Context, kind, id string) (*models.ContentItem, error) {
	c, err := s.transport(kind)
	if err != nil {
		return nil, err
	}
	var item models.ContentItem
	if err := c.Get(ctx, "/"+url.PathEscape(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Search queries the catalog by free text.
func (s *CatalogService) Search(ctx context.Context, kind, query string) ([]models.ContentItem, error) {
	return s.list(ctx, kind, "/search?query="+url.QueryEscape(query))
}

// Popular fetches the popular list for the given kind.
func (s *CatalogService) Popular(ctx context.Context, kind string) ([]models.ContentItem, error) {
	return s.list(ctx, kind, "/popular")
}

// TopRated fetches the top-rated list for the given kind.
func (s *CatalogService) TopRated(ctx context.Context, kind string) ([]models.ContentItem, error) {
	return s.list(ctx, kind, "/top-rated")
}

// Trending fetches the trending list for the given kind.
func (s *CatalogService) Trending(ctx context.Context, kind string) ([]models.ContentItem, error) {
	return s.list(ctx, kind, "/trending")
}

// Similar fetches titles related to the given TMDB ID.
func (s *CatalogService) Similar(ctx context.Context, kind string, tmdbID int64) ([]models.ContentItem, error) {
	return s.list(ctx, kind, fmt.Sprintf("/%d/similar", tmdbID))
}

// Cast fetches the ordered cast credits for the given TMDB ID.
func (s *CatalogService) Cast(ctx context.Context, kind string, tmdbID int64) ([]models.CastMember, error) {
	c, err := s.transport(kind)
	if err != nil {
		return nil, err
	}
	var cast []models.CastMember
	if err := c.Get(ctx, fmt.Sprintf("/%d/cast", tmdbID), &cast); err != nil {
		return nil, err
	}
	return cast, nil
}

// Images fetches backdrops and posters for the given TMDB ID.
func (s *CatalogService) Images(ctx context.Context, kind string, tmdbID int64) (*models.ImageSet, error) {
	c, err := s.transport(kind)
	if err != nil {
		return nil, err
	}
	var images models.ImageSet
	if err := c.Get(ctx, fmt.Sprintf("/%d/images", tmdbID), &images); err != nil {
		return nil, err
	}
	return &images, nil
}

// Videos fetches trailer and clip references for the given TMDB ID.
func (s *CatalogService) Videos(ctx context.Context, kind string, tmdbID int64) ([]models.VideoRef, error) {
	c, err := s.transport(kind)
	if err != nil {
		return nil, err
	}
	var videos []models.VideoRef
	if err := c.Get(ctx, fmt.Sprintf("/%d/videos", tmdbID), &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// Genres fetches the genre ID to name mapping for the given kind.
func (s *CatalogService) Genres(ctx context.Context, kind string) ([]models.Genre, error) {
	c, err := s.transport(kind)
	if err != nil {
		return nil, err
	}
	var genres []models.Genre
	if err := c.Get(ctx, "/genres", &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

// Season fetches one TV season through the TMDB passthrough endpoint.
func (s *CatalogService) Season(ctx context.Context, tmdbID int64, number int) (*models.Season, error) {
	var season models.Season
	if err := s.tv.Get(ctx, fmt.Sprintf("/tmdb/%d/season/%d", tmdbID, number), &season); err != nil {
		return nil, err
	}
	return &season, nil
}
