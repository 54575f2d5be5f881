// Interaction service client for the Streamix /interaction endpoints
package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/shared"
)

// InteractionService implements [Interactions] against the interaction
// service. Writes are fire-and-forget from the user's perspective; callers
// log failures rather than surfacing them.
type InteractionService struct {
	client *Client
}

var _ Interactions = (*InteractionService)(nil)

// NewInteractionService creates an interaction service client rooted at
// baseURL (e.g. http://localhost:8080/interaction).
func NewInteractionService(baseURL string, opts ClientOpts) *InteractionService {
	return &InteractionService{client: NewClient(baseURL, opts)}
}

// AddToWatchlist saves a title to the user's watchlist.
func (s *InteractionService) AddToWatchlist(ctx context.Context, entry models.WatchlistEntry) error {
	if entry.UserID == "" || entry.MovieID == "" {
		return fmt.Errorf("%w: user id and movie id are required", shared.ErrInvalidInput)
	}
	return s.client.Post(ctx, "/watchlist/add", entry, nil)
}

// RemoveFromWatchlist deletes a title from the user's watchlist.
func (s *InteractionService) RemoveFromWatchlist(ctx context.Context, userID, movieID string) error {
	payload := map[string]string{"userId": userID, "movieId": movieID}
	return s.client.Post(ctx, "/watchlist/remove", payload, nil)
}

// Watchlist fetches the user's full watchlist. Membership checks scan the
// returned list client-side; there is no existence endpoint.
func (s *InteractionService) Watchlist(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := s.client.Get(ctx, "/watchlist/"+url.PathEscape(userID), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateHistory upserts the progress record for one (user, title, season,
// episode) tuple.
func (s *InteractionService) UpdateHistory(ctx context.Context, entry models.HistoryEntry) error {
	if entry.UserID == "" {
		return fmt.Errorf("%w: user id is required", shared.ErrInvalidInput)
	}
	return s.client.Post(ctx, "/history/update", entry, nil)
}

// History fetches the user's full watch history.
func (s *InteractionService) History(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := s.client.Get(ctx, "/history/"+url.PathEscape(userID), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
