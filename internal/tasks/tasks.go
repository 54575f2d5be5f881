package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/streamix/streamix-cli/internal/catalog"
	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/playback"
	"github.com/streamix/streamix-cli/internal/services"
	"github.com/streamix/streamix-cli/internal/shared"
)

// DashboardCategories are the category rows rendered on the dashboard, in
// display order.
var DashboardCategories = []string{"Action", "Sci-Fi", "Comedy", "Horror", "Drama", "Romance"}

// maxSeasonFetch caps how many seasons the details view loads eagerly.
const maxSeasonFetch = 20

// Row is one titled dashboard row.
type Row struct {
	Title string
	Items []models.ContentItem
}

// DashboardResult is the fully merged dashboard view: curated rows plus the
// user's watchlist membership set. The result commits all-or-nothing; callers
// never see a partially merged list.
type DashboardResult struct {
	Featured     *models.ContentItem
	Rows         []Row
	All          []models.ContentItem
	WatchlistIDs map[string]bool
}

// DetailsResult is the details view for one title. Only Item is guaranteed;
// the secondary fields stay empty when their sources fail.
type DetailsResult struct {
	Item        models.ContentItem
	GenreLabel  string
	Cast        []models.CastMember
	Similar     []models.ContentItem
	Seasons     []models.Season
	InWatchlist bool
	ResumeAt    float64
}

// BrowseEngine assembles the client's views from the catalog and interaction
// services.
type BrowseEngine struct {
	catalog      services.Catalog
	interactions services.Interactions
	genres       *catalog.GenreCache
	logger       *log.Logger
}

// NewBrowseEngine creates a browse engine with the provided dependencies.
func NewBrowseEngine(cat services.Catalog, interactions services.Interactions, genres *catalog.GenreCache, logger *log.Logger) *BrowseEngine {
	if logger == nil {
		logger = log.Default()
	}
	return &BrowseEngine{
		catalog:      cat,
		interactions: interactions,
		genres:       genres,
		logger:       logger,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *BrowseEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// catalogFetch names one concurrent list fetch for the dashboard fan-out.
type catalogFetch struct {
	name  string
	fetch func(ctx context.Context) ([]models.ContentItem, error)
}

// Dashboard fetches the curated movie and TV lists plus the user's watchlist
// concurrently, awaits them jointly, and merges them into deduplicated rows.
// Individual list outages are logged and rendered empty; the dashboard only
// errors when every catalog source failed. An empty userID skips the
// watchlist fetch.
func (e *BrowseEngine) Dashboard(ctx context.Context, progress chan<- ProgressUpdate, userID string) (*DashboardResult, error) {
	fetches := []catalogFetch{
		{"all movies", func(ctx context.Context) ([]models.ContentItem, error) { return e.catalog.All(ctx, models.TypeMovie) }},
		{"all tv shows", func(ctx context.Context) ([]models.ContentItem, error) { return e.catalog.All(ctx, models.TypeTV) }},
		{"trending movies", func(ctx context.Context) ([]models.ContentItem, error) { return e.catalog.Trending(ctx, models.TypeMovie) }},
		{"trending tv shows", func(ctx context.Context) ([]models.ContentItem, error) { return e.catalog.Trending(ctx, models.TypeTV) }},
		{"popular movies", func(ctx context.Context) ([]models.ContentItem, error) { return e.catalog.Popular(ctx, models.TypeMovie) }},
		{"popular tv shows", func(ctx context.Context) ([]models.ContentItem, error) { return e.catalog.Popular(ctx, models.TypeTV) }},
		{"top rated movies", func(ctx context.Context) ([]models.ContentItem, error) { return e.catalog.TopRated(ctx, models.TypeMovie) }},
		{"top rated tv shows", func(ctx context.Context) ([]models.ContentItem, error) { return e.catalog.TopRated(ctx, models.TypeTV) }},
	}

	lists := make([][]models.ContentItem, len(fetches))
	failures := 0

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func(i int, f catalogFetch) {
			defer wg.Done()
			items, err := f.fetch(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				e.logger.Warn("dashboard list fetch failed", "list", f.name, "err", err)
				failures++
				return
			}
			lists[i] = items
		}(i, f)
		e.sendProgress(progress, fetchCatalogUpdate(i+1, len(fetches), f.name))
	}

	watchlistIDs := make(map[string]bool)
	if userID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.sendProgress(progress, fetchWatchlistUpdate(1, 1))
			entries, err := e.interactions.Watchlist(ctx, userID)
			if err != nil {
				e.logger.Warn("watchlist fetch failed", "err", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			for _, entry := range entries {
				watchlistIDs[entry.MovieID] = true
			}
		}()
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if failures == len(fetches) {
		return nil, fmt.Errorf("%w: all catalog sources failed", shared.ErrServiceUnavailable)
	}

	allMovies, allTV := lists[0], lists[1]
	merged := catalog.DedupeByID(allMovies, allTV)

	rows := []Row{
		{Title: "Trending Now", Items: catalog.DedupeByID(lists[2], lists[3])},
		{Title: "Popular", Items: catalog.DedupeByID(lists[4], lists[5])},
		{Title: "Top Rated", Items: catalog.DedupeByID(lists[6], lists[7])},
	}
	for _, category := range DashboardCategories {
		if items := catalog.FilterByCategory(merged, category); len(items) > 0 {
			rows = append(rows, Row{Title: category, Items: items})
		}
	}

	result := &DashboardResult{
		Rows:         rows,
		All:          merged,
		WatchlistIDs: watchlistIDs,
	}
	if len(rows[0].Items) > 0 {
		result.Featured = &rows[0].Items[0]
	} else if len(merged) > 0 {
		result.Featured = &merged[0]
	}

	e.sendProgress(progress, mergeResultsUpdate(len(merged)))
	return result, nil
}

// Search queries the movie and TV catalogs concurrently and merges the
// results, movies first, with each ID appearing exactly once.
func (e *BrowseEngine) Search(ctx context.Context, query string) ([]models.ContentItem, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query is empty", shared.ErrInvalidInput)
	}

	var movies, shows []models.ContentItem
	var movieErr, tvErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		movies, movieErr = e.catalog.Search(ctx, models.TypeMovie, query)
	}()
	go func() {
		defer wg.Done()
		shows, tvErr = e.catalog.Search(ctx, models.TypeTV, query)
	}()
	wg.Wait()

	if movieErr != nil && tvErr != nil {
		return nil, fmt.Errorf("search failed: %w", movieErr)
	}
	if movieErr != nil {
		e.logger.Warn("movie search failed", "err", movieErr)
	}
	if tvErr != nil {
		e.logger.Warn("tv search failed", "err", tvErr)
	}

	return catalog.DedupeByID(movies, shows), nil
}

// Details loads one title for the details view. The item itself is blocking;
// genres, cast, similar titles, seasons, watchlist membership, and the resume
// offset are best-effort and fail silently.
func (e *BrowseEngine) Details(ctx context.Context, progress chan<- ProgressUpdate, kind, id, userID string) (*DetailsResult, error) {
	item, err := e.catalog.ByID(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load details: %w", err)
	}
	e.sendProgress(progress, fetchDetailsUpdate(item.DisplayTitle()))

	result := &DetailsResult{Item: *item}

	if e.genres != nil {
		if err := e.genres.Load(ctx); err != nil {
			e.logger.Warn("genre load failed", "err", err)
		} else {
			result.GenreLabel = e.genres.Label(item.GenreIDs)
		}
	}

	var wg sync.WaitGroup

	if item.TmdbID != 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.sendProgress(progress, ProgressUpdate{Phase: FetchCast, Step: 1, Total: 1, Message: "Loading cast..."})
			cast, err := e.catalog.Cast(ctx, kind, item.TmdbID)
			if err != nil {
				e.logger.Warn("cast fetch failed", "err", err)
				return
			}
			result.Cast = cast
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			e.sendProgress(progress, ProgressUpdate{Phase: FetchSimilar, Step: 1, Total: 1, Message: "Loading similar titles..."})
			similar, err := e.catalog.Similar(ctx, kind, item.TmdbID)
			if err != nil {
				e.logger.Warn("similar fetch failed", "err", err)
			}
			if len(similar) == 0 {
				all, allErr := e.catalog.All(ctx, kind)
				if allErr != nil {
					e.logger.Warn("similar fallback fetch failed", "err", allErr)
					return
				}
				similar = catalog.SimilarFallback(all, *item, 6)
			}
			result.Similar = similar
		}()

		if item.IsTV() && item.NumberOfSeasons > 0 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				e.sendProgress(progress, ProgressUpdate{Phase: FetchSeasons, Step: 1, Total: item.NumberOfSeasons, Message: "Loading seasons..."})
				total := item.NumberOfSeasons
				if total > maxSeasonFetch {
					total = maxSeasonFetch
				}
				for n := 1; n <= total; n++ {
					season, err := e.catalog.Season(ctx, item.TmdbID, n)
					if err != nil {
						e.logger.Warn("season fetch failed", "season", n, "err", err)
						return
					}
					result.Seasons = append(result.Seasons, *season)
				}
			}()
		}
	}

	if userID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries, err := e.interactions.Watchlist(ctx, userID)
			if err != nil {
				e.logger.Warn("watchlist check failed", "err", err)
				return
			}
			for _, entry := range entries {
				if entry.MovieID == item.ID {
					result.InWatchlist = true
					return
				}
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			history, err := e.interactions.History(ctx, userID)
			if err != nil {
				e.logger.Warn("history fetch failed", "err", err)
				return
			}
			if offset, ok := playback.ResolveResume(history, item.ID, nil, nil); ok {
				result.ResumeAt = offset
				e.sendProgress(progress, resolveResumeUpdate(offset))
			}
		}()
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ToggleWatchlist flips watchlist membership for the item and returns the new
// state. On failure the displayed state must stay unchanged, so the prior
// state is returned along with the error; there is no automatic retry.
func (e *BrowseEngine) ToggleWatchlist(ctx context.Context, userID string, item models.ContentItem, inList bool) (bool, error) {
	if userID == "" {
		return inList, fmt.Errorf("%w: no user", shared.ErrNotAuthenticated)
	}

	if inList {
		if err := e.interactions.RemoveFromWatchlist(ctx, userID, item.ID); err != nil {
			return inList, fmt.Errorf("failed to update watchlist: %w", err)
		}
		return false, nil
	}

	entry := models.WatchlistEntry{
		UserID:     userID,
		MovieID:    item.ID,
		MovieTitle: item.DisplayTitle(),
		PosterURL:  item.Poster(),
	}
	if err := e.interactions.AddToWatchlist(ctx, entry); err != nil {
		return inList, fmt.Errorf("failed to update watchlist: %w", err)
	}
	return true, nil
}

// ContinueWatching filters the user's history down to unfinished titles with
// some progress, newest meaning first in the service's order.
func (e *BrowseEngine) ContinueWatching(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	history, err := e.interactions.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	var unfinished []models.HistoryEntry
	for _, entry := range history {
		if entry.StartAt > 0 && !entry.Completed {
			unfinished = append(unfinished, entry)
		}
	}
	return unfinished, nil
}
