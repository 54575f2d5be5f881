package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/streamix/streamix-cli/internal/formatter"
	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/shared"
	"github.com/streamix/streamix-cli/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Dashboard fetches and renders the merged dashboard rows. Works without a
// session; the watchlist markers just stay empty.
func (r *Runner) Dashboard(ctx context.Context, cmd *cli.Command) error {
	var userID string
	if r.sessions != nil {
		if session, ok := r.sessions.Current(); ok {
			userID = session.UserID
		}
	}

	progress := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progress {
			r.logger.Debug(update.Message, "phase", update.Phase.String())
		}
	}()

	result, err := r.engine.Dashboard(ctx, progress, userID)
	close(progress)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	if result.Featured != nil {
		r.writePlainHeader(fmt.Sprintf("Featured: %s", result.Featured.DisplayTitle()))
	}
	for _, row := range result.Rows {
		r.writePlainln("%s", row.Title)
		r.writePlain("%s", formatter.ContentTable(row.Items))
	}
	return nil
}

// Search queries movies and TV shows together and renders the merged list.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: usage: streamix search <query>", shared.ErrMissingArgument)
	}

	items, err := r.engine.Search(ctx, query)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, cmd.Bool("pretty"))
	}

	if len(items) == 0 {
		return r.writePlain("No results for '%s'\n", query)
	}
	return r.writePlain("%s", formatter.ContentTable(items))
}

// Details renders one title with its genres, cast, similar titles, and
// seasons. Watchlist membership and the resume offset appear when logged in.
func (r *Runner) Details(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: usage: streamix details <id>", shared.ErrMissingArgument)
	}

	var userID string
	if r.sessions != nil {
		if session, ok := r.sessions.Current(); ok {
			userID = session.UserID
		}
	}

	result, err := r.engine.Details(ctx, nil, cmd.String("type"), id, userID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	r.writePlainHeader(result.Item.DisplayTitle())
	if result.GenreLabel != "" {
		r.writePlain("Genres: %s\n", result.GenreLabel)
	}
	if result.Item.VoteAverage > 0 {
		r.writePlain("Rating: %.1f\n", result.Item.VoteAverage)
	}
	if result.InWatchlist {
		r.writePlain("✓ In watchlist\n")
	}
	if result.ResumeAt > 0 {
		r.writePlain("Resume at: %s\n", formatter.FormatDuration(result.ResumeAt))
	}

	if len(result.Cast) > 0 {
		r.writePlainln("Cast:")
		r.writePlain("%s", formatter.CastList(result.Cast))
	}
	if len(result.Similar) > 0 {
		r.writePlainln("Similar titles:")
		r.writePlain("%s", formatter.ContentTable(result.Similar))
	}
	if len(result.Seasons) > 0 {
		r.writePlainln("Seasons:")
		for _, season := range result.Seasons {
			r.writePlain("  Season %d (%d episodes)\n", season.SeasonNumber, len(season.Episodes))
		}
	}
	return nil
}

// CatalogList renders one catalog list for the given kind. The "all" list
// accepts a --category filter served by the category endpoint.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command, kind, list string) error {
	var items []models.ContentItem
	var err error

	switch list {
	case "all":
		if slug := cmd.String("category"); slug != "" {
			items, err = r.catalog.ByCategory(ctx, kind, slug)
		} else {
			items, err = r.catalog.All(ctx, kind)
		}
	case "popular":
		items, err = r.catalog.Popular(ctx, kind)
	case "top-rated":
		items, err = r.catalog.TopRated(ctx, kind)
	case "trending":
		items, err = r.catalog.Trending(ctx, kind)
	default:
		return fmt.Errorf("%w: unknown list %q", shared.ErrInvalidFlag, list)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, cmd.Bool("pretty"))
	}
	if len(items) == 0 {
		return r.writePlain("No titles found\n")
	}
	return r.writePlain("%s", formatter.ContentTable(items))
}

// CatalogGenres renders the genre mapping for the given kind.
func (r *Runner) CatalogGenres(ctx context.Context, cmd *cli.Command, kind string) error {
	genres, err := r.catalog.Genres(ctx, kind)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(genres, cmd.Bool("pretty"))
	}
	for _, genre := range genres {
		r.writePlain("%d\t%s\n", genre.TmdbID, genre.Name)
	}
	return nil
}

// TVSeason renders one season of a TV show with its episode list.
func (r *Runner) TVSeason(ctx context.Context, cmd *cli.Command) error {
	tmdbID, err := strconv.ParseInt(cmd.StringArg("tmdb-id"), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: tmdb-id must be a number", shared.ErrInvalidInput)
	}
	number, err := strconv.Atoi(cmd.StringArg("number"))
	if err != nil {
		return fmt.Errorf("%w: season number must be a number", shared.ErrInvalidInput)
	}

	season, err := r.catalog.Season(ctx, tmdbID, number)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(season, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("Season %d", season.SeasonNumber))
	for _, episode := range season.Episodes {
		r.writePlain("E%02d  %s\n", episode.EpisodeNumber, episode.Name)
	}
	return nil
}
