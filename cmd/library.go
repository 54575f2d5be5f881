package main

import (
	"context"
	"fmt"

	"github.com/streamix/streamix-cli/internal/formatter"
	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

// WatchlistShow renders the user's watchlist.
func (r *Runner) WatchlistShow(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.session()
	if err != nil {
		return err
	}

	entries, err := r.interactions.Watchlist(ctx, userID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}
	if len(entries) == 0 {
		return r.writePlain("Watchlist is empty\n")
	}
	return r.writePlain("%s", formatter.WatchlistTable(entries))
}

// WatchlistAdd saves a title to the watchlist. The item is fetched first so
// the stored entry carries its display title and poster.
func (r *Runner) WatchlistAdd(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.session()
	if err != nil {
		return err
	}
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: usage: streamix watchlist add <id>", shared.ErrMissingArgument)
	}

	item, err := r.catalog.ByID(ctx, cmd.String("type"), id)
	if err != nil {
		return fmt.Errorf("failed to look up title: %w", err)
	}

	entry := models.WatchlistEntry{
		UserID:     userID,
		MovieID:    item.ID,
		MovieTitle: item.DisplayTitle(),
		PosterURL:  item.Poster(),
	}
	if err := r.interactions.AddToWatchlist(ctx, entry); err != nil {
		return fmt.Errorf("failed to update watchlist: %w", err)
	}

	r.logger.Info("added to watchlist", "movie", item.ID)
	return r.writePlain("✓ Added '%s' to watchlist\n", item.DisplayTitle())
}

// WatchlistRemove deletes a title from the watchlist.
func (r *Runner) WatchlistRemove(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.session()
	if err != nil {
		return err
	}
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: usage: streamix watchlist remove <id>", shared.ErrMissingArgument)
	}

	if err := r.interactions.RemoveFromWatchlist(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to update watchlist: %w", err)
	}

	r.logger.Info("removed from watchlist", "movie", id)
	return r.writePlain("✓ Removed from watchlist\n")
}

// WatchlistExport writes the watchlist to a JSON or CSV file.
func (r *Runner) WatchlistExport(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.session()
	if err != nil {
		return err
	}

	entries, err := r.interactions.Watchlist(ctx, userID)
	if err != nil {
		return err
	}

	path := cmd.String("output")
	format := cmd.String("format")
	if err := formatter.WriteExport(path, format, entries, func() ([]byte, error) {
		return formatter.WatchlistToCSV(entries)
	}); err != nil {
		return err
	}

	return r.writePlain("✓ Exported %d entries to %s\n", len(entries), path)
}

// HistoryShow renders the full watch history.
func (r *Runner) HistoryShow(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.session()
	if err != nil {
		return err
	}

	entries, err := r.interactions.History(ctx, userID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}
	if len(entries) == 0 {
		return r.writePlain("No watch history yet\n")
	}
	return r.writePlain("%s", formatter.HistoryTable(entries))
}

// HistoryContinue renders the unfinished titles, mirroring the dashboard's
// continue-watching rail.
func (r *Runner) HistoryContinue(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.session()
	if err != nil {
		return err
	}

	entries, err := r.engine.ContinueWatching(ctx, userID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, cmd.Bool("pretty"))
	}
	if len(entries) == 0 {
		return r.writePlain("Nothing in progress\n")
	}
	return r.writePlain("%s", formatter.HistoryTable(entries))
}

// HistoryExport writes the watch history to a JSON or CSV file.
func (r *Runner) HistoryExport(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.session()
	if err != nil {
		return err
	}

	entries, err := r.interactions.History(ctx, userID)
	if err != nil {
		return err
	}

	path := cmd.String("output")
	format := cmd.String("format")
	if err := formatter.WriteExport(path, format, entries, func() ([]byte, error) {
		return formatter.HistoryToCSV(entries)
	}); err != nil {
		return err
	}

	return r.writePlain("✓ Exported %d entries to %s\n", len(entries), path)
}
