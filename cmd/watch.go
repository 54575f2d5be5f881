package main

import (
	"context"
	"fmt"

	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/playback"
	"github.com/streamix/streamix-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

// Watch plays one title and syncs watch progress for the whole playback
// lifetime. The embed URL goes to the configured player process, whose stdout
// drives the progress saves; without a player command (or with --browser) the
// URL opens in the browser and only the session-start save is recorded.
func (r *Runner) Watch(ctx context.Context, cmd *cli.Command) error {
	userID, err := r.session()
	if err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: usage: streamix watch <id>", shared.ErrMissingArgument)
	}

	kind := cmd.String("type")
	var season, episode *int
	if kind == models.TypeTV {
		s, e := cmd.Int("season"), cmd.Int("episode")
		if s <= 0 || e <= 0 {
			return fmt.Errorf("%w: tv playback requires --season and --episode", shared.ErrMissingArgument)
		}
		season, episode = &s, &e
	}

	item, err := r.catalog.ByID(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("failed to look up title: %w", err)
	}
	if item.TmdbID == 0 {
		return fmt.Errorf("%w: title has no TMDB id", shared.ErrInvalidInput)
	}

	var resumeAt float64
	if !cmd.Bool("no-resume") {
		history, err := r.interactions.History(ctx, userID)
		if err != nil {
			r.logger.Warn("history fetch failed, starting from the beginning", "err", err)
		} else if offset, ok := playback.ResolveResume(history, item.ID, season, episode); ok {
			resumeAt = offset
			r.writePlain("Resuming at %.0fs\n", offset)
		}
	}

	embedURL, err := playback.EmbedURL(r.config.Player, kind, item.TmdbID, season, episode, resumeAt)
	if err != nil {
		return err
	}

	target := playback.Target{
		UserID:     userID,
		MovieID:    item.ID,
		Season:     season,
		Episode:    episode,
		MovieTitle: item.DisplayTitle(),
		PosterURL:  item.Poster(),
	}
	playbackLogger := shared.WithLogger(r.logger, "movieId", item.ID)
	reporter := playback.NewReporter(r.interactions, r.config.Playback.CompletedRatio, playbackLogger)

	if cmd.Bool("browser") || r.config.Player.Command == "" {
		r.logger.Info("opening in browser", "url", embedURL)
		if err := playback.OpenInBrowser(embedURL); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
		reporter.Report(ctx, target, 0, 0)
		return r.writePlain("✓ Opened '%s' in the browser\n", item.DisplayTitle())
	}

	player, err := playback.NewProcessPlayer(r.config.Player.Command, playbackLogger)
	if err != nil {
		return err
	}

	events, err := player.Start(ctx, embedURL)
	if err != nil {
		return err
	}

	r.writePlain("Playing '%s'...\n", item.DisplayTitle())

	throttle := playback.NewThrottle(r.config.Playback.SaveIntervalSeconds)
	session := playback.NewSession(target, reporter, throttle, playbackLogger)
	session.Run(ctx, events)

	if pos := session.Position(); pos > 0 {
		r.writePlain("Stopped at %.0fs\n", pos)
	}
	return nil
}
