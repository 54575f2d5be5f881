package playback

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/services"
)

// DefaultCompletedRatio is the watched fraction after which a title counts as
// completed. Matches the hosted web client's constant; override through
// configuration.
const DefaultCompletedRatio = 0.9

// Target identifies what is being watched. Season and Episode are nil for
// movies.
type Target struct {
	UserID     string
	MovieID    string
	Season     *int
	Episode    *int
	MovieTitle string
	PosterURL  string
}

// Reporter assembles complete progress records and submits them to the
// history store. Writes are best-effort: failures are logged and dropped,
// never surfaced to the caller.
type Reporter struct {
	interactions services.Interactions
	ratio        float64
	logger       *log.Logger
}

// NewReporter creates a reporter with the given completion ratio.
// Ratios outside (0, 1] fall back to the default.
func NewReporter(interactions services.Interactions, ratio float64, logger *log.Logger) *Reporter {
	if ratio <= 0 || ratio > 1 {
		ratio = DefaultCompletedRatio
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{interactions: interactions, ratio: ratio, logger: logger}
}

// Completed reports whether the position marks the title as finished. Always
// false while the duration is unreported.
func (r *Reporter) Completed(currentTime, duration float64) bool {
	return duration > 0 && currentTime/duration > r.ratio
}

// Report submits one progress record. A record without a user id is a no-op:
// that happens when a save fires before the session context is established,
// so callers pass the user id explicitly on the session-start save.
func (r *Reporter) Report(ctx context.Context, target Target, currentTime, duration float64) {
	if target.UserID == "" {
		r.logger.Error("cannot save progress, user id missing", "movie", target.MovieID)
		return
	}

	entry := models.HistoryEntry{
		UserID:     target.UserID,
		MovieID:    target.MovieID,
		StartAt:    currentTime,
		Duration:   duration,
		Completed:  r.Completed(currentTime, duration),
		Season:     target.Season,
		Episode:    target.Episode,
		MovieTitle: target.MovieTitle,
		PosterURL:  target.PosterURL,
	}

	if err := r.interactions.UpdateHistory(ctx, entry); err != nil {
		r.logger.Warn("failed to save history", "movie", target.MovieID, "err", err)
		return
	}
	r.logger.Debug("history saved", "movie", target.MovieID, "startAt", currentTime)
}
