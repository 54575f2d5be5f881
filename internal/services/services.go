// package services defines the client interfaces for the Streamix backend
package services

import (
	"context"

	"github.com/streamix/streamix-cli/internal/models"
)

// Authenticator defines the identity service operations.
type Authenticator interface {
	// Register creates a new account; the service mails a verification code.
	Register(ctx context.Context, name, email, password string) error

	// VerifyEmail confirms the code mailed during registration.
	VerifyEmail(ctx context.Context, email, code string) error

	// Login exchanges credentials for a session.
	Login(ctx context.Context, email, password string) (*models.Session, error)

	// Logout revokes the refresh token server-side.
	Logout(ctx context.Context, refreshToken string) error

	// ForgotPassword requests a reset code for the given email.
	ForgotPassword(ctx context.Context, email string) error

	// VerifyCode checks a password-reset code before the new password step.
	VerifyCode(ctx context.Context, email, code string) error

	// ResetPassword sets a new password after a verified code.
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// Catalog defines the read-only movie/TV catalog operations. Movie and TV
// mirrors share one method set distinguished by the kind argument.
type Catalog interface {
	All(ctx context.Context, kind string) ([]models.ContentItem, error)
	ByCategory(ctx context.Context, kind, slug string) ([]models.ContentItem, error)
	ByID(ctx context.Context, kind, id string) (*models.ContentItem, error)
	Search(ctx context.Context, kind, query string) ([]models.ContentItem, error)
	Popular(ctx context.Context, kind string) ([]models.ContentItem, error)
	TopRated(ctx context.Context, kind string) ([]models.ContentItem, error)
	Trending(ctx context.Context, kind string) ([]models.ContentItem, error)
	Similar(ctx context.Context, kind string, tmdbID int64) ([]models.ContentItem, error)
	Cast(ctx context.Context, kind string, tmdbID int64) ([]models.CastMember, error)
	Images(ctx context.Context, kind string, tmdbID int64) (*models.ImageSet, error)
	Videos(ctx context.Context, kind string, tmdbID int64) ([]models.VideoRef, error)
	Genres(ctx context.Context, kind string) ([]models.Genre, error)
	Season(ctx context.Context, tmdbID int64, number int) (*models.Season, error)
}

// Interactions defines the watchlist and watch-history operations.
type Interactions interface {
	AddToWatchlist(ctx context.Context, entry models.WatchlistEntry) error
	RemoveFromWatchlist(ctx context.Context, userID, movieID string) error
	Watchlist(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
	UpdateHistory(ctx context.Context, entry models.HistoryEntry) error
	History(ctx context.Context, userID string) ([]models.HistoryEntry, error)
}
