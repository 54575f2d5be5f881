// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"

	"github.com/streamix/streamix-cli/internal/models"
)

// MockCatalog is a test double for the catalog service client. Unset
// function fields return zero values.
type MockCatalog struct {
	AllFn      func(ctx context.Context, kind string) ([]models.ContentItem, error)
	CategoryFn func(ctx context.Context, kind, slug string) ([]models.ContentItem, error)
	ByIDFn     func(ctx context.Context, kind, id string) (*models.ContentItem, error)
	SearchFn   func(ctx context.Context, kind, query string) ([]models.ContentItem, error)
	PopularFn  func(ctx context.Context, kind string) ([]models.ContentItem, error)
	TopRatedFn func(ctx context.Context, kind string) ([]models.ContentItem, error)
	TrendingFn func(ctx context.Context, kind string) ([]models.ContentItem, error)
	SimilarFn  func(ctx context.Context, kind string, tmdbID int64) ([]models.ContentItem, error)
	CastFn     func(ctx context.Context, kind string, tmdbID int64) ([]models.CastMember, error)
	ImagesFn   func(ctx context.Context, kind string, tmdbID int64) (*models.ImageSet, error)
	VideosFn   func(ctx context.Context, kind string, tmdbID int64) ([]models.VideoRef, error)
	GenresFn   func(ctx context.Context, kind string) ([]models.Genre, error)
	SeasonFn   func(ctx context.Context, tmdbID int64, number int) (*models.Season, error)
}

func (m *MockCatalog) All(ctx context.Context, kind string) ([]models.ContentItem, error) {
	if m.AllFn != nil {
		return m.AllFn(ctx, kind)
	}
	return nil, nil
}

func (m *MockCatalog) ByCategory(ctx context.Context, kind, slug string) ([]models.ContentItem, error) {
	if m.CategoryFn != nil {
		return m.CategoryFn(ctx, kind, slug)
	}
	return nil, nil
}

func (m *MockCatalog) ByID(ctx context.Context, kind, id string) (*models.ContentItem, error) {
	if m.ByIDFn != nil {
		return m.ByIDFn(ctx, kind, id)
	}
	return &models.ContentItem{ID: id, Type: kind}, nil
}

func (m *MockCatalog) Search(ctx context.Context, kind, query string) ([]models.ContentItem, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, kind, query)
	}
	return nil, nil
}

func (m *MockCatalog) Popular(ctx context.Context, kind string) ([]models.ContentItem, error) {
	if m.PopularFn != nil {
		return m.PopularFn(ctx, kind)
	}
	return nil, nil
}

func (m *MockCatalog) TopRated(ctx context.Context, kind string) ([]models.ContentItem, error) {
	if m.TopRatedFn != nil {
		return m.TopRatedFn(ctx, kind)
	}
	return nil, nil
}

func (m *MockCatalog) Trending(ctx context.Context, kind string) ([]models.ContentItem, error) {
	if m.TrendingFn != nil {
		return m.TrendingFn(ctx, kind)
	}
	return nil, nil
}

func (m *MockCatalog) Similar(ctx context.Context, kind string, tmdbID int64) ([]models.ContentItem, error) {
	if m.SimilarFn != nil {
		return m.SimilarFn(ctx, kind, tmdbID)
	}
	return nil, nil
}

func (m *MockCatalog) Cast(ctx context.Context, kind string, tmdbID int64) ([]models.CastMember, error) {
	if m.CastFn != nil {
		return m.CastFn(ctx, kind, tmdbID)
	}
	return nil, nil
}

func (m *MockCatalog) Images(ctx context.Context, kind string, tmdbID int64) (*models.ImageSet, error) {
	if m.ImagesFn != nil {
		return m.ImagesFn(ctx, kind, tmdbID)
	}
	return &models.ImageSet{}, nil
}

func (m *MockCatalog) Videos(ctx context.Context, kind string, tmdbID int64) ([]models.VideoRef, error) {
	if m.VideosFn != nil {
		return m.VideosFn(ctx, kind, tmdbID)
	}
	return nil, nil
}

func (m *MockCatalog) Genres(ctx context.Context, kind string) ([]models.Genre, error) {
	if m.GenresFn != nil {
		return m.GenresFn(ctx, kind)
	}
	return nil, nil
}

func (m *MockCatalog) Season(ctx context.Context, tmdbID int64, number int) (*models.Season, error) {
	if m.SeasonFn != nil {
		return m.SeasonFn(ctx, tmdbID, number)
	}
	return &models.Season{SeasonNumber: number}, nil
}

// MockInteractions is a test double for the interaction service client. It
// records writes so tests can assert on submitted entries.
type MockInteractions struct {
	WatchlistFn     func(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
	HistoryFn       func(ctx context.Context, userID string) ([]models.HistoryEntry, error)
	AddErr          error
	RemoveErr       error
	UpdateErr       error
	AddedEntries    []models.WatchlistEntry
	RemovedMovieIDs []string
	UpdatedEntries  []models.HistoryEntry
}

func (m *MockInteractions) AddToWatchlist(ctx context.Context, entry models.WatchlistEntry) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	m.AddedEntries = append(m.AddedEntries, entry)
	return nil
}

func (m *MockInteractions) RemoveFromWatchlist(ctx context.Context, userID, movieID string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.RemovedMovieIDs = append(m.RemovedMovieIDs, movieID)
	return nil
}

func (m *MockInteractions) Watchlist(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	if m.WatchlistFn != nil {
		return m.WatchlistFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockInteractions) UpdateHistory(ctx context.Context, entry models.HistoryEntry) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.UpdatedEntries = append(m.UpdatedEntries, entry)
	return nil
}

func (m *MockInteractions) History(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	if m.HistoryFn != nil {
		return m.HistoryFn(ctx, userID)
	}
	return nil, nil
}

// MockAuth is a test double for the identity service client.
type MockAuth struct {
	LoginFn   func(ctx context.Context, email, password string) (*models.Session, error)
	LogoutErr error
}

func (m *MockAuth) Register(ctx context.Context, name, email, password string) error { return nil }

func (m *MockAuth) VerifyEmail(ctx context.Context, email, code string) error { return nil }

func (m *MockAuth) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return &models.Session{UserID: "1", Email: email, AccessToken: "test-token"}, nil
}

func (m *MockAuth) Logout(ctx context.Context, refreshToken string) error { return m.LogoutErr }

func (m *MockAuth) ForgotPassword(ctx context.Context, email string) error { return nil }

func (m *MockAuth) VerifyCode(ctx context.Context, email, code string) error { return nil }

func (m *MockAuth) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	return nil
}

// StaticTokens is a TokenSource returning a fixed token.
type StaticTokens string

func (s StaticTokens) Token() string { return string(s) }

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
