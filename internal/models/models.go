package models

import "fmt"

// Content type discriminators used by the catalog service.
const (
	TypeMovie = "movie"
	TypeTV    = "tv"
)

// posterBaseURL prefixes TMDB poster paths when a full URL is absent.
const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// ContentItem represents a movie or TV show from the catalog service.
//
// Movies populate Title and ReleaseDate; TV shows populate Name and
// FirstAirDate. DisplayTitle resolves the difference for presentation.
type ContentItem struct {
	ID              string   `json:"id"`
	TmdbID          int64    `json:"tmdbId"`
	Title           string   `json:"title,omitempty"`
	Name            string   `json:"name,omitempty"`
	Overview        string   `json:"overview,omitempty"`
	PosterURL       string   `json:"posterUrl,omitempty"`
	PosterPath      string   `json:"poster_path,omitempty"`
	BackdropURL     string   `json:"backdropUrl,omitempty"`
	BackdropPath    string   `json:"backdrop_path,omitempty"`
	GenreIDs        []int64  `json:"genreIds,omitempty"`
	Category        string   `json:"category,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	VoteAverage     float64  `json:"voteAverage,omitempty"`
	ReleaseDate     string   `json:"releaseDate,omitempty"`
	FirstAirDate    string   `json:"firstAirDate,omitempty"`
	NumberOfSeasons int      `json:"numberOfSeasons,omitempty"`
	Type            string   `json:"type,omitempty"`
}

// DisplayTitle returns the movie title or TV show name, whichever is set.
func (c ContentItem) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}

// IsTV reports whether the item is a TV show.
func (c ContentItem) IsTV() bool { return c.Type == TypeTV }

// Poster returns a fully qualified poster URL, preferring the service-provided
// URL over the raw TMDB path.
func (c ContentItem) Poster() string {
	if c.PosterURL != "" {
		return c.PosterURL
	}
	if c.PosterPath != "" {
		return posterBaseURL + c.PosterPath
	}
	return ""
}

// Genre maps a TMDB genre ID to its display name.
type Genre struct {
	ID     string `json:"id"`
	TmdbID int64  `json:"tmdbId"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"` // movie or tv
}

// CastMember represents an actor credit from the catalog's cast endpoint.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// ImageSet contains the backdrops and posters returned by the images endpoint.
type ImageSet struct {
	Backdrops []Image `json:"backdrops,omitempty"`
	Posters   []Image `json:"posters,omitempty"`
}

// Image is a single TMDB image resource.
type Image struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

// VideoRef references a trailer or clip hosted off-platform.
type VideoRef struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Season describes one season of a TV show from the TMDB season passthrough.
type Season struct {
	SeasonNumber int       `json:"season_number"`
	Name         string    `json:"name,omitempty"`
	Overview     string    `json:"overview,omitempty"`
	EpisodeCount int       `json:"episode_count,omitempty"`
	AirDate      string    `json:"air_date,omitempty"`
	PosterPath   string    `json:"poster_path,omitempty"`
	Episodes     []Episode `json:"episodes,omitempty"`
}

// Episode describes a single episode within a season.
type Episode struct {
	EpisodeNumber int    `json:"episode_number"`
	Name          string `json:"name,omitempty"`
	Overview      string `json:"overview,omitempty"`
	AirDate       string `json:"air_date,omitempty"`
	StillPath     string `json:"still_path,omitempty"`
	Runtime       int    `json:"runtime,omitempty"`
}

// WatchlistEntry is a saved title in a user's watchlist.
type WatchlistEntry struct {
	UserID     string `json:"userId"`
	MovieID    string `json:"movieId"`
	MovieTitle string `json:"movieTitle,omitempty"`
	PosterURL  string `json:"posterUrl,omitempty"`
}

// HistoryEntry records playback position for one (user, title, season,
// episode) tuple. Season and Episode are nil for movies.
type HistoryEntry struct {
	UserID     string  `json:"userId"`
	MovieID    string  `json:"movieId"`
	StartAt    float64 `json:"startAt"`  // seconds
	Duration   float64 `json:"duration"` // seconds, 0 when unreported
	Completed  bool    `json:"completed"`
	Season     *int    `json:"season,omitempty"`
	Episode    *int    `json:"episode,omitempty"`
	MovieTitle string  `json:"movieTitle,omitempty"`
	PosterURL  string  `json:"posterUrl,omitempty"`
}

// Matches reports whether the entry belongs to the given title and the given
// season/episode. A nil season or episode argument acts as a wildcard, so a
// movie lookup matches regardless of episode bookkeeping.
func (h HistoryEntry) Matches(movieID string, season, episode *int) bool {
	if h.MovieID != movieID {
		return false
	}
	if season != nil && (h.Season == nil || *h.Season != *season) {
		return false
	}
	if episode != nil && (h.Episode == nil || *h.Episode != *episode) {
		return false
	}
	return true
}

// Session holds the authenticated user's identity and tokens. It is the only
// client-side persistent state and is cleared wholesale on logout or when any
// request returns 401.
type Session struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Remember     bool   `json:"remember"`
}

// Valid reports whether the session carries enough state to authenticate.
func (s Session) Valid() bool { return s.AccessToken != "" && s.UserID != "" }

func (s Session) String() string {
	return fmt.Sprintf("%s (%s)", s.Email, s.UserID)
}
