package playback

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/streamix/streamix-cli/internal/shared"
)

// EmbedURL builds the third-party embed URL for a title. TV targets require
// season and episode path segments; movies take only the TMDB ID. A positive
// startAt is forwarded as a query parameter so the player resumes in place.
func EmbedURL(cfg shared.PlayerConfig, kind string, tmdbID int64, season, episode *int, startAt float64) (string, error) {
	base := strings.TrimRight(cfg.EmbedBaseURL, "/")
	if base == "" {
		return "", fmt.Errorf("%w: embed base URL not configured", shared.ErrInvalidConfig)
	}

	var path string
	switch kind {
	case "tv":
		if season == nil || episode == nil {
			return "", fmt.Errorf("%w: tv playback requires season and episode", shared.ErrInvalidInput)
		}
		path = fmt.Sprintf("%s/tv/%d/%d/%d", base, tmdbID, *season, *episode)
	default:
		path = fmt.Sprintf("%s/movie/%d", base, tmdbID)
	}

	params := url.Values{}
	if cfg.PrimaryColor != "" {
		params.Set("primaryColor", cfg.PrimaryColor)
	}
	if cfg.Autoplay {
		params.Set("autoplay", "true")
	}
	if startAt > 0 {
		params.Set("startAt", fmt.Sprintf("%d", int64(startAt)))
	}

	if encoded := params.Encode(); encoded != "" {
		return path + "?" + encoded, nil
	}
	return path, nil
}
