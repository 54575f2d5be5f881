package playback

import (
	"math"

	"github.com/streamix/streamix-cli/internal/models"
)

// ResolveResume scans the user's history for a prior unfinished position on
// the given title. A nil season or episode acts as a wildcard. The offset is
// applied iff a matching entry exists with startAt > 0 and completed unset;
// otherwise playback starts from zero.
//
// The scan is linear over the full history list; at this data scale no
// indexing is warranted.
func ResolveResume(history []models.HistoryEntry, movieID string, season, episode *int) (float64, bool) {
	for _, entry := range history {
		if !entry.Matches(movieID, season, episode) {
			continue
		}
		if entry.StartAt > 0 && !entry.Completed {
			return math.Floor(entry.StartAt), true
		}
		return 0, false
	}
	return 0, false
}
