// package formatter renders catalog, watchlist, and history data for CLI
// output and exports it to CSV and JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/shared"
)

// FormatDuration renders seconds as m:ss or h:mm:ss.
func FormatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ContentTable renders catalog items as an aligned text table.
func ContentTable(items []models.ContentItem) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tCATEGORY\tRATING")
	for _, item := range items {
		kind := item.Type
		if kind == "" {
			kind = models.TypeMovie
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f\n", item.ID, item.DisplayTitle(), kind, item.Category, item.VoteAverage)
	}
	w.Flush()

	return buf.String()
}

// WatchlistTable renders watchlist entries as an aligned text table.
func WatchlistTable(entries []models.WatchlistEntry) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "MOVIE ID\tTITLE")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\n", entry.MovieID, entry.MovieTitle)
	}
	w.Flush()

	return buf.String()
}

// HistoryTable renders history entries as an aligned text table with
// position, duration, and completion columns.
func HistoryTable(entries []models.HistoryEntry) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "MOVIE ID\tTITLE\tPOSITION\tDURATION\tDONE")
	for _, entry := range entries {
		done := ""
		if entry.Completed {
			done = "✓"
		}
		title := entry.MovieTitle
		if entry.Season != nil && entry.Episode != nil {
			title = fmt.Sprintf("%s S%02dE%02d", title, *entry.Season, *entry.Episode)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			entry.MovieID, title, FormatDuration(entry.StartAt), FormatDuration(entry.Duration), done)
	}
	w.Flush()

	return buf.String()
}

// CastList renders cast credits as "Name as Character" lines.
func CastList(cast []models.CastMember) string {
	var buf bytes.Buffer
	for _, member := range cast {
		if member.Character != "" {
			fmt.Fprintf(&buf, "%s as %s\n", member.Name, member.Character)
		} else {
			fmt.Fprintf(&buf, "%s\n", member.Name)
		}
	}
	return buf.String()
}

// HistoryToCSV converts history entries to CSV with columns:
// MovieID, Title, Season, Episode, StartAt, Duration, Completed
func HistoryToCSV(entries []models.HistoryEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"MovieID", "Title", "Season", "Episode", "StartAt", "Duration", "Completed"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		season, episode := "", ""
		if entry.Season != nil {
			season = strconv.Itoa(*entry.Season)
		}
		if entry.Episode != nil {
			episode = strconv.Itoa(*entry.Episode)
		}
		record := []string{
			entry.MovieID,
			entry.MovieTitle,
			season,
			episode,
			strconv.FormatFloat(entry.StartAt, 'f', -1, 64),
			strconv.FormatFloat(entry.Duration, 'f', -1, 64),
			strconv.FormatBool(entry.Completed),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WatchlistToCSV converts watchlist entries to CSV with columns:
// MovieID, Title, PosterURL
func WatchlistToCSV(entries []models.WatchlistEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"MovieID", "Title", "PosterURL"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		if err := writer.Write([]string{entry.MovieID, entry.MovieTitle, entry.PosterURL}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteExport writes data to path as JSON or CSV depending on format.
// The toCSV function converts the payload when format is "csv".
func WriteExport(path, format string, data any, toCSV func() ([]byte, error)) error {
	var out []byte
	var err error

	switch format {
	case "csv":
		out, err = toCSV()
	case "json", "":
		out, err = shared.MarshalJSON(data, true)
	default:
		return fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
