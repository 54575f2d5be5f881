package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchCatalog Phase = iota
	FetchWatchlist
	FetchHistory
	FetchDetails
	FetchCast
	FetchSimilar
	FetchSeasons
	MergeResults
	ResolveResume
)

func (p Phase) String() string {
	switch p {
	case FetchCatalog:
		return "fetch_catalog"
	case FetchWatchlist:
		return "fetch_watchlist"
	case FetchHistory:
		return "fetch_history"
	case FetchDetails:
		return "fetch_details"
	case FetchCast:
		return "fetch_cast"
	case FetchSimilar:
		return "fetch_similar"
	case FetchSeasons:
		return "fetch_seasons"
	case MergeResults:
		return "merge_results"
	case ResolveResume:
		return "resolve_resume"
	default:
		return ""
	}
}

func fetchCatalogUpdate(step, total int, list string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchCatalog,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching %s...", list),
	}
}

func fetchWatchlistUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchWatchlist,
		Step:    step,
		Total:   total,
		Message: "Fetching watchlist...",
	}
}

func fetchDetailsUpdate(title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchDetails,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Loading %s...", title),
	}
}

func mergeResultsUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   MergeResults,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Merged %d titles", count),
	}
}

func resolveResumeUpdate(offset float64) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveResume,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Resuming at %.0fs", offset),
	}
}
