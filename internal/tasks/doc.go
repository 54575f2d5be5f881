// Package tasks implements the page-level workflows of the Streamix client.
//
// The core abstraction is [BrowseEngine], which assembles the dashboard,
// details, and search views from concurrent service calls and applies the
// client-side merge rules (deduplication, category rows, watchlist
// membership). Long-running operations emit [ProgressUpdate] events via
// channels for non-blocking status reporting to the CLI and TUI layers.
//
// Fetch criticality follows the error-handling policy of the hosted client:
// the primary content of a view is blocking, while secondary sources (cast,
// similar titles, watchlist membership) fail silently so an outage there
// never blocks primary content display.
package tasks
