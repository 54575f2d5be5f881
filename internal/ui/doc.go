// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view browsing workflow:
//  1. [DashboardView] : Browse the merged dashboard rows
//  2. [SearchView] : Query movies and TV shows by title
//  3. [ResultsView] : Pick a title from the search results
//  4. [DetailView] : Inspect genres, cast, similar titles, and seasons
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Dashboard progress updates flow through a channel from the BrowseEngine, providing non-blocking status reporting while the curated lists load.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, /, w, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
