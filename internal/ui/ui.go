package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/streamix/streamix-cli/internal/models"
	"github.com/streamix/streamix-cli/internal/playback"
	"github.com/streamix/streamix-cli/internal/shared"
	"github.com/streamix/streamix-cli/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	DashboardView ViewState = iota
	SearchView
	ResultsView
	DetailView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	prevView     ViewState
	engine       *tasks.BrowseEngine
	player       shared.PlayerConfig
	userID       string
	width        int
	height       int
	browseList   list.Model
	resultList   list.Model
	searchInput  textinput.Model
	dashboard    *tasks.DashboardResult
	details      *tasks.DetailsResult
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	notice       string
	err          error
	help         help.Model
	keys         keyMap
}

type dashboardFetchedMsg struct {
	result *tasks.DashboardResult
	err    error
}

type searchResultsMsg struct {
	query string
	items []models.ContentItem
	err   error
}

type detailsFetchedMsg struct {
	result *tasks.DetailsResult
	err    error
}

type watchlistToggledMsg struct {
	movieID string
	inList  bool
	err     error
}

type playbackOpenedMsg struct {
	title string
	err   error
}

type progressUpdateMsg tasks.ProgressUpdate

// NewModel creates a new TUI model with the provided dependencies. An empty
// userID disables the watchlist features.
func NewModel(ctx context.Context, engine *tasks.BrowseEngine, player shared.PlayerConfig, userID string) *Model {
	input := textinput.New()
	input.Placeholder = "Search movies and TV shows..."
	input.CharLimit = 100

	return &Model{
		ctx:         ctx,
		view:        DashboardView,
		engine:      engine,
		player:      player,
		userID:      userID,
		searchInput: input,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init initializes the TUI by fetching the dashboard.
func (m *Model) Init() tea.Cmd {
	return m.fetchDashboard()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.browseList.Width() == 0 {
			m.browseList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.resultList.Width() == 0 {
			m.resultList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case DashboardView:
			return m.handleDashboardKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case ResultsView:
			return m.handleResultsKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}

	case dashboardFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.dashboard = msg.result
		m.browseList = list.New(dashboardItems(msg.result), list.NewDefaultDelegate(), 0, 0)
		m.browseList.Title = "Streamix"
		m.browseList.SetSize(m.width-4, m.height-8)
		return m, nil

	case searchResultsMsg:
		if msg.err != nil {
			m.notice = styles.err.Render(fmt.Sprintf("Search failed: %v", msg.err))
			m.view = SearchView
			return m, nil
		}
		items := make([]list.Item, len(msg.items))
		for i, item := range msg.items {
			items[i] = contentItem{item: item}
		}
		m.resultList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.resultList.Title = fmt.Sprintf("Results for '%s'", msg.query)
		m.resultList.SetSize(m.width-4, m.height-8)
		m.view = ResultsView
		return m, nil

	case detailsFetchedMsg:
		if msg.err != nil {
			m.notice = styles.err.Render(fmt.Sprintf("Error: %v", msg.err))
			m.view = m.prevView
			return m, nil
		}
		m.details = msg.result
		m.view = DetailView
		return m, nil

	case watchlistToggledMsg:
		if msg.err != nil {
			m.notice = styles.err.Render(fmt.Sprintf("Watchlist update failed: %v", msg.err))
			return m, nil
		}
		if m.dashboard != nil {
			m.dashboard.WatchlistIDs[msg.movieID] = msg.inList
		}
		if m.details != nil && m.details.Item.ID == msg.movieID {
			m.details.InWatchlist = msg.inList
		}
		if msg.inList {
			m.notice = styles.ok.Render("Added to watchlist")
		} else {
			m.notice = styles.ok.Render("Removed from watchlist")
		}
		return m, nil

	case playbackOpenedMsg:
		if msg.err != nil {
			m.notice = styles.err.Render(fmt.Sprintf("Playback failed: %v", msg.err))
		} else {
			m.notice = styles.ok.Render(fmt.Sprintf("Opened '%s' in the browser", msg.title))
		}
		return m, nil

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case DashboardView:
		return m.renderDashboard()
	case SearchView:
		return m.renderSearch()
	case ResultsView:
		return m.renderResults()
	case DetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.notice = ""
		m.view = SearchView
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()
	case "enter":
		if item, ok := m.selectedBrowseItem(); ok {
			m.prevView = DashboardView
			return m, m.fetchDetails(item)
		}
	case "w":
		if item, ok := m.selectedBrowseItem(); ok {
			return m, m.toggleWatchlist(item, m.inWatchlist(item.ID))
		}
	}

	var cmd tea.Cmd
	m.browseList, cmd = m.browseList.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = DashboardView
		m.searchInput.Blur()
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.searchInput.Blur()
		return m, m.runSearch(query)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m *Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = SearchView
		return m, m.searchInput.Focus()
	case "enter":
		if item, ok := m.selectedResultItem(); ok {
			m.prevView = ResultsView
			return m, m.fetchDetails(item)
		}
	case "w":
		if item, ok := m.selectedResultItem(); ok {
			return m, m.toggleWatchlist(item, m.inWatchlist(item.ID))
		}
	}

	var cmd tea.Cmd
	m.resultList, cmd = m.resultList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.notice = ""
		m.details = nil
		m.view = m.prevView
		return m, nil
	case "w":
		if m.details != nil {
			return m, m.toggleWatchlist(m.details.Item, m.details.InWatchlist)
		}
	case "o":
		if m.details != nil {
			return m, m.openPlayback(m.details)
		}
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case DashboardView:
		m.browseList, cmd = m.browseList.Update(msg)
	case ResultsView:
		m.resultList, cmd = m.resultList.Update(msg)
	case SearchView:
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) selectedBrowseItem() (models.ContentItem, bool) {
	selected := m.browseList.SelectedItem()
	if selected == nil {
		return models.ContentItem{}, false
	}
	ci, ok := selected.(contentItem)
	return ci.item, ok
}

func (m *Model) selectedResultItem() (models.ContentItem, bool) {
	selected := m.resultList.SelectedItem()
	if selected == nil {
		return models.ContentItem{}, false
	}
	ci, ok := selected.(contentItem)
	return ci.item, ok
}

func (m *Model) inWatchlist(movieID string) bool {
	if m.dashboard == nil {
		return false
	}
	return m.dashboard.WatchlistIDs[movieID]
}

func (m *Model) fetchDashboard() tea.Cmd {
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	go func() {
		result, err := m.engine.Dashboard(m.ctx, m.progressChan, m.userID)
		m.dashboard = result
		m.err = err
		close(m.progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return dashboardFetchedMsg{result: m.dashboard, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			result, err := m.dashboard, m.err
			m.progressChan = nil
			m.err = nil
			return dashboardFetchedMsg{result: result, err: err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		items, err := m.engine.Search(m.ctx, query)
		return searchResultsMsg{query: query, items: items, err: err}
	}
}

func (m *Model) fetchDetails(item models.ContentItem) tea.Cmd {
	kind := item.Type
	if kind == "" {
		kind = models.TypeMovie
	}
	return func() tea.Msg {
		result, err := m.engine.Details(m.ctx, nil, kind, item.ID, m.userID)
		return detailsFetchedMsg{result: result, err: err}
	}
}

// openPlayback hands the title off to the embedded player in the browser,
// carrying the resume offset. TV shows start at S01E01; episode selection
// belongs to the watch command.
func (m *Model) openPlayback(d *tasks.DetailsResult) tea.Cmd {
	kind := d.Item.Type
	if kind == "" {
		kind = models.TypeMovie
	}
	var season, episode *int
	if kind == models.TypeTV {
		first := 1
		season, episode = &first, &first
	}
	title := d.Item.DisplayTitle()
	resumeAt := d.ResumeAt

	return func() tea.Msg {
		embedURL, err := playback.EmbedURL(m.player, kind, d.Item.TmdbID, season, episode, resumeAt)
		if err != nil {
			return playbackOpenedMsg{title: title, err: err}
		}
		if err := playback.OpenInBrowser(embedURL); err != nil {
			return playbackOpenedMsg{title: title, err: err}
		}
		return playbackOpenedMsg{title: title}
	}
}

func (m *Model) toggleWatchlist(item models.ContentItem, inList bool) tea.Cmd {
	return func() tea.Msg {
		newState, err := m.engine.ToggleWatchlist(m.ctx, m.userID, item, inList)
		return watchlistToggledMsg{movieID: item.ID, inList: newState, err: err}
	}
}

// dashboardItems flattens the dashboard rows into a single list, preserving
// row order and labeling each entry with the row it came from.
func dashboardItems(result *tasks.DashboardResult) []list.Item {
	var items []list.Item
	seen := make(map[string]bool)
	for _, row := range result.Rows {
		for _, item := range row.Items {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			items = append(items, contentItem{item: item, row: row.Title})
		}
	}
	return items
}

func (m *Model) renderDashboard() string {
	if m.dashboard == nil {
		title := styles.title.Render("Loading dashboard...")
		return fmt.Sprintf("%s\n\n%s", title, m.progress.Message)
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.search, m.keys.watchlist, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	if m.notice != "" {
		return fmt.Sprintf("%s\n\n%s\n%s", m.browseList.View(), m.notice, helpView)
	}
	return fmt.Sprintf("%s\n\n%s", m.browseList.View(), helpView)
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("Search")

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	if m.notice != "" {
		return fmt.Sprintf("%s\n%s\n\n%s\n%s", title, m.searchInput.View(), m.notice, helpView)
	}
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.searchInput.View(), helpView)
}

func (m *Model) renderResults() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.watchlist, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.resultList.View(), helpView)
}

func (m *Model) renderDetail() string {
	if m.details == nil {
		return styles.warn.Render("No details available\n\nPress esc to go back")
	}

	d := m.details
	title := styles.title.Render(d.Item.DisplayTitle())

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	kind := d.Item.Type
	if kind == "" {
		kind = models.TypeMovie
	}
	b.WriteString(fmt.Sprintf("\nType: %s", kind))
	if d.GenreLabel != "" {
		b.WriteString(fmt.Sprintf("\nGenres: %s", d.GenreLabel))
	}
	if d.Item.VoteAverage > 0 {
		b.WriteString(fmt.Sprintf("\nRating: %.1f", d.Item.VoteAverage))
	}
	if len(d.Seasons) > 0 {
		b.WriteString(fmt.Sprintf("\nSeasons: %d", len(d.Seasons)))
	}
	if d.ResumeAt > 0 {
		b.WriteString(fmt.Sprintf("\nResume at: %.0fs", d.ResumeAt))
	}
	if d.InWatchlist {
		b.WriteString("\n" + styles.ok.Render("✓ In watchlist"))
	}

	if len(d.Cast) > 0 {
		b.WriteString("\n\nCast:")
		limit := len(d.Cast)
		if limit > 5 {
			limit = 5
		}
		for _, member := range d.Cast[:limit] {
			b.WriteString(fmt.Sprintf("\n  • %s", member.Name))
		}
	}

	if len(d.Similar) > 0 {
		b.WriteString("\n\nSimilar:")
		for _, item := range d.Similar {
			b.WriteString(fmt.Sprintf("\n  • %s", item.DisplayTitle()))
		}
	}

	if m.notice != "" {
		b.WriteString("\n\n" + m.notice)
	}

	helpKeys := []key.Binding{m.keys.play, m.keys.watchlist, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	b.WriteString("\n\n" + helpView)

	return b.String()
}
