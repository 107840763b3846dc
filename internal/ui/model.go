package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/surfscout/surfscout/internal/favorites"
	"github.com/surfscout/surfscout/internal/models"
	"github.com/surfscout/surfscout/internal/surf"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch    AppState = iota // Enter a beach name
	StateBeachList                 // Choose among matched beaches
	StateLoading                   // Fetching conditions / scoring
	StateDisplay                   // Show score and conditions
	StateError                     // Error state
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	// Search
	searchInput textinput.Model
	searchQuery string

	// Matched beaches
	locations []models.Location
	beachList list.Model
	selected  *models.Location

	// Services
	svc  *surf.Service
	favs *favorites.Repository

	// Saved beaches shown on the search screen
	favorites []favorites.Beach
	saved     bool // current beach bookmarked this session

	// Result
	evaluation *surf.Evaluation

	spinner     spinner.Model
	loadingNote string

	// Optional beach name to evaluate immediately on startup
	initialQuery string
}

// NewModel creates a new application model
func NewModel(svc *surf.Service, favs *favorites.Repository, initialQuery string) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter an Australian beach name (e.g. Bondi Beach)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 56

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	return Model{
		state:        StateSearch,
		searchInput:  ti,
		svc:          svc,
		favs:         favs,
		spinner:      s,
		initialQuery: initialQuery,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadFavorites(m.favs), textinput.Blink}
	if m.initialQuery != "" {
		cmds = append(cmds, searchBeaches(m.svc, m.initialQuery))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateBeachList {
			m.beachList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		// A failed read just means no favorites are shown
		if msg.err == nil {
			m.favorites = msg.beaches
		}
		if m.initialQuery != "" && m.state == StateSearch {
			m.searchQuery = m.initialQuery
			m.initialQuery = ""
			m.loadingNote = "Searching for " + m.searchQuery + "..."
			m.state = StateLoading
			return m, m.spinner.Tick
		}
		return m, nil

	case searchResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.locations = msg.locations
		if len(msg.locations) == 1 {
			// Single match: no point making the user pick
			loc := msg.locations[0]
			return m.startEvaluation(loc)
		}
		m.beachList = createBeachList(msg.locations, m.width-4, m.height-10)
		m.state = StateBeachList
		return m, nil

	case evaluationMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.evaluation = msg.eval
		m.state = StateDisplay
		return m, nil

	case favoriteSavedMsg:
		if msg.err == nil {
			m.saved = true
		}
		return m, loadFavorites(m.favs)

	case spinner.TickMsg:
		if m.state == StateLoading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global quit; plain "q" stays usable for typing beach names
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if keyMsg.String() == "q" && m.state != StateSearch {
			return m, tea.Quit
		}

		switch m.state {
		case StateSearch:
			return m.handleSearchInput(keyMsg)

		case StateBeachList:
			return m.handleBeachList(keyMsg)

		case StateDisplay:
			switch keyMsg.String() {
			case "s":
				return m.resetToSearch()
			case "f":
				if m.selected != nil && !m.saved {
					return m, saveFavorite(m.favs, *m.selected)
				}
				return m, nil
			}
			return m, nil

		case StateError:
			// Any key returns to search
			return m.resetToSearch()
		}
	}

	switch m.state {
	case StateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StateBeachList:
		m.beachList, cmd = m.beachList.Update(msg)
	}

	return m, cmd
}

// handleSearchInput handles keyboard input in search state
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.err != nil && msg.Type != tea.KeyEnter {
		m.err = nil
	}

	if msg.Type == tea.KeyEnter {
		query := m.searchInput.Value()
		if query == "" {
			return m, nil
		}
		m.searchQuery = query
		m.err = nil
		m.loadingNote = "Searching for " + query + "..."
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, searchBeaches(m.svc, query))
	}

	// Digits select a favorite when the input is empty
	if m.searchInput.Value() == "" && len(m.favorites) > 0 {
		if n := favoriteIndex(msg.String()); n >= 0 && n < len(m.favorites) {
			loc := m.favorites[n].Location()
			m.searchQuery = loc.Name
			return m.startEvaluation(loc)
		}
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleBeachList handles keyboard input in the beach selection list
func (m Model) handleBeachList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg.Type == tea.KeyEnter {
		if item, ok := m.beachList.SelectedItem().(beachItem); ok {
			return m.startEvaluation(item.location)
		}
	}
	if msg.String() == "s" || msg.Type == tea.KeyEsc {
		return m.resetToSearch()
	}

	m.beachList, cmd = m.beachList.Update(msg)
	return m, cmd
}

// startEvaluation kicks off the conditions fetch and scoring for a beach
func (m Model) startEvaluation(loc models.Location) (tea.Model, tea.Cmd) {
	m.selected = &loc
	m.saved = false
	m.evaluation = nil
	m.loadingNote = "Checking the surf at " + loc.Name + "..."
	m.state = StateLoading
	return m, tea.Batch(m.spinner.Tick, evaluateBeach(m.svc, loc))
}

// resetToSearch clears per-request state and returns to the search screen
func (m Model) resetToSearch() (tea.Model, tea.Cmd) {
	m.state = StateSearch
	m.err = nil
	m.selected = nil
	m.evaluation = nil
	m.locations = nil
	m.saved = false
	m.searchInput.SetValue("")
	m.searchInput.Focus()
	return m, textinput.Blink
}

// favoriteIndex maps keys "1".."9" to favorite slots, -1 otherwise
func favoriteIndex(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '1')
	}
	return -1
}
