package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/surfscout/surfscout/internal/favorites"
	"github.com/surfscout/surfscout/internal/models"
	"github.com/surfscout/surfscout/internal/surf"
)

// Message types for async operations

// searchResultMsg is sent when a beach search completes
type searchResultMsg struct {
	locations []models.Location
	err       error
}

// evaluationMsg is sent when conditions have been fetched and scored
type evaluationMsg struct {
	eval *surf.Evaluation
	err  error
}

// favoritesLoadedMsg is sent when saved beaches have been read
type favoritesLoadedMsg struct {
	beaches []favorites.Beach
	err     error
}

// favoriteSavedMsg is sent when a beach has been bookmarked
type favoriteSavedMsg struct {
	beach favorites.Beach
	err   error
}

// searchBeaches resolves a beach name in the background
func searchBeaches(svc *surf.Service, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		locations, err := svc.SearchBeaches(ctx, query)
		return searchResultMsg{locations: locations, err: err}
	}
}

// evaluateBeach fetches conditions and scores them in the background.
// The budget covers two sequential upstream calls, the second a
// generative model.
func evaluateBeach(svc *surf.Service, loc models.Location) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		eval, err := svc.Evaluate(ctx, loc.ID, loc.Name)
		return evaluationMsg{eval: eval, err: err}
	}
}

// loadFavorites reads the saved beaches
func loadFavorites(repo *favorites.Repository) tea.Cmd {
	return func() tea.Msg {
		beaches, err := repo.List()
		return favoritesLoadedMsg{beaches: beaches, err: err}
	}
}

// saveFavorite bookmarks a beach
func saveFavorite(repo *favorites.Repository, loc models.Location) tea.Cmd {
	return func() tea.Msg {
		beach := favorites.Beach{
			LocationID: loc.ID,
			Name:       loc.Name,
			Region:     loc.Region,
			State:      loc.State,
		}
		err := repo.Save(&beach)
		return favoriteSavedMsg{beach: beach, err: err}
	}
}
