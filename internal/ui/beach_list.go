package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/surfscout/surfscout/internal/models"
)

// beachItem wraps a Location for use in a list
type beachItem struct {
	location models.Location
}

// FilterValue implements list.Item
func (b beachItem) FilterValue() string {
	return b.location.Name + " " + b.location.Region
}

// Title implements list.DefaultItem
func (b beachItem) Title() string {
	return b.location.Name
}

// Description implements list.DefaultItem
func (b beachItem) Description() string {
	if b.location.Region == "" {
		return b.location.State
	}
	return fmt.Sprintf("%s, %s", b.location.Region, b.location.State)
}

// createBeachList creates a list.Model from matched locations
func createBeachList(locations []models.Location, width, height int) list.Model {
	// Results can arrive before the first WindowSizeMsg
	if width < 20 {
		width = 76
	}
	if height < 5 {
		height = 20
	}

	items := make([]list.Item, len(locations))
	for i, loc := range locations {
		items[i] = beachItem{location: loc}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a Beach"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)

	return l
}
