package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/surfscout/surfscout/internal/config"
	"github.com/surfscout/surfscout/internal/favorites"
	"github.com/surfscout/surfscout/internal/scoring"
	"github.com/surfscout/surfscout/internal/surf"
	"github.com/surfscout/surfscout/internal/ui"
	"github.com/surfscout/surfscout/internal/willyweather"
)

func main() {
	beach := flag.String("beach", "", "Beach name to search and evaluate on startup (e.g. \"Bondi Beach\")")
	configPath := flag.String("config", "", "Path to a config file (default: user config directory)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := cfg.InitLogging()
	if err != nil {
		fmt.Printf("Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	weather := willyweather.NewClient(cfg.WeatherAPIKey)

	scorer, err := scoring.New(cfg.Scoring, cfg.ScoringAPIKey)
	if err != nil {
		fmt.Printf("Error setting up scoring: %v\n", err)
		os.Exit(1)
	}

	svc := surf.NewService(weather, scorer)
	favs := favorites.NewRepository(config.DBPath())

	p := tea.NewProgram(ui.NewModel(svc, favs, *beach), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
