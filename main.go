package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"upkeep/internal/config"
	"upkeep/internal/rebuilds"
	"upkeep/internal/ui"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("upkeep.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	checks, err := rebuilds.LoadChecks()
	if err != nil {
		log.Printf("Failed to load rebuild checks: %v", err)
	}

	model := ui.NewModel(cfg, checks)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Ready marker for the e2e harness
	if os.Getenv("UPKEEP_E2E_TEST") != "" {
		fmt.Println("__READY__")
	}

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
