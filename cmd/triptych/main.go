package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"triptych/internal/app"
	"triptych/internal/config"
	"triptych/internal/item"
	"triptych/internal/logger"
	"triptych/internal/testdata"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	closeLog, err := logger.Setup(cfg.Log.Path, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closeLog()

	mode := app.ModeStore
	if len(os.Args) > 1 && os.Args[1] == "view" {
		mode = app.ModeView
	}

	gen := testdata.New(cfg.Data.Seed, cfg.Data.Commits)
	sources := app.Sources{
		Commits:  gen,
		Messages: gen,
		Logs:     gen,
		Details:  gen,
		Notes:    gen,
	}

	attach := func(shas []string, msgs []item.Message) error {
		slog.Info("attach", "commits", len(shas), "messages", len(msgs))
		return nil
	}

	m, err := app.New(cfg, mode, sources, attach)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
