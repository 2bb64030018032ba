// kbot TUI - A terminal chat interface for the KPCL compressor analytics backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/kbot-tui/internal/config"
	"github.com/jeranaias/kbot-tui/internal/ui/chat"
	"github.com/jeranaias/kbot-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		urlFlag     = flag.String("url", "", "backend base URL (overrides config)")
		userFlag    = flag.String("user", "", "user ID sent with every request (overrides config)")
		configFlag  = flag.String("config", "", "path to an alternate config file")
		versionFlag = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("kbot %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Environment overrides sit between the config file and the CLI flags.
	cfg.ApplyEnvOverrides()

	if *urlFlag != "" {
		cfg.Backend.URL = *urlFlag
	}
	if *userFlag != "" {
		cfg.Backend.UserID = *userFlag
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// "dark"/"light" pin the palette variant; "auto" keeps detection.
	styles.ApplyBackgroundMode(cfg.UI.Theme)

	p := tea.NewProgram(
		appModel{chat: chat.New(cfg)},
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running kbot: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, falling back to defaults when none
// exists yet.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// appModel adapts the chat model to the tea.Model interface.
type appModel struct {
	chat chat.Model
}

func (a appModel) Init() tea.Cmd {
	return a.chat.Init()
}

func (a appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.chat, cmd = a.chat.Update(msg)
	return a, cmd
}

func (a appModel) View() string {
	return a.chat.View()
}
