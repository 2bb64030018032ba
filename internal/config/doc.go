// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for kbot.
//
// Configuration lives in a TOML file with sensible defaults, environment
// variable overrides, and validation.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags (--url, --user)
//   - Environment variables (KBOT_*)
//   - ~/.kbot/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.ApplyEnvOverrides()
//
// Access settings:
//
//	url := cfg.Backend.URL
//	timeout := cfg.Backend.TimeoutSecs
package config
