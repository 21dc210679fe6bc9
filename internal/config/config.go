// Package config derives the menu's runtime settings from the environment.
// Nothing is read from or written to disk; the key table itself is static.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultScriptsDir holds the device's action scripts. The leading ~ is
	// left for /bin/sh to expand when a command runs.
	DefaultScriptsDir = "~/.microjournal/scripts"

	// DefaultLogPath is relative to the user's home directory.
	DefaultLogPath = ".microjournal/logs/menu.log"

	// DefaultShell is tried first for the interactive shell.
	DefaultShell = "/bin/zsh"

	fallbackShell = "/bin/sh"
)

// Config holds the menu's settings.
type Config struct {
	ScriptsDir string // MJ_SCRIPTS_DIR
	Shell      string // MJ_SHELL, then DefaultShell, then $SHELL, then /bin/sh
	LogPath    string // MJ_LOG; empty disables logging
	Debug      bool   // DEBUG
}

// Load builds a Config from the environment lookup function getenv.
func Load(getenv func(string) string) Config {
	cfg := Config{
		ScriptsDir: strings.TrimRight(valueOr(getenv("MJ_SCRIPTS_DIR"), DefaultScriptsDir), "/"),
		Shell:      resolveShell(getenv, fileExists),
		LogPath:    resolveLogPath(getenv),
		Debug:      parseBool(getenv("DEBUG")),
	}
	if cfg.ScriptsDir == "" {
		cfg.ScriptsDir = "/"
	}
	return cfg
}

// Script returns the command string for a script in ScriptsDir.
func (c Config) Script(name string) string {
	if c.ScriptsDir == "/" {
		return "/" + name
	}
	return c.ScriptsDir + "/" + name
}

func resolveShell(getenv func(string) string, exists func(string) bool) string {
	if sh := strings.TrimSpace(getenv("MJ_SHELL")); sh != "" {
		return sh
	}
	if exists(DefaultShell) {
		return DefaultShell
	}
	if sh := strings.TrimSpace(getenv("SHELL")); sh != "" {
		return sh
	}
	return fallbackShell
}

func resolveLogPath(getenv func(string) string) string {
	raw := strings.TrimSpace(getenv("MJ_LOG"))
	switch strings.ToLower(raw) {
	case "-", "off", "none":
		return ""
	case "":
		home := getenv("HOME")
		if home == "" {
			return ""
		}
		return filepath.Join(home, DefaultLogPath)
	}
	return expandHome(raw, getenv("HOME"))
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func valueOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
