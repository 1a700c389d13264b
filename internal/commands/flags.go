package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/lightbox/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "lightbox", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/lightbox/lightbox.log
// On Linux: $XDG_STATE_HOME/lightbox/lightbox.log (defaults to ~/.local/state/lightbox/lightbox.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "lightbox", "lightbox.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "lightbox", "lightbox.log")
	}

	return filepath.Join(home, ".local", "state", "lightbox", "lightbox.log")
}

// galleryPath returns the first positional argument or the working directory.
func galleryPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}
