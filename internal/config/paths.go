package config

import (
	"os"
	"path/filepath"
)

// Default file names inside GUION_HOME
const (
	DefaultAgentSourceFile = "agents.xlsx"
	DefaultDataSourceFile  = "data.xlsx"
)

// GetGuionHome returns GUION_HOME or ~/.guion default
func GetGuionHome() string {
	guionHome := os.Getenv("GUION_HOME")
	if guionHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".guion"
		}
		return filepath.Join(homeDir, ".guion")
	}
	return ExpandPath(guionHome)
}

// GetDBPath returns $GUION_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetGuionHome(), "state.db")
}

// GetFallbackStorePath returns $GUION_HOME/prefs.yaml
func GetFallbackStorePath() string {
	return filepath.Join(GetGuionHome(), "prefs.yaml")
}

// GetSettingsPath returns $GUION_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetGuionHome(), "settings.json")
}

// GetHostKeyPath returns $GUION_HOME/ssh/id_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetGuionHome(), "ssh", "id_ed25519")
}

// GetDefaultDataSource returns $GUION_HOME/data.xlsx
func GetDefaultDataSource() string {
	return filepath.Join(GetGuionHome(), DefaultDataSourceFile)
}

// GetDefaultAgentSource returns $GUION_HOME/agents.xlsx
func GetDefaultAgentSource() string {
	return filepath.Join(GetGuionHome(), DefaultAgentSourceFile)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
