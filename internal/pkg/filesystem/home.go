package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ConfigDir returns the vibeos configuration directory, honoring
// VIBESH_CONFIG_DIR for tests and sandboxed installs.
func ConfigDir() string {
	if custom := os.Getenv("VIBESH_CONFIG_DIR"); custom != "" {
		return custom
	}
	return filepath.Join(UserHomeDir(), ".config", "vibeos")
}
