// Package config loads the YAML tool configuration with embedded defaults.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vibeos/vibesh/assets"
	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/pkg/filesystem"
	"github.com/vibeos/vibesh/internal/ports"
)

// FileLoader loads YAML configuration from <config dir>/config.yaml,
// overridable via VIBESH_CONFIG.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is seeded from the
// embedded defaults; a corrupt file is an error the caller may downgrade.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return hydrateDefaults(defaultConfig()), fmt.Errorf("ensure config dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if writeErr := os.WriteFile(path, assets.DefaultConfigYAML, domain.StateFilePermissions); writeErr != nil {
				return hydrateDefaults(cfg), writeErr
			}
			return hydrateDefaults(cfg), nil
		}
		return hydrateDefaults(defaultConfig()), err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return hydrateDefaults(defaultConfig()), err
	}
	return hydrateDefaults(cfg), nil
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Reset overwrites the config with the embedded defaults.
func (l *FileLoader) Reset() (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}
	if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.StateFilePermissions); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(defaultConfig()), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("VIBESH_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.ConfigDir(), "config.yaml")
}

func defaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		// The embedded YAML is validated by tests; this branch only guards
		// against a corrupted build.
		return domain.Config{
			ConfigFormatVersion: "1",
			Shell:               domain.ShellSettings{Color: true},
			Execution:           domain.ExecutionSettings{TimeoutSeconds: 30},
			Assistant: domain.AssistantSettings{
				Enabled:        true,
				Command:        "claude",
				TimeoutSeconds: 10,
				MaxRetries:     3,
				CacheCommands:  true,
				CacheTTL:       "1h",
			},
		}
	}
	return cfg
}

// hydrateDefaults fills gaps and clamps configured values to their bounds.
func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Shell.HistoryFile == "" {
		cfg.Shell.HistoryFile = "~/.vibesh_history"
	}
	cfg.Shell.HistoryFile = expandPath(cfg.Shell.HistoryFile)

	if cfg.Execution.TimeoutSeconds <= 0 {
		cfg.Execution.TimeoutSeconds = int(domain.DefaultExecTimeout / time.Second)
	}

	cfg.Assistant.TimeoutSeconds = clampInt(cfg.Assistant.TimeoutSeconds,
		int(domain.MinAssistantTimeout/time.Second),
		int(domain.DefaultAssistantTimeout/time.Second),
		int(domain.MaxAssistantTimeout/time.Second))
	cfg.Assistant.MaxRetries = clampInt(cfg.Assistant.MaxRetries, 0, 3, domain.MaxAssistantRetries)
	if cfg.Assistant.Command == "" {
		cfg.Assistant.Command = "claude"
	}
	if cfg.Assistant.CacheTTL == "" {
		cfg.Assistant.CacheTTL = "1h"
	}
	return cfg
}

// clampInt returns value bounded to [min, max]; zero takes the default.
func clampInt(value, min, def, max int) int {
	switch {
	case value == 0:
		return def
	case value < min:
		return min
	case value > max:
		return max
	default:
		return value
	}
}

// CacheTTL parses the configured TTL, clamped to sane bounds.
func CacheTTL(cfg domain.AssistantSettings) time.Duration {
	ttl, err := time.ParseDuration(cfg.CacheTTL)
	if err != nil {
		return domain.DefaultCacheTTL
	}
	if ttl < domain.MinCacheTTL {
		return domain.MinCacheTTL
	}
	if ttl > domain.MaxCacheTTL {
		return domain.MaxCacheTTL
	}
	return ttl
}

func expandPath(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return path
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
