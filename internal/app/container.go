// Package app wires concrete adapters into the application services.
package app

import (
	"context"
	"path/filepath"
	"time"

	shellapp "github.com/vibeos/vibesh/internal/application/shell"
	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/infrastructure/assistant"
	"github.com/vibeos/vibesh/internal/infrastructure/config"
	"github.com/vibeos/vibesh/internal/infrastructure/contextstore"
	"github.com/vibeos/vibesh/internal/infrastructure/executor"
	"github.com/vibeos/vibesh/internal/infrastructure/history"
	"github.com/vibeos/vibesh/internal/infrastructure/parser"
	"github.com/vibeos/vibesh/internal/infrastructure/project"
	"github.com/vibeos/vibesh/internal/pkg/filesystem"
	"github.com/vibeos/vibesh/internal/pkg/logger"
	"github.com/vibeos/vibesh/internal/ports"
)

// Container holds the wired object graph for one shell process.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Logger       ports.Logger

	Store     *contextstore.Store
	Archive   *history.SQLiteStore
	Assistant *assistant.CLIAssistant
	Choices   *assistant.ChoiceStore
	Executor  *executor.Executor

	ShellService *shellapp.Service
}

// BuildContainer constructs the full dependency graph. Config problems
// degrade to defaults with a warning; only a broken process environment is
// fatal here.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)

	loader := config.NewFileLoader("")
	cfg, err := loader.Load(ctx)
	if err != nil {
		log.Warn("config load failed, using defaults", map[string]interface{}{"error": err.Error()})
	}

	configDir := filesystem.ConfigDir()

	archive := history.NewSQLiteStore(configDir)
	detector := project.NewDetector()
	store := contextstore.New(configDir, detector, archive, log)

	var cache *assistant.ResponseCache
	if cfg.Assistant.CacheCommands {
		cache = assistant.NewResponseCache(filepath.Join(configDir, "cache", "responses"), config.CacheTTL(cfg.Assistant))
	}
	ai := assistant.New(cfg.Assistant, cache, log)

	exec := executor.New(time.Duration(cfg.Execution.TimeoutSeconds)*time.Second, log)

	svc := &shellapp.Service{
		Parser:           parser.New(),
		Executor:         exec,
		Store:            store,
		Assistant:        ai,
		Runner:           exec,
		Logger:           log,
		AssistantEnabled: cfg.Assistant.Enabled,
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: loader,
		Logger:       log,
		Store:        store,
		Archive:      archive,
		Assistant:    ai,
		Choices:      assistant.NewChoiceStore(configDir),
		Executor:     exec,
		ShellService: svc,
	}, nil
}
