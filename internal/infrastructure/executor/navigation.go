package executor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vibeos/vibesh/internal/pkg/filesystem"

	"github.com/vibeos/vibesh/internal/domain"
)

// changeDirectory moves the shell process itself; the REPL prompt reflects
// the new location on the next line.
func (e *Executor) changeDirectory(_ context.Context, params domain.Params) domain.ExecutionResult {
	path := "~"
	if p, ok := params.(domain.ChangeDirectoryParams); ok && p.Path != "" {
		path = p.Path
	}
	path = expandHome(path)

	if err := os.Chdir(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Fail(fmt.Sprintf("Directory not found: %s", path))
		}
		return domain.Fail(err.Error())
	}
	wd, _ := os.Getwd()
	return domain.OK(fmt.Sprintf("Changed to: %s", wd))
}

func (e *Executor) listFiles(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	return e.runner.run(ctx, "ls", "-la")
}

func (e *Executor) showPwd(_ context.Context, _ domain.Params) domain.ExecutionResult {
	wd, err := os.Getwd()
	if err != nil {
		return domain.Fail(err.Error())
	}
	return domain.OK(wd)
}

func expandHome(path string) string {
	if path == "~" {
		return filesystem.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return path
}
