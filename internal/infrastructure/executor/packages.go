package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/vibeos/vibesh/internal/domain"
)

// installPackage picks the toolchain from marker files: package.json means
// npm, requirements.txt/setup.py means pip, otherwise the system package
// manager.
func (e *Executor) installPackage(ctx context.Context, params domain.Params) domain.ExecutionResult {
	p, ok := params.(domain.InstallPackageParams)
	if !ok || len(p.Packages) == 0 {
		return domain.Fail("No packages specified")
	}

	var name string
	var args []string
	var manager string
	switch {
	case isNodeProject():
		name, args, manager = "npm", append([]string{"install"}, p.Packages...), "npm"
	case isPythonProject():
		name, args, manager = "pip", append([]string{"install"}, p.Packages...), "pip"
	default:
		name, args, manager = "sudo", append([]string{"pacman", "-S", "--noconfirm"}, p.Packages...), "pacman"
	}

	fmt.Printf("Installing %s with %s...\n", strings.Join(p.Packages, ", "), manager)
	result := e.runner.runStreaming(ctx, name, args...)
	if result.Success {
		result.Output = fmt.Sprintf("Successfully installed: %s", strings.Join(p.Packages, ", "))
	}
	return result
}

// searchPackage queries the system package repositories.
func (e *Executor) searchPackage(ctx context.Context, params domain.Params) domain.ExecutionResult {
	p, ok := params.(domain.SearchPackageParams)
	if !ok || p.Query == "" {
		return domain.Fail("No search query specified")
	}
	result := e.runner.run(ctx, "pacman", "-Ss", p.Query)
	if result.Success {
		lines := strings.Split(result.Output, "\n")
		if len(lines) > 10 {
			lines = lines[:10]
		}
		result.Output = fmt.Sprintf("Package search results for '%s':\n%s", p.Query, strings.Join(lines, "\n"))
	}
	return result
}

func (e *Executor) updateSystem(ctx context.Context, _ domain.Params) domain.ExecutionResult {
	fmt.Println("Updating system packages...")
	return e.runner.runStreaming(ctx, "sudo", "pacman", "-Syu", "--noconfirm")
}
