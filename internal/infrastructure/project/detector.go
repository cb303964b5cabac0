// Package project detects the toolchain of a working directory from marker
// files.
package project

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/ports"
)

// Detector probes a directory for marker files. Detection is recomputed on
// every call; nothing is cached.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect implements ports.ProjectDetector. Type precedence is fixed:
// node > python > rust > go > make; the git flag is additive.
func (d *Detector) Detect(dir string) domain.ProjectContext {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	info := domain.ProjectContext{
		Path:        dir,
		Name:        filepath.Base(dir),
		Type:        domain.ProjectUnknown,
		ConfigFiles: []string{},
	}

	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		info.HasGit = true
		info.GitBranch = currentBranch(dir)
	}

	switch {
	case exists(dir, "package.json"):
		info.Type = domain.ProjectNode
		info.ConfigFiles = append(info.ConfigFiles, "package.json")
		info.Framework = nodeFramework(filepath.Join(dir, "package.json"))
	case exists(dir, "requirements.txt") || exists(dir, "setup.py"):
		info.Type = domain.ProjectPython
		if exists(dir, "requirements.txt") {
			info.ConfigFiles = append(info.ConfigFiles, "requirements.txt")
		}
		if exists(dir, "setup.py") {
			info.ConfigFiles = append(info.ConfigFiles, "setup.py")
		}
		info.HasVenv, info.VenvPath = findVenv(dir)
		info.Framework = pythonFramework(dir)
	case exists(dir, "Cargo.toml"):
		info.Type = domain.ProjectRust
		info.ConfigFiles = append(info.ConfigFiles, "Cargo.toml")
	case exists(dir, "go.mod"):
		info.Type = domain.ProjectGo
		info.ConfigFiles = append(info.ConfigFiles, "go.mod")
	case exists(dir, "Makefile"):
		info.Type = domain.ProjectMake
		info.ConfigFiles = append(info.ConfigFiles, "Makefile")
	}

	return info
}

func exists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

func findVenv(dir string) (bool, string) {
	for _, candidate := range []string{"venv", "env", ".venv"} {
		path := filepath.Join(dir, candidate)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return true, path
		}
	}
	return false, ""
}

// nodeFramework inspects package.json dependencies for well-known frameworks.
func nodeFramework(manifestPath string) string {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return ""
	}
	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	deps := make(map[string]bool, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name := range manifest.Dependencies {
		deps[name] = true
	}
	for name := range manifest.DevDependencies {
		deps[name] = true
	}
	for _, framework := range []string{"react", "vue", "angular", "express"} {
		if deps[framework] {
			return framework
		}
	}
	return ""
}

func pythonFramework(dir string) string {
	if exists(dir, "manage.py") {
		return "django"
	}
	if exists(dir, "app.py") || exists(dir, "application.py") {
		return "flask"
	}
	return ""
}

func currentBranch(dir string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

var _ ports.ProjectDetector = (*Detector)(nil)
