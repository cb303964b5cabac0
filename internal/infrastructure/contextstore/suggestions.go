package contextstore

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/vibeos/vibesh/internal/domain"
)

// Suggestions proposes next commands based on the detected project.
func (s *Store) Suggestions() []string {
	wd, _ := os.Getwd()
	info := s.detector.Detect(wd)

	var suggestions []string
	switch info.Type {
	case domain.ProjectPython:
		if !info.HasVenv {
			suggestions = append(suggestions, "create virtual environment")
		}
		if !info.HasGit {
			suggestions = append(suggestions, "initialize git repository")
		}
		suggestions = append(suggestions, "install pytest", "run tests")
	case domain.ProjectNode:
		if !info.HasGit {
			suggestions = append(suggestions, "initialize git repository")
		}
		suggestions = append(suggestions, "install dependencies", "run development server", "build the project")
	// A zero ProjectType means detection never ran; treat it as unknown.
	case domain.ProjectUnknown, "":
		suggestions = append(suggestions,
			"create new python project",
			"create new node project",
			"initialize git repository")
	}
	return suggestions
}

// ProbeEnvironment refreshes toolchain versions stored in the context file.
func (s *Store) ProbeEnvironment() domain.EnvironmentInfo {
	env := domain.EnvironmentInfo{
		VirtualEnv:    os.Getenv("VIRTUAL_ENV"),
		PythonVersion: toolVersion("python", "--version"),
		NodeVersion:   toolVersion("node", "--version"),
	}
	s.state.Environment = env
	return env
}

func toolVersion(name string, arg string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, arg).CombinedOutput()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
