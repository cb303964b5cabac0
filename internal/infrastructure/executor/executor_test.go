package executor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vibeos/vibesh/internal/domain"
	"github.com/vibeos/vibesh/internal/pkg/logger"
)

func newTestExecutor() *Executor {
	return New(0, logger.NewStd(false))
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	return tmp
}

func TestExecuteUnknownIntent(t *testing.T) {
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.Intent("frobnicate"), domain.NoParams{})
	if result.Success {
		t.Fatal("expected failure for unknown intent")
	}
	if result.Error != "Unknown intent: frobnicate" {
		t.Fatalf("error = %q", result.Error)
	}
}

func TestShowPwd(t *testing.T) {
	chdirTemp(t)
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentShowPwd, domain.NoParams{})
	if !result.Success {
		t.Fatalf("show_pwd failed: %s", result.Error)
	}
	wd, _ := os.Getwd()
	if result.Output != wd {
		t.Fatalf("output = %q, want %q", result.Output, wd)
	}
}

func TestChangeDirectoryNotFound(t *testing.T) {
	chdirTemp(t)
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentChangeDirectory,
		domain.ChangeDirectoryParams{Path: "/nonexistent"})
	if result.Success {
		t.Fatal("expected failure for missing directory")
	}
	if !strings.Contains(result.Error, "not found") {
		t.Fatalf("error = %q, want it to mention not found", result.Error)
	}
}

func TestChangeDirectory(t *testing.T) {
	tmp := chdirTemp(t)
	sub := filepath.Join(tmp, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentChangeDirectory,
		domain.ChangeDirectoryParams{Path: sub})
	if !result.Success {
		t.Fatalf("change_directory failed: %s", result.Error)
	}
	wd, _ := os.Getwd()
	if resolved, _ := filepath.EvalSymlinks(sub); wd != resolved && wd != sub {
		t.Fatalf("wd = %q, want %q", wd, sub)
	}
}

func TestInstallPackageRequiresPackages(t *testing.T) {
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentInstallPackage,
		domain.InstallPackageParams{})
	if result.Success || result.Error != "No packages specified" {
		t.Fatalf("result = %+v", result)
	}
}

func TestSearchPackageRequiresQuery(t *testing.T) {
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentSearchPackage,
		domain.SearchPackageParams{})
	if result.Success || result.Error != "No search query specified" {
		t.Fatalf("result = %+v", result)
	}
}

func TestCreateProjectPython(t *testing.T) {
	chdirTemp(t)
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentCreateProject,
		domain.CreateProjectParams{Type: "python", Name: "demo"})
	if !result.Success {
		t.Fatalf("create_project failed: %s", result.Error)
	}

	// The handler chdirs into the new project.
	wd, _ := os.Getwd()
	if filepath.Base(wd) != "demo" {
		t.Fatalf("expected to be inside demo/, wd = %s", wd)
	}
	for _, path := range []string{"src/main.py", "requirements.txt", ".gitignore", "README.md", "tests", "docs"} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing %s: %v", path, err)
		}
	}
	data, err := os.ReadFile("src/main.py")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Welcome to demo!") {
		t.Fatalf("main.py not templated: %s", data)
	}
}

func TestCreateProjectNode(t *testing.T) {
	chdirTemp(t)
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentCreateProject,
		domain.CreateProjectParams{Type: "node", Name: "webapp"})
	if !result.Success {
		t.Fatalf("create_project failed: %s", result.Error)
	}
	data, err := os.ReadFile("package.json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"name": "webapp"`) {
		t.Fatalf("package.json not templated: %s", data)
	}
}

func TestCreateProjectExistingDirectory(t *testing.T) {
	chdirTemp(t)
	if err := os.Mkdir("demo", 0o755); err != nil {
		t.Fatal(err)
	}
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentCreateProject,
		domain.CreateProjectParams{Type: "python", Name: "demo"})
	if result.Success {
		t.Fatal("expected failure when directory exists")
	}
	if !strings.Contains(result.Error, "already exists") {
		t.Fatalf("error = %q", result.Error)
	}
}

func TestActivateVenvPrintsInstructions(t *testing.T) {
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentActivateVenv, domain.NoParams{})
	if !result.Success || !strings.Contains(result.Output, "source venv/bin/activate") {
		t.Fatalf("result = %+v", result)
	}
}

func TestRunTestsWithoutConfiguration(t *testing.T) {
	chdirTemp(t)
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentRunTests, domain.NoParams{})
	if result.Success || result.Error != "No test configuration found" {
		t.Fatalf("result = %+v", result)
	}
}

func TestBuildProjectWithoutConfiguration(t *testing.T) {
	chdirTemp(t)
	e := newTestExecutor()
	result := e.Execute(context.Background(), domain.IntentBuildProject, domain.NoParams{})
	if result.Success || result.Error != "No build configuration found" {
		t.Fatalf("result = %+v", result)
	}
}
