package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/vibeos/vibesh/assets"
	"github.com/vibeos/vibesh/internal/domain"
)

type scaffoldData struct {
	Name string
}

// createProject scaffolds a new project directory and changes into it, the
// way an interactive shell user expects.
func (e *Executor) createProject(_ context.Context, params domain.Params) domain.ExecutionResult {
	p, ok := params.(domain.CreateProjectParams)
	if !ok {
		return domain.Fail("create_project requires a type and a name")
	}
	projectType := strings.ToLower(p.Type)
	name := p.Name
	if name == "" {
		return domain.Fail("No project name specified")
	}

	if _, err := os.Stat(name); err == nil {
		return domain.Fail(fmt.Sprintf("Directory %s already exists", name))
	}
	if err := os.Mkdir(name, domain.DirectoryPermissions); err != nil {
		return domain.Fail(fmt.Sprintf("Failed to create project: %v", err))
	}
	if err := os.Chdir(name); err != nil {
		return domain.Fail(fmt.Sprintf("Failed to enter project directory: %v", err))
	}

	switch projectType {
	case "python", "py":
		return scaffoldPython(name)
	case "node", "nodejs", "javascript", "js":
		return scaffoldNode(name)
	case "react":
		return domain.OK(fmt.Sprintf(
			"To create a React project, use create-react-app.\nRun: npx create-react-app %s", name))
	default:
		return scaffoldGeneric(name)
	}
}

func scaffoldPython(name string) domain.ExecutionResult {
	for _, dir := range []string{"src", "tests", "docs"} {
		if err := os.Mkdir(dir, domain.DirectoryPermissions); err != nil {
			return domain.Fail(fmt.Sprintf("Failed to create project: %v", err))
		}
	}
	steps := []error{
		renderTemplate("templates/main.py.tmpl", filepath.Join("src", "main.py"), scaffoldData{Name: name}),
		copyAsset("templates/python.gitignore", ".gitignore"),
		os.WriteFile("requirements.txt", nil, domain.StateFilePermissions),
		writeReadme(name, "A Python project"),
	}
	for _, err := range steps {
		if err != nil {
			return domain.Fail(fmt.Sprintf("Failed to create project: %v", err))
		}
	}
	return domain.OK(fmt.Sprintf(`Created Python project '%s'
  Structure:
    %s/
    |- src/main.py
    |- tests/
    |- docs/
    |- requirements.txt
    |- .gitignore
    \- README.md

  Next steps:
    - Create virtual environment: 'create virtual environment'
    - Initialize git: 'init git repository'`, name, name))
}

func scaffoldNode(name string) domain.ExecutionResult {
	for _, dir := range []string{"src", "tests"} {
		if err := os.Mkdir(dir, domain.DirectoryPermissions); err != nil {
			return domain.Fail(fmt.Sprintf("Failed to create project: %v", err))
		}
	}
	index := fmt.Sprintf("console.log(%q);\n", "Welcome to "+name+"!")
	steps := []error{
		renderTemplate("templates/package.json.tmpl", "package.json", scaffoldData{Name: name}),
		os.WriteFile("index.js", []byte(index), domain.StateFilePermissions),
		copyAsset("templates/node.gitignore", ".gitignore"),
		writeReadme(name, "A Node.js project"),
	}
	for _, err := range steps {
		if err != nil {
			return domain.Fail(fmt.Sprintf("Failed to create project: %v", err))
		}
	}
	return domain.OK(fmt.Sprintf(`Created Node.js project '%s'
  Structure:
    %s/
    |- index.js
    |- src/
    |- tests/
    |- package.json
    |- .gitignore
    \- README.md

  Next steps:
    - Install dependencies: 'install npm packages'
    - Initialize git: 'init git repository'`, name, name))
}

func scaffoldGeneric(name string) domain.ExecutionResult {
	for _, dir := range []string{"src", "docs"} {
		if err := os.Mkdir(dir, domain.DirectoryPermissions); err != nil {
			return domain.Fail(fmt.Sprintf("Failed to create project: %v", err))
		}
	}
	if err := writeReadme(name, "A new project"); err != nil {
		return domain.Fail(fmt.Sprintf("Failed to create project: %v", err))
	}
	return domain.OK(fmt.Sprintf("Created project '%s'\n  Basic structure created in %s/", name, name))
}

func renderTemplate(assetPath, dest string, data scaffoldData) error {
	raw, err := assets.Templates.ReadFile(assetPath)
	if err != nil {
		return err
	}
	tmpl, err := template.New(filepath.Base(assetPath)).Parse(string(raw))
	if err != nil {
		return err
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}
	return os.WriteFile(dest, []byte(buf.String()), domain.StateFilePermissions)
}

func copyAsset(assetPath, dest string) error {
	raw, err := assets.Templates.ReadFile(assetPath)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, raw, domain.StateFilePermissions)
}

func writeReadme(name, description string) error {
	content := fmt.Sprintf("# %s\n\n%s\n", name, description)
	return os.WriteFile("README.md", []byte(content), domain.StateFilePermissions)
}
