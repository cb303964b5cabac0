package domain

// ProjectType classifies a working directory by its marker files.
type ProjectType string

const (
	ProjectNode    ProjectType = "node"
	ProjectPython  ProjectType = "python"
	ProjectRust    ProjectType = "rust"
	ProjectGo      ProjectType = "go"
	ProjectMake    ProjectType = "make"
	ProjectUnknown ProjectType = "unknown"
)

// ProjectContext is a snapshot of the detected project in one directory.
// Git and venv presence are additive to the type; they never change it.
type ProjectContext struct {
	Path        string      `json:"path"`
	Name        string      `json:"name"`
	Type        ProjectType `json:"type"`
	HasGit      bool        `json:"has_git"`
	HasVenv     bool        `json:"has_venv,omitempty"`
	GitBranch   string      `json:"git_branch,omitempty"`
	VenvPath    string      `json:"venv_path,omitempty"`
	Framework   string      `json:"framework,omitempty"`
	ConfigFiles []string    `json:"config_files"`
}
