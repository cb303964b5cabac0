package domain

import "time"

// Ring caps for the persisted context. RecentCommands is the quick-access
// ring in context.json; the full history lives in command_history.json.
const (
	RecentCommandsCap = 10
	HistoryCap        = 1000
)

// CommandRecord is one executed line as stored in the history file and the
// searchable archive.
type CommandRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Intent    Intent    `json:"intent"`
	Success   bool      `json:"success"`
	Directory string    `json:"directory"`
	SessionID string    `json:"session_id"`
}

// PersistedState is the context.json document.
type PersistedState struct {
	CurrentProject string          `json:"current_project,omitempty"`
	ProjectType    ProjectType     `json:"project_type,omitempty"`
	RecentCommands []string        `json:"recent_commands"`
	Preferences    Preferences     `json:"preferences"`
	Environment    EnvironmentInfo `json:"environment"`
}

// Preferences are seeded from the environment on first run and then owned by
// the state file.
type Preferences struct {
	Editor         string `json:"editor"`
	Shell          string `json:"shell"`
	PackageManager string `json:"package_manager"`
}

// EnvironmentInfo caches probed toolchain versions.
type EnvironmentInfo struct {
	VirtualEnv    string `json:"virtual_env,omitempty"`
	PythonVersion string `json:"python_version,omitempty"`
	NodeVersion   string `json:"node_version,omitempty"`
}

// AssistantChoice is the ai_config.json document written by the selector
// menu: which assistant CLI the user picked and whether to launch it.
type AssistantChoice struct {
	SelectedAssistant string `json:"selected_assistant"`
	AutoLaunch        bool   `json:"auto_launch"`
	UseAssistant      bool   `json:"use_assistant"`
}
