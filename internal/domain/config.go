package domain

// Config mirrors ~/.config/vibeos/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Shell               ShellSettings     `yaml:"shell"`
	Execution           ExecutionSettings `yaml:"execution"`
	Assistant           AssistantSettings `yaml:"assistant"`
}

// ShellSettings captures REPL-level toggles.
type ShellSettings struct {
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// ExecutionSettings controls how intent handlers run external tools.
type ExecutionSettings struct {
	TimeoutSeconds int `yaml:"timeout"`
}

// AssistantSettings configures the external AI CLI collaborator.
type AssistantSettings struct {
	Enabled        bool     `yaml:"enabled"`
	Command        string   `yaml:"command"`
	ExtraPaths     []string `yaml:"extra_paths"`
	TimeoutSeconds int      `yaml:"timeout"`
	MaxRetries     int      `yaml:"max_retries"`
	CacheCommands  bool     `yaml:"cache_commands"`
	CacheTTL       string   `yaml:"cache_ttl"`
}
