package domain

import (
	"io/fs"
	"time"
)

// File permission constants for persisted state.
const (
	DirectoryPermissions  fs.FileMode = 0o755
	StateFilePermissions  fs.FileMode = 0o644
	SecureFilePermissions fs.FileMode = 0o600
)

// Timeout bounds applied to configured values.
const (
	DefaultExecTimeout = 30 * time.Second

	MinAssistantTimeout     = 1 * time.Second
	DefaultAssistantTimeout = 10 * time.Second
	MaxAssistantTimeout     = 120 * time.Second

	MaxAssistantRetries = 10

	MinCacheTTL     = time.Minute
	DefaultCacheTTL = time.Hour
	MaxCacheTTL     = 24 * time.Hour
)
