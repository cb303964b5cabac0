package assets

import "embed"

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// Templates holds the project scaffolding templates.
//
//go:embed templates
var Templates embed.FS
