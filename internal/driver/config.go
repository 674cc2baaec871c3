// Package driver is the on-disk orchestrator spec.md lists as an
// out-of-scope external collaborator of the core translator: file
// discovery, source caching, parallel translation, file watching, and
// config loading. It wires internal/stparser, internal/host,
// pkg/moduletranslator, pkg/annotator, and pkg/externs into one
// end-to-end run.
package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of tsickle.yaml, the project-level
// config file a translation run picks up from its root directory.
type ProjectConfig struct {
	Include                []string `yaml:"include"`
	Exclude                []string `yaml:"exclude"`
	Untyped                bool     `yaml:"untyped"`
	DisableAutoQuoting     bool     `yaml:"disable_auto_quoting"`
	ConvertIndexImports    bool     `yaml:"convert_index_imports"`
	TypeBlacklistPaths     []string `yaml:"type_blacklist_paths"`
	OutputDir              string   `yaml:"output_dir"`
	MCPLogPath             string   `yaml:"mcp_log_path"`
}

// DefaultProjectConfig returns the config used when no tsickle.yaml is
// present: every .ts/.tsx file under the root, excluding the usual
// dependency/build directories and .d.ts declaration files.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Include: []string{"**/*.ts", "**/*.tsx"},
		Exclude: []string{"**/node_modules/**", "**/dist/**", "**/*.d.ts"},
	}
}

// LoadProjectConfig reads tsickle.yaml from rootDir. A missing file is
// not an error — DefaultProjectConfig() is returned instead.
func LoadProjectConfig(rootDir string) (*ProjectConfig, error) {
	path := filepath.Join(rootDir, "tsickle.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultProjectConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	cfg := DefaultProjectConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("driver: parse %s: %w", path, err)
	}
	return cfg, nil
}

// BlacklistSet converts TypeBlacklistPaths into the map form
// internal/host.Host and pkg/moduletranslator expect.
func (c *ProjectConfig) BlacklistSet() map[string]bool {
	set := make(map[string]bool, len(c.TypeBlacklistPaths))
	for _, p := range c.TypeBlacklistPaths {
		set[p] = true
	}
	return set
}
