package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath  string
	DocsPath     string
	ManifestFile string

	// Execution settings
	ScratchDir string
	CargoBin   string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	DocsPath   string
	NameFilter string
	Cases      bool
	ScratchDir string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		DocsPath:       DefaultDocsPath,
		ManifestFile:   DefaultManifestFile,
		ScratchDir:     DefaultScratchDir,
		CargoBin:       DefaultCargoBin,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config, applies .env / environment overrides and flags.
// This is the only place ambient process state is read; everything past
// here receives the resulting value explicitly.
func Load(flags Flags) *Config {
	cfg := New()

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))

	if v := os.Getenv("MDT_PROJECT_PATH"); v != "" {
		cfg.ProjectPath = v
	}
	if v := os.Getenv("MDT_CARGO_BIN"); v != "" {
		cfg.CargoBin = v
	}
	if v := os.Getenv("MDT_SCRATCH_DIR"); v != "" {
		cfg.ScratchDir = v
	}

	cfg.Flags = flags
	return cfg
}

// GetDocsPath returns the docs path, using the flag if provided
func (c *Config) GetDocsPath() string {
	if c.Flags.DocsPath != "" {
		if filepath.IsAbs(c.Flags.DocsPath) {
			return c.Flags.DocsPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.DocsPath)
	}
	return filepath.Join(c.ProjectPath, c.DocsPath)
}

// GetScratchPath returns the scratch project root, using the flag if provided
func (c *Config) GetScratchPath() string {
	dir := c.ScratchDir
	if c.Flags.ScratchDir != "" {
		dir = c.Flags.ScratchDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.ProjectPath, dir)
}

// GetManifestPath returns the path to the project's build manifest
func (c *Config) GetManifestPath() string {
	return filepath.Join(c.ProjectPath, c.ManifestFile)
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and fails always read/write the same
// file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
