// Package manifest handles imscript.toml host configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest represents an imscript.toml host configuration.
type Manifest struct {
	Project Project `toml:"project"`
	Assets  Assets  `toml:"assets"`
	Log     Log     `toml:"log"`

	// Dir is the directory containing the imscript.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Assets configures the temporary asset source.
type Assets struct {
	SourceName  string `toml:"source-name"`
	Description string `toml:"description"`
	Mount       string `toml:"mount"`
}

// Log configures logging verbosity.
type Log struct {
	Verbosity int `toml:"verbosity"`
}

// Load parses an imscript.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "imscript.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Assets.SourceName == "" {
		m.Assets.SourceName = "Temporary Assets"
	}
	if m.Assets.Description == "" {
		m.Assets.Description = "Runtime-created assets from scripts"
	}
	if m.Assets.Mount == "" {
		m.Assets.Mount = "/temp"
	}
	if !strings.HasPrefix(m.Assets.Mount, "/") {
		return nil, fmt.Errorf("%s: assets mount must be an absolute path, got %q", path, m.Assets.Mount)
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find an imscript.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "imscript.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}
