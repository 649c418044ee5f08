package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	// Create a temporary directory with an imscript.toml
	dir := t.TempDir()
	tomlContent := `
[project]
name = "test-host"
version = "0.1.0"

[assets]
source-name = "Test Assets"
description = "assets for tests"
mount = "/temp"

[log]
verbosity = 2
`
	if err := os.WriteFile(filepath.Join(dir, "imscript.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Project.Name != "test-host" {
		t.Errorf("project name = %q, want test-host", m.Project.Name)
	}
	if m.Project.Version != "0.1.0" {
		t.Errorf("project version = %q, want 0.1.0", m.Project.Version)
	}
	if m.Assets.SourceName != "Test Assets" {
		t.Errorf("assets source-name = %q, want Test Assets", m.Assets.SourceName)
	}
	if m.Assets.Mount != "/temp" {
		t.Errorf("assets mount = %q, want /temp", m.Assets.Mount)
	}
	if m.Log.Verbosity != 2 {
		t.Errorf("log verbosity = %d, want 2", m.Log.Verbosity)
	}
	if m.Dir == "" {
		t.Error("Dir should be set after load")
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[project]
name = "bare"
`
	if err := os.WriteFile(filepath.Join(dir, "imscript.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Assets.SourceName != "Temporary Assets" {
		t.Errorf("default source-name = %q", m.Assets.SourceName)
	}
	if m.Assets.Mount != "/temp" {
		t.Errorf("default mount = %q", m.Assets.Mount)
	}
}

func TestLoadManifestBadMount(t *testing.T) {
	dir := t.TempDir()
	tomlContent := `
[assets]
mount = "temp"
`
	if err := os.WriteFile(filepath.Join(dir, "imscript.toml"), []byte(tomlContent), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected error for relative mount point")
	}
}

func TestLoadManifestMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for missing imscript.toml")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "imscript.toml"), []byte("[project]\nname = \"up\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil || m.Project.Name != "up" {
		t.Errorf("FindAndLoad = %+v, want project up", m)
	}
}
