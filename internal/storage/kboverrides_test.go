package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOverridesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kb.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing overrides file: %v", err)
	}
	return path
}

func TestLoadKBOverrides(t *testing.T) {
	path := writeOverridesFile(t, `emergency_msg: "Go to the ER now."
selfcare_headache:
  - Rest in a dark room
  - Drink water
`)

	overrides := LoadKBOverrides(path)

	if len(overrides) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(overrides))
	}
	if overrides["emergency_msg"].Text != "Go to the ER now." {
		t.Errorf("unexpected text override: %+v", overrides["emergency_msg"])
	}
	bullets := overrides["selfcare_headache"].Bullets
	if len(bullets) != 2 || bullets[0] != "Rest in a dark room" {
		t.Errorf("unexpected bullet override: %v", bullets)
	}
}

func TestLoadKBOverrides_MissingFile(t *testing.T) {
	overrides := LoadKBOverrides(filepath.Join(t.TempDir(), "absent.yaml"))

	if len(overrides) != 0 {
		t.Errorf("missing file must yield no overrides, got %v", overrides)
	}
}

func TestLoadKBOverrides_MalformedFile(t *testing.T) {
	path := writeOverridesFile(t, "not: [valid: yaml")

	overrides := LoadKBOverrides(path)

	if len(overrides) != 0 {
		t.Errorf("malformed file must yield no overrides, got %v", overrides)
	}
}

func TestLoadKBOverrides_SkipsUnsupportedShapes(t *testing.T) {
	path := writeOverridesFile(t, `good: text value
nested:
  inner: map
mixed:
  - keep this
  - 42
`)

	overrides := LoadKBOverrides(path)

	if _, ok := overrides["nested"]; ok {
		t.Error("nested maps must be skipped")
	}
	if overrides["good"].Text != "text value" {
		t.Errorf("string override lost: %+v", overrides["good"])
	}
	mixed := overrides["mixed"].Bullets
	if len(mixed) != 1 || mixed[0] != "keep this" {
		t.Errorf("non-string list items must be dropped, got %v", mixed)
	}
}
