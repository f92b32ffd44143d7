// Package storage holds the persistence plumbing around the triage
// core: the knowledge base override loader and the CSV exporter.
package storage

import (
	"os"

	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
	"gopkg.in/yaml.v3"
)

// LoadKBOverrides reads the knowledge base override source at path.
// Each entry maps a message key to either a single string or a list of
// strings. A missing or malformed source is treated as "no overrides":
// the result is an empty map and no error, so the built-in defaults
// always stand.
func LoadKBOverrides(path string) map[string]models.KBValue {
	overrides := make(map[string]models.KBValue)

	data, err := os.ReadFile(path)
	if err != nil {
		return overrides
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return overrides
	}

	for key, val := range raw {
		if v, ok := coerceKBValue(val); ok {
			overrides[key] = v
		}
	}
	return overrides
}

// coerceKBValue converts a raw decoded value into a KBValue. Strings
// become Text; lists become Bullets with non-string items skipped.
// Anything else is rejected.
func coerceKBValue(val any) (models.KBValue, bool) {
	switch v := val.(type) {
	case string:
		return models.KBValue{Text: v}, true
	case []any:
		var bullets []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				bullets = append(bullets, s)
			}
		}
		return models.KBValue{Bullets: bullets}, true
	default:
		return models.KBValue{}, false
	}
}
