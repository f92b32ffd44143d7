// Package core contains the triage decision logic for HealthBuddy:
// the knowledge base, the hint extractor, the rule table, and the
// engine that classifies symptom text into an urgency tier.
package core

import (
	"fmt"
	"sort"

	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
)

// MissingKeyError reports a knowledge base key referenced by the rule
// table or a gate that does not resolve after defaults and overrides
// are merged. It is a configuration-integrity error: fatal during the
// startup self-check, never expected at evaluation time.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("knowledge base key %q not found", e.Key)
}

// KnowledgeBase maps message keys to advisory values. It is built once
// at startup from defaults merged with overrides and is read-only
// afterwards, so it is safe to share across concurrent evaluations.
type KnowledgeBase struct {
	values map[string]models.KBValue
}

// LoadKnowledgeBase merges overrides onto defaults key by key. An
// override replaces a default only when it is non-empty, so a blank
// override can never erase a default. Neither input map is retained.
func LoadKnowledgeBase(defaults, overrides map[string]models.KBValue) *KnowledgeBase {
	values := make(map[string]models.KBValue, len(defaults)+len(overrides))
	for k, v := range defaults {
		values[k] = cloneKBValue(v)
	}
	for k, v := range overrides {
		if v.IsEmpty() {
			continue
		}
		values[k] = cloneKBValue(v)
	}
	return &KnowledgeBase{values: values}
}

// Get returns the value stored under key, or a MissingKeyError when
// the key is absent after the merge.
func (kb *KnowledgeBase) Get(key string) (models.KBValue, error) {
	v, ok := kb.values[key]
	if !ok {
		return models.KBValue{}, &MissingKeyError{Key: key}
	}
	return cloneKBValue(v), nil
}

// Text returns the single advisory string stored under key.
func (kb *KnowledgeBase) Text(key string) (string, error) {
	v, err := kb.Get(key)
	if err != nil {
		return "", err
	}
	return v.Text, nil
}

// Bullets returns the ordered advice bullet list stored under key.
func (kb *KnowledgeBase) Bullets(key string) ([]string, error) {
	v, err := kb.Get(key)
	if err != nil {
		return nil, err
	}
	return v.Bullets, nil
}

// Keys returns every key in the merged knowledge base, sorted.
func (kb *KnowledgeBase) Keys() []string {
	keys := make([]string, 0, len(kb.values))
	for k := range kb.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that every required key resolves to a non-empty
// value. It is the startup self-check: a failure here means the rule
// table and the knowledge base disagree, and the engine must refuse to
// serve evaluations rather than fail lazily mid-evaluation.
func (kb *KnowledgeBase) Validate(required []string) error {
	for _, key := range required {
		v, ok := kb.values[key]
		if !ok || v.IsEmpty() {
			return fmt.Errorf("validating knowledge base: %w", &MissingKeyError{Key: key})
		}
	}
	return nil
}

func cloneKBValue(v models.KBValue) models.KBValue {
	if len(v.Bullets) == 0 {
		return models.KBValue{Text: v.Text}
	}
	bullets := make([]string, len(v.Bullets))
	copy(bullets, v.Bullets)
	return models.KBValue{Text: v.Text, Bullets: bullets}
}
