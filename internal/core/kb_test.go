package core

import (
	"errors"
	"testing"

	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
)

func TestLoadKnowledgeBase_MergesOverrides(t *testing.T) {
	defaults := map[string]models.KBValue{
		"emergency_msg": {Text: "default emergency"},
		"selfcare_tips": {Bullets: []string{"rest", "hydrate"}},
	}
	overrides := map[string]models.KBValue{
		"emergency_msg": {Text: "overridden emergency"},
		"extra_key":     {Text: "extra"},
	}

	kb := LoadKnowledgeBase(defaults, overrides)

	text, err := kb.Text("emergency_msg")
	if err != nil {
		t.Fatalf("getting emergency_msg: %v", err)
	}
	if text != "overridden emergency" {
		t.Errorf("expected override to win, got %q", text)
	}

	bullets, err := kb.Bullets("selfcare_tips")
	if err != nil {
		t.Fatalf("getting selfcare_tips: %v", err)
	}
	if len(bullets) != 2 || bullets[0] != "rest" {
		t.Errorf("default bullets should survive the merge, got %v", bullets)
	}

	if _, err := kb.Text("extra_key"); err != nil {
		t.Errorf("override-only key should resolve: %v", err)
	}
}

func TestLoadKnowledgeBase_EmptyOverrideIgnored(t *testing.T) {
	defaults := map[string]models.KBValue{
		"fallback_msg": {Text: "default fallback"},
	}
	overrides := map[string]models.KBValue{
		"fallback_msg": {},
	}

	kb := LoadKnowledgeBase(defaults, overrides)

	text, err := kb.Text("fallback_msg")
	if err != nil {
		t.Fatalf("getting fallback_msg: %v", err)
	}
	if text != "default fallback" {
		t.Errorf("empty override must not erase the default, got %q", text)
	}
}

func TestKnowledgeBase_GetMissingKey(t *testing.T) {
	kb := LoadKnowledgeBase(map[string]models.KBValue{}, nil)

	_, err := kb.Get("nope")
	if err == nil {
		t.Fatal("expected error for missing key")
	}

	var mke *MissingKeyError
	if !errors.As(err, &mke) {
		t.Fatalf("expected MissingKeyError, got %T", err)
	}
	if mke.Key != "nope" {
		t.Errorf("expected key 'nope' in error, got %q", mke.Key)
	}
}

func TestKnowledgeBase_Validate(t *testing.T) {
	kb := LoadKnowledgeBase(map[string]models.KBValue{
		"present": {Text: "ok"},
		"empty":   {},
	}, nil)

	if err := kb.Validate([]string{"present"}); err != nil {
		t.Errorf("validation should pass for present key: %v", err)
	}

	err := kb.Validate([]string{"present", "missing"})
	if err == nil {
		t.Fatal("expected validation error for missing key")
	}
	var mke *MissingKeyError
	if !errors.As(err, &mke) {
		t.Fatalf("expected MissingKeyError, got %T", err)
	}

	if err := kb.Validate([]string{"empty"}); err == nil {
		t.Error("empty values must fail validation")
	}
}

func TestKnowledgeBase_Keys(t *testing.T) {
	kb := LoadKnowledgeBase(map[string]models.KBValue{
		"b": {Text: "b"},
		"a": {Text: "a"},
		"c": {Text: "c"},
	}, nil)

	keys := kb.Keys()
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
	for i, want := range []string{"a", "b", "c"} {
		if keys[i] != want {
			t.Errorf("keys[%d] = %q, want %q (sorted)", i, keys[i], want)
		}
	}
}

func TestKnowledgeBase_GetReturnsCopy(t *testing.T) {
	kb := LoadKnowledgeBase(map[string]models.KBValue{
		"tips": {Bullets: []string{"rest", "hydrate"}},
	}, nil)

	v, err := kb.Get("tips")
	if err != nil {
		t.Fatalf("getting tips: %v", err)
	}
	v.Bullets[0] = "mutated"

	again, _ := kb.Get("tips")
	if again.Bullets[0] != "rest" {
		t.Error("mutating a returned value must not affect the knowledge base")
	}
}

func TestDefaultKnowledgeBase_CoversEngineKeys(t *testing.T) {
	kb := LoadKnowledgeBase(DefaultKnowledgeBase(), nil)

	required := append(DefaultRuleTable().RequiredKeys(), engineKeys...)
	if err := kb.Validate(required); err != nil {
		t.Fatalf("built-in defaults must satisfy every referenced key: %v", err)
	}
}
