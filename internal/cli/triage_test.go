package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
)

func typeText(m triageModel, text string) triageModel {
	for _, r := range text {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		next, _ := m.Update(msg)
		m = next.(triageModel)
	}
	return m
}

func TestTriageModel_EnterEvaluates(t *testing.T) {
	mock := setupCheckTest(t)

	m := typeText(newTriageModel(), "chest pain")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(triageModel)

	if m.decision == nil {
		t.Fatal("expected a decision after enter")
	}
	if m.decision.Tier != models.TierEmergency {
		t.Errorf("expected emergency tier, got %s", m.decision.Tier)
	}
	if m.input != "" {
		t.Errorf("input should reset after evaluation, got %q", m.input)
	}
	if len(mock.appended) != 1 {
		t.Errorf("expected decision to be recorded, got %d records", len(mock.appended))
	}
}

func TestTriageModel_EnterOnEmptyInput(t *testing.T) {
	mock := setupCheckTest(t)

	m := typeText(newTriageModel(), "   ")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(triageModel)

	if m.decision != nil {
		t.Error("blank input must not evaluate")
	}
	if len(mock.appended) != 0 {
		t.Error("blank input must not be recorded")
	}
}

func TestTriageModel_Backspace(t *testing.T) {
	setupCheckTest(t)

	m := typeText(newTriageModel(), "ab")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(triageModel)

	if m.input != "a" {
		t.Errorf("expected input 'a' after backspace, got %q", m.input)
	}
}

func TestTriageModel_EscQuits(t *testing.T) {
	setupCheckTest(t)

	_, cmd := newTriageModel().Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should produce a quit command")
	}
}

func TestTriageModel_ViewShowsDecision(t *testing.T) {
	setupCheckTest(t)

	m := typeText(newTriageModel(), "headache")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(triageModel)

	view := m.View()
	if !strings.Contains(view, "Self-care") {
		t.Errorf("view should show the tier badge:\n%s", view)
	}
	if !strings.Contains(view, "reason: rule:selfcare:headache") {
		t.Errorf("view should show the reason code:\n%s", view)
	}
}
