package core

import "testing"

func TestExtractHints(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantAge  *int
		wantDays *int
	}{
		{"empty text", "", nil, nil},
		{"no signals", "sore throat and cough", nil, nil},
		{"age with years after", "I am 34 years old", intPtr(34), nil},
		{"age with yr", "patient 60 yr with cough", intPtr(60), nil},
		{"age unit before number", "years 34", intPtr(34), nil},
		{"duration days", "fever for 3 days", nil, intPtr(3)},
		{"duration day singular", "headache for 1 day", nil, intPtr(1)},
		{"duration zero days", "cough for 0 days", nil, intPtr(0)},
		{"age and duration", "5 years old, fever for 2 days", intPtr(5), intPtr(2)},
		{"last age wins", "was 30 years then 31 years", intPtr(31), nil},
		{"last duration wins", "2 days then 4 days", nil, intPtr(4)},
		{"age out of range high", "300 years of history", nil, nil},
		{"age zero rejected", "0 years", nil, nil},
		{"age upper bound rejected", "120 years", nil, nil},
		{"slash splits y/o", "34 y/o with fever", nil, nil},
		{"bare number no unit", "took 34 tablets", nil, nil},
		{"number at end with unit before", "patient aged in years 42", intPtr(42), nil},
		{"daytime prefix counts", "3 daytime naps", nil, intPtr(3)},
		{"mixed case", "Fever For 3 DAYS", nil, intPtr(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractHints(tt.input)
			checkOptionalInt(t, "age", got.Age, tt.wantAge)
			checkOptionalInt(t, "duration", got.DurationDays, tt.wantDays)
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("Fever/Chills  For 3 Days")
	want := []string{"fever", "chills", "for", "3", "days"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func intPtr(n int) *int { return &n }

func checkOptionalInt(t *testing.T, label string, got, want *int) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s: expected nil, got %d", label, *got)
	case want != nil && got == nil:
		t.Errorf("%s: expected %d, got nil", label, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s: expected %d, got %d", label, *want, *got)
	}
}
