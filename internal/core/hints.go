package core

import (
	"strconv"
	"strings"

	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
)

// ageUnits are the tokens that mark a neighboring number as an age.
// "y/o" is kept from the original unit table even though the tokenizer
// splits on '/', so it can no longer match.
var ageUnits = map[string]bool{
	"year":  true,
	"years": true,
	"yr":    true,
	"y/o":   true,
}

// tokenize lower-cases text and splits it on whitespace, with '/'
// treated as whitespace.
func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	lowered = strings.ReplaceAll(lowered, "/", " ")
	return strings.Fields(lowered)
}

// ExtractHints scans free text for an age-in-years and a
// duration-in-days signal. When several candidates appear, the last
// one in reading order wins. ExtractHints never fails; absent or
// malformed signals simply yield nil fields.
func ExtractHints(text string) models.ExtractedHints {
	tokens := tokenize(text)
	var hints models.ExtractedHints

	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}

		// Age: the 3-token window centered on the number, clipped at
		// the string bounds, must contain an age unit.
		if n > 0 && n < 120 && windowHasAgeUnit(tokens, i) {
			age := n
			hints.Age = &age
		}

		// Duration: the number must be immediately followed by a token
		// starting with "day".
		if n >= 0 && i+1 < len(tokens) && strings.HasPrefix(tokens[i+1], "day") {
			days := n
			hints.DurationDays = &days
		}
	}

	return hints
}

// windowHasAgeUnit checks the tokens at i-1, i, and i+1 (clipped)
// against the age unit set.
func windowHasAgeUnit(tokens []string, i int) bool {
	lo, hi := i-1, i+1
	if lo < 0 {
		lo = 0
	}
	if hi > len(tokens)-1 {
		hi = len(tokens) - 1
	}
	for j := lo; j <= hi; j++ {
		if ageUnits[tokens[j]] {
			return true
		}
	}
	return false
}
