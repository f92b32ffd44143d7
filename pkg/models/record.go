package models

import "time"

// DecisionRecord is a logged triage decision: the engine output plus
// the raw input text and bookkeeping fields. Records are a storage
// concern; the triage engine never sees them.
type DecisionRecord struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Input    string    `json:"input"`
	Decision Decision  `json:"decision"`
}
