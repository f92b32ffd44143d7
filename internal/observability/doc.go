// Package observability provides the append-only decision log and the
// metrics derived from it. The triage core never depends on this
// package; records are written by the CLI layer after evaluation.
package observability
