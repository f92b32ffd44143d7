package observability

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
)

// DecisionFilter specifies criteria for reading decision records.
type DecisionFilter struct {
	Since *time.Time
	Tier  models.UrgencyTier
	Limit int // when > 0, keep only the most recent Limit records
}

// DecisionLog defines the interface for persisting and reading triage
// decision records.
type DecisionLog interface {
	Append(record models.DecisionRecord) error
	Read(filter DecisionFilter) ([]models.DecisionRecord, error)
	Close() error
}

// jsonlDecisionLog implements DecisionLog using an append-only JSONL
// file.
type jsonlDecisionLog struct {
	path string
	file *os.File
	mu   sync.Mutex
}

// NewJSONLDecisionLog creates a DecisionLog backed by a JSONL file at
// the given path.
func NewJSONLDecisionLog(path string) (DecisionLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening decision log: %w", err)
	}
	return &jsonlDecisionLog{
		path: path,
		file: f,
	}, nil
}

// Append writes a JSON-encoded record followed by a newline.
func (l *jsonlDecisionLog) Append(record models.DecisionRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshalling decision record: %w", err)
	}
	data = append(data, '\n')

	if _, err := l.file.Write(data); err != nil {
		return fmt.Errorf("writing decision record: %w", err)
	}
	return nil
}

// Read opens the log file for reading, scans line by line, decodes
// each record, and returns those matching the given filter.
func (l *jsonlDecisionLog) Read(filter DecisionFilter) ([]models.DecisionRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening decision log for reading: %w", err)
	}
	defer func() { _ = f.Close() }()

	var records []models.DecisionRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record models.DecisionRecord
		if err := json.Unmarshal(line, &record); err != nil {
			continue // skip malformed lines
		}

		if matchesDecisionFilter(record, filter) {
			records = append(records, record)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning decision log: %w", err)
	}

	if filter.Limit > 0 && len(records) > filter.Limit {
		records = records[len(records)-filter.Limit:]
	}

	return records, nil
}

// Close closes the underlying log file.
func (l *jsonlDecisionLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("closing decision log: %w", err)
	}
	return nil
}

// matchesDecisionFilter checks whether a record satisfies all filter
// criteria except Limit, which is applied after the scan.
func matchesDecisionFilter(record models.DecisionRecord, filter DecisionFilter) bool {
	if filter.Since != nil && record.Time.Before(*filter.Since) {
		return false
	}
	if filter.Tier != "" && record.Decision.Tier != filter.Tier {
		return false
	}
	return true
}
