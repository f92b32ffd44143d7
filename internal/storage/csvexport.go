package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
)

// csvHeader is the fixed column layout of a decision log export.
var csvHeader = []string{
	"id",
	"time",
	"input",
	"tier",
	"reason_code",
	"headline",
	"age",
	"duration_days",
	"user_severity",
	"route_labels",
	"advice_points",
}

// ExportCSV writes decision records to w in CSV form, one row per
// record, preserving record order. List columns are joined with "; ".
func ExportCSV(w io.Writer, records []models.DecisionRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ID,
			r.Time.Format(time.RFC3339),
			r.Input,
			string(r.Decision.Tier),
			r.Decision.ReasonCode,
			r.Decision.Headline,
			formatOptionalInt(r.Decision.Age),
			formatOptionalInt(r.Decision.DurationDays),
			r.Decision.UserSeverity,
			strings.Join(r.Decision.RouteLabels, "; "),
			strings.Join(r.Decision.AdvicePoints, "; "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

func formatOptionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
