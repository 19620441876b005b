package timeutils

import (
	"fmt"
	"strings"
	"time"
)

// Accepted layouts for user-supplied schedule timestamps. The panel submits
// datetime-local values ("2006-01-02T15:04"), API clients usually send
// RFC3339.
var scheduleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseScheduledAt parses a user-supplied timestamp and normalizes it to UTC.
// Layouts without an offset are interpreted as UTC. Comparison downstream is
// done at full precision, never truncated to the minute.
func ParseScheduledAt(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("scheduled_at: cannot be blank")
	}

	for _, layout := range scheduleLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("scheduled_at: %q is not a valid timestamp", trimmed)
}
