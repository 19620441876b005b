package timeutils

import (
	"testing"
	"time"
)

func TestParseScheduledAt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "rfc3339 with offset",
			value: "2026-09-01T10:30:00-03:00",
			want:  time.Date(2026, 9, 1, 13, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 utc",
			value: "2026-09-01T10:30:00Z",
			want:  time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "datetime-local",
			value: "2026-09-01T10:30",
			want:  time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "datetime-local with seconds",
			value: "2026-09-01T10:30:45",
			want:  time.Date(2026, 9, 1, 10, 30, 45, 0, time.UTC),
		},
		{
			name:  "space separated",
			value: "2026-09-01 10:30",
			want:  time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			value: "  2026-09-01T10:30  ",
			want:  time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parsed, err := ParseScheduledAt(test.value)
			if err != nil {
				t.Fatalf("ParseScheduledAt(%q) error: %v", test.value, err)
			}
			if !parsed.Equal(test.want) {
				t.Fatalf("ParseScheduledAt(%q) = %v, want %v", test.value, parsed, test.want)
			}
			if parsed.Location() != time.UTC {
				t.Fatalf("ParseScheduledAt(%q) location = %v, want UTC", test.value, parsed.Location())
			}
		})
	}
}

func TestParseScheduledAtRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "   ", "tomorrow", "2026-13-40T99:99", "1693550000"} {
		if _, err := ParseScheduledAt(value); err == nil {
			t.Fatalf("ParseScheduledAt(%q) expected error", value)
		}
	}
}
