package utils

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly is a calendar date that marshals as "YYYY-MM-DD" in JSON.
// Availability dates and move-in dates carry no time of day, so the
// comparison granularity is whole days.
type DateOnly struct {
	time.Time
}

func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: t.Truncate(24 * time.Hour)}
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format: %w", err)
	}
	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d DateOnly) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
