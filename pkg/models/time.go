package models

import (
	"fmt"
	"time"
)

// jiraTimeLayouts lists the timestamp formats accepted when normalizing a
// time field, most specific first.
var jiraTimeLayouts = []string{
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05.999-07:00",
	time.RFC3339,
}

// FormatJiraTime renders an epoch-millisecond timestamp in the form Jira
// accepts for time fields: YYYY-MM-DDThh:mm:ss.000±HHMM. The value is built
// from local wall-clock fields in loc with the UTC offset truncated to whole
// hours, and seconds forced to zero.
func FormatJiraTime(millis int64, loc *time.Location) string {
	t := time.UnixMilli(millis).In(loc)
	_, offset := t.Zone()
	hours := offset / 3600
	sign := "+"
	if hours < 0 {
		sign = "-"
		hours = -hours
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:00.000%s%02d00",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), sign, hours)
}

// ParseJiraTime converts a Jira timestamp string into epoch milliseconds.
// An empty string means "unscheduled" and parses to 0 without error.
func ParseJiraTime(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	var lastErr error
	for _, layout := range jiraTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UnixMilli(), nil
		}
		lastErr = err
	}
	return 0, fmt.Errorf("unrecognized timestamp %q: %v", s, lastErr)
}
