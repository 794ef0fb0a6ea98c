// Package datetime converts between Unix timestamps and human-readable dates
// and renders instants in named time zones.
package datetime

import (
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host's zoneinfo

	"github.com/erraggy/convkit/converrors"
)

// Layouts used for input and output.
const (
	// HumanLayout is the minute-precision form of a date-time input field.
	HumanLayout = "2006-01-02T15:04"
	// ISOLayout matches the millisecond UTC form of an ISO 8601 timestamp.
	ISOLayout = "2006-01-02T15:04:05.000Z07:00"
	// ZoneLayout is the numeric month/day/year form used for zoned output.
	ZoneLayout = "01/02/2006, 15:04:05"
)

// Zone is a preset time zone.
type Zone struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

var zones = []Zone{
	{"UTC", "UTC (Coordinated Universal Time)"},
	{"America/New_York", "Eastern Time (ET)"},
	{"America/Chicago", "Central Time (CT)"},
	{"America/Denver", "Mountain Time (MT)"},
	{"America/Los_Angeles", "Pacific Time (PT)"},
	{"Europe/London", "London (GMT/BST)"},
	{"Europe/Paris", "Paris (CET/CEST)"},
	{"Asia/Tokyo", "Tokyo (JST)"},
	{"Asia/Shanghai", "Shanghai (CST)"},
	{"Asia/Kolkata", "India (IST)"},
	{"Australia/Sydney", "Sydney (AEST/AEDT)"},
}

// Zones returns the preset zones.
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

// FromUnix returns the UTC instant for a Unix timestamp in seconds.
func FromUnix(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}

// ParseUnix reads a Unix timestamp in seconds.
func ParseUnix(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, &converrors.ValidationError{Field: "timestamp", Value: text, Message: "expected whole seconds since the Unix epoch"}
	}
	return FromUnix(n), nil
}

// HumanDate renders t in UTC with HumanLayout.
func HumanDate(t time.Time) string {
	return t.UTC().Format(HumanLayout)
}

var humanLayouts = []string{HumanLayout, "2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02 15:04:05", time.DateOnly}

// ParseHuman reads a date typed by a user and returns its Unix timestamp in
// seconds. RFC 3339 input carries its own offset; every other accepted
// layout is interpreted in loc, or UTC when loc is nil.
func ParseHuman(text string, loc *time.Location) (int64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &converrors.ValidationError{Field: "date", Message: "a date is required"}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Unix(), nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range humanLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, &converrors.ValidationError{Field: "date", Value: text, Message: "expected YYYY-MM-DDTHH:MM"}
}

// ISO renders t as an ISO 8601 UTC timestamp with milliseconds.
func ISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// InZone renders t in the named IANA zone with ZoneLayout. An unknown zone
// falls back to the ISO rendering in UTC.
func InZone(t time.Time, tz string) string {
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "" {
		return ISO(t)
	}
	return t.In(loc).Format(ZoneLayout)
}

// Representation is one named rendering of an instant.
type Representation struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Formats renders t in every supported notation.
func Formats(t time.Time) []Representation {
	u := t.UTC()
	return []Representation{
		{"ISO 8601", ISO(u)},
		{"UTC", u.Format(time.DateTime) + " UTC"},
		{"Date", u.Format("1/2/2006")},
		{"Time", u.Format("3:04:05 PM")},
		{"Unix Timestamp", strconv.FormatInt(u.Unix(), 10)},
		{"Milliseconds", strconv.FormatInt(u.UnixMilli(), 10)},
	}
}
