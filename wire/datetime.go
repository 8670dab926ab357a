package wire

import (
	"fmt"
	"time"
)

// DateTimeFormat is the exact timestamp layout exchanged with the Clockify
// API: UTC with a literal 'Z' suffix, never a numeric offset. Any deviation
// breaks interoperability with the service.
const DateTimeFormat = "2006-01-02T15:04:05Z"

// localLayouts are accepted for input that carries no zone information. Such
// timestamps are interpreted in the local system timezone, never as UTC.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateTime is a timezone-aware timestamp with defined UTC and local
// projections. It is constructed transiently whenever a conversion is needed
// and never cached.
type DateTime struct {
	t time.Time
}

// NewDateTime wraps a timestamp for wire formatting.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t}
}

// Time returns the underlying timestamp.
func (dt DateTime) Time() time.Time {
	return dt.t
}

// UTC returns the timestamp projected to UTC.
func (dt DateTime) UTC() time.Time {
	return dt.t.UTC()
}

// Local returns the timestamp projected to the local system timezone.
func (dt DateTime) Local() time.Time {
	return dt.t.Local()
}

// String formats the UTC projection in the wire layout.
func (dt DateTime) String() string {
	return dt.UTC().Format(DateTimeFormat)
}

// ParseDateTime parses a timestamp string from the service. The service emits
// the wire layout on its own responses but other ISO 8601 variants appear in
// practice, so RFC 3339 input is accepted as-is, including numeric offsets and
// fractional seconds. Input without zone information is interpreted in the
// local system timezone.
func ParseDateTime(s string) (DateTime, error) {
	t, rfcErr := time.Parse(time.RFC3339, s)
	if rfcErr == nil {
		return DateTime{t: t}, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DateTime{t: t}, nil
		}
	}
	return DateTime{}, NewParseError(fmt.Sprintf("error parsing '%s' to datetime", s), rfcErr)
}
