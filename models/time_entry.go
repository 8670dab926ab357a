package models

import (
	"fmt"
	"time"
)

// DefaultDescriptionLength is the display width String uses for the description.
const DefaultDescriptionLength = 30

// TimeEntry represents a single tracked interval in the domain model.
// This is a pure domain model without wire-format concerns.
type TimeEntry struct {
	ID          string
	Start       time.Time
	End         *time.Time // nil means the entry is a running timer
	Description string
	Project     *Project // non-owning reference, nil means no association
	Billable    bool
}

// NewTimeEntry creates a new TimeEntry starting at the given time.
func NewTimeEntry(id string, start time.Time) TimeEntry {
	return TimeEntry{
		ID:    id,
		Start: start,
	}
}

// IsRunning returns true if the time entry is currently running (no end time).
func (te TimeEntry) IsRunning() bool {
	return te.End == nil
}

// Stop returns a copy of the entry with the end time set.
func (te TimeEntry) Stop(end time.Time) TimeEntry {
	te.End = &end
	return te
}

// DisplayDescription returns the description truncated to maxLen characters,
// replacing the tail with "..." when it exceeds the limit. Display only, the
// wire serialization always carries the full description.
func (te TimeEntry) DisplayDescription(maxLen int) string {
	runes := []rune(te.Description)
	if len(runes) <= maxLen {
		return te.Description
	}
	cut := maxLen - 3
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + "..."
}

// ResourceID returns the server-assigned id.
func (te TimeEntry) ResourceID() string {
	return te.ID
}

// String returns a display form for logging and debugging.
func (te TimeEntry) String() string {
	return fmt.Sprintf("TimeEntry (%s) - '%s'", te.ID, te.DisplayDescription(DefaultDescriptionLength))
}
