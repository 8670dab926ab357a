package wire

import (
	"strconv"

	"clockify-client/internal/logging"
	"clockify-client/models"
)

// EncodeTimeEntry produces the dictionary shape the write endpoints expect.
// Unset fields are omitted entirely rather than sent as null or empty: the
// service reads an absent "end" as a still-running timer. The billable flag
// is carried as the "true"/"false" strings the service accepts, so it is
// always present.
func EncodeTimeEntry(entry models.TimeEntry) map[string]any {
	dict := map[string]any{
		"id":          entry.ID,
		"start":       NewDateTime(entry.Start).String(),
		"description": entry.Description,
		"billable":    strconv.FormatBool(entry.Billable),
	}
	if entry.End != nil {
		dict["end"] = NewDateTime(*entry.End).String()
	}
	if entry.Project != nil {
		dict["projectId"] = entry.Project.ID
	}
	logging.Debugf("encoded time entry %s\n", entry.ID)
	return dropEmpty(dict)
}

// dropEmpty removes keys holding nil or empty-string values.
func dropEmpty(dict map[string]any) map[string]any {
	out := make(map[string]any, len(dict))
	for key, value := range dict {
		if value == nil || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}
