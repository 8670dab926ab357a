package wire

import (
	"clockify-client/internal/logging"
	"clockify-client/models"
)

// DecodeUser builds a User from a response dictionary.
func DecodeUser(dict map[string]any) (models.User, error) {
	id, name, err := decodeNamed(dict)
	if err != nil {
		return models.User{}, err
	}
	return models.User{ID: id, Name: name}, nil
}

// DecodeWorkspace builds a Workspace from a response dictionary.
func DecodeWorkspace(dict map[string]any) (models.Workspace, error) {
	id, name, err := decodeNamed(dict)
	if err != nil {
		return models.Workspace{}, err
	}
	return models.Workspace{ID: id, Name: name}, nil
}

// DecodeProject builds a fully hydrated Project from a response dictionary.
// Project references embedded in other payloads are decoded as stubs by
// DecodeTimeEntry instead.
func DecodeProject(dict map[string]any) (models.Project, error) {
	id, name, err := decodeNamed(dict)
	if err != nil {
		return models.Project{}, err
	}
	return models.Project{ID: id, Name: name}, nil
}

// decodeNamed reads the shared {id, name} shape of the named entities.
func decodeNamed(dict map[string]any) (id, name string, err error) {
	id, err = RequireString(dict, "id")
	if err != nil {
		return "", "", err
	}
	name, err = RequireString(dict, "name")
	if err != nil {
		return "", "", err
	}
	return id, name, nil
}

// DecodeTimeEntry builds a TimeEntry from a response dictionary. The entry id
// and timeInterval.start are required; everything else is optional. A missing
// timeInterval.end means the entry is a running timer.
func DecodeTimeEntry(dict map[string]any) (models.TimeEntry, error) {
	id, err := RequireString(dict, "id")
	if err != nil {
		return models.TimeEntry{}, err
	}
	rawInterval, err := RequireField(dict, "timeInterval")
	if err != nil {
		return models.TimeEntry{}, err
	}
	interval, ok := rawInterval.(map[string]any)
	if !ok {
		return models.TimeEntry{}, NewFieldError("timeInterval", rawInterval, "expected an object")
	}
	start, err := RequireDateTime(interval, "start")
	if err != nil {
		return models.TimeEntry{}, err
	}
	end, err := OptionalDateTime(interval, "end")
	if err != nil {
		return models.TimeEntry{}, err
	}
	description, _, err := OptionalString(dict, "description")
	if err != nil {
		return models.TimeEntry{}, err
	}
	projectID, hasProject, err := OptionalString(dict, "projectId")
	if err != nil {
		return models.TimeEntry{}, err
	}
	var project *models.Project
	if hasProject {
		// Only the id is available at this parse site, so the reference
		// stays a stub until reconciled with a fetched project.
		stub := models.NewProjectStub(projectID)
		project = &stub
	}
	billable, err := decodeBillable(dict)
	if err != nil {
		return models.TimeEntry{}, err
	}

	entry := models.TimeEntry{
		ID:          id,
		Start:       start,
		End:         end,
		Description: description,
		Project:     project,
		Billable:    billable,
	}
	logging.Debugf("decoded time entry %s\n", entry.ID)
	return entry, nil
}

// decodeBillable tolerates both the boolean the API documents and the
// "true"/"false" strings older payloads carry.
func decodeBillable(dict map[string]any) (bool, error) {
	value, ok := OptionalField(dict, "billable")
	if !ok {
		return false, nil
	}
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return v == "true", nil
	default:
		return false, NewFieldError("billable", value, "expected a bool or string")
	}
}
