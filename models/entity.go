package models

import "fmt"

// Resource is implemented by every object the Clockify API returns. The id is
// an opaque, server-assigned hash and is never interpreted locally.
type Resource interface {
	ResourceID() string
}

// User represents a Clockify user.
type User struct {
	ID   string
	Name string
}

// ResourceID returns the server-assigned id.
func (u User) ResourceID() string {
	return u.ID
}

// String returns a display form for logging and debugging. It is never parsed back.
func (u User) String() string {
	return fmt.Sprintf("User '%s' (%s)", u.Name, u.ID)
}

// Workspace represents a Clockify workspace.
type Workspace struct {
	ID   string
	Name string
}

// ResourceID returns the server-assigned id.
func (w Workspace) ResourceID() string {
	return w.ID
}

// String returns a display form for logging and debugging.
func (w Workspace) String() string {
	return fmt.Sprintf("Workspace '%s' (%s)", w.Name, w.ID)
}

// Project represents a Clockify project.
// Stub marks a project reference decoded from another entity's payload, where
// only the id is available. Callers must not assume Name is populated on a
// stub; a stub can be reconciled against a separately fetched Project by
// matching ids.
type Project struct {
	ID   string
	Name string
	Stub bool
}

// NewProjectStub returns an id-only project reference.
func NewProjectStub(id string) Project {
	return Project{ID: id, Stub: true}
}

// ResourceID returns the server-assigned id.
func (p Project) ResourceID() string {
	return p.ID
}

// String returns a display form for logging and debugging.
func (p Project) String() string {
	if p.Stub {
		return fmt.Sprintf("ProjectStub (%s)", p.ID)
	}
	return fmt.Sprintf("Project '%s' (%s)", p.Name, p.ID)
}
