package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every variant satisfies the Resource interface.
var (
	_ Resource = User{}
	_ Resource = Workspace{}
	_ Resource = Project{}
	_ Resource = TimeEntry{}
)

func TestUser_String(t *testing.T) {
	user := User{ID: "u1", Name: "Jane"}

	assert.Equal(t, "User 'Jane' (u1)", user.String())
}

func TestWorkspace_String(t *testing.T) {
	workspace := Workspace{ID: "w1", Name: "Acme"}

	assert.Equal(t, "Workspace 'Acme' (w1)", workspace.String())
}

func TestProject_String(t *testing.T) {
	tests := []struct {
		name     string
		project  Project
		expected string
	}{
		{
			name:     "fully hydrated project",
			project:  Project{ID: "p1", Name: "Website"},
			expected: "Project 'Website' (p1)",
		},
		{
			name:     "id-only stub",
			project:  NewProjectStub("p2"),
			expected: "ProjectStub (p2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.project.String())
		})
	}
}

func TestNewProjectStub(t *testing.T) {
	stub := NewProjectStub("p1")

	assert.Equal(t, "p1", stub.ID)
	assert.Empty(t, stub.Name)
	assert.True(t, stub.Stub)
}

func TestResourceID(t *testing.T) {
	tests := []struct {
		name     string
		resource Resource
		expected string
	}{
		{"user", User{ID: "u1", Name: "Jane"}, "u1"},
		{"workspace", Workspace{ID: "w1", Name: "Acme"}, "w1"},
		{"project", Project{ID: "p1", Name: "Website"}, "p1"},
		{"project stub", NewProjectStub("p2"), "p2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resource.ResourceID())
		})
	}
}
