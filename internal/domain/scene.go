package domain

import "time"

// Collaborator statuses. Only Active confers access; Invited grants
// nothing until accepted and Removed is terminal.
const (
	CollaboratorInvited = "invited"
	CollaboratorActive  = "active"
	CollaboratorRemoved = "removed"
)

// Collaborator permissions. Each permission string is checked
// independently: admin does not imply edit.
const (
	PermissionView  = "view"
	PermissionEdit  = "edit"
	PermissionAdmin = "admin"
)

// Position is a 2D coordinate within a scene.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SceneObject is a single placed object inside a scene.
type SceneObject struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Position Position `json:"position"`
	Rotation float64  `json:"rotation"`
	Scale    float64  `json:"scale"`
	ZIndex   int      `json:"z_index"`
}

// Collaborator is a scene-scoped access grant for a non-owner user.
// A scene holds at most one entry per user, regardless of status.
type Collaborator struct {
	UserID      uint      `json:"user_id"`
	Permissions []string  `json:"permissions"`
	Status      string    `json:"status"`
	InvitedAt   time.Time `json:"invited_at"`
}

// Scene is a virtual collaborative room. The owner is implicitly
// all-powerful and never appears in Collaborators.
type Scene struct {
	ID            uint
	Name          string
	Description   string
	Background    string
	Objects       []SceneObject
	OwnerID       uint
	Collaborators []Collaborator
	IsPublic      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasPermission reports whether the permission string was granted to
// this collaborator. Status is not considered here.
func (c *Collaborator) HasPermission(perm string) bool {
	for _, p := range c.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// FindCollaborator returns the collaborator entry for the user in any
// status, or nil if the user was never invited.
func (s *Scene) FindCollaborator(userID uint) *Collaborator {
	for i := range s.Collaborators {
		if s.Collaborators[i].UserID == userID {
			return &s.Collaborators[i]
		}
	}
	return nil
}
