package domain

// Access rules for scenes. These are pure predicates over an already
// loaded scene; they never touch a store. Only collaborators with
// status "active" count, and permission strings are matched one by one
// (granting admin without edit does not allow editing).

// activeCollaborator returns the user's collaborator entry if it
// exists and is active.
func (s *Scene) activeCollaborator(userID uint) *Collaborator {
	c := s.FindCollaborator(userID)
	if c == nil || c.Status != CollaboratorActive {
		return nil
	}
	return c
}

// CanView reports whether the user may read the scene: owner, public
// scene, or any active collaborator entry.
func (s *Scene) CanView(userID uint) bool {
	if s.OwnerID == userID || s.IsPublic {
		return true
	}
	return s.activeCollaborator(userID) != nil
}

// CanEdit reports whether the user may mutate scene content.
func (s *Scene) CanEdit(userID uint) bool {
	if s.OwnerID == userID {
		return true
	}
	c := s.activeCollaborator(userID)
	return c != nil && c.HasPermission(PermissionEdit)
}

// CanAdmin reports whether the user may manage collaborators.
func (s *Scene) CanAdmin(userID uint) bool {
	if s.OwnerID == userID {
		return true
	}
	c := s.activeCollaborator(userID)
	return c != nil && c.HasPermission(PermissionAdmin)
}

// CanDelete reports whether the user may delete the scene. Strictly
// the owner; admin collaborators cannot delete.
func (s *Scene) CanDelete(userID uint) bool {
	return s.OwnerID == userID
}
