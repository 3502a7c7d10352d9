package repository

import (
	"context"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
)

// SceneRepository defines storage operations for scenes and their
// embedded collaborator entries.
type SceneRepository interface {
	// FindByID loads a scene with its collaborators, returning
	// ErrNotFound if absent and ErrCorruptData if the stored object
	// list fails to decode.
	FindByID(ctx context.Context, id uint) (*domain.Scene, error)

	// FindByOwner returns all scenes owned by the user.
	FindByOwner(ctx context.Context, ownerID uint) ([]domain.Scene, error)

	// FindByCollaborator returns all scenes where the user has an
	// active collaborator entry.
	FindByCollaborator(ctx context.Context, userID uint) ([]domain.Scene, error)

	// Save inserts a new scene and fills in its generated id.
	Save(ctx context.Context, scene *domain.Scene) error

	// Update applies only the given column/value pairs to the scene.
	// A value under the "objects" key must be a []domain.SceneObject;
	// the repository handles its encoding.
	Update(ctx context.Context, id uint, fields map[string]interface{}) error

	// Delete removes the scene and its collaborator entries. Related
	// messages and media are the caller's responsibility.
	Delete(ctx context.Context, id uint) error

	// AddCollaborator appends a collaborator entry, returning
	// ErrDuplicateEntry if the user already has one for this scene.
	AddCollaborator(ctx context.Context, sceneID uint, c domain.Collaborator) error

	// UpdateCollaboratorStatus sets the status of the user's entry,
	// returning ErrNotFound if no entry exists.
	UpdateCollaboratorStatus(ctx context.Context, sceneID, userID uint, status string) error
}
