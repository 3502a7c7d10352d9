package service

import (
	"context"
	"time"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
)

// UserSummary is the display projection of a user embedded in other
// responses: never includes the password hash.
type UserSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	IsOnline bool   `json:"is_online"`
}

// CollaboratorDetails is a collaborator entry enriched with the
// resolved user.
type CollaboratorDetails struct {
	User        UserSummary `json:"user"`
	Permissions []string    `json:"permissions"`
	Status      string      `json:"status"`
	InvitedAt   time.Time   `json:"invited_at"`
}

// SceneDetails is a scene enriched with owner and collaborator display
// information.
type SceneDetails struct {
	Scene         domain.Scene
	OwnerName     string
	Collaborators []CollaboratorDetails
}

// MessageDetails is a message enriched with the resolved sender.
type MessageDetails struct {
	Message domain.Message
	Sender  UserSummary
}

// MediaDetails is a media record enriched with the resolved uploader.
type MediaDetails struct {
	Media    domain.Media
	Uploader UserSummary
}

// ArtworkDetails is an artwork enriched with the suite's artist name.
type ArtworkDetails struct {
	Artwork    domain.Artwork
	ArtistName string
}

// SuiteDetails is a catalog suite enriched with its live artwork
// count.
type SuiteDetails struct {
	Suite        domain.Suite
	ArtworkCount int64
}

// resolveUserSummary looks up display details for a user reference. A
// dangling reference degrades to the placeholder name instead of
// failing the caller.
func resolveUserSummary(ctx context.Context, users repository.UserRepository, id uint, placeholder string) UserSummary {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		return UserSummary{ID: id, Name: placeholder}
	}
	return UserSummary{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Avatar:   user.Avatar,
		IsOnline: user.IsOnline,
	}
}
