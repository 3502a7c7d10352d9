// Package http contains the gin request handlers: binding, identity
// extraction and response shaping. All business decisions live in the
// service layer.
package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
)

// ErrorResponse writes a JSON error body with the given status.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
	IsOnline  bool      `json:"is_online"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		LastSeen:  u.LastSeen,
		IsOnline:  u.IsOnline,
	}
}

// SceneResponse is a scene enriched with display details.
type SceneResponse struct {
	ID            uint                          `json:"id"`
	Name          string                        `json:"name"`
	Description   string                        `json:"description"`
	Background    string                        `json:"background"`
	Objects       []domain.SceneObject          `json:"objects"`
	Owner         uint                          `json:"owner"`
	OwnerName     string                        `json:"owner_name"`
	Collaborators []service.CollaboratorDetails `json:"collaborators"`
	IsPublic      bool                          `json:"is_public"`
	CreatedAt     time.Time                     `json:"created_at"`
	UpdatedAt     time.Time                     `json:"updated_at"`
}

func toSceneResponse(d *service.SceneDetails) SceneResponse {
	return SceneResponse{
		ID:            d.Scene.ID,
		Name:          d.Scene.Name,
		Description:   d.Scene.Description,
		Background:    d.Scene.Background,
		Objects:       d.Scene.Objects,
		Owner:         d.Scene.OwnerID,
		OwnerName:     d.OwnerName,
		Collaborators: d.Collaborators,
		IsPublic:      d.Scene.IsPublic,
		CreatedAt:     d.Scene.CreatedAt,
		UpdatedAt:     d.Scene.UpdatedAt,
	}
}

// MessageResponse is a message with its sender resolved.
type MessageResponse struct {
	ID        uint                `json:"id"`
	SceneID   uint                `json:"scene_id"`
	Sender    service.UserSummary `json:"sender"`
	Content   string              `json:"content"`
	Type      string              `json:"type"`
	Timestamp time.Time           `json:"timestamp"`
}

func toMessageResponse(d *service.MessageDetails) MessageResponse {
	return MessageResponse{
		ID:        d.Message.ID,
		SceneID:   d.Message.SceneID,
		Sender:    d.Sender,
		Content:   d.Message.Content,
		Type:      d.Message.Type,
		Timestamp: d.Message.CreatedAt,
	}
}

// MediaResponse is a media record with its uploader resolved.
type MediaResponse struct {
	ID           uint                `json:"id"`
	SceneID      uint                `json:"scene_id"`
	UploadedBy   service.UserSummary `json:"uploaded_by"`
	Filename     string              `json:"filename"`
	OriginalName string              `json:"original_name"`
	MimeType     string              `json:"mime_type"`
	Size         int64               `json:"size"`
	Type         string              `json:"type"`
	URL          string              `json:"url"`
	UploadedAt   time.Time           `json:"uploaded_at"`
}

func toMediaResponse(d *service.MediaDetails) MediaResponse {
	return MediaResponse{
		ID:           d.Media.ID,
		SceneID:      d.Media.SceneID,
		UploadedBy:   d.Uploader,
		Filename:     d.Media.Filename,
		OriginalName: d.Media.OriginalName,
		MimeType:     d.Media.MimeType,
		Size:         d.Media.Size,
		Type:         d.Media.Type,
		URL:          uploadsURL(d.Media.Filename),
		UploadedAt:   d.Media.UploadedAt,
	}
}

// ArtworkResponse is an artwork with its artist name resolved from the
// suite catalog.
type ArtworkResponse struct {
	ID          string                 `json:"id"`
	ArtistID    uint                   `json:"artist_id"`
	ArtistName  string                 `json:"artist_name"`
	SuiteID     string                 `json:"suite_id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	FileURL     string                 `json:"file_url"`
	MimeType    string                 `json:"mime_type"`
	FileSize    int64                  `json:"file_size"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Tags        []string               `json:"tags"`
	Likes       int64                  `json:"likes"`
	Views       int64                  `json:"views"`
	IsPublic    bool                   `json:"is_public"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func toArtworkResponse(d *service.ArtworkDetails) ArtworkResponse {
	return ArtworkResponse{
		ID:          d.Artwork.ID,
		ArtistID:    d.Artwork.ArtistID,
		ArtistName:  d.ArtistName,
		SuiteID:     d.Artwork.SuiteID,
		Title:       d.Artwork.Title,
		Description: d.Artwork.Description,
		Type:        d.Artwork.Type,
		FileURL:     uploadsURL(d.Artwork.Filename),
		MimeType:    d.Artwork.MimeType,
		FileSize:    d.Artwork.FileSize,
		Metadata:    d.Artwork.Metadata,
		Tags:        d.Artwork.Tags,
		Likes:       d.Artwork.Likes,
		Views:       d.Artwork.Views,
		IsPublic:    d.Artwork.IsPublic,
		CreatedAt:   d.Artwork.CreatedAt,
		UpdatedAt:   d.Artwork.UpdatedAt,
	}
}

// SuiteResponse is a catalog suite with its live artwork count.
type SuiteResponse struct {
	ID            string `json:"id"`
	SuiteName     string `json:"suite_name"`
	RoomNumber    string `json:"room_number"`
	ArtistName    string `json:"artist_name"`
	Initials      string `json:"initials"`
	RoomKey       string `json:"room_key"`
	DoorColor     string `json:"door_color"`
	PersonalColor string `json:"personal_color"`
	Bio           string `json:"bio,omitempty"`
	ArtworkCount  int64  `json:"artwork_count"`
	IsOnline      bool   `json:"is_online"`
	LastSeen      string `json:"last_seen"`
}

func toSuiteResponse(d *service.SuiteDetails) SuiteResponse {
	return SuiteResponse{
		ID:            d.Suite.ID,
		SuiteName:     d.Suite.SuiteName,
		RoomNumber:    d.Suite.RoomNumber,
		ArtistName:    d.Suite.ArtistName,
		Initials:      d.Suite.Initials,
		RoomKey:       d.Suite.RoomKey,
		DoorColor:     d.Suite.DoorColor,
		PersonalColor: d.Suite.PersonalColor,
		Bio:           d.Suite.Bio,
		ArtworkCount:  d.ArtworkCount,
		// Suite presence is not tracked; these are fixed placeholders.
		IsOnline: false,
		LastSeen: "Unknown",
	}
}

func uploadsURL(filename string) string {
	return "/uploads/" + filename
}
