package domain

import "time"

// Artwork types.
const (
	ArtworkPainting  = "painting"
	ArtworkMusic     = "music"
	ArtworkWriting   = "writing"
	ArtworkSculpture = "sculpture"
	ArtworkPhoto     = "photo"
)

// Artwork is an uploaded creative work attached to one of the fixed
// artist suites. The identifier is an opaque uuid string; Filename is
// the generated blob name, never the client-supplied one.
type Artwork struct {
	ID          string
	ArtistID    uint
	SuiteID     string
	Title       string
	Description string
	Type        string
	Filename    string
	MimeType    string
	FileSize    int64
	Metadata    map[string]interface{}
	Tags        []string
	Likes       int64
	Views       int64
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
