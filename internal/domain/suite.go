package domain

// Suite is one of the fixed artist workspaces. Suites are static
// configuration, not stored entities; the catalog is built once at
// startup and injected wherever suite lookups are needed.
type Suite struct {
	ID            string
	SuiteName     string
	RoomNumber    string
	ArtistName    string
	Initials      string
	RoomKey       string
	DoorColor     string
	PersonalColor string
	Bio           string
}
