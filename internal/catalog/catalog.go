// Package catalog holds the fixed artist suite catalog. The catalog is
// read-only process-wide configuration: built once in bootstrap,
// injected into the services that need suite lookups, and replaceable
// with a fake in tests.
package catalog

import "github.com/zach0583-rgb/ThatZachGuy/internal/domain"

// Catalog is an immutable set of suites keyed by id.
type Catalog struct {
	suites []domain.Suite
	byID   map[string]domain.Suite
}

// New builds a catalog from the given suites. Order is preserved for
// listing.
func New(suites []domain.Suite) *Catalog {
	byID := make(map[string]domain.Suite, len(suites))
	for _, s := range suites {
		byID[s.ID] = s
	}
	return &Catalog{suites: suites, byID: byID}
}

// All returns the suites in catalog order. The returned slice must not
// be mutated.
func (c *Catalog) All() []domain.Suite {
	return c.suites
}

// Get looks up a suite by id.
func (c *Catalog) Get(id string) (domain.Suite, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Default returns the production catalog: the six artist suites.
func Default() *Catalog {
	return New([]domain.Suite{
		{
			ID:            "suite-1",
			SuiteName:     "Christopher's Creative Space",
			RoomNumber:    "201",
			ArtistName:    "Christopher Royal King",
			Initials:      "CK",
			RoomKey:       "ROOM-201-CK",
			DoorColor:     "#FFD700",
			PersonalColor: "#FFF8DC",
			Bio:           "Painter exploring the connection between nature and emotion",
		},
		{
			ID:            "suite-2",
			SuiteName:     "Philip's Music Lab",
			RoomNumber:    "202",
			ArtistName:    "Philip Nanos",
			Initials:      "PN",
			RoomKey:       "ROOM-202-PN",
			DoorColor:     "#4169E1",
			PersonalColor: "#87CEEB",
			Bio:           "Composer crafting ambient soundscapes",
		},
		{
			ID:            "suite-3",
			SuiteName:     "Jeremy's Digital Studio",
			RoomNumber:    "203",
			ArtistName:    "Jeremy Galindo",
			Initials:      "JG",
			RoomKey:       "ROOM-203-JG",
			DoorColor:     "#FF4500",
			PersonalColor: "#FFA07A",
			Bio:           "Digital artist pushing creative boundaries",
		},
		{
			ID:            "suite-4",
			SuiteName:     "Joshua's Writing Den",
			RoomNumber:    "204",
			ArtistName:    "Joshua Brock",
			Initials:      "JB",
			RoomKey:       "ROOM-204-JB",
			DoorColor:     "#32CD32",
			PersonalColor: "#98FB98",
			Bio:           "Writer weaving stories from dreams",
		},
		{
			ID:            "suite-5",
			SuiteName:     "Chris's Photography Studio",
			RoomNumber:    "205",
			ArtistName:    "Chris Andrews",
			Initials:      "CA",
			RoomKey:       "ROOM-205-CA",
			DoorColor:     "#9370DB",
			PersonalColor: "#DDA0DD",
			Bio:           "Photographer capturing fleeting moments",
		},
		{
			ID:            "suite-6",
			SuiteName:     "Eric's Sculpture Workshop",
			RoomNumber:    "206",
			ArtistName:    "Eric Kriefels",
			Initials:      "EK",
			RoomKey:       "ROOM-206-EK",
			DoorColor:     "#FF1493",
			PersonalColor: "#FFB6C1",
			Bio:           "Sculptor shaping reality from imagination",
		},
	})
}
