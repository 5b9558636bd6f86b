package state

// Location is a single e-waste drop-off point published by the municipality.
// The ID is opaque and immutable; it is the only join key for edits and
// deletes. Field validation (non-empty label/address, coordinate range)
// happens at the UI boundary before an intent is ever built.
type Location struct {
	ID       string  `json:"id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Address  string  `json:"address"`
	Schedule string  `json:"schedule"`
	Label    string  `json:"label"`
}

// ContactInfo is the singleton contact record. It always exists and is only
// ever replaced wholesale.
type ContactInfo struct {
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Office string `json:"office"`
}

// AppState is the root aggregate and the unit of persistence. Location order
// is insertion order and must survive a round-trip unchanged.
type AppState struct {
	Locations     []Location  `json:"locations"`
	Announcements string      `json:"announcements"`
	ContactInfo   ContactInfo `json:"contactInfo"`
}

// Default returns the fully populated initial state: no locations, empty
// announcements, empty contact fields.
func Default() AppState {
	return AppState{Locations: []Location{}}
}

// Clone returns a copy of s that shares no mutable structure with it.
func (s AppState) Clone() AppState {
	dup := s
	dup.Locations = cloneLocations(s.Locations)
	return dup
}

func cloneLocations(locs []Location) []Location {
	if locs == nil {
		return nil
	}
	dup := make([]Location, len(locs))
	copy(dup, locs)
	return dup
}
