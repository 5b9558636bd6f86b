package state

// Intent describes one requested state change. Collaborators construct an
// intent and hand it to the store; the reducer in Apply is the only code
// that interprets them.
type Intent interface {
	isIntent()
}

// ReplaceAll swaps in a whole new state. Used for the initial load and for
// adopting writes made by other processes; never merged field-by-field.
type ReplaceAll struct {
	State AppState
}

// AddLocation appends a new location. The caller is responsible for
// assigning a fresh unique ID before dispatching.
type AddLocation struct {
	Location Location
}

// EditLocation replaces the fields of the location with the matching ID,
// keeping its position in the sequence.
type EditLocation struct {
	Location Location
}

// DeleteLocation removes every location with the given ID.
type DeleteLocation struct {
	ID string
}

// SetAnnouncements replaces the announcements text.
type SetAnnouncements struct {
	Text string
}

// SetContactInfo replaces the contact record wholesale, all three fields.
type SetContactInfo struct {
	Info ContactInfo
}

func (ReplaceAll) isIntent()       {}
func (AddLocation) isIntent()      {}
func (EditLocation) isIntent()     {}
func (DeleteLocation) isIntent()   {}
func (SetAnnouncements) isIntent() {}
func (SetContactInfo) isIntent()   {}
