package state

// Apply returns the state produced by in. It is a total function: an edit or
// delete naming an unknown ID returns the input state unchanged, and an add
// whose ID already exists is refused rather than breaking ID uniqueness.
// The input state is never modified; callers may keep old snapshots.
func Apply(s AppState, in Intent) AppState {
	switch in := in.(type) {
	case ReplaceAll:
		next := in.State.Clone()
		if next.Locations == nil {
			next.Locations = []Location{}
		}
		return next

	case AddLocation:
		if indexOf(s.Locations, in.Location.ID) >= 0 {
			return s
		}
		next := s.Clone()
		next.Locations = append(next.Locations, in.Location)
		return next

	case EditLocation:
		i := indexOf(s.Locations, in.Location.ID)
		if i < 0 {
			return s
		}
		next := s.Clone()
		next.Locations[i] = in.Location
		return next

	case DeleteLocation:
		if indexOf(s.Locations, in.ID) < 0 {
			return s
		}
		next := s.Clone()
		kept := next.Locations[:0]
		for _, loc := range next.Locations {
			if loc.ID != in.ID {
				kept = append(kept, loc)
			}
		}
		next.Locations = kept
		return next

	case SetAnnouncements:
		next := s.Clone()
		next.Announcements = in.Text
		return next

	case SetContactInfo:
		next := s.Clone()
		next.ContactInfo = in.Info
		return next
	}
	return s
}

func indexOf(locs []Location, id string) int {
	for i, loc := range locs {
		if loc.ID == id {
			return i
		}
	}
	return -1
}
