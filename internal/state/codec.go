package state

import (
	"encoding/json"
	"fmt"
)

// Encode serializes s into the persisted JSON layout. The location list is
// always emitted as an array, never null, so foreign readers see a fully
// populated aggregate.
func Encode(s AppState) ([]byte, error) {
	out := s.Clone()
	if out.Locations == nil {
		out.Locations = []Location{}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode parses a persisted blob. Unknown fields are ignored and absent
// fields keep their defaults, so blobs written by older or richer versions
// still load. A syntactically broken blob returns the default state and the
// parse error.
func Decode(data []byte) (AppState, error) {
	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("decode state: %w", err)
	}
	if s.Locations == nil {
		s.Locations = []Location{}
	}
	return s, nil
}
