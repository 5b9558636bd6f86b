// Package identity supplies opaque unique identifiers for new locations.
package identity

import "github.com/google/uuid"

// New returns a fresh identifier. The only contract is uniqueness; callers
// must not parse or interpret the value.
func New() string {
	return uuid.New().String()
}
