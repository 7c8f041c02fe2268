// Package uuid generates time-ordered identifiers for database records.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. UUIDv7 embeds a millisecond timestamp, so ids
// sort by creation time, which keeps primary-key indexes append-mostly.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source is exhausted. Fall back to v4
		// rather than returning an empty id.
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
