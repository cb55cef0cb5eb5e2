// Package uuid generates and checks the string IDs used for every stored
// row. IDs are time-ordered UUIDv7s so budget rows sort by creation.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a new UUIDv7 string. If the clock-based generator fails it
// falls back to a random UUIDv4.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// Parse validates s and returns it in canonical lowercase form, so IDs
// given in path parameters compare equal to stored ones.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid reports whether s is a UUID in any form Parse accepts.
func IsValid(s string) bool {
	return googleuuid.Validate(s) == nil
}
