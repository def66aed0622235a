// Package id generates the opaque identifiers assigned to accounts and
// transactions on creation.
package id

import "github.com/google/uuid"

// New returns a fresh opaque identifier.
func New() string {
	return uuid.NewString()
}
