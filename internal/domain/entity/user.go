// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record at the core of the system.
// PasswordDigest holds the one-way salted digest of the user's password;
// it never appears in any serialized representation.
type User struct {
	ID             uuid.UUID // The unique identifier for the user.
	Email          string    // The user's login identifier; unique, trimmed and format-validated.
	PasswordDigest string    // One-way salted digest. Never the plaintext, never serialized.
	FullName       string    // The user's display name.
	Bio            string    // Optional free-text biography.
	BirthDate      time.Time // Must yield an age of at least 18 at validation time.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this account.
}
