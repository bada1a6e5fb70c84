package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an ephemeral authentication grant. Its ID doubles as the opaque
// token handed to the client; the record's existence is proof of
// authentication. Sessions carry no expiry — explicit deletion (logout) is
// the only invalidation path, and a user may hold any number of them.
type Session struct {
	ID        uuid.UUID // Opaque session token, redeemable for an authenticated identity.
	UserID    uuid.UUID // Reference to the owning user.
	User      *User     // Owning user, eagerly resolved on lookup so handlers need no second query.
	CreatedAt time.Time
	UpdatedAt time.Time
}
