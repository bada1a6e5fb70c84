package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a user-submitted review of a movie. It references its movie by
// ID; the referenced movie must exist at creation time, but ratings are not
// cascade-deleted when the movie goes away.
type Rating struct {
	ID        uuid.UUID
	MovieID   uuid.UUID // Reference to the reviewed movie.
	Movie     *Movie    // Referenced movie, resolved on detail reads.
	Review    string    // Free-text review, minimum length enforced at the edge.
	Score     int       // Closed range [1,5].
	CreatedAt time.Time
	UpdatedAt time.Time
}
