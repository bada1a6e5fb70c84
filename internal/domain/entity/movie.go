package entity

import (
	"time"

	"github.com/google/uuid"
)

// Movie is the primary catalog entity. Title, year and director are
// required; the remaining attributes are optional metadata.
type Movie struct {
	ID        uuid.UUID
	Title     string
	Year      int
	Director  string
	Duration  int     // Runtime in minutes. Zero when unknown.
	Genre     string  // Optional genre label.
	Rating    float64 // Optional external rating (e.g. an IMDb-style score). Zero when unset.
	Ratings   []*Rating // Ratings submitted against this movie. Materialized at read time, never stored on the movie row.
	CreatedAt time.Time
	UpdatedAt time.Time
}
