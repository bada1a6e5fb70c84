package model

import (
	"time"

	"github.com/google/uuid"
)

// MovieModel mirrors the 'movies' table.
type MovieModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Year      int       `gorm:"not null"`
	Director  string    `gorm:"type:varchar(255);not null"`
	Duration  int
	Genre     string  `gorm:"type:varchar(100)"`
	Rating    float64 `gorm:"type:numeric(3,1)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// No enforced foreign key: deleting a movie must succeed and leave
	// its rating rows in place. Referential checks happen at write time
	// in the rating usecase instead.
	Ratings []RatingModel `gorm:"foreignKey:MovieID;constraint:-"`
}

// TableName explicitly sets the table name for GORM.
func (MovieModel) TableName() string {
	return "movies"
}
