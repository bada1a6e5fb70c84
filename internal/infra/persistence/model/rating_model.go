package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table.
type RatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MovieID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Review    string    `gorm:"type:text;not null"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// No enforced foreign key; rating rows outlive their movie.
	Movie *MovieModel `gorm:"foreignKey:MovieID;constraint:-"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
