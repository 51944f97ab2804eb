package position

import (
	"time"

	"github.com/google/uuid"
)

// Position is a job-title lookup row, populated once by the feed import
// and read-only afterwards.
type Position struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"size:255;not null"`
	CreatedAt time.Time
}

func (Position) TableName() string {
	return "positions"
}
