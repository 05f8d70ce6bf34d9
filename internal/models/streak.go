package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonalBest holds the best streak ever achieved for a dream.
// Monotonically non-decreasing.
type PersonalBest struct {
	DreamID    uuid.UUID `json:"dream_id" gorm:"type:uuid;primaryKey"`
	BestStreak int       `json:"best_streak" gorm:"not null;default:0"`
	AchievedAt time.Time `json:"achieved_at"`
}

// GraceDay is a consumed streak-protection token covering one missed date.
// At most one per (dream, date), at most 3 per rolling 30 days.
type GraceDay struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DreamID     uuid.UUID `json:"dream_id" gorm:"type:uuid;index;not null;uniqueIndex:uidx_dream_grace_date"`
	UsedForDate string    `json:"used_for_date" gorm:"not null;uniqueIndex:uidx_dream_grace_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func (g *GraceDay) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
