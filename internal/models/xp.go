package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// XP reasons. Amounts and labels live in the services reward table.
const (
	XPCheckIn           = "checkin"
	XPTinyAction        = "tiny_action"
	XPRestart           = "restart"
	XPReflection        = "reflection"
	XPTeamSupport       = "team_support"
	XPGraceDayConverted = "grace_day_converted"
	XPStreakMilestone   = "streak_milestone"
	XPWeeklyToken       = "weekly_token"
	XPAssessment        = "assessment"
)

// XPEvent is one append-only ledger entry.
type XPEvent struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DreamID   uuid.UUID `json:"dream_id" gorm:"type:uuid;index;not null"`
	Reason    string    `json:"reason" gorm:"not null"`
	Amount    int       `json:"amount" gorm:"not null"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *XPEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// DreamXP is the denormalized running total. Invariant: Total always equals
// the sum of the dream's XPEvent amounts — both are written in one
// transaction.
type DreamXP struct {
	DreamID   uuid.UUID `json:"dream_id" gorm:"type:uuid;primaryKey"`
	Total     int       `json:"total" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DreamXPView is the API shape: total plus full history.
type DreamXPView struct {
	DreamID uuid.UUID `json:"dream_id"`
	Total   int       `json:"total"`
	History []XPEvent `json:"history"`
}
