package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Daily modes for a check-in.
const (
	ModeDo             = "do"
	ModePlan           = "plan"
	ModeAsk            = "ask"
	ModeLearn          = "learn"
	ModeReduceFriction = "reduce_friction"
	ModeRest           = "rest"
)

// DailyCheckIn is one record per (dream, calendar date). Date is a local
// YYYY-MM-DD string; all streak arithmetic runs on these strings.
type DailyCheckIn struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DreamID       uuid.UUID `json:"dream_id" gorm:"type:uuid;index;not null;uniqueIndex:uidx_dream_date"`
	Date          string    `json:"date" gorm:"not null;uniqueIndex:uidx_dream_date"`
	DidSomething  bool      `json:"did_something"`
	TinyAction    string    `json:"tiny_action"`
	HardReason    string    `json:"hard_reason"`
	EasyVersion   string    `json:"easy_version"`
	DailyMode     string    `json:"daily_mode"`
	StepStatement string    `json:"step_statement"`
	Mood          int       `json:"mood" gorm:"default:3"`
	TinyWin       string    `json:"tiny_win"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *DailyCheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type SubmitCheckInRequest struct {
	DidSomething  bool   `json:"did_something"`
	TinyAction    string `json:"tiny_action"`
	HardReason    string `json:"hard_reason"`
	EasyVersion   string `json:"easy_version"`
	DailyMode     string `json:"daily_mode"`
	StepStatement string `json:"step_statement"`
	Mood          int    `json:"mood"`
}

// LegacyCheckIn is the pre-dream reflection record from the first version of
// the assessment flow. Kept as its own collection.
type LegacyCheckIn struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	DreamID          *uuid.UUID `json:"dream_id,omitempty" gorm:"type:uuid;index"`
	Avoided          string     `json:"avoided"`
	ResistanceShowed string     `json:"resistance_showed"`
	Emotion          string     `json:"emotion"`
	StuckPoint       string     `json:"stuck_point"`
	TinyStep         string     `json:"tiny_step"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (c *LegacyCheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
