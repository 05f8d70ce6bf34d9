package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Badge types. Each is awarded at most once per dream.
const (
	BadgeFirstStep     = "first_step"
	BadgeThreeDay      = "three_day_streak"
	BadgeSevenDay      = "seven_day_streak"
	BadgeFourteenDay   = "fourteen_day_streak"
	BadgeThirtyDay     = "thirty_day_streak"
	BadgeFirstCheckIn  = "first_checkin"
	BadgeHonestMoment  = "honest_moment"
	BadgeComeback      = "comeback"
	BadgeOneMonth      = "one_month"
	BadgeSixMonths     = "six_months"
	BadgeOneYear       = "one_year"
	BadgeWeeklyToken   = "weekly_token"
	BadgeDreamReleased = "dream_released"
	BadgePersonalBest  = "personal_best"
	BadgeFailFast      = "fail_fast"
	BadgeClaritySeeker = "clarity_seeker"
	BadgeReturner      = "returner"
)

type Badge struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DreamID     uuid.UUID `json:"dream_id" gorm:"type:uuid;index;not null;uniqueIndex:uidx_dream_badge"`
	Type        string    `json:"type" gorm:"not null;uniqueIndex:uidx_dream_badge"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
	EarnedAt    time.Time `json:"earned_at"`
}

func (b *Badge) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
