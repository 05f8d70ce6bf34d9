package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklySummary is one record per (dream, week number). Weeks are 7-day
// buckets counted from the dream's creation date.
type WeeklySummary struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	DreamID        uuid.UUID  `json:"dream_id" gorm:"type:uuid;index;not null;uniqueIndex:uidx_dream_week"`
	WeekNumber     int        `json:"week_number" gorm:"not null;uniqueIndex:uidx_dream_week"`
	WeekStart      string     `json:"week_start"`
	WeekEnd        string     `json:"week_end"`
	CheckinCount   int        `json:"checkin_count"`
	DidDays        int        `json:"did_days"`
	TinyWins       []string   `json:"tiny_wins" gorm:"serializer:json"`
	Patterns       string     `json:"patterns"`
	FocusNextWeek  string     `json:"focus_next_week"`
	TokenAwarded   bool       `json:"token_awarded"`
	PhilosophyLine string     `json:"philosophy_line"`
	CreatedAt      time.Time  `json:"created_at"`
	ViewedAt       *time.Time `json:"viewed_at,omitempty"`
}

func (w *WeeklySummary) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

type SaveWeeklyRequest struct {
	FocusNextWeek string `json:"focus_next_week"`
}
