package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event types for the append-only observability log. The engine writes these
// as side effects and never reads them back for decisions.
const (
	EventAssessmentCompleted = "assessment_completed"
	EventCheckinCompleted    = "checkin_completed"
	EventWeeklySummaryViewed = "weekly_summary_viewed"
	EventMilestoneAwarded    = "milestone_awarded"
	EventTeamJoined          = "dream_team_joined"
	EventTeamPingSent        = "dream_team_ping_sent"
	EventDreamReleased       = "dream_released"
	EventGraceDayApplied     = "grace_day_applied"
	EventPersonalBestSet     = "personal_best_set"
	EventXPEarned            = "xp_earned"
)

type EventLog struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	EventType string         `json:"event_type" gorm:"index;not null"`
	DreamID   *uuid.UUID     `json:"dream_id,omitempty" gorm:"type:uuid;index"`
	Payload   map[string]any `json:"payload,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time      `json:"created_at"`
}

func (e *EventLog) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
