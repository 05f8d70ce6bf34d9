package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sharing levels for team membership.
const (
	SharingPrivate       = "private"
	SharingStreakOnly    = "streak_only"
	SharingTinyAction    = "tiny_action"
	SharingWeeklySummary = "weekly_summary"
)

// DreamTeam is a lightweight accountability circle joined by code.
type DreamTeam struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Code         string         `json:"code" gorm:"uniqueIndex;not null"`
	Name         string         `json:"name" gorm:"not null"`
	MyDreamID    *uuid.UUID     `json:"my_dream_id,omitempty" gorm:"type:uuid"`
	MyMemberID   uuid.UUID      `json:"my_member_id" gorm:"type:uuid"`
	SharingLevel string         `json:"sharing_level" gorm:"not null;default:'streak_only'"`
	Members      []TeamMember   `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (t *DreamTeam) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TeamMember struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TeamID       uuid.UUID `json:"team_id" gorm:"type:uuid;index;not null"`
	Name         string    `json:"name"`
	Emoji        string    `json:"emoji"`
	DreamTitle   string    `json:"dream_title"`
	IsMe         bool      `json:"is_me"`
	SharingLevel string    `json:"sharing_level"`
	JoinedAt     time.Time `json:"joined_at"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TeamSignal is a member's daily "did something" broadcast. The log is
// append-only with no uniqueness constraint; readers treat the latest entry
// for a (team, member, date) as authoritative.
type TeamSignal struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TeamID       uuid.UUID `json:"team_id" gorm:"type:uuid;index;not null"`
	MemberID     uuid.UUID `json:"member_id" gorm:"type:uuid;not null"`
	Date         string    `json:"date" gorm:"not null"`
	DidSomething bool      `json:"did_something"`
	ActionShared string    `json:"action_shared,omitempty"`
	Streak       int       `json:"streak,omitempty"`
	IsRestart    bool      `json:"is_restart"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *TeamSignal) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Team DTOs

type CreateTeamRequest struct {
	Name         string     `json:"name"`
	MyName       string     `json:"my_name"`
	DreamID      *uuid.UUID `json:"dream_id"`
	SharingLevel string     `json:"sharing_level"`
}

type JoinTeamRequest struct {
	Code         string `json:"code" validate:"required"`
	MyName       string `json:"my_name"`
	DreamTitle   string `json:"dream_title"`
	SharingLevel string `json:"sharing_level"`
}

type SignalRequest struct {
	DidSomething bool   `json:"did_something"`
	ActionShared string `json:"action_shared"`
}
