package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resistance archetypes — fixed labels assigned by the resistance interview.
const (
	ArchetypeFearOfVisibility    = "Fear of Visibility"
	ArchetypePerfectionistFreeze = "Perfectionist Freeze"
	ArchetypeOverwhelmFog        = "Overwhelm Fog"
	ArchetypeIdentityConflict    = "Identity Conflict"
	ArchetypeFearOfSuccess       = "Fear of Success"
	ArchetypeShameLoop           = "Shame Loop"
	ArchetypeConsistencyCollapse = "Consistency Collapse"
	ArchetypeMisalignment        = "Misalignment"
)

// Stuck phases.
const (
	PhaseSpark               = "Spark"
	PhasePreparation         = "Preparation"
	PhaseFirstStepResistance = "First-Step Resistance"
	PhaseMomentum            = "Momentum"
	PhasePrePublishPanic     = "Pre-Publish Panic"
	PhaseDormancy            = "Dormancy"
	PhaseReturn              = "Return"
)

// Feasibility classifications.
const (
	ClassViableAligned    = "Viable & Aligned"
	ClassViableMisaligned = "Viable but Misaligned"
	ClassSymbolic         = "Symbolic / Transformable"
	ClassUnrealistic      = "Unrealistic in Current Form"
)

// Dream lifecycle statuses.
const (
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
	StatusReleased  = "released"
)

// InsightSummary is the SEEN / HELD / MOVED narrative generated once at
// assessment time and pinned to the dream.
type InsightSummary struct {
	Seen           string `json:"seen"`
	Held           string `json:"held"`
	Moved          string `json:"moved"`
	MovedDoorway   string `json:"moved_doorway"`
	MovedMode      string `json:"moved_mode"`
	PhilosophyLine string `json:"philosophy_line"`
}

// ReleaseReflection captures the three release prompts.
type ReleaseReflection struct {
	TaughtMe      string `json:"taught_me"`
	NoLongerCarry string `json:"no_longer_carry"`
	EnergyGoesTo  string `json:"energy_goes_to"`
}

type Dream struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title    string    `json:"title" gorm:"not null"`
	Category string    `json:"category"`

	// Intake signals
	YearsDelayed string `json:"years_delayed"`
	Importance   int    `json:"importance"`
	Pain         int    `json:"pain"`
	Fear         int    `json:"fear"`

	// Resistance interview
	Emotion            string `json:"emotion"`
	FirstThought       string `json:"first_thought"`
	StuckPoint         string `json:"stuck_point"`
	Protecting         string `json:"protecting"`
	GuaranteedHesitate string `json:"guaranteed_hesitate"`

	// Reality check
	PhysicalConstraint     string   `json:"physical_constraint"`
	TimeRealistic          string   `json:"time_realistic"`
	Sacrifice              []string `json:"sacrifice" gorm:"serializer:json"`
	ResponsibilityConflict bool     `json:"responsibility_conflict"`
	RealisticYears         string   `json:"realistic_years"`
	WillingToCommit        bool     `json:"willing_to_commit"`
	TrueWant               string   `json:"true_want"`
	WithoutReward          bool     `json:"without_reward"`

	// Derived once at creation, never recomputed.
	Archetype      string          `json:"archetype"`
	StuckPhase     string          `json:"stuck_phase"`
	Classification string          `json:"classification"`
	MicroSteps     []string        `json:"micro_steps" gorm:"serializer:json"`
	Insight        *InsightSummary `json:"insight_summary,omitempty" gorm:"serializer:json"`

	Status            string             `json:"status" gorm:"not null;default:'active'"`
	ReleasedAt        *time.Time         `json:"released_at,omitempty"`
	ReleaseReflection *ReleaseReflection `json:"release_reflection,omitempty" gorm:"serializer:json"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (d *Dream) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Assessment DTOs

type DreamIntake struct {
	Title        string `json:"title" validate:"required"`
	Category     string `json:"category"`
	YearsDelayed string `json:"years_delayed"`
	Importance   int    `json:"importance"`
	Pain         int    `json:"pain"`
	Fear         int    `json:"fear"`
}

type ResistanceAnswers struct {
	Emotion            string `json:"emotion"`
	FirstThought       string `json:"first_thought"`
	StuckPoint         string `json:"stuck_point"`
	Protecting         string `json:"protecting"`
	GuaranteedHesitate string `json:"guaranteed_hesitate"`
}

type RealityAnswers struct {
	PhysicalConstraint     string   `json:"physical_constraint"`
	TimeRealistic          string   `json:"time_realistic"`
	Sacrifice              []string `json:"sacrifice"`
	ResponsibilityConflict bool     `json:"responsibility_conflict"`
	RealisticYears         string   `json:"realistic_years"`
	WillingToCommit        bool     `json:"willing_to_commit"`
	TrueWant               string   `json:"true_want"`
	WithoutReward          bool     `json:"without_reward"`
}

type AssessmentRequest struct {
	Intake     DreamIntake       `json:"intake"`
	Resistance ResistanceAnswers `json:"resistance"`
	Reality    RealityAnswers    `json:"reality"`
}

type ReleaseRequest struct {
	TaughtMe      string `json:"taught_me"`
	NoLongerCarry string `json:"no_longer_carry"`
	EnergyGoesTo  string `json:"energy_goes_to"`
}
