package services

import (
	"errors"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/google/uuid"
)

var ErrTitleRequired = errors.New("dream title is required")

// CreateDreamFromAssessment derives the archetype, stuck phase,
// classification, micro-steps and insight from the interview answers and
// persists the dream with all of them pinned. Derived fields are computed
// exactly once here; later reads never recompute them.
func (c *Coach) CreateDreamFromAssessment(req models.AssessmentRequest) (*models.Dream, error) {
	if req.Intake.Title == "" {
		return nil, ErrTitleRequired
	}

	dream := &models.Dream{
		ID:       uuid.New(),
		Title:    req.Intake.Title,
		Category: req.Intake.Category,

		YearsDelayed: req.Intake.YearsDelayed,
		Importance:   req.Intake.Importance,
		Pain:         req.Intake.Pain,
		Fear:         req.Intake.Fear,

		Emotion:            req.Resistance.Emotion,
		FirstThought:       req.Resistance.FirstThought,
		StuckPoint:         req.Resistance.StuckPoint,
		Protecting:         req.Resistance.Protecting,
		GuaranteedHesitate: req.Resistance.GuaranteedHesitate,

		PhysicalConstraint:     req.Reality.PhysicalConstraint,
		TimeRealistic:          req.Reality.TimeRealistic,
		Sacrifice:              req.Reality.Sacrifice,
		ResponsibilityConflict: req.Reality.ResponsibilityConflict,
		RealisticYears:         req.Reality.RealisticYears,
		WillingToCommit:        req.Reality.WillingToCommit,
		TrueWant:               req.Reality.TrueWant,
		WithoutReward:          req.Reality.WithoutReward,

		Status: models.StatusActive,
	}

	dream.Archetype = DetermineArchetype(req.Resistance)
	dream.StuckPhase = DetermineStuckPhase(req.Resistance.StuckPoint)
	dream.Classification = ClassifyDream(req.Intake, req.Resistance, req.Reality)
	dream.MicroSteps = MicroSteps(dream.Archetype, dream.Title, dream.Category)
	insight := GenerateInsight(dream)
	dream.Insight = &insight

	if err := c.store.CreateDream(dream); err != nil {
		return nil, err
	}

	if _, err := c.AddXP(dream.ID, models.XPAssessment); err != nil {
		return nil, err
	}
	c.LogEvent(models.EventAssessmentCompleted, &dream.ID, map[string]any{
		"archetype":      dream.Archetype,
		"stuck_phase":    dream.StuckPhase,
		"classification": dream.Classification,
	})
	return dream, nil
}

// ReleaseDream closes a dream with intention: status flips to released, the
// reflection is pinned, and the release badge is granted.
func (c *Coach) ReleaseDream(dream *models.Dream, req models.ReleaseRequest) error {
	now := c.now()
	dream.Status = models.StatusReleased
	dream.ReleasedAt = &now
	dream.ReleaseReflection = &models.ReleaseReflection{
		TaughtMe:      req.TaughtMe,
		NoLongerCarry: req.NoLongerCarry,
		EnergyGoesTo:  req.EnergyGoesTo,
	}
	if err := c.store.SaveDream(dream); err != nil {
		return err
	}
	if _, err := c.AwardBadge(dream.ID, models.BadgeDreamReleased); err != nil {
		return err
	}
	c.LogEvent(models.EventDreamReleased, &dream.ID, nil)
	return nil
}
