package services

import (
	"time"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/Davidkingreuben/Dreamcoach/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Coach runs the stateful flows: grace days, XP, badges, personal bests,
// check-in submissions, weekly summaries and team signals. All derived state
// is recomputed from the store on every call; nothing is cached.
type Coach struct {
	store *store.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewCoach(st *store.Store, log *zap.Logger) *Coach {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coach{store: st, log: log, now: time.Now}
}

// LogEvent appends to the observability log. Failures are logged and
// swallowed — the event log is a notification channel, not a dependency.
func (c *Coach) LogEvent(eventType string, dreamID *uuid.UUID, payload map[string]any) {
	entry := &models.EventLog{EventType: eventType, DreamID: dreamID, Payload: payload}
	if err := c.store.AppendEvent(entry); err != nil {
		c.log.Warn("event log append failed", zap.String("event_type", eventType), zap.Error(err))
	}
}

// AddXP appends a ledger entry at the fixed reward amount and updates the
// running total in the same transaction.
func (c *Coach) AddXP(dreamID uuid.UUID, reason string) (*models.XPEvent, error) {
	event := &models.XPEvent{
		DreamID: dreamID,
		Reason:  reason,
		Amount:  XPAmount(reason),
		Label:   XPLabel(reason),
	}
	if err := c.store.AppendXP(event); err != nil {
		return nil, err
	}
	c.LogEvent(models.EventXPEarned, &dreamID, map[string]any{"reason": reason, "amount": event.Amount})
	return event, nil
}

// AwardBadge grants a badge at most once per (dream, type). Awarding a badge
// the dream already holds is a no-op returning nil.
func (c *Coach) AwardBadge(dreamID uuid.UUID, badgeType string) (*models.Badge, error) {
	held, err := c.store.HasBadge(dreamID, badgeType)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, nil
	}
	meta, _ := BadgeCatalog(badgeType)
	badge := &models.Badge{
		DreamID:     dreamID,
		Type:        badgeType,
		Label:       meta.Label,
		Description: meta.Description,
		Emoji:       meta.Emoji,
		EarnedAt:    c.now(),
	}
	if err := c.store.CreateBadge(badge); err != nil {
		return nil, err
	}
	c.LogEvent(models.EventMilestoneAwarded, &dreamID, map[string]any{"type": badgeType})
	return badge, nil
}
