package services

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/google/uuid"
)

const (
	graceQuota      = 3
	graceWindowDays = 30
)

// GraceDaysUsed counts grace days consumed in the rolling 30-day window,
// measured by when they were applied.
func (c *Coach) GraceDaysUsed(dreamID uuid.UUID) (int, error) {
	since := c.now().AddDate(0, 0, -graceWindowDays)
	used, err := c.store.CountGraceDaysSince(dreamID, since)
	return int(used), err
}

func (c *Coach) GraceDaysRemaining(dreamID uuid.UUID) (int, error) {
	used, err := c.GraceDaysUsed(dreamID)
	if err != nil {
		return 0, err
	}
	remaining := graceQuota - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// TryApplyGraceDay covers yesterday's gap if, and only if, all of:
// yesterday has no check-in and no grace day yet, today HAS a check-in, and
// quota remains in the rolling window. Only yesterday is ever patched; older
// gaps stay broken. Returns the covered date, or "" when nothing applied.
func (c *Coach) TryApplyGraceDay(dreamID uuid.UUID) (string, error) {
	today := Today(c.now())
	yesterday := dayBefore(today)

	if existing, err := c.store.GraceDayForDate(dreamID, yesterday); err != nil {
		return "", err
	} else if existing != nil {
		return "", nil
	}
	if checkin, err := c.store.CheckInByDate(dreamID, yesterday); err != nil {
		return "", err
	} else if checkin != nil {
		return "", nil
	}
	if checkin, err := c.store.CheckInByDate(dreamID, today); err != nil {
		return "", err
	} else if checkin == nil {
		return "", nil
	}
	remaining, err := c.GraceDaysRemaining(dreamID)
	if err != nil {
		return "", err
	}
	if remaining <= 0 {
		return "", nil
	}

	if err := c.store.CreateGraceDay(&models.GraceDay{DreamID: dreamID, UsedForDate: yesterday}); err != nil {
		return "", err
	}
	c.LogEvent(models.EventGraceDayApplied, &dreamID, map[string]any{"used_for_date": yesterday})
	return yesterday, nil
}

// StreakWithGrace loads history and computes the grace-aware current streak.
func (c *Coach) StreakWithGrace(dreamID uuid.UUID) (int, error) {
	checkins, err := c.store.CheckIns(dreamID)
	if err != nil {
		return 0, err
	}
	graceDays, err := c.store.GraceDays(dreamID)
	if err != nil {
		return 0, err
	}
	return StreakWithGrace(checkins, graceDays, Today(c.now())), nil
}

// UpdatePersonalBest compares the grace-aware current streak against the
// stored best and raises it when beaten. The record never decreases. Returns
// true when a new best was set, including the first nonzero seed.
func (c *Coach) UpdatePersonalBest(dreamID uuid.UUID) (bool, error) {
	current, err := c.StreakWithGrace(dreamID)
	if err != nil {
		return false, err
	}
	best, err := c.store.PersonalBest(dreamID)
	if err != nil {
		return false, err
	}
	if best == nil {
		record := &models.PersonalBest{DreamID: dreamID, BestStreak: current, AchievedAt: c.now()}
		if err := c.store.SavePersonalBest(record); err != nil {
			return false, err
		}
		return current > 0, nil
	}
	if current <= best.BestStreak {
		return false, nil
	}
	best.BestStreak = current
	best.AchievedAt = c.now()
	if err := c.store.SavePersonalBest(best); err != nil {
		return false, err
	}
	return true, nil
}
