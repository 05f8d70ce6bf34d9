package services

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
)

// CheckInResult reports everything one submission changed, so the caller can
// render rewards without re-querying.
type CheckInResult struct {
	CheckIn      *models.DailyCheckIn `json:"checkin"`
	Streak       int                  `json:"streak"`
	IsRestart    bool                 `json:"is_restart"`
	NewBest      bool                 `json:"new_best"`
	Resubmitted  bool                 `json:"resubmitted"`
	XPEarned     []models.XPEvent     `json:"xp_earned"`
	BadgesEarned []models.Badge       `json:"badges_earned"`
}

func (r *CheckInResult) addXP(event *models.XPEvent) {
	if event != nil {
		r.XPEarned = append(r.XPEarned, *event)
	}
}

func (r *CheckInResult) addBadge(badge *models.Badge) {
	if badge != nil {
		r.BadgesEarned = append(r.BadgesEarned, *badge)
	}
}

// SubmitCheckIn upserts today's check-in and runs the full reward pass: XP,
// badges, streak milestones and the personal best. Resubmitting the same day
// only updates the record — rewards are granted once per calendar day.
func (c *Coach) SubmitCheckIn(dream *models.Dream, req models.SubmitCheckInRequest) (*CheckInResult, error) {
	today := Today(c.now())
	yesterday := dayBefore(today)

	prior, err := c.store.CheckIns(dream.ID)
	if err != nil {
		return nil, err
	}
	gapDays := DaysSinceLastCheckIn(prior, today)
	isRestart := gapDays >= 2
	priorCount := len(prior)

	checkin, err := c.store.CheckInByDate(dream.ID, today)
	if err != nil {
		return nil, err
	}
	resubmitted := checkin != nil
	if checkin == nil {
		checkin = &models.DailyCheckIn{DreamID: dream.ID, Date: today}
	}
	checkin.DidSomething = req.DidSomething
	checkin.TinyAction = req.TinyAction
	checkin.HardReason = req.HardReason
	checkin.EasyVersion = req.EasyVersion
	checkin.DailyMode = req.DailyMode
	checkin.StepStatement = req.StepStatement
	if req.Mood > 0 {
		checkin.Mood = req.Mood
	}
	if req.DidSomething && req.TinyAction != "" {
		checkin.TinyWin = req.TinyAction
	}
	if err := c.store.SaveCheckIn(checkin); err != nil {
		return nil, err
	}

	result := &CheckInResult{CheckIn: checkin, IsRestart: isRestart, Resubmitted: resubmitted}
	streak, err := c.StreakWithGrace(dream.ID)
	if err != nil {
		return nil, err
	}
	result.Streak = streak
	if resubmitted {
		return result, nil
	}

	c.LogEvent(models.EventCheckinCompleted, &dream.ID, map[string]any{
		"date": today, "did_something": req.DidSomething, "is_restart": isRestart,
	})

	// XP, in fixed order.
	if xp, err := c.AddXP(dream.ID, models.XPCheckIn); err != nil {
		return nil, err
	} else {
		result.addXP(xp)
	}
	if req.DidSomething && len(req.TinyAction) > 5 {
		if xp, err := c.AddXP(dream.ID, models.XPTinyAction); err != nil {
			return nil, err
		} else {
			result.addXP(xp)
		}
	}
	if isRestart {
		if xp, err := c.AddXP(dream.ID, models.XPRestart); err != nil {
			return nil, err
		} else {
			result.addXP(xp)
		}
	}
	if len(req.StepStatement) > 10 {
		if xp, err := c.AddXP(dream.ID, models.XPReflection); err != nil {
			return nil, err
		} else {
			result.addXP(xp)
		}
	}
	// A grace day is converted the moment the next real check-in lands.
	if grace, err := c.store.GraceDayForDate(dream.ID, yesterday); err != nil {
		return nil, err
	} else if grace != nil {
		if xp, err := c.AddXP(dream.ID, models.XPGraceDayConverted); err != nil {
			return nil, err
		} else {
			result.addXP(xp)
		}
	}

	if err := c.awardCheckInBadges(dream, result, priorCount, gapDays, req); err != nil {
		return nil, err
	}

	improved, err := c.UpdatePersonalBest(dream.ID)
	if err != nil {
		return nil, err
	}
	if improved {
		result.NewBest = true
		c.LogEvent(models.EventPersonalBestSet, &dream.ID, map[string]any{"best_streak": result.Streak})
		badge, err := c.AwardBadge(dream.ID, models.BadgePersonalBest)
		if err != nil {
			return nil, err
		}
		result.addBadge(badge)
	}

	return result, nil
}

func (c *Coach) awardCheckInBadges(dream *models.Dream, result *CheckInResult, priorCount, gapDays int, req models.SubmitCheckInRequest) error {
	award := func(badgeType string) error {
		badge, err := c.AwardBadge(dream.ID, badgeType)
		if err != nil {
			return err
		}
		result.addBadge(badge)
		return nil
	}

	if priorCount == 0 {
		for _, t := range []string{models.BadgeFirstCheckIn, models.BadgeFirstStep, models.BadgeClaritySeeker} {
			if err := award(t); err != nil {
				return err
			}
		}
	}
	if !req.DidSomething && req.HardReason != "" {
		if err := award(models.BadgeHonestMoment); err != nil {
			return err
		}
	}
	if result.IsRestart {
		if err := award(models.BadgeComeback); err != nil {
			return err
		}
		if gapDays >= 7 {
			if err := award(models.BadgeReturner); err != nil {
				return err
			}
		}
	}

	for _, threshold := range streakBadgeThresholds {
		if result.Streak < threshold.Days {
			break
		}
		held, err := c.store.HasBadge(dream.ID, threshold.Type)
		if err != nil {
			return err
		}
		if held {
			continue
		}
		if err := award(threshold.Type); err != nil {
			return err
		}
		xp, err := c.AddXP(dream.ID, models.XPStreakMilestone)
		if err != nil {
			return err
		}
		result.addXP(xp)
	}

	ageDays := c.now().Sub(dream.CreatedAt).Hours() / 24
	for _, longevity := range []struct {
		Days float64
		Type string
	}{
		{30, models.BadgeOneMonth},
		{180, models.BadgeSixMonths},
		{365, models.BadgeOneYear},
	} {
		if ageDays >= longevity.Days {
			if err := award(longevity.Type); err != nil {
				return err
			}
		}
	}

	// An honest "no" right after a real check-in day is fail-fast behavior,
	// not a lapse.
	if !req.DidSomething {
		yesterdayCheckin, err := c.store.CheckInByDate(dream.ID, dayBefore(Today(c.now())))
		if err != nil {
			return err
		}
		if yesterdayCheckin != nil {
			if err := award(models.BadgeFailFast); err != nil {
				return err
			}
		}
	}
	return nil
}
