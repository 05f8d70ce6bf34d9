package services

import (
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
)

// CoachState is everything the daily coach screen needs in one read.
type CoachState struct {
	Dream              *models.Dream        `json:"dream"`
	Today              string               `json:"today"`
	TodayCheckIn       *models.DailyCheckIn `json:"today_checkin,omitempty"`
	Streak             int                  `json:"streak"`
	LongestStreak      int                  `json:"longest_streak"`
	PersonalBest       int                  `json:"personal_best"`
	DaysToBeatBest     int                  `json:"days_to_beat_best"`
	GraceDaysUsed      int                  `json:"grace_days_used"`
	GraceDaysRemaining int                  `json:"grace_days_remaining"`
	GraceAppliedFor    string               `json:"grace_applied_for,omitempty"`
	CheckinCount       int                  `json:"checkin_count"`
	DaysSinceLast      int                  `json:"days_since_last"`
	XPTotal            int                  `json:"xp_total"`
	Badges             []models.Badge       `json:"badges"`
	Quote              string               `json:"quote"`
	WeeklyDue          *DueWeek             `json:"weekly_due,omitempty"`
}

// State assembles the coach screen for a dream. Loading the screen is also
// when yesterday's gap gets a grace day, if one is owed — so the streak the
// user sees already reflects it.
func (c *Coach) State(dream *models.Dream) (*CoachState, error) {
	now := c.now()
	today := Today(now)

	applied, err := c.TryApplyGraceDay(dream.ID)
	if err != nil {
		return nil, err
	}

	checkins, err := c.store.CheckIns(dream.ID)
	if err != nil {
		return nil, err
	}
	graceDays, err := c.store.GraceDays(dream.ID)
	if err != nil {
		return nil, err
	}
	streak := StreakWithGrace(checkins, graceDays, today)

	best, err := c.store.PersonalBest(dream.ID)
	if err != nil {
		return nil, err
	}
	bestStreak := 0
	if best != nil {
		bestStreak = best.BestStreak
	}
	toBeat := bestStreak - streak + 1
	if bestStreak == 0 || toBeat < 0 {
		toBeat = 0
	}

	used, err := c.GraceDaysUsed(dream.ID)
	if err != nil {
		return nil, err
	}
	remaining := graceQuota - used
	if remaining < 0 {
		remaining = 0
	}

	xp, err := c.store.DreamXP(dream.ID)
	if err != nil {
		return nil, err
	}
	badges, err := c.store.Badges(dream.ID)
	if err != nil {
		return nil, err
	}
	due, err := c.DueWeeklySummary(dream)
	if err != nil {
		return nil, err
	}
	todayCheckin, err := c.store.CheckInByDate(dream.ID, today)
	if err != nil {
		return nil, err
	}

	quoteContext := QuoteContextForStreak(streak)
	return &CoachState{
		Dream:              dream,
		Today:              today,
		TodayCheckIn:       todayCheckin,
		Streak:             streak,
		LongestStreak:      LongestStreak(checkins),
		PersonalBest:       bestStreak,
		DaysToBeatBest:     toBeat,
		GraceDaysUsed:      used,
		GraceDaysRemaining: remaining,
		GraceAppliedFor:    applied,
		CheckinCount:       len(checkins),
		DaysSinceLast:      DaysSinceLastCheckIn(checkins, today),
		XPTotal:            xp.Total,
		Badges:             badges,
		Quote:              ContextualQuote(quoteContext, len(checkins), now.Day()),
		WeeklyDue:          due,
	}, nil
}
