package services

import (
	"errors"
	"time"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
)

// ErrNoWeeklyDue is returned when a summary is requested outside the due
// conditions.
var ErrNoWeeklyDue = errors.New("no weekly summary due")

// DueWeek describes a completed 7-day bucket that has enough check-ins to
// summarize and has not been summarized yet.
type DueWeek struct {
	WeekNumber int                   `json:"week_number"`
	WeekStart  string                `json:"week_start"`
	WeekEnd    string                `json:"week_end"`
	CheckIns   []models.DailyCheckIn `json:"checkins"`
}

// DueWeeklySummary returns the current week when one is due: at least 7
// check-ins overall, no summary for this week yet, and at least 3 check-ins
// inside the week's window. Returns nil when nothing is due.
func (c *Coach) DueWeeklySummary(dream *models.Dream) (*DueWeek, error) {
	checkins, err := c.store.CheckIns(dream.ID)
	if err != nil {
		return nil, err
	}
	if len(checkins) < 7 {
		return nil, nil
	}

	currentWeek := weekOf(dream.CreatedAt, c.now())

	summaries, err := c.store.WeeklySummaries(dream.ID)
	if err != nil {
		return nil, err
	}
	for _, s := range summaries {
		if s.WeekNumber == currentWeek {
			return nil, nil
		}
	}

	weekStart := dream.CreatedAt.AddDate(0, 0, (currentWeek-1)*7)
	weekEnd := weekStart.AddDate(0, 0, 6)
	startDate := weekStart.Format(DateLayout)
	endDate := weekEnd.Format(DateLayout)

	var weekCheckins []models.DailyCheckIn
	for _, ci := range checkins {
		if ci.Date >= startDate && ci.Date <= endDate {
			weekCheckins = append(weekCheckins, ci)
		}
	}
	if len(weekCheckins) < 3 {
		return nil, nil
	}

	return &DueWeek{
		WeekNumber: currentWeek,
		WeekStart:  startDate,
		WeekEnd:    endDate,
		CheckIns:   weekCheckins,
	}, nil
}

// SaveWeeklySummary materializes the due week: narrates the pattern, stores
// the record and grants the weekly token exactly once per week number.
func (c *Coach) SaveWeeklySummary(dream *models.Dream, req models.SaveWeeklyRequest) (*models.WeeklySummary, error) {
	due, err := c.DueWeeklySummary(dream)
	if err != nil {
		return nil, err
	}
	if due == nil {
		return nil, ErrNoWeeklyDue
	}

	didDays := 0
	var wins []string
	var hardReasons []string
	for _, ci := range due.CheckIns {
		if ci.DidSomething {
			didDays++
		}
		win := ci.TinyWin
		if win == "" {
			win = ci.TinyAction
		}
		if win != "" {
			wins = append(wins, win)
		}
		if ci.HardReason != "" {
			hardReasons = append(hardReasons, ci.HardReason)
		}
	}

	philosophy := ""
	if dream.Insight != nil {
		philosophy = dream.Insight.PhilosophyLine
	}
	viewed := c.now()
	summary := &models.WeeklySummary{
		DreamID:        dream.ID,
		WeekNumber:     due.WeekNumber,
		WeekStart:      due.WeekStart,
		WeekEnd:        due.WeekEnd,
		CheckinCount:   len(due.CheckIns),
		DidDays:        didDays,
		TinyWins:       wins,
		Patterns:       WeeklyPattern(len(due.CheckIns), didDays, hardReasons),
		FocusNextWeek:  req.FocusNextWeek,
		TokenAwarded:   true,
		PhilosophyLine: philosophy,
		ViewedAt:       &viewed,
	}
	if err := c.store.SaveWeeklySummary(summary); err != nil {
		return nil, err
	}

	if _, err := c.AddXP(dream.ID, models.XPWeeklyToken); err != nil {
		return nil, err
	}
	if _, err := c.AwardBadge(dream.ID, models.BadgeWeeklyToken); err != nil {
		return nil, err
	}
	c.LogEvent(models.EventWeeklySummaryViewed, &dream.ID, map[string]any{"week_number": due.WeekNumber})
	return summary, nil
}

// weekOf returns the 1-based week bucket a timestamp falls in, counted from
// the dream's creation.
func weekOf(created, at time.Time) int {
	return int(at.Sub(created).Hours()/24)/7 + 1
}
