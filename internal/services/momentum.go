package services

import (
	"math"
	"sort"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
)

// MomentumPoint is one per-day engagement score for visualization. Raw
// inputs ride along so filtering layers don't have to re-join history.
type MomentumPoint struct {
	Date           string  `json:"date"`
	Score          float64 `json:"score"`
	CheckinDone    bool    `json:"checkin_done"`
	TinyActionDone bool    `json:"tiny_action_done"`
	IsRestart      bool    `json:"is_restart"`
	GraceDayUsed   bool    `json:"grace_day_used"`
	Note           string  `json:"note"`
	HardReason     string  `json:"hard_reason"`
	DailyMode      string  `json:"daily_mode"`
}

// MomentumPoints recomputes the full bounded [0,10] score sequence from
// stored history. Pure function of its inputs; safe to call repeatedly.
func MomentumPoints(checkins []models.DailyCheckIn, graceDays []models.GraceDay) []MomentumPoint {
	if len(checkins) == 0 {
		return []MomentumPoint{}
	}

	byDate := make(map[string]models.DailyCheckIn, len(checkins))
	for _, c := range checkins {
		if _, seen := byDate[c.Date]; !seen {
			byDate[c.Date] = c
		}
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	graceDates := make(map[string]bool, len(graceDays))
	for _, g := range graceDays {
		graceDates[g.UsedForDate] = true
	}

	points := make([]MomentumPoint, 0, len(dates))
	for i, date := range dates {
		c := byDate[date]
		score := 2.0
		if c.DidSomething {
			score += 3
		}
		if len(c.TinyAction) > 5 {
			score++
		}
		if len(c.StepStatement) > 5 {
			score++
		}
		switch c.DailyMode {
		case models.ModeDo:
			score++
		case models.ModePlan, models.ModeLearn:
			score += 0.5
		}

		isRestart := false
		if i > 0 && DaysBetween(dates[i-1], date) >= 2 {
			score += 2
			isRestart = true
		}
		if graceDates[date] {
			score = math.Max(score-1, 0)
		}
		score = math.Min(math.Round(score*10)/10, 10)

		note := c.TinyWin
		if note == "" {
			note = c.TinyAction
		}
		points = append(points, MomentumPoint{
			Date:           date,
			Score:          score,
			CheckinDone:    true,
			TinyActionDone: c.DidSomething,
			IsRestart:      isRestart,
			GraceDayUsed:   graceDates[date],
			Note:           note,
			HardReason:     c.HardReason,
			DailyMode:      c.DailyMode,
		})
	}
	return points
}

// AverageMomentum is the mean score across points, zero for empty input.
func AverageMomentum(points []MomentumPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Score
	}
	return math.Round(sum/float64(len(points))*10) / 10
}
