package services

import (
	"sort"
	"time"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
)

// DateLayout is the calendar-day format used for all streak arithmetic.
const DateLayout = "2006-01-02"

// Today formats a wall-clock instant as the local calendar day.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

func dayBefore(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}

// DaysBetween returns the whole calendar days from a to b. Unparseable input
// counts as zero distance.
func DaysBetween(a, b string) int {
	ta, errA := time.Parse(DateLayout, a)
	tb, errB := time.Parse(DateLayout, b)
	if errA != nil || errB != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

func checkinDateSet(checkins []models.DailyCheckIn) map[string]bool {
	dates := make(map[string]bool, len(checkins))
	for _, c := range checkins {
		dates[c.Date] = true
	}
	return dates
}

// walkStreak counts consecutive covered days ending at today (or yesterday,
// when today is not yet covered). A streak that reaches neither day is
// broken: zero, no partial credit.
func walkStreak(dates map[string]bool, today string) int {
	yesterday := dayBefore(today)
	if !dates[today] && !dates[yesterday] {
		return 0
	}
	cur := today
	if !dates[today] {
		cur = yesterday
	}
	streak := 0
	for dates[cur] {
		streak++
		cur = dayBefore(cur)
	}
	return streak
}

// CurrentStreak is the plain streak over real check-in dates only.
func CurrentStreak(checkins []models.DailyCheckIn, today string) int {
	if len(checkins) == 0 {
		return 0
	}
	return walkStreak(checkinDateSet(checkins), today)
}

// StreakWithGrace is the same walk over the union of check-in dates and
// grace-day covered dates: a grace day silently patches a one-day gap.
// No check-ins at all still means no streak, grace or not.
func StreakWithGrace(checkins []models.DailyCheckIn, graceDays []models.GraceDay, today string) int {
	if len(checkins) == 0 {
		return 0
	}
	dates := checkinDateSet(checkins)
	for _, g := range graceDays {
		dates[g.UsedForDate] = true
	}
	return walkStreak(dates, today)
}

// LongestStreak scans the full history for the longest run of consecutive
// check-in days, independent of today.
func LongestStreak(checkins []models.DailyCheckIn) int {
	if len(checkins) == 0 {
		return 0
	}
	dates := make([]string, 0, len(checkins))
	for d := range checkinDateSet(checkins) {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	best, cur := 1, 1
	for i := 1; i < len(dates); i++ {
		if DaysBetween(dates[i-1], dates[i]) == 1 {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 1
		}
	}
	return best
}

// DaysSinceLastCheckIn returns the gap in days from the most recent check-in
// to today, or -1 when there is no history.
func DaysSinceLastCheckIn(checkins []models.DailyCheckIn, today string) int {
	if len(checkins) == 0 {
		return -1
	}
	last := ""
	for _, c := range checkins {
		if c.Date > last {
			last = c.Date
		}
	}
	return DaysBetween(last, today)
}
