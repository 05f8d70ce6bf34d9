package services

import "fmt"

var hardReasonPhrases = map[string]string{
	"fear":          "Fear was the main friction this week.",
	"perfectionism": "Perfectionism was blocking you more than anything.",
	"unclear":       "Lack of clarity was the biggest obstacle.",
	"energy":        "Energy was the limiting factor this week.",
	"time":          "Time was tight this week.",
	"distraction":   "Distraction was the main friction.",
	"other":         "Something specific kept getting in the way.",
}

// topHardReason returns the most frequent reason. Ties resolve to the reason
// seen first in input order, which keeps the result deterministic.
func topHardReason(reasons []string) string {
	if len(reasons) == 0 {
		return ""
	}
	counts := make(map[string]int, len(reasons))
	for _, r := range reasons {
		counts[r]++
	}
	top, best := "", 0
	for _, r := range reasons {
		if counts[r] > best {
			top, best = r, counts[r]
		}
	}
	return top
}

// WeeklyPattern narrates one week of check-ins: count, days with real
// action, and the dominant hard-day reason.
func WeeklyPattern(checkinCount, didDays int, hardReasons []string) string {
	if checkinCount == 0 {
		return "No check-ins this week. No penalty. Come back today. Restarting is the skill."
	}
	if didDays == 0 {
		plural := ""
		if checkinCount != 1 {
			plural = "s"
		}
		return fmt.Sprintf("You checked in %d time%s this week and were honest every time. That honesty is data, not failure.", checkinCount, plural)
	}

	reasonPhrase := ""
	if top := topHardReason(hardReasons); top != "" {
		reasonPhrase = hardReasonPhrases[top]
	}

	rate := float64(didDays) / 7
	switch {
	case rate >= 0.7:
		return fmt.Sprintf("Strong week — you showed up %d out of 7 days. %s The compounding is working.", didDays, reasonPhrase)
	case rate >= 0.4:
		return fmt.Sprintf("Solid week — %d days of forward motion. %s Consistency isn't perfection. This counts.", didDays, reasonPhrase)
	default:
		plural := ""
		if didDays != 1 {
			plural = "s"
		}
		return fmt.Sprintf("%d day%s of movement this week. %s Coming back every week matters more than any single week's number.", didDays, plural, reasonPhrase)
	}
}
