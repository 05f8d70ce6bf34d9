package services

// Quote contexts.
const (
	QuoteRestart    = "restart"
	QuoteMilestone  = "milestone"
	QuoteWeekly     = "weekly"
	QuoteStruggling = "struggling"
	QuoteConsistent = "consistent"
	QuoteGeneral    = "general"
)

var quotePools = map[string][]string{
	QuoteRestart: {
		"The return is the practice. Every artist, athlete, and creator knows this.",
		"You didn't fail. You paused. Now you're here again. That's the whole game.",
		"Restarting is not starting over. It's continuing from where you actually are.",
		"Consistency isn't a straight line. It's a series of returns.",
	},
	QuoteMilestone: {
		"Streaks don't lie. You've built something real here.",
		"The person who shows up 30 times is different from the one who showed up once.",
		"This is what commitment looks like — not a grand gesture, just this, repeated.",
		"Momentum compounds. What you've built doesn't disappear when you rest.",
	},
	QuoteWeekly: {
		"A week of showing up is worth more than a year of planning.",
		"The work is quiet. So is the growth. Both are real.",
		"Most people stop before the results are visible. You didn't stop.",
	},
	QuoteStruggling: {
		"Hard days count. Showing up on a hard day counts double.",
		"The resistance is loudest when the work matters most.",
		"One percent forward is still forward.",
	},
	QuoteConsistent: {
		"This is who you're becoming. It's already working.",
		"The habit is forming. The identity is shifting. Stay.",
		"What you're doing daily is becoming what you are. Keep going.",
	},
	QuoteGeneral: {
		"Every day you show up is a day the dream stays alive.",
		"The work is the path. There is no other path.",
		"Clarity doesn't come before the work. It comes from the work.",
		"The dream doesn't need you to be perfect. It needs you to be present.",
	},
}

// ContextualQuote picks from the context pool, rotating with the check-in
// count and the day of month. Unknown contexts use the general pool.
func ContextualQuote(context string, checkinCount, dayOfMonth int) string {
	pool, ok := quotePools[context]
	if !ok {
		pool = quotePools[QuoteGeneral]
	}
	return pool[(checkinCount+dayOfMonth)%len(pool)]
}

// QuoteContextForStreak maps the current streak to the quote context used on
// the coach screen.
func QuoteContextForStreak(streak int) string {
	switch {
	case streak == 0:
		return QuoteRestart
	case streak >= 7:
		return QuoteConsistent
	case streak >= 3:
		return QuoteGeneral
	default:
		return QuoteStruggling
	}
}
