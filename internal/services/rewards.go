package services

import "github.com/Davidkingreuben/Dreamcoach/internal/models"

// Fixed XP reward table. Unknown reasons earn nothing.
var xpAmounts = map[string]int{
	models.XPCheckIn:           10,
	models.XPTinyAction:        15,
	models.XPRestart:           25,
	models.XPReflection:        5,
	models.XPTeamSupport:       10,
	models.XPGraceDayConverted: 20,
	models.XPStreakMilestone:   50,
	models.XPWeeklyToken:       30,
	models.XPAssessment:        40,
}

var xpLabels = map[string]string{
	models.XPCheckIn:           "Daily check-in",
	models.XPTinyAction:        "Tiny action taken",
	models.XPRestart:           "Restarted after a break",
	models.XPReflection:        "Reflection written",
	models.XPTeamSupport:       "Supported a teammate",
	models.XPGraceDayConverted: "Grace day converted",
	models.XPStreakMilestone:   "Streak milestone",
	models.XPWeeklyToken:       "Weekly token",
	models.XPAssessment:        "Assessment completed",
}

// XPAmount returns the fixed reward for a reason.
func XPAmount(reason string) int {
	return xpAmounts[reason]
}

// XPLabel returns the display label for a reason.
func XPLabel(reason string) string {
	return xpLabels[reason]
}

// BadgeMeta is the display catalog entry for a badge type.
type BadgeMeta struct {
	Label       string
	Description string
	Emoji       string
}

var badgeCatalog = map[string]BadgeMeta{
	models.BadgeFirstStep:     {Label: "First Step", Description: "Completed your first daily check-in.", Emoji: "◆"},
	models.BadgeThreeDay:      {Label: "3-Day Streak", Description: "Showed up 3 days in a row.", Emoji: "▲"},
	models.BadgeSevenDay:      {Label: "7-Day Streak", Description: "Showed up 7 days in a row.", Emoji: "★"},
	models.BadgeFourteenDay:   {Label: "14-Day Streak", Description: "Two weeks of consistency.", Emoji: "◉"},
	models.BadgeThirtyDay:     {Label: "30-Day Streak", Description: "A full month of showing up.", Emoji: "⬡"},
	models.BadgeFirstCheckIn:  {Label: "First Check-In", Description: "Completed your first check-in.", Emoji: "✦"},
	models.BadgeHonestMoment:  {Label: "Honest Moment", Description: "Named a hard day honestly.", Emoji: "◌"},
	models.BadgeComeback:      {Label: "Comeback", Description: "Returned after a break.", Emoji: "↩"},
	models.BadgeOneMonth:      {Label: "One Month", Description: "One month since you started.", Emoji: "○"},
	models.BadgeSixMonths:     {Label: "Six Months", Description: "Six months of dreaming forward.", Emoji: "◑"},
	models.BadgeOneYear:       {Label: "One Year", Description: "A full year. You stayed.", Emoji: "◈"},
	models.BadgeWeeklyToken:   {Label: "Weekly Token", Description: "Earned your first weekly token.", Emoji: "⬟"},
	models.BadgeDreamReleased: {Label: "Dream Released", Description: "Released a dream with intention.", Emoji: "✧"},
	models.BadgePersonalBest:  {Label: "Personal Best", Description: "Beat your longest streak ever.", Emoji: "⚑"},
	models.BadgeFailFast:      {Label: "Fail Fast", Description: "Named a hard day and came back.", Emoji: "⟳"},
	models.BadgeClaritySeeker: {Label: "Clarity Seeker", Description: "Completed a full assessment.", Emoji: "⊙"},
	models.BadgeReturner:      {Label: "The Returner", Description: "Returned after 7+ days away.", Emoji: "↺"},
}

// BadgeCatalog returns the display metadata for a badge type.
func BadgeCatalog(badgeType string) (BadgeMeta, bool) {
	meta, ok := badgeCatalog[badgeType]
	return meta, ok
}

// streakBadgeThresholds are checked in ascending order; every threshold at
// or below the current streak is eligible, so a long return can earn
// several at once.
var streakBadgeThresholds = []struct {
	Days int
	Type string
}{
	{3, models.BadgeThreeDay},
	{7, models.BadgeSevenDay},
	{14, models.BadgeFourteenDay},
	{30, models.BadgeThirtyDay},
}
