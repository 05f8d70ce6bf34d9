package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Davidkingreuben/Dreamcoach/internal/database"
	"github.com/Davidkingreuben/Dreamcoach/internal/models"
	"github.com/Davidkingreuben/Dreamcoach/internal/store"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// The engine clock is pinned so date arithmetic in tests is exact.
var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestCoach(t *testing.T) *Coach {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	coach := NewCoach(store.New(db), zap.NewNop())
	coach.now = func() time.Time { return testNow }
	return coach
}

func seedDream(t *testing.T, c *Coach) *models.Dream {
	t.Helper()
	dream := &models.Dream{
		Title:     "write a novel",
		Category:  "writing",
		Status:    models.StatusActive,
		CreatedAt: testNow.AddDate(0, 0, -20),
	}
	if err := c.store.CreateDream(dream); err != nil {
		t.Fatalf("seed dream: %v", err)
	}
	return dream
}

func seedCheckIn(t *testing.T, c *Coach, dreamID uuid.UUID, date string, did bool) {
	t.Helper()
	err := c.store.SaveCheckIn(&models.DailyCheckIn{
		DreamID: dreamID, Date: date, DidSomething: did, Mood: 3,
	})
	if err != nil {
		t.Fatalf("seed checkin %s: %v", date, err)
	}
}

func TestTryApplyGraceDay(t *testing.T) {
	t.Parallel()

	t.Run("requires a checkin today", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)
		seedCheckIn(t, c, dream.ID, "2024-03-12", true)

		applied, err := c.TryApplyGraceDay(dream.ID)
		if err != nil {
			t.Fatalf("TryApplyGraceDay: %v", err)
		}
		if applied != "" {
			t.Fatalf("applied %q without a checkin today", applied)
		}
	})

	t.Run("skips when yesterday is already covered", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)
		seedCheckIn(t, c, dream.ID, "2024-03-14", true)
		seedCheckIn(t, c, dream.ID, "2024-03-15", true)

		applied, err := c.TryApplyGraceDay(dream.ID)
		if err != nil {
			t.Fatalf("TryApplyGraceDay: %v", err)
		}
		if applied != "" {
			t.Fatalf("applied %q over an existing checkin", applied)
		}
	})

	t.Run("covers yesterday exactly once", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)
		seedCheckIn(t, c, dream.ID, "2024-03-13", true)
		seedCheckIn(t, c, dream.ID, "2024-03-15", true)

		applied, err := c.TryApplyGraceDay(dream.ID)
		if err != nil {
			t.Fatalf("TryApplyGraceDay: %v", err)
		}
		if applied != "2024-03-14" {
			t.Fatalf("applied = %q, want 2024-03-14", applied)
		}

		again, err := c.TryApplyGraceDay(dream.ID)
		if err != nil {
			t.Fatalf("second TryApplyGraceDay: %v", err)
		}
		if again != "" {
			t.Fatalf("grace day applied twice for the same date")
		}

		streak, err := c.StreakWithGrace(dream.ID)
		if err != nil {
			t.Fatalf("StreakWithGrace: %v", err)
		}
		if streak != 3 {
			t.Fatalf("patched streak = %d, want 3", streak)
		}
	})

	t.Run("quota of three per rolling window", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)
		seedCheckIn(t, c, dream.ID, "2024-03-15", true)

		for _, date := range []string{"2024-03-05", "2024-03-08", "2024-03-11"} {
			if err := c.store.CreateGraceDay(&models.GraceDay{DreamID: dream.ID, UsedForDate: date}); err != nil {
				t.Fatalf("seed grace day: %v", err)
			}
		}

		remaining, err := c.GraceDaysRemaining(dream.ID)
		if err != nil {
			t.Fatalf("GraceDaysRemaining: %v", err)
		}
		if remaining != 0 {
			t.Fatalf("remaining = %d, want 0", remaining)
		}

		applied, err := c.TryApplyGraceDay(dream.ID)
		if err != nil {
			t.Fatalf("TryApplyGraceDay: %v", err)
		}
		if applied != "" {
			t.Fatalf("fourth grace day granted past the quota")
		}
	})
}

func TestAddXPKeepsTotalConsistent(t *testing.T) {
	t.Parallel()
	c := newTestCoach(t)
	dream := seedDream(t, c)

	reasons := []string{models.XPCheckIn, models.XPTinyAction, models.XPRestart, models.XPWeeklyToken}
	want := 0
	for _, reason := range reasons {
		if _, err := c.AddXP(dream.ID, reason); err != nil {
			t.Fatalf("AddXP(%s): %v", reason, err)
		}
		want += XPAmount(reason)
	}

	xp, err := c.store.DreamXP(dream.ID)
	if err != nil {
		t.Fatalf("DreamXP: %v", err)
	}
	history, err := c.store.XPEvents(dream.ID)
	if err != nil {
		t.Fatalf("XPEvents: %v", err)
	}
	if xp.Total != want {
		t.Fatalf("total = %d, want %d", xp.Total, want)
	}
	sum := 0
	for _, e := range history {
		sum += e.Amount
	}
	if sum != xp.Total {
		t.Fatalf("ledger sum %d != total %d", sum, xp.Total)
	}
	if len(history) != len(reasons) {
		t.Fatalf("ledger has %d entries, want %d", len(history), len(reasons))
	}
}

func TestAwardBadgeIdempotent(t *testing.T) {
	t.Parallel()
	c := newTestCoach(t)
	dream := seedDream(t, c)

	first, err := c.AwardBadge(dream.ID, models.BadgeComeback)
	if err != nil {
		t.Fatalf("AwardBadge: %v", err)
	}
	if first == nil || first.Label != "Comeback" {
		t.Fatalf("first award = %+v, want the cataloged badge", first)
	}

	second, err := c.AwardBadge(dream.ID, models.BadgeComeback)
	if err != nil {
		t.Fatalf("second AwardBadge: %v", err)
	}
	if second != nil {
		t.Fatalf("duplicate award returned %+v, want nil", second)
	}

	badges, err := c.store.Badges(dream.ID)
	if err != nil {
		t.Fatalf("Badges: %v", err)
	}
	if len(badges) != 1 {
		t.Fatalf("stored %d badges, want 1", len(badges))
	}
}

func TestUpdatePersonalBest(t *testing.T) {
	t.Parallel()
	c := newTestCoach(t)
	dream := seedDream(t, c)
	seedCheckIn(t, c, dream.ID, "2024-03-14", true)
	seedCheckIn(t, c, dream.ID, "2024-03-15", true)

	improved, err := c.UpdatePersonalBest(dream.ID)
	if err != nil {
		t.Fatalf("UpdatePersonalBest: %v", err)
	}
	if !improved {
		t.Fatalf("first nonzero streak should seed a new best")
	}

	// A stored best above the current streak never decreases.
	if err := c.store.SavePersonalBest(&models.PersonalBest{DreamID: dream.ID, BestStreak: 9, AchievedAt: testNow}); err != nil {
		t.Fatalf("SavePersonalBest: %v", err)
	}
	improved, err = c.UpdatePersonalBest(dream.ID)
	if err != nil {
		t.Fatalf("UpdatePersonalBest: %v", err)
	}
	if improved {
		t.Fatalf("streak 2 must not beat a best of 9")
	}
	best, err := c.store.PersonalBest(dream.ID)
	if err != nil {
		t.Fatalf("PersonalBest: %v", err)
	}
	if best.BestStreak != 9 {
		t.Fatalf("best regressed to %d", best.BestStreak)
	}
}

func TestSubmitCheckIn(t *testing.T) {
	t.Parallel()

	t.Run("first checkin grants starter badges and XP", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)

		result, err := c.SubmitCheckIn(dream, models.SubmitCheckInRequest{
			DidSomething:  true,
			TinyAction:    "outlined the first chapter",
			StepStatement: "one step closer to a real draft",
			DailyMode:     models.ModeDo,
			Mood:          4,
		})
		if err != nil {
			t.Fatalf("SubmitCheckIn: %v", err)
		}

		wantBadges := map[string]bool{
			models.BadgeFirstCheckIn:  true,
			models.BadgeFirstStep:     true,
			models.BadgeClaritySeeker: true,
			models.BadgePersonalBest:  true,
		}
		for _, b := range result.BadgesEarned {
			if !wantBadges[b.Type] {
				t.Fatalf("unexpected badge %q", b.Type)
			}
			delete(wantBadges, b.Type)
		}
		for missing := range wantBadges {
			t.Fatalf("missing badge %q", missing)
		}

		// checkin 10 + tiny action 15 + reflection 5
		xp, err := c.store.DreamXP(dream.ID)
		if err != nil {
			t.Fatalf("DreamXP: %v", err)
		}
		if xp.Total != 30 {
			t.Fatalf("xp total = %d, want 30", xp.Total)
		}
		if result.Streak != 1 || !result.NewBest {
			t.Fatalf("result = %+v, want streak 1 and a new best", result)
		}
	})

	t.Run("resubmission updates without double rewards", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)

		if _, err := c.SubmitCheckIn(dream, models.SubmitCheckInRequest{DidSomething: true, TinyAction: "sketched the villain"}); err != nil {
			t.Fatalf("SubmitCheckIn: %v", err)
		}
		before, err := c.store.DreamXP(dream.ID)
		if err != nil {
			t.Fatalf("DreamXP: %v", err)
		}

		result, err := c.SubmitCheckIn(dream, models.SubmitCheckInRequest{DidSomething: false, HardReason: "time"})
		if err != nil {
			t.Fatalf("resubmit: %v", err)
		}
		if !result.Resubmitted {
			t.Fatalf("second same-day submission not flagged")
		}
		if len(result.XPEarned) != 0 || len(result.BadgesEarned) != 0 {
			t.Fatalf("resubmission granted rewards: %+v", result)
		}

		after, err := c.store.DreamXP(dream.ID)
		if err != nil {
			t.Fatalf("DreamXP: %v", err)
		}
		if after.Total != before.Total {
			t.Fatalf("xp moved on resubmission: %d -> %d", before.Total, after.Total)
		}
		count, err := c.store.CountCheckIns(dream.ID)
		if err != nil {
			t.Fatalf("CountCheckIns: %v", err)
		}
		if count != 1 {
			t.Fatalf("%d checkins stored for one day", count)
		}
		saved, err := c.store.CheckInByDate(dream.ID, "2024-03-15")
		if err != nil {
			t.Fatalf("CheckInByDate: %v", err)
		}
		if saved.DidSomething || saved.HardReason != "time" {
			t.Fatalf("resubmission did not update the record: %+v", saved)
		}
	})

	t.Run("restart after a gap earns comeback and restart XP", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)
		seedCheckIn(t, c, dream.ID, "2024-03-10", true)

		result, err := c.SubmitCheckIn(dream, models.SubmitCheckInRequest{DidSomething: true})
		if err != nil {
			t.Fatalf("SubmitCheckIn: %v", err)
		}
		if !result.IsRestart {
			t.Fatalf("5-day gap not flagged as restart")
		}
		if !hasBadge(result.BadgesEarned, models.BadgeComeback) {
			t.Fatalf("comeback badge missing: %+v", result.BadgesEarned)
		}
		if hasBadge(result.BadgesEarned, models.BadgeReturner) {
			t.Fatalf("returner badge requires a 7+ day gap")
		}
		if !hasReason(result.XPEarned, models.XPRestart) {
			t.Fatalf("restart XP missing: %+v", result.XPEarned)
		}
	})

	t.Run("long absence also earns the returner", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)
		seedCheckIn(t, c, dream.ID, "2024-03-01", true)

		result, err := c.SubmitCheckIn(dream, models.SubmitCheckInRequest{DidSomething: true})
		if err != nil {
			t.Fatalf("SubmitCheckIn: %v", err)
		}
		if !hasBadge(result.BadgesEarned, models.BadgeReturner) {
			t.Fatalf("returner badge missing after 14 days: %+v", result.BadgesEarned)
		}
	})

	t.Run("honest hard day after a real day is fail fast", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)
		seedCheckIn(t, c, dream.ID, "2024-03-14", true)

		result, err := c.SubmitCheckIn(dream, models.SubmitCheckInRequest{DidSomething: false, HardReason: "fear"})
		if err != nil {
			t.Fatalf("SubmitCheckIn: %v", err)
		}
		if !hasBadge(result.BadgesEarned, models.BadgeHonestMoment) {
			t.Fatalf("honest moment missing: %+v", result.BadgesEarned)
		}
		if !hasBadge(result.BadgesEarned, models.BadgeFailFast) {
			t.Fatalf("fail fast missing: %+v", result.BadgesEarned)
		}
	})

	t.Run("third consecutive day earns the streak badge and milestone XP", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)
		seedCheckIn(t, c, dream.ID, "2024-03-13", true)
		seedCheckIn(t, c, dream.ID, "2024-03-14", true)

		result, err := c.SubmitCheckIn(dream, models.SubmitCheckInRequest{DidSomething: true})
		if err != nil {
			t.Fatalf("SubmitCheckIn: %v", err)
		}
		if result.Streak != 3 {
			t.Fatalf("streak = %d, want 3", result.Streak)
		}
		if !hasBadge(result.BadgesEarned, models.BadgeThreeDay) {
			t.Fatalf("3-day badge missing: %+v", result.BadgesEarned)
		}
		if !hasReason(result.XPEarned, models.XPStreakMilestone) {
			t.Fatalf("milestone XP missing: %+v", result.XPEarned)
		}
	})

	t.Run("checkin after a graced gap converts the grace day", func(t *testing.T) {
		t.Parallel()
		c := newTestCoach(t)
		dream := seedDream(t, c)
		seedCheckIn(t, c, dream.ID, "2024-03-13", true)
		if err := c.store.CreateGraceDay(&models.GraceDay{DreamID: dream.ID, UsedForDate: "2024-03-14"}); err != nil {
			t.Fatalf("seed grace day: %v", err)
		}

		result, err := c.SubmitCheckIn(dream, models.SubmitCheckInRequest{DidSomething: true})
		if err != nil {
			t.Fatalf("SubmitCheckIn: %v", err)
		}
		if !hasReason(result.XPEarned, models.XPGraceDayConverted) {
			t.Fatalf("grace conversion XP missing: %+v", result.XPEarned)
		}
		if result.Streak != 3 {
			t.Fatalf("graced streak = %d, want 3", result.Streak)
		}
	})
}

func hasBadge(badges []models.Badge, badgeType string) bool {
	for _, b := range badges {
		if b.Type == badgeType {
			return true
		}
	}
	return false
}

func hasReason(events []models.XPEvent, reason string) bool {
	for _, e := range events {
		if e.Reason == reason {
			return true
		}
	}
	return false
}

func TestWeeklySummaryFlow(t *testing.T) {
	t.Parallel()
	c := newTestCoach(t)
	dream := seedDream(t, c) // created 2024-02-24, today is in week 3

	// Not due without history.
	due, err := c.DueWeeklySummary(dream)
	if err != nil {
		t.Fatalf("DueWeeklySummary: %v", err)
	}
	if due != nil {
		t.Fatalf("summary due with no checkins")
	}

	for _, date := range []string{"2024-02-25", "2024-02-26", "2024-02-27", "2024-02-28"} {
		seedCheckIn(t, c, dream.ID, date, true)
	}
	// Current week window is 2024-03-09 .. 2024-03-15.
	seedCheckIn(t, c, dream.ID, "2024-03-10", true)
	err = c.store.SaveCheckIn(&models.DailyCheckIn{
		DreamID: dream.ID, Date: "2024-03-11", DidSomething: false,
		TinyAction: "sorted reference photos", HardReason: "time", Mood: 3,
	})
	if err != nil {
		t.Fatalf("seed checkin 2024-03-11: %v", err)
	}
	seedCheckIn(t, c, dream.ID, "2024-03-14", true)

	due, err = c.DueWeeklySummary(dream)
	if err != nil {
		t.Fatalf("DueWeeklySummary: %v", err)
	}
	if due == nil {
		t.Fatalf("expected a due week")
	}
	if due.WeekNumber != 3 {
		t.Fatalf("week number = %d, want 3", due.WeekNumber)
	}
	if due.WeekStart != "2024-03-09" || due.WeekEnd != "2024-03-15" {
		t.Fatalf("window = %s..%s", due.WeekStart, due.WeekEnd)
	}
	if len(due.CheckIns) != 3 {
		t.Fatalf("window has %d checkins, want 3", len(due.CheckIns))
	}

	summary, err := c.SaveWeeklySummary(dream, models.SaveWeeklyRequest{FocusNextWeek: "draft chapter two"})
	if err != nil {
		t.Fatalf("SaveWeeklySummary: %v", err)
	}
	if !summary.TokenAwarded || summary.DidDays != 2 {
		t.Fatalf("summary = %+v, want token and 2 did-days", summary)
	}
	if !strings.Contains(summary.Patterns, "2 days") {
		t.Fatalf("pattern narration = %q", summary.Patterns)
	}
	// A hard day's tiny action and reason still count toward the summary.
	if len(summary.TinyWins) != 1 || summary.TinyWins[0] != "sorted reference photos" {
		t.Fatalf("tiny wins = %v, want the hard day's action", summary.TinyWins)
	}
	if !strings.Contains(summary.Patterns, "Time was tight") {
		t.Fatalf("pattern narration dropped the hard reason: %q", summary.Patterns)
	}

	xp, err := c.store.DreamXP(dream.ID)
	if err != nil {
		t.Fatalf("DreamXP: %v", err)
	}
	if xp.Total != XPAmount(models.XPWeeklyToken) {
		t.Fatalf("xp total = %d, want the weekly token", xp.Total)
	}

	// Same week cannot be summarized twice.
	if _, err := c.SaveWeeklySummary(dream, models.SaveWeeklyRequest{}); !errors.Is(err, ErrNoWeeklyDue) {
		t.Fatalf("second save err = %v, want ErrNoWeeklyDue", err)
	}
}

func TestCreateDreamFromAssessment(t *testing.T) {
	t.Parallel()
	c := newTestCoach(t)

	req := models.AssessmentRequest{
		Intake: models.DreamIntake{
			Title: "record an album", Category: "music",
			YearsDelayed: "3-5 years", Importance: 9, Pain: 8, Fear: 7,
		},
		Resistance: models.ResistanceAnswers{
			Emotion: "fear", FirstThought: "judgment", StuckPoint: "publishing",
		},
		Reality: models.RealityAnswers{
			PhysicalConstraint: "none", TimeRealistic: "some",
			WillingToCommit: true, WithoutReward: true,
		},
	}
	dream, err := c.CreateDreamFromAssessment(req)
	if err != nil {
		t.Fatalf("CreateDreamFromAssessment: %v", err)
	}

	if dream.Archetype != models.ArchetypeFearOfVisibility {
		t.Fatalf("archetype = %q", dream.Archetype)
	}
	if dream.StuckPhase != models.PhasePrePublishPanic {
		t.Fatalf("stuck phase = %q", dream.StuckPhase)
	}
	if dream.Classification != models.ClassViableAligned {
		t.Fatalf("classification = %q", dream.Classification)
	}
	if len(dream.MicroSteps) != 4 || dream.Insight == nil {
		t.Fatalf("derived fields incomplete: %+v", dream)
	}

	stored, err := c.store.Dream(dream.ID)
	if err != nil {
		t.Fatalf("Dream: %v", err)
	}
	if stored.Insight == nil || stored.Insight.PhilosophyLine != dream.Insight.PhilosophyLine {
		t.Fatalf("insight not pinned through storage")
	}

	xp, err := c.store.DreamXP(dream.ID)
	if err != nil {
		t.Fatalf("DreamXP: %v", err)
	}
	if xp.Total != XPAmount(models.XPAssessment) {
		t.Fatalf("assessment xp = %d", xp.Total)
	}

	if _, err := c.CreateDreamFromAssessment(models.AssessmentRequest{}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("empty title err = %v, want ErrTitleRequired", err)
	}
}

func TestReleaseDream(t *testing.T) {
	t.Parallel()
	c := newTestCoach(t)
	dream := seedDream(t, c)

	err := c.ReleaseDream(dream, models.ReleaseRequest{
		TaughtMe:      "I can sustain a practice",
		NoLongerCarry: "the borrowed version of this",
		EnergyGoesTo:  "the essays instead",
	})
	if err != nil {
		t.Fatalf("ReleaseDream: %v", err)
	}

	stored, err := c.store.Dream(dream.ID)
	if err != nil {
		t.Fatalf("Dream: %v", err)
	}
	if stored.Status != models.StatusReleased || stored.ReleasedAt == nil {
		t.Fatalf("release not persisted: %+v", stored)
	}
	if stored.ReleaseReflection == nil || stored.ReleaseReflection.EnergyGoesTo != "the essays instead" {
		t.Fatalf("reflection not pinned: %+v", stored.ReleaseReflection)
	}
	held, err := c.store.HasBadge(dream.ID, models.BadgeDreamReleased)
	if err != nil {
		t.Fatalf("HasBadge: %v", err)
	}
	if !held {
		t.Fatalf("release badge missing")
	}
}

func TestTeams(t *testing.T) {
	t.Parallel()
	c := newTestCoach(t)
	dream := seedDream(t, c)

	team, err := c.CreateTeam(models.CreateTeamRequest{
		Name: "Morning Pages", MyName: "Robin", DreamID: &dream.ID,
	})
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if len(team.Code) != teamCodeLength {
		t.Fatalf("code %q has wrong length", team.Code)
	}
	for _, ch := range team.Code {
		if !strings.ContainsRune(teamCodeAlphabet, ch) {
			t.Fatalf("code %q uses %q outside the alphabet", team.Code, ch)
		}
	}
	if len(team.Members) != 1 || !team.Members[0].IsMe {
		t.Fatalf("creator not registered: %+v", team.Members)
	}

	// Codes are case-insensitive on join.
	joined, err := c.JoinTeam(models.JoinTeamRequest{
		Code: strings.ToLower(team.Code), MyName: "Sam", DreamTitle: "learn woodworking",
	})
	if err != nil {
		t.Fatalf("JoinTeam: %v", err)
	}
	if len(joined.Members) != 2 {
		t.Fatalf("team has %d members, want 2", len(joined.Members))
	}

	if _, err := c.JoinTeam(models.JoinTeamRequest{Code: "NOPE99"}); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("bad code err = %v, want ErrTeamNotFound", err)
	}

	// Two signals the same day: the board shows only the latest.
	if _, err := c.SendSignal(team, models.SignalRequest{DidSomething: false}); err != nil {
		t.Fatalf("SendSignal: %v", err)
	}
	if _, err := c.SendSignal(team, models.SignalRequest{DidSomething: true, ActionShared: "wrote at dawn"}); err != nil {
		t.Fatalf("SendSignal: %v", err)
	}
	board, err := c.store.SignalsForDate(team.ID, "2024-03-15")
	if err != nil {
		t.Fatalf("SignalsForDate: %v", err)
	}
	if len(board) != 1 {
		t.Fatalf("board has %d signals, want 1", len(board))
	}
	if !board[0].DidSomething {
		t.Fatalf("board kept the stale signal")
	}
	log, err := c.store.TeamSignals(team.ID)
	if err != nil {
		t.Fatalf("TeamSignals: %v", err)
	}
	if len(log) != 2 {
		t.Fatalf("signal log has %d entries, want 2 (append-only)", len(log))
	}

	if err := c.PingTeam(team); err != nil {
		t.Fatalf("PingTeam: %v", err)
	}
	xp, err := c.store.DreamXP(dream.ID)
	if err != nil {
		t.Fatalf("DreamXP: %v", err)
	}
	if xp.Total != XPAmount(models.XPTeamSupport) {
		t.Fatalf("ping xp = %d", xp.Total)
	}
}
