package services

import (
	"testing"

	"github.com/Davidkingreuben/Dreamcoach/internal/models"
)

func TestMomentumPoints(t *testing.T) {
	t.Parallel()

	t.Run("empty history yields empty series", func(t *testing.T) {
		t.Parallel()
		if got := MomentumPoints(nil, nil); len(got) != 0 {
			t.Fatalf("expected empty series, got %d points", len(got))
		}
	})

	t.Run("bare checkin scores the base", func(t *testing.T) {
		t.Parallel()
		points := MomentumPoints(checkinsOn("2024-01-01"), nil)
		if len(points) != 1 || points[0].Score != 2 {
			t.Fatalf("bare check-in = %+v, want score 2", points)
		}
	})

	t.Run("full day caps at ten", func(t *testing.T) {
		t.Parallel()
		checkins := []models.DailyCheckIn{
			{Date: "2024-01-01"},
			{
				Date:          "2024-01-04", // restart after a gap
				DidSomething:  true,
				TinyAction:    "wrote the opening scene",
				StepStatement: "momentum is back and it feels earned",
				DailyMode:     models.ModeDo,
			},
		}
		points := MomentumPoints(checkins, nil)
		// 2 base + 3 did + 1 tiny + 1 statement + 1 do + 2 restart = 10
		if points[1].Score != 10 {
			t.Fatalf("full restart day = %v, want 10", points[1].Score)
		}
		if !points[1].IsRestart {
			t.Fatalf("gap of 3 days should flag a restart")
		}
	})

	t.Run("plan mode scores half of do", func(t *testing.T) {
		t.Parallel()
		points := MomentumPoints([]models.DailyCheckIn{
			{Date: "2024-01-01", DailyMode: models.ModePlan},
		}, nil)
		if points[0].Score != 2.5 {
			t.Fatalf("plan day = %v, want 2.5", points[0].Score)
		}
	})

	t.Run("grace day subtracts but never goes negative", func(t *testing.T) {
		t.Parallel()
		points := MomentumPoints(
			checkinsOn("2024-01-01"),
			graceOn("2024-01-01"),
		)
		if points[0].Score != 1 {
			t.Fatalf("graced bare day = %v, want 1", points[0].Score)
		}
		if !points[0].GraceDayUsed {
			t.Fatalf("grace flag not set")
		}
	})

	t.Run("scores stay within bounds across a varied month", func(t *testing.T) {
		t.Parallel()
		var checkins []models.DailyCheckIn
		for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-05", "2024-01-06", "2024-01-12"} {
			checkins = append(checkins, models.DailyCheckIn{
				Date: d, DidSomething: true, TinyAction: "did the next small thing",
				StepStatement: "kept the thread alive today", DailyMode: models.ModeDo,
			})
		}
		for _, p := range MomentumPoints(checkins, graceOn("2024-01-02")) {
			if p.Score < 0 || p.Score > 10 {
				t.Fatalf("score %v on %s out of [0,10]", p.Score, p.Date)
			}
		}
	})
}

func TestAverageMomentum(t *testing.T) {
	t.Parallel()

	if got := AverageMomentum(nil); got != 0 {
		t.Fatalf("empty average = %v, want 0", got)
	}
	points := []MomentumPoint{{Score: 2}, {Score: 5}, {Score: 8}}
	if got := AverageMomentum(points); got != 5 {
		t.Fatalf("AverageMomentum() = %v, want 5", got)
	}
	points = []MomentumPoint{{Score: 2}, {Score: 3}}
	if got := AverageMomentum(points); got != 2.5 {
		t.Fatalf("AverageMomentum() = %v, want 2.5", got)
	}
}
