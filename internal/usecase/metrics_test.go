package usecase

import (
	"testing"

	"github.com/mirrormatch/playprep/internal/domain/tracking"
)

func trackRow(nflID int64, frame int, x, y float64, side, role string) tracking.Row {
	return tracking.Row{
		GameID:     1,
		PlayID:     1,
		NFLID:      nflID,
		FrameID:    frame,
		X:          x,
		Y:          y,
		PlayerSide: side,
		PlayerRole: role,
	}
}

func TestCoverageTightness(t *testing.T) {
	t.Run("nearest defender at the first frame", func(t *testing.T) {
		rows := []tracking.Row{
			trackRow(1, 1, 0, 0, tracking.SideOffense, tracking.RoleTargetedReceiver),
			trackRow(2, 1, 3, 0, tracking.SideDefense, "Defensive Coverage"),
			trackRow(3, 1, 0, 5.5, tracking.SideDefense, "Defensive Coverage"),
			// Later frames must not affect the measure.
			trackRow(1, 2, 10, 10, tracking.SideOffense, tracking.RoleTargetedReceiver),
			trackRow(2, 2, 10.1, 10, tracking.SideDefense, "Defensive Coverage"),
		}

		got := coverageTightness(rows)
		if got == nil {
			t.Fatalf("expected a tightness value")
		}
		if *got != 3.0 {
			t.Fatalf("coverageTightness = %v, want 3.0", *got)
		}
	})

	t.Run("rounded to one decimal", func(t *testing.T) {
		rows := []tracking.Row{
			trackRow(1, 1, 0, 0, tracking.SideOffense, tracking.RoleTargetedReceiver),
			trackRow(2, 1, 1, 1, tracking.SideDefense, "Defensive Coverage"),
		}

		got := coverageTightness(rows)
		if got == nil {
			t.Fatalf("expected a tightness value")
		}
		// hypot(1,1) = 1.4142...
		if *got != 1.4 {
			t.Fatalf("coverageTightness = %v, want 1.4", *got)
		}
	})

	t.Run("no targeted receiver", func(t *testing.T) {
		rows := []tracking.Row{
			trackRow(1, 1, 0, 0, tracking.SideOffense, "Passer"),
			trackRow(2, 1, 3, 0, tracking.SideDefense, "Defensive Coverage"),
		}
		if got := coverageTightness(rows); got != nil {
			t.Fatalf("expected nil without a targeted receiver, got %v", *got)
		}
	})

	t.Run("multiple targeted receivers", func(t *testing.T) {
		rows := []tracking.Row{
			trackRow(1, 1, 0, 0, tracking.SideOffense, tracking.RoleTargetedReceiver),
			trackRow(2, 1, 4, 0, tracking.SideOffense, tracking.RoleTargetedReceiver),
			trackRow(3, 1, 3, 0, tracking.SideDefense, "Defensive Coverage"),
		}
		if got := coverageTightness(rows); got != nil {
			t.Fatalf("expected nil with an ambiguous target, got %v", *got)
		}
	})

	t.Run("no defenders", func(t *testing.T) {
		rows := []tracking.Row{
			trackRow(1, 1, 0, 0, tracking.SideOffense, tracking.RoleTargetedReceiver),
			trackRow(2, 1, 3, 0, tracking.SideOffense, "Passer"),
		}
		if got := coverageTightness(rows); got != nil {
			t.Fatalf("expected nil without defenders, got %v", *got)
		}
	})

	t.Run("empty rows", func(t *testing.T) {
		if got := coverageTightness(nil); got != nil {
			t.Fatalf("expected nil for empty rows, got %v", *got)
		}
	})
}

func TestSeparationAtTarget(t *testing.T) {
	rows := []tracking.Row{
		trackRow(1, 1, 0, 0, tracking.SideOffense, tracking.RoleTargetedReceiver),
		trackRow(2, 1, 1, 0, tracking.SideDefense, "Defensive Coverage"),
		trackRow(1, 5, 0, 0, tracking.SideOffense, tracking.RoleTargetedReceiver),
		trackRow(2, 5, 0, 7, tracking.SideDefense, "Defensive Coverage"),
	}

	got := separationAtTarget(rows)
	if got == nil {
		t.Fatalf("expected a separation value")
	}
	if *got != 7.0 {
		t.Fatalf("separationAtTarget = %v, want 7.0 (last frame)", *got)
	}
}

func TestRounding(t *testing.T) {
	if got := round1(12.3456); got != 12.3 {
		t.Fatalf("round1 = %v", got)
	}
	if got := round1(12.36); got != 12.4 {
		t.Fatalf("round1 half up = %v", got)
	}
	if got := round3(0.123456); got != 0.123 {
		t.Fatalf("round3 = %v", got)
	}
}
