package usecase

import (
	"math"

	"github.com/mirrormatch/playprep/internal/domain/tracking"
)

// coverageTightness is the minimum distance from the targeted receiver to
// the nearest defender at the earliest pre-throw frame. Nil when the frame
// does not contain exactly one targeted receiver, or contains no defenders.
func coverageTightness(rows []tracking.Row) *float64 {
	return receiverSeparationAt(rows, tracking.MinFrame(rows))
}

// separationAtTarget is the same measure taken at the last pre-throw frame.
func separationAtTarget(rows []tracking.Row) *float64 {
	return receiverSeparationAt(rows, tracking.MaxFrame(rows))
}

func receiverSeparationAt(rows []tracking.Row, frameID int) *float64 {
	if len(rows) == 0 {
		return nil
	}

	var target tracking.Row
	targets := 0
	defenders := make([]tracking.Row, 0, 11)
	for _, row := range rows {
		if row.FrameID != frameID {
			continue
		}
		if row.PlayerRole == tracking.RoleTargetedReceiver {
			target = row
			targets++
		}
		if row.PlayerSide == tracking.SideDefense {
			defenders = append(defenders, row)
		}
	}
	if targets != 1 || len(defenders) == 0 {
		return nil
	}

	best := math.Inf(1)
	for _, d := range defenders {
		if dist := math.Hypot(d.X-target.X, d.Y-target.Y); dist < best {
			best = dist
		}
	}

	best = round1(best)
	return &best
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
