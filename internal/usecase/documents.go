package usecase

import (
	"github.com/mirrormatch/playprep/internal/domain/play"
	"github.com/mirrormatch/playprep/internal/domain/tendency"
)

// PlaysDocument is the main output consumed by the browser: the enriched
// play list, the team rollup, and the static filter options.
type PlaysDocument struct {
	Plays      []play.Play                    `json:"plays"`
	Tendencies map[string]tendency.TeamRollup `json:"tendencies"`
	Filters    FilterOptions                  `json:"filters"`
}

// FilterOptions is emitted verbatim for the front end's filter controls.
type FilterOptions struct {
	CoverageTightness CoverageBuckets `json:"coverageTightness"`
	FieldZone         []play.Zone     `json:"fieldZone"`
	Down              []int           `json:"down"`
}

// CoverageBuckets are the distance thresholds, in yards, behind the
// tight/normal/loose filter labels.
type CoverageBuckets struct {
	Tight  float64 `json:"tight"`
	Normal float64 `json:"normal"`
	Loose  float64 `json:"loose"`
}

func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		CoverageTightness: CoverageBuckets{Tight: 3, Normal: 5, Loose: 7},
		FieldZone:         play.Zones(),
		Down:              []int{1, 2, 3, 4},
	}
}
