package usecase

import (
	"context"
	"strconv"

	"github.com/mirrormatch/playprep/internal/domain/metadata"
	"github.com/mirrormatch/playprep/internal/domain/play"
	"github.com/mirrormatch/playprep/internal/domain/tendency"
)

// TendencyService rolls play records and play-by-play rows up by team.
type TendencyService struct{}

func NewTendencyService() *TendencyService {
	return &TendencyService{}
}

// Rollup groups completed play records by offense code and keeps teams with
// at least minPlays of them. Rates divide by the team's total play count.
// See tendency.Overall for the avgCoverage exclusion quirk.
func (s *TendencyService) Rollup(ctx context.Context, plays []play.Play, minPlays int) map[string]tendency.TeamRollup {
	_, span := startUsecaseSpan(ctx, "usecase.TendencyService.Rollup")
	defer span.End()

	byTeam := make(map[string][]play.Play)
	for _, p := range plays {
		team := p.OffenseTeam()
		byTeam[team] = append(byTeam[team], p)
	}

	rollup := make(map[string]tendency.TeamRollup)
	for team, teamPlays := range byTeam {
		if len(teamPlays) < minPlays {
			continue
		}

		total := len(teamPlays)
		passCount := 0
		runCount := 0
		yards := 0
		coverageSum := 0.0
		coverageCount := 0
		for _, p := range teamPlays {
			switch p.PlayTypeOrUnknown() {
			case metadata.PlayTypePass:
				passCount++
			case metadata.PlayTypeRun:
				runCount++
			}
			yards += p.YardsGainedOrZero()
			if p.CoverageTightness != nil && *p.CoverageTightness != 0 {
				coverageSum += *p.CoverageTightness
				coverageCount++
			}
		}

		avgCoverage := 0.0
		if coverageCount > 0 {
			avgCoverage = coverageSum / float64(coverageCount)
		}

		rollup[team] = tendency.TeamRollup{
			TotalPlays: total,
			Overall: tendency.Overall{
				PassRate:    float64(passCount) / float64(total),
				RunRate:     float64(runCount) / float64(total),
				AvgYards:    float64(yards) / float64(total),
				AvgCoverage: avgCoverage,
			},
		}
	}

	return rollup
}

// Situational computes the per-team situational splits over raw play-by-play
// rows, restricted to pass/run snaps of the requested teams.
func (s *TendencyService) Situational(ctx context.Context, rows []metadata.Row, teams []string) map[string]tendency.TeamSituational {
	_, span := startUsecaseSpan(ctx, "usecase.TendencyService.Situational")
	defer span.End()

	wanted := make(map[string]struct{}, len(teams))
	for _, team := range teams {
		wanted[team] = struct{}{}
	}

	byTeam := make(map[string][]metadata.Row, len(teams))
	for _, row := range rows {
		if row.Offense == nil {
			continue
		}
		if _, ok := wanted[*row.Offense]; !ok {
			continue
		}
		if !row.IsPass() && !row.IsRun() {
			continue
		}
		byTeam[*row.Offense] = append(byTeam[*row.Offense], row)
	}

	out := make(map[string]tendency.TeamSituational, len(byTeam))
	for team, teamRows := range byTeam {
		entry := tendency.TeamSituational{
			Team:        team,
			TotalPlays:  len(teamRows),
			Overall:     situationalStats(teamRows),
			ByDown:      map[string]*tendency.Stats{},
			ByDistance:  map[string]*tendency.Stats{},
			ByFormation: map[string]*tendency.Stats{},
		}

		for down := 1; down <= 4; down++ {
			if stats := situationalStats(filterRows(teamRows, byDown(down))); stats != nil {
				entry.ByDown[strconv.Itoa(down)] = stats
			}
		}

		short := filterRows(teamRows, byDistance(1, 3))
		medium := filterRows(teamRows, byDistance(4, 7))
		long := filterRows(teamRows, byDistance(8, -1))
		if stats := situationalStats(short); stats != nil {
			entry.ByDistance["short"] = stats
		}
		if stats := situationalStats(medium); stats != nil {
			entry.ByDistance["medium"] = stats
		}
		if stats := situationalStats(long); stats != nil {
			entry.ByDistance["long"] = stats
		}

		if stats := situationalStats(filterRows(teamRows, metadata.Row.IsShotgun)); stats != nil {
			entry.ByFormation["shotgun"] = stats
		}
		if stats := situationalStats(filterRows(teamRows, func(r metadata.Row) bool { return !r.IsShotgun() })); stats != nil {
			entry.ByFormation["underCenter"] = stats
		}

		third := filterRows(teamRows, byDown(3))
		entry.ThirdDown = tendency.ThirdDown{
			Overall: situationalStats(third),
			Short:   situationalStats(filterRows(third, byDistance(1, 3))),
			Medium:  situationalStats(filterRows(third, byDistance(4, 7))),
			Long:    situationalStats(filterRows(third, byDistance(8, -1))),
		}

		out[team] = entry
	}

	return out
}

// situationalStats computes one bucket. Nil when the bucket has no pass or
// run snaps; rates use the pass+run denominator.
func situationalStats(rows []metadata.Row) *tendency.Stats {
	if len(rows) == 0 {
		return nil
	}

	passCount := 0
	runCount := 0
	passLeft, passMiddle, passRight := 0, 0, 0
	shotgunCount := 0
	yards := 0
	passYards := 0
	runYards := 0
	for _, row := range rows {
		yards += row.YardsGainedOrZero()
		if row.IsShotgun() {
			shotgunCount++
		}
		switch {
		case row.IsPass():
			passCount++
			passYards += row.YardsGainedOrZero()
			if row.PassLocation != nil {
				switch *row.PassLocation {
				case metadata.PassLocationLeft:
					passLeft++
				case metadata.PassLocationMiddle:
					passMiddle++
				case metadata.PassLocationRight:
					passRight++
				}
			}
		case row.IsRun():
			runCount++
			runYards += row.YardsGainedOrZero()
		}
	}

	passRunTotal := passCount + runCount
	if passRunTotal == 0 {
		return nil
	}

	stats := &tendency.Stats{
		SampleSize:  passRunTotal,
		PassRate:    round3(float64(passCount) / float64(passRunTotal)),
		RunRate:     round3(float64(runCount) / float64(passRunTotal)),
		ShotgunRate: round3(float64(shotgunCount) / float64(passRunTotal)),
		AvgYards:    round1(float64(yards) / float64(len(rows))),
	}
	if passCount > 0 {
		stats.PassLeft = round3(float64(passLeft) / float64(passCount))
		stats.PassMiddle = round3(float64(passMiddle) / float64(passCount))
		stats.PassRight = round3(float64(passRight) / float64(passCount))
		stats.PassAvgYards = round1(float64(passYards) / float64(passCount))
	}
	if runCount > 0 {
		stats.RunAvgYards = round1(float64(runYards) / float64(runCount))
	}

	return stats
}

func filterRows(rows []metadata.Row, keep func(metadata.Row) bool) []metadata.Row {
	out := make([]metadata.Row, 0, len(rows))
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

func byDown(down int) func(metadata.Row) bool {
	return func(r metadata.Row) bool {
		return r.Down != nil && *r.Down == down
	}
}

// byDistance keeps rows with yards-to-go in [from, to]; to < 0 means open
// ended.
func byDistance(from, to int) func(metadata.Row) bool {
	return func(r metadata.Row) bool {
		if r.YardsToGo == nil {
			return false
		}
		if *r.YardsToGo < from {
			return false
		}
		return to < 0 || *r.YardsToGo <= to
	}
}
