package postgres

import (
	"github.com/mirrormatch/playprep/internal/domain/play"
)

type playSummaryInsertModel struct {
	GameID            int64    `db:"game_id"`
	PlayID            int64    `db:"play_id"`
	Offense           string   `db:"offense"`
	Defense           string   `db:"defense"`
	PlayType          string   `db:"play_type"`
	Down              int      `db:"down"`
	YardsToGo         int      `db:"yards_to_go"`
	YardsGained       int      `db:"yards_gained"`
	Quarter           int      `db:"quarter"`
	FieldZone         string   `db:"field_zone"`
	CoverageTightness *float64 `db:"coverage_tightness"`
	Separation        *float64 `db:"separation"`
	NumFrames         int      `db:"num_frames"`
}

func playSummaryFromRecord(p play.Play) playSummaryInsertModel {
	model := playSummaryInsertModel{
		GameID:            p.GameID,
		PlayID:            p.PlayID,
		Offense:           "UNK",
		Defense:           "UNK",
		PlayType:          "unknown",
		FieldZone:         string(p.FieldZone),
		CoverageTightness: p.CoverageTightness,
		Separation:        p.Separation,
		NumFrames:         p.NumFrames,
	}
	if p.Meta != nil {
		model.Offense = p.Meta.Offense
		model.Defense = p.Meta.Defense
		model.PlayType = p.Meta.PlayType
		model.Down = p.Meta.Down
		model.YardsToGo = p.Meta.YardsToGo
		model.YardsGained = p.Meta.YardsGained
		model.Quarter = p.Meta.Quarter
	}
	return model
}
