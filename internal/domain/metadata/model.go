package metadata

// Row is one nflverse play-by-play record, limited to the columns this
// pipeline consumes. Pointer fields are nil when the source cell is empty
// or the nflverse NA marker.
type Row struct {
	GameID       int64
	PlayID       int64
	Down         *int
	YardsToGo    *int
	Yardline100  *float64
	PlayType     *string
	YardsGained  *int
	Shotgun      *bool
	PassLength   *string
	PassLocation *string
	Offense      *string
	Defense      *string
	Quarter      *int
	Description  *string
}

// Key joins metadata onto tracking groups.
type Key struct {
	GameID int64
	PlayID int64
}

// Index builds the (game, play) lookup. The first occurrence of a key wins,
// matching a first-match join against a table that carries one row per play.
func Index(rows []Row) map[Key]Row {
	index := make(map[Key]Row, len(rows))
	for _, row := range rows {
		key := Key{GameID: row.GameID, PlayID: row.PlayID}
		if _, ok := index[key]; ok {
			continue
		}
		index[key] = row
	}
	return index
}

const (
	PlayTypePass = "pass"
	PlayTypeRun  = "run"

	PassLocationLeft   = "left"
	PassLocationMiddle = "middle"
	PassLocationRight  = "right"
)

func (r Row) IsPass() bool {
	return r.PlayType != nil && *r.PlayType == PlayTypePass
}

func (r Row) IsRun() bool {
	return r.PlayType != nil && *r.PlayType == PlayTypeRun
}

func (r Row) IsShotgun() bool {
	return r.Shotgun != nil && *r.Shotgun
}

func (r Row) YardsGainedOrZero() int {
	if r.YardsGained == nil {
		return 0
	}
	return *r.YardsGained
}
