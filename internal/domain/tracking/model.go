package tracking

import "sort"

const (
	SideOffense = "Offense"
	SideDefense = "Defense"

	RoleTargetedReceiver = "Targeted Receiver"
)

// Row is one player tracking sample parsed from a weekly CSV table.
// Pointer fields are absent in the source when nil; post-throw tables only
// carry the key columns plus x/y.
type Row struct {
	GameID           int64
	PlayID           int64
	NFLID            int64
	FrameID          int
	X                float64
	Y                float64
	Speed            *float64
	Dir              *float64
	PlayerName       string
	PlayerPosition   string
	PlayerSide       string
	PlayerRole       string
	PlayDirection    string
	AbsoluteYardline *float64
	BallLandX        *float64
	BallLandY        *float64
	Week             int
}

// PlayKey is the composite key tracking and metadata tables join on.
type PlayKey struct {
	GameID int64
	PlayID int64
}

// Table holds concatenated tracking rows across all loaded weeks, in source
// order.
type Table struct {
	Rows []Row
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// GroupByPlay splits the table into per-play row groups. Groups are non-empty
// by construction.
func (t Table) GroupByPlay() map[PlayKey][]Row {
	groups := make(map[PlayKey][]Row)
	for _, row := range t.Rows {
		key := PlayKey{GameID: row.GameID, PlayID: row.PlayID}
		groups[key] = append(groups[key], row)
	}
	return groups
}

// SortedPlayKeys returns the group keys ordered by (game, play) so a pass
// over the groups is deterministic.
func SortedPlayKeys(groups map[PlayKey][]Row) []PlayKey {
	keys := make([]PlayKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].GameID != keys[j].GameID {
			return keys[i].GameID < keys[j].GameID
		}
		return keys[i].PlayID < keys[j].PlayID
	})
	return keys
}

// GroupByPlayer splits one play's rows per player id, each group ordered by
// frame index, and returns the player ids sorted ascending.
func GroupByPlayer(rows []Row) (map[int64][]Row, []int64) {
	groups := make(map[int64][]Row)
	for _, row := range rows {
		groups[row.NFLID] = append(groups[row.NFLID], row)
	}

	ids := make([]int64, 0, len(groups))
	for id := range groups {
		sortByFrame(groups[id])
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return groups, ids
}

// MaxFrame returns the highest frame index in rows, or 0 for an empty slice.
func MaxFrame(rows []Row) int {
	max := 0
	for _, row := range rows {
		if row.FrameID > max {
			max = row.FrameID
		}
	}
	return max
}

// MinFrame returns the lowest frame index in rows, or 0 for an empty slice.
func MinFrame(rows []Row) int {
	if len(rows) == 0 {
		return 0
	}
	min := rows[0].FrameID
	for _, row := range rows[1:] {
		if row.FrameID < min {
			min = row.FrameID
		}
	}
	return min
}

func sortByFrame(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].FrameID < rows[j].FrameID })
}
