package tracking

import "testing"

func row(game, playID, nflID int64, frame int) Row {
	return Row{GameID: game, PlayID: playID, NFLID: nflID, FrameID: frame}
}

func TestTable_GroupByPlay(t *testing.T) {
	table := Table{Rows: []Row{
		row(1, 10, 100, 1),
		row(1, 10, 101, 1),
		row(1, 20, 100, 1),
		row(2, 10, 100, 1),
	}}

	groups := table.GroupByPlay()
	if len(groups) != 3 {
		t.Fatalf("unexpected group count: %d", len(groups))
	}
	if got := len(groups[PlayKey{GameID: 1, PlayID: 10}]); got != 2 {
		t.Fatalf("unexpected rows for (1,10): %d", got)
	}
	if got := len(groups[PlayKey{GameID: 2, PlayID: 10}]); got != 1 {
		t.Fatalf("unexpected rows for (2,10): %d", got)
	}
}

func TestSortedPlayKeys(t *testing.T) {
	groups := map[PlayKey][]Row{
		{GameID: 2, PlayID: 5}:  nil,
		{GameID: 1, PlayID: 99}: nil,
		{GameID: 1, PlayID: 3}:  nil,
	}

	keys := SortedPlayKeys(groups)
	want := []PlayKey{
		{GameID: 1, PlayID: 3},
		{GameID: 1, PlayID: 99},
		{GameID: 2, PlayID: 5},
	}
	if len(keys) != len(want) {
		t.Fatalf("unexpected key count: %d", len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys[%d] = %+v, want %+v", i, keys[i], want[i])
		}
	}
}

func TestGroupByPlayer(t *testing.T) {
	rows := []Row{
		row(1, 10, 200, 3),
		row(1, 10, 100, 2),
		row(1, 10, 200, 1),
		row(1, 10, 100, 1),
	}

	groups, ids := GroupByPlayer(rows)
	if len(ids) != 2 || ids[0] != 100 || ids[1] != 200 {
		t.Fatalf("unexpected ids: %+v", ids)
	}
	for _, id := range ids {
		frames := groups[id]
		for i := 1; i < len(frames); i++ {
			if frames[i].FrameID < frames[i-1].FrameID {
				t.Fatalf("player %d frames out of order: %d before %d", id, frames[i-1].FrameID, frames[i].FrameID)
			}
		}
	}
}

func TestFrameBounds(t *testing.T) {
	rows := []Row{
		row(1, 10, 100, 4),
		row(1, 10, 100, 2),
		row(1, 10, 100, 9),
	}

	if got := MinFrame(rows); got != 2 {
		t.Fatalf("MinFrame = %d, want 2", got)
	}
	if got := MaxFrame(rows); got != 9 {
		t.Fatalf("MaxFrame = %d, want 9", got)
	}
	if got := MinFrame(nil); got != 0 {
		t.Fatalf("MinFrame(nil) = %d, want 0", got)
	}
	if got := MaxFrame(nil); got != 0 {
		t.Fatalf("MaxFrame(nil) = %d, want 0", got)
	}
}
