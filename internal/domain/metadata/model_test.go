package metadata

import "testing"

func sptr(v string) *string { return &v }
func bptr(v bool) *bool     { return &v }

func TestIndex_FirstOccurrenceWins(t *testing.T) {
	first := sptr("pass")
	second := sptr("run")
	rows := []Row{
		{GameID: 1, PlayID: 10, PlayType: first},
		{GameID: 1, PlayID: 10, PlayType: second},
		{GameID: 1, PlayID: 20, PlayType: second},
	}

	index := Index(rows)
	if len(index) != 2 {
		t.Fatalf("unexpected index size: %d", len(index))
	}
	got := index[Key{GameID: 1, PlayID: 10}]
	if got.PlayType == nil || *got.PlayType != "pass" {
		t.Fatalf("duplicate key should keep the first row, got %+v", got.PlayType)
	}
}

func TestRow_TypePredicates(t *testing.T) {
	if (Row{}).IsPass() || (Row{}).IsRun() || (Row{}).IsShotgun() {
		t.Fatalf("nil fields must not satisfy predicates")
	}
	if !(Row{PlayType: sptr(PlayTypePass)}).IsPass() {
		t.Fatalf("expected IsPass for play_type=pass")
	}
	if !(Row{PlayType: sptr(PlayTypeRun)}).IsRun() {
		t.Fatalf("expected IsRun for play_type=run")
	}
	if (Row{PlayType: sptr("punt")}).IsPass() {
		t.Fatalf("punt is not a pass")
	}
	if !(Row{Shotgun: bptr(true)}).IsShotgun() {
		t.Fatalf("expected IsShotgun for shotgun=true")
	}
	if (Row{Shotgun: bptr(false)}).IsShotgun() {
		t.Fatalf("shotgun=false is not shotgun")
	}
}

func TestRow_YardsGainedOrZero(t *testing.T) {
	if got := (Row{}).YardsGainedOrZero(); got != 0 {
		t.Fatalf("YardsGainedOrZero = %d, want 0", got)
	}
	yards := 7
	if got := (Row{YardsGained: &yards}).YardsGainedOrZero(); got != 7 {
		t.Fatalf("YardsGainedOrZero = %d, want 7", got)
	}
}
