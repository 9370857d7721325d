package play

// FrameSample is one player position at one time step, coordinates rounded to
// a tenth of a yard. D carries the heading angle for sources that track it.
type FrameSample struct {
	F int      `json:"f"`
	X float64  `json:"x"`
	Y float64  `json:"y"`
	S float64  `json:"s"`
	D *float64 `json:"d,omitempty"`
}

// Player is one participant's identity plus their full frame sequence for a
// play: pre-throw frames verbatim, then any post-throw frames with indices
// shifted past the pre-throw maximum. Frame indices are strictly increasing.
type Player struct {
	NFLID    int64         `json:"nflId"`
	Name     string        `json:"name"`
	Position string        `json:"position"`
	Side     string        `json:"side"`
	Role     string        `json:"role"`
	Team     string        `json:"team"`
	Frames   []FrameSample `json:"frames"`
}

// Meta is the play-by-play block joined onto a play when a metadata row
// matches its (game, play) key. PassLength and PassLocation stay null when
// the source has no value; every other field gets an explicit default.
type Meta struct {
	Down         int     `json:"down"`
	YardsToGo    int     `json:"yardsToGo"`
	PlayType     string  `json:"playType"`
	YardsGained  int     `json:"yardsGained"`
	Shotgun      bool    `json:"shotgun"`
	PassLength   *string `json:"passLength"`
	PassLocation *string `json:"passLocation"`
	Offense      string  `json:"offense"`
	Defense      string  `json:"defense"`
	Quarter      int     `json:"quarter"`
	Description  string  `json:"description"`
}

// Play is one enriched play record. NumFrames is a play-level quantity:
// pre-throw max frame plus post-throw max frame, independent of how long any
// single player was tracked. A nil Meta means no metadata row matched and
// its fields are omitted from the encoded record entirely.
type Play struct {
	GameID            int64    `json:"gameId"`
	PlayID            int64    `json:"playId"`
	Direction         string   `json:"direction"`
	Yardline          *int     `json:"yardline"`
	BallLandX         *float64 `json:"ballLandX"`
	BallLandY         *float64 `json:"ballLandY"`
	NumFrames         int      `json:"numFrames"`
	NumInputFrames    int      `json:"numInputFrames"`
	NumOutputFrames   int      `json:"numOutputFrames"`
	Players           []Player `json:"players"`
	CoverageTightness *float64 `json:"coverageTightness"`
	Separation        *float64 `json:"separation"`
	FieldZone         Zone     `json:"fieldZone"`
	*Meta
}

// OffenseTeam is the grouping key for tendency rollups. Plays without a
// metadata match fall into the UNK bucket.
func (p Play) OffenseTeam() string {
	if p.Meta == nil || p.Meta.Offense == "" {
		return "UNK"
	}
	return p.Meta.Offense
}

func (p Play) PlayTypeOrUnknown() string {
	if p.Meta == nil {
		return "unknown"
	}
	return p.Meta.PlayType
}

func (p Play) YardsGainedOrZero() int {
	if p.Meta == nil {
		return 0
	}
	return p.Meta.YardsGained
}
