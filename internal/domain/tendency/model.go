package tendency

// Overall is the play-record rollup for one offense. PassRate and RunRate
// divide by the team's total play count, so the two need not sum to 1 when
// other play types are present. AvgCoverage averages coverage tightness over
// plays with a non-null, non-zero value only; genuine zero-distance plays
// are dropped with the nulls. That exclusion is a quirk inherited from the
// published numbers and is deliberately preserved.
type Overall struct {
	PassRate    float64 `json:"passRate"`
	RunRate     float64 `json:"runRate"`
	AvgYards    float64 `json:"avgYards"`
	AvgCoverage float64 `json:"avgCoverage"`
}

// TeamRollup is one offense's entry in the main document. Teams below the
// minimum qualifying play count get no entry at all.
type TeamRollup struct {
	TotalPlays int     `json:"totalPlays"`
	Overall    Overall `json:"overall"`
}

// Stats describes one situational bucket of play-by-play rows. Unlike
// Overall, rates here are relative to pass+run snaps only; the two
// denominator conventions coexist on purpose, one per consumer.
type Stats struct {
	SampleSize   int     `json:"sampleSize"`
	PassRate     float64 `json:"passRate"`
	RunRate      float64 `json:"runRate"`
	PassLeft     float64 `json:"passLeft"`
	PassMiddle   float64 `json:"passMiddle"`
	PassRight    float64 `json:"passRight"`
	ShotgunRate  float64 `json:"shotgunRate"`
	AvgYards     float64 `json:"avgYards"`
	PassAvgYards float64 `json:"passAvgYards"`
	RunAvgYards  float64 `json:"runAvgYards"`
}

// ThirdDown isolates the conversion-down splits. Buckets without any
// qualifying snaps stay null.
type ThirdDown struct {
	Overall *Stats `json:"overall"`
	Short   *Stats `json:"short"`
	Medium  *Stats `json:"medium"`
	Long    *Stats `json:"long"`
}

// TeamSituational is one team's full situational breakdown.
type TeamSituational struct {
	Team        string            `json:"team"`
	TotalPlays  int               `json:"totalPlays"`
	Overall     *Stats            `json:"overall"`
	ByDown      map[string]*Stats `json:"byDown"`
	ByDistance  map[string]*Stats `json:"byDistance"`
	ByFormation map[string]*Stats `json:"byFormation"`
	ThirdDown   ThirdDown         `json:"thirdDown"`
}
