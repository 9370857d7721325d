package usecase

import (
	"context"

	"github.com/mirrormatch/playprep/internal/domain/play"
	"github.com/mirrormatch/playprep/internal/platform/logging"
)

// CompactService produces the small fast-loading dataset: the first
// maxPlays plays with at least minFrames frames, with each frame reduced to
// index and position.
type CompactService struct {
	logger    *logging.Logger
	minFrames int
	maxPlays  int
}

func NewCompactService(logger *logging.Logger, minFrames, maxPlays int) *CompactService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxPlays < 1 {
		maxPlays = 1
	}
	return &CompactService{logger: logger, minFrames: minFrames, maxPlays: maxPlays}
}

// CompactDocument wraps the sampled plays.
type CompactDocument struct {
	Plays []CompactPlay `json:"plays"`
}

// CompactPlay mirrors play.Play with frames stripped of kinematics.
type CompactPlay struct {
	GameID            int64           `json:"gameId"`
	PlayID            int64           `json:"playId"`
	Direction         string          `json:"direction"`
	Yardline          *int            `json:"yardline"`
	BallLandX         *float64        `json:"ballLandX"`
	BallLandY         *float64        `json:"ballLandY"`
	NumFrames         int             `json:"numFrames"`
	NumInputFrames    int             `json:"numInputFrames"`
	NumOutputFrames   int             `json:"numOutputFrames"`
	Players           []CompactPlayer `json:"players"`
	CoverageTightness *float64        `json:"coverageTightness"`
	Separation        *float64        `json:"separation"`
	FieldZone         play.Zone       `json:"fieldZone"`
	*play.Meta
}

type CompactPlayer struct {
	NFLID    int64          `json:"nflId"`
	Name     string         `json:"name"`
	Position string         `json:"position"`
	Side     string         `json:"side"`
	Role     string         `json:"role"`
	Team     string         `json:"team"`
	Frames   []CompactFrame `json:"frames"`
}

type CompactFrame struct {
	F int     `json:"f"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sample filters and trims the full play list. Plays below the frame
// threshold are dropped; order is preserved.
func (s *CompactService) Sample(ctx context.Context, plays []play.Play) CompactDocument {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompactService.Sample")
	defer span.End()

	kept := make([]CompactPlay, 0, s.maxPlays)
	dropped := 0
	for _, p := range plays {
		if len(kept) == s.maxPlays {
			break
		}
		if p.NumFrames < s.minFrames {
			dropped++
			continue
		}
		kept = append(kept, compactPlay(p))
	}

	s.logger.InfoContext(ctx, "sampled compact dataset",
		"kept", len(kept),
		"dropped_short", dropped,
		"min_frames", s.minFrames,
	)

	return CompactDocument{Plays: kept}
}

func compactPlay(p play.Play) CompactPlay {
	players := make([]CompactPlayer, 0, len(p.Players))
	for _, player := range p.Players {
		frames := make([]CompactFrame, 0, len(player.Frames))
		for _, frame := range player.Frames {
			frames = append(frames, CompactFrame{F: frame.F, X: frame.X, Y: frame.Y})
		}
		players = append(players, CompactPlayer{
			NFLID:    player.NFLID,
			Name:     player.Name,
			Position: player.Position,
			Side:     player.Side,
			Role:     player.Role,
			Team:     player.Team,
			Frames:   frames,
		})
	}

	return CompactPlay{
		GameID:            p.GameID,
		PlayID:            p.PlayID,
		Direction:         p.Direction,
		Yardline:          p.Yardline,
		BallLandX:         p.BallLandX,
		BallLandY:         p.BallLandY,
		NumFrames:         p.NumFrames,
		NumInputFrames:    p.NumInputFrames,
		NumOutputFrames:   p.NumOutputFrames,
		Players:           players,
		CoverageTightness: p.CoverageTightness,
		Separation:        p.Separation,
		FieldZone:         p.FieldZone,
		Meta:              p.Meta,
	}
}
