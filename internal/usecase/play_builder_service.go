package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/mirrormatch/playprep/internal/domain/metadata"
	"github.com/mirrormatch/playprep/internal/domain/play"
	"github.com/mirrormatch/playprep/internal/domain/tracking"
	"github.com/mirrormatch/playprep/internal/platform/logging"
)

// BuilderService assembles enriched play records from the pre-throw and
// post-throw tracking tables plus the metadata index. A play that fails to
// assemble is logged and skipped; the run continues.
type BuilderService struct {
	logger     *logging.Logger
	maxWorkers int
}

func NewBuilderService(logger *logging.Logger, maxWorkers int) *BuilderService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &BuilderService{logger: logger, maxWorkers: maxWorkers}
}

// BuildAll produces one record per distinct (game, play) group in the
// pre-throw table, sorted by (gameId, playId). Empty input yields an empty
// slice, not an error.
func (s *BuilderService) BuildAll(
	ctx context.Context,
	input tracking.Table,
	output tracking.Table,
	meta map[metadata.Key]metadata.Row,
) ([]play.Play, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BuilderService.BuildAll")
	defer span.End()

	if input.Empty() {
		return []play.Play{}, nil
	}

	inputGroups := input.GroupByPlay()
	outputGroups := output.GroupByPlay()
	keys := tracking.SortedPlayKeys(inputGroups)

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan play.Play, len(keys))

	var workers sync.WaitGroup
	for _, key := range keys {
		key := key
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if ctx.Err() != nil {
				return
			}

			record, buildErr := buildPlay(key, inputGroups[key], outputGroups[key], meta)
			if buildErr != nil {
				s.logger.WarnContext(ctx, "skipping play",
					"game_id", key.GameID,
					"play_id", key.PlayID,
					"error", buildErr,
				)
				return
			}
			results <- record
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit play to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plays := make([]play.Play, 0, len(keys))
	for record := range results {
		plays = append(plays, record)
	}
	sort.Slice(plays, func(i, j int) bool {
		if plays[i].GameID != plays[j].GameID {
			return plays[i].GameID < plays[j].GameID
		}
		return plays[i].PlayID < plays[j].PlayID
	})

	return plays, nil
}

func buildPlay(
	key tracking.PlayKey,
	inputRows, outputRows []tracking.Row,
	meta map[metadata.Key]metadata.Row,
) (play.Play, error) {
	if len(inputRows) == 0 {
		return play.Play{}, ErrEmptyPlay
	}

	maxInput := tracking.MaxFrame(inputRows)
	if maxInput < 1 {
		return play.Play{}, fmt.Errorf("%w: bad frame index %d", ErrInvalidInput, maxInput)
	}
	maxOutput := tracking.MaxFrame(outputRows)

	first := inputRows[0]

	record := play.Play{
		GameID:            key.GameID,
		PlayID:            key.PlayID,
		Direction:         first.PlayDirection,
		Yardline:          yardlineOf(first),
		BallLandX:         roundPtr(first.BallLandX),
		BallLandY:         roundPtr(first.BallLandY),
		NumFrames:         maxInput + maxOutput,
		NumInputFrames:    maxInput,
		NumOutputFrames:   maxOutput,
		Players:           buildPlayers(inputRows, outputRows, maxInput),
		CoverageTightness: coverageTightness(inputRows),
		Separation:        separationAtTarget(inputRows),
		FieldZone:         play.ZoneFor(first.AbsoluteYardline),
	}

	if row, ok := meta[metadata.Key{GameID: key.GameID, PlayID: key.PlayID}]; ok {
		record.Meta = metaBlock(row)
	}

	return record, nil
}

func buildPlayers(inputRows, outputRows []tracking.Row, frameOffset int) []play.Player {
	outputByPlayer, _ := tracking.GroupByPlayer(outputRows)
	inputByPlayer, ids := tracking.GroupByPlayer(inputRows)

	players := make([]play.Player, 0, len(ids))
	for _, id := range ids {
		playerRows := inputByPlayer[id]
		first := playerRows[0]

		frames := make([]play.FrameSample, 0, len(playerRows)+len(outputByPlayer[id]))
		for _, row := range playerRows {
			frames = append(frames, play.FrameSample{
				F: row.FrameID,
				X: round1(row.X),
				Y: round1(row.Y),
				S: speedOf(row),
				D: headingOf(row),
			})
		}
		// Post-throw kinematics are not modeled for speed.
		for _, row := range outputByPlayer[id] {
			frames = append(frames, play.FrameSample{
				F: row.FrameID + frameOffset,
				X: round1(row.X),
				Y: round1(row.Y),
				S: 0,
			})
		}

		players = append(players, play.Player{
			NFLID:    id,
			Name:     first.PlayerName,
			Position: first.PlayerPosition,
			Side:     first.PlayerSide,
			Role:     first.PlayerRole,
			Team:     teamMarker(first.PlayerSide),
			Frames:   frames,
		})
	}

	return players
}

// metaBlock coerces a metadata row into the record's inline block: numerics
// default to 0, play type to "unknown", team codes to UNK, flags to false.
// Pass length and location stay null when absent.
func metaBlock(row metadata.Row) *play.Meta {
	return &play.Meta{
		Down:         intOrZero(row.Down),
		YardsToGo:    intOrZero(row.YardsToGo),
		PlayType:     stringOr(row.PlayType, "unknown"),
		YardsGained:  intOrZero(row.YardsGained),
		Shotgun:      row.Shotgun != nil && *row.Shotgun,
		PassLength:   row.PassLength,
		PassLocation: row.PassLocation,
		Offense:      stringOr(row.Offense, "UNK"),
		Defense:      stringOr(row.Defense, "UNK"),
		Quarter:      intOrZero(row.Quarter),
		Description:  stringOr(row.Description, ""),
	}
}

func teamMarker(side string) string {
	if side == tracking.SideOffense {
		return "away"
	}
	return "home"
}

func speedOf(row tracking.Row) float64 {
	if row.Speed == nil {
		return 0
	}
	return round1(*row.Speed)
}

func headingOf(row tracking.Row) *float64 {
	if row.Dir == nil {
		return nil
	}
	d := math.Round(*row.Dir)
	return &d
}

func yardlineOf(row tracking.Row) *int {
	if row.AbsoluteYardline == nil {
		return nil
	}
	y := int(*row.AbsoluteYardline)
	return &y
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round1(*v)
	return &r
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
