package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mirrormatch/playprep/internal/domain/play"
)

const upsertBatchSize = 500

const upsertPlaySummaryQuery = `INSERT INTO play_summaries (
    game_id, play_id, offense, defense, play_type,
    down, yards_to_go, yards_gained, quarter,
    field_zone, coverage_tightness, separation, num_frames
) VALUES (
    :game_id, :play_id, :offense, :defense, :play_type,
    :down, :yards_to_go, :yards_gained, :quarter,
    :field_zone, :coverage_tightness, :separation, :num_frames
)
ON CONFLICT (game_id, play_id)
DO UPDATE SET
    offense = EXCLUDED.offense,
    defense = EXCLUDED.defense,
    play_type = EXCLUDED.play_type,
    down = EXCLUDED.down,
    yards_to_go = EXCLUDED.yards_to_go,
    yards_gained = EXCLUDED.yards_gained,
    quarter = EXCLUDED.quarter,
    field_zone = EXCLUDED.field_zone,
    coverage_tightness = EXCLUDED.coverage_tightness,
    separation = EXCLUDED.separation,
    num_frames = EXCLUDED.num_frames,
    updated_at = now()`

// PlaySummaryRepository archives one flat filterable row per play so runs
// can be queried with plain SQL after the fact.
type PlaySummaryRepository struct {
	db *sqlx.DB
}

func NewPlaySummaryRepository(db *sqlx.DB) *PlaySummaryRepository {
	return &PlaySummaryRepository{db: db}
}

// UpsertBatch writes all records keyed (game_id, play_id), replacing any
// earlier run's rows. Returns the number of rows written.
func (r *PlaySummaryRepository) UpsertBatch(ctx context.Context, plays []play.Play) (int, error) {
	if len(plays) == 0 {
		return 0, nil
	}

	models := make([]playSummaryInsertModel, 0, len(plays))
	for _, p := range plays {
		models = append(models, playSummaryFromRecord(p))
	}

	written := 0
	for start := 0; start < len(models); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(models) {
			end = len(models)
		}
		if _, err := r.db.NamedExecContext(ctx, upsertPlaySummaryQuery, models[start:end]); err != nil {
			return written, fmt.Errorf("upsert play summaries [%d:%d]: %w", start, end, err)
		}
		written += end - start
	}

	return written, nil
}
