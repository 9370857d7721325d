package csvstore

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	crerr "github.com/cockroachdb/errors"

	"github.com/mirrormatch/playprep/internal/domain/metadata"
)

// LoadMetadata reads the nflverse play-by-play export. Only the join keys
// are required; every other consumed column is nullable. The file itself
// is required: a missing or malformed table is a structural failure.
func LoadMetadata(ctx context.Context, path string) ([]metadata.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, crerr.Wrap(err, "open play-by-play table")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, crerr.Wrap(err, "read play-by-play header")
	}
	cols := headerIndex(header)

	// nflverse keys plays by the legacy GSIS game id.
	for _, name := range []string{"old_game_id", "play_id"} {
		if _, ok := cols[name]; !ok {
			return nil, crerr.Newf("required column %q missing", name)
		}
	}

	rows := make([]metadata.Row, 0, 1<<15)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, crerr.Wrapf(err, "read play-by-play row at line %d", line)
		}
		if line%4096 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		row := metadata.Row{}
		if row.GameID, err = requiredInt64(record, cols, "old_game_id"); err != nil {
			return nil, crerr.Wrapf(err, "line %d", line)
		}
		playID, err := requiredFloat(record, cols, "play_id")
		if err != nil {
			return nil, crerr.Wrapf(err, "line %d", line)
		}
		row.PlayID = int64(playID)

		row.Down = optionalInt(record, cols, "down")
		row.YardsToGo = optionalInt(record, cols, "ydstogo")
		row.Yardline100 = optionalFloat(record, cols, "yardline_100")
		row.PlayType = optionalStringPtr(record, cols, "play_type")
		row.YardsGained = optionalInt(record, cols, "yards_gained")
		row.Shotgun = optionalBool(record, cols, "shotgun")
		row.PassLength = optionalStringPtr(record, cols, "pass_length")
		row.PassLocation = optionalStringPtr(record, cols, "pass_location")
		row.Offense = optionalStringPtr(record, cols, "posteam")
		row.Defense = optionalStringPtr(record, cols, "defteam")
		row.Quarter = optionalInt(record, cols, "qtr")
		row.Description = optionalStringPtr(record, cols, "desc")

		rows = append(rows, row)
	}

	return rows, nil
}

func optionalInt(record []string, cols map[string]int, name string) *int {
	raw, ok := cell(record, cols, name)
	if !ok || emptyCell(raw) {
		return nil
	}
	// nflverse exports integers as floats ("3.0").
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	v := int(f)
	return &v
}

func optionalBool(record []string, cols map[string]int, name string) *bool {
	raw, ok := cell(record, cols, name)
	if !ok || emptyCell(raw) {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	v := f != 0
	return &v
}

func optionalStringPtr(record []string, cols map[string]int, name string) *string {
	raw, ok := cell(record, cols, name)
	if !ok || emptyCell(raw) {
		return nil
	}
	return &raw
}
