package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/mirrormatch/playprep/internal/domain/tracking"
	"github.com/mirrormatch/playprep/internal/platform/logging"
)

// TrackingStore loads the weekly pre-throw and post-throw tracking tables
// from a directory of files named input_<season>_wNN.csv and
// output_<season>_wNN.csv.
type TrackingStore struct {
	dir    string
	season int
	logger *logging.Logger
}

func NewTrackingStore(dir string, season int, logger *logging.Logger) *TrackingStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &TrackingStore{dir: dir, season: season, logger: logger}
}

// DiscoverWeeks returns the subset of [from, to] whose pre-throw file
// exists. A missing week is availability, not an error.
func (s *TrackingStore) DiscoverWeeks(from, to int) []int {
	weeks := make([]int, 0, to-from+1)
	for week := from; week <= to; week++ {
		if _, err := os.Stat(s.inputPath(week)); err != nil {
			continue
		}
		weeks = append(weeks, week)
	}
	return weeks
}

type weekTables struct {
	week   int
	input  []tracking.Row
	output []tracking.Row
}

// Load reads the given weeks concurrently and concatenates them in week
// order into one pre-throw and one post-throw table, each row tagged with
// its source week. No weeks yields empty tables, not a failure; the caller
// decides what an empty dataset means.
func (s *TrackingStore) Load(ctx context.Context, weeks []int) (tracking.Table, tracking.Table, error) {
	if len(weeks) == 0 {
		return tracking.Table{}, tracking.Table{}, nil
	}

	p := pool.NewWithResults[weekTables]().WithErrors().WithContext(ctx)
	for _, week := range weeks {
		week := week
		p.Go(func(ctx context.Context) (weekTables, error) {
			return s.loadWeek(ctx, week)
		})
	}

	loaded, err := p.Wait()
	if err != nil {
		return tracking.Table{}, tracking.Table{}, err
	}
	sort.Slice(loaded, func(i, j int) bool { return loaded[i].week < loaded[j].week })

	var input, output tracking.Table
	for _, tables := range loaded {
		input.Rows = append(input.Rows, tables.input...)
		output.Rows = append(output.Rows, tables.output...)
	}
	return input, output, nil
}

func (s *TrackingStore) loadWeek(ctx context.Context, week int) (weekTables, error) {
	tables := weekTables{week: week}

	inputRows, err := s.loadFile(ctx, s.inputPath(week), week)
	if err != nil {
		return weekTables{}, crerr.Wrapf(err, "load week %d pre-throw table", week)
	}
	tables.input = inputRows

	outputPath := s.outputPath(week)
	if _, err := os.Stat(outputPath); err != nil {
		// Post-throw data is optional per week.
		s.logger.WarnContext(ctx, "post-throw table missing", "week", week, "path", outputPath)
		return tables, nil
	}
	outputRows, err := s.loadFile(ctx, outputPath, week)
	if err != nil {
		return weekTables{}, crerr.Wrapf(err, "load week %d post-throw table", week)
	}
	tables.output = outputRows

	return tables, nil
}

func (s *TrackingStore) loadFile(ctx context.Context, path string, week int) ([]tracking.Row, error) {
	s.logger.InfoContext(ctx, "loading tracking table", "path", path, "week", week)

	f, err := os.Open(path)
	if err != nil {
		return nil, crerr.Wrap(err, "open tracking table")
	}
	defer f.Close()

	rows, err := parseTrackingCSV(ctx, f, week)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse %s", filepath.Base(path))
	}
	return rows, nil
}

func (s *TrackingStore) inputPath(week int) string {
	return filepath.Join(s.dir, fmt.Sprintf("input_%d_w%02d.csv", s.season, week))
}

func (s *TrackingStore) outputPath(week int) string {
	return filepath.Join(s.dir, fmt.Sprintf("output_%d_w%02d.csv", s.season, week))
}

// parseTrackingCSV reads one tracking table. The key columns are required;
// everything else is carried when the header has it, so the same parser
// serves both the wide pre-throw and the narrow post-throw schema.
func parseTrackingCSV(ctx context.Context, r io.Reader, week int) ([]tracking.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, crerr.Wrap(err, "read header")
	}
	cols := headerIndex(header)

	required := []string{"game_id", "play_id", "nfl_id", "frame_id", "x", "y"}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, crerr.Newf("required column %q missing", name)
		}
	}

	rows := make([]tracking.Row, 0, 1<<16)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, crerr.Wrapf(err, "read row at line %d", line)
		}
		if line%4096 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		row := tracking.Row{Week: week}
		if row.GameID, err = requiredInt64(record, cols, "game_id"); err != nil {
			return nil, crerr.Wrapf(err, "line %d", line)
		}
		if row.PlayID, err = requiredInt64(record, cols, "play_id"); err != nil {
			return nil, crerr.Wrapf(err, "line %d", line)
		}
		if row.NFLID, err = requiredInt64(record, cols, "nfl_id"); err != nil {
			return nil, crerr.Wrapf(err, "line %d", line)
		}
		frame, err := requiredInt64(record, cols, "frame_id")
		if err != nil {
			return nil, crerr.Wrapf(err, "line %d", line)
		}
		row.FrameID = int(frame)
		if row.X, err = requiredFloat(record, cols, "x"); err != nil {
			return nil, crerr.Wrapf(err, "line %d", line)
		}
		if row.Y, err = requiredFloat(record, cols, "y"); err != nil {
			return nil, crerr.Wrapf(err, "line %d", line)
		}

		row.Speed = optionalFloat(record, cols, "s")
		row.Dir = optionalFloat(record, cols, "dir")
		row.PlayerName = optionalString(record, cols, "player_name")
		row.PlayerPosition = optionalString(record, cols, "player_position")
		row.PlayerSide = optionalString(record, cols, "player_side")
		row.PlayerRole = optionalString(record, cols, "player_role")
		row.PlayDirection = optionalString(record, cols, "play_direction")
		row.AbsoluteYardline = optionalFloat(record, cols, "absolute_yardline_number")
		row.BallLandX = optionalFloat(record, cols, "ball_land_x")
		row.BallLandY = optionalFloat(record, cols, "ball_land_y")

		rows = append(rows, row)
	}

	return rows, nil
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func cell(record []string, cols map[string]int, name string) (string, bool) {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[i]), true
}

// emptyCell covers both blank cells and the NA marker nflverse-style
// exports use.
func emptyCell(v string) bool {
	return v == "" || v == "NA" || strings.EqualFold(v, "nan")
}

func requiredInt64(record []string, cols map[string]int, name string) (int64, error) {
	raw, ok := cell(record, cols, name)
	if !ok || emptyCell(raw) {
		return 0, crerr.Newf("column %q is empty", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, crerr.Wrapf(err, "column %q", name)
	}
	return v, nil
}

func requiredFloat(record []string, cols map[string]int, name string) (float64, error) {
	raw, ok := cell(record, cols, name)
	if !ok || emptyCell(raw) {
		return 0, crerr.Newf("column %q is empty", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, crerr.Wrapf(err, "column %q", name)
	}
	return v, nil
}

func optionalFloat(record []string, cols map[string]int, name string) *float64 {
	raw, ok := cell(record, cols, name)
	if !ok || emptyCell(raw) {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func optionalString(record []string, cols map[string]int, name string) string {
	raw, ok := cell(record, cols, name)
	if !ok || emptyCell(raw) {
		return ""
	}
	return raw
}
