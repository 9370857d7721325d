package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mirrormatch/playprep/internal/config"
	"github.com/mirrormatch/playprep/internal/domain/metadata"
	"github.com/mirrormatch/playprep/internal/domain/play"
	"github.com/mirrormatch/playprep/internal/infrastructure/csvstore"
	"github.com/mirrormatch/playprep/internal/infrastructure/jsonstore"
	"github.com/mirrormatch/playprep/internal/infrastructure/nflverse"
	"github.com/mirrormatch/playprep/internal/infrastructure/repository/postgres"
	"github.com/mirrormatch/playprep/internal/platform/logging"
	"github.com/mirrormatch/playprep/internal/usecase"
)

// RunBuild executes the full pipeline: discover and load tracking weeks,
// join play-by-play metadata, build play records, roll up tendencies, and
// write the output documents. Stages run sequentially; ctx cancels between
// them.
func RunBuild(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	start := time.Now()

	store := csvstore.NewTrackingStore(cfg.TrackingDir, cfg.Season, logger)
	weeks := store.DiscoverWeeks(cfg.WeekFrom, cfg.WeekTo)
	if len(weeks) == 0 {
		logger.WarnContext(ctx, "no tracking weeks available, nothing to do",
			"dir", cfg.TrackingDir,
			"week_from", cfg.WeekFrom,
			"week_to", cfg.WeekTo,
		)
		return nil
	}
	logger.InfoContext(ctx, "tracking weeks discovered", "weeks", weeks)

	input, output, err := store.Load(ctx, weeks)
	if err != nil {
		return fmt.Errorf("load tracking tables: %w", err)
	}
	logger.InfoContext(ctx, "tracking tables loaded",
		"input_rows", len(input.Rows),
		"output_rows", len(output.Rows),
	)

	metaRows, err := loadMetadata(ctx, cfg, logger)
	if err != nil {
		return err
	}
	metaIndex := metadata.Index(metaRows)
	logger.InfoContext(ctx, "play-by-play metadata loaded", "rows", len(metaRows))

	builder := usecase.NewBuilderService(logger, cfg.MaxWorkers)
	plays, err := builder.BuildAll(ctx, input, output, metaIndex)
	if err != nil {
		return fmt.Errorf("build play records: %w", err)
	}
	logger.InfoContext(ctx, "play records built", "plays", len(plays))

	tendencySvc := usecase.NewTendencyService()
	rollup := tendencySvc.Rollup(ctx, plays, cfg.MinTeamPlays)

	doc := usecase.PlaysDocument{
		Plays:      plays,
		Tendencies: rollup,
		Filters:    usecase.DefaultFilterOptions(),
	}
	if err := jsonstore.WriteDocument(cfg.PlaysFile, doc, false); err != nil {
		return fmt.Errorf("write plays document: %w", err)
	}
	if err := jsonstore.WriteDocument(cfg.TendenciesFile, rollup, true); err != nil {
		return fmt.Errorf("write tendencies document: %w", err)
	}

	situational := tendencySvc.Situational(ctx, metaRows, cfg.SituationalTeams)
	if err := jsonstore.WriteDocument(cfg.SituationalFile, situational, true); err != nil {
		return fmt.Errorf("write situational tendencies document: %w", err)
	}

	if cfg.ArchiveEnabled {
		if err := archivePlays(ctx, cfg, logger, plays); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "pipeline finished",
		"plays", len(plays),
		"teams", len(rollup),
		"duration", time.Since(start),
	)
	return nil
}

// RunCompact executes the sampling pipeline against a previously built
// plays document.
func RunCompact(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	var doc usecase.PlaysDocument
	if err := jsonstore.ReadDocument(cfg.CompactInputFile, &doc); err != nil {
		return fmt.Errorf("read plays document: %w", err)
	}

	compactSvc := usecase.NewCompactService(logger, cfg.CompactMinFrames, cfg.CompactMaxPlays)
	compact := compactSvc.Sample(ctx, doc.Plays)

	if err := jsonstore.WriteDocument(cfg.CompactOutputFile, compact, false); err != nil {
		return fmt.Errorf("write compact document: %w", err)
	}

	logger.InfoContext(ctx, "compact document written",
		"path", cfg.CompactOutputFile,
		"plays", len(compact.Plays),
	)
	return nil
}

// loadMetadata reads the play-by-play table, fetching the nflverse export
// first when enabled and the file is absent.
func loadMetadata(ctx context.Context, cfg config.Config, logger *logging.Logger) ([]metadata.Row, error) {
	if _, err := os.Stat(cfg.MetadataFile); err != nil {
		if !cfg.NFLVerseEnabled {
			return nil, fmt.Errorf("play-by-play table %s is missing and NFLVERSE_ENABLED=false", cfg.MetadataFile)
		}
		client := nflverse.NewClient(nflverse.ClientConfig{
			BaseURL: cfg.NFLVerseBaseURL,
			Timeout: cfg.NFLVerseTimeout,
			Logger:  logger,
		})
		if err := client.DownloadPlayByPlay(ctx, cfg.Season, cfg.MetadataFile); err != nil {
			return nil, fmt.Errorf("fetch play-by-play export: %w", err)
		}
	}

	rows, err := csvstore.LoadMetadata(ctx, cfg.MetadataFile)
	if err != nil {
		return nil, fmt.Errorf("load play-by-play table: %w", err)
	}
	return rows, nil
}

func archivePlays(ctx context.Context, cfg config.Config, logger *logging.Logger, plays []play.Play) error {
	db, err := postgres.Connect(ctx, cfg.ArchiveDBURL)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := postgres.NewPlaySummaryRepository(db)
	written, err := repo.UpsertBatch(ctx, plays)
	if err != nil {
		return fmt.Errorf("archive play summaries: %w", err)
	}

	logger.InfoContext(ctx, "play summaries archived", "rows", written)
	return nil
}
