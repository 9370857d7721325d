package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Season != 2023 {
		t.Fatalf("unexpected default season: %d", cfg.Season)
	}
	if cfg.TrackingDir != "./data/train" {
		t.Fatalf("unexpected default tracking dir: %q", cfg.TrackingDir)
	}
	if cfg.WeekFrom != 1 || cfg.WeekTo != 5 {
		t.Fatalf("unexpected default week range: %d-%d", cfg.WeekFrom, cfg.WeekTo)
	}
	if cfg.MetadataFile != "./data/play_by_play_2023.csv" {
		t.Fatalf("unexpected default metadata file: %q", cfg.MetadataFile)
	}
	if cfg.PlaysFile != "./public/plays_filtered.json" {
		t.Fatalf("unexpected default plays file: %q", cfg.PlaysFile)
	}
	if cfg.CompactInputFile != cfg.PlaysFile {
		t.Fatalf("compact input should default to the plays file, got %q", cfg.CompactInputFile)
	}
	if cfg.CompactMinFrames != 10 || cfg.CompactMaxPlays != 100 {
		t.Fatalf("unexpected compact defaults: minFrames=%d maxPlays=%d", cfg.CompactMinFrames, cfg.CompactMaxPlays)
	}
	if cfg.MaxWorkers != 4 {
		t.Fatalf("unexpected default max workers: %d", cfg.MaxWorkers)
	}
	if cfg.MinTeamPlays != 10 {
		t.Fatalf("unexpected default min team plays: %d", cfg.MinTeamPlays)
	}
	if len(cfg.SituationalTeams) != 2 || cfg.SituationalTeams[0] != "KC" || cfg.SituationalTeams[1] != "PHI" {
		t.Fatalf("unexpected default situational teams: %+v", cfg.SituationalTeams)
	}
	if cfg.NFLVerseEnabled {
		t.Fatalf("expected NFLVerseEnabled=false by default")
	}
	if cfg.NFLVerseTimeout != 120*time.Second {
		t.Fatalf("unexpected default nflverse timeout: %s", cfg.NFLVerseTimeout)
	}
	if cfg.ArchiveEnabled {
		t.Fatalf("expected ArchiveEnabled=false by default")
	}
}

func TestLoad_SeasonFollowsMetadataDefault(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SEASON", "2021")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MetadataFile != "./data/play_by_play_2021.csv" {
		t.Fatalf("metadata default should track the season, got %q", cfg.MetadataFile)
	}
	if cfg.TendenciesFile != "./public/tendencies_2021.json" {
		t.Fatalf("tendencies default should track the season, got %q", cfg.TendenciesFile)
	}
}

func TestLoad_WeekRangeValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WEEK_FROM", "4")
	t.Setenv("WEEK_TO", "2")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when WEEK_TO < WEEK_FROM")
	}
}

func TestLoad_WeekParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("invalid integer", func(t *testing.T) {
		t.Setenv("WEEK_FROM", "one")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-numeric WEEK_FROM")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		t.Setenv("WEEK_FROM", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for WEEK_FROM below 1")
		}
	})
}

func TestLoad_ArchiveRequiresDBURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ARCHIVE_ENABLED", "true")
	t.Setenv("ARCHIVE_DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ARCHIVE_ENABLED=true without ARCHIVE_DB_URL")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "playprep-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "playprep-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_SituationalTeamsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SITUATIONAL_TEAMS", " SF , DAL ,BUF ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.SituationalTeams) != 3 {
		t.Fatalf("unexpected situational teams length: %d", len(cfg.SituationalTeams))
	}
	if cfg.SituationalTeams[0] != "SF" || cfg.SituationalTeams[1] != "DAL" || cfg.SituationalTeams[2] != "BUF" {
		t.Fatalf("unexpected situational teams: %+v", cfg.SituationalTeams)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"WARN":    "warn",
		"warning": "warn",
		"error":   "error",
		"info":    "info",
		"bogus":   "info",
	}
	for in, want := range cases {
		if got := parseLogLevel(in).String(); got != want {
			t.Fatalf("parseLogLevel(%q) = %q, want %q", in, got, want)
		}
	}
}
