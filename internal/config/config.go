package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mirrormatch/playprep/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the batch binaries. Every input
// and output path is explicit here; nothing reads module-level constants.
type Config struct {
	AppEnv         string `validate:"oneof=dev stage prod"`
	ServiceName    string `validate:"required"`
	ServiceVersion string
	LogLevel       logging.Level `validate:"-"`

	Season      int    `validate:"min=1999,max=2100"`
	TrackingDir string `validate:"required"`
	WeekFrom    int    `validate:"min=1,max=22"`
	WeekTo      int    `validate:"min=1,max=22,gtefield=WeekFrom"`

	MetadataFile    string `validate:"required"`
	PlaysFile       string `validate:"required"`
	TendenciesFile  string `validate:"required"`
	SituationalFile string `validate:"required"`

	CompactInputFile  string `validate:"required"`
	CompactOutputFile string `validate:"required"`
	CompactMinFrames  int    `validate:"min=0"`
	CompactMaxPlays   int    `validate:"min=1"`

	MaxWorkers       int      `validate:"min=1"`
	MinTeamPlays     int      `validate:"min=1"`
	SituationalTeams []string `validate:"min=1,dive,required"`

	NFLVerseEnabled bool
	NFLVerseBaseURL string        `validate:"required_if=NFLVerseEnabled true,omitempty,url"`
	NFLVerseTimeout time.Duration `validate:"min=0"`

	ArchiveEnabled bool
	ArchiveDBURL   string `validate:"required_if=ArchiveEnabled true"`

	PyroscopeEnabled       bool
	PyroscopeServerAddress string `validate:"required_if=PyroscopeEnabled true"`
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration `validate:"min=0"`
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	season, err := getEnvAsInt("SEASON", 2023)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEASON: %w", err)
	}

	weekFrom, err := getEnvAsInt("WEEK_FROM", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse WEEK_FROM: %w", err)
	}
	weekTo, err := getEnvAsInt("WEEK_TO", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse WEEK_TO: %w", err)
	}

	maxWorkers, err := getEnvAsInt("MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_WORKERS: %w", err)
	}
	minTeamPlays, err := getEnvAsInt("MIN_TEAM_PLAYS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse MIN_TEAM_PLAYS: %w", err)
	}

	compactMinFrames, err := getEnvAsInt("COMPACT_MIN_FRAMES", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse COMPACT_MIN_FRAMES: %w", err)
	}
	compactMaxPlays, err := getEnvAsInt("COMPACT_MAX_PLAYS", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse COMPACT_MAX_PLAYS: %w", err)
	}

	nflverseEnabled, err := strconv.ParseBool(getEnv("NFLVERSE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NFLVERSE_ENABLED: %w", err)
	}
	nflverseTimeout, err := time.ParseDuration(getEnv("NFLVERSE_TIMEOUT", "120s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NFLVERSE_TIMEOUT: %w", err)
	}

	archiveEnabled, err := strconv.ParseBool(getEnv("ARCHIVE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ARCHIVE_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}

	playsFile := getEnv("PLAYS_FILE", "./public/plays_filtered.json")

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "playprep"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		Season:      season,
		TrackingDir: getEnv("TRACKING_DIR", "./data/train"),
		WeekFrom:    weekFrom,
		WeekTo:      weekTo,

		MetadataFile:    getEnv("METADATA_FILE", fmt.Sprintf("./data/play_by_play_%d.csv", season)),
		PlaysFile:       playsFile,
		TendenciesFile:  getEnv("TENDENCIES_FILE", fmt.Sprintf("./public/tendencies_%d.json", season)),
		SituationalFile: getEnv("SITUATIONAL_FILE", "./public/tendencies.json"),

		CompactInputFile:  getEnv("COMPACT_INPUT_FILE", playsFile),
		CompactOutputFile: getEnv("COMPACT_OUTPUT_FILE", "./public/plays.json"),
		CompactMinFrames:  compactMinFrames,
		CompactMaxPlays:   compactMaxPlays,

		MaxWorkers:       maxWorkers,
		MinTeamPlays:     minTeamPlays,
		SituationalTeams: splitCSV(getEnv("SITUATIONAL_TEAMS", "KC,PHI")),

		NFLVerseEnabled: nflverseEnabled,
		NFLVerseBaseURL: strings.TrimSpace(getEnv("NFLVERSE_BASE_URL", "https://github.com/nflverse/nflverse-data/releases/download")),
		NFLVerseTimeout: nflverseTimeout,

		ArchiveEnabled: archiveEnabled,
		ArchiveDBURL:   strings.TrimSpace(getEnv("ARCHIVE_DB_URL", "")),

		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
