package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS   CORSConfig
	Log    LogConfig
	Grid   GridConfig
	Rooms  RoomsConfig
	Seed   SeedConfig
	Export ExportConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// GridConfig describes the weekly board geometry shown to clients. The
// conflict core ignores it; it is display configuration only.
type GridConfig struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
}

// RoomsConfig controls how many studios exist and how many are active drop
// targets by default.
type RoomsConfig struct {
	Count        int
	VisibleCount int
}

// SeedConfig toggles loading of the sample studio dataset on boot.
type SeedConfig struct {
	Enabled bool
}

// ExportConfig gates the schedule export endpoints.
type ExportConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Grid = GridConfig{
		StartHour:   v.GetInt("GRID_START_HOUR"),
		EndHour:     v.GetInt("GRID_END_HOUR"),
		SlotMinutes: v.GetInt("GRID_SLOT_MINUTES"),
	}

	cfg.Rooms = RoomsConfig{
		Count:        v.GetInt("ROOM_COUNT"),
		VisibleCount: v.GetInt("ROOM_VISIBLE_COUNT"),
	}

	cfg.Seed = SeedConfig{Enabled: v.GetBool("ENABLE_SEED_DATA")}
	cfg.Export = ExportConfig{Enabled: v.GetBool("ENABLE_EXPORT")}

	if cfg.Rooms.VisibleCount > cfg.Rooms.Count {
		cfg.Rooms.VisibleCount = cfg.Rooms.Count
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("GRID_START_HOUR", 9)
	v.SetDefault("GRID_END_HOUR", 21)
	v.SetDefault("GRID_SLOT_MINUTES", 30)

	v.SetDefault("ROOM_COUNT", 8)
	v.SetDefault("ROOM_VISIBLE_COUNT", 4)

	v.SetDefault("ENABLE_SEED_DATA", true)
	v.SetDefault("ENABLE_EXPORT", true)
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
