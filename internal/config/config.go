package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string `mapstructure:"-"`        // Telegram API token loaded from environment
	DB               DB     `mapstructure:"database"` // database configuration section
	Game             Game   `mapstructure:"game"`     // game configuration section
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment, optional
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Game contains presentation settings of the quiz.
type Game struct {
	AnswerDelay time.Duration `mapstructure:"answer_delay"` // pause between a tap and the result
	Seed        int64         `mapstructure:"seed"`         // random seed, 0 seeds from the clock
}

// Enabled reports whether rounds should be kept in PostgreSQL.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("game.answer_delay", "1s")
	v.SetDefault("game.seed", 0)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}

	cfg.DB.URL = v.GetString("database_url")

	if cfg.Game.AnswerDelay < 0 {
		return nil, fmt.Errorf("game.answer_delay must not be negative, got %s", cfg.Game.AnswerDelay)
	}

	return &cfg, nil
}
