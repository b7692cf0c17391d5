package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/2beens/titanlift/internal/rewards"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost     string        `toml:"postgres_host"`
	PostgresPort     string        `toml:"postgres_port"`
	PostgresDBName   string        `toml:"postgres_db_name"`
	PostgresUser     string        `toml:"postgres_user"`
	PostgresMaxConns int32         `toml:"postgres_max_conns"`
	QueryTimeout     time.Duration `toml:"query_timeout"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// write endpoints, per client ip
	WriteRequestsPerMinute int `toml:"write_requests_per_minute"`
	// caching
	LeaderboardCacheTTL time.Duration `toml:"leaderboard_cache_ttl"`
	ProfileCacheTTL     time.Duration `toml:"profile_cache_ttl"`
	ProfileCacheSizeMB  int           `toml:"profile_cache_size_mb"`

	Rewards RewardsConfig `toml:"rewards"`
}

// RewardsConfig overrides the reward policy, zero fields keep the default.
type RewardsConfig struct {
	DefaultBodyWeightKg     float64 `toml:"default_body_weight_kg"`
	FallbackDurationMinutes float64 `toml:"fallback_duration_minutes"`
	FallbackIntensity       float64 `toml:"fallback_intensity"`
	BaseMET                 float64 `toml:"base_met"`
	MaxMET                  float64 `toml:"max_met"`
	RepPRMinReps            int     `toml:"rep_pr_min_reps"`
	LeaderboardSize         int     `toml:"leaderboard_size"`
	ActivityLookbackDays    int     `toml:"activity_lookback_days"`
}

func (rc RewardsConfig) Policy() rewards.Policy {
	p := rewards.DefaultPolicy()
	setFloat := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	setInt := func(dst *int, v int) {
		if v > 0 {
			*dst = v
		}
	}

	setFloat(&p.DefaultBodyWeightKg, rc.DefaultBodyWeightKg)
	setFloat(&p.FallbackDurationMinutes, rc.FallbackDurationMinutes)
	setFloat(&p.FallbackIntensity, rc.FallbackIntensity)
	setFloat(&p.BaseMET, rc.BaseMET)
	setFloat(&p.MaxMET, rc.MaxMET)
	setInt(&p.RepPRMinReps, rc.RepPRMinReps)
	setInt(&p.LeaderboardSize, rc.LeaderboardSize)
	setInt(&p.ActivityLookbackDays, rc.ActivityLookbackDays)

	return p
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env, with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config [%s]: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.QueryTimeout == 0 {
		c.QueryTimeout = 5 * time.Second
	}
	if c.WriteRequestsPerMinute == 0 {
		c.WriteRequestsPerMinute = 120
	}
	if c.LeaderboardCacheTTL == 0 {
		c.LeaderboardCacheTTL = 30 * time.Second
	}
	if c.ProfileCacheTTL == 0 {
		c.ProfileCacheTTL = 15 * time.Second
	}
	if c.ProfileCacheSizeMB == 0 {
		c.ProfileCacheSizeMB = 16
	}
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("port not set")
	}
	if c.PostgresHost == "" || c.PostgresDBName == "" {
		return fmt.Errorf("postgres host and db name must be set")
	}
	if c.RedisHost == "" {
		return fmt.Errorf("redis host not set")
	}
	return nil
}
