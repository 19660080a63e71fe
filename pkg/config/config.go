package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// ESPN league
	LeagueID int    `mapstructure:"LEAGUE_ID"`
	Season   int    `mapstructure:"SEASON"`
	ESPNS2   string `mapstructure:"ESPN_S2"`
	SWID     string `mapstructure:"SWID"`

	// Chart shaping
	TopPlayersPerTeam int `mapstructure:"TOP_PLAYERS_PER_TEAM"`
	HistogramBins     int `mapstructure:"HISTOGRAM_BINS"`

	// Static output (generate mode)
	OutputDir      string `mapstructure:"OUTPUT_DIR"`
	OutputFilename string `mapstructure:"OUTPUT_FILENAME"`

	// External API behavior
	ExternalAPITimeout      time.Duration `mapstructure:"EXTERNAL_API_TIMEOUT"`
	ESPNRateLimit           int           `mapstructure:"ESPN_RATE_LIMIT"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`

	// Background refresh (server mode)
	RefreshInterval string `mapstructure:"REFRESH_INTERVAL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("LEAGUE_ID", 0)
	viper.SetDefault("SEASON", time.Now().Year())
	viper.SetDefault("ESPN_S2", "") // empty is fine for public leagues
	viper.SetDefault("SWID", "")
	viper.SetDefault("TOP_PLAYERS_PER_TEAM", 5)
	viper.SetDefault("HISTOGRAM_BINS", 10)
	viper.SetDefault("OUTPUT_DIR", "output")
	viper.SetDefault("OUTPUT_FILENAME", "league_stats.html")
	viper.SetDefault("EXTERNAL_API_TIMEOUT", "10s")
	viper.SetDefault("ESPN_RATE_LIMIT", 10) // requests per second
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("REFRESH_INTERVAL", "2h")

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = parseOrigins(corsStr)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// parseOrigins splits a comma-separated origin list, trimming
// whitespace so "http://a.com, http://b.com" matches both origins.
func parseOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// Validate rejects values the aggregation pipeline cannot work with.
func (c *Config) Validate() error {
	if c.LeagueID <= 0 {
		return fmt.Errorf("LEAGUE_ID must be set to a positive league identifier")
	}
	if c.Season <= 0 {
		return fmt.Errorf("SEASON must be a positive year")
	}
	if c.TopPlayersPerTeam < 1 {
		return fmt.Errorf("TOP_PLAYERS_PER_TEAM must be at least 1, got %d", c.TopPlayersPerTeam)
	}
	if c.HistogramBins < 1 {
		return fmt.Errorf("HISTOGRAM_BINS must be at least 1, got %d", c.HistogramBins)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
