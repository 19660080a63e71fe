package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Env:               "development",
		LeagueID:          12345,
		Season:            2026,
		TopPlayersPerTeam: 5,
		HistogramBins:     10,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "missing league id",
			mutate:  func(c *Config) { c.LeagueID = 0 },
			wantErr: "LEAGUE_ID",
		},
		{
			name:    "bad season",
			mutate:  func(c *Config) { c.Season = -1 },
			wantErr: "SEASON",
		},
		{
			name:    "zero top players",
			mutate:  func(c *Config) { c.TopPlayersPerTeam = 0 },
			wantErr: "TOP_PLAYERS_PER_TEAM",
		},
		{
			name:    "zero histogram bins",
			mutate:  func(c *Config) { c.HistogramBins = 0 },
			wantErr: "HISTOGRAM_BINS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t,
		[]string{"http://a.com", "http://b.com"},
		parseOrigins("http://a.com, http://b.com"))
	assert.Equal(t,
		[]string{"http://a.com"},
		parseOrigins(" http://a.com ,, "))
	assert.Empty(t, parseOrigins("  ,  "))
}

func TestEnvHelpers(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Env = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
