// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	YouTube  YouTubeConfig
	Viral    ViralConfig
	Keywords KeywordConfig
}

// ServerConfig contains HTTP server configuration.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
	APIKeys         []string
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string
	File  string
}

// YouTubeConfig contains Data API client configuration.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type YouTubeConfig struct {
	APIKey            string
	RegionCode        string
	MaxResults        int
	QuotaDailyLimit   int
	QuotaThresholdPct int
}

// ViralConfig contains the scoring thresholds and channel heuristics.
// Each threshold is the raw metric value that earns the full 25-point
// allocation for its sub-score. The channel constants are heuristics
// carried over from operational tuning; they are configuration rather
// than literals so they can be adjusted without touching the scoring
// structure.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type ViralConfig struct {
	ViewsPerDayThreshold  float64
	LikeRatioThreshold    float64
	CommentRatioThreshold float64
	EngagementThreshold   float64
	ExpectedViewShare     float64 // fraction of subscribers expected to view
	BonusSlope            float64
	BonusCap              float64
	ViralCutoff           float64
}

// KeywordConfig contains the keyword pipeline caps and source weights.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type KeywordConfig struct {
	TitleKeywords       int
	DescriptionKeywords int
	TopTags             int
	CombinedKeywords    int
	TitleWeight         int
	DescriptionWeight   int
	TagWeight           int
	MinTokenLength      int
	MaxTokenLength      int
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set defaults
	setDefaults()

	// Read environment variables
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// Server
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdowntimeout", 30*time.Second)
	viper.SetDefault("server.apikeys", []string{})

	// YouTube
	viper.SetDefault("youtube.apikey", "")
	viper.SetDefault("youtube.regioncode", "KR")
	viper.SetDefault("youtube.maxresults", 50)
	viper.SetDefault("youtube.quotadailylimit", 10000)
	viper.SetDefault("youtube.quotathresholdpct", 90)

	// Viral scoring
	viper.SetDefault("viral.viewsperdaythreshold", 10000.0)
	viper.SetDefault("viral.likeratiothreshold", 0.02)
	viper.SetDefault("viral.commentratiothreshold", 0.001)
	viper.SetDefault("viral.engagementthreshold", 50.0)
	viper.SetDefault("viral.expectedviewshare", 0.1)
	viper.SetDefault("viral.bonusslope", 5.0)
	viper.SetDefault("viral.bonuscap", 20.0)
	viper.SetDefault("viral.viralcutoff", 70.0)

	// Keywords
	viper.SetDefault("keywords.titlekeywords", 30)
	viper.SetDefault("keywords.descriptionkeywords", 30)
	viper.SetDefault("keywords.toptags", 20)
	viper.SetDefault("keywords.combinedkeywords", 50)
	viper.SetDefault("keywords.titleweight", 3)
	viper.SetDefault("keywords.descriptionweight", 1)
	viper.SetDefault("keywords.tagweight", 2)
	viper.SetDefault("keywords.mintokenlength", 2)
	viper.SetDefault("keywords.maxtokenlength", 20)

	// Logging
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
}
