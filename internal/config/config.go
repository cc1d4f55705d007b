package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

// Default analysis thresholds. Each can be overridden through environment
// variables of the same name.
const (
	DefaultMinViewCount        = 100000
	DefaultMinSubscriberCount  = 50000
	DefaultMaxVideosPerChannel = 20
	DefaultMaxResultsPerQuery  = 50
)

// SearchKeywords are the queries used to discover candidate channels and
// trending videos.
var SearchKeywords = []string{
	"artificial intelligence",
	"machine learning",
	"deep learning",
	"AI tutorial",
	"neural networks",
	"ChatGPT",
	"generative AI",
	"AI tools",
	"automation",
	"AI news",
}

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey string
	DBPath        string
	OutputDir     string
	Port          string

	MinViewCount        int64
	MinSubscriberCount  int64
	MaxVideosPerChannel int64
	MaxResultsPerQuery  int64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Get YouTube API key from environment
	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY environment variable is required")
	}

	// Get database path from environment or use default
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %v", err)
		}
		dbPath = filepath.Join(wd, "..", "sqlite", "trendscout.db")
	}

	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "output"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		YouTubeAPIKey:       apiKey,
		DBPath:              dbPath,
		OutputDir:           outputDir,
		Port:                port,
		MinViewCount:        envInt64("MIN_VIEW_COUNT", DefaultMinViewCount),
		MinSubscriberCount:  envInt64("MIN_SUBSCRIBER_COUNT", DefaultMinSubscriberCount),
		MaxVideosPerChannel: envInt64("MAX_VIDEOS_PER_CHANNEL", DefaultMaxVideosPerChannel),
		MaxResultsPerQuery:  envInt64("MAX_RESULTS_PER_QUERY", DefaultMaxResultsPerQuery),
	}, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	return nil
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
