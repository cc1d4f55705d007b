// Command analyze runs the influencer discovery and content generation
// pipeline from the command line and exports the results as CSV files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/yt-trendscout/internal/api"
	"github.com/yt-trendscout/internal/config"
	"github.com/yt-trendscout/internal/export"
	"github.com/yt-trendscout/internal/generator"
	"github.com/yt-trendscout/internal/models"
	"github.com/yt-trendscout/internal/pipeline"
)

func main() {
	quick := flag.Bool("quick", false, "run quick analysis (5 influencers, 10 ideas)")
	search := flag.String("search", "", "search for videos on a specific topic")
	numVideos := flag.Int("videos", 10, "number of videos to fetch for -search")
	numIdeas := flag.Int("ideas", 0, "generate N content ideas from sample trend data")
	numInfluencers := flag.Int("influencers", 5, "number of influencers for quick analysis")
	checkAPI := flag.Bool("check-api", false, "check whether the YouTube API is reachable")
	keywords := flag.Bool("keywords", false, "list the configured search keywords")
	showConfig := flag.Bool("config", false, "show the current configuration")
	schedule := flag.String("schedule", "", "cron expression for recurring full runs (e.g. \"0 6 * * *\")")
	seed := flag.Int64("seed", 0, "random seed for reproducible idea generation (0 = time-based)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	rng := newRand(*seed)

	// Actions that need no API access come first.
	switch {
	case *keywords:
		listKeywords()
		return
	case *numIdeas > 0:
		generateIdeasOnly(rng, *numIdeas)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *showConfig {
		printConfig(cfg)
		return
	}

	ctx := context.Background()
	client, err := api.NewClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize YouTube client: %v", err)
	}

	switch {
	case *checkAPI:
		checkAPIStatus(ctx, client)
	case *search != "":
		searchTopic(ctx, client, *search, int64(*numVideos))
	case *schedule != "":
		runScheduled(ctx, client, cfg, rng, *schedule)
	case *quick:
		runAnalysis(ctx, client, cfg, rng, pipeline.Options{
			InfluencerLimit: *numInfluencers,
			NumIdeas:        10,
			NumScripts:      5,
		})
	default:
		runAnalysis(ctx, client, cfg, rng, pipeline.DefaultOptions)
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// runAnalysis executes the full pipeline once and exports all artifacts.
func runAnalysis(ctx context.Context, client *api.Client, cfg *config.Config, rng *rand.Rand, opts pipeline.Options) {
	result, err := pipeline.New(client, cfg, rng).Run(ctx, opts)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	writer, err := export.NewWriter(cfg.OutputDir)
	if err != nil {
		log.Fatalf("Failed to prepare output directory: %v", err)
	}
	if err := writer.WriteAll(result); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	fmt.Printf("Analysis complete: run %s\n", result.RunID)
	fmt.Printf("  Influencers: %d\n", len(result.Influencers))
	fmt.Printf("  High-performing videos: %d\n", len(result.Videos))
	fmt.Printf("  Trending topics: %d\n", len(result.Topics))
	fmt.Printf("  Content ideas: %d\n", len(result.Ideas))
	fmt.Printf("  Scripts: %d\n", len(result.Scripts))
	fmt.Printf("All files saved to: %s/\n", cfg.OutputDir)

	printTopIdeas(result.Ideas, 3)
}

// runScheduled runs the full pipeline on a cron schedule until interrupted.
func runScheduled(ctx context.Context, client *api.Client, cfg *config.Config, rng *rand.Rand, spec string) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		log.Printf("Scheduled analysis starting")
		runAnalysis(ctx, client, cfg, rng, pipeline.DefaultOptions)
	})
	if err != nil {
		log.Fatalf("Invalid cron expression %q: %v", spec, err)
	}

	log.Printf("Scheduling analysis runs with %q", spec)
	c.Run()
}

// searchTopic searches videos for one topic and prints them.
func searchTopic(ctx context.Context, client *api.Client, topic string, maxResults int64) {
	videos, err := client.SearchVideos(ctx, topic, maxResults)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}
	if len(videos) == 0 {
		fmt.Println("No videos found")
		return
	}

	fmt.Printf("Found %d videos:\n", len(videos))
	for i, v := range videos {
		fmt.Printf("  %d. %s\n", i+1, v.Title)
		fmt.Printf("     Channel: %s\n", v.ChannelTitle)
		fmt.Printf("     Views: %d\n", v.ViewCount)
		fmt.Printf("     URL: %s\n", v.URL)
	}
}

// generateIdeasOnly produces ideas from fixed sample trend data, with no
// API access.
func generateIdeasOnly(rng *rand.Rand, count int) {
	topics := models.TrendTable{
		{Topic: "chatgpt", Count: 100},
		{Topic: "ai", Count: 95},
		{Topic: "machine learning", Count: 80},
		{Topic: "python", Count: 75},
		{Topic: "tutorial", Count: 70},
		{Topic: "automation", Count: 65},
	}
	hashtags := []string{"#AI", "#MachineLearning", "#Python", "#Tech", "#Programming"}

	ideas := generator.New(rng).GenerateIdeas(topics, hashtags, count)

	fmt.Printf("Generated %d content ideas:\n", len(ideas))
	for i, idea := range ideas {
		fmt.Printf("  %2d. %s\n", i+1, idea.Title)
		fmt.Printf("      Category: %s | Score: %.0f\n", idea.Category, idea.TrendScore)
	}
}

// checkAPIStatus performs a minimal search to verify API access.
func checkAPIStatus(ctx context.Context, client *api.Client) {
	videos, err := client.SearchVideos(ctx, "AI", 1)
	if err != nil {
		log.Fatalf("API error: %v", err)
	}
	if len(videos) == 0 {
		fmt.Println("API responded but no results found")
		os.Exit(1)
	}
	fmt.Println("YouTube API is working")
}

func listKeywords() {
	fmt.Println("Search keywords for analysis:")
	for i, kw := range config.SearchKeywords {
		fmt.Printf("  %2d. %s\n", i+1, kw)
	}
	fmt.Printf("Total keywords: %d\n", len(config.SearchKeywords))
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Printf("  Min view count: %d\n", cfg.MinViewCount)
	fmt.Printf("  Min subscriber count: %d\n", cfg.MinSubscriberCount)
	fmt.Printf("  Max videos per channel: %d\n", cfg.MaxVideosPerChannel)
	fmt.Printf("  Search keywords: %d\n", len(config.SearchKeywords))
	fmt.Printf("  Output directory: %s\n", cfg.OutputDir)
}

func printTopIdeas(ideas []models.ContentIdea, n int) {
	if len(ideas) == 0 {
		return
	}
	if n > len(ideas) {
		n = len(ideas)
	}
	fmt.Printf("Top %d content ideas:\n", n)
	for i, idea := range ideas[:n] {
		fmt.Printf("  %d. %s\n", i+1, idea.Title)
		fmt.Printf("     Category: %s | Score: %.0f\n", idea.Category, idea.TrendScore)
	}
}
