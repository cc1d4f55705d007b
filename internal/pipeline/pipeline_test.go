package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/yt-trendscout/internal/config"
	"github.com/yt-trendscout/internal/models"
)

// fakeSource serves canned channels and videos. Individual methods can be
// overridden per test.
type fakeSource struct {
	channels     []models.Channel
	videos       map[string][]models.Video
	searchErr    error
	statsErr     error
	videoErr     map[string]error
	searchCalls  int
	statsCallIDs []string
}

func (f *fakeSource) SearchChannels(ctx context.Context, query string, maxResults int64) ([]models.Channel, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.channels, nil
}

func (f *fakeSource) GetChannelStatistics(ctx context.Context, channelIDs []string) ([]models.Channel, error) {
	f.statsCallIDs = channelIDs
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.channels, nil
}

func (f *fakeSource) GetChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]models.Video, error) {
	if err, ok := f.videoErr[channelID]; ok {
		return nil, err
	}
	return f.videos[channelID], nil
}

func (f *fakeSource) SearchVideos(ctx context.Context, query string, maxResults int64) ([]models.Video, error) {
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		MinViewCount:        1000,
		MinSubscriberCount:  50000,
		MaxVideosPerChannel: 20,
	}
}

func testChannel(id string, subscribers int64) models.Channel {
	return models.Channel{
		ID:          id,
		Title:       "Channel " + id,
		Description: "machine learning and artificial intelligence tutorials",
		PublishedAt: "2023-01-01T00:00:00Z",
		Subscribers: subscribers,
		VideoCount:  100,
		ViewCount:   subscribers * 20,
	}
}

func testVideo(id string, views int64) models.Video {
	return models.Video{
		ID:          id,
		Title:       "ChatGPT tutorial #AI",
		Description: "a walkthrough #MachineLearning",
		PublishedAt: "2024-05-01T00:00:00Z",
		ViewCount:   views,
		LikeCount:   views / 20,
	}
}

func newTestPipeline(src Source) *Pipeline {
	return New(src, testConfig(), rand.New(rand.NewSource(1)))
}

func TestFindInfluencers(t *testing.T) {
	src := &fakeSource{
		channels: []models.Channel{
			testChannel("big", 500000),
			testChannel("small", 100),
		},
	}
	got, err := newTestPipeline(src).FindInfluencers(context.Background(), 10)
	if err != nil {
		t.Fatalf("FindInfluencers: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d influencers, want 1", len(got))
	}
	if got[0].ID != "big" {
		t.Errorf("got influencer %q, want big", got[0].ID)
	}
	if src.searchCalls != len(config.SearchKeywords) {
		t.Errorf("searched %d times, want once per keyword (%d)", src.searchCalls, len(config.SearchKeywords))
	}
	// Duplicate discoveries across keywords collapse before the stats fetch.
	if len(src.statsCallIDs) != 2 {
		t.Errorf("fetched stats for %d channels, want 2 unique", len(src.statsCallIDs))
	}
}

func TestFindInfluencersSearchFailuresAreSkipped(t *testing.T) {
	src := &fakeSource{searchErr: errors.New("quota exceeded")}
	got, err := newTestPipeline(src).FindInfluencers(context.Background(), 10)
	if err != nil {
		t.Fatalf("FindInfluencers: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d influencers, want 0", len(got))
	}
}

func TestFindInfluencersStatsErrorIsFatal(t *testing.T) {
	src := &fakeSource{
		channels: []models.Channel{testChannel("a", 500000)},
		statsErr: errors.New("backend unavailable"),
	}
	if _, err := newTestPipeline(src).FindInfluencers(context.Background(), 10); err == nil {
		t.Fatal("expected error from stats fetch")
	}
}

func TestAnalyzeVideosContinuesPastFetchErrors(t *testing.T) {
	influencers := []models.Channel{
		testChannel("ok", 500000),
		testChannel("broken", 500000),
	}
	src := &fakeSource{
		videos: map[string][]models.Video{
			"ok": {testVideo("v1", 50000), testVideo("v2", 500)},
		},
		videoErr: map[string]error{"broken": errors.New("playlist gone")},
	}

	got := newTestPipeline(src).AnalyzeVideos(context.Background(), influencers)
	// v2 falls below the view threshold; the broken channel contributes
	// nothing.
	if len(got) != 1 {
		t.Fatalf("got %d videos, want 1", len(got))
	}
	if got[0].ID != "v1" {
		t.Errorf("got video %q, want v1", got[0].ID)
	}
	if got[0].ChannelSubscriberCount != 500000 {
		t.Errorf("ChannelSubscriberCount = %d, want snapshot of owning channel", got[0].ChannelSubscriberCount)
	}
	if got[0].PerformanceScore <= 0 {
		t.Errorf("PerformanceScore = %v, want positive", got[0].PerformanceScore)
	}
}

func TestRunNoInfluencers(t *testing.T) {
	src := &fakeSource{channels: []models.Channel{testChannel("tiny", 10)}}
	_, err := newTestPipeline(src).Run(context.Background(), DefaultOptions)
	if !errors.Is(err, ErrNoInfluencers) {
		t.Fatalf("got %v, want ErrNoInfluencers", err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	src := &fakeSource{
		channels: []models.Channel{testChannel("big", 500000)},
		videos: map[string][]models.Video{
			"big": {testVideo("v1", 200000), testVideo("v2", 150000)},
		},
	}

	result, err := newTestPipeline(src).Run(context.Background(), Options{
		InfluencerLimit: 5,
		NumIdeas:        10,
		NumScripts:      4,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.RunID == "" {
		t.Error("empty run ID")
	}
	if len(result.Influencers) != 1 {
		t.Errorf("got %d influencers, want 1", len(result.Influencers))
	}
	if len(result.Videos) != 2 {
		t.Errorf("got %d videos, want 2", len(result.Videos))
	}
	if result.Topics.Count("chatgpt") != 2 {
		t.Errorf("chatgpt topic count = %d, want 2", result.Topics.Count("chatgpt"))
	}
	if len(result.Hashtags) == 0 {
		t.Error("expected hashtags from video text")
	}
	if len(result.Ideas) != 10 {
		t.Errorf("got %d ideas, want 10", len(result.Ideas))
	}
	if len(result.Scripts) != 4 {
		t.Errorf("got %d scripts, want 4", len(result.Scripts))
	}
	if result.CreatedAt.IsZero() {
		t.Error("zero CreatedAt")
	}
}
