package analysis

import (
	"testing"
	"time"

	"github.com/yt-trendscout/internal/models"
)

func aiChannel(id string, subscribers int64) models.Channel {
	return models.Channel{
		ID:          id,
		Title:       "Channel " + id,
		Description: "machine learning and data science tutorials",
		PublishedAt: "2023-01-01T00:00:00Z",
		Subscribers: subscribers,
		VideoCount:  100,
		ViewCount:   subscribers * 10,
	}
}

func TestDedupeChannels(t *testing.T) {
	first := aiChannel("a", 100000)
	first.Title = "First"
	dup := aiChannel("a", 999999)
	dup.Title = "Duplicate"

	got := DedupeChannels([]models.Channel{first, aiChannel("b", 50000), dup})
	if len(got) != 2 {
		t.Fatalf("got %d channels, want 2", len(got))
	}
	if got[0].Title != "First" {
		t.Errorf("dedupe kept %q, want first occurrence", got[0].Title)
	}
	if got[1].ID != "b" {
		t.Errorf("got[1].ID = %q, want %q", got[1].ID, "b")
	}
}

func TestDedupeChannelsEmpty(t *testing.T) {
	if got := DedupeChannels(nil); len(got) != 0 {
		t.Errorf("got %d channels from nil input, want 0", len(got))
	}
}

func TestRankInfluencersFilters(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tooSmall := aiChannel("small", 10000)
	notAI := models.Channel{
		ID:          "cooking",
		Title:       "Best Recipes",
		Description: "home cooking",
		PublishedAt: "2023-01-01T00:00:00Z",
		Subscribers: 500000,
	}
	keeper := aiChannel("big", 200000)

	got := RankInfluencers([]models.Channel{tooSmall, notAI, keeper}, 50000, 10, now)
	if len(got) != 1 {
		t.Fatalf("got %d influencers, want 1", len(got))
	}
	if got[0].ID != "big" {
		t.Errorf("got[0].ID = %q, want %q", got[0].ID, "big")
	}
	if got[0].GrowthScore == 0 {
		t.Error("expected growth score to be filled in")
	}
	if got[0].AIRelevanceScore == 0 {
		t.Error("expected relevance score to be filled in")
	}
}

func TestRankInfluencersOrdering(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	channels := []models.Channel{
		aiChannel("mid", 100000),
		aiChannel("top", 900000),
		aiChannel("low", 60000),
	}
	got := RankInfluencers(channels, 50000, 10, now)
	if len(got) != 3 {
		t.Fatalf("got %d influencers, want 3", len(got))
	}
	wantOrder := []string{"top", "mid", "low"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestRankInfluencersStableTies(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Identical stats produce identical composite scores, so first-seen
	// order must survive the sort.
	channels := []models.Channel{
		aiChannel("first", 100000),
		aiChannel("second", 100000),
		aiChannel("third", 100000),
	}
	got := RankInfluencers(channels, 50000, 10, now)
	wantOrder := []string{"first", "second", "third"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestRankInfluencersLimit(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	channels := []models.Channel{
		aiChannel("a", 100000),
		aiChannel("b", 200000),
		aiChannel("c", 300000),
	}
	got := RankInfluencers(channels, 50000, 2, now)
	if len(got) != 2 {
		t.Fatalf("got %d influencers, want 2", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("got order %q, %q; want c, b", got[0].ID, got[1].ID)
	}
}

func TestEnrichVideos(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ch := models.Channel{Subscribers: 100000, ViewCount: 5000000}
	videos := []models.Video{
		{ID: "v1", ViewCount: 50000, LikeCount: 1000, PublishedAt: "2024-05-01T00:00:00Z"},
	}

	got := EnrichVideos(videos, ch, now)
	if len(got) != 1 {
		t.Fatalf("got %d videos, want 1", len(got))
	}
	v := got[0]
	if v.ChannelSubscriberCount != 100000 {
		t.Errorf("ChannelSubscriberCount = %d, want 100000", v.ChannelSubscriberCount)
	}
	if v.ChannelTotalViews != 5000000 {
		t.Errorf("ChannelTotalViews = %d, want 5000000", v.ChannelTotalViews)
	}
	if v.EngagementRate != 2.0 {
		t.Errorf("EngagementRate = %v, want 2.0", v.EngagementRate)
	}
	if v.PerformanceScore <= 0 {
		t.Errorf("PerformanceScore = %v, want > 0", v.PerformanceScore)
	}
}

func TestRankVideos(t *testing.T) {
	videos := []models.Video{
		{ID: "low", ViewCount: 200000, PerformanceScore: 100},
		{ID: "filtered", ViewCount: 5000, PerformanceScore: 9999},
		{ID: "high", ViewCount: 300000, PerformanceScore: 800},
	}
	got := RankVideos(videos, 100000)
	if len(got) != 2 {
		t.Fatalf("got %d videos, want 2", len(got))
	}
	if got[0].ID != "high" || got[1].ID != "low" {
		t.Errorf("got order %q, %q; want high, low", got[0].ID, got[1].ID)
	}
}
