package analysis

import (
	"sort"
	"time"

	"github.com/yt-trendscout/internal/models"
)

// Composite ranking weights for influencer ordering.
const (
	subscriberWeight = 0.4
	growthWeight     = 0.3
	relevanceWeight  = 0.3
)

// DedupeChannels removes duplicate channels by ID, keeping the first
// occurrence of each.
func DedupeChannels(channels []models.Channel) []models.Channel {
	seen := make(map[string]bool, len(channels))
	unique := make([]models.Channel, 0, len(channels))
	for _, ch := range channels {
		if seen[ch.ID] {
			continue
		}
		seen[ch.ID] = true
		unique = append(unique, ch)
	}
	return unique
}

// RankInfluencers filters a deduplicated channel set down to AI-related
// channels above the subscriber threshold, enriches each with growth and
// relevance scores, and returns the top channels by composite score.
//
// The sort is stable, so channels with equal composite scores keep their
// first-seen order.
func RankInfluencers(channels []models.Channel, minSubscribers int64, limit int, now time.Time) []models.Channel {
	influencers := make([]models.Channel, 0, len(channels))
	for _, ch := range DedupeChannels(channels) {
		if ch.Subscribers < minSubscribers || !IsAIRelated(ch) {
			continue
		}
		ch.GrowthScore = GrowthScore(ch, now)
		ch.AIRelevanceScore = AIRelevanceScore(ch)
		influencers = append(influencers, ch)
	}

	sort.SliceStable(influencers, func(i, j int) bool {
		return compositeScore(influencers[i]) > compositeScore(influencers[j])
	})

	if limit > 0 && len(influencers) > limit {
		influencers = influencers[:limit]
	}
	return influencers
}

func compositeScore(ch models.Channel) float64 {
	return float64(ch.Subscribers)*subscriberWeight +
		ch.GrowthScore*growthWeight +
		ch.AIRelevanceScore*relevanceWeight
}

// EnrichVideos stamps each video with a snapshot of the owning channel's
// statistics and fills in its engagement and performance scores.
func EnrichVideos(videos []models.Video, ch models.Channel, now time.Time) []models.Video {
	enriched := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		v.ChannelSubscriberCount = ch.Subscribers
		v.ChannelTotalViews = ch.ViewCount
		v.EngagementRate = EngagementRate(v)
		v.PerformanceScore = PerformanceScore(v, ch, now)
		enriched = append(enriched, v)
	}
	return enriched
}

// RankVideos keeps videos at or above the view threshold, sorted descending
// by performance score. The input must already be enriched.
func RankVideos(videos []models.Video, minViews int64) []models.Video {
	ranked := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.ViewCount >= minViews {
			ranked = append(ranked, v)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PerformanceScore > ranked[j].PerformanceScore
	})
	return ranked
}
