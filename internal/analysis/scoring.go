package analysis

import (
	"strings"
	"time"

	"github.com/yt-trendscout/internal/models"
)

// Scoring engine: pure functions over channel and video records. All of
// them take the reference time explicitly so results are reproducible in
// tests. Malformed dates never raise; they just zero the score involved.

// IsAIRelated reports whether a channel passes the AI-relevance admission
// gate: at least two distinct indicator keywords in its title/description.
func IsAIRelated(ch models.Channel) bool {
	text := strings.ToLower(ch.Title) + " " + strings.ToLower(ch.Description)

	matches := 0
	for _, indicator := range aiIndicators {
		if strings.Contains(text, indicator) {
			matches++
		}
	}
	return matches >= 2
}

// AIRelevanceScore scores a channel 0-100 by tiered keyword matches in its
// title and description.
func AIRelevanceScore(ch models.Channel) float64 {
	text := strings.ToLower(ch.Title) + " " + strings.ToLower(ch.Description)

	score := 0.0
	for _, kw := range highValueKeywords {
		if strings.Contains(text, kw) {
			score += 20
		}
	}
	for _, kw := range mediumValueKeywords {
		if strings.Contains(text, kw) {
			score += 10
		}
	}
	for _, kw := range lowValueKeywords {
		if strings.Contains(text, kw) {
			score += 5
		}
	}
	return min(score, 100)
}

// GrowthScore estimates channel momentum from upload cadence and views per
// video, capped at 1000. Channels with unparseable creation dates score 0.
func GrowthScore(ch models.Channel, now time.Time) float64 {
	published, err := time.Parse(time.RFC3339, ch.PublishedAt)
	if err != nil {
		return 0
	}

	ageDays := int64(now.Sub(published).Hours() / 24)
	if ageDays <= 0 {
		return 0
	}

	videosPerDay := float64(ch.VideoCount) / float64(ageDays)
	viewsPerVideo := float64(ch.ViewCount) / float64(max(ch.VideoCount, 1))

	score := videosPerDay*365*10 + viewsPerVideo/10000
	return min(score, 1000)
}

// EngagementRate computes a 0-100 engagement percentage. Comments weigh
// double because commenting takes more effort than liking.
func EngagementRate(v models.Video) float64 {
	viewCount := max(v.ViewCount, 1)
	rate := float64(v.LikeCount+v.CommentCount*2) / float64(viewCount) * 100
	return min(rate, 100)
}

// PerformanceScore ranks a video relative to its owning channel. The score
// is unbounded and only meaningful for relative ordering: views normalized
// by subscriber base, plus engagement, plus a recency bonus that decays to
// zero over a year.
func PerformanceScore(v models.Video, ch models.Channel, now time.Time) float64 {
	viewRatio := float64(v.ViewCount) / float64(max(ch.Subscribers, 1))

	recency := 0.0
	if published, err := time.Parse(time.RFC3339, v.PublishedAt); err == nil {
		daysOld := now.Sub(published).Hours() / 24
		recency = max(0, 365-daysOld) / 365
	}

	return viewRatio*1000 + EngagementRate(v)*10 + recency*100
}

// TrendScore measures 0-100 how strongly a title echoes the current trend
// table: twice the mention count per matched topic, plus +5 per trending
// keyword.
func TrendScore(title string, topics models.TrendTable) float64 {
	titleLower := strings.ToLower(title)

	score := 0.0
	for _, tc := range topics {
		if strings.Contains(titleLower, tc.Topic) {
			score += float64(tc.Count) * 2
		}
	}
	for _, kw := range trendingKeywords {
		if strings.Contains(titleLower, kw) {
			score += 5
		}
	}
	return min(score, 100)
}
