package models

// Video represents a YouTube video enriched with engagement metrics.
type Video struct {
	ID           string   `json:"videoId"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ChannelID    string   `json:"channelId"`
	ChannelTitle string   `json:"channelTitle"`
	PublishedAt  string   `json:"publishedAt"`
	ViewCount    int64    `json:"viewCount"`
	LikeCount    int64    `json:"likeCount"`
	CommentCount int64    `json:"commentCount"`
	Duration     string   `json:"duration"`
	Tags         []string `json:"tags,omitempty"`
	Thumbnail    string   `json:"thumbnailUrl,omitempty"`
	URL          string   `json:"videoUrl,omitempty"`

	// Snapshot of the owning channel at enrichment time, not a live
	// reference.
	ChannelSubscriberCount int64 `json:"channelSubscriberCount"`
	ChannelTotalViews      int64 `json:"channelTotalViews"`

	// Derived fields, filled in by the scoring engine.
	EngagementRate   float64 `json:"engagementRate"`
	PerformanceScore float64 `json:"performanceScore"`
}
