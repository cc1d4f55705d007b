package models

// Channel represents a YouTube channel with the statistics the analysis
// pipeline needs. PublishedAt stays in the RFC 3339 form the API returns;
// scoring parses it defensively and treats unparseable dates as zero scores.
type Channel struct {
	ID          string `json:"channelId"`
	Title       string `json:"channelTitle"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
	Subscribers int64  `json:"subscriberCount"`
	VideoCount  int64  `json:"videoCount"`
	ViewCount   int64  `json:"viewCount"`
	Country     string `json:"country,omitempty"`
	CustomURL   string `json:"customUrl,omitempty"`
	Thumbnail   string `json:"thumbnailUrl,omitempty"`

	// Derived fields, filled in by the scoring engine before ranking.
	GrowthScore      float64 `json:"growthScore"`
	AIRelevanceScore float64 `json:"aiRelevanceScore"`
}
