package models

// TopicCount is one entry of a trend table: a topic keyword and the number
// of videos mentioning it.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"frequency"`
}

// TrendTable is a topic-frequency table sorted descending by count.
type TrendTable []TopicCount

// Count returns the mention count for a topic, or 0 if it never trended.
func (t TrendTable) Count(topic string) int {
	for _, tc := range t {
		if tc.Topic == topic {
			return tc.Count
		}
	}
	return 0
}

// TopTopics returns the first n topic keywords of the table.
func (t TrendTable) TopTopics(n int) []string {
	if n > len(t) {
		n = len(t)
	}
	topics := make([]string, 0, n)
	for _, tc := range t[:n] {
		topics = append(topics, tc.Topic)
	}
	return topics
}

// HashtagStat accumulates per-hashtag occurrence data while scanning a
// video corpus. Intermediate only; the extractor collapses these into a
// ranked list of hashtag strings.
type HashtagStat struct {
	Count      int
	TotalViews int64
}

// AvgViews returns the average view count of videos carrying the hashtag.
func (h HashtagStat) AvgViews() float64 {
	if h.Count == 0 {
		return 0
	}
	return float64(h.TotalViews) / float64(h.Count)
}
