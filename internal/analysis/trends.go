package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yt-trendscout/internal/models"
)

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// ExtractTopics builds a trend table from a video corpus: for each entry of
// the fixed topic vocabulary, the number of videos whose title, description
// or tags mention it. Presence is counted once per video regardless of how
// often the topic repeats. An empty corpus yields an empty table.
//
// The table is sorted descending by count, ties broken alphabetically so
// the order is deterministic.
func ExtractTopics(videos []models.Video) models.TrendTable {
	counts := make(map[string]int)
	for _, v := range videos {
		text := strings.ToLower(v.Title + " " + v.Description)
		if len(v.Tags) > 0 {
			text += " " + strings.ToLower(strings.Join(v.Tags, " "))
		}
		for _, topic := range trendTopics {
			if strings.Contains(text, topic) {
				counts[topic]++
			}
		}
	}

	table := make(models.TrendTable, 0, len(counts))
	for topic, count := range counts {
		table = append(table, models.TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return table[i].Topic < table[j].Topic
	})
	return table
}

// ExtractHashtags scans titles and descriptions of videos with at least
// minViews views for "#word" hashtags, normalized to lowercase, and returns
// up to 50 of them ranked by avg_views x count descending.
func ExtractHashtags(videos []models.Video, minViews int64) []string {
	stats := make(map[string]*models.HashtagStat)
	for _, v := range videos {
		if v.ViewCount < minViews {
			continue
		}
		text := v.Title + " " + v.Description
		for _, match := range hashtagPattern.FindAllStringSubmatch(text, -1) {
			tag := strings.ToLower(match[1])
			st, ok := stats[tag]
			if !ok {
				st = &models.HashtagStat{}
				stats[tag] = st
			}
			st.Count++
			st.TotalViews += v.ViewCount
		}
	}

	tags := make([]string, 0, len(stats))
	for tag := range stats {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		si, sj := stats[tags[i]], stats[tags[j]]
		scoreI := si.AvgViews() * float64(si.Count)
		scoreJ := sj.AvgViews() * float64(sj.Count)
		if scoreI != scoreJ {
			return scoreI > scoreJ
		}
		return tags[i] < tags[j]
	})

	if len(tags) > 50 {
		tags = tags[:50]
	}
	ranked := make([]string, len(tags))
	for i, tag := range tags {
		ranked[i] = "#" + tag
	}
	return ranked
}
