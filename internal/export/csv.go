// Package export persists analysis results as flat CSV files, the only
// persistence format the pipeline owns. List-typed fields are joined with
// ";" so each record stays a single tabular row.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/yt-trendscout/internal/models"
	"github.com/yt-trendscout/internal/pipeline"
)

const listSeparator = ";"

// Writer writes CSV exports into a single output directory.
type Writer struct {
	dir string
}

// NewWriter creates the output directory if needed and returns a Writer
// over it.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %v", dir, err)
	}
	return &Writer{dir: dir}, nil
}

// WriteAll exports every artifact of an analysis run to its own CSV file.
func (w *Writer) WriteAll(result *pipeline.Result) error {
	if err := w.WriteInfluencers("ai_influencers.csv", result.Influencers); err != nil {
		return err
	}
	if err := w.WriteVideos("ai_influencer_videos.csv", result.Videos); err != nil {
		return err
	}
	if err := w.WriteTopics("trending_topics.csv", result.Topics); err != nil {
		return err
	}
	if err := w.WriteHashtags("successful_hashtags.csv", result.Hashtags); err != nil {
		return err
	}
	if err := w.WriteIdeas("video_ideas.csv", result.Ideas); err != nil {
		return err
	}
	return w.WriteScripts("video_scripts.csv", result.Scripts)
}

// WriteInfluencers exports ranked influencer channels.
func (w *Writer) WriteInfluencers(filename string, channels []models.Channel) error {
	header := []string{
		"channel_id", "channel_title", "subscriber_count", "video_count",
		"view_count", "published_at", "growth_score", "ai_relevance_score",
		"thumbnail_url", "custom_url", "country", "description_snippet",
	}
	rows := make([][]string, 0, len(channels))
	for _, ch := range channels {
		rows = append(rows, []string{
			ch.ID,
			ch.Title,
			strconv.FormatInt(ch.Subscribers, 10),
			strconv.FormatInt(ch.VideoCount, 10),
			strconv.FormatInt(ch.ViewCount, 10),
			ch.PublishedAt,
			formatScore(ch.GrowthScore),
			formatScore(ch.AIRelevanceScore),
			ch.Thumbnail,
			ch.CustomURL,
			ch.Country,
			snippet(ch.Description),
		})
	}
	return w.writeFile(filename, header, rows)
}

// WriteVideos exports enriched high-performing videos.
func (w *Writer) WriteVideos(filename string, videos []models.Video) error {
	header := []string{
		"video_id", "title", "channel_title", "channel_id", "view_count",
		"like_count", "comment_count", "published_at", "duration",
		"thumbnail_url", "video_url", "tags", "engagement_rate",
		"performance_score", "influencer_subscriber_count", "description_snippet",
	}
	rows := make([][]string, 0, len(videos))
	for _, v := range videos {
		rows = append(rows, []string{
			v.ID,
			v.Title,
			v.ChannelTitle,
			v.ChannelID,
			strconv.FormatInt(v.ViewCount, 10),
			strconv.FormatInt(v.LikeCount, 10),
			strconv.FormatInt(v.CommentCount, 10),
			v.PublishedAt,
			v.Duration,
			v.Thumbnail,
			v.URL,
			strings.Join(v.Tags, listSeparator),
			formatScore(v.EngagementRate),
			formatScore(v.PerformanceScore),
			strconv.FormatInt(v.ChannelSubscriberCount, 10),
			snippet(v.Description),
		})
	}
	return w.writeFile(filename, header, rows)
}

// WriteTopics exports the trend-frequency table.
func (w *Writer) WriteTopics(filename string, topics models.TrendTable) error {
	header := []string{"topic", "frequency"}
	rows := make([][]string, 0, len(topics))
	for _, tc := range topics {
		rows = append(rows, []string{tc.Topic, strconv.Itoa(tc.Count)})
	}
	return w.writeFile(filename, header, rows)
}

// WriteHashtags exports the ranked hashtag list.
func (w *Writer) WriteHashtags(filename string, hashtags []string) error {
	header := []string{"hashtag", "rank"}
	rows := make([][]string, 0, len(hashtags))
	for i, tag := range hashtags {
		rows = append(rows, []string{tag, strconv.Itoa(i + 1)})
	}
	return w.writeFile(filename, header, rows)
}

// WriteIdeas exports generated content ideas.
func (w *Writer) WriteIdeas(filename string, ideas []models.ContentIdea) error {
	header := []string{
		"id", "title", "category", "hashtags", "thumbnail_concept",
		"trend_score", "estimated_views", "difficulty", "target_audience",
		"key_topics", "created_at",
	}
	rows := make([][]string, 0, len(ideas))
	for _, idea := range ideas {
		rows = append(rows, []string{
			strconv.Itoa(idea.ID),
			idea.Title,
			string(idea.Category),
			strings.Join(idea.Hashtags, listSeparator),
			idea.ThumbnailConcept,
			formatScore(idea.TrendScore),
			strconv.FormatInt(idea.EstimatedViews, 10),
			idea.Difficulty,
			idea.TargetAudience,
			strings.Join(idea.KeyTopics, listSeparator),
			idea.CreatedAt.Format(time.RFC3339),
		})
	}
	return w.writeFile(filename, header, rows)
}

// WriteScripts exports generated video scripts.
func (w *Writer) WriteScripts(filename string, scripts []models.VideoScript) error {
	header := []string{
		"id", "title", "category", "script", "hashtags", "thumbnail_concept",
		"estimated_duration", "word_count", "key_points", "call_to_action",
		"created_at",
	}
	rows := make([][]string, 0, len(scripts))
	for _, s := range scripts {
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			s.Title,
			string(s.Category),
			s.Script,
			strings.Join(s.Hashtags, listSeparator),
			s.ThumbnailConcept,
			s.EstimatedDuration,
			strconv.Itoa(s.WordCount),
			strings.Join(s.KeyPoints, listSeparator),
			s.CallToAction,
			s.CreatedAt.Format(time.RFC3339),
		})
	}
	return w.writeFile(filename, header, rows)
}

func (w *Writer) writeFile(filename string, header []string, rows [][]string) error {
	path := filepath.Join(w.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %v", path, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %v", path, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatScore renders a derived score rounded to two decimals, matching the
// export precision of the analysis reports.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

// snippet truncates a description to 200 characters for tabular export.
func snippet(description string) string {
	if description == "" {
		return ""
	}
	if len(description) > 200 {
		description = description[:200]
	}
	return description + "..."
}
