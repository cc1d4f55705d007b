package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yt-trendscout/internal/models"
	"github.com/yt-trendscout/internal/pipeline"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func TestNewWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	if _, err := NewWriter(dir); err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("output directory not created: %v", err)
	}
}

func TestWriteInfluencers(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	channels := []models.Channel{{
		ID:               "UC123",
		Title:            "AI Channel",
		Description:      "machine learning content",
		PublishedAt:      "2023-01-01T00:00:00Z",
		Subscribers:      250000,
		VideoCount:       120,
		ViewCount:        9000000,
		GrowthScore:      412.5,
		AIRelevanceScore: 85,
	}}
	if err := w.WriteInfluencers("influencers.csv", channels); err != nil {
		t.Fatalf("WriteInfluencers: %v", err)
	}

	records := readCSV(t, filepath.Join(dir, "influencers.csv"))
	if len(records) != 2 {
		t.Fatalf("got %d records, want header plus one row", len(records))
	}
	if records[0][0] != "channel_id" {
		t.Errorf("header[0] = %q, want channel_id", records[0][0])
	}
	row := records[1]
	if row[0] != "UC123" || row[1] != "AI Channel" {
		t.Errorf("unexpected identity columns: %v", row[:2])
	}
	if row[2] != "250000" {
		t.Errorf("subscriber column = %q, want 250000", row[2])
	}
	if row[6] != "412.50" {
		t.Errorf("growth score column = %q, want 412.50", row[6])
	}
	if row[11] != "machine learning content..." {
		t.Errorf("description snippet = %q", row[11])
	}
}

func TestWriteVideosJoinsTags(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	videos := []models.Video{{
		ID:        "v1",
		Title:     "ChatGPT Tips",
		Tags:      []string{"ai", "chatgpt", "tips"},
		ViewCount: 500000,
	}}
	if err := w.WriteVideos("videos.csv", videos); err != nil {
		t.Fatalf("WriteVideos: %v", err)
	}

	records := readCSV(t, filepath.Join(dir, "videos.csv"))
	row := records[1]
	if row[11] != "ai;chatgpt;tips" {
		t.Errorf("tags column = %q, want semicolon join", row[11])
	}
}

func TestWriteTopicsAndHashtags(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	topics := models.TrendTable{{Topic: "chatgpt", Count: 42}, {Topic: "python", Count: 17}}
	if err := w.WriteTopics("topics.csv", topics); err != nil {
		t.Fatalf("WriteTopics: %v", err)
	}
	records := readCSV(t, filepath.Join(dir, "topics.csv"))
	if records[1][0] != "chatgpt" || records[1][1] != "42" {
		t.Errorf("unexpected topic row: %v", records[1])
	}

	if err := w.WriteHashtags("hashtags.csv", []string{"#ai", "#tech"}); err != nil {
		t.Fatalf("WriteHashtags: %v", err)
	}
	records = readCSV(t, filepath.Join(dir, "hashtags.csv"))
	if records[1][0] != "#ai" || records[1][1] != "1" {
		t.Errorf("unexpected hashtag row: %v", records[1])
	}
	if records[2][1] != "2" {
		t.Errorf("rank column = %q, want 2", records[2][1])
	}
}

func TestWriteAllProducesEveryFile(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	result := &pipeline.Result{
		RunID:       "run-1",
		Influencers: []models.Channel{{ID: "UC1", Title: "AI Channel"}},
		Videos:      []models.Video{{ID: "v1", Title: "A Video"}},
		Topics:      models.TrendTable{{Topic: "ai", Count: 3}},
		Hashtags:    []string{"#ai"},
		Ideas: []models.ContentIdea{{
			ID:        1,
			Title:     "How AI Works",
			Category:  models.CategoryExplanation,
			Hashtags:  []string{"#AI", "#Tech"},
			CreatedAt: now,
		}},
		Scripts: []models.VideoScript{{
			ID:        1,
			Title:     "How AI Works",
			Category:  models.CategoryExplanation,
			Script:    "Welcome to the channel.",
			CreatedAt: now,
		}},
		CreatedAt: now,
	}
	if err := w.WriteAll(result); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	files := []string{
		"ai_influencers.csv", "ai_influencer_videos.csv", "trending_topics.csv",
		"successful_hashtags.csv", "video_ideas.csv", "video_scripts.csv",
	}
	for _, name := range files {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing export %s: %v", name, err)
		}
	}

	ideas := readCSV(t, filepath.Join(dir, "video_ideas.csv"))
	row := ideas[1]
	if row[3] != "#AI;#Tech" {
		t.Errorf("hashtags column = %q, want semicolon join", row[3])
	}
	if row[10] != "2024-06-01T12:00:00Z" {
		t.Errorf("created_at column = %q", row[10])
	}
}

func TestSnippetTruncation(t *testing.T) {
	if got := snippet(""); got != "" {
		t.Errorf("snippet(\"\") = %q, want empty", got)
	}
	long := strings.Repeat("x", 300)
	got := snippet(long)
	if len(got) != 203 {
		t.Errorf("snippet length = %d, want 203", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("snippet %q missing ellipsis", got[len(got)-10:])
	}
}
