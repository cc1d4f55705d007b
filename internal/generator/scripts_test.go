package generator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/yt-trendscout/internal/models"
)

func sampleIdeas(n int) []models.ContentIdea {
	ideas := make([]models.ContentIdea, n)
	for i := range ideas {
		ideas[i] = models.ContentIdea{
			ID:       i + 1,
			Title:    "Complete ChatGPT Tutorial for Beginners",
			Category: models.CategoryTutorial,
			Hashtags: []string{"#AI"},
		}
	}
	return ideas
}

func TestGenerateScripts(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	scripts := g.GenerateScripts(sampleIdeas(10), 3)

	if len(scripts) != 3 {
		t.Fatalf("got %d scripts, want 3", len(scripts))
	}
	for i, s := range scripts {
		if s.ID != i+1 {
			t.Errorf("script %d has ID %d", i, s.ID)
		}
		if s.Script == "" {
			t.Error("empty script body")
		}
		if s.WordCount != len(strings.Fields(s.Script)) {
			t.Errorf("WordCount = %d, want %d", s.WordCount, len(strings.Fields(s.Script)))
		}
		if s.EstimatedDuration == "" {
			t.Error("empty duration estimate")
		}
		if s.CallToAction != callsToAction[models.CategoryTutorial] {
			t.Errorf("CallToAction = %q, want tutorial call to action", s.CallToAction)
		}
		if s.CreatedAt.IsZero() {
			t.Error("zero CreatedAt")
		}
	}
}

func TestGenerateScriptsTruncatesToAvailableIdeas(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	scripts := g.GenerateScripts(sampleIdeas(2), 25)
	if len(scripts) != 2 {
		t.Errorf("got %d scripts, want 2", len(scripts))
	}
}

func TestScriptForIdeaCategories(t *testing.T) {
	title := "ChatGPT vs Claude"

	tutorial := scriptForIdea(models.ContentIdea{Title: title, Category: models.CategoryTutorial})
	if !strings.Contains(tutorial, strings.ToLower(title)) {
		t.Error("tutorial script should embed the lowercased title")
	}

	comparison := scriptForIdea(models.ContentIdea{Title: title, Category: models.CategoryComparison})
	if !strings.Contains(comparison, title) {
		t.Error("comparison script should embed the title verbatim")
	}

	unknown := scriptForIdea(models.ContentIdea{Title: title, Category: models.Category("mystery")})
	if !strings.Contains(unknown, title) {
		t.Error("unknown category should fall back to the general script")
	}
	if unknown == comparison {
		t.Error("general script should differ from the comparison script")
	}
}

func TestCallToActionFallback(t *testing.T) {
	if got := callToAction(models.CategoryReview); got != callsToAction[models.CategoryReview] {
		t.Errorf("got %q, want review call to action", got)
	}
	if got := callToAction(models.Category("mystery")); got != genericCallToAction {
		t.Errorf("got %q, want generic call to action", got)
	}
}

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{100, "< 1 minute"},
		{310, "2-3 minutes"},
		{1085, "7-9 minutes"},
		{1860, "12-15 minutes"},
	}
	for _, tt := range tests {
		script := strings.TrimSpace(strings.Repeat("word ", tt.words))
		if got := estimateDuration(script); got != tt.want {
			t.Errorf("estimateDuration(%d words) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestExtractKeyPointsStructuredLines(t *testing.T) {
	script := tutorialScript("build a chatbot")
	points := extractKeyPoints(script)

	if len(points) != 5 {
		t.Fatalf("got %d key points, want 5", len(points))
	}
	for _, p := range points[1:] {
		if !strings.HasPrefix(p, "Step ") {
			t.Errorf("unexpected key point %q", p)
		}
	}
}

func TestExtractKeyPointsFallbackToEmphasis(t *testing.T) {
	script := "This is a plain script. The important part is testing everything. Nothing else matters."
	points := extractKeyPoints(script)

	if len(points) != 1 {
		t.Fatalf("got %d key points, want 1", len(points))
	}
	if !strings.Contains(points[0], "important") {
		t.Errorf("got %q, want the sentence with the emphasis word", points[0])
	}
}

func TestExtractKeyPointsEmpty(t *testing.T) {
	if points := extractKeyPoints("Nothing structured here. Just filler."); len(points) != 0 {
		t.Errorf("got %v, want no key points", points)
	}
}
