package generator

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yt-trendscout/internal/analysis"
	"github.com/yt-trendscout/internal/models"
)

// Generator synthesizes content ideas and scripts from trend data. The
// random source is injected so runs can be made deterministic; pass
// rand.New(rand.NewSource(seed)) in tests.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a Generator drawing from the given random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, now: time.Now}
}

// GenerateIdeas builds numIdeas content ideas from the trend table and the
// ranked hashtag list, sorted descending by trend score.
func (g *Generator) GenerateIdeas(topics models.TrendTable, hashtags []string, numIdeas int) []models.ContentIdea {
	topTopics := topics.TopTopics(20)

	ideas := make([]models.ContentIdea, 0, numIdeas)
	for i := 0; i < numIdeas; i++ {
		category := models.Categories[g.rng.Intn(len(models.Categories))]
		templates := titleTemplates[category]
		template := templates[g.rng.Intn(len(templates))]

		title := g.fillTemplate(template, topTopics)
		trendScore := analysis.TrendScore(title, topics)

		ideas = append(ideas, models.ContentIdea{
			ID:               i + 1,
			Title:            title,
			Category:         category,
			Hashtags:         g.selectHashtags(title, hashtags, 15),
			ThumbnailConcept: g.thumbnailConcept(title, category),
			TrendScore:       trendScore,
			EstimatedViews:   g.estimateViews(trendScore, category),
			Difficulty:       estimateDifficulty(category, title),
			TargetAudience:   identifyTargetAudience(title),
			KeyTopics:        extractKeyTopics(title),
			CreatedAt:        g.now(),
		})
	}

	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].TrendScore > ideas[j].TrendScore
	})
	return ideas
}

// fillTemplate substitutes "{}" slots in a title template. Trending topics
// fill the first slots; any left over get contextual values (a duration for
// templates mentioning minutes or steps, a timespan for days/months, else a
// year or "Today"/"Now").
func (g *Generator) fillTemplate(template string, topics []string) string {
	placeholders := strings.Count(template, "{}")
	if placeholders == 0 {
		return template
	}

	title := template
	for _, idx := range g.rng.Perm(len(topics)) {
		if !strings.Contains(title, "{}") {
			break
		}
		title = strings.Replace(title, "{}", formatTopic(topics[idx]), 1)
	}

	for strings.Contains(title, "{}") {
		lower := strings.ToLower(title)
		var filler string
		switch {
		case strings.Contains(lower, "minutes") || strings.Contains(lower, "steps"):
			filler = strconv.Itoa(pick(g.rng, []int{5, 10, 15, 20, 30}))
		case strings.Contains(lower, "days"):
			filler = strconv.Itoa(pick(g.rng, []int{7, 14, 30, 60, 90}))
		case strings.Contains(lower, "months"):
			filler = strconv.Itoa(pick(g.rng, []int{1, 3, 6, 12}))
		default:
			filler = pick(g.rng, []string{"2024", "2025", "Today", "Now"})
		}
		title = strings.Replace(title, "{}", filler, 1)
	}
	return title
}

// formatTopic renders a raw topic for use in a title: known acronyms expand
// via the abbreviation map, everything else gets per-word capitalization.
func formatTopic(topic string) string {
	if formatted, ok := abbreviations[strings.ToLower(topic)]; ok {
		return formatted
	}
	return capitalizeWords(topic)
}

// selectHashtags scores candidate hashtags against the title (+10 exact
// substring match, +5 per matching word, +3 for tech-keyword overlap),
// keeps the top maxHashtags, then pads from the popular fallback list until
// the result has at least eight entries or the fallbacks run out.
func (g *Generator) selectHashtags(title string, hashtags []string, maxHashtags int) []string {
	titleLower := strings.ToLower(title)

	type scored struct {
		tag   string
		score int
	}
	var candidates []scored
	for _, hashtag := range hashtags {
		clean := strings.ToLower(strings.ReplaceAll(hashtag, "#", ""))
		score := 0
		if strings.Contains(titleLower, clean) {
			score += 10
		}
		for _, word := range strings.Fields(clean) {
			if strings.Contains(titleLower, word) {
				score += 5
			}
		}
		for _, kw := range []string{"ai", "ml", "tech", "coding", "tutorial"} {
			if strings.Contains(clean, kw) {
				score += 3
				break
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{tag: hashtag, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > maxHashtags {
		candidates = candidates[:maxHashtags]
	}

	selected := make([]string, 0, maxHashtags)
	for _, c := range candidates {
		selected = append(selected, c.tag)
	}

	for _, fallback := range popularHashtags {
		if len(selected) >= 8 {
			break
		}
		if !contains(selected, fallback) {
			selected = append(selected, fallback)
		}
	}
	return selected
}

// thumbnailConcept picks a category concept at random and appends a
// title-specific suffix for a few well-known subjects.
func (g *Generator) thumbnailConcept(title string, category models.Category) string {
	concepts, ok := thumbnailConcepts[category]
	if !ok || len(concepts) == 0 {
		concepts = genericThumbnailConcepts
	}
	concept := concepts[g.rng.Intn(len(concepts))]

	titleLower := strings.ToLower(title)
	switch {
	case strings.Contains(titleLower, "chatgpt"):
		concept += " with ChatGPT logo"
	case strings.Contains(titleLower, "ai"):
		concept += " with AI/robot elements"
	case strings.Contains(titleLower, "python"):
		concept += " with Python logo"
	}
	return concept
}

// estimateViews projects a view count from the category baseline, scaled by
// trend score and a uniform 0.5-1.5 jitter.
func (g *Generator) estimateViews(trendScore float64, category models.Category) int64 {
	base, ok := baseViews[category]
	if !ok {
		base = defaultBaseViews
	}
	multiplier := 1 + trendScore/100
	jitter := 0.5 + g.rng.Float64()
	return int64(float64(base) * multiplier * jitter)
}

// estimateDifficulty starts from the category baseline and escalates one
// level when the title signals complexity. Hard stays Hard.
func estimateDifficulty(category models.Category, title string) string {
	difficulty, ok := baseDifficulty[category]
	if !ok {
		difficulty = models.DifficultyMedium
	}

	titleLower := strings.ToLower(title)
	for _, word := range []string{"deep", "advanced", "complex", "science"} {
		if strings.Contains(titleLower, word) {
			switch difficulty {
			case models.DifficultyEasy:
				return models.DifficultyMedium
			case models.DifficultyMedium:
				return models.DifficultyHard
			}
			break
		}
	}
	return difficulty
}

func identifyTargetAudience(title string) string {
	titleLower := strings.ToLower(title)
	switch {
	case strings.Contains(titleLower, "beginner") || strings.Contains(titleLower, "first"):
		return "Beginners"
	case strings.Contains(titleLower, "advanced") || strings.Contains(titleLower, "expert"):
		return "Advanced users"
	case strings.Contains(titleLower, "tutorial") || strings.Contains(titleLower, "how to"):
		return "Learners/Students"
	case strings.Contains(titleLower, "news") || strings.Contains(titleLower, "update"):
		return "AI enthusiasts"
	case strings.Contains(titleLower, "review"):
		return "Potential buyers"
	default:
		return "General tech audience"
	}
}

// extractKeyTopics pulls up to five vocabulary keywords mentioned in the
// title, rendered with per-word capitalization.
func extractKeyTopics(title string) []string {
	titleLower := strings.ToLower(title)
	var found []string
	for _, kw := range keyTopicVocabulary {
		if strings.Contains(titleLower, kw) {
			found = append(found, capitalizeWords(kw))
			if len(found) == 5 {
				break
			}
		}
	}
	return found
}

// capitalizeWords upper-cases the first letter of each word and lower-cases
// the rest. Acronyms that skip the abbreviation map come out oddly cased
// ("nlp" becomes "Nlp").
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func pick[T any](rng *rand.Rand, options []T) T {
	return options[rng.Intn(len(options))]
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
