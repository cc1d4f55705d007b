package generator

import "github.com/yt-trendscout/internal/models"

// Per-category generation tables. Every category in models.Categories has
// an entry in each table; lookups still fall back to a generic value so a
// missing entry degrades to usable output instead of failing.

// titleTemplates hold 0-2 "{}" placeholder slots each.
var titleTemplates = map[models.Category][]string{
	models.CategoryTutorial: {
		"How to Build {} in {} Minutes",
		"Complete {} Tutorial for Beginners",
		"Master {} in {} Steps",
		"{} Explained Simply",
		"Build Your First {} Project",
	},
	models.CategoryNews: {
		"Breaking: {} Changes Everything",
		"Latest {} Updates You Need to Know",
		"{} News This Week",
		"Why {} is Trending Now",
		"The Future of {} is Here",
	},
	models.CategoryComparison: {
		"{} vs {}: Which is Better?",
		"Comparing {} and {} in {}",
		"{} or {}? The Ultimate Guide",
		"Why {} Beats {} Every Time",
		"The Truth About {} vs {}",
	},
	models.CategoryExplanation: {
		"{} Explained in {} Minutes",
		"What is {}? Everything You Need to Know",
		"Understanding {} Once and For All",
		"The Science Behind {}",
		"How {} Actually Works",
	},
	models.CategoryPrediction: {
		"Why {} Will Dominate {}",
		"The Future of {} in {}",
		"{} Predictions for {}",
		"What's Next for {}?",
		"How {} Will Change {}",
	},
	models.CategoryReview: {
		"I Tested {} for {} Days",
		"{} Review: Is It Worth It?",
		"Honest {} Review After {} Months",
		"The Truth About {}",
		"{} Deep Dive Review",
	},
}

var thumbnailConcepts = map[models.Category][]string{
	models.CategoryTutorial: {
		"Split-screen showing before/after code results",
		"Person pointing at code on a large screen",
		"Step-by-step visual progress bars",
		"Hand typing on keyboard with code overlay",
	},
	models.CategoryNews: {
		"Breaking news style with bold red background",
		"Tech headlines with shocked expression",
		"Trending arrows and news ticker style",
		"Professional news anchor setup",
	},
	models.CategoryComparison: {
		"Split-screen VS layout with logos",
		"Two products side by side with checkmarks",
		"Battle-style confrontation design",
		"Pros and cons visual comparison",
	},
	models.CategoryExplanation: {
		"Complex diagram simplified with arrows",
		"Teacher-style whiteboard explanation",
		"Lightbulb moment with clear graphics",
		"Step-by-step visual breakdown",
	},
	models.CategoryPrediction: {
		"Futuristic crystal ball or fortune teller",
		"Timeline with future milestones",
		"Rocket ship or upward trending charts",
		"Calendar with highlighted future dates",
	},
	models.CategoryReview: {
		"Product with star ratings overlay",
		"Thumbs up/down with product image",
		"Before and after user experience",
		"Honest review with serious expression",
	},
}

var genericThumbnailConcepts = []string{"Clean, professional design with clear text"}

var baseViews = map[models.Category]int64{
	models.CategoryTutorial:    150000,
	models.CategoryNews:        200000,
	models.CategoryComparison:  180000,
	models.CategoryExplanation: 120000,
	models.CategoryPrediction:  250000,
	models.CategoryReview:      100000,
}

const defaultBaseViews = 150000

var baseDifficulty = map[models.Category]string{
	models.CategoryTutorial:    models.DifficultyMedium,
	models.CategoryNews:        models.DifficultyEasy,
	models.CategoryComparison:  models.DifficultyMedium,
	models.CategoryExplanation: models.DifficultyHard,
	models.CategoryPrediction:  models.DifficultyMedium,
	models.CategoryReview:      models.DifficultyEasy,
}

var callsToAction = map[models.Category]string{
	models.CategoryTutorial:    "Try building this yourself and share your results in the comments!",
	models.CategoryNews:        "What do you think about this development? Share your thoughts below!",
	models.CategoryComparison:  "Which option do you prefer? Let me know in the comments!",
	models.CategoryExplanation: "Did this help clarify the concept for you? Ask any questions below!",
	models.CategoryPrediction:  "Do you agree with my predictions? Share your thoughts!",
	models.CategoryReview:      "Are you planning to try this? Let me know what you think!",
}

const genericCallToAction = "What are your thoughts? Share them in the comments!"

// abbreviations map raw trend topics to their display forms. Topics outside
// the map get naive per-word capitalization, odd casing and all.
var abbreviations = map[string]string{
	"ai":  "AI",
	"ml":  "Machine Learning",
	"nlp": "NLP",
	"gpt": "GPT",
	"llm": "Large Language Models",
}

// popularHashtags pad an idea's hashtag list when trend data alone supplies
// fewer than eight relevant tags.
var popularHashtags = []string{"#AI", "#MachineLearning", "#Tech", "#Programming", "#Tutorial", "#Coding"}

// keyTopicVocabulary is scanned against idea titles to surface up to five
// key topics per idea.
var keyTopicVocabulary = []string{
	"ai", "artificial intelligence", "machine learning", "deep learning",
	"chatgpt", "gpt", "openai", "neural network", "automation",
	"python", "coding", "programming", "data science", "tensorflow",
	"pytorch", "computer vision", "nlp", "robotics",
}
