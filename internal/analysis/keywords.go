package analysis

// Keyword vocabularies used by the scoring engine and the trend extractor.
// Matching is plain lowercase substring containment throughout, so short
// entries like "ai" and "ml" also hit inside longer words. That is the
// intended (loose) matching behavior.

// aiIndicators feed the boolean admission gate: a channel counts as
// AI-related when at least two distinct indicators appear in its title or
// description.
var aiIndicators = []string{
	"artificial intelligence", "machine learning", "deep learning",
	"neural network", "ai", "ml", "data science", "computer vision",
	"natural language processing", "nlp", "robotics", "automation",
	"chatgpt", "openai", "tensorflow", "pytorch", "kaggle",
	"algorithm", "programming", "coding", "tech", "technology",
}

// Relevance score tiers: 20, 10 and 5 points per matching keyword.
var (
	highValueKeywords   = []string{"artificial intelligence", "machine learning", "deep learning", "ai", "ml"}
	mediumValueKeywords = []string{"data science", "programming", "tech", "computer science", "automation"}
	lowValueKeywords    = []string{"tutorial", "coding", "software", "algorithm", "python"}
)

// trendTopics is the fixed vocabulary the trend extractor counts across a
// video corpus.
var trendTopics = []string{
	"chatgpt", "gpt", "openai", "claude", "gemini", "bard",
	"machine learning", "deep learning", "neural network",
	"computer vision", "nlp", "natural language processing",
	"tensorflow", "pytorch", "transformers", "llm", "large language model",
	"artificial intelligence", "automation", "robotics",
	"data science", "python", "coding", "programming",
	"tutorial", "explained", "guide", "how to", "beginner",
	"ai tools", "ai news", "future", "prediction", "breakthrough",
}

// trendingKeywords earn a flat +5 bonus when they appear in a title.
var trendingKeywords = []string{"2024", "2025", "new", "latest", "breakthrough", "future"}
