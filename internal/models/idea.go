package models

import "time"

// Category classifies a generated content idea. The set is fixed; every
// category has a matching title-template list, thumbnail-concept list,
// script skeleton and call-to-action, with generic fallbacks for safety.
type Category string

const (
	CategoryTutorial    Category = "tutorial"
	CategoryNews        Category = "news"
	CategoryComparison  Category = "comparison"
	CategoryExplanation Category = "explanation"
	CategoryPrediction  Category = "prediction"
	CategoryReview      Category = "review"
)

// Categories lists all idea categories in their canonical order.
var Categories = []Category{
	CategoryTutorial,
	CategoryNews,
	CategoryComparison,
	CategoryExplanation,
	CategoryPrediction,
	CategoryReview,
}

// Difficulty levels for content creation, ordered Easy < Medium < Hard.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// ContentIdea is a synthesized video idea built from trend data.
// Immutable once generated.
type ContentIdea struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Category         Category  `json:"category"`
	Hashtags         []string  `json:"hashtags"`
	ThumbnailConcept string    `json:"thumbnailConcept"`
	TrendScore       float64   `json:"trendScore"`
	EstimatedViews   int64     `json:"estimatedViews"`
	Difficulty       string    `json:"difficulty"`
	TargetAudience   string    `json:"targetAudience"`
	KeyTopics        []string  `json:"keyTopics"`
	CreatedAt        time.Time `json:"createdAt"`
}

// VideoScript expands a selected ContentIdea into a full templated script
// with derived metadata.
type VideoScript struct {
	ID                int       `json:"id"`
	Title             string    `json:"title"`
	Category          Category  `json:"category"`
	Script            string    `json:"script"`
	Hashtags          []string  `json:"hashtags"`
	ThumbnailConcept  string    `json:"thumbnailConcept"`
	EstimatedDuration string    `json:"estimatedDuration"`
	WordCount         int       `json:"wordCount"`
	KeyPoints         []string  `json:"keyPoints"`
	CallToAction      string    `json:"callToAction"`
	CreatedAt         time.Time `json:"createdAt"`
}
