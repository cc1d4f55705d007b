package generator

import (
	"fmt"
	"strings"

	"github.com/yt-trendscout/internal/models"
)

// GenerateScripts expands the top numScripts ideas into full video scripts
// with derived metadata (duration bucket, word count, key points,
// call-to-action). Ideas are assumed to be sorted best-first.
func (g *Generator) GenerateScripts(ideas []models.ContentIdea, numScripts int) []models.VideoScript {
	if numScripts > len(ideas) {
		numScripts = len(ideas)
	}

	scripts := make([]models.VideoScript, 0, numScripts)
	for i, idea := range ideas[:numScripts] {
		body := scriptForIdea(idea)
		scripts = append(scripts, models.VideoScript{
			ID:                i + 1,
			Title:             idea.Title,
			Category:          idea.Category,
			Script:            body,
			Hashtags:          idea.Hashtags,
			ThumbnailConcept:  idea.ThumbnailConcept,
			EstimatedDuration: estimateDuration(body),
			WordCount:         len(strings.Fields(body)),
			KeyPoints:         extractKeyPoints(body),
			CallToAction:      callToAction(idea.Category),
			CreatedAt:         g.now(),
		})
	}
	return scripts
}

// scriptForIdea dispatches on category to the matching skeleton. Unknown
// categories get the generic skeleton rather than failing.
func scriptForIdea(idea models.ContentIdea) string {
	switch idea.Category {
	case models.CategoryTutorial:
		return tutorialScript(idea.Title)
	case models.CategoryNews:
		return newsScript(idea.Title)
	case models.CategoryComparison:
		return comparisonScript(idea.Title)
	case models.CategoryExplanation:
		return explanationScript(idea.Title)
	case models.CategoryPrediction:
		return predictionScript(idea.Title)
	case models.CategoryReview:
		return reviewScript(idea.Title)
	default:
		return generalScript(idea.Title)
	}
}

func callToAction(category models.Category) string {
	if cta, ok := callsToAction[category]; ok {
		return cta
	}
	return genericCallToAction
}

// estimateDuration buckets a script's spoken length assuming 155 words per
// minute.
func estimateDuration(script string) string {
	minutes := float64(len(strings.Fields(script))) / 155

	switch n := int(minutes); {
	case minutes < 1:
		return "< 1 minute"
	case minutes < 5:
		return fmt.Sprintf("%d-%d minutes", n, n+1)
	case minutes < 10:
		return fmt.Sprintf("%d-%d minutes", n, n+2)
	default:
		return fmt.Sprintf("%d-%d minutes", n, n+3)
	}
}

// extractKeyPoints pulls up to five structured lines (steps, numbered or
// "First,"/"Second,"/"Finally," leads) from a script. When a script has no
// structured lines it falls back to sentences carrying emphasis words.
func extractKeyPoints(script string) []string {
	prefixes := []string{"Step ", "1.", "First,", "Second,", "Finally,"}

	var points []string
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		for _, prefix := range prefixes {
			if strings.HasPrefix(line, prefix) {
				points = append(points, line)
				break
			}
		}
	}

	if len(points) == 0 {
		for _, sentence := range strings.Split(script, ".") {
			lower := strings.ToLower(sentence)
			for _, phrase := range []string{"important", "key", "main", "crucial", "essential"} {
				if strings.Contains(lower, phrase) {
					points = append(points, strings.TrimSpace(sentence))
					break
				}
			}
		}
	}

	if len(points) > 5 {
		points = points[:5]
	}
	return points
}

func tutorialScript(title string) string {
	return fmt.Sprintf(`
Welcome back to the channel! Today we're going to %s.

If you're new here, I'm your host and I help people master AI and technology. Make sure to subscribe and hit the notification bell for more content like this.

Let's dive right in. In this tutorial, I'll walk you through everything step by step.

First, let me show you what we're building today. [SHOW DEMO]

Now, let's break this down into manageable steps:

Step 1: Setting Up Your Environment
Before we begin, you'll need to have the following installed...

Step 2: Understanding the Basics
Let me explain the core concepts we'll be using...

Step 3: Implementation
Now let's start coding. I'll explain each line as we go...

Step 4: Testing and Debugging
Let's run our code and see what happens...

Step 5: Optimization and Best Practices
Here are some ways to improve and optimize what we've built...

And that's it! You've successfully completed this tutorial.

If you found this helpful, please give it a thumbs up and subscribe for more AI tutorials. Drop a comment below if you have any questions or if there's something specific you'd like me to cover next.

Thanks for watching, and I'll see you in the next video!
`, strings.ToLower(title))
}

func newsScript(title string) string {
	return fmt.Sprintf(`
What's up everyone! Today I have some incredible news to share with you about %s.

Before we jump in, make sure you're subscribed because AI news moves fast and you don't want to miss anything important.

So here's what happened...

This is huge for several reasons. First, it means...

Second, this could completely change how we...

But here's what really caught my attention...

Now, you might be wondering what this means for you. Well...

Looking at the broader implications, this could lead to...

Industry experts are saying...

My take on this is...

What do you think about this development? Let me know in the comments below. Are you excited about this? Concerned? I want to hear your thoughts.

If you enjoyed this breakdown, hit that like button and subscribe for more AI news and analysis. I'll be covering more developments as they happen.

Thanks for watching, and I'll catch you in the next one!
`, strings.ToLower(title))
}

func comparisonScript(title string) string {
	return fmt.Sprintf(`
Hey everyone! Today we're settling the debate once and for all: %s

This is one of the most requested comparisons I've gotten, so let's break it down systematically.

First, let me give you a quick overview of both options...

Now, let's compare them across several key criteria:

Performance:
Let me show you some real-world tests...

Ease of Use:
From a user experience perspective...

Cost:
Here's the pricing breakdown...

Features:
Let's look at what each one offers...

Use Cases:
When would you choose one over the other?

Based on all of this testing and analysis, here's my verdict...

The winner depends on your specific needs. If you're looking for X, go with option A. If you need Y, option B is your best bet.

What's your experience been with these tools? Drop a comment and let me know which one you prefer and why.

Don't forget to like this video if it helped you make a decision, and subscribe for more tech comparisons and reviews.

See you next time!
`, title)
}

func explanationScript(title string) string {
	return fmt.Sprintf(`
Have you ever wondered about %s? Today we're going to break it down in simple terms that anyone can understand.

Welcome back to the channel where we make complex technology accessible to everyone. If you're new here, subscribe for more explanations like this.

Let's start with the basics. What exactly is...?

To understand this better, let's use an analogy...

Now, here's where it gets interesting...

The key components are...

Here's how it all works together...

But why does this matter? Well...

The real-world applications are incredible...

Some common misconceptions people have are...

Looking toward the future...

I hope this explanation helped clarify things for you. If you have any questions, drop them in the comments and I'll do my best to answer them.

Like this video if you learned something new, and subscribe for more deep dives into technology and AI.

Thanks for watching!
`, strings.ToLower(title))
}

func predictionScript(title string) string {
	return fmt.Sprintf(`
What if I told you that %s?

Today we're looking into the future and I'm going to share some predictions that might surprise you.

Make sure you're subscribed because predicting the future of AI is what we do here, and you don't want to miss what's coming next.

Based on current trends and developments, here's what I see happening...

The evidence for this prediction comes from several sources...

Major companies are already positioning themselves for this shift...

The timeline I'm predicting is...

Here are the key indicators to watch for...

Now, this could go a few different ways...

Scenario 1: If everything goes as expected...

Scenario 2: If there are major breakthroughs...

Scenario 3: If we hit unexpected obstacles...

What does this mean for you? How should you prepare?

My advice is...

Remember, these are predictions based on current data and trends. The future is never certain, but being prepared gives you an advantage.

What do you think? Do you agree with my predictions? Share your thoughts in the comments.

Hit like if you enjoy these future-focused videos, and subscribe for more AI predictions and analysis.

Until next time, keep looking forward!
`, strings.ToLower(title))
}

func reviewScript(title string) string {
	return fmt.Sprintf(`
I've been using this for weeks now, and today I'm giving you my honest review of %s.

Before we start, quick reminder to subscribe if you want more honest tech reviews without the hype.

First impressions when I started using this...

Here's what I love about it...

But here's what frustrated me...

Let me show you how it performs in real-world scenarios...

[DEMO/SCREEN RECORDING]

Pricing and value for money...

How does it compare to alternatives?

Who is this really for?

My final verdict...

Pros:
- [List key advantages]

Cons:
- [List main drawbacks]

Overall rating: X out of 10

Would I recommend it? Here's my take...

That's my honest review. What questions do you have? Drop them in the comments and I'll answer them.

If this review helped you make a decision, please like and subscribe for more honest tech reviews.

Thanks for watching!
`, strings.ToLower(title))
}

func generalScript(title string) string {
	return fmt.Sprintf(`
Today we're talking about %s, and I think you're going to find this really interesting.

Welcome back to the channel! If you're new here, I create content about AI and technology. Make sure to subscribe for more videos like this.

Let me start by explaining why this topic matters...

Here's what most people don't realize...

Let me break this down for you...

The implications of this are huge because...

Here's a real example to illustrate this point...

Now, you might be thinking...

What does this mean for the future?

My take on all of this is...

I'd love to hear your thoughts on this topic. Let me know in the comments what you think.

If you found this video valuable, please give it a like and subscribe for more content about AI and technology.

Thanks for watching, and I'll see you in the next video!
`, title)
}
