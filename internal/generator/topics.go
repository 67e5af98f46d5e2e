package generator

import (
	"context"
	"log"
	"math/rand"
	"regexp"
)

// Topic is one trending subject worth an article
type Topic struct {
	Title       string
	Description string
	Link        string
	Published   string
}

var leadingNumberRe = regexp.MustCompile(`^\d+\.\s*`)

var fallbackTopicTitles = []string{
	"Latest Technology Trends in 2025",
	"Health and Wellness Tips for Modern Life",
	"Digital Marketing Strategies That Work",
	"Sustainable Living Practices",
	"Remote Work Best Practices",
	"Financial Planning and Investment Advice",
	"Top Travel Destinations This Year",
	"Easy Cooking Recipes and Food Tips",
	"Fitness and Exercise Routines",
	"Home Improvement DIY Projects",
	"Artificial Intelligence and Machine Learning",
	"Cybersecurity Best Practices",
	"Electric Vehicles and Green Technology",
	"Social Media Marketing Trends",
	"Mental Health and Mindfulness",
	"Small Business Growth Strategies",
	"Photography Tips and Techniques",
	"Online Education and E-learning",
	"Cryptocurrency and Blockchain News",
	"Environmental Conservation Methods",
}

// TrendingTopics fetches exactly count topics for a language: Google Trends
// first, news feeds to top up, then the static fallback list.
func (g *Generator) TrendingTopics(ctx context.Context, language string, count int) []Topic {
	feedURL, ok := g.TrendsFeeds[language]
	if !ok {
		feedURL = g.TrendsFeeds["english"]
	}

	var topics []Topic
	feed, err := g.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		log.Printf("Error fetching Google Trends: %v", err)
	} else {
		for _, entry := range feed.Items {
			topics = append(topics, Topic{
				Title:       leadingNumberRe.ReplaceAllString(entry.Title, ""),
				Description: entry.Description,
				Link:        entry.Link,
				Published:   entry.Published,
			})
		}
	}

	if len(topics) < count {
		topics = append(topics, g.newsTopics(ctx, language, count-len(topics))...)
	}
	if len(topics) < count {
		topics = append(topics, fallbackTopics(count-len(topics))...)
	}
	if len(topics) > count {
		topics = topics[:count]
	}
	return topics
}

// newsTopics tops up from per-language news RSS feeds
func (g *Generator) newsTopics(ctx context.Context, language string, count int) []Topic {
	feeds, ok := g.NewsFeeds[language]
	if !ok {
		feeds = g.NewsFeeds["english"]
	}

	var topics []Topic
	for _, feedURL := range feeds {
		if len(topics) >= count {
			break
		}
		feed, err := g.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			log.Printf("Error fetching news from %s: %v", feedURL, err)
			continue
		}
		for _, entry := range feed.Items {
			if len(topics) >= count {
				break
			}
			topics = append(topics, Topic{
				Title:       entry.Title,
				Description: entry.Description,
				Link:        entry.Link,
				Published:   entry.Published,
			})
		}
	}
	return topics
}

// fallbackTopics draws from the static topic list when feeds come up short
func fallbackTopics(count int) []Topic {
	picks := rand.Perm(len(fallbackTopicTitles))
	if count > len(picks) {
		count = len(picks)
	}

	topics := make([]Topic, 0, count)
	for _, idx := range picks[:count] {
		title := fallbackTopicTitles[idx]
		topics = append(topics, Topic{
			Title:       title,
			Description: "Comprehensive guide and latest updates about " + title,
		})
	}
	return topics
}
