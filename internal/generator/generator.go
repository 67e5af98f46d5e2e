// Package generator produces blog posts from trending topics: it pulls
// topics from Google Trends and news RSS feeds, researches them against the
// Wikipedia API, attaches an Unsplash image, and persists the assembled
// articles as auto-generated posts.
package generator

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sakmpar/social-blog/internal/models"
	"github.com/sakmpar/social-blog/internal/repositories"
	"github.com/sakmpar/social-blog/internal/seo"
)

// Default content source endpoints. Fields on Generator override them in
// tests.
const (
	defaultWikipediaAPI = "https://en.wikipedia.org/w/api.php"
	defaultUnsplashAPI  = "https://api.unsplash.com/search/photos"

	autoPostTags = "trending,news,auto"
)

func defaultTrendsFeeds() map[string]string {
	return map[string]string{
		"english": "https://trends.google.com/trends/trendingsearches/daily/rss?geo=US",
		"hindi":   "https://trends.google.com/trends/trendingsearches/daily/rss?geo=IN",
		"global":  "https://trends.google.com/trends/trendingsearches/daily/rss?geo=",
	}
}

func defaultNewsFeeds() map[string][]string {
	return map[string][]string{
		"english": {
			"https://rss.cnn.com/rss/edition.rss",
			"https://feeds.bbci.co.uk/news/rss.xml",
			"https://rss.reuters.com/reuters/topNews",
		},
		"hindi": {
			"https://feeds.abplive.com/abplive/hindi-news/home",
			"https://www.amarujala.com/rss/breaking-news.xml",
		},
	}
}

// Generator assembles and stores auto-generated posts
type Generator struct {
	posts         repositories.PostRepository
	users         repositories.UserRepository
	parser        *gofeed.Parser
	httpClient    *http.Client
	unsplashKey   string
	adminUsername string
	siteName      string

	// Endpoints, overridable in tests
	TrendsFeeds  map[string]string
	NewsFeeds    map[string][]string
	WikipediaAPI string
	UnsplashAPI  string
}

// New creates a Generator backed by the given repositories
func New(posts repositories.PostRepository, users repositories.UserRepository, unsplashKey, adminUsername, siteName string) *Generator {
	return &Generator{
		posts:         posts,
		users:         users,
		parser:        gofeed.NewParser(),
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		unsplashKey:   unsplashKey,
		adminUsername: adminUsername,
		siteName:      siteName,
		TrendsFeeds:   defaultTrendsFeeds(),
		NewsFeeds:     defaultNewsFeeds(),
		WikipediaAPI:  defaultWikipediaAPI,
		UnsplashAPI:   defaultUnsplashAPI,
	}
}

// Result reports one generation run
type Result struct {
	Count  int      `json:"count"`
	Titles []string `json:"titles"`
}

// GenerateAndStore builds count articles in the given language and stores
// them as published posts under the given category, authored by the admin
// account. Per-article failures are logged and skipped.
func (g *Generator) GenerateAndStore(ctx context.Context, language string, count int, category string) (*Result, error) {
	admin, err := g.users.GetUserByUsername(g.adminUsername)
	if err != nil {
		return nil, err
	}

	topics := g.TrendingTopics(ctx, language, count)

	result := &Result{}
	for _, topic := range topics {
		sections := g.ResearchTopic(ctx, topic.Title, topic.Description)
		image := g.FetchImage(ctx, topic.Title)
		content := RenderSections(sections)
		meta := seo.Generate(topic.Title, content, image.URL, g.siteName)

		title := topic.Title
		if runes := []rune(title); len(runes) > 200 {
			title = string(runes[:200])
		}

		now := time.Now()
		post := &models.Post{
			Title:           title,
			Content:         content,
			Description:     meta.MetaDescription,
			ImageURL:        image.URL,
			Tags:            autoPostTags,
			Category:        category,
			Status:          models.PostStatusPublished,
			IsAutoGenerated: true,
			UserID:          admin.ID,
			PublishedAt:     now,
		}
		if err := g.posts.CreatePost(post); err != nil {
			log.Printf("Error storing generated post %q: %v", title, err)
			continue
		}
		result.Count++
		result.Titles = append(result.Titles, title)
	}

	return result, nil
}
