package sitegen

import (
	"encoding/xml"
	"time"

	"github.com/sakmpar/social-blog/internal/models"
)

// rssFeedLimit caps the feed at the newest posts
const rssFeedLimit = 20

const rssTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Description   string    `xml:"description"`
	Link          string    `xml:"link"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

// RSS renders the RSS 2.0 feed of the newest published posts. Posts must
// already be sorted newest-first.
func RSS(site SiteInfo, posts []models.Post, now time.Time) ([]byte, error) {
	if len(posts) > rssFeedLimit {
		posts = posts[:rssFeedLimit]
	}

	channel := rssChannel{
		Title:         site.Name,
		Description:   site.Description,
		Link:          site.URL,
		Language:      "en-us",
		LastBuildDate: now.UTC().Format(rssTimeFormat),
	}
	for i := range posts {
		post := &posts[i]
		channel.Items = append(channel.Items, rssItem{
			Title:       post.Title,
			Description: post.Description,
			Link:        site.PostURL(post),
			PubDate:     post.PublishedAt.UTC().Format(rssTimeFormat),
		})
	}

	body, err := xml.MarshalIndent(rssDocument{Version: "2.0", Channel: channel}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
