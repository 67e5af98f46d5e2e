// Package sitegen renders the site-wide SEO artifacts: sitemap.xml,
// robots.txt, the RSS 2.0 feed, and the standalone HTML pages bundled into
// the admin ZIP export.
package sitegen

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/sakmpar/social-blog/internal/models"
)

// SiteInfo carries the site identity stamped into every artifact
type SiteInfo struct {
	Name        string
	Description string
	URL         string
}

// PostURL is the canonical public URL of a post
func (s SiteInfo) PostURL(post *models.Post) string {
	return fmt.Sprintf("%s/posts/%d", s.URL, post.ID)
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders the XML sitemap: the homepage plus one entry per
// published post.
func Sitemap(site SiteInfo, posts []models.Post) ([]byte, error) {
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{{
			Loc:        site.URL + "/",
			LastMod:    time.Now().Format("2006-01-02"),
			ChangeFreq: "daily",
			Priority:   "1.0",
		}},
	}

	for i := range posts {
		post := &posts[i]
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        site.PostURL(post),
			LastMod:    post.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// RobotsTxt renders robots.txt with the sitemap pointer
func RobotsTxt(site SiteInfo) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", site.URL)
}
