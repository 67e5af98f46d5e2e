package sitegen

import (
	"archive/zip"
	"fmt"
	"io"
	"time"

	"github.com/sakmpar/social-blog/internal/models"
)

// ExportFilename names the downloaded archive
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("sakmpar_social_blog_%s.zip", now.Format("20060102_150405"))
}

// Export writes a ZIP archive of the complete static site: one HTML page
// per published post, the index page, sitemap.xml, robots.txt and rss.xml.
// authors maps post author IDs to users for bylines.
func Export(w io.Writer, site SiteInfo, posts []models.Post, authors map[uint]models.User) error {
	zw := zip.NewWriter(w)

	entries := make([]IndexEntry, 0, len(posts))
	for i := range posts {
		post := &posts[i]

		authorName := site.Name
		if author, ok := authors[post.UserID]; ok {
			authorName = author.FullName
		}

		page, err := RenderPostPage(site, post, authorName)
		if err != nil {
			return fmt.Errorf("render post %d: %w", post.ID, err)
		}

		filename := fmt.Sprintf("%s-%s.html", Slugify(post.Title), post.CreatedAt.Format("20060102"))
		if err := writeZipFile(zw, filename, page); err != nil {
			return err
		}
		entries = append(entries, IndexEntry{
			Title:     post.Title,
			Filename:  filename,
			Published: post.PublishedAt.Format("2006-01-02"),
		})
	}

	index, err := RenderIndexPage(site, entries)
	if err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	if err := writeZipFile(zw, "index.html", index); err != nil {
		return err
	}

	sitemap, err := Sitemap(site, posts)
	if err != nil {
		return fmt.Errorf("render sitemap: %w", err)
	}
	if err := writeZipFile(zw, "sitemap.xml", sitemap); err != nil {
		return err
	}

	if err := writeZipFile(zw, "robots.txt", []byte(RobotsTxt(site))); err != nil {
		return err
	}

	feed, err := RSS(site, posts, time.Now())
	if err != nil {
		return fmt.Errorf("render rss: %w", err)
	}
	if err := writeZipFile(zw, "rss.xml", feed); err != nil {
		return err
	}

	return zw.Close()
}

func writeZipFile(zw *zip.Writer, name string, body []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(body)
	return err
}
