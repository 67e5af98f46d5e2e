package sitegen

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/sakmpar/social-blog/internal/models"
	"github.com/sakmpar/social-blog/internal/seo"
)

var postPageTemplate = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Meta.Title}} - {{.Site.Name}}</title>
    <meta name="description" content="{{.Meta.MetaDescription}}">
    <meta name="keywords" content="{{.Meta.Keywords}}">
    <meta name="robots" content="{{.Meta.Robots}}">
    <link rel="canonical" href="{{.CanonicalURL}}">
    {{.OGTags}}
    {{.TwitterTags}}
    <script type="application/ld+json">{{.SchemaMarkup}}</script>
</head>
<body>
    <article>
        <h1>{{.Post.Title}}</h1>
        <p class="byline">By {{.AuthorName}} · {{.Post.PublishedAt.Format "January 2, 2006"}} · {{.Meta.ReadingTime}} min read</p>
        {{if .Post.ImageURL}}<img src="{{.Post.ImageURL}}" alt="{{.Post.Title}}">{{end}}
        {{.Body}}
        <footer>
            <p><a href="index.html">{{.Site.Name}}</a> — {{.Site.Description}}</p>
        </footer>
    </article>
</body>
</html>
`))

var indexPageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Site.Name}}</title>
    <meta name="description" content="{{.Site.Description}}">
</head>
<body>
    <h1>{{.Site.Name}}</h1>
    <p>{{.Site.Description}}</p>
    <ul>
    {{range .Entries}}
        <li><a href="{{.Filename}}">{{.Title}}</a> <small>{{.Published}}</small></li>
    {{end}}
    </ul>
</body>
</html>
`))

// IndexEntry is one post link on the exported index page
type IndexEntry struct {
	Title     string
	Filename  string
	Published string
}

type postPageData struct {
	Site         SiteInfo
	Post         *models.Post
	AuthorName   string
	Meta         seo.Metadata
	CanonicalURL string
	OGTags       template.HTML
	TwitterTags  template.HTML
	SchemaMarkup template.JS
	Body         template.HTML
}

// RenderPostPage renders a standalone, SEO-complete HTML page for a post
func RenderPostPage(site SiteInfo, post *models.Post, authorName string) ([]byte, error) {
	meta := seo.Generate(post.Title, post.Content, post.ImageURL, site.Name)

	var buf bytes.Buffer
	err := postPageTemplate.Execute(&buf, postPageData{
		Site:         site,
		Post:         post,
		AuthorName:   authorName,
		Meta:         meta,
		CanonicalURL: site.PostURL(post),
		OGTags:       template.HTML(meta.OGTags),
		TwitterTags:  template.HTML(meta.TwitterTags),
		SchemaMarkup: template.JS(meta.SchemaMarkup),
		Body:         formatContent(post.Content),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderIndexPage renders the exported site index
func RenderIndexPage(site SiteInfo, entries []IndexEntry) ([]byte, error) {
	var buf bytes.Buffer
	err := indexPageTemplate.Execute(&buf, struct {
		Site    SiteInfo
		Entries []IndexEntry
	}{site, entries})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatContent converts stored post content ("## Heading" sections, "•"
// bullets, blank-line paragraphs) into HTML. Text is escaped before markup
// is applied.
func formatContent(content string) template.HTML {
	var b strings.Builder
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		switch {
		case strings.HasPrefix(block, "## "):
			b.WriteString("<h2>")
			b.WriteString(template.HTMLEscapeString(strings.TrimPrefix(block, "## ")))
			b.WriteString("</h2>\n")
		case strings.HasPrefix(block, "• "):
			b.WriteString("<ul>\n")
			for _, line := range strings.Split(block, "\n") {
				line = strings.TrimSpace(strings.TrimPrefix(line, "• "))
				if line == "" {
					continue
				}
				b.WriteString("<li>")
				b.WriteString(template.HTMLEscapeString(line))
				b.WriteString("</li>\n")
			}
			b.WriteString("</ul>\n")
		default:
			b.WriteString("<p>")
			b.WriteString(template.HTMLEscapeString(block))
			b.WriteString("</p>\n")
		}
	}
	return template.HTML(b.String())
}

var (
	slugInvalidRe   = regexp.MustCompile(`[^\w\s-]`)
	slugSeparatorRe = regexp.MustCompile(`[-\s]+`)
)

// Slugify converts a post title into a safe export filename stem,
// truncated to 50 characters.
func Slugify(title string) string {
	slug := slugInvalidRe.ReplaceAllString(title, "")
	slug = strings.TrimSpace(slug)
	slug = slugSeparatorRe.ReplaceAllString(slug, "-")
	slug = strings.ToLower(slug)
	if len(slug) > 50 {
		slug = slug[:50]
	}
	return strings.Trim(slug, "-")
}
