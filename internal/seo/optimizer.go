// Package seo generates search-engine metadata for blog posts: optimized
// titles, meta descriptions, keyword lists, JSON-LD Article schema, Open
// Graph and Twitter Card tags, and estimated reading time.
package seo

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxTitleLength is the search-result title budget.
	MaxTitleLength = 60
	// MaxDescriptionLength is the meta description budget.
	MaxDescriptionLength = 160

	wordsPerMinute = 200
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"the a an and or but in on at to for of with by " +
			"is are was were be been being have has had do does did " +
			"will would could should may might can this that these those " +
			"i you he she it we they me him her us them my your " +
			"his its our their into from up down out off over " +
			"under again further then once more also very just here there " +
			"when where why how all any both each few most other " +
			"some such only own same so than too") {
		stopWords[w] = struct{}{}
	}
}

// Metadata is the full SEO bundle for a post
type Metadata struct {
	Title           string `json:"seo_title"`
	MetaDescription string `json:"meta_description"`
	Keywords        string `json:"keywords"`
	SchemaMarkup    string `json:"schema_markup"`
	OGTags          string `json:"og_tags"`
	TwitterTags     string `json:"twitter_tags"`
	Robots          string `json:"robots"`
	ReadingTime     int    `json:"reading_time"`
}

// Generate builds the complete metadata bundle for an article
func Generate(title, content, imageURL, siteName string) Metadata {
	seoTitle := OptimizeTitle(title)
	description := MetaDescription(content)

	return Metadata{
		Title:           seoTitle,
		MetaDescription: description,
		Keywords:        ExtractKeywords(title, content, 10),
		SchemaMarkup:    SchemaMarkup(seoTitle, description, imageURL, siteName),
		OGTags:          OpenGraphTags(seoTitle, description, imageURL, siteName),
		TwitterTags:     TwitterTags(seoTitle, description, imageURL),
		Robots:          "index, follow",
		ReadingTime:     ReadingTime(content),
	}
}

// OptimizeTitle normalizes whitespace and truncates the title to the SEO
// budget, preferring a word boundary when one is close enough. The budget
// counts characters, not bytes, so multi-byte scripts survive the cut.
func OptimizeTitle(title string) string {
	clean := whitespaceRe.ReplaceAllString(strings.TrimSpace(title), " ")
	runes := []rune(clean)
	if len(runes) <= MaxTitleLength {
		return clean
	}

	cut := runes[:MaxTitleLength]
	for i := len(cut) - 1; i > MaxTitleLength*8/10; i-- {
		if cut[i] == ' ' {
			return string(cut[:i])
		}
	}
	return string(cut)
}

// MetaDescription packs leading sentences of the content into the meta
// description budget.
func MetaDescription(content string) string {
	clean := htmlTagRe.ReplaceAllString(content, "")
	clean = strings.TrimSpace(whitespaceRe.ReplaceAllString(clean, " "))

	var description string
	for _, sentence := range strings.Split(clean, ". ") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		test := description + sentence + ". "
		if utf8.RuneCountInString(test) > MaxDescriptionLength {
			break
		}
		description = test
	}

	if runes := []rune(description); len(runes) > MaxDescriptionLength {
		description = string(runes[:MaxDescriptionLength-3]) + "..."
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return "Discover insights and information on this important topic."
	}
	if !strings.HasSuffix(description, ".") && !strings.HasSuffix(description, "...") {
		description += "."
	}
	return description
}

// ExtractKeywords returns the most frequent non-stop-words of the title and
// content, comma-joined, capped at max.
func ExtractKeywords(title, content string, max int) string {
	fullText := strings.ToLower(title + " " + content)
	clean := nonWordRe.ReplaceAllString(fullText, " ")
	clean = whitespaceRe.ReplaceAllString(clean, " ")

	freq := map[string]int{}
	order := map[string]int{}
	for i, word := range strings.Fields(clean) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, seen := freq[word]; !seen {
			order[word] = i
		}
		freq[word]++
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	// Stable ranking: frequency desc, then first appearance.
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return order[words[i]] < order[words[j]]
	})

	if len(words) > max {
		words = words[:max]
	}
	if len(words) == 0 {
		return strings.ToLower(title)
	}
	return strings.Join(words, ", ")
}

// SchemaMarkup renders a JSON-LD Article object
func SchemaMarkup(title, description, imageURL, siteName string) string {
	now := time.Now().UTC().Format(time.RFC3339)
	schema := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      title,
		"description":   description,
		"datePublished": now,
		"dateModified":  now,
		"author": map[string]interface{}{
			"@type": "Organization",
			"name":  siteName,
		},
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  siteName,
		},
	}
	if imageURL != "" {
		schema["image"] = map[string]interface{}{
			"@type":  "ImageObject",
			"url":    imageURL,
			"width":  800,
			"height": 600,
		}
	}

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}

// OpenGraphTags renders Open Graph meta tags
func OpenGraphTags(title, description, imageURL, siteName string) string {
	tags := []string{
		`<meta property="og:type" content="article">`,
		fmt.Sprintf(`<meta property="og:title" content="%s">`, html.EscapeString(title)),
		fmt.Sprintf(`<meta property="og:description" content="%s">`, html.EscapeString(description)),
		fmt.Sprintf(`<meta property="og:site_name" content="%s">`, html.EscapeString(siteName)),
		fmt.Sprintf(`<meta property="article:published_time" content="%s">`, time.Now().UTC().Format(time.RFC3339)),
	}
	if imageURL != "" {
		tags = append(tags,
			fmt.Sprintf(`<meta property="og:image" content="%s">`, imageURL),
			`<meta property="og:image:width" content="800">`,
			`<meta property="og:image:height" content="600">`,
			fmt.Sprintf(`<meta property="og:image:alt" content="%s">`, html.EscapeString(title)),
		)
	}
	return strings.Join(tags, "\n    ")
}

// TwitterTags renders Twitter Card meta tags
func TwitterTags(title, description, imageURL string) string {
	tags := []string{
		`<meta name="twitter:card" content="summary_large_image">`,
		fmt.Sprintf(`<meta name="twitter:title" content="%s">`, html.EscapeString(title)),
		fmt.Sprintf(`<meta name="twitter:description" content="%s">`, html.EscapeString(description)),
	}
	if imageURL != "" {
		tags = append(tags, fmt.Sprintf(`<meta name="twitter:image" content="%s">`, imageURL))
	}
	return strings.Join(tags, "\n    ")
}

// ReadingTime estimates reading time in minutes at 200 wpm, minimum 1
func ReadingTime(content string) int {
	clean := htmlTagRe.ReplaceAllString(content, "")
	words := len(strings.Fields(clean))
	minutes := (words + wordsPerMinute/2) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
