package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestOptimizeTitleShortTitleUnchanged(t *testing.T) {
	title := "Short and sweet"
	if got := OptimizeTitle(title); got != title {
		t.Errorf("expected %q, got %q", title, got)
	}
}

func TestOptimizeTitleTruncatesOnWordBoundary(t *testing.T) {
	title := "This is a very long article title that definitely exceeds the search result budget"
	got := OptimizeTitle(title)

	if len(got) > MaxTitleLength {
		t.Errorf("optimized title too long: %d chars", len(got))
	}
	if strings.HasSuffix(got, " ") {
		t.Errorf("optimized title has trailing space: %q", got)
	}
	// A cut at a word boundary never ends mid-word.
	lastWord := got[strings.LastIndex(got, " ")+1:]
	if !strings.Contains(title, lastWord+" ") && !strings.HasSuffix(title, lastWord) {
		t.Errorf("title cut mid-word: %q", got)
	}
}

func TestOptimizeTitleTruncatesMultibyteTitles(t *testing.T) {
	// A two-byte rune straddling the old byte cut must not be split.
	got := OptimizeTitle(strings.Repeat("x", 59) + "टट")
	if !utf8.ValidString(got) {
		t.Fatalf("optimized title is not valid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) > MaxTitleLength {
		t.Errorf("optimized title too long: %d chars", utf8.RuneCountInString(got))
	}

	got = OptimizeTitle(strings.Repeat("ताज़ा समाचार ", 15))
	if !utf8.ValidString(got) {
		t.Fatalf("optimized title is not valid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) > MaxTitleLength {
		t.Errorf("optimized title too long: %d chars", utf8.RuneCountInString(got))
	}
}

func TestOptimizeTitleNormalizesWhitespace(t *testing.T) {
	got := OptimizeTitle("  Spaced\t\tout   title  ")
	if got != "Spaced out title" {
		t.Errorf("expected normalized title, got %q", got)
	}
}

func TestMetaDescriptionPacksSentences(t *testing.T) {
	content := "First sentence here. Second sentence follows. " +
		strings.Repeat("This filler sentence is long enough to overflow the budget. ", 5)
	got := MetaDescription(content)

	if len(got) > MaxDescriptionLength {
		t.Errorf("description too long: %d chars", len(got))
	}
	if !strings.HasPrefix(got, "First sentence here.") {
		t.Errorf("description should start with the first sentence, got %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("description should end with a period, got %q", got)
	}
}

func TestMetaDescriptionMultibyteContent(t *testing.T) {
	content := strings.Repeat("ताज़ा ख़बरें और विश्लेषण यहाँ पढ़ें. ", 10)
	got := MetaDescription(content)

	if !utf8.ValidString(got) {
		t.Fatalf("description is not valid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) > MaxDescriptionLength {
		t.Errorf("description too long: %d chars", utf8.RuneCountInString(got))
	}
	if !strings.HasPrefix(got, "ताज़ा ख़बरें") {
		t.Errorf("description should start with the first sentence, got %q", got)
	}
}

func TestMetaDescriptionStripsHTML(t *testing.T) {
	got := MetaDescription("<p>Plain <b>text</b> only.</p>")
	if strings.ContainsAny(got, "<>") {
		t.Errorf("description contains HTML: %q", got)
	}
}

func TestMetaDescriptionEmptyContentFallsBack(t *testing.T) {
	got := MetaDescription("")
	if got == "" {
		t.Error("expected fallback description for empty content")
	}
}

func TestExtractKeywordsSkipsStopWords(t *testing.T) {
	got := ExtractKeywords("The Future of Technology", "technology is the future and the future is technology", 10)

	for _, kw := range strings.Split(got, ", ") {
		if kw == "the" || kw == "of" || kw == "is" || kw == "and" {
			t.Errorf("stop word %q leaked into keywords %q", kw, got)
		}
	}
	if !strings.Contains(got, "technology") {
		t.Errorf("expected 'technology' in keywords, got %q", got)
	}
}

func TestExtractKeywordsRanksByFrequency(t *testing.T) {
	got := ExtractKeywords("", "golang golang golang redis redis postgres", 10)
	words := strings.Split(got, ", ")
	if len(words) < 3 || words[0] != "golang" || words[1] != "redis" || words[2] != "postgres" {
		t.Errorf("unexpected keyword ranking: %q", got)
	}
}

func TestExtractKeywordsCapped(t *testing.T) {
	got := ExtractKeywords("", "alpha beta gamma delta epsilon zeta", 3)
	if n := len(strings.Split(got, ", ")); n != 3 {
		t.Errorf("expected 3 keywords, got %d (%q)", n, got)
	}
}

func TestSchemaMarkupIsValidJSONLD(t *testing.T) {
	markup := SchemaMarkup("Title", "Description", "https://img.example/pic.jpg", "SAKMPAR News")

	var schema map[string]interface{}
	if err := json.Unmarshal([]byte(markup), &schema); err != nil {
		t.Fatalf("schema markup is not valid JSON: %v", err)
	}
	if schema["@type"] != "Article" {
		t.Errorf("expected Article schema, got %v", schema["@type"])
	}
	if schema["headline"] != "Title" {
		t.Errorf("expected headline, got %v", schema["headline"])
	}
	if _, ok := schema["image"]; !ok {
		t.Error("expected image object in schema")
	}
}

func TestSchemaMarkupOmitsImageWhenEmpty(t *testing.T) {
	markup := SchemaMarkup("Title", "Description", "", "Site")
	var schema map[string]interface{}
	if err := json.Unmarshal([]byte(markup), &schema); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := schema["image"]; ok {
		t.Error("did not expect image object without an image URL")
	}
}

func TestOpenGraphTagsEscapeHTML(t *testing.T) {
	tags := OpenGraphTags(`Breaking <news> & "quotes"`, "desc", "", "Site")
	if strings.Contains(tags, "<news>") {
		t.Errorf("unescaped title in OG tags: %q", tags)
	}
	if !strings.Contains(tags, `property="og:title"`) {
		t.Errorf("missing og:title tag: %q", tags)
	}
}

func TestTwitterTagsIncludeImageOnlyWhenSet(t *testing.T) {
	withImage := TwitterTags("t", "d", "https://img.example/p.jpg")
	if !strings.Contains(withImage, "twitter:image") {
		t.Error("expected twitter:image tag")
	}
	withoutImage := TwitterTags("t", "d", "")
	if strings.Contains(withoutImage, "twitter:image") {
		t.Error("did not expect twitter:image tag")
	}
}

func TestReadingTime(t *testing.T) {
	if got := ReadingTime("just a few words"); got != 1 {
		t.Errorf("expected minimum 1 minute, got %d", got)
	}
	long := strings.Repeat("word ", 400)
	if got := ReadingTime(long); got != 2 {
		t.Errorf("expected 2 minutes for 400 words, got %d", got)
	}
}

func TestGenerateBundle(t *testing.T) {
	meta := Generate("A Big Story About Go", "Go makes servers simple. Concurrency is built in.", "https://img.example/go.jpg", "SAKMPAR News")

	if meta.Title == "" || meta.MetaDescription == "" || meta.Keywords == "" {
		t.Errorf("incomplete metadata: %+v", meta)
	}
	if meta.Robots != "index, follow" {
		t.Errorf("unexpected robots directive: %q", meta.Robots)
	}
	if meta.ReadingTime < 1 {
		t.Errorf("reading time below minimum: %d", meta.ReadingTime)
	}
}
