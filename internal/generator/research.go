package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
)

const wikipediaExtractLimit = 1000

// ResearchTopic researches a topic against Wikipedia and assembles article
// sections from the findings. Research failures degrade to basic sections.
func (g *Generator) ResearchTopic(ctx context.Context, title, description string) []Section {
	research, err := g.searchWikipedia(ctx, title)
	if err != nil {
		log.Printf("Error researching topic %q: %v", title, err)
		return BasicSections(title, description)
	}
	return ArticleSections(title, description, research)
}

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikiExtractResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// searchWikipedia returns the intro extract of the top search result,
// truncated to 1000 characters. An empty string (no results) is not an error.
func (g *Generator) searchWikipedia(ctx context.Context, query string) (string, error) {
	searchParams := url.Values{
		"action":   {"query"},
		"format":   {"json"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {"3"},
	}

	var searchResp wikiSearchResponse
	if err := g.getJSON(ctx, g.WikipediaAPI+"?"+searchParams.Encode(), nil, &searchResp); err != nil {
		return "", err
	}
	if len(searchResp.Query.Search) == 0 {
		return "", nil
	}

	extractParams := url.Values{
		"action":          {"query"},
		"format":          {"json"},
		"titles":          {searchResp.Query.Search[0].Title},
		"prop":            {"extracts"},
		"exintro":         {"true"},
		"explaintext":     {"true"},
		"exsectionformat": {"plain"},
	}

	var extractResp wikiExtractResponse
	if err := g.getJSON(ctx, g.WikipediaAPI+"?"+extractParams.Encode(), nil, &extractResp); err != nil {
		return "", err
	}
	for _, page := range extractResp.Query.Pages {
		if page.Extract != "" {
			if runes := []rune(page.Extract); len(runes) > wikipediaExtractLimit {
				return string(runes[:wikipediaExtractLimit]), nil
			}
			return page.Extract, nil
		}
	}
	return "", nil
}

// getJSON performs a GET request and decodes the JSON response
func (g *Generator) getJSON(ctx context.Context, rawURL string, headers map[string]string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
