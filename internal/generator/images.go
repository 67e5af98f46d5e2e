package generator

import (
	"context"
	"fmt"
	"log"
	"net/url"
)

// Image is a header image for a generated article
type Image struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	Author    string `json:"author"`
	AuthorURL string `json:"author_url"`
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		AltDescription string `json:"alt_description"`
		User           struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

// FetchImage searches Unsplash for a landscape image matching the query.
// Without an access key, or on any failure, it returns a placeholder.
func (g *Generator) FetchImage(ctx context.Context, query string) Image {
	if g.unsplashKey == "" {
		return placeholderImage(query)
	}

	params := url.Values{
		"query":       {query},
		"per_page":    {"1"},
		"orientation": {"landscape"},
	}
	headers := map[string]string{
		"Authorization": "Client-ID " + g.unsplashKey,
	}

	var resp unsplashSearchResponse
	if err := g.getJSON(ctx, g.UnsplashAPI+"?"+params.Encode(), headers, &resp); err != nil {
		log.Printf("Error fetching Unsplash image: %v", err)
		return placeholderImage(query)
	}
	if len(resp.Results) == 0 {
		return placeholderImage(query)
	}

	photo := resp.Results[0]
	alt := photo.AltDescription
	if alt == "" {
		alt = query
	}
	return Image{
		URL:       photo.URLs.Regular,
		Alt:       alt,
		Author:    photo.User.Name,
		AuthorURL: photo.User.Links.HTML,
	}
}

func placeholderImage(query string) Image {
	return Image{
		URL:       fmt.Sprintf("https://via.placeholder.com/800x600/4A90E2/FFFFFF?text=%s", url.QueryEscape(query)),
		Alt:       query,
		Author:    "Placeholder",
		AuthorURL: "#",
	}
}
