package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sakmpar/social-blog/internal/repositories"
	"github.com/sakmpar/social-blog/internal/sitegen"
)

// SEOHandler serves sitemap.xml, robots.txt and the RSS feed
type SEOHandler struct {
	postRepository repositories.PostRepository
	site           sitegen.SiteInfo
}

// NewSEOHandler creates a new SEOHandler
func NewSEOHandler(postRepo repositories.PostRepository, site sitegen.SiteInfo) *SEOHandler {
	return &SEOHandler{
		postRepository: postRepo,
		site:           site,
	}
}

// RegisterSEORoutes registers the root-level SEO routes
func (h *SEOHandler) RegisterSEORoutes(e *echo.Echo) {
	e.GET("/sitemap.xml", h.Sitemap)
	e.GET("/robots.txt", h.Robots)
	e.GET("/rss.xml", h.RSSFeed)
}

// Sitemap serves the XML sitemap of all published posts
func (h *SEOHandler) Sitemap(c echo.Context) error {
	posts, err := h.postRepository.GetAllPublishedPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	body, err := sitegen.Sitemap(h.site, posts)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "application/xml", body)
}

// Robots serves robots.txt
func (h *SEOHandler) Robots(c echo.Context) error {
	return c.String(http.StatusOK, sitegen.RobotsTxt(h.site))
}

// RSSFeed serves the RSS 2.0 feed of the newest posts
func (h *SEOHandler) RSSFeed(c echo.Context) error {
	posts, err := h.postRepository.GetAllPublishedPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	body, err := sitegen.RSS(h.site, posts, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "application/rss+xml", body)
}
