package storefront

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/service"
)

// ContentHandler serves the portfolio blocks, blog reads, and the contact
// form.
type ContentHandler struct {
	content service.ContentService
	blog    service.BlogService
}

func NewContentHandler(content service.ContentService, blog service.BlogService) *ContentHandler {
	return &ContentHandler{content: content, blog: blog}
}

// Hero handles GET /api/hero. A site without hero content is an empty
// object, not a 404: the frontend renders its default in that case.
func (h *ContentHandler) Hero(c echo.Context) error {
	hero, err := h.content.GetHero(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			return c.JSON(http.StatusOK, echo.Map{})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"title":     hero.Title,
		"subtitle":  hero.Subtitle,
		"image_url": hero.ImageURL,
		"cta":       hero.CTA,
		"cta_link":  hero.CTALink,
	})
}

// About handles GET /api/about.
func (h *ContentHandler) About(c echo.Context) error {
	about, err := h.content.GetAbout(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrAboutNotFound) {
			return c.JSON(http.StatusOK, echo.Map{})
		}
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"headline":  about.Headline,
		"body":      about.Body,
		"image_url": about.ImageURL,
		"skills":    about.Skills,
	})
}

// Projects handles GET /api/projects.
func (h *ContentHandler) Projects(c echo.Context) error {
	projects, err := h.content.ListPublishedProjects(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]echo.Map, len(projects))
	for i, p := range projects {
		out[i] = echo.Map{
			"id":          p.ID,
			"title":       p.Title,
			"description": p.Description,
			"image_url":   p.ImageURL,
			"demo_url":    p.DemoURL,
			"repo_url":    p.RepoURL,
			"tags":        p.Tags,
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"projects": out})
}

// ListPosts handles GET /api/posts.
func (h *ContentHandler) ListPosts(c echo.Context) error {
	posts, err := h.blog.ListPublishedPosts(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]echo.Map, len(posts))
	for i, p := range posts {
		out[i] = echo.Map{
			"title":        p.Title,
			"slug":         p.Slug,
			"excerpt":      p.Excerpt,
			"cover_url":    p.CoverURL,
			"tags":         p.Tags,
			"published_at": p.PublishedAt,
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": out})
}

// GetPost handles GET /api/posts/:slug.
func (h *ContentHandler) GetPost(c echo.Context) error {
	post, err := h.blog.GetPublishedPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"title":        post.Title,
		"slug":         post.Slug,
		"excerpt":      post.Excerpt,
		"body":         post.Body,
		"cover_url":    post.CoverURL,
		"tags":         post.Tags,
		"published_at": post.PublishedAt,
	})
}

// SubmitContact handles POST /api/contact.
func (h *ContentHandler) SubmitContact(c echo.Context) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("contact.submit", "malformed request body")
	}

	err := h.content.SubmitContactMessage(c.Request().Context(), service.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusAccepted)
}
