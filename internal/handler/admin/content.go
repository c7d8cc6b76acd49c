package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/service"
)

// ContentHandler manages the portfolio blocks, projects, blog posts, and the
// contact inbox.
type ContentHandler struct {
	content  service.ContentService
	blog     service.BlogService
	settings service.SettingsService
}

func NewContentHandler(content service.ContentService, blog service.BlogService, settings service.SettingsService) *ContentHandler {
	return &ContentHandler{content: content, blog: blog, settings: settings}
}

// UpdateHero handles PUT /admin/hero.
func (h *ContentHandler) UpdateHero(c echo.Context) error {
	var req struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		ImageURL string `json:"image_url"`
		CTA      string `json:"cta"`
		CTALink  string `json:"cta_link"`
	}
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.hero.update", "malformed request body")
	}

	hero, err := h.content.UpdateHero(c.Request().Context(), domain.Hero{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
		CTA:      req.CTA,
		CTALink:  req.CTALink,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hero)
}

// UpdateAbout handles PUT /admin/about.
func (h *ContentHandler) UpdateAbout(c echo.Context) error {
	var req struct {
		Headline string   `json:"headline"`
		Body     string   `json:"body"`
		ImageURL string   `json:"image_url"`
		Skills   []string `json:"skills"`
	}
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.about.update", "malformed request body")
	}

	about, err := h.content.UpdateAbout(c.Request().Context(), domain.About{
		Headline: req.Headline,
		Body:     req.Body,
		ImageURL: req.ImageURL,
		Skills:   req.Skills,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, about)
}

// ListProjects handles GET /admin/projects.
func (h *ContentHandler) ListProjects(c echo.Context) error {
	projects, err := h.content.ListAllProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"projects": projects})
}

// SaveProject handles PUT /admin/projects/:id, creating or replacing.
func (h *ContentHandler) SaveProject(c echo.Context) error {
	var req struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		ImageURL    string   `json:"image_url"`
		DemoURL     string   `json:"demo_url"`
		RepoURL     string   `json:"repo_url"`
		Tags        []string `json:"tags"`
		SortOrder   int      `json:"sort_order"`
		Published   bool     `json:"published"`
	}
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.project.save", "malformed request body")
	}

	err := h.content.SaveProject(c.Request().Context(), domain.Project{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DemoURL:     req.DemoURL,
		RepoURL:     req.RepoURL,
		Tags:        req.Tags,
		SortOrder:   req.SortOrder,
		Published:   req.Published,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteProject handles DELETE /admin/projects/:id.
func (h *ContentHandler) DeleteProject(c echo.Context) error {
	if err := h.content.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListPosts handles GET /admin/posts.
func (h *ContentHandler) ListPosts(c echo.Context) error {
	posts, err := h.blog.ListAllPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

type postBody struct {
	Title     *string  `json:"title"`
	Slug      *string  `json:"slug"`
	Excerpt   *string  `json:"excerpt"`
	Body      *string  `json:"body"`
	CoverURL  *string  `json:"cover_url"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
}

// CreatePost handles POST /admin/posts.
func (h *ContentHandler) CreatePost(c echo.Context) error {
	var req postBody
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.post.create", "malformed request body")
	}

	params := domain.CreatePostParams{Tags: req.Tags}
	if req.Title != nil {
		params.Title = *req.Title
	}
	if req.Slug != nil {
		params.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		params.Excerpt = *req.Excerpt
	}
	if req.Body != nil {
		params.Body = *req.Body
	}
	if req.CoverURL != nil {
		params.CoverURL = *req.CoverURL
	}
	if req.Published != nil {
		params.Published = *req.Published
	}

	post, err := h.blog.CreatePost(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// UpdatePost handles PATCH /admin/posts/:id.
func (h *ContentHandler) UpdatePost(c echo.Context) error {
	var req postBody
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.post.update", "malformed request body")
	}

	err := h.blog.UpdatePost(c.Request().Context(), c.Param("id"), domain.UpdatePostParams{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		CoverURL:  req.CoverURL,
		Tags:      req.Tags,
		Published: req.Published,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeletePost handles DELETE /admin/posts/:id.
func (h *ContentHandler) DeletePost(c echo.Context) error {
	if err := h.blog.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListContactMessages handles GET /admin/contact-messages.
func (h *ContentHandler) ListContactMessages(c echo.Context) error {
	msgs, err := h.content.ListContactMessages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"messages": msgs})
}

// UpdateSettings handles PATCH /admin/settings.
func (h *ContentHandler) UpdateSettings(c echo.Context) error {
	var req struct {
		Theme            *string `json:"theme"`
		ParticlesEnabled *bool   `json:"particles_enabled"`
	}
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.settings.update", "malformed request body")
	}

	settings, err := h.settings.UpdateSettings(c.Request().Context(), domain.UpdateSettingsParams{
		Theme:            req.Theme,
		ParticlesEnabled: req.ParticlesEnabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
