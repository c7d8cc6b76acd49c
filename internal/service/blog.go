package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/repository"
)

// BlogService provides blog post reads for the storefront and CRUD for the
// admin surface.
type BlogService interface {
	ListPublishedPosts(ctx context.Context) ([]domain.Post, error)
	GetPublishedPost(ctx context.Context, slug string) (domain.Post, error)

	ListAllPosts(ctx context.Context) ([]domain.Post, error)
	CreatePost(ctx context.Context, params domain.CreatePostParams) (domain.Post, error)
	UpdatePost(ctx context.Context, id string, params domain.UpdatePostParams) error
	DeletePost(ctx context.Context, id string) error
}

type blogService struct {
	repo repository.Querier
}

// NewBlogService creates the blog service.
func NewBlogService(repo repository.Querier) BlogService {
	return &blogService{repo: repo}
}

func (s *blogService) ListPublishedPosts(ctx context.Context) ([]domain.Post, error) {
	return s.repo.ListPosts(ctx, true)
}

func (s *blogService) GetPublishedPost(ctx context.Context, slug string) (domain.Post, error) {
	post, err := s.repo.GetPostBySlug(ctx, slug)
	if err != nil {
		return domain.Post{}, err
	}
	if !post.Published {
		return domain.Post{}, domain.ErrPostNotFound
	}
	return post, nil
}

func (s *blogService) ListAllPosts(ctx context.Context) ([]domain.Post, error) {
	return s.repo.ListPosts(ctx, false)
}

func (s *blogService) CreatePost(ctx context.Context, params domain.CreatePostParams) (domain.Post, error) {
	if strings.TrimSpace(params.Title) == "" {
		return domain.Post{}, domain.NewValidationError("post.create", "title", "is required")
	}

	slug := params.Slug
	if slug == "" {
		slug = Slugify(params.Title)
	}

	post := domain.Post{
		ID:        uuid.NewString(),
		Title:     params.Title,
		Slug:      slug,
		Excerpt:   params.Excerpt,
		Body:      params.Body,
		CoverURL:  params.CoverURL,
		Tags:      params.Tags,
		Published: params.Published,
	}
	if post.Published {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		return domain.Post{}, err
	}
	return s.repo.GetPostBySlug(ctx, post.Slug)
}

func (s *blogService) UpdatePost(ctx context.Context, id string, params domain.UpdatePostParams) error {
	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return domain.NewValidationError("post.update", "title", "cannot be empty")
	}
	return s.repo.UpdatePost(ctx, id, params)
}

func (s *blogService) DeletePost(ctx context.Context, id string) error {
	return s.repo.DeletePost(ctx, id)
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title and collapses anything non-alphanumeric into
// single hyphens.
func Slugify(title string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
