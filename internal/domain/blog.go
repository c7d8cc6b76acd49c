package domain

import "time"

// Post is a blog entry.
type Post struct {
	ID          string
	Title       string
	Slug        string
	Excerpt     string
	Body        string
	CoverURL    string
	Tags        []string
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreatePostParams contains parameters for creating a post.
type CreatePostParams struct {
	Title     string
	Slug      string
	Excerpt   string
	Body      string
	CoverURL  string
	Tags      []string
	Published bool
}

// UpdatePostParams contains parameters for updating a post.
// Pointer fields indicate optional updates (nil = no change).
type UpdatePostParams struct {
	Title     *string
	Slug      *string
	Excerpt   *string
	Body      *string
	CoverURL  *string
	Tags      []string
	Published *bool
}

var (
	ErrPostNotFound  = &Error{Code: ENOTFOUND, Message: "Post not found"}
	ErrDuplicateSlug = &Error{Code: ECONFLICT, Message: "Post slug already exists"}
)
