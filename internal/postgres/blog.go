package postgres

import (
	"context"

	"github.com/wicaksana/atelier/internal/domain"
)

const postColumns = `
	id::text, title, slug, excerpt, body, cover_url, tags,
	published, published_at, created_at, updated_at`

func (s *Store) ListPosts(ctx context.Context, onlyPublished bool) ([]domain.Post, error) {
	query := `SELECT` + postColumns + ` FROM posts`
	if onlyPublished {
		query += ` WHERE published`
	}
	query += ` ORDER BY COALESCE(published_at, created_at) DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.Internal(err, "postgres.list_posts", "failed to list posts")
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Body, &p.CoverURL, &p.Tags,
			&p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, domain.Internal(err, "postgres.list_posts", "failed to scan post")
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "postgres.list_posts", "failed to read posts")
	}
	return posts, nil
}

func (s *Store) GetPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	var p domain.Post
	err := s.pool.QueryRow(ctx,
		`SELECT`+postColumns+` FROM posts WHERE slug = $1`, slug,
	).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Body, &p.CoverURL, &p.Tags,
		&p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return domain.Post{}, domain.ErrPostNotFound
		}
		return domain.Post{}, domain.Internal(err, "postgres.get_post", "failed to get post")
	}
	return p, nil
}

func (s *Store) CreatePost(ctx context.Context, post domain.Post) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO posts (id, title, slug, excerpt, body, cover_url, tags, published, published_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9)`,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Body, post.CoverURL,
		listOrEmpty(post.Tags), post.Published, post.PublishedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSlug
		}
		return domain.Internal(err, "postgres.create_post", "failed to create post")
	}
	return nil
}

func (s *Store) UpdatePost(ctx context.Context, id string, params domain.UpdatePostParams) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE posts SET
			title      = COALESCE($2, title),
			slug       = COALESCE($3, slug),
			excerpt    = COALESCE($4, excerpt),
			body       = COALESCE($5, body),
			cover_url  = COALESCE($6, cover_url),
			tags       = COALESCE($7, tags),
			published  = COALESCE($8, published),
			published_at = CASE
				WHEN $8::boolean AND NOT published THEN now()
				ELSE published_at
			END,
			updated_at = now()
		WHERE id = $1::uuid`,
		id, params.Title, params.Slug, params.Excerpt, params.Body,
		params.CoverURL, params.Tags, params.Published,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSlug
		}
		return domain.Internal(err, "postgres.update_post", "failed to update post")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1::uuid`, id)
	if err != nil {
		return domain.Internal(err, "postgres.delete_post", "failed to delete post")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
