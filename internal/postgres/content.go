package postgres

import (
	"context"

	"github.com/wicaksana/atelier/internal/domain"
)

// The hero and about blocks are singletons. Upserts key on the existing row
// when there is one and insert otherwise, so the admin form never has to
// distinguish first save from edit.

func (s *Store) GetHero(ctx context.Context) (domain.Hero, error) {
	var h domain.Hero
	err := s.pool.QueryRow(ctx, `
		SELECT id::text, title, subtitle, image_url, cta, cta_link, updated_at
		FROM heroes ORDER BY updated_at DESC LIMIT 1`,
	).Scan(&h.ID, &h.Title, &h.Subtitle, &h.ImageURL, &h.CTA, &h.CTALink, &h.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.Hero{}, domain.ErrHeroNotFound
		}
		return domain.Hero{}, domain.Internal(err, "postgres.get_hero", "failed to get hero")
	}
	return h, nil
}

func (s *Store) UpsertHero(ctx context.Context, hero domain.Hero) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.Internal(err, "postgres.upsert_hero", "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM heroes`)
	if err != nil {
		return domain.Internal(err, "postgres.upsert_hero", "failed to replace hero")
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO heroes (title, subtitle, image_url, cta, cta_link)
		VALUES ($1, $2, $3, $4, $5)`,
		hero.Title, hero.Subtitle, hero.ImageURL, hero.CTA, hero.CTALink,
	)
	if err != nil {
		return domain.Internal(err, "postgres.upsert_hero", "failed to insert hero")
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Internal(err, "postgres.upsert_hero", "failed to commit hero")
	}
	return nil
}

func (s *Store) GetAbout(ctx context.Context) (domain.About, error) {
	var a domain.About
	err := s.pool.QueryRow(ctx, `
		SELECT id::text, headline, body, image_url, skills, updated_at
		FROM abouts ORDER BY updated_at DESC LIMIT 1`,
	).Scan(&a.ID, &a.Headline, &a.Body, &a.ImageURL, &a.Skills, &a.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.About{}, domain.ErrAboutNotFound
		}
		return domain.About{}, domain.Internal(err, "postgres.get_about", "failed to get about")
	}
	return a, nil
}

func (s *Store) UpsertAbout(ctx context.Context, about domain.About) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.Internal(err, "postgres.upsert_about", "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM abouts`)
	if err != nil {
		return domain.Internal(err, "postgres.upsert_about", "failed to replace about")
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO abouts (headline, body, image_url, skills)
		VALUES ($1, $2, $3, $4)`,
		about.Headline, about.Body, about.ImageURL, listOrEmpty(about.Skills),
	)
	if err != nil {
		return domain.Internal(err, "postgres.upsert_about", "failed to insert about")
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Internal(err, "postgres.upsert_about", "failed to commit about")
	}
	return nil
}

func (s *Store) ListProjects(ctx context.Context, onlyPublished bool) ([]domain.Project, error) {
	query := `
		SELECT id::text, title, description, image_url, demo_url, repo_url,
		       tags, sort_order, published, created_at
		FROM projects`
	if onlyPublished {
		query += ` WHERE published`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, domain.Internal(err, "postgres.list_projects", "failed to list projects")
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.DemoURL, &p.RepoURL,
			&p.Tags, &p.SortOrder, &p.Published, &p.CreatedAt,
		); err != nil {
			return nil, domain.Internal(err, "postgres.list_projects", "failed to scan project")
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "postgres.list_projects", "failed to read projects")
	}
	return projects, nil
}

func (s *Store) UpsertProject(ctx context.Context, project domain.Project) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO projects (id, title, description, image_url, demo_url, repo_url, tags, sort_order, published)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title       = EXCLUDED.title,
			description = EXCLUDED.description,
			image_url   = EXCLUDED.image_url,
			demo_url    = EXCLUDED.demo_url,
			repo_url    = EXCLUDED.repo_url,
			tags        = EXCLUDED.tags,
			sort_order  = EXCLUDED.sort_order,
			published   = EXCLUDED.published`,
		project.ID, project.Title, project.Description, project.ImageURL,
		project.DemoURL, project.RepoURL, listOrEmpty(project.Tags),
		project.SortOrder, project.Published,
	)
	if err != nil {
		return domain.Internal(err, "postgres.upsert_project", "failed to upsert project")
	}
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1::uuid`, id)
	if err != nil {
		return domain.Internal(err, "postgres.delete_project", "failed to delete project")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (s *Store) InsertContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO contact_messages (name, email, subject, body)
		VALUES ($1, $2, $3, $4)`,
		msg.Name, msg.Email, msg.Subject, msg.Body,
	)
	if err != nil {
		return domain.Internal(err, "postgres.insert_contact_message", "failed to insert contact message")
	}
	return nil
}

func (s *Store) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id::text, name, email, subject, body, created_at
		FROM contact_messages ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, domain.Internal(err, "postgres.list_contact_messages", "failed to list contact messages")
	}
	defer rows.Close()

	var msgs []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
			return nil, domain.Internal(err, "postgres.list_contact_messages", "failed to scan contact message")
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "postgres.list_contact_messages", "failed to read contact messages")
	}
	return msgs, nil
}
