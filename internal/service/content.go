package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wicaksana/atelier/internal/domain"
	"github.com/wicaksana/atelier/internal/events"
	"github.com/wicaksana/atelier/internal/repository"
	"github.com/wicaksana/atelier/internal/telemetry"
)

// ContactSubmission is the contact form payload.
type ContactSubmission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string
	Body    string `validate:"required"`
}

// ContentService serves the portfolio content blocks and the contact form.
type ContentService interface {
	GetHero(ctx context.Context) (domain.Hero, error)
	UpdateHero(ctx context.Context, hero domain.Hero) (domain.Hero, error)
	GetAbout(ctx context.Context) (domain.About, error)
	UpdateAbout(ctx context.Context, about domain.About) (domain.About, error)

	ListPublishedProjects(ctx context.Context) ([]domain.Project, error)
	ListAllProjects(ctx context.Context) ([]domain.Project, error)
	SaveProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, id string) error

	SubmitContactMessage(ctx context.Context, submission ContactSubmission) error
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
}

type contentService struct {
	repo     repository.Querier
	events   events.Publisher
	metrics  *telemetry.BusinessMetrics
	validate *validator.Validate
}

// NewContentService creates the content service. metrics may be nil in tests.
func NewContentService(repo repository.Querier, publisher events.Publisher, metrics *telemetry.BusinessMetrics) ContentService {
	return &contentService{
		repo:     repo,
		events:   publisher,
		metrics:  metrics,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *contentService) GetHero(ctx context.Context) (domain.Hero, error) {
	return s.repo.GetHero(ctx)
}

func (s *contentService) UpdateHero(ctx context.Context, hero domain.Hero) (domain.Hero, error) {
	if err := s.repo.UpsertHero(ctx, hero); err != nil {
		return domain.Hero{}, err
	}
	return s.repo.GetHero(ctx)
}

func (s *contentService) GetAbout(ctx context.Context) (domain.About, error) {
	return s.repo.GetAbout(ctx)
}

func (s *contentService) UpdateAbout(ctx context.Context, about domain.About) (domain.About, error) {
	if err := s.repo.UpsertAbout(ctx, about); err != nil {
		return domain.About{}, err
	}
	return s.repo.GetAbout(ctx)
}

func (s *contentService) ListPublishedProjects(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListProjects(ctx, true)
}

func (s *contentService) ListAllProjects(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListProjects(ctx, false)
}

func (s *contentService) SaveProject(ctx context.Context, project domain.Project) error {
	if strings.TrimSpace(project.Title) == "" {
		return domain.NewValidationError("project.save", "title", "is required")
	}
	return s.repo.UpsertProject(ctx, project)
}

func (s *contentService) DeleteProject(ctx context.Context, id string) error {
	return s.repo.DeleteProject(ctx, id)
}

func (s *contentService) SubmitContactMessage(ctx context.Context, submission ContactSubmission) error {
	if err := s.validate.Struct(submission); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.Internal(err, "contact.submit", "validator failed")
		}
		var fieldErr error
		for _, fe := range verrs {
			fieldErr = domain.AddFieldError(fieldErr, strings.ToLower(fe.Field()), "is missing or invalid")
		}
		return fieldErr
	}

	msg := domain.ContactMessage{
		Name:    strings.TrimSpace(submission.Name),
		Email:   strings.TrimSpace(submission.Email),
		Subject: strings.TrimSpace(submission.Subject),
		Body:    submission.Body,
	}
	if err := s.repo.InsertContactMessage(ctx, msg); err != nil {
		return err
	}

	s.events.Publish(events.SubjectContactSubmitted, map[string]any{
		"name":    msg.Name,
		"email":   msg.Email,
		"subject": msg.Subject,
	})
	if s.metrics != nil {
		s.metrics.ContactMessages.Inc()
	}
	return nil
}

func (s *contentService) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.ListContactMessages(ctx)
}
