package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/corepay/payments-platform/internal/api/metrics"
	"github.com/corepay/payments-platform/internal/core/domain"
	"github.com/corepay/payments-platform/internal/core/ports"
)

// TemplateService implements CRUD over payment templates. Operations are
// independent and require only single-record atomicity.
type TemplateService struct {
	repo   ports.TemplateRepository
	logger zerolog.Logger
}

func NewTemplateService(repo ports.TemplateRepository, logger zerolog.Logger) *TemplateService {
	return &TemplateService{repo: repo, logger: logger}
}

func (s *TemplateService) Create(ctx context.Context, in ports.CreateTemplateInput) (*domain.Template, error) {
	if in.Name == "" || in.Content == "" {
		return nil, fmt.Errorf("%w: name and content are required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	template := &domain.Template{
		ID:        uuid.NewString(),
		AccountID: in.AccountID,
		Name:      in.Name,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, template); err != nil {
		return nil, err
	}

	metrics.TemplateOperationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("template_id", template.ID).Str("name", template.Name).Msg("template created")
	return template, nil
}

func (s *TemplateService) List(ctx context.Context, accountID string) ([]domain.Template, error) {
	return s.repo.List(ctx, accountID)
}

func (s *TemplateService) Get(ctx context.Context, templateID string) (*domain.Template, error) {
	return s.repo.FindByID(ctx, templateID)
}

// Update applies a partial update: unspecified fields retain their prior
// value. An update that specifies nothing is rejected.
func (s *TemplateService) Update(ctx context.Context, in ports.UpdateTemplateInput) (*domain.Template, error) {
	if in.Name == nil && in.Content == nil {
		return nil, fmt.Errorf("%w: name or content is required", domain.ErrInvalidInput)
	}

	template, err := s.repo.FindByID(ctx, in.TemplateID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		template.Name = *in.Name
	}
	if in.Content != nil {
		template.Content = *in.Content
	}
	template.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, template); err != nil {
		return nil, err
	}

	metrics.TemplateOperationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("template_id", template.ID).Msg("template updated")
	return template, nil
}

func (s *TemplateService) Delete(ctx context.Context, templateID string) error {
	if err := s.repo.Delete(ctx, templateID); err != nil {
		return err
	}

	metrics.TemplateOperationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("template_id", templateID).Msg("template deleted")
	return nil
}
