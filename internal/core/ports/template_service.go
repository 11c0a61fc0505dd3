package ports

import (
	"context"

	"github.com/corepay/payments-platform/internal/core/domain"
)

// CreateTemplateInput carries all data needed to create a template.
type CreateTemplateInput struct {
	Name      string
	Content   string
	AccountID string
}

// UpdateTemplateInput carries a partial template update. Nil fields retain
// their prior value; at least one field must be set.
type UpdateTemplateInput struct {
	TemplateID string
	Name       *string
	Content    *string
}

type TemplateService interface {
	Create(ctx context.Context, in CreateTemplateInput) (*domain.Template, error)
	List(ctx context.Context, accountID string) ([]domain.Template, error)
	Get(ctx context.Context, templateID string) (*domain.Template, error)
	Update(ctx context.Context, in UpdateTemplateInput) (*domain.Template, error)
	Delete(ctx context.Context, templateID string) error
}
