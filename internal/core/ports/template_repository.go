package ports

import (
	"context"

	"github.com/corepay/payments-platform/internal/core/domain"
)

// TemplateRepository defines the persistence contract for payment templates.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	FindByID(ctx context.Context, templateID string) (*domain.Template, error)
	// List returns all templates ordered by name. When accountID is
	// non-empty only templates owned by that account are returned.
	List(ctx context.Context, accountID string) ([]domain.Template, error)
	Update(ctx context.Context, template *domain.Template) error
	Delete(ctx context.Context, templateID string) error
}
