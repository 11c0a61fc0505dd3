package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/corepay/payments-platform/internal/core/domain"
	"github.com/corepay/payments-platform/internal/core/ports"
)

var _ ports.TemplateRepository = (*TemplateRepository)(nil)

// TemplateRepository is the SQLite implementation of the TemplateRepository
// port.
type TemplateRepository struct {
	db *DB
}

func NewTemplateRepository(db *DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	const query = `INSERT INTO templates (template_id, account_id, name, content, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.Writer.ExecContext(ctx, query,
		template.ID, nullString(template.AccountID), template.Name, template.Content,
		template.CreatedAt, template.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create template %s: %w", template.ID, err)
	}

	return nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, templateID string) (*domain.Template, error) {
	const query = `SELECT template_id, account_id, name, content, created_at, updated_at
FROM templates WHERE template_id = ?`

	template, err := scanTemplate(r.db.Reader.QueryRowContext(ctx, query, templateID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find template %s: %w", templateID, err)
	}

	return template, nil
}

// List returns templates ordered by name, optionally filtered by owning
// account.
func (r *TemplateRepository) List(ctx context.Context, accountID string) ([]domain.Template, error) {
	query := `SELECT template_id, account_id, name, content, created_at, updated_at FROM templates`
	args := []any{}
	if accountID != "" {
		query += ` WHERE account_id = ?`
		args = append(args, accountID)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []domain.Template
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, *template)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}

	return templates, nil
}

func (r *TemplateRepository) Update(ctx context.Context, template *domain.Template) error {
	const query = `UPDATE templates SET name = ?, content = ?, updated_at = ? WHERE template_id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query,
		template.Name, template.Content, template.UpdatedAt, template.ID)
	if err != nil {
		return fmt.Errorf("update template %s: %w", template.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTemplateNotFound
	}

	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, templateID string) error {
	const query = `DELETE FROM templates WHERE template_id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, templateID)
	if err != nil {
		return fmt.Errorf("delete template %s: %w", templateID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTemplateNotFound
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanTemplate(s scanner) (*domain.Template, error) {
	var template domain.Template
	var accountID sql.NullString
	if err := s.Scan(&template.ID, &accountID, &template.Name, &template.Content,
		&template.CreatedAt, &template.UpdatedAt); err != nil {
		return nil, err
	}
	template.AccountID = accountID.String
	return &template, nil
}
