package handler

import "time"

// --- Request / Response types ---

type createTemplateRequest struct {
	Name      string `json:"name"    validate:"required"`
	Content   string `json:"content" validate:"required"`
	AccountID string `json:"account_id,omitempty"`
}

type createTemplateResponse struct {
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
}

// templateSummaryResponse is the lightweight item used in list responses.
// It intentionally omits content to keep payloads small.
type templateSummaryResponse struct {
	TemplateID string `json:"template_id"`
	Name       string `json:"name"`
}

type listTemplatesResponse struct {
	Templates []templateSummaryResponse `json:"templates"`
}

type getTemplateResponse struct {
	TemplateID string    `json:"template_id"`
	AccountID  string    `json:"account_id,omitempty"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// updateTemplateRequest carries a partial update; nil fields retain their
// prior value.
type updateTemplateRequest struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}

type messageResponse struct {
	Message string `json:"message"`
}
