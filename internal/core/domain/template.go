package domain

import "time"

// Template is a stored payment template: a named piece of free-form
// content, optionally owned by an account. Templates carry no invariants
// that link them to the ledger.
type Template struct {
	ID        string    `json:"template_id"`
	AccountID string    `json:"account_id,omitempty"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
