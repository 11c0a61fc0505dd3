package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createAccountResponse struct {
	Message   string `json:"message"`
	AccountID string `json:"account_id"`
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

// transactionsResponse renders the ledger in the wire format clients expect:
// one human-readable string per entry, in append order.
type transactionsResponse struct {
	Transactions []string `json:"transactions"`
}

// ledgerOpRequest is the body of deposit and withdraw.
// Amount is validated by the service so that a non-positive amount is
// reported as "invalid amount" rather than a generic field error.
type ledgerOpRequest struct {
	Amount float64 `json:"amount"`
}

type ledgerOpResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}
