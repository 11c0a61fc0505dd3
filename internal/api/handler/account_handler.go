package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corepay/payments-platform/internal/core/domain"
	"github.com/corepay/payments-platform/internal/core/ports"
)

// AccountHandler handles HTTP requests for accounts and ledger operations.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Create handles POST /accounts.
//
// @Summary      Create a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      createAccountRequest  true  "Account credentials"
// @Success      201   {object}  createAccountResponse
// @Failure      400   {object}  errorResponse
// @Router       /accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.CreateAccount(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createAccountResponse{
		Message:   "Account created successfully",
		AccountID: account.ID,
	})
}

// Balance handles GET /accounts/:account_id/balance.
//
// @Summary      Get an account balance
// @Tags         accounts
// @Produce      json
// @Param        account_id  path      string  true  "Account identifier"
// @Success      200         {object}  balanceResponse
// @Failure      404         {object}  errorResponse
// @Router       /accounts/{account_id}/balance [get]
func (h *AccountHandler) Balance(c echo.Context) error {
	balance, err := h.service.GetBalance(c.Request().Context(), c.Param("account_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, balanceResponse{Balance: balance})
}

// Transactions handles GET /accounts/:account_id/transactions.
//
// @Summary      Get an account's transaction log
// @Tags         accounts
// @Produce      json
// @Param        account_id  path      string  true  "Account identifier"
// @Success      200         {object}  transactionsResponse
// @Failure      404         {object}  errorResponse
// @Router       /accounts/{account_id}/transactions [get]
func (h *AccountHandler) Transactions(c echo.Context) error {
	entries, err := h.service.GetTransactions(c.Request().Context(), c.Param("account_id"))
	if err != nil {
		return err
	}

	rendered := make([]string, 0, len(entries))
	for _, entry := range entries {
		rendered = append(rendered, entry.Describe())
	}

	return c.JSON(http.StatusOK, transactionsResponse{Transactions: rendered})
}

// Deposit handles POST /accounts/:account_id/deposit.
//
// @Summary      Deposit funds into an account
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  path      string           false  "Idempotency key to prevent duplicate submissions"
// @Param        account_id       path      string           true   "Account identifier"
// @Param        body             body      ledgerOpRequest  true   "Amount to deposit"
// @Success      201              {object}  ledgerOpResponse
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /accounts/{account_id}/deposit [post]
func (h *AccountHandler) Deposit(c echo.Context) error {
	return h.mutate(c, domain.DirectionDeposit)
}

// Withdraw handles POST /accounts/:account_id/withdraw.
//
// @Summary      Withdraw funds from an account
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  path      string           false  "Idempotency key to prevent duplicate submissions"
// @Param        account_id       path      string           true   "Account identifier"
// @Param        body             body      ledgerOpRequest  true   "Amount to withdraw"
// @Success      201              {object}  ledgerOpResponse
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /accounts/{account_id}/withdraw [post]
func (h *AccountHandler) Withdraw(c echo.Context) error {
	return h.mutate(c, domain.DirectionWithdraw)
}

func (h *AccountHandler) mutate(c echo.Context, direction domain.TransactionDirection) error {
	var req ledgerOpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.LedgerOpInput{
		AccountID:      c.Param("account_id"),
		Amount:         req.Amount,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	}

	var err error
	if direction == domain.DirectionDeposit {
		_, err = h.service.Deposit(c.Request().Context(), in)
	} else {
		_, err = h.service.Withdraw(c.Request().Context(), in)
	}
	if err != nil {
		return err
	}

	verb := "Deposited"
	if direction == domain.DirectionWithdraw {
		verb = "Withdrew"
	}
	return c.JSON(http.StatusCreated, ledgerOpResponse{
		Message: fmt.Sprintf("%s $%s successfully", verb, domain.FormatAmount(req.Amount)),
	})
}
