package transfer

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/corebank/corebank/internal/account"
)

// Handler exposes transfer endpoints.
type Handler struct {
	engine   *Engine
	accounts account.Repository
	logs     LogStore
}

// NewHandler constructs a transfer handler.
func NewHandler(engine *Engine, accounts account.Repository, logs LogStore) *Handler {
	return &Handler{engine: engine, accounts: accounts, logs: logs}
}

type transferRequest struct {
	FromAccountID int64           `json:"from_account_id"`
	ToAccountID   int64           `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

// Create processes an account-to-account transfer.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	currency, err := account.ParseCurrency(req.Currency)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	ok, err := h.engine.Transfer(c.UserContext(), Request{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
		Currency:      currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountNotFound):
			return fiber.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, ErrInvalidRequest),
			errors.Is(err, ErrCurrencyMismatch),
			errors.Is(err, ErrInsufficientBalance):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	if !ok {
		// Lock contention: no mutation happened and the caller may retry.
		return c.Status(http.StatusConflict).JSON(fiber.Map{
			"status":    "contention",
			"retryable": true,
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "completed"})
}

// Logs returns the transfer logs touching one of the customer's accounts.
func (h *Handler) Logs(c *fiber.Ctx) error {
	customerID, err := c.ParamsInt("customerId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid customer id")
	}
	accountID, err := c.ParamsInt("accountId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid account id")
	}

	acc, err := h.accounts.FetchByID(c.UserContext(), int64(accountID))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if acc.CustomerID != int64(customerID) {
		return fiber.NewError(http.StatusNotFound, "account does not belong to customer")
	}

	logs, err := h.logs.ListByAccount(c.UserContext(), acc.ID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if logs == nil {
		logs = []Log{}
	}
	return c.Status(http.StatusOK).JSON(logs)
}
