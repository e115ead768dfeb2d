package customer

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/corebank/corebank/internal/account"
)

// Handler exposes customer HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a customer HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type onboardAccount struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type onboardRequest struct {
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Accounts  []onboardAccount `json:"accounts"`
}

// Onboard creates a customer with its opening accounts.
func (h *Handler) Onboard(c *fiber.Ctx) error {
	var req onboardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	input := OnboardInput{FirstName: req.FirstName, LastName: req.LastName}
	for _, acc := range req.Accounts {
		currency, err := account.ParseCurrency(acc.Currency)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		input.Accounts = append(input.Accounts, OpeningAccount{Balance: acc.Balance, Currency: currency})
	}

	created, err := h.service.Onboard(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidOnboardRequest) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(created)
}

// Get returns a customer with its accounts.
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("customerId")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid customer id")
	}

	cust, err := h.service.Get(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	accounts, err := h.service.Accounts(c.UserContext(), cust.ID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	if accounts == nil {
		accounts = []account.Account{}
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"id":         cust.ID,
		"first_name": cust.FirstName,
		"last_name":  cust.LastName,
		"created_at": cust.CreatedAt,
		"accounts":   accounts,
	})
}
