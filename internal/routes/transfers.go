package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corebank/corebank/internal/transfer"
)

// RegisterTransferRoutes wires transfer endpoints.
func RegisterTransferRoutes(r fiber.Router, h *transfer.Handler) {
	r.Post("/transfers", h.Create)
	r.Get("/customers/:customerId/accounts/:accountId/transfers", h.Logs)
}
