package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corebank/corebank/internal/customer"
)

// RegisterCustomerRoutes wires customer onboarding and lookup endpoints.
func RegisterCustomerRoutes(r fiber.Router, h *customer.Handler) {
	r.Post("/customers", h.Onboard)
	r.Get("/customers/:customerId", h.Get)
}
