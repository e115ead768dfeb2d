package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/corebank/corebank/internal/account"
	"github.com/corebank/corebank/internal/config"
	"github.com/corebank/corebank/internal/customer"
	"github.com/corebank/corebank/internal/middleware"
	"github.com/corebank/corebank/internal/notification"
	"github.com/corebank/corebank/internal/seed"
	"github.com/corebank/corebank/internal/transfer"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. Without a
// database it builds in-memory stores and loads the seed fixtures, so the
// service stays usable in development.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var (
		accountRepo  account.Repository
		customerRepo customer.Repository
		logStore     transfer.LogStore
	)
	if d.DB != nil {
		accountRepo = account.NewPostgresRepository(d.DB)
		customerRepo = customer.NewPostgresRepository(d.DB)
		logStore = transfer.NewPostgresLogStore(d.DB)
	} else {
		accountRepo = account.NewMemoryRepository()
		customerRepo = customer.NewMemoryRepository(accountRepo)
		logStore = transfer.NewMemoryLogStore()
	}

	customerSvc := customer.NewService(customerRepo, accountRepo)
	notifier := notification.NewLoggerNotifier(d.Logger)
	engine := transfer.NewEngine(accountRepo, logStore, notifier, d.Logger)

	if d.DB == nil {
		if err := seed.Load(context.Background(), customerSvc, d.Logger); err != nil {
			return err
		}
	}

	customerHandler := customer.NewHandler(customerSvc)
	transferHandler := transfer.NewHandler(engine, accountRepo, logStore)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterCustomerRoutes(api, customerHandler)
	RegisterTransferRoutes(api, transferHandler)

	return nil
}
