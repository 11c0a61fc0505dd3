package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/corepay/payments-platform/internal/api/handler"
	"github.com/corepay/payments-platform/internal/api/middleware"
	"github.com/corepay/payments-platform/internal/core/service"
	"github.com/corepay/payments-platform/internal/infrastructure/config"
	redisdb "github.com/corepay/payments-platform/internal/infrastructure/db/redis"
	"github.com/corepay/payments-platform/internal/infrastructure/db/sqlite"
	"github.com/corepay/payments-platform/internal/infrastructure/lock"
)

// NewAccountsRouter builds the Echo instance for the accounts service with
// all routes registered. rdb may be nil; idempotency replays are then not
// detected.
func NewAccountsRouter(db *sqlite.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho(log)

	// --- Dependencies ---
	accountRepo := sqlite.NewAccountRepository(db)
	var replay service.ReplayChecker
	if rdb != nil {
		replay = redisdb.NewReplayChecker(rdb)
	}
	accountService := service.NewAccountService(accountRepo, lock.NewKeyedMutex(0), replay, log)
	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, time.Hour)

	accountHandler := handler.NewAccountHandler(accountService)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)

	// --- Account routes ---
	e.POST("/accounts", accountHandler.Create)
	e.GET("/accounts/:account_id/balance", accountHandler.Balance)
	e.GET("/accounts/:account_id/transactions", accountHandler.Transactions)

	// Ledger mutations are gated only in the authenticated variant.
	ledger := e.Group("")
	if cfg.AuthRequired {
		ledger.Use(middleware.Auth(cfg.JWTSecret))
	}
	ledger.POST("/accounts/:account_id/deposit", accountHandler.Deposit)
	ledger.POST("/accounts/:account_id/withdraw", accountHandler.Withdraw)

	registerProbes(e, db, rdb)

	return e
}

// NewTemplatesRouter builds the Echo instance for the templates service.
// All /templates routes require a bearer token issued by the accounts
// service.
func NewTemplatesRouter(db *sqlite.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho(log)

	// --- Dependencies ---
	templateRepo := sqlite.NewTemplateRepository(db)
	templateService := service.NewTemplateService(templateRepo, log)
	templateHandler := handler.NewTemplateHandler(templateService)

	// --- Template routes (auth required) ---
	templates := e.Group("/templates", middleware.Auth(cfg.JWTSecret))
	templates.POST("", templateHandler.Create)
	templates.GET("", templateHandler.List)
	templates.GET("/:template_id", templateHandler.Get)
	templates.PUT("/:template_id", templateHandler.Update)
	templates.DELETE("/:template_id", templateHandler.Delete)

	registerProbes(e, db, rdb)

	return e
}

func newEcho(log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("payments"))

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

func registerProbes(e *echo.Echo, db *sqlite.DB, rdb *goredis.Client) {
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
}
