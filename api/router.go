package api

import (
	"mesero_server/api/auth"
	"mesero_server/api/employees"
	"mesero_server/api/health"
	"mesero_server/api/menu"
	"mesero_server/api/middleware"
	"mesero_server/api/tables"
	"mesero_server/api/transactions"
	"mesero_server/config"
	"mesero_server/database"
	"mesero_server/messaging"
	"mesero_server/services"
	"mesero_server/store"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
)

func App(events *messaging.Publisher) chi.Router {
	r := chi.NewRouter()

	// create loggers
	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	// config
	cfg := config.GetConfig()

	// storage: the memory backend runs without a database connection
	var db *database.DB
	if cfg.Storage.Backend != "memory" {
		db = database.GetInstance()
	}
	st := store.New(cfg, db)

	// services
	sm := services.NewServiceManager(standardLogger, cfg, st, db, events)

	// Initialize middleware
	mw := middleware.NewMiddleware(cfg, mwLogger, sm.AuthService)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(1 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(mw.SetupLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware)

	// CORS (must be before auth)
	r.Use(mw.SetupCORS().Handler)

	// Register all routes
	NewRouterManager(
		tables.NewTableRoutesManager(standardLogger, sm.TableService, sm.OrderService, sm.PaymentService),
		transactions.NewTransactionRoutesManager(standardLogger, sm.TransactionService, mw),
		menu.NewMenuRoutesManager(standardLogger, sm.MenuService),
		employees.NewEmployeeRoutesManager(standardLogger, sm.EmployeeService, mw),
		auth.NewAuthRoutesManager(standardLogger, sm.AuthService),
		health.NewHealthRoutesManager(sm.HealthService),
	).RegisterRoutes(r)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		gecho.Success(w,
			gecho.WithMessage("Welcome to the Mesero API"),
			gecho.Send(),
		)
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		gecho.NotFound(w,
			gecho.Send(),
		)
	})

	return r
}
