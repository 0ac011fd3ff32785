package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kaiseldev-sudo/budget-buddy/internal/handlers"
	"github.com/kaiseldev-sudo/budget-buddy/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	am := middleware.NewMiddleware(deps.Firebase)

	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(am.FirebaseAuth)

	ush := handlers.NewUserHandlers(deps)
	cah := handlers.NewCategoryHandlers(deps)
	trh := handlers.NewTransactionHandlers(deps)
	buh := handlers.NewBudgetHandlers(deps)
	exh := handlers.NewExportHandlers(deps)
	reh := handlers.NewReportHandlers(deps)
	seh := handlers.NewSessionHandlers(deps)
	sth := handlers.NewSettingsHandlers(deps)

	r.Mount("/users", ush.UserRoutes())
	r.Mount("/categories", cah.CategoryRoutes())
	r.Mount("/transactions", trh.TransactionRoutes())
	r.Mount("/budgets", buh.BudgetRoutes())
	r.Mount("/export", exh.ExportRoutes())
	r.Mount("/reports", reh.ReportRoutes())
	r.Mount("/session", seh.SessionRoutes())
	r.Mount("/settings", sth.SettingsRoutes())
	return r
}
