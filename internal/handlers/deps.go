package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/kaiseldev-sudo/budget-buddy/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client

	UserSvc        userService
	CategorySvc    categoryService
	TransactionSvc transactionService
	BudgetSvc      budgetService
	ExportSvc      exportService
	ReportSvc      reportService
	SessionSvc     sessionService
	SettingsSvc    settingsService
}
