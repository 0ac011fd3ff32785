package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/kaiseldev-sudo/budget-buddy/internal/bootstrap"
	fcmclient "github.com/kaiseldev-sudo/budget-buddy/internal/client/fcm"
	"github.com/kaiseldev-sudo/budget-buddy/internal/config"
	"github.com/kaiseldev-sudo/budget-buddy/internal/handlers"
	"github.com/kaiseldev-sudo/budget-buddy/internal/response"
	"github.com/kaiseldev-sudo/budget-buddy/internal/router"
	"github.com/kaiseldev-sudo/budget-buddy/internal/services"
	"github.com/kaiseldev-sudo/budget-buddy/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	cache, err := store.NewCache()
	exitOnError("cache init failed", err, bs.Log)

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	castore := store.NewCategoryStore(bs.Firestore, cache)
	tstore := store.NewTransactionStore(bs.Firestore)
	bstore := store.NewBudgetStore(bs.Firestore)
	sestore := store.NewSettingsStore(bs.Firestore)
	ssstore := store.NewSessionStore(bs.Firestore)

	// clients
	fcm := fcmclient.NewAdapter(bs.Messaging)

	// services
	userv := services.NewUserService(ustore)
	caserv := services.NewCategoryService(castore)
	noserv := services.NewNotificationService(fcm, sestore)
	buserv := services.NewBudgetService(bstore, tstore, caserv, noserv)
	trserv := services.NewTransactionService(tstore, caserv, buserv, noserv)
	exserv := services.NewExportService(tstore, bstore, caserv, ustore)
	reserv := services.NewReportService(tstore, caserv)
	seserv := services.NewSessionService(ssstore, bs.Firebase, cfg.SessionTTL)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.CategorySvc = caserv
	deps.TransactionSvc = trserv
	deps.BudgetSvc = buserv
	deps.ExportSvc = exserv
	deps.ReportSvc = reserv
	deps.SessionSvc = seserv
	deps.SettingsSvc = noserv

	// background sweeper for expired sessions
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go seserv.RunSweeper(sweepCtx, cfg.SweeperInterval)

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
