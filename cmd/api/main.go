package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/barrister/internal/billing"
	billingStore "github.com/MrJamesThe3rd/barrister/internal/billing/store"
	"github.com/MrJamesThe3rd/barrister/internal/config"
	"github.com/MrJamesThe3rd/barrister/internal/database"
	barristerHttp "github.com/MrJamesThe3rd/barrister/internal/http"
	entryHandler "github.com/MrJamesThe3rd/barrister/internal/http/entry"
	invoiceHandler "github.com/MrJamesThe3rd/barrister/internal/http/invoice"
	matterHandler "github.com/MrJamesThe3rd/barrister/internal/http/matter"
	"github.com/MrJamesThe3rd/barrister/internal/matter"
	matterStore "github.com/MrJamesThe3rd/barrister/internal/matter/store"
	"github.com/MrJamesThe3rd/barrister/internal/notify"
	"github.com/MrJamesThe3rd/barrister/internal/payments"
	"github.com/MrJamesThe3rd/barrister/internal/stats"
	statsStore "github.com/MrJamesThe3rd/barrister/internal/stats/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns, cfg.DB.MaxIdleConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		notifier = notify.Log{}
		provider = payments.NewClient(cfg.Provider.BaseURL, cfg.Provider.Token, cfg.Provider.Timeout)

		statsService   = stats.NewService(statsStore.New(db))
		matterService  = matter.NewService(matterStore.New(db), statsService, notifier)
		billingService = billing.NewService(billingStore.New(db), provider, notifier, cfg.Billing.DueDays, cfg.Billing.PaymentGrace)
	)

	var (
		matterH  = matterHandler.NewHandler(matterService)
		entryH   = entryHandler.NewHandler(billingService)
		invoiceH = invoiceHandler.NewHandler(billingService)
	)

	router := barristerHttp.New(cfg.Auth.Secret, matterH, entryH, invoiceH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
