package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/barrister/internal/billing"
	billingStore "github.com/MrJamesThe3rd/barrister/internal/billing/store"
	"github.com/MrJamesThe3rd/barrister/internal/config"
	"github.com/MrJamesThe3rd/barrister/internal/database"
	"github.com/MrJamesThe3rd/barrister/internal/notify"
	"github.com/MrJamesThe3rd/barrister/internal/payments"
)

// Periodic billing jobs, meant to run from cron:
//
//	jobs generate-invoices   create last month's invoices
//	jobs sweep-payments      cancel payments stuck in failed
func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: jobs <generate-invoices|sweep-payments>")
		os.Exit(2)
	}

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

	store := billingStore.New(db)
	ctx := context.Background()

	switch os.Args[1] {
	case "generate-invoices":
		generator := billing.NewGenerator(store)

		created, err := generator.Run(ctx, time.Now())
		if err != nil {
			slog.Error("invoice generation failed", "error", err)
			os.Exit(1)
		}

		slog.Info("invoice generation finished", "created", created)
	case "sweep-payments":
		notifier := notify.Log{}
		provider := payments.NewClient(cfg.Provider.BaseURL, cfg.Provider.Token, cfg.Provider.Timeout)
		svc := billing.NewService(store, provider, notifier, cfg.Billing.DueDays, cfg.Billing.PaymentGrace)

		swept, err := svc.SweepStalePayments(ctx, time.Now())
		if err != nil {
			slog.Error("payment sweep failed", "error", err)
			os.Exit(1)
		}

		slog.Info("payment sweep finished", "swept", swept)
	default:
		fmt.Fprintf(os.Stderr, "unknown job %q\n", os.Args[1])
		os.Exit(2)
	}
}
