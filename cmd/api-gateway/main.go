package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/scholarpay/scholarpay-backend/internal/gateway/razorpay"
	"github.com/scholarpay/scholarpay-backend/internal/ledger"
	"github.com/scholarpay/scholarpay-backend/internal/metrics"
	"github.com/scholarpay/scholarpay-backend/internal/notify"
	"github.com/scholarpay/scholarpay-backend/internal/repository/clickhouse"
	"github.com/scholarpay/scholarpay-backend/internal/settlement"
	"github.com/scholarpay/scholarpay-backend/internal/transport"
	"go.uber.org/zap"
)

type config struct {
	Addr          string `long:"addr" env:"API_GATEWAY_ADDR" description:"addr" default:":8000"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	LedgerSecret  string `long:"ledger-secret" env:"API_GATEWAY_LEDGER_SECRET" description:"secret keying ledger identifier redaction"`

	RazorpayKeyID         string        `long:"razorpay-key-id" env:"API_GATEWAY_RAZORPAY_KEY_ID" description:"Razorpay API key id"`
	RazorpayKeySecret     string        `long:"razorpay-key-secret" env:"API_GATEWAY_RAZORPAY_KEY_SECRET" description:"Razorpay API key secret"`
	RazorpayWebhookSecret string        `long:"razorpay-webhook-secret" env:"API_GATEWAY_RAZORPAY_WEBHOOK_SECRET" description:"secret verifying payment signatures"`
	RazorpayTestMode      bool          `long:"razorpay-test-mode" env:"API_GATEWAY_RAZORPAY_TEST_MODE" description:"use the test key pair and simulate payouts"`
	RazorpayTimeout       time.Duration `long:"razorpay-timeout" env:"API_GATEWAY_RAZORPAY_TIMEOUT" description:"HTTP timeout for gateway requests" default:"15s"`

	SMTPAddr        string `long:"smtp-addr" env:"API_GATEWAY_SMTP_ADDR" description:"SMTP relay for receipt mail, empty disables receipts"`
	SMTPUsername    string `long:"smtp-username" env:"API_GATEWAY_SMTP_USERNAME" description:"SMTP username"`
	SMTPPassword    string `long:"smtp-password" env:"API_GATEWAY_SMTP_PASSWORD" description:"SMTP password"`
	SMTPFrom        string `long:"smtp-from" env:"API_GATEWAY_SMTP_FROM" description:"receipt sender address"`
	NotifyQueueSize int    `long:"notify-queue-size" env:"API_GATEWAY_NOTIFY_QUEUE_SIZE" description:"receipt queue size" default:"256"`
	NotifyRPS       int    `long:"notify-rps" env:"API_GATEWAY_NOTIFY_RPS" description:"receipt sends per second" default:"5"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	ledgerSvc, err := ledger.NewService(repo, metrics.NewLedger(), cfg.LedgerSecret, logger)
	if err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}
	stream := transport.NewStream(logger)
	ledgerSvc.OnAppend(stream.Publish)

	gatewayClient, err := razorpay.NewClient(razorpay.Config{
		KeyID:     cfg.RazorpayKeyID,
		KeySecret: cfg.RazorpayKeySecret,
		Timeout:   cfg.RazorpayTimeout,
		TestMode:  cfg.RazorpayTestMode,
	}, metrics.NewRazorpayClient(), logger)
	if err != nil {
		return fmt.Errorf("init gateway client: %w", err)
	}

	var notifier settlement.Notifier
	if cfg.SMTPAddr != "" {
		sender, senderErr := notify.NewSMTPSender(notify.SMTPConfig{
			Addr:     cfg.SMTPAddr,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
		if senderErr != nil {
			return fmt.Errorf("init receipt sender: %w", senderErr)
		}
		dispatcher := notify.NewDispatcher(sender, logger, cfg.NotifyQueueSize, cfg.NotifyRPS)
		dispatcher.Start(ctx)
		defer dispatcher.Stop()
		notifier = dispatcher
	} else {
		logger.Info("receipt mail disabled, no SMTP relay configured")
	}

	coordinator, err := settlement.NewCoordinator(settlement.Deps{
		Applications: repo,
		Scholarships: repo,
		Transactions: repo,
		Gateway:      gatewayClient,
		Ledger:       ledgerSvc,
		Notifier:     notifier,
		Metrics:      metrics.NewSettlement(),
	}, cfg.RazorpayWebhookSecret, logger)
	if err != nil {
		return fmt.Errorf("init settlement coordinator: %w", err)
	}

	handler, err := transport.NewHandler(coordinator, ledgerSvc, repo, stream, logger)
	if err != nil {
		return fmt.Errorf("init transport handler: %w", err)
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
