package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/voidbay/paygate/internal/catalog"
	"github.com/voidbay/paygate/internal/config"
	"github.com/voidbay/paygate/internal/downloadsession"
	"github.com/voidbay/paygate/internal/handlers/cli"
	"github.com/voidbay/paygate/internal/infra/backend"
	"github.com/voidbay/paygate/internal/infra/catalogmem"
	"github.com/voidbay/paygate/internal/infra/clipboard"
	"github.com/voidbay/paygate/internal/infra/filestore"
	"github.com/voidbay/paygate/internal/paymentverify"
	"github.com/voidbay/paygate/internal/pkg/logger"
	"github.com/voidbay/paygate/internal/pkg/telemetry"
	"github.com/voidbay/paygate/internal/pkg/transport/resthttp"
)

const serviceName = "paygate"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	backendClient := backend.NewClient(cfg.APIBaseURL, resthttp.WithTimeout(cfg.HTTPTimeout))

	verifier, err := paymentverify.New(backendClient, clipboard.New(), paymentverify.PaymentPolicy{
		ExpectedReceiver:   cfg.ExpectedReceiver,
		ExpectedMinimumSOL: float64(cfg.ExpectedSOL),
		SecretValue:        cfg.DecryptKey,
	})
	if err != nil {
		logger.Fatal(ctx, "initializing payment verification", "error", err)
	}

	saver := filestore.NewSaver(cfg.DownloadDir, resthttp.WithTimeout(cfg.HTTPTimeout))
	downloads := downloadsession.New(backendClient, saver)

	source, err := catalogmem.NewSource(catalogmem.DefaultItems())
	if err != nil {
		logger.Fatal(ctx, "initializing catalog", "error", err)
	}

	if err := cli.Run(ctx, verifier, downloads, catalog.New(source)); err != nil {
		logger.Fatal(ctx, "command failed", "error", err)
	}
}
