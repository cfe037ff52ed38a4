package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/addrwatch/internal/config"
	"github.com/gabapcia/addrwatch/internal/handlers/cli"
	"github.com/gabapcia/addrwatch/internal/infra/notifier/console"
	"github.com/gabapcia/addrwatch/internal/infra/notifier/webhook"
	"github.com/gabapcia/addrwatch/internal/infra/source/etherscan"
	"github.com/gabapcia/addrwatch/internal/infra/storage/file"
	redisstorage "github.com/gabapcia/addrwatch/internal/infra/storage/redis"
	"github.com/gabapcia/addrwatch/internal/pkg/logger"
	"github.com/gabapcia/addrwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/addrwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/addrwatch/internal/pkg/transport/http"
	"github.com/gabapcia/addrwatch/internal/txwatch"
	"github.com/gabapcia/addrwatch/internal/watchlist"
)

const serviceName = "addrwatch"

// buildStorage selects the persistence backend for both the ledger and the
// watch list based on the configured backend name.
func buildStorage(ctx context.Context, cfg config.Config) (txwatch.LedgerStorage, watchlist.AddressStorage, error) {
	if cfg.StorageBackend == "redis" {
		client, err := redisstorage.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}

		return client, client, nil
	}

	return file.NewLedgerStore(cfg.LedgerPath), file.NewWatchlistStore(cfg.WatchlistPath), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", "error", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			logger.Fatal(ctx, "failed to initialize telemetry", "error", err)
		}
		defer shutdown(context.Background())
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		logger.Fatal(ctx, "failed to initialize logger", "error", err)
	}
	defer logger.Sync()

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.HTTPTimeout),
		transporthttp.WithRetryMax(cfg.HTTPRetryMax),
	)

	source := etherscan.NewClient(httpClient, cfg.ExplorerBaseURL, cfg.ExplorerAPIKey)

	ledgerStorage, addressStorage, err := buildStorage(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize storage", "error", err)
	}

	var notifier txwatch.ChangeNotifier = console.New(os.Stdout)
	if cfg.WebhookURL != "" {
		notifier = webhook.New(httpClient, cfg.WebhookURL)
	}

	txwatchOpts := make([]txwatch.Option, 0)
	if cfg.FetchRetryAttempts > 0 {
		txwatchOpts = append(txwatchOpts, txwatch.WithRetry(retry.New(
			retry.WithAttempts(cfg.FetchRetryAttempts),
			retry.WithDelay(cfg.FetchRetryDelay),
		)))
	}
	if cfg.IncrementalFlush {
		txwatchOpts = append(txwatchOpts, txwatch.WithIncrementalFlush())
	}

	txwatchService := txwatch.New(source, ledgerStorage, notifier, txwatchOpts...)
	watchlistService := watchlist.New(addressStorage)

	if err := cli.Run(ctx, watchlistService, txwatchService); err != nil {
		logger.Fatal(ctx, "execution failed", "error", err)
	}
}
