// Command seed populates a ledger with demo products and history
// entries, for development environments and demos.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/verifresh-labs/verifresh-backend/internal/clock"
	"github.com/verifresh-labs/verifresh-backend/internal/ledger"
	"github.com/verifresh-labs/verifresh-backend/internal/ledger/rpc"
	"github.com/verifresh-labs/verifresh-backend/internal/metrics"
	"github.com/verifresh-labs/verifresh-backend/pkg/workerpool"
	"go.uber.org/zap"
)

type config struct {
	LedgerRPCURL    string        `long:"ledger-rpc-url" env:"LEDGER_RPC_URL" description:"ledger node JSON-RPC endpoint" default:"http://127.0.0.1:8899"`
	LedgerNetwork   string        `long:"ledger-network" env:"LEDGER_NETWORK" description:"ledger network name" default:"devnet"`
	WalletSecretKey string        `long:"wallet-secret-key" env:"SERVER_WALLET_SECRET_KEY" description:"signing key as a JSON byte array; generated when empty"`
	StartID         uint64        `long:"start-id" description:"first product id to seed" default:"1"`
	Products        int           `long:"products" description:"number of demo products to create" default:"5"`
	Workers         int           `long:"workers" description:"concurrent seeding workers" default:"4"`
	LogInterval     time.Duration `long:"log-interval" description:"pause between history appends so ledger timestamps differ" default:"250ms"`
	RPCTimeout      time.Duration `long:"rpc-timeout" env:"LEDGER_RPC_TIMEOUT" description:"HTTP timeout for ledger RPC requests" default:"30s"`
}

type demoProduct struct {
	name     string
	farmName string
	statuses []demoStatus
}

type demoStatus struct {
	status   string
	location string
}

var demoProducts = []demoProduct{
	{"Mango", "Sunny Farm", journey("Sunny Farm", "Port of Manila", "Distributor Warehouse")},
	{"Avocado", "Green Valley Orchard", journey("Green Valley Orchard", "Cold Storage Hub", "Retail DC")},
	{"Strawberries", "Hilltop Berries", journey("Hilltop Berries", "Regional Packhouse", "City Market")},
	{"Tomatoes", "Riverside Greenhouse", journey("Riverside Greenhouse", "Sorting Facility", "Retail DC")},
	{"Bananas", "Tropic Plantation", journey("Tropic Plantation", "Export Terminal", "Import Terminal")},
}

func journey(origin, transit, destination string) []demoStatus {
	return []demoStatus{
		{"Harvested", origin},
		{"In Transit", transit},
		{"Delivered", destination},
	}
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

	_ = godotenv.Load()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete", zap.Int("products", cfg.Products))
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	wallet, err := loadWallet(cfg, logger)
	if err != nil {
		return err
	}

	node := rpc.NewObservedClient(
		rpc.NewClient(cfg.LedgerRPCURL, cfg.RPCTimeout),
		metrics.NewLedgerRPC(cfg.LedgerNetwork),
	)
	client, err := ledger.NewClient(node, wallet, logger.Named("ledger"))
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	ids := make([]uint64, 0, cfg.Products)
	for i := 0; i < cfg.Products; i++ {
		ids = append(ids, cfg.StartID+uint64(i))
	}

	return workerpool.Process(ctx, cfg.Workers, ids, func(ctx context.Context, id uint64) error {
		return seedProduct(ctx, client, cfg, id)
	})
}

func seedProduct(ctx context.Context, client *ledger.Client, cfg config, id uint64) error {
	demo := demoProducts[int(id-cfg.StartID)%len(demoProducts)]

	if _, err := client.CreateProduct(ctx, id, demo.name, demo.farmName); err != nil {
		return fmt.Errorf("seed product %d: %w", id, err)
	}

	for _, s := range demo.statuses {
		// The ledger assigns log timestamps at inclusion; pause so the
		// demo history does not collapse onto one second.
		if err := clock.SleepWithContext(ctx, cfg.LogInterval); err != nil {
			return err
		}
		if _, err := client.AddLog(ctx, id, s.status, s.location); err != nil {
			return fmt.Errorf("seed product %d log: %w", id, err)
		}
	}
	return nil
}

func loadWallet(cfg config, logger *zap.Logger) (*ledger.MemoryWallet, error) {
	if cfg.WalletSecretKey != "" {
		wallet, err := ledger.NewMemoryWalletFromJSON(cfg.WalletSecretKey)
		if err != nil {
			return nil, fmt.Errorf("init wallet: %w", err)
		}
		return wallet, nil
	}

	wallet, err := ledger.GenerateWallet()
	if err != nil {
		return nil, fmt.Errorf("generate wallet: %w", err)
	}
	logger.Warn("no wallet secret provided; generated a throwaway signing key",
		zap.String("public_key", wallet.PublicKey()),
	)
	return wallet, nil
}
