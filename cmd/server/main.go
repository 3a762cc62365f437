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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/verifresh-labs/verifresh-backend/internal/insight"
	"github.com/verifresh-labs/verifresh-backend/internal/ledger"
	"github.com/verifresh-labs/verifresh-backend/internal/ledger/rpc"
	"github.com/verifresh-labs/verifresh-backend/internal/metrics"
	"github.com/verifresh-labs/verifresh-backend/internal/transport"
	"go.uber.org/zap"
)

type config struct {
	Addr            string        `long:"addr" env:"VERIFRESH_ADDR" description:"API listen address" default:":3001"`
	LedgerRPCURL    string        `long:"ledger-rpc-url" env:"LEDGER_RPC_URL" description:"ledger node JSON-RPC endpoint" default:"http://127.0.0.1:8899"`
	LedgerNetwork   string        `long:"ledger-network" env:"LEDGER_NETWORK" description:"ledger network name" default:"devnet"`
	WalletSecretKey string        `long:"wallet-secret-key" env:"SERVER_WALLET_SECRET_KEY" description:"server signing key as a JSON byte array"`
	GeminiAPIKey    string        `long:"gemini-api-key" env:"GEMINI_API_KEY" description:"Gemini API key"`
	GeminiModel     string        `long:"gemini-model" env:"GEMINI_MODEL" description:"Gemini model name" default:"gemini-2.5-flash"`
	RPCTimeout      time.Duration `long:"rpc-timeout" env:"LEDGER_RPC_TIMEOUT" description:"HTTP timeout for ledger RPC requests" default:"30s"`
	ModelTimeout    time.Duration `long:"model-timeout" env:"GEMINI_TIMEOUT" description:"HTTP timeout for model requests" default:"60s"`
	ModelRPS        int           `long:"model-rps" env:"GEMINI_RPS" description:"model calls per second" default:"1"`
	RequestTimeout  time.Duration `long:"request-timeout" env:"REQUEST_TIMEOUT" description:"per-request deadline" default:"90s"`
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

	// Optional .env for local development; env vars win either way.
	_ = godotenv.Load()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.WalletSecretKey == "" {
		logger.Fatal("server wallet secret key is required")
	}
	if cfg.GeminiAPIKey == "" {
		logger.Fatal("Gemini API key is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("verifresh backend failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	wallet, err := ledger.NewMemoryWalletFromJSON(cfg.WalletSecretKey)
	if err != nil {
		return fmt.Errorf("init wallet: %w", err)
	}
	logger.Info("server wallet loaded", zap.String("public_key", wallet.PublicKey()))

	node := rpc.NewObservedClient(
		rpc.NewClient(cfg.LedgerRPCURL, cfg.RPCTimeout),
		metrics.NewLedgerRPC(cfg.LedgerNetwork),
	)
	ledgerClient, err := ledger.NewClient(node, wallet, logger.Named("ledger"))
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	gemini := insight.NewGeminiClient(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		cfg.ModelTimeout,
		cfg.ModelRPS,
		metrics.NewModelClient(cfg.GeminiModel),
	)
	pipeline, err := insight.NewPipeline(gemini, metrics.NewInsight(), logger.Named("insight"))
	if err != nil {
		return fmt.Errorf("init insight pipeline: %w", err)
	}

	mux := http.NewServeMux()
	transport.NewHandler(ledgerClient, pipeline, logger.Named("transport"), cfg.RequestTimeout).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2 * cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
