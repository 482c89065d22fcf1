package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/rackline/stockboard/pkg/application/services"
	"github.com/rackline/stockboard/pkg/infrastructure/config"
	csvrepo "github.com/rackline/stockboard/pkg/infrastructure/repositories/csv"
	"github.com/rackline/stockboard/pkg/infrastructure/repositories/memory"
	"github.com/rackline/stockboard/pkg/interfaces/rest"
)

func main() {
	// Command line flags
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (optional)")
		partsFile  = flag.String("parts", "", "Path to part master CSV to preload (optional)")
		addr       = flag.String("addr", "", "Listen address, overrides configuration")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)

	flag.Parse()

	if err := run(*configPath, *partsFile, *addr, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, partsFile, addr string, debug bool) error {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if addr != "" {
		cfg.ListenAddr = addr
	}

	rackRepo, err := memory.NewRackRepository(cfg.RackIDs(), cfg.FixedRows)
	if err != nil {
		return fmt.Errorf("failed to build racks: %w", err)
	}

	partRepo := memory.NewPartRepository(64)
	ledgerRepo := memory.NewLedgerRepository()
	stock := services.NewStockService(rackRepo, partRepo, ledgerRepo, cfg.CellCapacity, cfg.PackagingWeightKG)

	if partsFile != "" {
		loader := csvrepo.NewLoader()
		parts, err := loader.LoadParts(partsFile)
		if err != nil {
			return fmt.Errorf("failed to load part master: %w", err)
		}
		count, err := stock.BulkUpsertParts(parts, "system")
		if err != nil {
			return fmt.Errorf("failed to preload part master: %w", err)
		}
		logger.Info().Int("parts", count).Str("file", partsFile).Msg("part master preloaded")
	}

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: rest.NewServer(stock, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Int("racks", len(cfg.RackSpaces)).Msg("stock board listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
