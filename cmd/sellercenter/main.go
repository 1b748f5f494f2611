package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/erp/sellercenter/internal/application/integration"
	"github.com/erp/sellercenter/internal/infrastructure/config"
	"github.com/erp/sellercenter/internal/infrastructure/logger"
	"github.com/erp/sellercenter/internal/infrastructure/sellercenter"
	"github.com/erp/sellercenter/internal/infrastructure/telemetry"
)

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "sellercenter: %v\n", err)
		}
		os.Exit(1)
	}
}

// app holds what every command needs
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	service *integration.Service
	tracing *telemetry.TracerProvider
	metrics *telemetry.MeterProvider
	out     io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sellercenter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to a config file (default: sellercenter.toml in ., ./config or /etc/sellercenter)")
	logLevel := fs.String("log-level", "", "Log level override (debug, info, warn, error)")
	fs.Usage = func() { printUsage(fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logger.New(cfg.LoggerConfig())
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	tp, err := telemetry.NewTracerProvider(ctx, cfg.TracingConfig(), log)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	mp, err := telemetry.NewMeterProvider(ctx, cfg.TracingConfig(), log)
	if err != nil {
		return fmt.Errorf("initialize metrics: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mp.Shutdown(shutdownCtx); err != nil {
			log.Warn("Meter shutdown failed", zap.Error(err))
		}
	}()

	client, err := sellercenter.NewClient(cfg.ClientConfig(),
		sellercenter.WithLogger(logger.Named(log, "client")),
		sellercenter.WithMeter(mp.Meter(telemetry.TracerName)),
	)
	if err != nil {
		return err
	}

	a := &app{
		cfg:     cfg,
		log:     log,
		service: integration.NewService(client, integration.WithLogger(logger.Named(log, "integration"))),
		tracing: tp,
		metrics: mp,
		out:     stdout,
	}
	return a.dispatch(ctx, fs.Arg(0), fs.Args()[1:])
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func (a *app) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "brands":
		return a.brands(ctx)
	case "categories":
		return a.categories(ctx)
	case "feed-status":
		return a.feedStatus(ctx, args)
	case "products":
		return a.products(ctx, args)
	case "qc-status":
		return a.qcStatus(ctx, args)
	case "serve-webhooks":
		return a.serveWebhooks(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, `Usage: sellercenter [flags] <command> [args]

Commands:
  brands                      List brands
  categories                  Print the category tree
  feed-status <feed-id>       Show the processing report of a feed
  products [flags]            List products (-filter, -search, -limit, -offset)
  qc-status <sku>...          Show quality-control state of seller SKUs
  serve-webhooks              Run the webhook notification receiver

Flags:`)
	fs.PrintDefaults()
}
