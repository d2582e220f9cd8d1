package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/trakhound/entitystore/internal/config"
	"github.com/trakhound/entitystore/internal/logger"
	"github.com/trakhound/entitystore/internal/metrics"
	"github.com/trakhound/entitystore/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var configPath string
	v := config.New()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC entity service and observability endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (yaml or toml)")
	flags.Int("port", 50051, "gRPC port")
	flags.Int("metrics-port", 9090, "observability HTTP port, 0 disables it")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("log-pretty", false, "human readable logs")
	flags.StringSlice("seed", nil, "fixture files loaded at startup")
	flags.Bool("snapshots", true, "serve reads from published snapshots")

	for key, flag := range map[string]string{
		"server.port":         "port",
		"server.metrics_port": "metrics-port",
		"log.level":           "log-level",
		"log.pretty":          "log-pretty",
		"seed.files":          "seed",
		"snapshot.enabled":    "snapshots",
	} {
		// only fails for a nil flag
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.InitGlobalLogger(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty}).
		WithFields(map[string]interface{}{"version": server.Version})
	log.LogServerStart(cfg.Server.Port, cfg.Server.MetricsPort)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(reg)

	entityServer := server.NewServer(server.Options{
		Metrics:   m,
		Logger:    log,
		Snapshots: cfg.Snapshot.Enabled,
	})
	if err := entityServer.Seed(cfg.Seed.Files); err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return errors.Wrap(err, "failed to listen")
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.GrpcMetricsInterceptor(m, log)),
		grpc.MaxRecvMsgSize(100*1024*1024), // 100 MB
		grpc.MaxSendMsgSize(100*1024*1024), // 100 MB
	)
	server.RegisterEntityServiceServer(grpcServer, entityServer)
	reflection.Register(grpcServer)

	var ready atomic.Bool
	obs := server.NewObservabilityServer(cfg.Server.MetricsPort, reg, ready.Load, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ready.Store(true)
		log.LogServerReady(cfg.Server.Port)
		if err := grpcServer.Serve(lis); err != nil {
			return errors.Wrap(err, "gRPC server failed")
		}
		return nil
	})
	if cfg.Server.MetricsPort > 0 {
		g.Go(obs.Start)
	}
	g.Go(func() error {
		<-gctx.Done()
		ready.Store(false)
		log.LogServerShutdown()
		grpcServer.GracefulStop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return obs.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
