package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/nixpig/worker/internal/jobmanager"
	"github.com/nixpig/worker/internal/pki"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

func rootCmd() *cobra.Command {
	cfg := defaultConfig()

	var configPath string

	c := &cobra.Command{
		Use:          "workerd",
		Short:        "gRPC server for running shell commands as jobs on a remote host",
		Example:      "workerd --config workerd.yaml --debug",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := cfg.load(configPath, cmd.Flags()); err != nil {
					return err
				}
			}

			if err := cfg.validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			return run(cmd.Context(), cfg, newLogger(cfg.Debug))
		},
	}

	c.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")
	cfg.bindFlags(c.Flags())

	c.AddCommand(certsCmd())

	return c
}

func certsCmd() *cobra.Command {
	var (
		outDir      string
		serverHosts []string
		clients     []string
	)

	c := &cobra.Command{
		Use:     "certs",
		Short:   "Generate a CA, server and client certificates for mTLS",
		Example: "workerd certs --out certs --client alice:operator --client bob:viewer",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]pki.Identity, 0, len(clients))
			for _, client := range clients {
				id, err := pki.ParseIdentity(client)
				if err != nil {
					return err
				}

				ids = append(ids, id)
			}

			if err := pki.Generate(outDir, serverHosts, ids); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "certificates written to %s\n", outDir)

			return nil
		},
	}

	c.Flags().StringVar(&outDir, "out", "certs", "Directory to write certificates to")

	c.Flags().StringSliceVar(
		&serverHosts,
		"server-host",
		[]string{"localhost", "127.0.0.1"},
		"DNS name or IP address of the server",
	)

	c.Flags().StringArrayVar(
		&clients,
		"client",
		[]string{"operator:operator", "viewer:viewer"},
		"Client identity as CN:ROLE",
	)

	return c
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}

// run serves until ctx is done or a listener fails, then shuts down the
// servers and stops any running jobs.
func run(ctx context.Context, cfg *config, logger *slog.Logger) error {
	manager, err := jobmanager.NewManager(
		cfg.OutputDir,
		jobmanager.WithPollInterval(cfg.PollInterval),
	)
	if err != nil {
		return fmt.Errorf("create job manager: %w", err)
	}

	srv := newServer(manager, logger, cfg)
	if err := srv.init(); err != nil {
		return err
	}

	listener, err := net.Listen(
		"tcp",
		net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
	)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.start(listener); err != nil &&
			!errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve: %w", err)
		}

		return nil
	})

	var healthServer *http.Server
	if cfg.HealthAddr != "" {
		healthServer = newHealthServer(cfg.HealthAddr, srv.health)

		g.Go(func() error {
			logger.Info("starting health endpoint", "addr", cfg.HealthAddr)

			if err := healthServer.ListenAndServe(); err != nil &&
				!errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("health endpoint: %w", err)
			}

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("shutting down server")

		if healthServer != nil {
			shutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				shutdownTimeout,
			)
			defer cancel()

			if err := healthServer.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown health endpoint", "err", err)
			}
		}

		// Kill jobs first so that output streams following them reach EOF
		// and GracefulStop doesn't wait on them.
		manager.Shutdown()
		srv.shutdown()

		return nil
	})

	return g.Wait()
}
