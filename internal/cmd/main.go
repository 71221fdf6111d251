package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wisp167/masar/internal/data"
	"github.com/wisp167/masar/internal/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, cfgErr := server.LoadConfig()

	root := &cobra.Command{
		Use:          "masar",
		Short:        "Masar marketplace mock backend",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfgErr
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Env, "env", cfg.Env, "environment (development|production)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flags.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend (memory|sqlite|postgres|redis)")
	flags.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database file")
	flags.StringVar(&cfg.Redis.Addr, "redis-addr", cfg.Redis.Addr, "Redis address")

	root.AddCommand(serveCmd(&cfg), seedCmd(&cfg), versionCmd())
	return root
}

func serveCmd(cfg *server.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := server.NewLogger(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := server.SetupApplication(ctx, *cfg, logger)
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(app.Serve)
			g.Go(func() error {
				<-gctx.Done()
				logger.Info("shutting down server")
				return app.Stop()
			})
			return g.Wait()
		},
	}

	cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	cmd.Flags().IntVar(&cfg.NumWorkers, "workers", cfg.NumWorkers, "maximum concurrent requests")
	cmd.Flags().DurationVar(&cfg.LoginDelay, "login-delay", cfg.LoginDelay, "artificial delay before login and register answer")
	cmd.Flags().DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "lifetime of issued tokens")
	cmd.Flags().BoolVar(&cfg.Seed, "seed", cfg.Seed, "seed empty collections with mock data on start")
	return cmd
}

func seedCmd(cfg *server.Config) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the mock data set into persistent storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Storage == "" || cfg.Storage == server.StorageMemory {
				return fmt.Errorf("seeding %s storage has no lasting effect, pick another --storage", server.StorageMemory)
			}

			logger, err := server.NewLogger(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx := cmd.Context()
			kv, closer, err := server.OpenStorage(ctx, *cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			return seed(ctx, data.NewModels(kv), reset, func(keys []string) {
				logger.Infow("seeded", "storage", cfg.Storage, "keys", keys)
			})
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "delete all collections before seeding")
	return cmd
}

func seed(ctx context.Context, models data.Models, reset bool, report func([]string)) error {
	if reset {
		if err := models.Reset(ctx); err != nil {
			return err
		}
	}
	keys, err := models.Initialize(ctx)
	if err != nil {
		return err
	}
	report(keys)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), server.Version)
		},
	}
}
