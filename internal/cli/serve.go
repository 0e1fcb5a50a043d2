package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattkessler/crossweave/internal/config"
	"github.com/mattkessler/crossweave/internal/server"
	"github.com/mattkessler/crossweave/pkg/cache"
	"github.com/mattkessler/crossweave/pkg/generate"
	"github.com/mattkessler/crossweave/pkg/pipeline"
	"github.com/mattkessler/crossweave/pkg/store"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the crossweave HTTP API.

Puzzles are stored in MongoDB when server.mongo_uri is configured, and
on disk otherwise. Results are cached in Redis when server.redis_addr
is configured, and in the local file cache otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.loadConfig()
			if addr == "" {
				addr = cfg.Server.Addr
			}

			st, err := c.newServeStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close(context.Background())

			ca, err := c.newServeCache(ctx, cfg, noCache)
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(ca, nil, c.Logger)
			defer runner.Close()
			if client, err := generate.NewClient(ctx, cfg.Generate.Model); err == nil {
				runner.Generator = client
			} else {
				c.Logger.Warn("word generation disabled", "err", err)
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(st, runner, c.Logger).Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			c.Logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")

	return cmd
}

func (c *CLI) newServeStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.Server.MongoURI != "" {
		c.Logger.Info("using MongoDB store", "uri", cfg.Server.MongoURI)
		return store.NewMongoStore(ctx, store.MongoConfig{URI: cfg.Server.MongoURI})
	}
	return store.NewFileStore("")
}

func (c *CLI) newServeCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.Server.RedisAddr != "" {
		c.Logger.Info("using Redis cache", "addr", cfg.Server.RedisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Server.RedisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
	}
	return newCache(false)
}
