package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kulturkompass/wortwolke/internal/api"
	"github.com/kulturkompass/wortwolke/pkg/analytics"
	"github.com/kulturkompass/wortwolke/pkg/cache"
	"github.com/kulturkompass/wortwolke/pkg/config"
	"github.com/kulturkompass/wortwolke/pkg/pipeline"
)

// serveCommand creates the serve command running the HTTP layout service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout service",
		Long: `Run the HTTP layout service.

The service exposes POST /v1/layout for computing word-cloud layouts and
GET /v1/strategy for probing the strategy selection policy. With a Redis
address configured, layout results are shared across instances; with a
MongoDB URI configured, layout diagnostics are recorded as analytics events.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg config.Config) error {
	store, err := c.newServeCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	sink, err := c.newServeSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = sink.Close(context.Background()) }()

	runner := pipeline.NewRunner(store, sink, c.Logger)
	defaults := pipeline.Options{
		Config:   cfg.LayoutDefaults(),
		CacheTTL: cfg.CacheTTL(),
	}

	srv := api.New(runner, defaults, c.Logger)
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}

// newServeCache picks the cache backend: Redis if configured, then the file
// cache directory, then disabled.
func (c *CLI) newServeCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if cfg.Redis.Addr != "" {
		c.Logger.Info("using redis layout cache", "addr", cfg.Redis.Addr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	if cfg.Cache.Dir != "" {
		return cache.NewFileCache(cfg.Cache.Dir)
	}
	return cache.NewNullCache(), nil
}

// newServeSink picks the analytics sink: MongoDB if configured, else null.
func (c *CLI) newServeSink(ctx context.Context, cfg config.Config) (analytics.Sink, error) {
	if cfg.Mongo.URI == "" {
		return analytics.NewNullSink(), nil
	}
	c.Logger.Info("recording layout analytics", "database", cfg.Mongo.Database)
	return analytics.NewMongoSink(ctx, analytics.MongoConfig{
		URI:        cfg.Mongo.URI,
		Database:   cfg.Mongo.Database,
		Collection: cfg.Mongo.Collection,
	}, c.Logger)
}
