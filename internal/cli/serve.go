package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pictolab/glyphgrid/internal/server"
	"github.com/pictolab/glyphgrid/pkg/cache"
	"github.com/pictolab/glyphgrid/pkg/config"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 10 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	configPath string // runtime config file (TOML)
	listen     string // overrides the config's listen address when set
}

// newServeCmd creates the serve command running the HTTP placement API.
// Settings come from the TOML config file; --listen overrides the address.
func newServeCmd() *cobra.Command {
	opts := serveOpts{configPath: "glyphgrid.toml"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP placement API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", opts.configPath, "config file path")
	cmd.Flags().StringVar(&opts.listen, "listen", "", "listen address (overrides config)")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	settings, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.listen != "" {
		settings.Server.Listen = opts.listen
	}

	engine, err := newEngine(settings.AssetsDir, settings.PropSizeValue(), logger)
	if err != nil {
		return err
	}

	resultCache, err := newCache(ctx, settings.Server.Cache)
	if err != nil {
		return err
	}
	defer resultCache.Close()

	srv := server.New(engine, server.Options{
		Cache:    resultCache,
		CacheTTL: settings.Server.Cache.TTL.Std(),
		GridMode: settings.GridModeValue(),
		Logger:   logger,
	})

	httpSrv := &http.Server{
		Addr:              settings.Server.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", settings.Server.Listen)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// newCache builds the result cache named by the config.
func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheMemory:
		return cache.NewMemoryCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}
