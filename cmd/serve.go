package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/skillmatch/job-recommender/internal/catalog"
	"github.com/skillmatch/job-recommender/internal/logger"
	"github.com/skillmatch/job-recommender/internal/recommend"
	"github.com/skillmatch/job-recommender/internal/resume"
	"github.com/skillmatch/job-recommender/internal/secrets"
	"github.com/skillmatch/job-recommender/internal/server"
)

const defaultAddr = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recommendation HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog.Info("starting the job-recommender", zap.String("version", version))

	catalogClient := buildCatalog(ctx, config, zlog)
	if catalogClient == nil {
		zlog.Warn("job catalog is not configured; only the fallback pool will be ranked",
			zap.String("hint", "set catalog.url in the configuration file"),
		)
	}

	engine := recommend.New(effectiveRules(config), buildResumeFetcher(config, zlog), zlog)

	addr := defaultAddr
	if config.Server != nil && config.Server.Addr != "" {
		addr = config.Server.Addr
	}

	srv := server.New(addr, engine, catalogClient, zlog)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		zlog.Info("shutting down", zap.String("reason", "signal received"))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zlog.Warn("shutdown did not complete cleanly", zap.Error(err))
		}
	}
}

// buildCatalog constructs the catalog client from config, or nil when no
// catalog URL is configured.
func buildCatalog(ctx context.Context, config *Config, zlog *zap.Logger) *catalog.Client {
	if config == nil || config.Catalog == nil || config.Catalog.URL == "" {
		return nil
	}

	cfg := config.Catalog

	token, err := secrets.Load(secrets.Source{
		Name: "catalog token",
		File: cfg.TokenFile,
		Env:  "CATALOG_TOKEN",
	})
	if err != nil {
		// Unauthenticated access is fine for public catalogs; only an
		// explicitly configured token file deserves a warning.
		if cfg.TokenFile != "" {
			zlog.Warn("catalog token unavailable, proceeding unauthenticated", zap.Error(err))
		}
		token = ""
	}

	return catalog.New(ctx, zlog, cfg.URL, catalog.Options{
		Token:             token,
		UserAgent:         cfg.UserAgent,
		Timeout:           time.Duration(cfg.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Concurrency:       cfg.Concurrency,
	})
}

// buildResumeFetcher constructs the resume collaborator unless disabled.
func buildResumeFetcher(config *Config, zlog *zap.Logger) recommend.ResumeFetcher {
	var timeout time.Duration
	if config != nil && config.Resume != nil {
		if config.Resume.Disabled {
			return nil
		}
		timeout = time.Duration(config.Resume.TimeoutSeconds) * time.Second
	}

	return resume.NewFetcher(zlog, timeout, effectiveRules(config).SkillCatalog)
}
