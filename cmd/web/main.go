package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"funsomex-web/internal/funsomex"
	"funsomex-web/internal/http/handlers"
	httpapi "funsomex-web/internal/http/httpapi"
	"funsomex-web/internal/infra"
	"funsomex-web/internal/infra/geoip"
	"funsomex-web/internal/middleware"
	"funsomex-web/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		lookup = resolver.CountryCode
	}

	api, err := funsomex.NewClient(funsomex.Options{
		BaseURL:        cfg.APIBaseURL,
		HTTPClient:     &http.Client{Timeout: cfg.APITimeout},
		Logger:         &logger,
		RequestTimeout: cfg.APITimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build collaborator client")
	}

	sessions := session.NewManager(cfg.SessionCookieName, cfg.SessionTTL, cfg.CookieSecure)
	app := handlers.NewApp(api, sessions, &logger, cfg.NewsRefreshMaxWait)

	router := httpapi.NewRouter(cfg, app, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("web gateway listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
