package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shaiso/Mnemo/internal/api"
	"github.com/shaiso/Mnemo/internal/beatoven"
	"github.com/shaiso/Mnemo/internal/config"
	"github.com/shaiso/Mnemo/internal/lyrics"
	"github.com/shaiso/Mnemo/internal/mcp"
	"github.com/shaiso/Mnemo/internal/music"
	"github.com/shaiso/Mnemo/internal/store"
	"github.com/shaiso/Mnemo/internal/telemetry"
)

var (
	startTime = time.Now()
	reqTotal  = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mnemo_api_http_requests_total",
		Help: "Total HTTP requests handled by mnemo_api",
	})
)

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting mnemo-api")

	cfg := config.Load()
	if cfg.TestMode() {
		logger.Warn("provider is in TEST_MODE, all responses are mocked")
	}

	// Клиент провайдера композиции
	provider := beatoven.NewClient(beatoven.Config{
		BaseURL: cfg.BeatovenAPIURL,
		APIKey:  cfg.BeatovenAPIKey,
		Logger:  logger,
	})

	// Движок текстов с энциклопедией для тем вне каталога
	engine := lyrics.NewEngine(
		lyrics.WithFetcher(lyrics.NewWikiClient("")),
		lyrics.WithLogger(logger),
	)

	// Реестр заявок и его janitor
	registry := store.NewRegistry(cfg.RegistryTTL)
	janitor, err := store.NewJanitor(registry, cfg.JanitorCron, logger)
	if err != nil {
		logger.Error("failed to create registry janitor", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go janitor.Run(ctx)

	// Сервис и API handler
	svc := music.NewService(provider, engine, registry, logger)
	handler := api.NewHandler(api.Config{
		Music:     svc,
		Router:    mcp.NewRouter(),
		OpenAIKey: cfg.OpenAIAPIKey,
		GoogleKey: cfg.GoogleAPIKey,
		Logger:    logger,
	})

	mux := http.NewServeMux()

	// Health и metrics
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		reqTotal.Inc()
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %s", time.Since(startTime))
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Регистрируем API маршруты
	handler.RegisterRoutes(mux)

	// Создаём HTTP сервер с возможностью graceful shutdown
	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: mux,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Ожидаем сигнал завершения
	<-ctx.Done()
	logger.Info("shutting down")

	// Graceful shutdown с таймаутом 10 секунд
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}
