package main

import (
	"os"
	"os/signal"
	"syscall"

	"githubWebhookMonitor/internal/config"
	"githubWebhookMonitor/internal/events"
	"githubWebhookMonitor/internal/handlers"
	"githubWebhookMonitor/internal/logger"
	"githubWebhookMonitor/internal/middleware"
	"githubWebhookMonitor/internal/store"
	"githubWebhookMonitor/internal/webhook"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	logger.InitLogger()
	defer logger.Lg.Sync()

	cfg := config.Load()
	st, err := store.Open(cfg)
	if err != nil {
		logger.Lg.Error("store open", zap.Error(err))
		os.Exit(1)
	}

	r := events.NewRepo(st.Db, st.Rdb)
	svc := events.NewService(r, webhook.New())

	app := fiber.New()
	app.Use(middleware.RequestLogger())
	h := handlers.NewHTTP(svc)

	// endpoints
	app.Post("/webhook", h.PostWebhook)
	app.Get("/api/events", h.GetEvents)
	app.Get("/test", h.GetTest)
	app.Get("/", h.GetIndex)

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			logger.Lg.Info("Server stopped", zap.Error(err))
		}
	}()

	GracefulShutdown(app, st)
	logger.Lg.Info("Shutdown complete")
}

func GracefulShutdown(app *fiber.App, st *store.Store) {
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	<-sigchan
	logger.Lg.Info("Shutdown sig rcv")
	if err := app.Shutdown(); err != nil {
		logger.Lg.Error("Server shutdown error", zap.Error(err))
	}
	if err := st.Close(); err != nil {
		logger.Lg.Error("store close error", zap.Error(err))
	}
}
