package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/fakelotto-backend/api/routes"
	"github.com/ArowuTest/fakelotto-backend/internal/config"
	"github.com/ArowuTest/fakelotto-backend/internal/handlers"
	"github.com/ArowuTest/fakelotto-backend/internal/logger"
	"github.com/ArowuTest/fakelotto-backend/internal/services"
	sharejwt "github.com/ArowuTest/fakelotto-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

func main() {
	boot := config.ReadBootstrap()
	if !boot.SkipDotenv {
		if err := godotenv.Load(); err != nil {
			slog.Info("No .env file loaded, using environment variables")
		}
	}

	cfg, err := config.Load(boot.ConfigPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Setup(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	gin.SetMode(cfg.Server.Mode)

	ticketService, err := services.NewTicketService(cfg)
	if err != nil {
		slog.Error("Failed to create ticket service", "error", err)
		os.Exit(1)
	}
	resultTokens := sharejwt.NewResultTokenService(cfg)

	handlerDeps := routes.HandlerDependencies{
		TicketHandler: handlers.NewTicketHandler(ticketService),
		DrawHandler:   handlers.NewDrawHandler(ticketService, resultTokens),
		ShareTokens:   resultTokens,
	}
	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Server starting", "port", cfg.Server.Port, "fixedSeed", cfg.Draw.Seed != 0)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
