// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package server assembles the Echo application.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"

	"todoapp/internal/config"
	"todoapp/internal/database"
	"todoapp/internal/handlers"
	"todoapp/internal/middleware"
	"todoapp/internal/repository"
	authsvc "todoapp/internal/services/auth"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	setupLogger(cfg.Log.Level, cfg.Log.Format)

	if cfg.JWT.Secret == "" {
		return errors.New("jwt secret is required (set --jwt-secret or JWT_SECRET)")
	}

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database", cfg.Database.DSN,
	)

	// Database (migrations run on open)
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	// Repository and services
	repo := repository.New(db)
	authService := authsvc.NewService(repo, &cfg.JWT)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	setupMiddleware(e, cfg)
	setupRoutes(e, cfg, repo, authService)

	return startWithGracefulShutdown(ctx, e, cfg)
}

func setupRoutes(e *echo.Echo, cfg *config.Config, repo *repository.Repository, authService *authsvc.Service) {
	h := handlers.New(repo, authService)

	// Public
	e.GET("/health", h.Health)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	// Authenticated
	api := e.Group("/api")
	api.Use(middleware.JWT(cfg.JWT.Secret))
	api.Use(middleware.LoadCaller)

	api.GET("/admin/users", h.GetUsernames)
	api.DELETE("/admin/users", h.DeleteUser)
	api.PUT("/admin/users/:id", h.UpdateUser)

	api.GET("/themes", h.GetColourThemes)
	api.POST("/themes", h.PostColourTheme)
	api.GET("/themes/:id", h.GetColourTheme)
	api.PUT("/themes/:id", h.PutColourTheme)
	api.DELETE("/themes/:id", h.DeleteColourTheme)

	api.GET("/todos", h.GetTodoItems)
	api.POST("/todos", h.PostTodoItem)
	api.PUT("/todos/:id", h.PutTodoItem)
	api.DELETE("/todos/:id", h.DeleteTodoItem)
}

func startWithGracefulShutdown(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("server running", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("shutting down server")
	case <-ctx.Done():
		slog.Info("shutting down server")
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
		return err
	}

	slog.Info("server stopped")
	return nil
}
