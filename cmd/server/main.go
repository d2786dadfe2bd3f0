package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devfolio/site/internal/config"
	"github.com/devfolio/site/internal/handler"
	"github.com/devfolio/site/internal/logging"
	"github.com/devfolio/site/internal/repository"
	"github.com/devfolio/site/internal/service"
	"github.com/devfolio/site/internal/storage"
	"github.com/devfolio/site/pkg/auth"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	if cfg.SecretKey == "" {
		slog.Warn("SECRET_KEY is not set; using a random per-boot signing key, sessions will not survive restarts")
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	messageRepo := repository.NewPgMessageRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	store := storage.NewLocalStorage(cfg.StaticDir)
	messageService := service.NewMessageService(messageRepo)
	projectService := service.NewProjectService(projectRepo, store)

	guard := auth.NewGuard(cfg.AdminUsername, cfg.AdminPasswordHash)
	if !guard.Configured() {
		slog.Warn("admin credentials are not configured; all admin logins will be rejected")
	}
	secret := auth.SessionSecretBytes(cfg.SecretKey)

	render, err := handler.NewRenderer(secret)
	if err != nil {
		logging.Fatal("failed to parse templates", "error", err)
	}

	h := handler.New(pool)
	homeHandler := handler.NewHomeHandler(render)
	contactHandler := handler.NewContactHandler(messageService, secret)
	authHandler := handler.NewAuthHandler(guard, secret, render)
	dashboardHandler := handler.NewDashboardHandler(messageService, render)
	projectHandler := handler.NewProjectHandler(projectService, secret, render)

	requireAdmin := auth.RequireAdmin(secret)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", homeHandler.Home)
	mux.HandleFunc("POST /contact", contactHandler.Submit)
	mux.HandleFunc("GET /projects", projectHandler.PublicList)
	mux.HandleFunc("GET /admin/login", authHandler.LoginForm)
	mux.HandleFunc("POST /admin/login", authHandler.Login)
	mux.HandleFunc("GET /healthz", h.Health)

	// Admin routes, uniformly gated. The delete route is gated like the rest.
	mux.Handle("GET /admin", requireAdmin(http.HandlerFunc(dashboardHandler.Dashboard)))
	mux.Handle("GET /admin/logout", requireAdmin(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /admin/projects", requireAdmin(http.HandlerFunc(projectHandler.AdminList)))
	mux.Handle("POST /admin/projects", requireAdmin(http.HandlerFunc(projectHandler.Create)))
	mux.Handle("POST /admin/projects/delete/{id}", requireAdmin(http.HandlerFunc(projectHandler.Delete)))

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
