package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/renewvia/gridplan/config"
	"github.com/renewvia/gridplan/internal/engine"
	"github.com/renewvia/gridplan/internal/handler"
	"github.com/renewvia/gridplan/internal/middleware"
	"github.com/renewvia/gridplan/internal/service"
)

func main() {
	// ── Load configuration ──────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// ── Initialize layers ───────────────────────────────
	eng := engine.New(engine.Config{
		MaxSpanMeters: cfg.Engine.MaxSpanMeters,
		EarthRadiusM:  cfg.Engine.EarthRadiusM,
	})
	log.Printf("✓ engine ready (max span %.0f m)", eng.Config().MaxSpanMeters)

	planSvc := service.NewPlanService(eng)
	planHandler := handler.NewPlanHandler(planSvc)

	// ── Setup router ────────────────────────────────────
	router := mux.NewRouter()

	// Health check endpoint.
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// API v1 routes.
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/plan", planHandler.CreatePlan).Methods(http.MethodPost)

	// Wrap with CORS so the browser dashboard can call the API, plus
	// request logging and panic recovery.
	chain := middleware.CORS(middleware.RequestLogger(middleware.Recoverer(router)))

	// ── Start HTTP server ───────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      chain,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in a goroutine so we can listen for shutdown signals.
	go func() {
		log.Printf("🚀 Server listening on %s", cfg.Server.ServerAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// ── Graceful shutdown ───────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("⏳ Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
