package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/adebayo-ak/carechat/internal/chat"
	"github.com/adebayo-ak/carechat/internal/complaints"
	"github.com/adebayo-ak/carechat/internal/db"
	"github.com/adebayo-ak/carechat/internal/reminders"
)

// Config holds server configuration.
type Config struct {
	Port     int
	DataDir  string // directory for the SQLite database
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server is the carechat HTTP server.
type Server struct {
	cfg        Config
	db         *db.DB
	complaints *complaints.Store
	reminders  *reminders.Store
	chat       *chat.Service
	router     chi.Router
	httpServer *http.Server
}

// New creates a new server with all dependencies wired.
func New(cfg Config, database *db.DB, complaintStore *complaints.Store, reminderStore *reminders.Store, chatSvc *chat.Service) *Server {
	s := &Server{
		cfg:        cfg,
		db:         database,
		complaints: complaintStore,
		reminders:  reminderStore,
		chat:       chatSvc,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Feature routes
	complaints.RegisterRoutes(r, s.complaints)
	reminders.RegisterRoutes(r, s.reminders)
	chat.RegisterRoutes(r, s.chat)

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Database returns the database connection.
func (s *Server) Database() *db.DB { return s.db }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("carechat server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
