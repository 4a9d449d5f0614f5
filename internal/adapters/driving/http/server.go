package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driving"
)

const (
	sessionCookieName = "snapseek_session"
	stateCookieName   = "snapseek_oauth_state"

	envDevelopment = "development"

	stateCookieTTL = 10 * time.Minute
)

// Pinger is a simple health check interface
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	router      *http.ServeMux
	environment string
	clientURL   string

	// Services
	authService     driving.AuthService
	identityService driving.IdentityService
	searchService   driving.SearchService
	historyService  driving.HistoryService

	// Infrastructure
	providers driven.LoginProviderRegistry
	metrics   *Metrics
	db        Pinger
}

// Config holds server configuration
type Config struct {
	Host        string
	Port        int
	Environment string
	ClientURL   string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:        "0.0.0.0",
		Port:        8080,
		Environment: envDevelopment,
		ClientURL:   "http://localhost:3000",
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	authService driving.AuthService,
	identityService driving.IdentityService,
	searchService driving.SearchService,
	historyService driving.HistoryService,
	providers driven.LoginProviderRegistry,
	db Pinger,
) *Server {
	s := &Server{
		router:          http.NewServeMux(),
		environment:     cfg.Environment,
		clientURL:       cfg.ClientURL,
		authService:     authService,
		identityService: identityService,
		searchService:   searchService,
		historyService:  historyService,
		providers:       providers,
		metrics:         NewMetrics(),
		db:              db,
	}

	s.setupRoutes()

	// Middleware chain: recovery outermost so panics anywhere downstream
	// still produce a JSON 500
	recovery := NewRecoveryMiddleware(cfg.Environment)
	logging := NewLoggingMiddleware()
	metrics := NewMetricsMiddleware(s.metrics)
	cors := NewCORSMiddleware(cfg.ClientURL)

	handler := recovery.Handler(logging.Handler(metrics.Handler(cors.Handler(s.router))))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	authMiddleware := NewAuthMiddleware(s.authService)

	// Public endpoints
	s.router.HandleFunc("GET /{$}", s.handleRoot)
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.Handle("GET /metrics", s.metrics.Handler())

	// OAuth flow (public; literal routes beat the {provider} wildcard)
	s.router.HandleFunc("GET /auth/{provider}", s.handleLoginBegin)
	s.router.HandleFunc("GET /auth/{provider}/callback", s.handleLoginCallback)

	// Session endpoints
	s.router.Handle("GET /auth/logout",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleLogout)))
	s.router.Handle("GET /auth/currentUser",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleCurrentUser)))

	// Search endpoints (authenticated)
	s.router.Handle("POST /api/search",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleSearch)))
	s.router.Handle("GET /api/history",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleHistory)))
	s.router.Handle("GET /api/topSearches",
		authMiddleware.Authenticate(http.HandlerFunc(s.handleTopSearches)))

	// Everything else gets the endpoint listing
	s.router.HandleFunc("/", s.handleNotFound)
}

// Start starts the HTTP server with graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// secureCookies reports whether cookies should carry the Secure flag.
// Local development runs over plain HTTP.
func (s *Server) secureCookies() bool {
	return s.environment != envDevelopment
}
