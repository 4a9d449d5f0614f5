package main

// @title           SnapSeek Core API
// @version         1.0
// @description     Image search API with OAuth login, per-user search history and trending terms.

// @contact.name   SnapSeek OSS
// @contact.url    https://github.com/custodia-labs/snapseek-core/issues

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/snapseek-core/internal/adapters/driven/auth"
	"github.com/custodia-labs/snapseek-core/internal/adapters/driven/oauth"
	"github.com/custodia-labs/snapseek-core/internal/adapters/driven/postgres"
	redisadapter "github.com/custodia-labs/snapseek-core/internal/adapters/driven/redis"
	"github.com/custodia-labs/snapseek-core/internal/adapters/driven/unsplash"
	"github.com/custodia-labs/snapseek-core/internal/adapters/driving/http"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
	"github.com/custodia-labs/snapseek-core/internal/core/services"
)

var version = "dev"

func main() {
	log.Printf("snapseek-core %s starting", version)

	// Configuration from environment
	environment := getEnv("ENVIRONMENT", "development")
	port := getEnvInt("PORT", 8080)
	clientURL := getEnv("CLIENT_URL", "http://localhost:3000")
	serverURL := getEnv("SERVER_URL", fmt.Sprintf("http://localhost:%d", port))

	databaseURL := mustGetEnv("DATABASE_URL")
	sessionSecret := mustGetEnv("SESSION_SECRET")
	unsplashKey := mustGetEnv("UNSPLASH_ACCESS_KEY")
	redisURL := getEnv("REDIS_URL", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ===== Initialize PostgreSQL =====
	log.Println("Connecting to PostgreSQL...")
	dbConfig := postgres.Config{
		URL:             databaseURL,
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300)) * time.Second,
		ConnMaxIdleTime: time.Duration(getEnvInt("DB_CONN_MAX_IDLE_SEC", 60)) * time.Second,
	}
	db, err := postgres.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize schema (idempotent)
	if err := db.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Println("PostgreSQL connected and schema initialized")

	// ===== Initialize Redis (optional) =====
	var redisClient *redis.Client
	if redisURL != "" {
		log.Println("Connecting to Redis...")
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Redis connected")
	}

	// ===== Provider token encryption =====
	encKey, err := postgres.DeriveKey(sessionSecret)
	if err != nil {
		log.Fatalf("Failed to derive encryption key: %v", err)
	}
	encryptor, err := postgres.NewSecretEncryptor(encKey)
	if err != nil {
		log.Fatalf("Failed to create encryptor: %v", err)
	}

	// ===== PostgreSQL Stores =====
	userStore := postgres.NewUserStore(db)
	identityStore := postgres.NewIdentityStore(db, encryptor)
	historyStore := postgres.NewSearchHistoryStore(db)

	// ===== Session Store (Redis if available, otherwise PostgreSQL) =====
	var sessionStore driven.SessionStore
	if redisClient != nil {
		sessionStore = redisadapter.NewSessionStore(redisClient)
		log.Println("Using Redis session store")
	} else {
		sessionStore = postgres.NewSessionStore(db)
		log.Println("Using PostgreSQL session store")
	}

	// ===== Driven adapters (infrastructure) =====
	authAdapter := auth.NewAdapter(sessionSecret)
	imageProvider := unsplash.NewClient(unsplashKey)

	// ===== OAuth login providers =====
	providers := oauth.NewRegistry(
		oauth.Config{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			CallbackURL:  serverURL + "/auth/google/callback",
		},
		oauth.Config{
			ClientID:     getEnv("FACEBOOK_APP_ID", ""),
			ClientSecret: getEnv("FACEBOOK_APP_SECRET", ""),
			CallbackURL:  serverURL + "/auth/facebook/callback",
		},
		oauth.Config{
			ClientID:     getEnv("GITHUB_CLIENT_ID", ""),
			ClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			CallbackURL:  serverURL + "/auth/github/callback",
		},
	)
	if names := providers.Names(); len(names) == 0 {
		log.Println("Warning: no OAuth providers configured, login is unavailable")
	} else {
		log.Printf("OAuth providers configured: %v", names)
	}

	// Services (core business logic)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	authService := services.NewAuthService(userStore, sessionStore, authAdapter)
	identityService := services.NewIdentityService(userStore, identityStore)
	searchService := services.NewSearchService(historyStore, imageProvider, logger)
	historyService := services.NewHistoryService(historyStore)

	// HTTP server
	serverConfig := http.Config{
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        port,
		Environment: environment,
		ClientURL:   clientURL,
	}
	server := http.NewServer(
		serverConfig,
		authService,
		identityService,
		searchService,
		historyService,
		providers,
		db,
	)

	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s is required", key)
	}
	return value
}
