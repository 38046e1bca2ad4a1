package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/fjod/go_storefront/internal/cache"
	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/cartstore"
	"github.com/fjod/go_storefront/internal/checkout"
	h "github.com/fjod/go_storefront/internal/http"
	"github.com/fjod/go_storefront/internal/notification"
	"github.com/fjod/go_storefront/internal/orders"
	"github.com/fjod/go_storefront/internal/payment"
	"github.com/fjod/go_storefront/internal/repository"
	"github.com/fjod/go_storefront/internal/shipping"
)

type Config struct {
	HTTPPort        string
	PostgresHost    string
	PostgresPort    int
	PostgresUser    string
	PostgresPass    string
	PostgresDB      string
	MigrationsPath  string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    []string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		log.Fatalf("invalid POSTGRES_PORT: %v", err)
	}
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		PostgresHost:    getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:    pgPort,
		PostgresUser:    getEnv("POSTGRES_USER", "storefront"),
		PostgresPass:    getEnv("POSTGRES_PASSWORD", "storefront"),
		PostgresDB:      getEnv("POSTGRES_DB", "storefront"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "cartdb"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    []string{getEnv("KAFKA_BROKER", "localhost:9092")},
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// Postgres holds products, addresses and orders.
	creds := &repository.Credentials{
		Host:              cfg.PostgresHost,
		Port:              cfg.PostgresPort,
		User:              cfg.PostgresUser,
		Password:          cfg.PostgresPass,
		DBName:            cfg.PostgresDB,
		MigrationsDirPath: cfg.MigrationsPath,
	}
	repo, err := repository.NewRepository(creds)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(creds); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Mongo holds carts.
	mongoDB, err := cartstore.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	cartRepo := cartstore.NewMongoRepository(mongoDB)
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	notifier := notification.NewKafkaNotifier(cfg.KafkaBrokers...)
	defer notifier.Close()

	cartCache := cache.NewRedisCache(redisClient)
	cartService := cart.NewService(cartRepo, cartCache, repo)
	checkoutService := checkout.NewService(
		repo,
		cartService,
		repo,
		repo,
		repo,
		payment.NewRegistry(),
		shipping.NewBandedStrategy(),
		notifier,
	)
	orderService := orders.NewService(repo, repo, repo)

	cartHandler := h.NewCartHandler(cartService, cfg.RequestTimeout)
	checkoutHandler := h.NewCheckoutHandler(checkoutService, cfg.RequestTimeout)
	ordersHandler := h.NewOrdersHandler(orderService, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(h.MockAuthMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})
		r.Post("/checkout", checkoutHandler.Checkout)
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordersHandler.ListOrders)
			r.Get("/{order_id}", ordersHandler.GetOrder)
			r.Post("/{order_id}/status", ordersHandler.UpdateStatus)
			r.Post("/{order_id}/cancel", ordersHandler.CancelOrder)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped")
}
