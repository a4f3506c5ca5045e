package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-comparator/internal/facades"
	"github.com/sbilibin2017/gw-currency-comparator/internal/handlers"
	"github.com/sbilibin2017/gw-currency-comparator/internal/logger"
	"github.com/sbilibin2017/gw-currency-comparator/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-comparator/internal/repositories"
	"github.com/sbilibin2017/gw-currency-comparator/internal/services"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Rate providers selectable with RATES_PROVIDER.
const (
	providerHTTP = "http"
	providerGRPC = "grpc"
)

// @title gw-currency-comparator API
// @version 1.0.0
// @description Microservice for side-by-side currency comparisons backed by a live rate table
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		ratesProvider, ratesAPIURL, ratesTimeoutSecond,
		gwHost, gwPort,
		redisEnabled, redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		ratesProvider, ratesAPIURL, ratesTimeoutSecond,
		gwHost, gwPort,
		redisEnabled, redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExpSecond,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\n", buildVersion)
	fmt.Printf("Commit: %s\n", buildCommit)
	fmt.Printf("Build: %s\n", buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, rate provider, Redis, Kafka, and logging configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	ratesProvider, ratesAPIURL string, ratesTimeoutSecond int,
	gwHost, gwPort string,
	redisEnabled bool, redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Rate provider config
	ratesProvider = strings.ToLower(getEnv("RATES_PROVIDER", providerHTTP))
	if ratesProvider != providerHTTP && ratesProvider != providerGRPC {
		err = fmt.Errorf("unknown RATES_PROVIDER %q", ratesProvider)
		return
	}
	ratesAPIURL = getEnv("RATES_API_URL", facades.DefaultRatesAPIURL)
	if ratesTimeoutSecond, err = strconv.Atoi(getEnv("RATES_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// gRPC config
	gwHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	gwPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// Redis config
	if redisEnabled, err = strconv.ParseBool(getEnv("REDIS_ENABLED", "false")); err != nil {
		return
	}
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "comparison-events")

	return
}

// run initializes the logger, rate provider, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	ratesProvider, ratesAPIURL string, ratesTimeoutSecond int,
	gwHost, gwPort string,
	redisEnabled bool, redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Rate provider
	var fetcher services.RatesFetcher
	switch ratesProvider {
	case providerGRPC:
		grpcAddr := fmt.Sprintf("%s:%s", gwHost, gwPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			logger.Log.Errorw("Failed to connect to gRPC service", "addr", grpcAddr, "error", err)
			return err
		}
		defer conn.Close()
		fetcher = facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
		logger.Log.Infof("Using gRPC rate provider at %s", grpcAddr)
	default:
		client := &http.Client{Timeout: time.Duration(ratesTimeoutSecond) * time.Second}
		fetcher = facades.NewExchangeRatesHTTPFacade(client, ratesAPIURL)
		logger.Log.Infof("Using HTTP rate provider at %s", ratesAPIURL)
	}

	// Connect to Redis
	var (
		snapshotWriter services.RateSnapshotWriter
		snapshotRepo   *repositories.RateSnapshotCacheRepository
	)
	if redisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()

		snapshotRepo = repositories.NewRateSnapshotCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
		snapshotWriter = snapshotRepo
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:         kafka.TCP(kafkaBrokers...),
			Topic:        kafkaTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			MaxAttempts:  3,
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: 10 * time.Second,
			Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
				logger.Log.Debugf(msg, args...)
			}),
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
				logger.Log.Errorf(msg, args...)
			}),
		}
		defer writer.Close()
		kafkaWriter = writer
		logger.Log.Infow("Kafka publishing enabled", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	// Initialize repositories
	comparisonRepo := repositories.NewComparisonMemoryRepository()
	rateTableRepo := repositories.NewRateTableMemoryRepository()

	// Initialize services
	comparisonService := services.NewComparisonService(comparisonRepo, rateTableRepo, fetcher, snapshotWriter, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterComparisonRoutes(r,
			handlers.NewListComparisonsHandler(comparisonService),
			handlers.NewAddComparisonHandler(comparisonService),
			handlers.NewUpdateAmountHandler(comparisonService),
			handlers.NewRefreshComparisonHandler(comparisonService),
			handlers.NewCloseComparisonHandler(comparisonService),
		)
		handlers.RegisterGetRatesHandler(r,
			handlers.NewGetRatesHandler(comparisonService),
			handlers.NewGetCurrenciesHandler(comparisonService),
		)
		if snapshotRepo != nil {
			handlers.RegisterGetRateSnapshotHandler(r, handlers.NewGetRateSnapshotHandler(snapshotRepo))
		}
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Initial rate load; comparisons show "Loading..." until it completes.
	go func() {
		_ = comparisonService.LoadRates(ctxShutdown)
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
