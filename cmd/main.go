package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/sbilibin2017/quota-ledger/docs"
	"github.com/sbilibin2017/quota-ledger/internal/database"
	"github.com/sbilibin2017/quota-ledger/internal/handlers"
	"github.com/sbilibin2017/quota-ledger/internal/jwt"
	"github.com/sbilibin2017/quota-ledger/internal/logger"
	"github.com/sbilibin2017/quota-ledger/internal/middlewares"
	"github.com/sbilibin2017/quota-ledger/internal/repositories"
	"github.com/sbilibin2017/quota-ledger/internal/services"
	"github.com/sbilibin2017/quota-ledger/internal/transaction"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parseConfig reads from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	dbDriver       string
	dbMigrate      bool
	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int
	sqlitePath     string

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	redisCacheTTL     time.Duration

	kafkaBrokers []string
	kafkaTopic   string

	grpcPort string

	corsOrigins []string

	jwtSecretKey string
	jwtExp       time.Duration
}

// @title quota-ledger API
// @version 1.0.0
// @description Admin API for user, database and quota bookkeeping of a shared database hosting service
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, tokenSubject := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if tokenSubject != "" {
		token, err := issueToken(context.Background(), cfg, tokenSubject)
		if err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// the subject to issue an admin token for, if any.
func parseFlags() (configPath, tokenSubject string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	t := flag.String("issue-token", "", "Print an admin API token for the given subject and exit")
	flag.Parse()
	return *c, *t
}

// parseConfig loads environment variables from a file and returns the
// application, store, cache, messaging, gRPC and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getList := func(key, defaultValue string) []string {
		var list []string
		for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
		return list
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.corsOrigins = getList("APP_CORS_ORIGINS", "*")

	// Store config
	cfg.dbDriver = getEnv("DB_DRIVER", database.DriverPostgres)
	if cfg.dbMigrate, err = strconv.ParseBool(getEnv("DB_MIGRATE", "true")); err != nil {
		return
	}
	cfg.sqlitePath = getEnv("SQLITE_PATH", "quota-ledger.db")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config, the account cache is off without a host
	cfg.redisHost = getEnv("REDIS_HOST", "")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	var ttl int
	if ttl, err = strconv.Atoi(getEnv("REDIS_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	cfg.redisCacheTTL = time.Duration(ttl) * time.Second

	// Kafka config, events are not published without brokers
	cfg.kafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "quota-ledger.events")

	// gRPC config
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")

	// JWT config, the admin API is open without a secret
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "")
	var exp int
	if exp, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	cfg.jwtExp = time.Duration(exp) * time.Second

	return
}

// storeConfig translates cfg into the store connection settings.
func storeConfig(cfg config) database.Config {
	dbCfg := database.Config{
		Driver:       cfg.dbDriver,
		MaxOpenConns: cfg.pgMaxOpenConns,
		MaxIdleConns: cfg.pgMaxIdleConns,
		Migrate:      cfg.dbMigrate,
	}
	if cfg.dbDriver == database.DriverSQLite {
		dbCfg.DSN = cfg.sqlitePath
	} else {
		dbCfg.DSN = database.PostgresDSN(cfg.pgHost, cfg.pgPort, cfg.pgUser, cfg.pgPassword, cfg.pgDB)
	}
	return dbCfg
}

// issueToken signs an admin API token for subject.
func issueToken(ctx context.Context, cfg config, subject string) (string, error) {
	if cfg.jwtSecretKey == "" {
		return "", fmt.Errorf("JWT_SECRET_KEY is not set")
	}
	return jwt.New(jwt.WithSecretKey(cfg.jwtSecretKey), jwt.WithExpiration(cfg.jwtExp)).Generate(ctx, subject)
}

// newLedger wires repositories and the transaction manager over db.
func newLedger(db *sqlx.DB, cache services.AccountCache, kafkaWriter services.KafkaWriter) *services.LedgerService {
	repos := services.Repositories{
		UserReader:     repositories.NewUserReadRepository(db, transaction.FromContext),
		UserWriter:     repositories.NewUserWriteRepository(db, transaction.FromContext),
		UserQuotas:     repositories.NewUserQuotaRepository(db, transaction.FromContext),
		UserStats:      repositories.NewUserStatRepository(db, transaction.FromContext),
		DatabaseReader: repositories.NewDatabaseReadRepository(db, transaction.FromContext),
		DatabaseWriter: repositories.NewDatabaseWriteRepository(db, transaction.FromContext),
		DBQuotas:       repositories.NewDBQuotaRepository(db, transaction.FromContext),
		DBOwners:       repositories.NewDBOwnerRepository(db, transaction.FromContext),
	}
	return services.NewLedgerService(repos, transaction.NewManager(db), cache, kafkaWriter)
}

// newRouter mounts the admin API. tokener may be nil, in which case the API
// is served without authentication.
func newRouter(cfg config, ledger *services.LedgerService, metrics *middlewares.Metrics, tokener middlewares.Tokener) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		if tokener != nil {
			r.Use(middlewares.AuthMiddleware(tokener))
		}

		r.Route("/users", func(r chi.Router) {
			r.Post("/", handlers.NewCreateUserHandler(ledger))
			r.Get("/{ref}", handlers.NewGetUserHandler(ledger))
			r.Get("/{ref}/account", handlers.NewGetAccountHandler(ledger))
			r.Delete("/{id}", handlers.NewDeleteUserHandler(ledger))
			r.Put("/{id}/quota", handlers.NewSetUserQuotaHandler(ledger))
			r.Put("/{id}/stat", handlers.NewUpdateUserStatHandler(ledger))
			r.Put("/{id}/enabled", handlers.NewSetUserEnabledHandler(ledger))
		})

		r.Route("/databases", func(r chi.Router) {
			r.Post("/", handlers.NewCreateDatabaseHandler(ledger))
			r.Get("/{ref}", handlers.NewGetDatabaseHandler(ledger))
			r.Delete("/{id}", handlers.NewDeleteDatabaseHandler(ledger))
			r.Put("/{id}/owner", handlers.NewAssignOwnerHandler(ledger))
			r.Put("/{id}/quota", handlers.NewSetDatabaseQuotaHandler(ledger))
			r.Put("/{id}/usage", handlers.NewUpdateUsageHandler(ledger))
			r.Put("/{id}/enabled", handlers.NewSetDatabaseEnabledHandler(ledger))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	return r
}

// watchStore reports the store as NOT_SERVING on the health service while
// it cannot be pinged.
func watchStore(ctx context.Context, db *sqlx.DB, hs *health.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status := healthpb.HealthCheckResponse_SERVING
			if err := db.PingContext(ctx); err != nil {
				logger.Log.Warnw("store ping failed", "error", err)
				status = healthpb.HealthCheckResponse_NOT_SERVING
			}
			hs.SetServingStatus("", status)
		}
	}
}

// run initializes the logger, store, Redis, Kafka, gRPC health and HTTP servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Open the ledger store
	db, err := database.Open(ctx, storeConfig(cfg))
	if err != nil {
		return err
	}
	defer db.Close()

	// Connect to Redis
	var cache services.AccountCache
	if cfg.redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewAccountCacheRepository(rdb, cfg.redisCacheTTL)
	} else {
		log.Info("REDIS_HOST not set, account cache disabled")
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.kafkaBrokers...),
			Topic:        cfg.kafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		log.Info("KAFKA_BROKERS not set, ledger events disabled")
	}

	// Initialize services
	ledger := newLedger(db, cache, kafkaWriter)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewDBStatsCollector(db.DB, "ledger"))
	metrics := middlewares.NewMetrics(reg)

	// JWT guard
	var tokener middlewares.Tokener
	if cfg.jwtSecretKey != "" {
		tokener = jwt.New(jwt.WithSecretKey(cfg.jwtSecretKey), jwt.WithExpiration(cfg.jwtExp))
	} else {
		log.Warn("JWT_SECRET_KEY not set, admin API is unauthenticated")
	}

	// Setup router
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Mount("/", newRouter(cfg, ledger, metrics, tokener))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// gRPC health service
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.appHost, cfg.grpcPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go watchStore(ctxShutdown, db, healthSrv, 10*time.Second)

	go func() {
		log.Infof("gRPC health service listening on %s:%s", cfg.appHost, cfg.grpcPort)
		if err := grpcSrv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcSrv.Stop()
		return serveErr
	}

	healthSrv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcSrv.GracefulStop()

	log.Info("Servers stopped gracefully")
	return nil
}
