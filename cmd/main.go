package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/gw-token-withdrawal/docs"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/config"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/facades"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/handlers"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/jwt"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/logger"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/middlewares"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/repositories"
	"github.com/sbilibin2017/gw-token-withdrawal/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// shutdownTimeout bounds how long in-flight monitors and deliveries are awaited on exit.
const shutdownTimeout = 30 * time.Second

// @title gw-token-withdrawal API
// @version 1.0.0
// @description Service that submits SPL token withdrawals and reconciles their on-chain outcome
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, tokenClient := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if tokenClient != "" {
		token, err := issueToken(cfg, tokenClient)
		if err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// the client name to issue an API token for, if any.
func parseFlags() (string, string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	token := flag.String("token", "", "Print an API token for the named client and exit")
	flag.Parse()
	return *c, *token
}

// issueToken signs an API token for client with the configured secret.
func issueToken(cfg *config.Config, client string) (string, error) {
	return jwt.New(cfg.JWTSecretKey, cfg.JWTExp).Generate(context.Background(), client)
}

// withdrawalAPI is everything the HTTP routes need from the withdrawal service.
type withdrawalAPI interface {
	handlers.WithdrawalSubmitter
	handlers.StatusReader
	handlers.PendingRechecker
}

// newRouter builds the HTTP routes. /health and /swagger are public.
func newRouter(cfg *config.Config, log *zap.SugaredLogger, tokener middlewares.Tokener, svc withdrawalAPI) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.RecoverMiddleware(log))

	handlers.RegisterHealthHandler(r, handlers.NewHealthHandler())

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener, log))
		handlers.RegisterWithdrawHandler(r, handlers.NewWithdrawHandler(svc, log))
		handlers.RegisterStatusHandler(r, handlers.NewStatusHandler(svc, log))
		handlers.RegisterRecheckHandler(r, handlers.NewRecheckHandler(svc, log))
	})

	return r
}

// run initializes the logger, database, Redis, Kafka, the ledger client and
// the HTTP and gRPC servers. It starts the sweeper and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	var locker services.RequestLocker
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnw("Redis unavailable, request locks disabled", "error", err)
	} else {
		locker = repositories.NewRequestLockRepository(rdb, cfg.RedisLockTTL, log)
	}

	// Outcome events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Ledger client
	sender, err := solana.PrivateKeyFromBase58(cfg.SenderPrivateKey)
	if err != nil {
		return fmt.Errorf("invalid SOLANA_PRIVATE_KEY: %w", err)
	}
	mint, err := solana.PublicKeyFromBase58(cfg.TokenAddress)
	if err != nil {
		return fmt.Errorf("invalid TOKEN_ADDRESS: %w", err)
	}
	rpcClient := rpc.New(cfg.RPCURL())
	defer rpcClient.Close()
	log.Infow("Ledger client ready", "sender", sender.PublicKey().String(), "token", mint.String())

	ledger := facades.NewLedgerRPCFacade(rpcClient, sender, mint, facades.LedgerOptions{
		QueryRetries:    cfg.LedgerQueryRetries,
		QueryRetryDelay: cfg.LedgerQueryRetryDelay,
		SampleCount:     cfg.NetworkSampleCount,
	}, log)
	webhook := facades.NewWebhookHTTPFacade(&http.Client{Timeout: cfg.CallbackTimeout}, cfg.CallbackURL, log)

	// Initialize repositories and services
	store := repositories.NewWithdrawalRepository(db, log)

	notifier := services.NewNotifier(webhook, kafkaWriter, services.NotifierConfig{
		CallbackURL:    cfg.CallbackURL,
		CallbackSecret: cfg.CallbackSecret,
		MaxAttempts:    cfg.NotifyMaxAttempts,
		InitialDelay:   cfg.NotifyInitialDelay,
		RequestTimeout: cfg.CallbackTimeout,
	}, log)
	monitor := services.NewMonitor(ledger, store, notifier, services.MonitorConfig{
		Delay:       cfg.MonitorDelay,
		MaxAttempts: cfg.MonitorMaxAttempts,
	}, log)
	sweeper := services.NewSweeper(ledger, store, notifier, services.SweeperConfig{
		StaleAfter:  cfg.SweepStaleAfter,
		Concurrency: cfg.SweepConcurrency,
	}, log)

	admission := services.NewAdmissionController(store, ledger, log)
	preflight := services.NewPreflightChecker(ledger, store, services.NewAmountConverter(ledger), services.PreflightConfig{
		MinSOLReserve:      cfg.MinSOLReserveLamports,
		CongestionCheck:    cfg.CongestionCheckEnabled,
		TPSCeiling:         cfg.CongestionTPSCeiling,
		FailureRateCeiling: cfg.CongestionFailureRate,
	}, log)
	submission := services.NewSubmissionCoordinator(ledger, store, monitor, cfg.ExpiredRecheckDelay, log)
	withdrawals := services.NewWithdrawalService(admission, preflight, submission, sweeper, store, locker,
		cfg.TokenAddress, cfg.SweepStaleAfter, log)

	tokener := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, log, tokener, withdrawals),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC health probe
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	grpcListener, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("gRPC health server listening on %s:%s", cfg.AppHost, cfg.GRPCPort)
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		sweeper.Run(ctxShutdown, cfg.SweepInterval)
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		stop()
	}

	healthServer.Shutdown()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	<-sweepDone

	if !waitAll(shutdownTimeout, withdrawals.Wait, monitor.Wait, notifier.Wait) {
		log.Warnw("background work still running at exit, the sweeper will reconcile it",
			"monitors_in_flight", monitor.InFlight())
	}

	log.Info("Servers stopped gracefully")
	return serveErr
}

// waitAll runs the wait functions in order and reports whether they all
// returned within timeout.
func waitAll(timeout time.Duration, waits ...func()) bool {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, wait := range waits {
			wait()
		}
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
