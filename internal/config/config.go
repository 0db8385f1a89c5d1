package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every recognized option of the withdrawal service.
type Config struct {
	// Application
	AppHost  string
	AppPort  string
	GRPCPort string
	LogLevel string

	// PostgreSQL
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Redis
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisLockTTL      time.Duration

	// Kafka
	KafkaBrokers []string
	KafkaTopic   string

	// API authentication
	JWTSecretKey string
	JWTExp       time.Duration

	// Ledger
	SolanaRPCURL           string
	SolanaViewAPIKey       string
	SenderPrivateKey       string
	TokenAddress           string
	MinSOLReserveLamports  uint64
	LedgerQueryRetries     int
	LedgerQueryRetryDelay  time.Duration
	CongestionCheckEnabled bool
	CongestionTPSCeiling   float64
	CongestionFailureRate  float64
	NetworkSampleCount     int

	// Notifications
	CallbackURL        string
	CallbackSecret     string
	CallbackTimeout    time.Duration
	NotifyMaxAttempts  int
	NotifyInitialDelay time.Duration

	// Tracking
	MonitorDelay        time.Duration
	MonitorMaxAttempts  int
	ExpiredRecheckDelay time.Duration
	SweepStaleAfter     time.Duration
	SweepInterval       time.Duration
	SweepConcurrency    int
}

// Load reads environment variables (optionally from a .env file) and returns the configuration.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var (
		cfg Config
		err error
	)

	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	getFloat := func(key, defaultValue string) float64 {
		if err != nil {
			return 0
		}
		var v float64
		if v, err = strconv.ParseFloat(getEnv(key, defaultValue), 64); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	getBool := func(key, defaultValue string) bool {
		if err != nil {
			return false
		}
		var v bool
		if v, err = strconv.ParseBool(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}
	getDuration := func(key, defaultValue string, unit time.Duration) time.Duration {
		return time.Duration(getInt(key, defaultValue)) * unit
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "0.0.0.0")
	cfg.AppPort = getEnv("APP_PORT", "3000")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "withdrawals")
	cfg.PGPort = getInt("POSTGRES_PORT", "5432")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")
	cfg.RedisLockTTL = getDuration("REDIS_LOCK_TTL_SECOND", "120", time.Second)

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "withdrawal-outcomes")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "your_api_key_here")
	cfg.JWTExp = getDuration("JWT_EXP_SECOND", "31536000", time.Second)

	// Ledger config
	cfg.SolanaRPCURL = getEnv("SOLANA_RPC_URL", "https://api.mainnet-beta.solana.com")
	cfg.SolanaViewAPIKey = getEnv("SOLANAVIEW_API_KEY", "")
	cfg.SenderPrivateKey = getEnv("SOLANA_PRIVATE_KEY", "")
	cfg.TokenAddress = getEnv("TOKEN_ADDRESS", "8rbpFAM5BftdA3gouobPDih4ZxVXtTzHh7F88yARRGSZ")
	cfg.MinSOLReserveLamports = uint64(getInt("MIN_SOL_RESERVE_LAMPORTS", "5000000"))
	cfg.LedgerQueryRetries = getInt("LEDGER_QUERY_RETRIES", "3")
	cfg.LedgerQueryRetryDelay = getDuration("LEDGER_QUERY_RETRY_DELAY_MS", "1000", time.Millisecond)
	cfg.CongestionCheckEnabled = getBool("ENABLE_NETWORK_CONGESTION_CHECK", "false")
	cfg.CongestionTPSCeiling = getFloat("NETWORK_CONGESTION_TPS_THRESHOLD", "1500")
	cfg.CongestionFailureRate = getFloat("NETWORK_CONGESTION_FAILURE_RATE_THRESHOLD", "0.15")
	cfg.NetworkSampleCount = getInt("NETWORK_SAMPLE_COUNT", "10")

	// Notification config
	cfg.CallbackURL = getEnv("WORDPRESS_CALLBACK_URL", "")
	cfg.CallbackSecret = getEnv("CALLBACK_SECRET", cfg.JWTSecretKey)
	cfg.CallbackTimeout = getDuration("CALLBACK_TIMEOUT_SECOND", "10", time.Second)
	cfg.NotifyMaxAttempts = getInt("NOTIFY_MAX_ATTEMPTS", "5")
	cfg.NotifyInitialDelay = getDuration("NOTIFY_INITIAL_DELAY_MS", "1000", time.Millisecond)

	// Tracking config
	cfg.MonitorDelay = getDuration("MONITOR_DELAY_SECOND", "15", time.Second)
	cfg.MonitorMaxAttempts = getInt("MONITOR_MAX_ATTEMPTS", "5")
	cfg.ExpiredRecheckDelay = getDuration("EXPIRED_RECHECK_DELAY_SECOND", "5", time.Second)
	cfg.SweepStaleAfter = getDuration("SWEEP_STALE_MINUTES", "30", time.Minute)
	cfg.SweepInterval = getDuration("SWEEP_INTERVAL_SECOND", "300", time.Second)
	cfg.SweepConcurrency = getInt("SWEEP_CONCURRENCY", "8")

	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the options required to start the service.
func (c *Config) Validate() error {
	var errs []error

	if c.JWTSecretKey == "" || c.JWTSecretKey == "your_api_key_here" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is not configured"))
	}
	if c.SenderPrivateKey == "" {
		errs = append(errs, errors.New("SOLANA_PRIVATE_KEY is not configured"))
	}
	if strings.Contains(c.SolanaRPCURL, "solanaview.com") && c.SolanaViewAPIKey == "" {
		errs = append(errs, errors.New("SOLANAVIEW_API_KEY is required when using solanaview.com"))
	}
	if c.MonitorMaxAttempts < 1 {
		errs = append(errs, errors.New("MONITOR_MAX_ATTEMPTS must be positive"))
	}
	if c.NotifyMaxAttempts < 1 {
		errs = append(errs, errors.New("NOTIFY_MAX_ATTEMPTS must be positive"))
	}

	return errors.Join(errs...)
}

// RPCURL returns the ledger RPC endpoint with the API key appended when configured.
func (c *Config) RPCURL() string {
	if c.SolanaViewAPIKey == "" {
		return c.SolanaRPCURL
	}

	u, err := url.Parse(c.SolanaRPCURL)
	if err != nil || u.Scheme == "" {
		return c.SolanaRPCURL + "?apiKey=" + c.SolanaViewAPIKey
	}
	q := u.Query()
	q.Set("apiKey", c.SolanaViewAPIKey)
	u.RawQuery = q.Encode()
	return u.String()
}

// PostgresDSN returns the connection string for the pgx driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}
