package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/invoice-lottery/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins restricts CORS, empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds operator authentication configuration for the manual lottery endpoint
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// EthereumConfig holds chain connectivity, contract addresses and signing keys
type EthereumConfig struct {
	RPCURL              string        `mapstructure:"rpc_url"`
	WebSocketURL        string        `mapstructure:"websocket_url"`
	ChainID             int64         `mapstructure:"chain_id"`
	StartBlock          uint64        `mapstructure:"start_block"`
	InvoiceTokenAddress string        `mapstructure:"invoice_token_address"`
	PoolAddress         string        `mapstructure:"pool_address"`
	RelayerPrivateKey   string        `mapstructure:"relayer_private_key"`
	OraclePrivateKey    string        `mapstructure:"oracle_private_key"`
	AdminPrivateKey     string        `mapstructure:"admin_private_key"`
	AdminAddress        string        `mapstructure:"admin_address"`
	ConfirmationTimeout time.Duration `mapstructure:"confirmation_timeout"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
	RPCRateLimit        float64       `mapstructure:"rpc_rate_limit"` // requests per second
	RPCBurst            int           `mapstructure:"rpc_burst"`
}

// LotteryConfig holds lottery processing and settlement configuration
type LotteryConfig struct {
	GovAPIURL             string        `mapstructure:"gov_api_url"`
	GovAPIKey             string        `mapstructure:"gov_api_key"`
	GovAPITimeout         time.Duration `mapstructure:"gov_api_timeout"`
	Schedule              string        `mapstructure:"schedule"`
	Timezone              string        `mapstructure:"timezone"`
	ClaimBatchSize        int           `mapstructure:"claim_batch_size"`
	ClaimBatchDelay       time.Duration `mapstructure:"claim_batch_delay"`
	HolderCacheTTL        time.Duration `mapstructure:"holder_cache_ttl"`
	HolderScanConcurrency int           `mapstructure:"holder_scan_concurrency"`
}

// MonitorConfig holds relayer balance monitoring and alerting configuration
type MonitorConfig struct {
	BalanceCheckSchedule string `mapstructure:"balance_check_schedule"`
	MinBalanceWei        string `mapstructure:"min_balance_wei"`
	AlertWebhookURL      string `mapstructure:"alert_webhook_url"`
	AlertWebhookSecret   string `mapstructure:"alert_webhook_secret"`
}

// DonationConfig holds the donation percent policy
type DonationConfig struct {
	MinPercent      int   `mapstructure:"min_percent"`
	MaxPercent      int   `mapstructure:"max_percent"`
	AllowedPercents []int `mapstructure:"allowed_percents"`
}

// Policy converts the configuration into a domain.DonationPolicy
func (c DonationConfig) Policy() domain.DonationPolicy {
	return domain.DonationPolicy{
		Min:     c.MinPercent,
		Max:     c.MaxPercent,
		Allowed: c.AllowedPercents,
	}
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// RelayerConfig holds configuration for the relayer service
type RelayerConfig struct {
	BaseConfig          `mapstructure:",squash"`
	Database            DatabaseConfig `mapstructure:"database"`
	Server              ServerConfig   `mapstructure:"server"`
	Auth                AuthConfig     `mapstructure:"auth"`
	Ethereum            EthereumConfig `mapstructure:"ethereum"`
	Lottery             LotteryConfig  `mapstructure:"lottery"`
	Monitor             MonitorConfig  `mapstructure:"monitor"`
	Donation            DonationConfig `mapstructure:"donation"`
	NATS                NATSConfig     `mapstructure:"nats"`
	EnableAPI           bool           `mapstructure:"enable_api"`
	EnableScheduler     bool           `mapstructure:"enable_scheduler"`
	EnableEventListener bool           `mapstructure:"enable_event_listener"`
}

// LoadRelayerConfig loads configuration for the relayer service
func LoadRelayerConfig(configFile string, envPath string) (*RelayerConfig, error) {
	v := configureViper("relayer", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("enable_api", true)
	v.SetDefault("enable_scheduler", true)
	v.SetDefault("enable_event_listener", true)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("ethereum.confirmation_timeout", 2*time.Minute)
	v.SetDefault("ethereum.receipt_poll_interval", 2*time.Second)
	v.SetDefault("ethereum.rpc_rate_limit", 20)
	v.SetDefault("ethereum.rpc_burst", 5)
	v.SetDefault("lottery.gov_api_timeout", 30*time.Second)
	v.SetDefault("lottery.schedule", "0 2 * * *")
	v.SetDefault("lottery.timezone", "Asia/Taipei")
	v.SetDefault("lottery.claim_batch_size", domain.DEFAULT_CLAIM_BATCH_SIZE)
	v.SetDefault("lottery.claim_batch_delay", time.Second)
	v.SetDefault("lottery.holder_cache_ttl", time.Hour)
	v.SetDefault("lottery.holder_scan_concurrency", 8)
	v.SetDefault("monitor.balance_check_schedule", "0 * * * *")
	v.SetDefault("monitor.min_balance_wei", "100000000000000000") // 0.1 native token
	v.SetDefault("donation.min_percent", 25)
	v.SetDefault("donation.max_percent", 100)
	v.SetDefault("nats.stream_name", "LOTTERY")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", 2*time.Second)
	v.SetDefault("nats.connection_name", "invoice-lottery-relayer")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var config RelayerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks settings the service cannot start without
func (c *RelayerConfig) Validate() error {
	if c.Ethereum.RPCURL == "" {
		return errors.New("ethereum.rpc_url is required")
	}
	if c.Ethereum.RelayerPrivateKey == "" {
		return errors.New("ethereum.relayer_private_key is required")
	}
	if c.Ethereum.InvoiceTokenAddress == "" || c.Ethereum.PoolAddress == "" {
		return errors.New("ethereum.invoice_token_address and ethereum.pool_address are required")
	}
	if c.EnableEventListener && c.Ethereum.WebSocketURL == "" {
		return errors.New("ethereum.websocket_url is required when the event listener is enabled")
	}
	if c.Lottery.ClaimBatchSize <= 0 {
		return fmt.Errorf("lottery.claim_batch_size must be positive, got %d", c.Lottery.ClaimBatchSize)
	}
	if len(c.Donation.AllowedPercents) == 0 && c.Donation.MinPercent > c.Donation.MaxPercent {
		return fmt.Errorf("donation.min_percent %d exceeds donation.max_percent %d", c.Donation.MinPercent, c.Donation.MaxPercent)
	}
	return nil
}

// configureViper creates a viper instance with env overlays, search paths and env bindings
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("INVOICE_LOTTERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"enable_api",
		"enable_scheduler",
		"enable_event_listener",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.allowed_origins",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.websocket_url",
		"ethereum.chain_id",
		"ethereum.start_block",
		"ethereum.invoice_token_address",
		"ethereum.pool_address",
		"ethereum.relayer_private_key",
		"ethereum.oracle_private_key",
		"ethereum.admin_private_key",
		"ethereum.admin_address",
		"ethereum.confirmation_timeout",
		"ethereum.receipt_poll_interval",
		"ethereum.rpc_rate_limit",
		"ethereum.rpc_burst",
		// Lottery
		"lottery.gov_api_url",
		"lottery.gov_api_key",
		"lottery.gov_api_timeout",
		"lottery.schedule",
		"lottery.timezone",
		"lottery.claim_batch_size",
		"lottery.claim_batch_delay",
		"lottery.holder_cache_ttl",
		"lottery.holder_scan_concurrency",
		// Monitor
		"monitor.balance_check_schedule",
		"monitor.min_balance_wei",
		"monitor.alert_webhook_url",
		"monitor.alert_webhook_secret",
		// Donation
		"donation.min_percent",
		"donation.max_percent",
		"donation.allowed_percents",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv overlays .env files from envPath, later files win
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
