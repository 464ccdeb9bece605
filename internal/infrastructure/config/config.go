// Package config loads application configuration from config.toml and
// SHOP_-prefixed environment variables, env taking precedence.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration tree.
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	Event     EventConfig
	HTTP      HTTPConfig
	HiBob     HiBobConfig
	Sync      SyncConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // minutes
	ConnMaxIdleTime int // minutes
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// EventConfig tunes the outbox processor.
type EventConfig struct {
	ProcessorEnabled bool
	BatchSize        int
	PollInterval     time.Duration
	MaxRetries       int
	CleanupEnabled   bool
	CleanupRetention time.Duration
}

type HTTPConfig struct {
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	MaxBodySize       int64
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
	CORSAllowOrigins  []string
	CORSAllowMethods  []string
	CORSAllowHeaders  []string
	TrustedProxies    []string
}

// HiBobConfig carries the service-user credentials for the HiBob API.
type HiBobConfig struct {
	BaseURL          string
	ServiceUserID    string
	ServiceUserToken string
	TimeoutSeconds   int
}

// SyncConfig tunes the background reconciliation loops.
type SyncConfig struct {
	Enabled          bool
	PurchaseInterval time.Duration // how often external purchases are pulled
	InterPushDelay   time.Duration // pause between consecutive HiBob pushes
	SettingsTTL      time.Duration // settings cache freshness window
}

type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string  // OTLP gRPC endpoint, e.g. "localhost:4317"
	SamplingRatio     float64 // 0.0 to 1.0
	ServiceName       string
	Insecure          bool // plain-text OTLP, development only
	DBTraceEnabled    bool
	DBLogFullSQL      bool // full SQL in span attributes, never in production
	DBSlowQueryThresh time.Duration
}

// Load reads config.toml (from . or /app) if present, overlays
// SHOP_-prefixed environment variables, fills defaults and validates.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env vars carry it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App:       loadApp(v),
		Database:  loadDatabase(v),
		Redis:     loadRedis(v),
		Log:       loadLog(v),
		Event:     loadEvent(v),
		HTTP:      loadHTTP(v),
		HiBob:     loadHiBob(v),
		Sync:      loadSync(v),
		Telemetry: loadTelemetry(v),
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadApp(v *viper.Viper) AppConfig {
	return AppConfig{
		Name: v.GetString("app.name"),
		Env:  v.GetString("app.env"),
		Port: v.GetString("app.port"),
	}
}

func loadDatabase(v *viper.Viper) DatabaseConfig {
	return DatabaseConfig{
		Host:            v.GetString("database.host"),
		Port:            v.GetInt("database.port"),
		User:            v.GetString("database.user"),
		Password:        v.GetString("database.password"),
		DBName:          v.GetString("database.dbname"),
		SSLMode:         v.GetString("database.sslmode"),
		MaxOpenConns:    v.GetInt("database.max_open_conns"),
		MaxIdleConns:    v.GetInt("database.max_idle_conns"),
		ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
		ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
	}
}

func loadRedis(v *viper.Viper) RedisConfig {
	return RedisConfig{
		Host:     v.GetString("redis.host"),
		Port:     v.GetInt("redis.port"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
}

func loadLog(v *viper.Viper) LogConfig {
	return LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
		Output: v.GetString("log.output"),
	}
}

func loadEvent(v *viper.Viper) EventConfig {
	return EventConfig{
		ProcessorEnabled: v.GetBool("event.processor_enabled"),
		BatchSize:        v.GetInt("event.batch_size"),
		PollInterval:     v.GetDuration("event.poll_interval"),
		MaxRetries:       v.GetInt("event.max_retries"),
		CleanupEnabled:   v.GetBool("event.cleanup_enabled"),
		CleanupRetention: v.GetDuration("event.cleanup_retention"),
	}
}

func loadHTTP(v *viper.Viper) HTTPConfig {
	return HTTPConfig{
		ReadTimeout:       v.GetDuration("http.read_timeout"),
		WriteTimeout:      v.GetDuration("http.write_timeout"),
		IdleTimeout:       v.GetDuration("http.idle_timeout"),
		MaxHeaderBytes:    v.GetInt("http.max_header_bytes"),
		MaxBodySize:       v.GetInt64("http.max_body_size"),
		RateLimitEnabled:  v.GetBool("http.rate_limit_enabled"),
		RateLimitRequests: v.GetInt("http.rate_limit_requests"),
		RateLimitWindow:   v.GetDuration("http.rate_limit_window"),
		CORSAllowOrigins:  v.GetStringSlice("http.cors_allow_origins"),
		CORSAllowMethods:  v.GetStringSlice("http.cors_allow_methods"),
		CORSAllowHeaders:  v.GetStringSlice("http.cors_allow_headers"),
		TrustedProxies:    v.GetStringSlice("http.trusted_proxies"),
	}
}

func loadHiBob(v *viper.Viper) HiBobConfig {
	return HiBobConfig{
		BaseURL:          v.GetString("hibob.base_url"),
		ServiceUserID:    v.GetString("hibob.service_user_id"),
		ServiceUserToken: v.GetString("hibob.service_user_token"),
		TimeoutSeconds:   v.GetInt("hibob.timeout_seconds"),
	}
}

func loadSync(v *viper.Viper) SyncConfig {
	return SyncConfig{
		Enabled:          v.GetBool("sync.enabled"),
		PurchaseInterval: v.GetDuration("sync.purchase_interval"),
		InterPushDelay:   v.GetDuration("sync.inter_push_delay"),
		SettingsTTL:      v.GetDuration("sync.settings_ttl"),
	}
}

func loadTelemetry(v *viper.Viper) TelemetryConfig {
	return TelemetryConfig{
		Enabled:           v.GetBool("telemetry.enabled"),
		CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
		SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
		ServiceName:       v.GetString("telemetry.service_name"),
		Insecure:          v.GetBool("telemetry.insecure"),
		DBTraceEnabled:    v.GetBool("telemetry.db_trace_enabled"),
		DBLogFullSQL:      v.GetBool("telemetry.db_log_full_sql"),
		DBSlowQueryThresh: v.GetDuration("telemetry.db_slow_query_threshold"),
	}
}

func orStr(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}

func orInt(dst *int, fallback int) {
	if *dst == 0 {
		*dst = fallback
	}
}

func orDur(dst *time.Duration, fallback time.Duration) {
	if *dst == 0 {
		*dst = fallback
	}
}

// applyDefaults fills any zero-valued field with its built-in default.
// A zero value from the environment is indistinguishable from "unset"
// and is treated as unset.
func (c *Config) applyDefaults() {
	orStr(&c.App.Name, "homeoffice-shop")
	orStr(&c.App.Env, "development")
	orStr(&c.App.Port, "8080")

	orStr(&c.Database.Host, "localhost")
	orInt(&c.Database.Port, 5432)
	orStr(&c.Database.User, "postgres")
	orStr(&c.Database.DBName, "homeoffice_shop")
	orStr(&c.Database.SSLMode, "disable")
	orInt(&c.Database.MaxOpenConns, 25)
	orInt(&c.Database.MaxIdleConns, 5)
	orInt(&c.Database.ConnMaxLifetime, 60)
	orInt(&c.Database.ConnMaxIdleTime, 30)

	orStr(&c.Redis.Host, "localhost")
	orInt(&c.Redis.Port, 6379)

	orStr(&c.Log.Level, "info")
	orStr(&c.Log.Format, "console")
	orStr(&c.Log.Output, "stdout")

	orInt(&c.Event.BatchSize, 100)
	orDur(&c.Event.PollInterval, 5*time.Second)
	orInt(&c.Event.MaxRetries, 5)
	orDur(&c.Event.CleanupRetention, 168*time.Hour)

	orDur(&c.HTTP.ReadTimeout, 15*time.Second)
	orDur(&c.HTTP.WriteTimeout, 15*time.Second)
	orDur(&c.HTTP.IdleTimeout, 60*time.Second)
	orInt(&c.HTTP.MaxHeaderBytes, 1<<20)
	if c.HTTP.MaxBodySize == 0 {
		c.HTTP.MaxBodySize = 10 << 20
	}
	orInt(&c.HTTP.RateLimitRequests, 100)
	orDur(&c.HTTP.RateLimitWindow, time.Minute)
	// CORS origins get no fallback. An empty list blocks all
	// cross-origin requests until origins are configured explicitly.
	if len(c.HTTP.CORSAllowMethods) == 0 {
		c.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(c.HTTP.CORSAllowHeaders) == 0 {
		c.HTTP.CORSAllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}

	orStr(&c.HiBob.BaseURL, "https://api.hibob.com/v1")
	orInt(&c.HiBob.TimeoutSeconds, 30)

	orDur(&c.Sync.PurchaseInterval, time.Hour)
	orDur(&c.Sync.InterPushDelay, 500*time.Millisecond)
	orDur(&c.Sync.SettingsTTL, 30*time.Second)

	orStr(&c.Telemetry.CollectorEndpoint, "localhost:4317")
	if c.Telemetry.SamplingRatio == 0 {
		c.Telemetry.SamplingRatio = 1.0
	}
	orStr(&c.Telemetry.ServiceName, "homeoffice-shop")
	orDur(&c.Telemetry.DBSlowQueryThresh, 200*time.Millisecond)
	// Insecure, DBTraceEnabled and DBLogFullSQL stay false unless
	// switched on explicitly.
}

func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.App.Env == "production" {
		if err := c.validateProduction(); err != nil {
			return err
		}
	}

	if c.Sync.PurchaseInterval < time.Minute {
		return fmt.Errorf("sync.purchase_interval must be at least one minute, got %s", c.Sync.PurchaseInterval)
	}
	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}
	return nil
}

func (c *Config) validateProduction() error {
	if c.Database.Password == "" {
		return fmt.Errorf("database.password is required in production")
	}
	if c.Database.SSLMode == "disable" {
		return fmt.Errorf("database.sslmode cannot be 'disable' in production")
	}
	if c.HiBob.ServiceUserID == "" || c.HiBob.ServiceUserToken == "" {
		return fmt.Errorf("hibob.service_user_id and hibob.service_user_token are required in production")
	}
	for _, origin := range c.HTTP.CORSAllowOrigins {
		if origin == "*" {
			return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
		}
	}
	if c.Telemetry.DBLogFullSQL {
		return fmt.Errorf("telemetry.db_log_full_sql must be false in production to prevent sensitive data exposure in traces")
	}
	return nil
}

// DSN builds a postgres connection URL with escaped credentials.
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
