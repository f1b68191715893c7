package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogFile       string        // path to the locations catalog yaml
	ReloadInterval    time.Duration // interval to reload the catalog (default: 1h)
	JanitorInterval   time.Duration // interval to trim oversized histories (default: 24h)
	HistoryMaxEntries int           // max edit entries kept per trip (default: 200)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	RateLimitBurst  int  // token bucket capacity per client
	RateLimitRefill int  // tokens restored per client per minute
	TrustProxy      bool // true => trust X-Forwarded-For headers

	AllowedOrigins []string // CORS origins (empty = allow all)
}

func Load() *Config {
	// Optional local .env, real env vars win.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("WAYFARE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("WAYFARE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("WAYFARE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("WAYFARE_PRETTY_LOG", true),

		// Catalog
		CatalogFile:       requireEnv("WAYFARE_CATALOG_FILE"),
		ReloadInterval:    mustDuration("WAYFARE_RELOAD_INTERVAL", time.Hour),
		JanitorInterval:   mustDuration("WAYFARE_JANITOR_INTERVAL", 24*time.Hour),
		HistoryMaxEntries: getenvInt("WAYFARE_HISTORY_MAX_ENTRIES", 200),

		// Redis settings
		RedisAddr:             requireEnv("WAYFARE_REDIS_ADDR"),
		RedisUser:             getenv("WAYFARE_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("WAYFARE_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("WAYFARE_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("WAYFARE_REDIS_DB", 0),
		RedisDT:               mustDuration("WAYFARE_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("WAYFARE_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("WAYFARE_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("WAYFARE_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("WAYFARE_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("WAYFARE_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("WAYFARE_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("WAYFARE_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("WAYFARE_REDIS_WARN_THRESHOLD", 3),

		// Request limits
		RateLimitBurst:  getenvInt("WAYFARE_RATE_LIMIT_BURST", 20),
		RateLimitRefill: getenvInt("WAYFARE_RATE_LIMIT_REFILL", 60),
		TrustProxy:      mustBool("WAYFARE_TRUST_PROXY", true),

		AllowedOrigins: splitAndTrim(getenv("WAYFARE_ALLOWED_ORIGINS", "")),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: WAYFARE_REDIS_PASSWORD is required when WAYFARE_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
