package config

import (
	"os"
	"strings"
	"time"
)

// Config captures process-level configuration so main stays lean.
type Config struct {
	Addr          string
	JWTSigningKey string
	// AdminToken guards the bootstrap account-provisioning routes.
	AdminToken string
	// PostgresDSN switches stores from in-memory to PostgreSQL when set.
	PostgresDSN string
	Redis       RedisConfig
	// KafkaBrokers enables the Kafka audit publisher when non-empty.
	KafkaBrokers []string
	AuditTopic   string
	// SeedDemoData loads the demo jurisdiction/account/area fixtures.
	SeedDemoData bool
	// SessionTTL bounds login token lifetime (and revocation retention).
	SessionTTL time.Duration
}

// RedisConfig configures the optional Redis client (session revocation and
// the daily check-in throttle).
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	addr := os.Getenv("TADIPAAR_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		// Development default - must be overridden in production.
		signingKey = "dev-secret-key-change-in-production"
	}

	topic := os.Getenv("AUDIT_TOPIC")
	if topic == "" {
		topic = "tadipaar.audit"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return Config{
		Addr:          addr,
		JWTSigningKey: signingKey,
		AdminToken:    os.Getenv("ADMIN_TOKEN"),
		PostgresDSN:   os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		KafkaBrokers: brokers,
		AuditTopic:   topic,
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
		SessionTTL:   12 * time.Hour,
	}
}
