package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Cassandra CassandraConfig
	Guests    GuestDBConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Status    StatusConfig
}

type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// MongoConfig points at the room store.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// CassandraConfig points at the status store.
type CassandraConfig struct {
	Hosts       []string
	Keyspace    string
	LocalDC     string
	Table       string
	Consistency string
	Timeout     time.Duration
}

// GuestDBConfig points at the relational guest store. An empty DSN disables
// the guest routes entirely.
type GuestDBConfig struct {
	Driver string
	DSN    string
}

func (g GuestDBConfig) Enabled() bool {
	return g.DSN != ""
}

type JWTConfig struct {
	AccessSecret      string
	AccessTokenExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type StatusConfig struct {
	Location            *time.Location
	LookupConcurrency   int
	LookupTimeout       time.Duration
	HealthCheckInterval time.Duration
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			GinMode:         getEnv("GIN_MODE", "debug"),
			ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "15s"), 15*time.Second),
		},
		Mongo: MongoConfig{
			URI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   getEnv("MONGO_DATABASE", "hotel"),
			Collection: getEnv("MONGO_COLLECTION", "quartos"),
			Timeout:    parseDuration(getEnv("MONGO_TIMEOUT", "10s"), 10*time.Second),
		},
		Cassandra: CassandraConfig{
			Hosts:       parseList(getEnv("CASSANDRA_HOSTS", "127.0.0.1")),
			Keyspace:    getEnv("CASSANDRA_KEYSPACE", "hotel_status"),
			LocalDC:     getEnv("CASSANDRA_LOCAL_DC", "datacenter1"),
			Table:       getEnv("CASSANDRA_TABLE", "quartos_status"),
			Consistency: getEnv("CASSANDRA_CONSISTENCY", "LOCAL_ONE"),
			Timeout:     parseDuration(getEnv("CASSANDRA_TIMEOUT", "5s"), 5*time.Second),
		},
		Guests: GuestDBConfig{
			Driver: strings.ToLower(getEnv("GUEST_DB_DRIVER", "postgres")),
			DSN:    getEnv("GUEST_DB_DSN", ""),
		},
		JWT: JWTConfig{
			AccessSecret:      getEnv("JWT_ACCESS_SECRET", "your-access-secret-key"),
			AccessTokenExpiry: parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "2h"), 2*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseList(getEnv("ALLOWED_ORIGINS", "*")),
		},
		Status: StatusConfig{
			Location:            parseLocation(getEnv("STATUS_TIMEZONE", "Local")),
			LookupConcurrency:   parseInt(getEnv("STATUS_LOOKUP_CONCURRENCY", "16"), 16),
			LookupTimeout:       parseDuration(getEnv("STATUS_LOOKUP_TIMEOUT", "0"), 0),
			HealthCheckInterval: parseDuration(getEnv("HEALTH_CHECK_INTERVAL", "30s"), 30*time.Second),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "0" {
		return 0
	}
	duration, err := time.ParseDuration(s)
	if err != nil {
		fmt.Printf("Warning: Invalid duration format '%s', using %s\n", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		fmt.Printf("Warning: Invalid integer '%s', using %d\n", s, fallback)
		return fallback
	}
	return n
}

func parseLocation(name string) *time.Location {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		fmt.Printf("Warning: Unknown timezone '%s', using Local\n", name)
		return time.Local
	}
	return loc
}

func parseList(s string) []string {
	items := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
