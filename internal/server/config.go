package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Port       int
	Env        string
	NumWorkers int
	LogLevel   string
	Storage    string
	Seed       bool
	JWTKey     string
	TokenTTL   time.Duration
	LoginDelay time.Duration
	SQLitePath string
	DB         struct {
		Host         string
		Port         int
		Name         string
		User         string
		Password     string
		MaxOpenConns int
		MaxIdleConns int
		MaxIdleTime  string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
}

// String renders the config for logs with secrets masked.
func (c Config) String() string {
	return fmt.Sprintf("env=%s port=%d storage=%s workers=%d log=%s seed=%t token_ttl=%s login_delay=%s sqlite=%s db=%s@%s:%d/%s redis=%s/%d jwt_key=%s",
		c.Env, c.Port, c.Storage, c.NumWorkers, c.LogLevel, c.Seed, c.TokenTTL, c.LoginDelay,
		c.SQLitePath, c.DB.User, c.DB.Host, c.DB.Port, c.DB.Name, c.Redis.Addr, c.Redis.DB, mask(c.JWTKey))
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}

// LoadConfig reads .env (if present) and the process environment. Values
// that are missing fall back to development defaults; values that are present
// but malformed are an error.
func LoadConfig() (Config, error) {
	godotenv.Load(".env")

	var cfg Config
	e := envReader{}

	cfg.Port = e.getInt("PORT", 8080)
	cfg.Env = e.getString("ENV", "development")
	cfg.NumWorkers = e.getInt("WORKERS", 50)
	cfg.LogLevel = e.getString("LOG_LEVEL", "info")
	cfg.Storage = e.getString("STORAGE", StorageMemory)
	cfg.Seed = e.getBool("SEED", true)
	cfg.JWTKey = os.Getenv("JWT_KEY")
	cfg.TokenTTL = e.getDuration("TOKEN_TTL", time.Hour)
	cfg.LoginDelay = e.getDuration("LOGIN_DELAY", time.Second)
	cfg.SQLitePath = e.getString("SQLITE_PATH", "masar.db")

	cfg.DB.Host = e.getString("DATABASE_HOST", "localhost")
	cfg.DB.Port = e.getInt("DATABASE_PORT", 5432)
	cfg.DB.Name = e.getString("DATABASE_NAME", "masar")
	cfg.DB.User = e.getString("DATABASE_USER", "masar")
	cfg.DB.Password = os.Getenv("DATABASE_PASSWORD")
	cfg.DB.MaxOpenConns = e.getInt("DATABASE_MAX_OPEN_CONNS", 25)
	cfg.DB.MaxIdleConns = e.getInt("DATABASE_MAX_IDLE_CONNS", 25)
	cfg.DB.MaxIdleTime = e.getString("DATABASE_MAX_IDLE_TIME", "15m")

	cfg.Redis.Addr = e.getString("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB = e.getInt("REDIS_DB", 0)

	return cfg, e.err
}

// envReader keeps the first parse error so LoadConfig can read every key
// before reporting.
type envReader struct {
	err error
}

func (e *envReader) getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (e *envReader) getInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return n
}

func (e *envReader) getBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return b
}

func (e *envReader) getDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return d
}

func (e *envReader) fail(key string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("failed to parse %s: %v", key, err)
	}
}
