package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/wisp167/masar/internal/data"
)

const Version = "1.0.0"

type Application struct {
	config  Config
	logger  *zap.SugaredLogger
	kv      data.KV
	storage io.Closer
	models  data.Models
	queue   chan struct{}
	jwtkey  []byte
	server  *http.Server
}

// SetupApplication opens the configured storage, seeds it if asked to and
// returns an application ready to Serve.
func SetupApplication(ctx context.Context, cfg Config, logger *zap.SugaredLogger) (*Application, error) {
	if cfg.JWTKey == "" {
		return nil, errors.New("JWT_KEY environment variable is required")
	}
	logger.Infow("config", "config", cfg.String())

	kv, closer, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %v", cfg.Storage, err)
	}
	logger.Infow("storage ready", "backend", cfg.Storage)

	app := NewApplication(cfg, logger, kv)
	app.storage = closer

	if cfg.Seed {
		seeded, err := app.models.Initialize(ctx)
		if err != nil {
			app.closeStorage()
			return nil, fmt.Errorf("failed to seed storage: %v", err)
		}
		if len(seeded) > 0 {
			logger.Infow("seeded mock data", "keys", seeded)
		}
	}
	return app, nil
}

// NewApplication wires an application around an already opened store.
func NewApplication(cfg Config, logger *zap.SugaredLogger, kv data.KV) *Application {
	workers := cfg.NumWorkers
	if workers <= 0 {
		workers = 1
	}
	app := &Application{
		config: cfg,
		logger: logger,
		kv:     kv,
		models: data.NewModels(kv),
		jwtkey: []byte(cfg.JWTKey),
		queue:  make(chan struct{}, workers),
	}
	app.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     zap.NewStdLog(logger.Desugar()),
	}
	return app
}

func (app *Application) Handler() http.Handler {
	return otelhttp.NewHandler(app.routes(), "masar")
}

// Serve blocks until the server stops. A clean Stop returns nil, also when it
// comes before Serve.
func (app *Application) Serve() error {
	srv := app.server

	app.logger.Infof("starting %s server on %s", app.config.Env, srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

func (app *Application) Stop() error {
	defer app.closeStorage()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %v", err)
	}

	app.logger.Info("server stopped")
	return nil
}

func (app *Application) closeStorage() {
	if app.storage == nil {
		return
	}
	if err := app.storage.Close(); err != nil {
		app.logger.Errorw("closing storage", "error", err)
	}
	app.storage = nil
}

// OpenStorage opens the backend selected by cfg.Storage. The returned closer
// is nil for the in-memory store.
func OpenStorage(ctx context.Context, cfg Config) (data.KV, io.Closer, error) {
	switch cfg.Storage {
	case "", StorageMemory:
		return data.NewMemoryKV(), nil, nil
	case StorageSQLite:
		db, err := OpenSQLite(cfg)
		if err != nil {
			return nil, nil, err
		}
		kv := data.NewSQLKV(db, data.SQLite)
		if err := kv.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return kv, kv, nil
	case StoragePostgres:
		db, err := OpenDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		kv := data.NewSQLKV(db, data.Postgres)
		if err := kv.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return kv, kv, nil
	case StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv := data.NewRedisKV(client)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := kv.Ping(pingCtx); err != nil {
			client.Close()
			return nil, nil, err
		}
		return kv, kv, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
}

func OpenDB(cfg Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)

	duration, err := time.ParseDuration(cfg.DB.MaxIdleTime)
	if err != nil {
		db.Close()
		return nil, err
	}
	db.SetConnMaxIdleTime(duration)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens the single-file store. SQLite serializes writers anyway,
// so the pool is capped at one connection.
func OpenSQLite(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
