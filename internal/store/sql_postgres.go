package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/config"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const (
	connectBackoffBase = 200 * time.Millisecond
	connectBackoffCap  = 5 * time.Second
	transientRetryWait = 50 * time.Millisecond
)

// DB wraps the pgx-backed *sql.DB with the per-statement timeout and the
// retry policy shared by every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	timeout            time.Duration
	logger             *logger.Logger
}

// NewConnectPostgres opens the pool and pings it with exponential backoff
// until cfg.ConnectAttempts is exhausted.
func NewConnectPostgres(ctx context.Context, cfg config.Database, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	attempts := cfg.ConnectAttempts
	if attempts == 0 {
		attempts = 1
	}
	backoff := retry.WithCappedDuration(connectBackoffCap, retry.NewExponential(connectBackoffBase))
	backoff = retry.WithMaxRetries(attempts-1, backoff)

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, connectBackoffCap)
		defer cancel()

		if pingErr := conn.PingContext(pingCtx); pingErr != nil {
			log.Warn().Err(pingErr).Str("func", "NewConnectPostgres").Msg("database is not reachable yet")
			return retry.RetryableError(pingErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return NewDB(conn, cfg.QueryTimeout(), log), nil
}

// NewDB wraps an already opened connection pool.
func NewDB(conn *sql.DB, timeout time.Duration, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		timeout:            timeout,
		logger:             log,
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.logger)
}

// Check pings the database under the statement timeout.
func (db *DB) Check(ctx context.Context) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return translateError(err, ErrExecutingQuery)
	}
	return nil
}

// withTimeout bounds a single statement. A zero timeout leaves ctx as is.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.timeout)
}

// retryTransient runs op once more when its error is classified as
// [Retryable]. op receives a fresh statement timeout on every attempt.
func (db *DB) retryTransient(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(1, retry.NewConstant(transientRetryWait))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		stmtCtx, cancel := db.withTimeout(ctx)
		defer cancel()

		err := op(stmtCtx)
		if err != nil && db.classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
