package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.ConnectionException, Retryable},
		{pgerrcode.ConnectionFailure, Retryable},
		{pgerrcode.SerializationFailure, Retryable},
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.UniqueViolation, NonRetryable},
		{pgerrcode.ForeignKeyViolation, NonRetryable},
		{pgerrcode.SyntaxError, NonRetryable},
		{pgerrcode.QueryCanceled, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))

	wrapped := fmt.Errorf("query: %w", &pgconn.PgError{Code: pgerrcode.AdminShutdown})
	assert.Equal(t, NonRetryable, c.Classify(wrapped))

	wrapped = fmt.Errorf("query: %w", &pgconn.PgError{Code: pgerrcode.SerializationFailure})
	assert.Equal(t, Retryable, c.Classify(wrapped))
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil, ErrExecutingQuery))
	assert.Equal(t, ErrNotFound, translateError(sql.ErrNoRows, ErrExecutingQuery))
	assert.ErrorIs(t, translateError(context.DeadlineExceeded, ErrExecutingQuery), ErrTimeout)
	assert.ErrorIs(t, translateError(&pgconn.PgError{Code: pgerrcode.QueryCanceled}, ErrExecutingQuery), ErrTimeout)

	err := translateError(errors.New("boom"), ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestConstraintName(t *testing.T) {
	assert.Equal(t, "unique_identity", constraintName(&pgconn.PgError{ConstraintName: "UNIQUE_IDENTITY"}))
	assert.Empty(t, constraintName(errors.New("plain")))
}

func TestDB_Check(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectPing()

		assert.NoError(t, db.Check(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreachable", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		err := db.Check(context.Background())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestDB_RetryTransient(t *testing.T) {
	t.Run("retries once on retryable error", func(t *testing.T) {
		db, _ := newTestDB(t)
		calls := 0

		err := db.retryTransient(context.Background(), func(ctx context.Context) error {
			calls++
			return &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
		})

		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("stops on success", func(t *testing.T) {
		db, _ := newTestDB(t)
		calls := 0

		err := db.retryTransient(context.Background(), func(ctx context.Context) error {
			calls++
			if calls == 1 {
				return &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("attempt has a deadline", func(t *testing.T) {
		db, _ := newTestDB(t)

		err := db.retryTransient(context.Background(), func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			require.True(t, ok)
			return nil
		})
		assert.NoError(t, err)
	})
}

func TestNewStoragesFromDB(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	s := newStoragesFromDB(NewDB(conn, 0, logger.Nop()), logger.Nop())
	require.NotNil(t, s.PersonRepository)
	require.NotNil(t, s.SpeechRepository)

	mock.ExpectClose()
	assert.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())

	var empty *Storages
	assert.NoError(t, empty.Close())
}
