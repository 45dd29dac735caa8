// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// speechRepository is the PostgreSQL-backed implementation of
// [SpeechRepository]. A speech spans three tables: "speech",
// "speech_person" (speaker links) and "sentence".
type speechRepository struct {
	*DB
	logger *logger.Logger
}

func NewSpeechRepository(db *DB, logger *logger.Logger) SpeechRepository {
	logger.Debug().Msg("creating speech repository")
	return &speechRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSpeech stores the speech, its speaker links and its sentences in one
// transaction.
//
// Error handling:
//   - unique_violation or check_violation → [ErrSpeechAlreadyExists].
//   - foreign_key_violation (unknown speaker) → [ErrPersonNotFound].
func (r *speechRepository) CreateSpeech(ctx context.Context, speech models.Speech) error {
	log := logger.FromContext(ctx).With().
		Str("func", "speechRepository.CreateSpeech").
		Str("uid", speech.UID.String()).
		Logger()

	queries := make([]string, 0, 3)
	argSets := make([][]any, 0, 3)

	query, args, err := buildInsertSpeechQuery(speech)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	queries, argSets = append(queries, query), append(argSets, args)

	if len(speech.Speakers) > 0 {
		query, args, err = buildInsertSpeakersQuery(speech.UID, speech.Speakers)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		queries, argSets = append(queries, query), append(argSets, args)
	}

	if len(speech.Sentences) > 0 {
		query, args, err = buildInsertSentencesQuery(speech.UID, speech.Sentences)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		queries, argSets = append(queries, query), append(argSets, args)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return translateError(err, ErrBeginningTransaction)
	}
	defer tx.Rollback()

	for idx, query := range queries {
		if err = r.execInTx(ctx, tx, query, argSets[idx]...); err != nil {
			log.Err(err).
				Int("statement", idx+1).
				Str("constraint", constraintName(err)).
				Msg("failed to insert speech")

			switch postgresError(err) {
			case pgerrcode.UniqueViolation, pgerrcode.CheckViolation:
				return ErrSpeechAlreadyExists
			case pgerrcode.ForeignKeyViolation:
				return ErrPersonNotFound
			}
			return translateError(err, ErrExecutingStatement)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Int("speakers", len(speech.Speakers)).
		Int("sentences", len(speech.Sentences)).
		Msg("speech stored")
	return nil
}

// GetSpeech loads one speech with speakers and sentences ordered by index.
func (r *speechRepository) GetSpeech(ctx context.Context, uid uuid.UUID) (models.Speech, error) {
	log := logger.FromContext(ctx)

	speechQuery, speechArgs, err := buildSelectSpeechQuery(uid)
	if err != nil {
		return models.Speech{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	speakersQuery, speakersArgs, err := buildSelectSpeakersQuery([]uuid.UUID{uid})
	if err != nil {
		return models.Speech{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	sentencesQuery, sentencesArgs, err := buildSelectSentencesQuery(uid)
	if err != nil {
		return models.Speech{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var speech models.Speech
	err = r.retryTransient(ctx, func(ctx context.Context) error {
		var opErr error
		speech, opErr = scanSpeech(r.DB.QueryRowContext(ctx, speechQuery, speechArgs...))
		if opErr != nil {
			return opErr
		}

		speakers, opErr := r.loadSpeakers(ctx, speakersQuery, speakersArgs)
		if opErr != nil {
			return opErr
		}
		speech.Speakers = speakers[speech.UID]
		if speech.Speakers == nil {
			speech.Speakers = []uuid.UUID{}
		}

		speech.Sentences, opErr = r.loadSentences(ctx, sentencesQuery, sentencesArgs)
		return opErr
	})
	if err != nil {
		err = translateError(err, ErrExecutingQuery)
		if errors.Is(err, ErrNotFound) {
			return models.Speech{}, ErrSpeechNotFound
		}

		log.Err(err).
			Str("func", "speechRepository.GetSpeech").
			Str("uid", uid.String()).
			Msg("failed to get speech")
		return models.Speech{}, err
	}

	return speech, nil
}

// ListSpeeches returns one page of speeches with their speakers. Sentences
// are not loaded.
func (r *speechRepository) ListSpeeches(ctx context.Context, filter models.SpeechFilter) ([]models.Speech, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSpeechesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var speeches []models.Speech
	err = r.retryTransient(ctx, func(ctx context.Context) error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		speeches = make([]models.Speech, 0, filter.Page.Quantity)
		for rows.Next() {
			speech, scanErr := scanSpeech(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			speeches = append(speeches, speech)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return rowsErr
		}

		if len(speeches) == 0 {
			return nil
		}

		uids := make([]uuid.UUID, len(speeches))
		for i := range speeches {
			uids[i] = speeches[i].UID
		}
		speakersQuery, speakersArgs, buildErr := buildSelectSpeakersQuery(uids)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		speakers, loadErr := r.loadSpeakers(ctx, speakersQuery, speakersArgs)
		if loadErr != nil {
			return loadErr
		}
		for i := range speeches {
			speeches[i].Speakers = speakers[speeches[i].UID]
			if speeches[i].Speakers == nil {
				speeches[i].Speakers = []uuid.UUID{}
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "speechRepository.ListSpeeches").
			Uint16("page", filter.Page.Number).
			Uint16("quantity", filter.Page.Quantity).
			Int("speakers_filter", len(filter.Speakers)).
			Msg("failed to list speeches")
		return nil, translateError(err, ErrExecutingQuery)
	}

	return speeches, nil
}

func (r *speechRepository) UpdateSpeechStatus(ctx context.Context, uid uuid.UUID, status models.SpeechStatus) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSpeechStatusQuery(uid, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "speechRepository.UpdateSpeechStatus").
			Str("uid", uid.String()).
			Msg("failed to update speech status")
		return translateError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSpeechNotFound
	}

	return nil
}

// DeleteSpeech removes sentences, speaker links and the speech row in one
// transaction. A missing speech yields [ErrSpeechNotFound] and nothing is
// committed.
func (r *speechRepository) DeleteSpeech(ctx context.Context, uid uuid.UUID) error {
	log := logger.FromContext(ctx).With().
		Str("func", "speechRepository.DeleteSpeech").
		Str("uid", uid.String()).
		Logger()

	queries, args, err := buildDeleteSpeechQueries(uid)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return translateError(err, ErrBeginningTransaction)
	}
	defer tx.Rollback()

	var result sql.Result
	for idx, query := range queries {
		stmtCtx, cancel := r.withTimeout(ctx)
		result, err = tx.ExecContext(stmtCtx, query, args...)
		cancel()
		if err != nil {
			log.Err(err).Int("statement", idx+1).Msg("failed to delete speech")
			return translateError(err, ErrExecutingStatement)
		}
	}

	// result belongs to the last statement, the speech row itself.
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSpeechNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *speechRepository) execInTx(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// loadSpeakers groups speaker links by speech uid.
func (r *speechRepository) loadSpeakers(ctx context.Context, query string, args []any) (map[uuid.UUID][]uuid.UUID, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	speakers := make(map[uuid.UUID][]uuid.UUID)
	for rows.Next() {
		var speechUID, speaker uuid.UUID
		if err = rows.Scan(&speechUID, &speaker); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		speakers[speechUID] = append(speakers[speechUID], speaker)
	}

	return speakers, rows.Err()
}

func (r *speechRepository) loadSentences(ctx context.Context, query string, args []any) ([]models.Sentence, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sentences := make([]models.Sentence, 0, 16)
	for rows.Next() {
		var sentence models.Sentence
		err = rows.Scan(
			&sentence.UID,
			&sentence.Speaker,
			&sentence.Text,
			&sentence.Interrupted,
			&sentence.Index,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sentences = append(sentences, sentence)
	}

	return sentences, rows.Err()
}

func scanSpeech(row rowScanner) (models.Speech, error) {
	var speech models.Speech

	err := row.Scan(
		&speech.UID,
		&speech.Name,
		&speech.Date,
		&speech.Media,
		&speech.Status,
	)
	if err != nil {
		return models.Speech{}, err
	}

	speech.Date = speech.Date.UTC()
	return speech, nil
}
