package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// personRepository is the PostgreSQL-backed implementation of
// [PersonRepository] over the "person" table.
type personRepository struct {
	*DB
	logger *logger.Logger
}

func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	logger.Debug().Msg("creating person repository")
	return &personRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePerson inserts a new person.
//
// Error handling:
//   - unique_violation or check_violation → [ErrPersonAlreadyExists].
//   - statement timeout → [ErrTimeout].
func (r *personRepository) CreatePerson(ctx context.Context, person models.Person) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPersonQuery(person)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "personRepository.CreatePerson").
			Str("uid", person.UID.String()).
			Msg("failed to insert person")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation, pgerrcode.CheckViolation:
			return ErrPersonAlreadyExists
		}
		return translateError(err, ErrExecutingStatement)
	}

	return nil
}

func (r *personRepository) GetPerson(ctx context.Context, uid uuid.UUID) (models.Person, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPersonQuery(uid)
	if err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var person models.Person
	err = r.retryTransient(ctx, func(ctx context.Context) error {
		var scanErr error
		person, scanErr = scanPerson(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		err = translateError(err, ErrScanningRow)
		if errors.Is(err, ErrNotFound) {
			return models.Person{}, ErrPersonNotFound
		}

		log.Err(err).
			Str("func", "personRepository.GetPerson").
			Str("uid", uid.String()).
			Msg("failed to get person")
		return models.Person{}, err
	}

	return person, nil
}

// ListPersons returns one page of persons ordered by (name, first_name).
func (r *personRepository) ListPersons(ctx context.Context, page models.Page) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPersonsQuery(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var persons []models.Person
	err = r.retryTransient(ctx, func(ctx context.Context) error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		persons = make([]models.Person, 0, page.Quantity)
		for rows.Next() {
			person, scanErr := scanPerson(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			persons = append(persons, person)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).
			Str("func", "personRepository.ListPersons").
			Uint16("page", page.Number).
			Uint16("quantity", page.Quantity).
			Msg("failed to list persons")
		return nil, translateError(err, ErrExecutingQuery)
	}

	return persons, nil
}

// UpdatePerson replaces name, first name and birth date and returns the
// stored row.
func (r *personRepository) UpdatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePersonQuery(person)
	if err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	updated, err := scanPerson(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation, pgerrcode.CheckViolation:
			return models.Person{}, ErrPersonAlreadyExists
		}

		err = translateError(err, ErrExecutingStatement)
		if errors.Is(err, ErrNotFound) {
			return models.Person{}, ErrPersonNotFound
		}

		log.Err(err).
			Str("func", "personRepository.UpdatePerson").
			Str("uid", person.UID.String()).
			Msg("failed to update person")
		return models.Person{}, err
	}

	return updated, nil
}

// DeletePerson removes a person that no speech references.
//
// Error handling:
//   - no row deleted → [ErrPersonNotFound].
//   - foreign_key_violation → [ErrPersonInUse].
func (r *personRepository) DeletePerson(ctx context.Context, uid uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePersonQuery(uid)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			log.Info().
				Str("uid", uid.String()).
				Str("constraint", constraintName(err)).
				Msg("person is still referenced")
			return ErrPersonInUse
		}

		log.Err(err).
			Str("func", "personRepository.DeletePerson").
			Str("uid", uid.String()).
			Msg("failed to delete person")
		return translateError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (models.Person, error) {
	var (
		person    models.Person
		birthDate time.Time
	)

	err := row.Scan(
		&person.UID,
		&person.Name,
		&person.FirstName,
		&birthDate,
		&person.TrustScore,
		&person.LieQuantity,
	)
	if err != nil {
		return models.Person{}, err
	}

	person.BirthDate = models.NewDate(birthDate)
	return person, nil
}
