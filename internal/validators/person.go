package validators

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

// Field names accepted by [PersonValidator].
const (
	FieldUID       = "uid"
	FieldName      = "name"
	FieldFirstName = "first_name"
	FieldBirthDate = "birth_date"
)

// MaxNameLength matches the width of the name columns.
const MaxNameLength = 50

// earliestBirthDate rejects obviously mistyped years.
var earliestBirthDate = time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)

type PersonValidator struct {
	now func() time.Time
}

func NewPersonValidator() Validator {
	return &PersonValidator{now: time.Now}
}

func (v *PersonValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Person:
		return v.validatePerson(ctx, value, fields...)
	case *models.Person:
		return v.validatePerson(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PersonValidator) validatePerson(_ context.Context, person models.Person, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUID, FieldName, FieldFirstName, FieldBirthDate}
	}

	for _, f := range fields {
		switch f {
		case FieldUID:
			if person.UID == uuid.Nil {
				return ErrInvalidUID
			}
		case FieldName:
			if err := checkName(person.Name, ErrEmptyName, ErrNameTooLong); err != nil {
				return err
			}
		case FieldFirstName:
			if err := checkName(person.FirstName, ErrEmptyFirstName, ErrFirstNameTooLong); err != nil {
				return err
			}
		case FieldBirthDate:
			birth := person.BirthDate.Time()
			if birth.IsZero() || birth.Before(earliestBirthDate) || birth.After(v.now()) {
				return ErrInvalidBirthDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkName(s string, errEmpty, errTooLong error) error {
	if strings.TrimSpace(s) == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return errTooLong
	}
	return nil
}
