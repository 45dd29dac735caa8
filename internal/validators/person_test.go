// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func validPerson(t *testing.T) models.Person {
	return models.Person{
		UID:       uuid.New(),
		Name:      "Curie",
		FirstName: "Marie",
		BirthDate: mustDate(t, "1867-11-07"),
	}
}

func newTestPersonValidator() *PersonValidator {
	return &PersonValidator{now: func() time.Time {
		return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}}
}

// ---------------------------------------------------------------------------
// TestPersonValidator_Validate
// ---------------------------------------------------------------------------

func TestPersonValidator_Dispatch(t *testing.T) {
	v := newTestPersonValidator()
	person := validPerson(t)

	assert.NoError(t, v.Validate(context.Background(), person))
	assert.NoError(t, v.Validate(context.Background(), &person))
	assert.ErrorIs(t, v.Validate(context.Background(), "person"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), person, "nickname"), ErrUnknownField)
}

func TestPersonValidator_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.Person)
		wantErr error
	}{
		{name: "nil uid", mutate: func(p *models.Person) { p.UID = uuid.Nil }, wantErr: ErrInvalidUID},
		{name: "empty name", mutate: func(p *models.Person) { p.Name = "" }, wantErr: ErrEmptyName},
		{name: "blank name", mutate: func(p *models.Person) { p.Name = "   " }, wantErr: ErrEmptyName},
		{name: "long name", mutate: func(p *models.Person) { p.Name = strings.Repeat("a", 51) }, wantErr: ErrNameTooLong},
		{name: "fifty runes", mutate: func(p *models.Person) { p.Name = strings.Repeat("é", 50) }},
		{name: "empty first name", mutate: func(p *models.Person) { p.FirstName = "" }, wantErr: ErrEmptyFirstName},
		{name: "long first name", mutate: func(p *models.Person) { p.FirstName = strings.Repeat("b", 60) }, wantErr: ErrFirstNameTooLong},
		{name: "zero birth date", mutate: func(p *models.Person) { p.BirthDate = models.Date{} }, wantErr: ErrInvalidBirthDate},
		{name: "birth date in the future", mutate: func(p *models.Person) { p.BirthDate = mustDate(t, "2030-01-01") }, wantErr: ErrInvalidBirthDate},
		{name: "birth date too old", mutate: func(p *models.Person) { p.BirthDate = mustDate(t, "1200-01-01") }, wantErr: ErrInvalidBirthDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			person := validPerson(t)
			tt.mutate(&person)

			err := newTestPersonValidator().Validate(context.Background(), person)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPersonValidator_FieldScoping(t *testing.T) {
	v := newTestPersonValidator()
	person := validPerson(t)
	person.UID = uuid.Nil

	assert.NoError(t, v.Validate(context.Background(), person, FieldName, FieldFirstName, FieldBirthDate))
	assert.ErrorIs(t, v.Validate(context.Background(), person, FieldUID), ErrInvalidUID)
}
