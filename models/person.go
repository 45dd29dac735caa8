// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used for birth dates on the wire
// and in the database.
const DateLayout = time.DateOnly

// Person is a public figure whose speeches are analysed.
//
// The triple (Name, FirstName, BirthDate) identifies a person uniquely.
// TrustScore and LieQuantity are stored but never computed by this service.
type Person struct {
	UID         uuid.UUID `json:"uid"`
	Name        string    `json:"name"`
	FirstName   string    `json:"firstName"`
	BirthDate   Date      `json:"birthDate"`
	TrustScore  uint8     `json:"trustScore"`
	LieQuantity uint64    `json:"-"`
}

// PersonInput is the request body accepted when a person is created or
// replaced. Values are validated and converted by the service layer.
type PersonInput struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	BirthDate string `json:"birthDate"`
}

// Date is a calendar date without time of day, serialised as YYYY-MM-DD.
type Date struct {
	t time.Time
}

// NewDate truncates t to its calendar day in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses s in [DateLayout].
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}

	return Date{t: t}, nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// String returns the date in [DateLayout].
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
