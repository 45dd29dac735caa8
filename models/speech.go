// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// SpeechStatus is the review state of a speech.
type SpeechStatus string

const (
	// SpeechStatusPending is assigned to every newly created speech.
	SpeechStatusPending SpeechStatus = "PENDING"
	// SpeechStatusValidated marks a speech whose transcript was reviewed.
	SpeechStatusValidated SpeechStatus = "VALIDATED"
)

// Valid reports whether s is a known status.
func (s SpeechStatus) Valid() bool {
	return s == SpeechStatusPending || s == SpeechStatusValidated
}

// Speech is a recorded intervention of one or more persons.
//
// The triple (Name, Date, Media) identifies a speech uniquely. Sentences are
// kept in the order given at creation; Sentence.Index is the position.
type Speech struct {
	UID       uuid.UUID    `json:"uid"`
	Name      string       `json:"name"`
	Date      time.Time    `json:"date"`
	Speakers  []uuid.UUID  `json:"speakers"`
	Sentences []Sentence   `json:"sentences"`
	Media     string       `json:"media"`
	Status    SpeechStatus `json:"status"`
}

// SpeechSummary is the listing view of a speech: everything but sentences.
type SpeechSummary struct {
	UID      uuid.UUID    `json:"uid"`
	Name     string       `json:"name"`
	Date     time.Time    `json:"date"`
	Speakers []uuid.UUID  `json:"speakers"`
	Media    string       `json:"media"`
	Status   SpeechStatus `json:"status"`
}

// Summary drops the sentences of s.
func (s Speech) Summary() SpeechSummary {
	return SpeechSummary{
		UID:      s.UID,
		Name:     s.Name,
		Date:     s.Date,
		Speakers: s.Speakers,
		Media:    s.Media,
		Status:   s.Status,
	}
}

// Sentence is a single utterance inside a speech.
type Sentence struct {
	UID         uuid.UUID `json:"uid"`
	Speaker     uuid.UUID `json:"speaker"`
	Text        string    `json:"text"`
	Interrupted bool      `json:"interrupted"`
	Index       int       `json:"index"`
}

// SpeechInput is the request body accepted when a speech is created.
type SpeechInput struct {
	Name      string          `json:"name"`
	Date      string          `json:"date"`
	Speakers  []string        `json:"speakers"`
	Sentences []SentenceInput `json:"sentences"`
	Media     string          `json:"media"`
}

// SentenceInput is a sentence inside [SpeechInput].
type SentenceInput struct {
	Speaker     string `json:"speaker"`
	Text        string `json:"text"`
	Interrupted bool   `json:"interrupted"`
}

// SpeechStatusInput is the request body of a status change.
type SpeechStatusInput struct {
	Status string `json:"status"`
}

// SpeechFilter narrows a speech listing. An empty Speakers slice matches
// every speech.
type SpeechFilter struct {
	Page     Page
	Speakers []uuid.UUID
}
