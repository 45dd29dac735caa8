// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertPersonQuery_SQLContainsParts(t *testing.T) {
	birth, err := models.ParseDate("1867-11-07")
	require.NoError(t, err)
	person := models.Person{UID: uuid.New(), Name: "Curie", FirstName: "Marie", BirthDate: birth}

	query, args, err := buildInsertPersonQuery(person)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into person")
	require.Contains(t, query, "$6")
	for _, c := range personColumns {
		require.Contains(t, q, c)
	}

	require.Len(t, args, 6)
	assert.Equal(t, person.UID, args[0])
	assert.Equal(t, birth.Time(), args[3])
}

func Test_buildListPersonsQuery_Pagination(t *testing.T) {
	tests := []struct {
		name string
		page models.Page
		want string
	}{
		{name: "first page", page: models.NewPage(0, 10), want: "LIMIT 10 OFFSET 0"},
		{name: "third page", page: models.NewPage(2, 25), want: "LIMIT 25 OFFSET 50"},
		{name: "capped quantity", page: models.NewPage(1, 500), want: "LIMIT 100 OFFSET 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListPersonsQuery(tt.page)
			require.NoError(t, err)

			assert.Empty(t, args)
			assert.Contains(t, query, "ORDER BY name, first_name, uid")
			assert.True(t, strings.HasSuffix(query, tt.want), query)
		})
	}
}

func Test_buildUpdatePersonQuery_ReturnsRow(t *testing.T) {
	person := models.Person{UID: uuid.New(), Name: "Curie", FirstName: "Marie"}

	query, args, err := buildUpdatePersonQuery(person)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE person SET name = $1, first_name = $2, birth_date = $3 WHERE uid = $4")
	assert.Contains(t, query, "RETURNING uid, name, first_name, birth_date, trust_score, lie_quantity")
	require.Len(t, args, 4)
	assert.Equal(t, person.UID.String(), args[3])
}

func Test_buildInsertSpeakersQuery(t *testing.T) {
	speech := uuid.New()
	speakers := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	query, args, err := buildInsertSpeakersQuery(speech, speakers)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO speech_person (speech_uid,speaker) VALUES ($1,$2),($3,$4),($5,$6)")
	require.Len(t, args, 6)
	assert.Equal(t, speech, args[0])
	assert.Equal(t, speakers[2], args[5])

	_, _, err = buildInsertSpeakersQuery(speech, nil)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_buildInsertSentencesQuery_IndexIsPosition(t *testing.T) {
	speech := uuid.New()
	speaker := uuid.New()
	sentences := []models.Sentence{
		{UID: uuid.New(), Speaker: speaker, Text: "first", Index: 7},
		{UID: uuid.New(), Speaker: speaker, Text: "second", Index: 3},
	}

	query, args, err := buildInsertSentencesQuery(speech, sentences)
	require.NoError(t, err)

	assert.Contains(t, query, `"index"`)
	require.Len(t, args, 12)
	assert.Equal(t, 0, args[5])
	assert.Equal(t, 1, args[11])

	_, _, err = buildInsertSentencesQuery(speech, []models.Sentence{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_buildInsertSpeechQuery(t *testing.T) {
	speech := models.Speech{
		UID:    uuid.New(),
		Name:   "Address",
		Date:   time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC),
		Status: models.SpeechStatusPending,
	}

	query, args, err := buildInsertSpeechQuery(speech)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO speech (uid,name,date,media,status) VALUES ($1,$2,$3,$4,$5)", query)
	assert.Equal(t, []any{speech.UID, "Address", speech.Date, "", models.SpeechStatusPending}, args)
}

func Test_buildSelectSentencesQuery_OrderedByIndex(t *testing.T) {
	uid := uuid.New()

	query, args, err := buildSelectSentencesQuery(uid)
	require.NoError(t, err)

	assert.Equal(t, `SELECT uid, speaker, text, interrupted, "index" FROM sentence WHERE speech_uid = $1 ORDER BY "index"`, query)
	assert.Equal(t, []any{uid.String()}, args)
}

func Test_buildListSpeechesQuery(t *testing.T) {
	first, second := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		filter   models.SpeechFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no speakers",
			filter:  models.SpeechFilter{Page: models.NewPage(0, 10)},
			wantSQL: "SELECT uid, name, date, media, status FROM speech ORDER BY date DESC, uid LIMIT 10 OFFSET 0",
		},
		{
			name:     "one speaker",
			filter:   models.SpeechFilter{Page: models.NewPage(1, 10), Speakers: []uuid.UUID{first}},
			wantSQL:  "SELECT uid, name, date, media, status FROM speech WHERE uid IN (SELECT speech_uid FROM speech_person WHERE speaker IN ($1)) ORDER BY date DESC, uid LIMIT 10 OFFSET 10",
			wantArgs: []any{first.String()},
		},
		{
			name:     "several speakers",
			filter:   models.SpeechFilter{Page: models.NewPage(0, 5), Speakers: []uuid.UUID{first, second}},
			wantSQL:  "SELECT uid, name, date, media, status FROM speech WHERE uid IN (SELECT speech_uid FROM speech_person WHERE speaker IN ($1,$2)) ORDER BY date DESC, uid LIMIT 5 OFFSET 0",
			wantArgs: []any{first.String(), second.String()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListSpeechesQuery(tt.filter)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSQL, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildDeleteSpeechQueries_ChildrenFirst(t *testing.T) {
	uid := uuid.New()

	queries, args, err := buildDeleteSpeechQueries(uid)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"DELETE FROM sentence WHERE speech_uid = $1",
		"DELETE FROM speech_person WHERE speech_uid = $1",
		"DELETE FROM speech WHERE uid = $1",
	}, queries)
	assert.Equal(t, []any{uid.String()}, args)
}

func Test_uuidStrings(t *testing.T) {
	uid := uuid.New()

	assert.Equal(t, []string{uid.String()}, uuidStrings([]uuid.UUID{uid}))
	assert.Empty(t, uuidStrings(nil))
}
