package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	personColumns   = []string{"uid", "name", "first_name", "birth_date", "trust_score", "lie_quantity"}
	speechColumns   = []string{"uid", "name", "date", "media", "status"}
	sentenceColumns = []string{"uid", "speaker", "text", "interrupted", `"index"`}
)

func buildInsertPersonQuery(person models.Person) (string, []any, error) {
	return psql.Insert("person").
		Columns(personColumns...).
		Values(person.UID, person.Name, person.FirstName, person.BirthDate.Time(), person.TrustScore, person.LieQuantity).
		ToSql()
}

func buildSelectPersonQuery(uid uuid.UUID) (string, []any, error) {
	return psql.Select(personColumns...).
		From("person").
		Where(sq.Eq{"uid": uid.String()}).
		ToSql()
}

func buildListPersonsQuery(page models.Page) (string, []any, error) {
	return psql.Select(personColumns...).
		From("person").
		OrderBy("name", "first_name", "uid").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
}

func buildUpdatePersonQuery(person models.Person) (string, []any, error) {
	return psql.Update("person").
		Set("name", person.Name).
		Set("first_name", person.FirstName).
		Set("birth_date", person.BirthDate.Time()).
		Where(sq.Eq{"uid": person.UID.String()}).
		Suffix("RETURNING " + strings.Join(personColumns, ", ")).
		ToSql()
}

func buildDeletePersonQuery(uid uuid.UUID) (string, []any, error) {
	return psql.Delete("person").
		Where(sq.Eq{"uid": uid.String()}).
		ToSql()
}

func buildInsertSpeechQuery(speech models.Speech) (string, []any, error) {
	return psql.Insert("speech").
		Columns(speechColumns...).
		Values(speech.UID, speech.Name, speech.Date, speech.Media, speech.Status).
		ToSql()
}

// buildInsertSpeakersQuery inserts every speaker link in one statement.
func buildInsertSpeakersQuery(speechUID uuid.UUID, speakers []uuid.UUID) (string, []any, error) {
	if len(speakers) == 0 {
		return "", nil, fmt.Errorf("%w: no speakers", ErrBuildingSQLQuery)
	}

	insert := psql.Insert("speech_person").Columns("speech_uid", "speaker")
	for _, speaker := range speakers {
		insert = insert.Values(speechUID, speaker)
	}
	return insert.ToSql()
}

// buildInsertSentencesQuery inserts every sentence in one statement. The
// sentence index is its position in the slice.
func buildInsertSentencesQuery(speechUID uuid.UUID, sentences []models.Sentence) (string, []any, error) {
	if len(sentences) == 0 {
		return "", nil, fmt.Errorf("%w: no sentences", ErrBuildingSQLQuery)
	}

	insert := psql.Insert("sentence").Columns("uid", "speech_uid", "speaker", "text", "interrupted", `"index"`)
	for idx, sentence := range sentences {
		insert = insert.Values(sentence.UID, speechUID, sentence.Speaker, sentence.Text, sentence.Interrupted, idx)
	}
	return insert.ToSql()
}

func buildSelectSpeechQuery(uid uuid.UUID) (string, []any, error) {
	return psql.Select(speechColumns...).
		From("speech").
		Where(sq.Eq{"uid": uid.String()}).
		ToSql()
}

func buildSelectSentencesQuery(speechUID uuid.UUID) (string, []any, error) {
	return psql.Select(sentenceColumns...).
		From("sentence").
		Where(sq.Eq{"speech_uid": speechUID.String()}).
		OrderBy(`"index"`).
		ToSql()
}

// buildSelectSpeakersQuery loads speaker links of several speeches at once.
func buildSelectSpeakersQuery(speechUIDs []uuid.UUID) (string, []any, error) {
	return psql.Select("speech_uid", "speaker").
		From("speech_person").
		Where(sq.Eq{"speech_uid": uuidStrings(speechUIDs)}).
		OrderBy("speech_uid", "speaker").
		ToSql()
}

// buildListSpeechesQuery selects one page of speeches, newest first. With
// speakers set, only speeches where at least one of them speaks are listed.
func buildListSpeechesQuery(filter models.SpeechFilter) (string, []any, error) {
	query := psql.Select(speechColumns...).From("speech")

	if len(filter.Speakers) > 0 {
		speakers := sq.Select("speech_uid").
			From("speech_person").
			Where(sq.Eq{"speaker": uuidStrings(filter.Speakers)})
		query = query.Where(sq.Expr("uid IN (?)", speakers))
	}

	return query.
		OrderBy("date DESC", "uid").
		Limit(filter.Page.Limit()).
		Offset(filter.Page.Offset()).
		ToSql()
}

func buildUpdateSpeechStatusQuery(uid uuid.UUID, status models.SpeechStatus) (string, []any, error) {
	return psql.Update("speech").
		Set("status", status).
		Where(sq.Eq{"uid": uid.String()}).
		ToSql()
}

// buildDeleteSpeechQueries deletes children before the speech row.
func buildDeleteSpeechQueries(uid uuid.UUID) ([]string, []any, error) {
	tables := []struct{ table, column string }{
		{"sentence", "speech_uid"},
		{"speech_person", "speech_uid"},
		{"speech", "uid"},
	}

	queries := make([]string, 0, len(tables))
	var args []any
	for _, t := range tables {
		query, queryArgs, err := psql.Delete(t.table).Where(sq.Eq{t.column: uid.String()}).ToSql()
		if err != nil {
			return nil, nil, err
		}
		queries = append(queries, query)
		args = queryArgs
	}

	return queries, args, nil
}

// uuidStrings keeps squirrel from expanding a uuid.UUID, which is an
// array, into an IN list.
func uuidStrings(uids []uuid.UUID) []string {
	out := make([]string, len(uids))
	for i, uid := range uids {
		out[i] = uid.String()
	}
	return out
}
