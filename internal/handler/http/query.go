package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/speech-analytics/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	pageParam     = "page"
	quantityParam = "quantity"
	speakersParam = "speakers"
	uidParam      = "uid"
)

// parsePage reads page and quantity. Absent values fall back to page 0 and
// [models.DefaultPageQuantity]; quantity is capped by [models.NewPage].
func parsePage(q url.Values) (models.Page, error) {
	var number uint64
	quantity := uint64(models.DefaultPageQuantity)

	if raw := q.Get(pageParam); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return models.Page{}, errInvalidPageParam
		}
		number = n
	}

	if raw := q.Get(quantityParam); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 16)
		if err != nil || n == 0 {
			return models.Page{}, errInvalidQuantityParam
		}
		quantity = n
	}

	return models.NewPage(uint16(number), uint16(quantity)), nil
}

// parseUIDList accepts "[a,b]", "a,b" and the JSON form `["a","b"]`.
// An empty list yields nil.
func parseUIDList(raw string) ([]uuid.UUID, error) {
	raw = strings.TrimSpace(raw)

	hasOpen, hasClose := strings.HasPrefix(raw, "["), strings.HasSuffix(raw, "]")
	if hasOpen != hasClose {
		return nil, errInvalidArrayParam
	}
	if hasOpen {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	uids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		if part == "" {
			return nil, errInvalidArrayParam
		}

		uid, err := uuid.Parse(part)
		if err != nil {
			return nil, errInvalidSpeakersUID
		}
		uids = append(uids, uid)
	}

	return uids, nil
}

func parseSpeechFilter(q url.Values) (models.SpeechFilter, error) {
	page, err := parsePage(q)
	if err != nil {
		return models.SpeechFilter{}, err
	}

	speakers, err := parseUIDList(q.Get(speakersParam))
	if err != nil {
		return models.SpeechFilter{}, err
	}

	return models.SpeechFilter{Page: page, Speakers: speakers}, nil
}

func pathUID(r *http.Request) (uuid.UUID, error) {
	uid, err := uuid.Parse(chi.URLParam(r, uidParam))
	if err != nil {
		return uuid.Nil, errInvalidUID
	}
	return uid, nil
}
