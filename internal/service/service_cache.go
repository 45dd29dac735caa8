package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/speech-analytics/internal/cache"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

const (
	personKeyPrefix = "person:"
	speechKeyPrefix = "speech:"
)

func personKey(uid uuid.UUID) string {
	return personKeyPrefix + uid.String()
}

func speechKey(uid uuid.UUID) string {
	return speechKeyPrefix + uid.String()
}

// PersonCacheService serves GetPerson from the cache. Mutations invalidate
// the touched entry before and after the inner call, even when it failed,
// so a read that overlapped the write cannot store the old row.
type PersonCacheService struct {
	inner PersonService
	cache cache.Cache
	gens  cache.Generations
}

func NewPersonCacheService(c cache.Cache) PersonServiceWrapper {
	return &PersonCacheService{cache: c}
}

func (s *PersonCacheService) CreatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	return s.inner.CreatePerson(ctx, person)
}

func (s *PersonCacheService) GetPerson(ctx context.Context, uid uuid.UUID) (models.Person, error) {
	return cache.Fetch(ctx, s.cache, &s.gens, personKey(uid), func(ctx context.Context) (models.Person, error) {
		return s.inner.GetPerson(ctx, uid)
	})
}

func (s *PersonCacheService) ListPersons(ctx context.Context, page models.Page) ([]models.Person, error) {
	return s.inner.ListPersons(ctx, page)
}

func (s *PersonCacheService) UpdatePerson(ctx context.Context, person models.Person) (models.Person, error) {
	key := personKey(person.UID)
	s.gens.Invalidate(s.cache, key)
	defer s.gens.Invalidate(s.cache, key)
	return s.inner.UpdatePerson(ctx, person)
}

func (s *PersonCacheService) DeletePerson(ctx context.Context, uid uuid.UUID) error {
	key := personKey(uid)
	s.gens.Invalidate(s.cache, key)
	defer s.gens.Invalidate(s.cache, key)
	return s.inner.DeletePerson(ctx, uid)
}

func (s *PersonCacheService) Wrap(wrapper PersonService) PersonService {
	s.inner = wrapper
	return s
}

// SpeechCacheService serves GetSpeech from the cache.
type SpeechCacheService struct {
	inner SpeechService
	cache cache.Cache
	gens  cache.Generations
}

func NewSpeechCacheService(c cache.Cache) SpeechServiceWrapper {
	return &SpeechCacheService{cache: c}
}

func (s *SpeechCacheService) CreateSpeech(ctx context.Context, speech models.Speech) (models.Speech, error) {
	return s.inner.CreateSpeech(ctx, speech)
}

func (s *SpeechCacheService) GetSpeech(ctx context.Context, uid uuid.UUID) (models.Speech, error) {
	return cache.Fetch(ctx, s.cache, &s.gens, speechKey(uid), func(ctx context.Context) (models.Speech, error) {
		return s.inner.GetSpeech(ctx, uid)
	})
}

func (s *SpeechCacheService) ListSpeeches(ctx context.Context, filter models.SpeechFilter) ([]models.Speech, error) {
	return s.inner.ListSpeeches(ctx, filter)
}

func (s *SpeechCacheService) UpdateSpeechStatus(ctx context.Context, uid uuid.UUID, status models.SpeechStatus) (models.Speech, error) {
	key := speechKey(uid)
	s.gens.Invalidate(s.cache, key)
	defer s.gens.Invalidate(s.cache, key)
	return s.inner.UpdateSpeechStatus(ctx, uid, status)
}

func (s *SpeechCacheService) DeleteSpeech(ctx context.Context, uid uuid.UUID) error {
	key := speechKey(uid)
	s.gens.Invalidate(s.cache, key)
	defer s.gens.Invalidate(s.cache, key)
	return s.inner.DeleteSpeech(ctx, uid)
}

func (s *SpeechCacheService) MediaURL(ctx context.Context, uid uuid.UUID) (*url.URL, error) {
	return s.inner.MediaURL(ctx, uid)
}

func (s *SpeechCacheService) Wrap(wrapper SpeechService) SpeechService {
	s.inner = wrapper
	return s
}
