package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/speech-analytics/internal/utils"
	"github.com/MKhiriev/speech-analytics/models"
	"github.com/google/uuid"
)

func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	person, err := decodePerson(r, uuid.Nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.PersonService.CreatePerson(r.Context(), person)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, models.CreatedResponse{UID: created.UID}, http.StatusCreated)
}

func (h *Handler) listPersons(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	persons, err := h.services.PersonService.ListPersons(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if persons == nil {
		persons = []models.Person{}
	}

	respond(w, r, persons, http.StatusOK)
}

func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	uid, err := pathUID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	person, err := h.services.PersonService.GetPerson(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, person, http.StatusOK)
}

func (h *Handler) updatePerson(w http.ResponseWriter, r *http.Request) {
	uid, err := pathUID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	person, err := decodePerson(r, uid)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.PersonService.UpdatePerson(r.Context(), person)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respond(w, r, updated, http.StatusOK)
}

func (h *Handler) deletePerson(w http.ResponseWriter, r *http.Request) {
	uid, err := pathUID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PersonService.DeletePerson(r.Context(), uid); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodePerson reads a [models.PersonInput] body and converts it.
func decodePerson(r *http.Request, uid uuid.UUID) (models.Person, error) {
	var input models.PersonInput
	if err := utils.ReadJSON(r, &input); err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", errInvalidFormat, err)
	}

	birthDate, err := models.ParseDate(input.BirthDate)
	if err != nil {
		return models.Person{}, fmt.Errorf("%w: %w", errInvalidBirthDate, err)
	}

	return models.Person{
		UID:       uid,
		Name:      input.Name,
		FirstName: input.FirstName,
		BirthDate: birthDate,
	}, nil
}
