package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUID          = errors.New("invalid uid")
	ErrEmptyName           = errors.New("name is required")
	ErrNameTooLong         = errors.New("name is too long")
	ErrEmptyFirstName      = errors.New("first name is required")
	ErrFirstNameTooLong    = errors.New("first name is too long")
	ErrInvalidBirthDate    = errors.New("invalid birth date")
	ErrInvalidDate         = errors.New("invalid speech date")
	ErrNoSpeakers          = errors.New("speakers list cannot be empty")
	ErrInvalidSpeaker      = errors.New("invalid speaker uid")
	ErrDuplicateSpeaker    = errors.New("speaker listed twice")
	ErrUnknownSentenceUser = errors.New("sentence speaker is not a speaker of the speech")
	ErrEmptySentence       = errors.New("sentence text is required")
	ErrMediaTooLong        = errors.New("media is too long")
	ErrInvalidStatus       = errors.New("invalid speech status")
)
