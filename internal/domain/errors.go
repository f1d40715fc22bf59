package domain

import "errors"

var (
	ErrEmptyName       = errors.New("event name is required")
	ErrUnparseableDate = errors.New("unparseable date")
	ErrPastDate        = errors.New("event date must be in the future")
	ErrEventNotFound   = errors.New("event not found")

	ErrEmptyPhrase    = errors.New("phrase is required")
	ErrPhraseTooLong  = errors.New("phrase exceeds maximum message length")
	ErrPhraseNotFound = errors.New("phrase not found")

	ErrMediaNotFound    = errors.New("media not found")
	ErrInvalidMediaType = errors.New("invalid media type")

	ErrStoreUnavailable = errors.New("store unavailable")
)
