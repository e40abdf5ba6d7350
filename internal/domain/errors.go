package domain

import "errors"

var (
	ErrEmptyUtterance      = errors.New("empty utterance")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnknownGuide        = errors.New("unknown guide")
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidStoreType    = errors.New("invalid session store type")
	ErrInvalidStoreConfig  = errors.New("invalid session store config")
)
