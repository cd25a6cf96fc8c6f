package screening

import "errors"

var (
	ErrUnknownInstrument    = errors.New("unknown instrument")
	ErrInvalidAnswer        = errors.New("invalid answer")
	ErrIncompleteAssessment = errors.New("assessment is not complete")
	ErrMissingAnswer        = errors.New("missing answer for question")
	ErrSessionCompleted     = errors.New("session already completed")
)
