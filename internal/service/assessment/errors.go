package assessment

import "errors"

var (
	ErrSessionNotFound = errors.New("assessment session not found")
	ErrResultNotFound  = errors.New("assessment result not found")
)
