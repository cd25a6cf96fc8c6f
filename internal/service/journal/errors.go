package journal

import "errors"

var ErrInvalidMood = errors.New("mood must be between 1 and 5")
