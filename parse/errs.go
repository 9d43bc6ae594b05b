package parse

import (
	"errors"
)

var (
	// ErrParse is wrapped by every error returned from Parse.
	ErrParse = errors.New("parse error")
)
