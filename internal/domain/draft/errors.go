package draft

import "errors"

var (
	ErrInvalidPlan     = errors.New("invalid plan")
	ErrInvalidLanguage = errors.New("unsupported language")
	ErrNoSession       = errors.New("session namespace is empty")
)
