package plan

import "errors"

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrInvalidLanguage = errors.New("unsupported language")
)
