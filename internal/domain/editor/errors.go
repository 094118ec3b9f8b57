package editor

import "errors"

var (
	ErrFeatureLocked     = errors.New("this feature is not available on your current plan")
	ErrVideoLimitReached = errors.New("video limit reached for your current plan")
	ErrInvalidOption     = errors.New("unknown option")
	ErrVideoIndex        = errors.New("video index out of range")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrNoFiles           = errors.New("no image files provided")
	ErrFileTooLarge      = errors.New("image file too large")
	ErrUnsupportedImage  = errors.New("unsupported image type")
	ErrInvalidDomain     = errors.New("invalid domain name")
)

// LockedError names the feature a write was rejected for.
type LockedError struct {
	Feature  string
	PlanName string
	Required string
}

func (e *LockedError) Error() string { return ErrFeatureLocked.Error() + ": " + e.Feature }
func (e *LockedError) Unwrap() error { return ErrFeatureLocked }

// LimitError carries rich context for UI display
type LimitError struct {
	Err       error
	Current   int
	Limit     int
	PlanName  string
	UpgradeTo string
}

func (e *LimitError) Error() string { return e.Err.Error() }
func (e *LimitError) Unwrap() error { return e.Err }
