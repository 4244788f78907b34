package errorvalues

import "errors"

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrMealNotFound    = errors.New("meal doesn't exist")
	ErrWrongOwner      = errors.New("entity belongs to another user")
	ErrProfileNotFound = errors.New("profile doesn't exist")
	ErrBadgeExists     = errors.New("badge already awarded")
	ErrStreakConflict  = errors.New("streak was modified concurrently")
	ErrStreakNotSaved  = errors.New("meal saved but streak wasn't updated")
	ErrBadgeNotAwarded = errors.New("streak updated but badge wasn't awarded")
	ErrLockNotAcquired = errors.New("lock is held by another request")
	ErrValidation      = errors.New("validation error")
	ErrRateLimited     = errors.New("too many requests")
	ErrAnalyzerTimeout = errors.New("meal analysis timed out")
	ErrAnalyzerStatus  = errors.New("meal analysis service returned an error")
	ErrAnalyzerPayload = errors.New("meal analysis returned malformed payload")
	ErrImageStoreOff   = errors.New("image storage isn't configured")
)
