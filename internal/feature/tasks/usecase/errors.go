package usecase

import "errors"

// Sentinel errors returned by the task usecase.
var (
	// ErrTaskNotFound indicates that no task matched the id under the
	// requesting owner. A task owned by someone else reports the same error,
	// so the existence of other users' tasks is never revealed.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTaskID indicates a malformed task identifier. Returned before
	// any query is made.
	ErrInvalidTaskID = errors.New("invalid task id format")

	// ErrTitleRequired indicates an empty title after trimming.
	ErrTitleRequired = errors.New("title is required")

	// ErrTitleTooLong indicates a title over 200 characters.
	ErrTitleTooLong = errors.New("title cannot exceed 200 characters")

	// ErrDescriptionTooLong indicates a description over 1000 characters.
	ErrDescriptionTooLong = errors.New("description cannot exceed 1000 characters")

	// ErrInvalidPriority indicates a priority outside low/medium/high.
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
)

// IsValidationError reports whether err is one of the input-validation
// sentinels, which handlers map to a 400 response.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTaskID) ||
		errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrDescriptionTooLong) ||
		errors.Is(err, ErrInvalidPriority)
}
