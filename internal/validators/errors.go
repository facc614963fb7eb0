package validators

import "errors"

// ErrValidation is matched by every FieldError.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Field-level failures. Their messages are safe to return to clients.
var (
	ErrEmptyUsername     = &FieldError{Field: FieldUsername, Message: "Username cannot be empty"}
	ErrEmptyPassword     = &FieldError{Field: FieldPassword, Message: "Password cannot be empty"}
	ErrEmptyTitle        = &FieldError{Field: FieldTitle, Message: "Title cannot be empty"}
	ErrShortInstructions = &FieldError{Field: FieldInstructions, Message: "Instructions must be at least 50 characters long"}
	ErrMinutesOutOfRange = &FieldError{Field: FieldMinutesToComplete, Message: "Minutes to complete is out of range"}
)

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Is makes every FieldError match ErrValidation.
func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}
