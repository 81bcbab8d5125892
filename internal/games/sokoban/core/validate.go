package core

import "fmt"

// Validation error codes.
const (
	CodeBadDimensions     = "BAD_DIMENSIONS"
	CodeNilMap            = "NIL_MAP"
	CodePlayerOutOfBounds = "PLAYER_OUT_OF_BOUNDS"
	CodePlayerOnWall      = "PLAYER_ON_WALL"
	CodePlayerOnBox       = "PLAYER_ON_BOX"
	CodeBoxOutOfBounds    = "BOX_OUT_OF_BOUNDS"
	CodeBoxOnWall         = "BOX_ON_WALL"
	CodeDuplicateBox      = "DUPLICATE_BOX"
)

// ValidationError contains details about a rejected map or world.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) ValidationError {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
