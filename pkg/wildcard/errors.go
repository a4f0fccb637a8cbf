package wildcard

import (
	"errors"
	"fmt"
)

var ErrInvalidPattern = errors.New("invalid wildcard pattern")

const (
	reasonUnmatchedBracket  = "unmatched ]"
	reasonUnterminatedClass = "unterminated character class"
	reasonTooManyStars      = "sequence of three or more *"
)

// InvalidPatternError is returned when a pattern cannot be tokenized.
// It is only ever produced at compile time, never while matching.
type InvalidPatternError struct {
	Pattern string
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("%q is not a valid wildcard pattern (%s)", e.Pattern, e.Reason)
}

func (e *InvalidPatternError) Unwrap() error {
	return ErrInvalidPattern
}

func invalidPattern(pattern, reason string) error {
	return &InvalidPatternError{Pattern: pattern, Reason: reason}
}
