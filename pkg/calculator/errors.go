package calculator

import (
	"errors"
	"fmt"
)

// ErrUnknownRule is matched by every *UnknownRuleError.
var ErrUnknownRule = errors.New("unknown alignment rule")

// UnknownRuleError names the rule that could not be resolved.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownRule, e.Name)
}

func (e *UnknownRuleError) Is(target error) bool {
	return target == ErrUnknownRule
}

// DateParseError is returned when a report date is not MM/DD/YY.
type DateParseError struct {
	Country string
	Value   string
	Err     error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parse date %q for %s: %v", e.Value, e.Country, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
