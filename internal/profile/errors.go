package profile

import "fmt"

// ParseError reports a column whose height suffix does not parse as a
// non-negative base-10 integer. It indicates a naming-convention violation
// in the dataset, not a recoverable condition.
type ParseError struct {
	Column string
	Suffix string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %q: height suffix %q is not a valid non-negative integer", e.Column, e.Suffix)
}

// DomainError reports an input outside the mathematical domain of an
// operation (non-positive value where strictly positive is required, or a
// zero-variance regression predictor).
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// ShapeError reports paired input sequences whose lengths rule out the
// computation.
type ShapeError struct {
	Op      string
	Heights int
	Speeds  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: need equal-length heights and speeds with at least 2 points, got %d heights and %d speeds",
		e.Op, e.Heights, e.Speeds)
}
