package polygo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/polygo/store"
)

var (
	// ErrInvalidArgument is returned for malformed input such as length
	// mismatches, degenerate polygons, or non-finite coordinates and
	// coefficients.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConfiguration is returned when a query needs a feature the context
	// was not configured for, or when an option value is invalid.
	ErrConfiguration = errors.New("configuration error")

	// ErrResourceExhausted is returned when an index build does not fit the
	// memory budget. The context is unusable afterwards and should be closed.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrEmpty is returned by distance queries issued before any polygon was added.
	ErrEmpty = fmt.Errorf("%w: context holds no polygons", ErrInvalidArgument)

	// ErrSealed is returned by AddPolygon once a query has been served.
	ErrSealed = errors.New("context is sealed: polygons cannot be added after the first query")

	// ErrClosed is returned by every operation on a closed context.
	ErrClosed = errors.New("context is closed")

	// ErrNoCoefficients is returned by CustomVertexDistances on a context
	// created with zero coefficients per point.
	ErrNoCoefficients = fmt.Errorf("%w: %w: custom distances need coefficients per point > 0", ErrConfiguration, ErrInvalidArgument)
)

// ErrLengthMismatch indicates input slices of inconsistent length.
//
// It matches ErrInvalidArgument with errors.Is; the underlying error (if any)
// can be accessed via errors.As.
type ErrLengthMismatch struct {
	Field    string
	Expected int
	Actual   int
	cause    error
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch for %s: expected %d, got %d", e.Field, e.Expected, e.Actual)
}

func (e *ErrLengthMismatch) Unwrap() []error { return unwrapArgument(e.cause) }

// ErrTooFewPoints indicates a polygon with fewer than three points.
type ErrTooFewPoints struct {
	Count int
	cause error
}

func (e *ErrTooFewPoints) Error() string {
	return fmt.Sprintf("polygon needs at least %d points, got %d", store.MinPoints, e.Count)
}

func (e *ErrTooFewPoints) Unwrap() []error { return unwrapArgument(e.cause) }

func unwrapArgument(cause error) []error {
	if cause == nil {
		return []error{ErrInvalidArgument}
	}
	return []error{ErrInvalidArgument, cause}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var lm *store.ErrLengthMismatch
	if errors.As(err, &lm) {
		return &ErrLengthMismatch{Field: lm.Field, Expected: lm.Expected, Actual: lm.Actual, cause: err}
	}
	var tf *store.ErrTooFewPoints
	if errors.As(err, &tf) {
		return &ErrTooFewPoints{Count: tf.Count, cause: err}
	}
	if errors.Is(err, store.ErrInvalidArgument) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
