package store

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the class of every validation error in this package.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNegativeArity is returned for a negative coefficients-per-point value.
	ErrNegativeArity = fmt.Errorf("%w: coefficients per point must not be negative", ErrInvalidArgument)
)

// ErrLengthMismatch indicates that a per-vertex input slice has the wrong length.
type ErrLengthMismatch struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch for %s: expected %d, got %d", e.Field, e.Expected, e.Actual)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrTooFewPoints indicates a polygon with fewer than MinPoints vertices.
type ErrTooFewPoints struct {
	Count int
}

func (e *ErrTooFewPoints) Error() string {
	return fmt.Sprintf("polygon needs at least %d points, got %d", MinPoints, e.Count)
}

func (e *ErrTooFewPoints) Unwrap() error { return ErrInvalidArgument }

// ErrInvalidCoordinate indicates a NaN or infinite vertex coordinate.
type ErrInvalidCoordinate struct {
	Position int
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("vertex %d has a non-finite coordinate", e.Position)
}

func (e *ErrInvalidCoordinate) Unwrap() error { return ErrInvalidArgument }

// ErrInvalidCoefficient indicates a NaN or infinite coefficient.
type ErrInvalidCoefficient struct {
	Position int // vertex within the polygon
	Index    int // coefficient within the vertex
}

func (e *ErrInvalidCoefficient) Error() string {
	return fmt.Sprintf("vertex %d has a non-finite coefficient at index %d", e.Position, e.Index)
}

func (e *ErrInvalidCoefficient) Unwrap() error { return ErrInvalidArgument }
