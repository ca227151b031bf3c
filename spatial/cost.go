package spatial

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidCost is returned by Validate for a cost that cannot be evaluated.
var ErrInvalidCost = errors.New("invalid cost")

// DefaultDistanceScale is the factor the default cost applies to the
// Euclidean distance.
const DefaultDistanceScale = 0.995792

// Cost ranks vertices for the weighted nearest-vertex query. The cost of a
// vertex at Euclidean distance d is Distance(d) + Weight(coefficients).
type Cost interface {
	// Distance maps a Euclidean distance to its share of the cost.
	Distance(d float64) float64

	// Weight maps the coefficient vector of a vertex to its share of the cost.
	Weight(coefficients []float64) float64

	// Monotonic reports whether Distance is non-decreasing. The index only
	// prunes subtrees for monotonic costs and scans every vertex otherwise.
	Monotonic() bool
}

// LinearCost scales the distance and adds the sum of the first Terms
// coefficients. Terms <= 0 sums all coefficients.
type LinearCost struct {
	Scale float64
	Terms int
}

// DefaultCost returns 0.995792*d + c[0] + c[1].
func DefaultCost() LinearCost {
	return LinearCost{Scale: DefaultDistanceScale, Terms: 2}
}

// Distance implements Cost.
func (c LinearCost) Distance(d float64) float64 { return c.Scale * d }

// Weight implements Cost.
func (c LinearCost) Weight(coefficients []float64) float64 {
	n := len(coefficients)
	if c.Terms > 0 && c.Terms < n {
		n = c.Terms
	}
	return floats.Sum(coefficients[:n])
}

// Validate rejects a non-finite scale.
func (c LinearCost) Validate() error {
	if math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: scale %v is not finite", ErrInvalidCost, c.Scale)
	}
	return nil
}

// Monotonic implements Cost.
func (c LinearCost) Monotonic() bool { return c.Scale >= 0 && !math.IsNaN(c.Scale) }

// CostFuncs adapts plain functions to Cost. NonDecreasing must only be set
// when DistanceFunc is non-decreasing on [0, +Inf).
type CostFuncs struct {
	DistanceFunc  func(d float64) float64
	WeightFunc    func(coefficients []float64) float64
	NonDecreasing bool
}

// Distance implements Cost.
func (c CostFuncs) Distance(d float64) float64 { return c.DistanceFunc(d) }

// Weight implements Cost.
func (c CostFuncs) Weight(coefficients []float64) float64 {
	if c.WeightFunc == nil {
		return 0
	}
	return c.WeightFunc(coefficients)
}

// Monotonic implements Cost.
func (c CostFuncs) Monotonic() bool { return c.NonDecreasing }

// Validate rejects a missing DistanceFunc. A nil WeightFunc weighs zero.
func (c CostFuncs) Validate() error {
	if c.DistanceFunc == nil {
		return fmt.Errorf("%w: DistanceFunc is nil", ErrInvalidCost)
	}
	return nil
}
