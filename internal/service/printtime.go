package service

import (
	"errors"
	"fmt"
)

// ErrInvalidPrintSpeed is returned when the print speed is not strictly positive.
var ErrInvalidPrintSpeed = errors.New("print speed must be positive")

// DefaultPrintSpeedCm3PerHr is the FDM deposition rate assumed when the
// request does not specify one.
const DefaultPrintSpeedCm3PerHr = 20.0

// PrintTimeEstimator converts volume, complexity, and infill into a
// print duration estimate. It is stateless and safe for concurrent use.
type PrintTimeEstimator struct{}

// NewPrintTimeEstimator creates a new print time estimator.
func NewPrintTimeEstimator() *PrintTimeEstimator {
	return &PrintTimeEstimator{}
}

// Estimate returns the estimated print time in hours.
//
// base = volume / speed, scaled by a complexity multiplier in [1.0, 2.0]
// and an infill multiplier in [0.8, 1.2]. Speed must be strictly
// positive; infill range checking is MassCostEstimator's contract and is
// not repeated here.
func (e *PrintTimeEstimator) Estimate(volumeCm3, complexityScore, infillFraction, printSpeedCm3PerHr float64) (float64, error) {
	if printSpeedCm3PerHr <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidPrintSpeed, printSpeedCm3PerHr)
	}

	baseTime := volumeCm3 / printSpeedCm3PerHr
	complexityMultiplier := 1.0 + complexityScore/maxComplexityScore
	infillMultiplier := 0.8 + infillFraction*0.4

	return baseTime * complexityMultiplier * infillMultiplier, nil
}
