// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package gaussian provides univariate and diagonal-covariance multivariate
// Gaussian densities in direct and log-space form.
//
// The multivariate forms assume conditional feature independence given the
// state (diagonal covariance): the joint density is the product of the
// per-feature univariate densities, and the joint log-density is their sum.
// There is no full-covariance variant; if one is ever needed, the right
// extension point is a separate emission-distribution type, not a flag here.
package gaussian

import (
	"errors"
	"fmt"
	"math"
)

// log(2*pi), precomputed for the closed-form log-density.
const log2Pi = 1.8378770664093453

// Package-level error definitions.
var (
	// ErrInvalidParameter indicates a parameter outside its valid domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDimensionMismatch indicates disagreeing vector lengths.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// InvalidParameterError reports a parameter outside its valid domain.
type InvalidParameterError struct {
	Param string
	Value float64
}

// Error implements the error interface.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %v", e.Param, e.Value)
}

// Unwrap returns the sentinel error.
func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// DimensionMismatchError reports disagreeing vector lengths.
type DimensionMismatchError struct {
	Want int
	Got  int
	Name string
}

// Error implements the error interface.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: %s has length %d, want %d", e.Name, e.Got, e.Want)
}

// Unwrap returns the sentinel error.
func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}

// PDF evaluates the univariate Gaussian density at x.
//
// Inputs:
//   - x: The point to evaluate.
//   - mean: The distribution mean.
//   - variance: The distribution variance. Must be strictly positive.
//
// Outputs:
//   - float64: The density value.
//   - error: An InvalidParameterError if variance <= 0.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func PDF(x, mean, variance float64) (float64, error) {
	if variance <= 0 {
		return 0, &InvalidParameterError{Param: "variance", Value: variance}
	}

	diff := x - mean
	return math.Exp(-diff*diff/(2*variance)) / math.Sqrt(2*math.Pi*variance), nil
}

// LogPDF evaluates the log of the univariate Gaussian density at x.
//
// Description:
//
//	Computed directly from the closed form
//	-0.5*(log(2*pi) + log(variance)) - (x-mean)^2/(2*variance)
//	rather than log(PDF(x)), so densities that underflow to zero in
//	direct space still yield finite log values.
//
// Inputs:
//   - x: The point to evaluate.
//   - mean: The distribution mean.
//   - variance: The distribution variance. Must be strictly positive.
//
// Outputs:
//   - float64: The log-density value.
//   - error: An InvalidParameterError if variance <= 0.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func LogPDF(x, mean, variance float64) (float64, error) {
	if variance <= 0 {
		return 0, &InvalidParameterError{Param: "variance", Value: variance}
	}

	diff := x - mean
	return -0.5*(log2Pi+math.Log(variance)) - diff*diff/(2*variance), nil
}

// MultivariatePDF evaluates the diagonal-covariance multivariate density.
//
// Inputs:
//   - x: The feature vector.
//   - means: Per-feature means. Must match len(x).
//   - variances: Per-feature variances. Must match len(x), all positive.
//
// Outputs:
//   - float64: The product of per-feature densities.
//   - error: A DimensionMismatchError on length disagreement, or an
//     InvalidParameterError on a non-positive variance.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func MultivariatePDF(x, means, variances []float64) (float64, error) {
	if err := checkDimensions(x, means, variances); err != nil {
		return 0, err
	}

	product := 1.0
	for i := range x {
		p, err := PDF(x[i], means[i], variances[i])
		if err != nil {
			return 0, err
		}
		product *= p
	}
	return product, nil
}

// MultivariateLogPDF evaluates the log of the diagonal-covariance density.
//
// Inputs:
//   - x: The feature vector.
//   - means: Per-feature means. Must match len(x).
//   - variances: Per-feature variances. Must match len(x), all positive.
//
// Outputs:
//   - float64: The sum of per-feature log-densities.
//   - error: A DimensionMismatchError on length disagreement, or an
//     InvalidParameterError on a non-positive variance.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func MultivariateLogPDF(x, means, variances []float64) (float64, error) {
	if err := checkDimensions(x, means, variances); err != nil {
		return 0, err
	}

	var logSum float64
	for i := range x {
		lp, err := LogPDF(x[i], means[i], variances[i])
		if err != nil {
			return 0, err
		}
		logSum += lp
	}
	return logSum, nil
}

func checkDimensions(x, means, variances []float64) error {
	if len(means) != len(x) {
		return &DimensionMismatchError{Want: len(x), Got: len(means), Name: "means"}
	}
	if len(variances) != len(x) {
		return &DimensionMismatchError{Want: len(x), Got: len(variances), Name: "variances"}
	}
	return nil
}
