// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package hmm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// stochasticTolerance is the allowed deviation of a probability row sum from 1.
const stochasticTolerance = 1e-9

// EmissionParams holds the diagonal-covariance Gaussian parameters for one
// hidden state. Means and Variances must have the same length (the feature
// dimension D), and every variance must be strictly positive.
type EmissionParams struct {
	// Means is the per-feature emission mean vector.
	Means []float64

	// Variances is the per-feature emission variance vector.
	Variances []float64
}

// Model is a hidden Markov model with Gaussian emissions.
//
// Description:
//
//	Transition is the N x N state-transition matrix (rows sum to 1),
//	Emissions the N per-state Gaussian parameter records, and Initial
//	the length-N initial state distribution (sums to 1).
//
// Thread Safety: A Model is read-only during inference and may be shared
// across concurrently running inference calls.
type Model struct {
	// Transition is the N x N row-stochastic transition matrix.
	Transition [][]float64

	// Emissions holds one parameter record per state.
	Emissions []EmissionParams

	// Initial is the length-N initial state distribution.
	Initial []float64
}

// ForwardResult is the output of the scaled forward recursion.
type ForwardResult struct {
	// Alpha is the T x N scaled forward-probability matrix. Each row sums
	// to 1 except rows from zero-scale degenerate steps.
	Alpha [][]float64

	// ScalingFactors holds the per-step normalization constants; entry t
	// is the unscaled row sum at step t.
	ScalingFactors []float64

	// LogLikelihood is the sequence log-likelihood, the sum of
	// log(ScalingFactors[t]) over strictly positive scaling factors.
	LogLikelihood float64

	// ZeroScaleSteps counts time steps whose scaling factor was zero.
	// Non-zero values mean the model assigned no probability mass to at
	// least one observation and LogLikelihood omits those steps.
	ZeroScaleSteps int
}

// BackwardResult is the output of the scaled backward recursion.
type BackwardResult struct {
	// Beta is the T x N scaled backward-probability matrix, scaled with
	// the forward pass's scaling factors.
	Beta [][]float64
}

// ViterbiResult is the output of Viterbi decoding.
type ViterbiResult struct {
	// Path is the most probable hidden-state sequence, one state index in
	// [0, N) per time step.
	Path []int

	// LogProbability is the log-probability of Path under the model.
	LogProbability float64
}

// NumStates returns the number of hidden states N.
func (m *Model) NumStates() int {
	return len(m.Initial)
}

// NumFeatures returns the feature dimension D, or 0 for an empty model.
func (m *Model) NumFeatures() int {
	if len(m.Emissions) == 0 {
		return 0
	}
	return len(m.Emissions[0].Means)
}

// Validate checks the model's structural and stochastic invariants.
//
// Description:
//
//	Verifies N >= 1, an N x N transition matrix with rows summing to 1
//	within tolerance, an initial distribution summing to 1, one emission
//	record per state with consistent feature dimension, and strictly
//	positive variances. Degenerate numerics during inference (zero-mass
//	rows) are handled by fallback policies and are not validated here.
//
// Outputs:
//   - error: A DimensionMismatchError or InvalidParameterError, or nil.
//
// Thread Safety: Safe for concurrent use on an unmodified model.
func (m *Model) Validate() error {
	n := m.NumStates()
	if n < 1 {
		return &InvalidParameterError{Field: "initial", Reason: "need at least one state"}
	}
	if len(m.Transition) != n {
		return &DimensionMismatchError{Field: "transition rows", Want: n, Got: len(m.Transition)}
	}
	if len(m.Emissions) != n {
		return &DimensionMismatchError{Field: "emissions", Want: n, Got: len(m.Emissions)}
	}

	for i, row := range m.Transition {
		if len(row) != n {
			return &DimensionMismatchError{Field: fmt.Sprintf("transition row %d", i), Want: n, Got: len(row)}
		}
		if err := checkStochastic(fmt.Sprintf("transition row %d", i), row); err != nil {
			return err
		}
	}
	if err := checkStochastic("initial", m.Initial); err != nil {
		return err
	}

	d := m.NumFeatures()
	for i, e := range m.Emissions {
		if len(e.Means) != d {
			return &DimensionMismatchError{Field: fmt.Sprintf("emissions[%d].means", i), Want: d, Got: len(e.Means)}
		}
		if len(e.Variances) != d {
			return &DimensionMismatchError{Field: fmt.Sprintf("emissions[%d].variances", i), Want: d, Got: len(e.Variances)}
		}
		for j, v := range e.Variances {
			if v <= 0 {
				return &InvalidParameterError{
					Field:  fmt.Sprintf("emissions[%d].variances[%d]", i, j),
					Reason: fmt.Sprintf("must be strictly positive, got %v", v),
				}
			}
		}
	}
	return nil
}

// checkStochastic verifies entries are non-negative and sum to 1.
func checkStochastic(field string, probs []float64) error {
	for i, p := range probs {
		if p < 0 || math.IsNaN(p) {
			return &InvalidParameterError{
				Field:  fmt.Sprintf("%s[%d]", field, i),
				Reason: fmt.Sprintf("probabilities must be non-negative, got %v", p),
			}
		}
	}
	if sum := floats.Sum(probs); math.Abs(sum-1) > stochasticTolerance {
		return &InvalidParameterError{
			Field:  field,
			Reason: fmt.Sprintf("must sum to 1, got %v", sum),
		}
	}
	return nil
}

// validateObservations checks the observation matrix against the model.
func (m *Model) validateObservations(observations [][]float64) error {
	if len(observations) == 0 {
		return ErrEmptyObservations
	}
	d := m.NumFeatures()
	for t, obs := range observations {
		if len(obs) != d {
			return &DimensionMismatchError{Field: fmt.Sprintf("observations[%d]", t), Want: d, Got: len(obs)}
		}
	}
	return nil
}
