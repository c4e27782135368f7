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
	"github.com/prometheus/client_golang/prometheus"
)

// Backward runs the scaled backward recursion over an observation sequence.
//
// Description:
//
//	The final row is seeded with ones, and each earlier step sums
//	transition probability times emission density times the following
//	step's beta. Every row is divided by the forward pass's scaling
//	factor for that step (zero factors leave the row undivided), so Beta
//	is on the same scale as Alpha and the two combine directly into
//	state-occupancy posteriors.
//
//	The scaling factors MUST come from Forward over the same
//	observations and model. Their origin is not (and cannot be)
//	validated; passing self-computed or mismatched factors yields a
//	numerically meaningless Beta matrix. This is the caller's ordering
//	contract.
//
// Inputs:
//   - observations: T x D feature matrix, T >= 1. Read-only.
//   - model: The model parameters. Read-only, must validate.
//   - scalingFactors: The length-T vector produced by Forward.
//
// Outputs:
//   - *BackwardResult: The scaled Beta matrix.
//   - error: Validation failure, including a scaling-factor length mismatch.
//
// Thread Safety: Safe for concurrent use; the result is owned by the caller.
func Backward(observations [][]float64, model *Model, scalingFactors []float64) (*BackwardResult, error) {
	timer := prometheus.NewTimer(inferenceDuration.WithLabelValues("backward"))
	defer timer.ObserveDuration()

	if err := validateCall(observations, model); err != nil {
		inferenceTotal.WithLabelValues("backward", "error").Inc()
		return nil, err
	}
	T := len(observations)
	if len(scalingFactors) != T {
		inferenceTotal.WithLabelValues("backward", "error").Inc()
		return nil, &DimensionMismatchError{Field: "scalingFactors", Want: T, Got: len(scalingFactors)}
	}

	N := model.NumStates()
	beta := make([][]float64, T)
	for t := range beta {
		beta[t] = make([]float64, N)
	}

	// Initialization: beta[T-1][i] = 1, scaled like the forward row.
	for i := 0; i < N; i++ {
		beta[T-1][i] = 1
	}
	divideRow(beta[T-1], scalingFactors[T-1])

	// Recursion: beta[t][i] = sum_j a_ij * b_j(o_{t+1}) * beta[t+1][j].
	for t := T - 2; t >= 0; t-- {
		// Emission densities at t+1 are shared across source states.
		emissions := make([]float64, N)
		for j := 0; j < N; j++ {
			e, err := emissionProb(observations[t+1], &model.Emissions[j])
			if err != nil {
				inferenceTotal.WithLabelValues("backward", "error").Inc()
				return nil, err
			}
			emissions[j] = e
		}

		for i := 0; i < N; i++ {
			var sum float64
			for j := 0; j < N; j++ {
				sum += model.Transition[i][j] * emissions[j] * beta[t+1][j]
			}
			beta[t][i] = sum
		}
		divideRow(beta[t], scalingFactors[t])
	}

	inferenceTotal.WithLabelValues("backward", "ok").Inc()
	return &BackwardResult{Beta: beta}, nil
}

// divideRow divides row in place by scale, leaving it untouched when the
// scale is zero (the degenerate-step policy shared with the forward pass).
func divideRow(row []float64, scale float64) {
	if scale <= 0 {
		return
	}
	for i := range row {
		row[i] /= scale
	}
}
