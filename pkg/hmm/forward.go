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

	"github.com/prometheus/client_golang/prometheus"
	"gonum.org/v1/gonum/floats"

	"github.com/railpath/finance-toolkit/pkg/gaussian"
)

// Forward runs the scaled forward recursion over an observation sequence.
//
// Description:
//
//	Step 0 seeds alpha with initial probability times emission density;
//	each later step propagates mass through the transition matrix and
//	multiplies by the emission density. Every row is renormalized to sum
//	to 1 and the normalization constant recorded, so the log-likelihood
//	is recovered as the sum of log scaling factors. A step whose row sums
//	to zero is left unscaled, skipped in the log-likelihood sum, and
//	counted in ZeroScaleSteps; later steps remain NaN-free because the
//	zero row simply propagates zero mass.
//
// Inputs:
//   - observations: T x D feature matrix, T >= 1. Read-only.
//   - model: The model parameters. Read-only, must validate.
//
// Outputs:
//   - *ForwardResult: Alpha, scaling factors, log-likelihood, diagnostics.
//   - error: Validation failure; never a numeric-degeneracy error.
//
// Thread Safety: Safe for concurrent use; the result is owned by the caller.
func Forward(observations [][]float64, model *Model) (*ForwardResult, error) {
	timer := prometheus.NewTimer(inferenceDuration.WithLabelValues("forward"))
	defer timer.ObserveDuration()

	if err := validateCall(observations, model); err != nil {
		inferenceTotal.WithLabelValues("forward", "error").Inc()
		return nil, err
	}

	T := len(observations)
	N := model.NumStates()

	alpha := make([][]float64, T)
	for t := range alpha {
		alpha[t] = make([]float64, N)
	}
	scaling := make([]float64, T)

	// Initialization: alpha[0][i] = pi_i * b_i(o_0).
	for i := 0; i < N; i++ {
		emission, err := emissionProb(observations[0], &model.Emissions[i])
		if err != nil {
			inferenceTotal.WithLabelValues("forward", "error").Inc()
			return nil, err
		}
		alpha[0][i] = model.Initial[i] * emission
	}
	zeroSteps := scaleRow(alpha[0], &scaling[0])

	// Recursion: alpha[t][j] = (sum_i alpha[t-1][i] * a_ij) * b_j(o_t).
	for t := 1; t < T; t++ {
		for j := 0; j < N; j++ {
			var sum float64
			for i := 0; i < N; i++ {
				sum += alpha[t-1][i] * model.Transition[i][j]
			}
			emission, err := emissionProb(observations[t], &model.Emissions[j])
			if err != nil {
				inferenceTotal.WithLabelValues("forward", "error").Inc()
				return nil, err
			}
			alpha[t][j] = sum * emission
		}
		zeroSteps += scaleRow(alpha[t], &scaling[t])
	}

	// Zero-scale steps carry no information; summing their logs would
	// poison the total with -Inf.
	var logLikelihood float64
	for _, s := range scaling {
		if s > 0 {
			logLikelihood += math.Log(s)
		}
	}

	if zeroSteps > 0 {
		zeroScaleSteps.Add(float64(zeroSteps))
	}
	inferenceTotal.WithLabelValues("forward", "ok").Inc()

	return &ForwardResult{
		Alpha:          alpha,
		ScalingFactors: scaling,
		LogLikelihood:  logLikelihood,
		ZeroScaleSteps: zeroSteps,
	}, nil
}

// scaleRow normalizes row in place by its sum, storing the sum in scale.
// Returns 1 if the row was degenerate (zero sum, left unscaled), else 0.
func scaleRow(row []float64, scale *float64) int {
	s := floats.Sum(row)
	*scale = s
	if s <= 0 {
		return 1
	}
	for i := range row {
		row[i] /= s
	}
	return 0
}

// emissionProb evaluates the direct-space emission density for one state.
// Underflow to zero is acceptable here; the scaling machinery absorbs it.
func emissionProb(obs []float64, params *EmissionParams) (float64, error) {
	logProb, err := gaussian.MultivariateLogPDF(obs, params.Means, params.Variances)
	if err != nil {
		// Shapes and variances were validated up front; reaching this
		// means the model was mutated mid-call.
		return 0, fmt.Errorf("emission density: %w", err)
	}
	return math.Exp(logProb), nil
}

// validateCall runs the shared model/observation validation.
func validateCall(observations [][]float64, model *Model) error {
	if err := model.Validate(); err != nil {
		return err
	}
	return model.validateObservations(observations)
}
