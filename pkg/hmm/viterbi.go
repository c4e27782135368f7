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
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/railpath/finance-toolkit/pkg/gaussian"
)

// probFloor clamps zero probabilities before the log conversion, turning a
// structurally forbidden transition into a large finite penalty (~ -690.7)
// instead of -Inf, which would otherwise poison every downstream max.
const probFloor = 1e-300

// Viterbi decodes the single most probable hidden-state path.
//
// Description:
//
//	Log-space max-product dynamic program: delta[t][j] is the best
//	log-probability of any path ending in state j at step t, and psi
//	records the maximizing predecessor for back-pointer reconstruction.
//	Initial and transition probabilities are clamped to probFloor before
//	the log conversion. Ties break to the lowest state index (strict
//	greater-than comparison), making decoding fully deterministic.
//
//	The full sequence must be known in advance; there is no partial or
//	incremental decoding.
//
// Inputs:
//   - observations: T x D feature matrix, T >= 1. Read-only.
//   - model: The model parameters. Read-only, must validate.
//
// Outputs:
//   - *ViterbiResult: The decoded path and its log-probability.
//   - error: Validation failure.
//
// Thread Safety: Safe for concurrent use; the result is owned by the caller.
func Viterbi(observations [][]float64, model *Model) (*ViterbiResult, error) {
	timer := prometheus.NewTimer(inferenceDuration.WithLabelValues("viterbi"))
	defer timer.ObserveDuration()

	if err := validateCall(observations, model); err != nil {
		inferenceTotal.WithLabelValues("viterbi", "error").Inc()
		return nil, err
	}

	T := len(observations)
	N := model.NumStates()

	logInitial := make([]float64, N)
	for i, p := range model.Initial {
		logInitial[i] = math.Log(math.Max(p, probFloor))
	}
	logTransition := make([][]float64, N)
	for i, row := range model.Transition {
		logTransition[i] = make([]float64, N)
		for j, p := range row {
			logTransition[i][j] = math.Log(math.Max(p, probFloor))
		}
	}

	delta := make([][]float64, T)
	psi := make([][]int, T)
	for t := range delta {
		delta[t] = make([]float64, N)
		psi[t] = make([]int, N)
	}

	// Initialization.
	for i := 0; i < N; i++ {
		logEmission, err := gaussian.MultivariateLogPDF(
			observations[0], model.Emissions[i].Means, model.Emissions[i].Variances)
		if err != nil {
			inferenceTotal.WithLabelValues("viterbi", "error").Inc()
			return nil, err
		}
		delta[0][i] = logInitial[i] + logEmission
	}

	// Recursion.
	for t := 1; t < T; t++ {
		for j := 0; j < N; j++ {
			maxProb := math.Inf(-1)
			maxState := 0
			for i := 0; i < N; i++ {
				if p := delta[t-1][i] + logTransition[i][j]; p > maxProb {
					maxProb = p
					maxState = i
				}
			}

			logEmission, err := gaussian.MultivariateLogPDF(
				observations[t], model.Emissions[j].Means, model.Emissions[j].Variances)
			if err != nil {
				inferenceTotal.WithLabelValues("viterbi", "error").Inc()
				return nil, err
			}
			delta[t][j] = maxProb + logEmission
			psi[t][j] = maxState
		}
	}

	// Termination: best final state, lowest index on exact ties.
	bestProb := math.Inf(-1)
	bestState := 0
	for i := 0; i < N; i++ {
		if delta[T-1][i] > bestProb {
			bestProb = delta[T-1][i]
			bestState = i
		}
	}

	// Backtrack.
	path := make([]int, T)
	path[T-1] = bestState
	for t := T - 2; t >= 0; t-- {
		path[t] = psi[t+1][path[t+1]]
	}

	inferenceTotal.WithLabelValues("viterbi", "ok").Inc()
	return &ViterbiResult{Path: path, LogProbability: bestProb}, nil
}
