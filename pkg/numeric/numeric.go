// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package numeric provides numerically stable primitives for probability
// computations: log-sum-exp reduction and row/vector normalization with a
// uniform-distribution fallback for degenerate (zero or non-finite) mass.
//
// Degenerate inputs are a policy, not an error: a zero-sum row is replaced
// by the maximum-entropy uniform distribution instead of propagating a
// division by zero. Callers that need hard failures must check before
// normalizing.
package numeric

import (
	"errors"
	"math"
)

// Package-level error definitions.
var (
	// ErrEmptyInput indicates a reduction was called on an empty slice.
	ErrEmptyInput = errors.New("empty input")
)

// LogSumExp computes log(sum(exp(values))) without overflow or underflow.
//
// Description:
//
//	Subtracts the maximum value before exponentiating and adds it back
//	afterwards, keeping every intermediate exponent at or below zero.
//	Entries of -Inf represent probability zero and contribute nothing;
//	an input of only -Inf entries returns -Inf (total mass zero), not NaN.
//
// Inputs:
//   - values: Log-probabilities. Must be non-empty.
//
// Outputs:
//   - float64: log of the summed probabilities.
//   - error: ErrEmptyInput if values is empty.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func LogSumExp(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	maxVal := math.Inf(-1)
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}

	// All entries are -Inf: total probability mass is zero.
	if math.IsInf(maxVal, -1) {
		return math.Inf(-1), nil
	}

	var sum float64
	for _, v := range values {
		sum += math.Exp(v - maxVal)
	}

	return maxVal + math.Log(sum), nil
}

// NormalizeVector scales values so they sum to 1.
//
// Description:
//
//	Divides each entry by the total. A zero or non-finite total is
//	replaced by the uniform distribution 1/len per entry rather than
//	producing NaN or Inf. The operation is idempotent: normalizing an
//	already-normalized vector changes nothing beyond floating tolerance.
//
// Inputs:
//   - values: The vector to normalize. An empty slice returns an empty slice.
//
// Outputs:
//   - []float64: A newly allocated normalized vector.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func NormalizeVector(values []float64) []float64 {
	result := make([]float64, len(values))
	if len(values) == 0 {
		return result
	}

	var total float64
	for _, v := range values {
		total += v
	}

	if total == 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		uniform := 1.0 / float64(len(values))
		for i := range result {
			result[i] = uniform
		}
		return result
	}

	for i, v := range values {
		result[i] = v / total
	}
	return result
}

// NormalizeRows normalizes each row of a matrix to sum to 1.
//
// Description:
//
//	Applies the NormalizeVector policy row by row: rows with zero or
//	non-finite sums become uniform distributions.
//
// Inputs:
//   - matrix: The matrix to normalize. Rows may have differing lengths.
//
// Outputs:
//   - [][]float64: A newly allocated matrix with normalized rows.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func NormalizeRows(matrix [][]float64) [][]float64 {
	result := make([][]float64, len(matrix))
	for i, row := range matrix {
		result[i] = NormalizeVector(row)
	}
	return result
}
