// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package portfolio

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// MatrixResult holds a pairwise asset statistic matrix.
type MatrixResult struct {
	// Matrix is assets x assets, indexed like the input return matrix.
	Matrix [][]float64

	Assets  int
	Periods int
}

// observationMatrix transposes an asset-major return matrix into the
// periods x assets layout gonum's covariance routines expect.
func observationMatrix(returns [][]float64) (*mat.Dense, int, int, error) {
	assets := len(returns)
	if assets == 0 {
		return nil, 0, 0, ErrEmptyInput
	}
	periods := len(returns[0])
	if periods == 0 {
		return nil, 0, 0, ErrEmptyInput
	}
	for _, series := range returns[1:] {
		if len(series) != periods {
			return nil, 0, 0, ErrDimensionMismatch
		}
	}

	x := mat.NewDense(periods, assets, nil)
	for j, series := range returns {
		for t, r := range series {
			x.Set(t, j, r)
		}
	}
	return x, assets, periods, nil
}

// CovarianceMatrix computes the sample covariance matrix of an
// asset-major return matrix.
//
// Inputs:
//   - returns: returns[i] is the return series of asset i. All series
//     must be non-empty and equal length.
//
// Outputs:
//   - *MatrixResult: Sample (ddof=1) covariances.
//   - error: ErrEmptyInput or ErrDimensionMismatch.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func CovarianceMatrix(returns [][]float64) (*MatrixResult, error) {
	x, assets, periods, err := observationMatrix(returns)
	if err != nil {
		return nil, err
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, x, nil)

	out := make([][]float64, assets)
	for i := range out {
		out[i] = make([]float64, assets)
		for j := range out[i] {
			out[i][j] = cov.At(i, j)
		}
	}
	return &MatrixResult{Matrix: out, Assets: assets, Periods: periods}, nil
}

// CorrelationMatrix computes the correlation matrix of an asset-major
// return matrix. Undefined entries from constant series (NaN) are
// reported as 0.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func CorrelationMatrix(returns [][]float64) (*MatrixResult, error) {
	x, assets, periods, err := observationMatrix(returns)
	if err != nil {
		return nil, err
	}

	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, x, nil)

	out := make([][]float64, assets)
	for i := range out {
		out[i] = make([]float64, assets)
		for j := range out[i] {
			v := corr.At(i, j)
			if math.IsNaN(v) {
				v = 0
			}
			out[i][j] = v
		}
	}
	return &MatrixResult{Matrix: out, Assets: assets, Periods: periods}, nil
}
