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
)

// VolatilityResult holds a portfolio volatility computation.
type VolatilityResult struct {
	PortfolioVolatility float64

	// AnnualizedPortfolioVolatility scales by sqrt(252).
	AnnualizedPortfolioVolatility float64

	PortfolioVariance float64
}

// Volatility computes portfolio volatility as sqrt(w' * Cov * w).
//
// Inputs:
//   - weights: Asset weights.
//   - covariance: Square covariance matrix matching len(weights).
//
// Outputs:
//   - *VolatilityResult: Variance and (annualized) volatility.
//   - error: ErrEmptyInput or ErrDimensionMismatch.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Volatility(weights []float64, covariance [][]float64) (*VolatilityResult, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(covariance) != n {
		return nil, ErrDimensionMismatch
	}

	sigma := mat.NewDense(n, n, nil)
	for i, row := range covariance {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
		sigma.SetRow(i, row)
	}

	w := mat.NewVecDense(n, weights)
	variance := mat.Inner(w, sigma, w)
	vol := math.Sqrt(variance)

	return &VolatilityResult{
		PortfolioVolatility:           vol,
		AnnualizedPortfolioVolatility: vol * math.Sqrt(252),
		PortfolioVariance:             variance,
	}, nil
}
