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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// OptimizationResult holds computed portfolio weights and the metrics
// they imply.
type OptimizationResult struct {
	Weights        []float64
	ExpectedReturn float64
	Volatility     float64
	SharpeRatio    float64
	Method         string
	Assets         int
}

// MinimumVariance computes the global minimum-variance portfolio from a
// covariance matrix.
//
// Description:
//
//	Solves the unconstrained closed form Cov^-1 * 1 / (1' * Cov^-1 * 1),
//	then clips each weight into [minWeight, maxWeight] and renormalizes
//	to sum 1. The clip step is a projection, not a full constrained
//	solve; with loose bounds it is exact.
//
// Inputs:
//   - expectedReturns: Per-asset expected returns, used only for the
//     reported return and Sharpe ratio.
//   - covariance: Square covariance matrix matching the asset count.
//   - riskFreeRate: Rate for the reported Sharpe ratio.
//   - minWeight, maxWeight: Per-asset weight bounds.
//
// Outputs:
//   - *OptimizationResult: Weights summing to 1 plus implied metrics.
//   - error: ErrEmptyInput, ErrDimensionMismatch, or
//     ErrSingularCovariance.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func MinimumVariance(expectedReturns []float64, covariance [][]float64, riskFreeRate, minWeight, maxWeight float64) (*OptimizationResult, error) {
	n := len(expectedReturns)
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

	ones := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		ones.SetVec(i, 1)
	}

	// Cov * x = 1 gives the unnormalized minimum-variance direction.
	var solved mat.VecDense
	if err := solved.SolveVec(sigma, ones); err != nil {
		return nil, ErrSingularCovariance
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = solved.AtVec(i)
	}
	total := floats.Sum(weights)
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, ErrSingularCovariance
	}
	floats.Scale(1/total, weights)

	for i, w := range weights {
		weights[i] = math.Min(math.Max(w, minWeight), maxWeight)
	}
	floats.Scale(1/floats.Sum(weights), weights)

	return summarize(weights, expectedReturns, covariance, riskFreeRate, "minimumVariance")
}

// EqualWeights returns a 1/n weight vector.
//
// Outputs:
//   - []float64: n equal weights summing to 1.
//   - error: ErrInvalidAssetCount when n <= 0.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func EqualWeights(n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidAssetCount
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	return weights, nil
}

// summarize computes the return, volatility, and Sharpe ratio implied
// by a weight vector.
func summarize(weights, expectedReturns []float64, covariance [][]float64, riskFreeRate float64, method string) (*OptimizationResult, error) {
	vol, err := Volatility(weights, covariance)
	if err != nil {
		return nil, err
	}

	expected := floats.Dot(weights, expectedReturns)
	sharpe := 0.0
	if vol.PortfolioVolatility > 0 {
		sharpe = (expected - riskFreeRate) / vol.PortfolioVolatility
	}

	return &OptimizationResult{
		Weights:        weights,
		ExpectedReturn: expected,
		Volatility:     vol.PortfolioVolatility,
		SharpeRatio:    sharpe,
		Method:         method,
		Assets:         len(weights),
	}, nil
}
