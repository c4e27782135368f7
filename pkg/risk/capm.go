// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package risk

import "gonum.org/v1/gonum/stat"

// BetaResult holds a CAPM beta computation.
type BetaResult struct {
	Beta              float64
	Covariance        float64
	BenchmarkVariance float64
	Correlation       float64
}

// Beta computes the CAPM beta of an asset against a benchmark: sample
// covariance over sample benchmark variance.
//
// Inputs:
//   - asset: Asset period returns. At least two are required.
//   - benchmark: Benchmark period returns. Must match len(asset).
//
// Outputs:
//   - *BetaResult: Beta with its covariance, variance, and correlation.
//   - error: ErrEmptyReturns or ErrLengthMismatch.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Beta(asset, benchmark []float64) (*BetaResult, error) {
	if len(asset) < 2 {
		return nil, ErrEmptyReturns
	}
	if len(asset) != len(benchmark) {
		return nil, ErrLengthMismatch
	}

	cov := stat.Covariance(asset, benchmark, nil)
	benchVar := stat.Variance(benchmark, nil)

	return &BetaResult{
		Beta:              cov / benchVar,
		Covariance:        cov,
		BenchmarkVariance: benchVar,
		Correlation:       stat.Correlation(asset, benchmark, nil),
	}, nil
}

// AlphaResult holds a Jensen's alpha computation.
type AlphaResult struct {
	// Alpha is the per-period excess return over the CAPM prediction.
	Alpha float64

	// AnnualizedAlpha is Alpha scaled by the annualization factor.
	AnnualizedAlpha float64

	Beta            float64
	AssetReturn     float64
	BenchmarkReturn float64
	ExpectedReturn  float64
}

// Alpha computes Jensen's alpha against the CAPM prediction
// R_f + beta * (R_benchmark - R_f).
//
// Inputs:
//   - asset: Asset period returns. At least two are required.
//   - benchmark: Benchmark period returns. Must match len(asset).
//   - riskFreeRate: Annualized risk-free rate.
//   - annualization: Periods per year.
//
// Outputs:
//   - *AlphaResult: Alpha, beta, and the annualized return components.
//   - error: ErrEmptyReturns or ErrLengthMismatch.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Alpha(asset, benchmark []float64, riskFreeRate float64, annualization int) (*AlphaResult, error) {
	b, err := Beta(asset, benchmark)
	if err != nil {
		return nil, err
	}

	assetReturn := stat.Mean(asset, nil) * float64(annualization)
	benchmarkReturn := stat.Mean(benchmark, nil) * float64(annualization)
	expected := riskFreeRate + b.Beta*(benchmarkReturn-riskFreeRate)
	annualizedAlpha := assetReturn - expected

	return &AlphaResult{
		Alpha:           annualizedAlpha / float64(annualization),
		AnnualizedAlpha: annualizedAlpha,
		Beta:            b.Beta,
		AssetReturn:     assetReturn,
		BenchmarkReturn: benchmarkReturn,
		ExpectedReturn:  expected,
	}, nil
}
