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

import "math"

// VolatilityResult holds a volatility estimate and the variance it was
// derived from.
type VolatilityResult struct {
	Volatility float64
	Variance   float64
	Periods    int
}

// EWMAVolatility computes exponentially weighted moving average
// volatility over a return series.
//
// Description:
//
//	The variance is seeded with the first squared return and updated as
//	variance = lambda*variance + (1-lambda)*r^2 for each later return.
//	Higher lambda decays old observations more slowly (RiskMetrics uses
//	0.94 for daily data).
//
// Inputs:
//   - returns: Period returns. Must be non-empty.
//   - lambda: Decay factor, strictly between 0 and 1.
//
// Outputs:
//   - *VolatilityResult: The EWMA volatility and final variance.
//   - error: ErrEmptyReturns or ErrInvalidLambda.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func EWMAVolatility(returns []float64, lambda float64) (*VolatilityResult, error) {
	if lambda <= 0 || lambda >= 1 {
		return nil, ErrInvalidLambda
	}
	if len(returns) == 0 {
		return nil, ErrEmptyReturns
	}

	variance := returns[0] * returns[0]
	for _, r := range returns[1:] {
		variance = lambda*variance + (1-lambda)*r*r
	}

	return &VolatilityResult{
		Volatility: math.Sqrt(variance),
		Variance:   variance,
		Periods:    len(returns),
	}, nil
}

// GarmanKlassVolatility estimates volatility from OHLC bars.
//
// Description:
//
//	Per-bar variance is 0.5*ln(H/L)^2 - (2 ln 2 - 1)*ln(C/O)^2, averaged
//	across bars. The estimator can go slightly negative on quiet bars;
//	a negative average is clamped to zero.
//
// Inputs:
//   - open, high, low, close: Equal-length positive price series.
//
// Outputs:
//   - *VolatilityResult: The range-based volatility estimate.
//   - error: ErrEmptyPrices, ErrLengthMismatch, or ErrInvalidPrices when
//     a price is non-positive or high < low.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func GarmanKlassVolatility(open, high, low, close []float64) (*VolatilityResult, error) {
	n := len(open)
	if n == 0 {
		return nil, ErrEmptyPrices
	}
	if len(high) != n || len(low) != n || len(close) != n {
		return nil, ErrLengthMismatch
	}

	const coeff = 2*math.Ln2 - 1

	var sumVariance float64
	for i := 0; i < n; i++ {
		if open[i] <= 0 || high[i] <= 0 || low[i] <= 0 || close[i] <= 0 {
			return nil, ErrInvalidPrices
		}
		if high[i] < low[i] {
			return nil, ErrInvalidPrices
		}

		hl := math.Log(high[i] / low[i])
		co := math.Log(close[i] / open[i])
		sumVariance += 0.5*hl*hl - coeff*co*co
	}

	variance := sumVariance / float64(n)
	if variance < 0 {
		variance = 0
	}

	return &VolatilityResult{
		Volatility: math.Sqrt(variance),
		Variance:   variance,
		Periods:    n,
	}, nil
}

// ParkinsonVolatility estimates volatility from high/low ranges using
// the 1/(4 ln 2) scaling.
//
// Inputs:
//   - high, low: Equal-length positive price series.
//
// Outputs:
//   - *VolatilityResult: The range-based volatility estimate.
//   - error: ErrEmptyPrices, ErrLengthMismatch, or ErrInvalidPrices.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func ParkinsonVolatility(high, low []float64) (*VolatilityResult, error) {
	n := len(high)
	if n == 0 {
		return nil, ErrEmptyPrices
	}
	if len(low) != n {
		return nil, ErrLengthMismatch
	}

	var sumVariance float64
	for i := 0; i < n; i++ {
		if high[i] <= 0 || low[i] <= 0 {
			return nil, ErrInvalidPrices
		}
		if high[i] < low[i] {
			return nil, ErrInvalidPrices
		}

		hl := math.Log(high[i] / low[i])
		sumVariance += hl * hl / (4 * math.Ln2)
	}

	variance := sumVariance / float64(n)
	return &VolatilityResult{
		Volatility: math.Sqrt(variance),
		Variance:   variance,
		Periods:    n,
	}, nil
}
