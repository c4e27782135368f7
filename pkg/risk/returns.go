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

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ReturnMethod selects between simple and log return computation.
type ReturnMethod string

const (
	// Simple computes (p[i] - p[i-1]) / p[i-1].
	Simple ReturnMethod = "simple"

	// Log computes ln(p[i] / p[i-1]).
	Log ReturnMethod = "log"
)

// ReturnsResult holds a return series derived from prices plus its
// summary statistics.
type ReturnsResult struct {
	Method  ReturnMethod
	Returns []float64
	Periods int

	MeanReturn float64

	// StandardDeviation is the population (ddof=0) standard deviation of
	// the return series.
	StandardDeviation float64

	// TotalReturn is the compound total return for Simple, and the sum of
	// log returns for Log.
	TotalReturn float64
}

// Returns derives a period return series from a price series.
//
// Inputs:
//   - prices: Price observations. At least two are required.
//   - method: Simple or Log.
//
// Outputs:
//   - *ReturnsResult: len(prices)-1 returns with summary statistics.
//   - error: ErrEmptyPrices with fewer than two prices, ErrInvalidPrices
//     on a non-positive price.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Returns(prices []float64, method ReturnMethod) (*ReturnsResult, error) {
	if len(prices) < 2 {
		return nil, ErrEmptyPrices
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] <= 0 || prices[i] <= 0 {
			return nil, ErrInvalidPrices
		}
		if method == Log {
			returns = append(returns, math.Log(prices[i]/prices[i-1]))
		} else {
			returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
		}
	}

	total := 0.0
	if method == Log {
		for _, r := range returns {
			total += r
		}
	} else {
		total = 1.0
		for _, r := range returns {
			total *= 1 + r
		}
		total -= 1
	}

	return &ReturnsResult{
		Method:            method,
		Returns:           returns,
		Periods:           len(returns),
		MeanReturn:        stat.Mean(returns, nil),
		StandardDeviation: stat.PopStdDev(returns, nil),
		TotalReturn:       total,
	}, nil
}
