// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package features derives standardized observation matrices from raw price
// series: simple returns, trailing-window volatility, and the default
// two-column (return, volatility) feature matrix used by the regime model.
//
// All statistics are population statistics (divide by count, not count-1).
package features

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Package-level error definitions.
var (
	// ErrInvalidParameter indicates an input outside its valid domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientPrices indicates too few prices for the computation.
	// It matches ErrInvalidParameter under errors.Is.
	ErrInsufficientPrices = fmt.Errorf("%w: insufficient prices", ErrInvalidParameter)

	// ErrInvalidWindow indicates a non-positive or oversized window.
	// It matches ErrInvalidParameter under errors.Is.
	ErrInvalidWindow = fmt.Errorf("%w: invalid window", ErrInvalidParameter)
)

// ComputeReturns computes simple period-over-period returns.
//
// Description:
//
//	Return at step i is (price[i] - price[i-1]) / price[i-1], producing a
//	series one element shorter than the input.
//
// Inputs:
//   - prices: The price series. Must contain at least 2 prices.
//
// Outputs:
//   - []float64: The return series of length len(prices)-1.
//   - error: ErrInsufficientPrices if fewer than 2 prices.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func ComputeReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 prices, got %d", ErrInsufficientPrices, len(prices))
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}
	return returns, nil
}

// RollingVolatility computes trailing-window volatility of returns.
//
// Description:
//
//	Converts prices to simple returns, then for each return index
//	i >= window-1 computes the population standard deviation over the
//	trailing window returns. The result has len(prices)-window entries.
//
// Inputs:
//   - prices: The price series. Must yield at least window returns.
//   - window: The trailing window length. Must be positive.
//
// Outputs:
//   - []float64: One volatility per fully covered return index.
//   - error: ErrInvalidWindow or ErrInsufficientPrices.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func RollingVolatility(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", ErrInvalidWindow, window)
	}

	returns, err := ComputeReturns(prices)
	if err != nil {
		return nil, err
	}
	if len(returns) < window {
		return nil, fmt.Errorf("%w: need at least %d prices for window %d, got %d",
			ErrInsufficientPrices, window+1, window, len(prices))
	}

	volatilities := make([]float64, 0, len(returns)-window+1)
	for i := window - 1; i < len(returns); i++ {
		vol := stat.PopStdDev(returns[i-window+1:i+1], nil)
		volatilities = append(volatilities, vol)
	}
	return volatilities, nil
}

// ExtractDefaultFeatures builds the standardized T x 2 observation matrix.
//
// Description:
//
//	Column 0 is the simple return, column 1 the trailing-window
//	volatility. The return series is trimmed to the (shorter) volatility
//	series so both columns align on the same periods, giving
//	T = len(prices) - window rows. Each column is then z-scored with
//	population statistics; a zero-variance column is set to all zeros
//	instead of dividing by zero.
//
// Inputs:
//   - prices: The price series.
//   - window: The volatility window. Must be positive.
//
// Outputs:
//   - [][]float64: The T x 2 standardized feature matrix.
//   - error: ErrInvalidWindow or ErrInsufficientPrices.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func ExtractDefaultFeatures(prices []float64, window int) ([][]float64, error) {
	returns, err := ComputeReturns(prices)
	if err != nil {
		return nil, err
	}
	volatilities, err := RollingVolatility(prices, window)
	if err != nil {
		return nil, err
	}

	// Align on the volatility series: keep the trailing returns.
	aligned := returns[len(returns)-len(volatilities):]

	matrix := make([][]float64, len(volatilities))
	for i := range matrix {
		matrix[i] = []float64{aligned[i], volatilities[i]}
	}

	standardizeColumns(matrix)
	return matrix, nil
}

// standardizeColumns z-scores each column in place using population
// statistics. Zero-variance columns become all zeros.
func standardizeColumns(matrix [][]float64) {
	if len(matrix) == 0 {
		return
	}

	column := make([]float64, len(matrix))
	for col := range matrix[0] {
		for i := range matrix {
			column[i] = matrix[i][col]
		}

		mean := stat.Mean(column, nil)
		std := stat.PopStdDev(column, nil)

		for i := range matrix {
			if std > 0 {
				matrix[i][col] = (matrix[i][col] - mean) / std
			} else {
				matrix[i][col] = 0
			}
		}
	}
}
