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

import "math"

// transactionCostRate is the flat per-notional cost applied to the
// total traded amount (0.1%).
const transactionCostRate = 0.001

// RebalanceResult describes the trades required to move a portfolio to
// its target weights.
type RebalanceResult struct {
	// Trades is the signed notional to buy (positive) or sell (negative)
	// per asset.
	Trades []float64

	// TotalTraded is the sum of absolute trade notionals.
	TotalTraded float64

	// Cost applies the flat transaction cost rate to TotalTraded.
	Cost float64

	CurrentWeights []float64
	TargetWeights  []float64
	TotalValue     float64
}

// Rebalance computes the trades that move current holdings to the
// target weight allocation.
//
// Inputs:
//   - targetWeights: Desired asset weights.
//   - currentValues: Current per-asset notional values. Must match
//     len(targetWeights) and sum to a positive total.
//
// Outputs:
//   - *RebalanceResult: Per-asset trades and the estimated cost.
//   - error: ErrEmptyInput, ErrDimensionMismatch, or ErrInvalidValues.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Rebalance(targetWeights, currentValues []float64) (*RebalanceResult, error) {
	n := len(targetWeights)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(currentValues) != n {
		return nil, ErrDimensionMismatch
	}

	var totalValue float64
	for _, v := range currentValues {
		totalValue += v
	}
	if totalValue <= 0 {
		return nil, ErrInvalidValues
	}

	currentWeights := make([]float64, n)
	trades := make([]float64, n)
	var totalTraded float64
	for i := 0; i < n; i++ {
		currentWeights[i] = currentValues[i] / totalValue
		trades[i] = targetWeights[i]*totalValue - currentValues[i]
		totalTraded += math.Abs(trades[i])
	}

	return &RebalanceResult{
		Trades:         trades,
		TotalTraded:    totalTraded,
		Cost:           totalTraded * transactionCostRate,
		CurrentWeights: currentWeights,
		TargetWeights:  targetWeights,
		TotalValue:     totalValue,
	}, nil
}
