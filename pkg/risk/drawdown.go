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

// DrawdownResult describes the deepest peak-to-trough decline of a
// cumulative price path built from a return series.
type DrawdownResult struct {
	// MaxDrawdown is the peak-to-trough loss in price units on a path
	// indexed from 100.
	MaxDrawdown float64

	// MaxDrawdownPercent is the same loss as a fraction of the peak
	// (0.20 means a 20% decline).
	MaxDrawdownPercent float64

	// PeakIndex is the index of the most recent all-time high on the
	// cumulative path (index 0 is the synthetic starting price).
	PeakIndex int

	// TroughIndex is the index where the maximum drawdown bottomed out.
	TroughIndex int

	PeakValue   float64
	TroughValue float64

	// RecoveryIndex is the first index after the trough where the path
	// regained its prior peak, or -1 if it never recovered.
	RecoveryIndex int

	DrawdownDuration int

	// RecoveryDuration is RecoveryIndex - TroughIndex, or -1 when the
	// path never recovered.
	RecoveryDuration int
}

// MaxDrawdown computes the maximum drawdown of a return series.
//
// Description:
//
//	The return series is compounded into a cumulative price path starting
//	at 100, then scanned once for the deepest percentage decline from a
//	running peak. An empty series yields a zero-drawdown result.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func MaxDrawdown(returns []float64) *DrawdownResult {
	prices := make([]float64, 0, len(returns)+1)
	prices = append(prices, 100)
	for _, r := range returns {
		prices = append(prices, prices[len(prices)-1]*(1+r))
	}

	res := &DrawdownResult{
		PeakValue:        prices[0],
		TroughValue:      prices[0],
		RecoveryIndex:    -1,
		RecoveryDuration: -1,
	}

	peak := prices[0]
	peakIndex := 0
	recovered := false

	for i := 1; i < len(prices); i++ {
		current := prices[i]

		if current > peak {
			peak = current
			peakIndex = i
		}

		drawdownPercent := (peak - current) / peak
		if drawdownPercent > res.MaxDrawdownPercent {
			res.MaxDrawdown = peak - current
			res.MaxDrawdownPercent = drawdownPercent
			res.TroughIndex = i
			res.TroughValue = current
			res.PeakValue = peak
			recovered = false
			res.RecoveryIndex = -1
		}

		if i > res.TroughIndex && current >= res.PeakValue && !recovered {
			res.RecoveryIndex = i
			recovered = true
		}
	}

	res.PeakIndex = peakIndex
	res.DrawdownDuration = res.TroughIndex - res.PeakIndex
	if res.RecoveryIndex >= 0 {
		res.RecoveryDuration = res.RecoveryIndex - res.TroughIndex
	}
	return res
}
