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

// KurtosisResult holds a kurtosis computation.
type KurtosisResult struct {
	// Kurtosis is the raw fourth standardized moment (3 for a normal
	// distribution).
	Kurtosis float64

	// ExcessKurtosis is Kurtosis - 3.
	ExcessKurtosis float64
}

// Kurtosis computes the population kurtosis of a return series.
//
// Fewer than four returns, or a zero-variance series, yield a zero
// result rather than an error.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Kurtosis(returns []float64) *KurtosisResult {
	if len(returns) < 4 {
		return &KurtosisResult{}
	}

	mean := stat.Mean(returns, nil)
	std := stat.PopStdDev(returns, nil)
	if std == 0 {
		return &KurtosisResult{}
	}

	var fourthMoment float64
	for _, r := range returns {
		d := r - mean
		fourthMoment += d * d * d * d
	}
	fourthMoment /= float64(len(returns))

	k := fourthMoment / math.Pow(std, 4)
	return &KurtosisResult{Kurtosis: k, ExcessKurtosis: k - 3}
}

// Skewness computes the population skewness of a return series.
//
// Fewer than three returns, or a zero-variance series, yield 0.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Skewness(returns []float64) float64 {
	if len(returns) < 3 {
		return 0
	}

	mean := stat.Mean(returns, nil)
	std := stat.PopStdDev(returns, nil)
	if std == 0 {
		return 0
	}

	var thirdMoment float64
	for _, r := range returns {
		d := r - mean
		thirdMoment += d * d * d
	}
	thirdMoment /= float64(len(returns))

	return thirdMoment / math.Pow(std, 3)
}

// SemideviationResult holds a downside deviation computation.
type SemideviationResult struct {
	Semideviation           float64
	AnnualizedSemideviation float64
	DownsideCount           int
	TotalCount              int

	// DownsidePercentage is the share of returns below the threshold,
	// expressed in percent.
	DownsidePercentage float64

	Threshold         float64
	MeanReturn        float64
	StandardDeviation float64
}

// Semideviation computes the downside deviation of returns below a
// target threshold.
//
// Description:
//
//	Squared deviations below the threshold are divided by the TOTAL
//	return count, consistent with the Sortino convention in this package.
//	Annualization assumes daily periods (factor sqrt(252)). Fewer than
//	two returns yield a zero result rather than an error.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Semideviation(returns []float64, targetReturn float64) *SemideviationResult {
	if len(returns) < 2 {
		return &SemideviationResult{Threshold: targetReturn}
	}

	res := &SemideviationResult{
		Threshold:         targetReturn,
		TotalCount:        len(returns),
		MeanReturn:        stat.Mean(returns, nil),
		StandardDeviation: stat.PopStdDev(returns, nil),
	}

	var downsideSumSq float64
	for _, r := range returns {
		if r < targetReturn {
			d := r - targetReturn
			downsideSumSq += d * d
			res.DownsideCount++
		}
	}
	if res.DownsideCount == 0 {
		return res
	}

	res.DownsidePercentage = float64(res.DownsideCount) / float64(res.TotalCount) * 100
	res.Semideviation = math.Sqrt(downsideSumSq / float64(len(returns)))
	res.AnnualizedSemideviation = res.Semideviation * math.Sqrt(252)
	return res
}

// StandardDeviationResult holds a volatility computation from returns.
type StandardDeviationResult struct {
	// StandardDeviation is the population (ddof=0) standard deviation.
	StandardDeviation float64

	// AnnualizedStandardDeviation scales by sqrt(252).
	AnnualizedStandardDeviation float64

	MeanReturn float64
	Periods    int
}

// StandardDeviation computes the population standard deviation of a
// return series. Fewer than two returns yield a zero result.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func StandardDeviation(returns []float64) *StandardDeviationResult {
	if len(returns) < 2 {
		return &StandardDeviationResult{Periods: len(returns)}
	}

	std := stat.PopStdDev(returns, nil)
	return &StandardDeviationResult{
		StandardDeviation:           std,
		AnnualizedStandardDeviation: std * math.Sqrt(252),
		MeanReturn:                  stat.Mean(returns, nil),
		Periods:                     len(returns),
	}
}
