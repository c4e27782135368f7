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

	"gonum.org/v1/gonum/stat"

	"github.com/railpath/finance-toolkit/pkg/risk"
)

// MetricsResult summarizes a portfolio value path.
type MetricsResult struct {
	TotalReturn float64
	CAGR        float64

	MaxDrawdown        float64
	MaxDrawdownPercent float64

	CurrentDrawdown        float64
	CurrentDrawdownPercent float64

	// MeanReturn is the annualized mean period return.
	MeanReturn float64

	// Volatility is the annualized population standard deviation of
	// period returns, 0 with fewer than two returns.
	Volatility float64

	SharpeRatio  float64
	SortinoRatio float64

	// VaR and ExpectedShortfall come from the historical distribution of
	// period returns and are 0 with fewer than two returns.
	VaR               float64
	ExpectedShortfall float64

	Periods      int
	InitialValue float64
	FinalValue   float64
}

// Metrics computes summary performance and risk statistics over a
// portfolio value path.
//
// Inputs:
//   - values: Portfolio values per period. At least two positive values
//     are required.
//   - riskFreeRate: Annualized risk-free rate for the ratio metrics.
//   - annualization: Periods per year.
//   - confidenceLevel: Confidence for the historical VaR, in (0, 1).
//
// Outputs:
//   - *MetricsResult: The full metric set.
//   - error: ErrEmptyInput or ErrInvalidValues.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Metrics(values []float64, riskFreeRate float64, annualization int, confidenceLevel float64) (*MetricsResult, error) {
	if len(values) < 2 {
		return nil, ErrEmptyInput
	}
	for _, v := range values {
		if v <= 0 {
			return nil, ErrInvalidValues
		}
	}

	periods := len(values)
	initial := values[0]
	final := values[periods-1]

	returns := make([]float64, 0, periods-1)
	for i := 1; i < periods; i++ {
		returns = append(returns, (values[i]-values[i-1])/values[i-1])
	}

	totalReturn := (final - initial) / initial
	years := float64(periods-1) / float64(annualization)
	cagr := 0.0
	if years > 0 {
		cagr = math.Pow(1+totalReturn, 1/years) - 1
	}

	res := &MetricsResult{
		TotalReturn:  totalReturn,
		CAGR:         cagr,
		Periods:      periods,
		InitialValue: initial,
		FinalValue:   final,
	}

	peak := values[0]
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if dd := peak - v; dd > res.MaxDrawdown {
			res.MaxDrawdown = dd
			res.MaxDrawdownPercent = dd / peak
		}
	}
	res.CurrentDrawdown = peak - final
	res.CurrentDrawdownPercent = res.CurrentDrawdown / peak

	meanPeriod := stat.Mean(returns, nil)
	res.MeanReturn = meanPeriod * float64(annualization)

	if len(returns) > 1 {
		res.Volatility = stat.PopStdDev(returns, nil) * math.Sqrt(float64(annualization))
	}
	if res.Volatility > 0 {
		res.SharpeRatio = (res.MeanReturn - riskFreeRate) / res.Volatility
	}

	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) > 0 {
		downsideDev := stat.PopStdDev(downside, nil) * math.Sqrt(float64(annualization))
		if downsideDev > 0 {
			res.SortinoRatio = (res.MeanReturn - riskFreeRate) / downsideDev
		}
	}

	if len(returns) >= 2 {
		if v, err := risk.HistoricalVaR(returns, confidenceLevel); err == nil {
			res.VaR = v.VaR
			res.ExpectedShortfall = v.CVaR
		}
	}

	return res, nil
}
