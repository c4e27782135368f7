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

// sortinoCap is reported when a series has no downside returns at all.
// A finite sentinel keeps downstream JSON/CSV emitters away from +Inf.
const sortinoCap = 999999

// SharpeResult holds a Sharpe ratio computation.
type SharpeResult struct {
	SharpeRatio          float64
	AnnualizedReturn     float64
	AnnualizedVolatility float64
	ExcessReturn         float64
}

// Sharpe computes the annualized Sharpe ratio of a return series.
//
// Description:
//
//	Mean return and sample standard deviation are annualized with the
//	given factor (e.g. 252 for daily data); the ratio is excess return
//	over annualized volatility, or 0 when volatility is zero.
//
// Inputs:
//   - returns: Period returns. Must be non-empty.
//   - riskFreeRate: Annualized risk-free rate.
//   - annualization: Periods per year.
//
// Outputs:
//   - *SharpeResult: The ratio and its components.
//   - error: ErrEmptyReturns on an empty series.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Sharpe(returns []float64, riskFreeRate float64, annualization int) (*SharpeResult, error) {
	if len(returns) == 0 {
		return nil, ErrEmptyReturns
	}

	meanReturn := stat.Mean(returns, nil)
	stdReturn := stat.StdDev(returns, nil) // sample std dev

	annualizedReturn := meanReturn * float64(annualization)
	annualizedVol := stdReturn * math.Sqrt(float64(annualization))
	excess := annualizedReturn - riskFreeRate

	ratio := 0.0
	if annualizedVol > 0 {
		ratio = excess / annualizedVol
	}

	return &SharpeResult{
		SharpeRatio:          ratio,
		AnnualizedReturn:     annualizedReturn,
		AnnualizedVolatility: annualizedVol,
		ExcessReturn:         excess,
	}, nil
}

// SortinoResult holds a Sortino ratio computation.
type SortinoResult struct {
	SortinoRatio                float64
	AnnualizedReturn            float64
	DownsideDeviation           float64
	AnnualizedDownsideDeviation float64
	ExcessReturn                float64
}

// Sortino computes the annualized Sortino ratio of a return series.
//
// Description:
//
//	Penalizes only downside deviation below the target return. The
//	downside variance divides the squared deviations by the TOTAL number
//	of returns, not the downside count, matching the established fixture
//	convention. A series with no downside returns reports the sortinoCap
//	sentinel rather than +Inf.
//
// Inputs:
//   - returns: Period returns. Must be non-empty.
//   - riskFreeRate: Annualized risk-free rate.
//   - targetReturn: The minimum acceptable period return.
//   - annualization: Periods per year.
//
// Outputs:
//   - *SortinoResult: The ratio and its components.
//   - error: ErrEmptyReturns on an empty series.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Sortino(returns []float64, riskFreeRate, targetReturn float64, annualization int) (*SortinoResult, error) {
	if len(returns) == 0 {
		return nil, ErrEmptyReturns
	}

	annualizedReturn := stat.Mean(returns, nil) * float64(annualization)
	excess := annualizedReturn - riskFreeRate

	var downsideSumSq float64
	downsideCount := 0
	for _, r := range returns {
		if r < targetReturn {
			d := r - targetReturn
			downsideSumSq += d * d
			downsideCount++
		}
	}

	if downsideCount == 0 {
		return &SortinoResult{
			SortinoRatio:     sortinoCap,
			AnnualizedReturn: annualizedReturn,
			ExcessReturn:     excess,
		}, nil
	}

	downsideDev := math.Sqrt(downsideSumSq / float64(len(returns)))
	annualizedDownsideDev := downsideDev * math.Sqrt(float64(annualization))

	ratio := 0.0
	if annualizedDownsideDev > 0 {
		ratio = excess / annualizedDownsideDev
	}

	return &SortinoResult{
		SortinoRatio:                ratio,
		AnnualizedReturn:            annualizedReturn,
		DownsideDeviation:           downsideDev,
		AnnualizedDownsideDeviation: annualizedDownsideDev,
		ExcessReturn:                excess,
	}, nil
}

// CalmarResult holds a Calmar ratio computation.
type CalmarResult struct {
	CalmarRatio        float64
	AnnualizedReturn   float64
	MaxDrawdownPercent float64
}

// Calmar computes the Calmar ratio: annualized return over max drawdown.
//
// Inputs:
//   - returns: Period returns. Must be non-empty.
//   - annualization: Periods per year.
//
// Outputs:
//   - *CalmarResult: Ratio is 0 when the drawdown is zero.
//   - error: ErrEmptyReturns on an empty series.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func Calmar(returns []float64, annualization int) (*CalmarResult, error) {
	if len(returns) == 0 {
		return nil, ErrEmptyReturns
	}

	annualizedReturn := stat.Mean(returns, nil) * float64(annualization)
	dd := MaxDrawdown(returns)

	ratio := 0.0
	if dd.MaxDrawdownPercent != 0 {
		ratio = annualizedReturn / math.Abs(dd.MaxDrawdownPercent)
	}

	return &CalmarResult{
		CalmarRatio:        ratio,
		AnnualizedReturn:   annualizedReturn,
		MaxDrawdownPercent: dd.MaxDrawdownPercent,
	}, nil
}

// TrackingErrorResult holds a tracking error computation.
type TrackingErrorResult struct {
	TrackingError float64
	MeanExcess    float64
	ExcessReturns []float64
	Periods       int
}

// TrackingError computes the sample standard deviation of excess returns
// of a portfolio over its benchmark.
//
// Inputs:
//   - portfolio: Portfolio period returns.
//   - benchmark: Benchmark period returns. Must match len(portfolio).
//
// Outputs:
//   - *TrackingErrorResult: The tracking error and excess series.
//   - error: ErrLengthMismatch or ErrEmptyReturns.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func TrackingError(portfolio, benchmark []float64) (*TrackingErrorResult, error) {
	if len(portfolio) == 0 {
		return nil, ErrEmptyReturns
	}
	if len(portfolio) != len(benchmark) {
		return nil, ErrLengthMismatch
	}

	excess := make([]float64, len(portfolio))
	for i := range portfolio {
		excess[i] = portfolio[i] - benchmark[i]
	}

	return &TrackingErrorResult{
		TrackingError: stat.StdDev(excess, nil),
		MeanExcess:    stat.Mean(excess, nil),
		ExcessReturns: excess,
		Periods:       len(excess),
	}, nil
}

// InformationRatioResult holds an information ratio computation.
type InformationRatioResult struct {
	InformationRatio       float64
	InformationRatioPeriod float64
	MeanExcessReturn       float64
	TrackingError          float64
	Periods                int
}

// InformationRatio computes mean excess return over tracking error,
// annualized assuming daily periods (factor 252).
//
// Inputs:
//   - portfolio: Portfolio period returns.
//   - benchmark: Benchmark period returns. Must match len(portfolio).
//
// Outputs:
//   - *InformationRatioResult: Period and annualized ratios.
//   - error: ErrLengthMismatch or ErrEmptyReturns.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func InformationRatio(portfolio, benchmark []float64) (*InformationRatioResult, error) {
	te, err := TrackingError(portfolio, benchmark)
	if err != nil {
		return nil, err
	}

	periodRatio := 0.0
	if te.TrackingError > 0 {
		periodRatio = te.MeanExcess / te.TrackingError
	}

	return &InformationRatioResult{
		InformationRatio:       periodRatio * math.Sqrt(252),
		InformationRatioPeriod: periodRatio,
		MeanExcessReturn:       te.MeanExcess * 252,
		TrackingError:          te.TrackingError * math.Sqrt(252),
		Periods:                te.Periods,
	}, nil
}
