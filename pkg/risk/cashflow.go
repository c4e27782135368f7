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
	"fmt"
	"math"
	"time"
)

const (
	// irrMaxIterations caps the Newton-Raphson root search.
	irrMaxIterations = 100

	// irrTolerance is the convergence tolerance on both the NPV value
	// and the rate step.
	irrTolerance = 1e-6

	// irrRateFloor keeps the iterate above -100%, where the discount
	// factor degenerates.
	irrRateFloor = -0.99

	// hoursPerYear converts calendar durations to year fractions on a
	// 365.25-day year.
	hoursPerYear = 365.25 * 24
)

// NPV computes the net present value of dated cash flows.
//
// Inputs:
//   - cashFlows: Signed cash flows (outflows negative).
//   - timePeriods: Year offset of each flow from the valuation date.
//     Must match len(cashFlows).
//   - rate: Annual discount rate.
//
// Outputs:
//   - float64: Sum of cashFlows[i] / (1+rate)^timePeriods[i].
//   - error: ErrEmptyCashFlows or ErrLengthMismatch.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func NPV(cashFlows, timePeriods []float64, rate float64) (float64, error) {
	if len(cashFlows) == 0 {
		return 0, ErrEmptyCashFlows
	}
	if len(cashFlows) != len(timePeriods) {
		return 0, ErrLengthMismatch
	}
	return presentValue(cashFlows, timePeriods, rate), nil
}

// IRR finds the discount rate with zero net present value using the
// Newton-Raphson method.
//
// Description:
//
//	The search starts at 10%, steps by value/derivative, and floors the
//	iterate at -99%. It converges when either the NPV or the rate step
//	falls below the tolerance.
//
// Inputs:
//   - cashFlows: Signed cash flows (outflows negative).
//   - timePeriods: Year offset of each flow. Must match len(cashFlows).
//   - maxIterations: Iteration cap; values < 1 default to 100.
//   - tolerance: Convergence tolerance; values <= 0 default to 1e-6.
//
// Outputs:
//   - float64: The internal rate of return.
//   - error: ErrNoConvergence when the iteration cap is hit or the NPV
//     derivative vanishes, ErrEmptyCashFlows, or ErrLengthMismatch.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func IRR(cashFlows, timePeriods []float64, maxIterations int, tolerance float64) (float64, error) {
	if len(cashFlows) == 0 {
		return 0, ErrEmptyCashFlows
	}
	if len(cashFlows) != len(timePeriods) {
		return 0, ErrLengthMismatch
	}
	if maxIterations < 1 {
		maxIterations = irrMaxIterations
	}
	if tolerance <= 0 {
		tolerance = irrTolerance
	}

	rate := 0.1
	for i := 0; i < maxIterations; i++ {
		value := presentValue(cashFlows, timePeriods, rate)
		derivative := presentValueDerivative(cashFlows, timePeriods, rate)

		if math.Abs(value) < tolerance {
			return rate, nil
		}
		if math.Abs(derivative) < tolerance {
			return 0, fmt.Errorf("%w: derivative %g too small at rate %g",
				ErrNoConvergence, derivative, rate)
		}

		next := rate - value/derivative
		if math.Abs(next-rate) < tolerance {
			return next, nil
		}
		if next < irrRateFloor {
			rate = irrRateFloor
		} else {
			rate = next
		}
	}
	return 0, fmt.Errorf("%w after %d iterations", ErrNoConvergence, maxIterations)
}

func presentValue(cashFlows, timePeriods []float64, rate float64) float64 {
	var sum float64
	for i, cf := range cashFlows {
		sum += cf / math.Pow(1+rate, timePeriods[i])
	}
	return sum
}

func presentValueDerivative(cashFlows, timePeriods []float64, rate float64) float64 {
	var sum float64
	for i, cf := range cashFlows {
		sum += -(cf * timePeriods[i]) / math.Pow(1+rate, timePeriods[i]+1)
	}
	return sum
}

// MoneyWeightedResult holds a money-weighted return computation.
type MoneyWeightedResult struct {
	MWR             float64
	AnnualizedMWR   float64
	NPV             float64
	CashFlowCount   int
	TimePeriodYears float64
}

// MoneyWeightedReturn computes the money-weighted return of a dated
// cash-flow history as the IRR of the flows plus the ending value.
//
// Description:
//
//	The ending value is valued at the last cash-flow date, and each
//	date becomes a year fraction from the first date on a 365.25-day
//	year. The reported NPV re-prices the flows at the found rate and is
//	near zero on convergence.
//
// Inputs:
//   - dates: Date of each cash flow, in order. Must be non-empty.
//   - cashFlows: Signed cash flows (contributions negative). Must match
//     len(dates).
//   - endingValue: Portfolio value at the last date.
//
// Outputs:
//   - *MoneyWeightedResult: The period and annualized rates.
//   - error: ErrEmptyCashFlows, ErrLengthMismatch, or ErrNoConvergence.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func MoneyWeightedReturn(dates []time.Time, cashFlows []float64, endingValue float64) (*MoneyWeightedResult, error) {
	if len(dates) == 0 {
		return nil, ErrEmptyCashFlows
	}
	if len(dates) != len(cashFlows) {
		return nil, ErrLengthMismatch
	}

	flows := make([]float64, 0, len(cashFlows)+1)
	flows = append(flows, cashFlows...)
	flows = append(flows, endingValue)

	start := dates[0]
	periods := make([]float64, 0, len(flows))
	for _, d := range dates {
		periods = append(periods, d.Sub(start).Hours()/hoursPerYear)
	}
	periods = append(periods, dates[len(dates)-1].Sub(start).Hours()/hoursPerYear)

	mwr, err := IRR(flows, periods, irrMaxIterations, irrTolerance)
	if err != nil {
		return nil, err
	}

	totalYears := periods[len(periods)-1]
	annualized := 0.0
	if totalYears > 0 {
		annualized = math.Pow(1+mwr, 1/totalYears) - 1
	}

	return &MoneyWeightedResult{
		MWR:             mwr,
		AnnualizedMWR:   annualized,
		NPV:             presentValue(flows, periods, mwr),
		CashFlowCount:   len(flows),
		TimePeriodYears: totalYears,
	}, nil
}

// TimeWeightedResult holds a time-weighted return computation.
type TimeWeightedResult struct {
	TWR           float64
	AnnualizedTWR float64
	PeriodReturns []float64
	Periods       int
}

// TimeWeightedReturn computes the time-weighted return of a portfolio
// value path with external cash flows.
//
// Description:
//
//	Each period return is (V_i - V_{i-1} - CF_i) / (V_{i-1} + CF_i),
//	which strips the cash flow's effect from the period. The TWR chains
//	the period returns, and the annualized figure assumes daily periods.
//
// Inputs:
//   - portfolioValues: Portfolio value at each period boundary. Must
//     have at least 2 entries.
//   - cashFlows: External flow at each boundary (contributions
//     positive). Must match len(portfolioValues); the first entry is
//     not used.
//
// Outputs:
//   - *TimeWeightedResult: Chained and annualized returns.
//   - error: ErrEmptyPrices, ErrLengthMismatch, or ErrInvalidCashFlows
//     when a period denominator is non-positive.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func TimeWeightedReturn(portfolioValues, cashFlows []float64) (*TimeWeightedResult, error) {
	if len(portfolioValues) != len(cashFlows) {
		return nil, ErrLengthMismatch
	}
	if len(portfolioValues) < 2 {
		return nil, ErrEmptyPrices
	}

	periodReturns := make([]float64, 0, len(portfolioValues)-1)
	for i := 1; i < len(portfolioValues); i++ {
		numerator := portfolioValues[i] - portfolioValues[i-1] - cashFlows[i]
		denominator := portfolioValues[i-1] + cashFlows[i]
		if denominator <= 0 {
			return nil, fmt.Errorf("%w: non-positive denominator %g at period %d",
				ErrInvalidCashFlows, denominator, i)
		}
		periodReturns = append(periodReturns, numerator/denominator)
	}

	twr := 1.0
	for _, r := range periodReturns {
		twr *= 1 + r
	}
	twr--

	periods := len(periodReturns)
	annualized := math.Pow(1+twr, 252/float64(periods)) - 1

	return &TimeWeightedResult{
		TWR:           twr,
		AnnualizedTWR: annualized,
		PeriodReturns: periodReturns,
		Periods:       periods,
	}, nil
}

// AttributionResult holds a performance attribution computation.
type AttributionResult struct {
	TotalAttribution  float64
	AllocationEffect  float64
	SelectionEffect   float64
	InteractionEffect float64
	ExcessReturns     []float64
	Sectors           int
}

// PerformanceAttribution decomposes portfolio excess return over a
// benchmark across sectors.
//
// Description:
//
//	The Brinson allocation and selection terms need benchmark sector
//	weights and per-sector benchmark returns; with the single weight
//	set given here each per-sector contribution cancels, so the effect
//	components are identically zero and the excess return series
//	carries the comparison.
//
// Inputs:
//   - portfolioReturns: Portfolio period returns.
//   - benchmarkReturns: Benchmark period returns. Must match
//     len(portfolioReturns).
//   - sectorReturns: Per-sector return series.
//   - sectorWeights: Portfolio weight per sector. Must match
//     len(sectorReturns).
//
// Outputs:
//   - *AttributionResult: Excess returns and effect components.
//   - error: ErrLengthMismatch.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func PerformanceAttribution(portfolioReturns, benchmarkReturns []float64, sectorReturns [][]float64, sectorWeights []float64) (*AttributionResult, error) {
	if len(portfolioReturns) != len(benchmarkReturns) {
		return nil, ErrLengthMismatch
	}
	if len(sectorReturns) != len(sectorWeights) {
		return nil, ErrLengthMismatch
	}

	excess := make([]float64, len(portfolioReturns))
	for i := range portfolioReturns {
		excess[i] = portfolioReturns[i] - benchmarkReturns[i]
	}

	return &AttributionResult{
		ExcessReturns: excess,
		Sectors:       len(sectorReturns),
	}, nil
}
