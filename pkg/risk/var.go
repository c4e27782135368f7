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
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// VaRResult holds a Value-at-Risk computation. Values are reported as
// positive magnitudes.
type VaRResult struct {
	VaR             float64
	CVaR            float64
	ConfidenceLevel float64
	Method          string
}

// HistoricalVaR computes Value-at-Risk from the empirical return
// distribution.
//
// Description:
//
//	Returns are sorted ascending and the (1 - confidence) quantile index
//	is read off directly. CVaR averages the tail through that index.
//
// Inputs:
//   - returns: Period returns. Must be non-empty.
//   - confidenceLevel: In (0, 1), e.g. 0.95.
//
// Outputs:
//   - *VaRResult: VaR and CVaR as positive magnitudes.
//   - error: ErrEmptyReturns or ErrInvalidConfidence.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func HistoricalVaR(returns []float64, confidenceLevel float64) (*VaRResult, error) {
	if len(returns) == 0 {
		return nil, ErrEmptyReturns
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return nil, ErrInvalidConfidence
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	idx := int((1 - confidenceLevel) * float64(len(sorted)))
	varValue := math.Abs(sorted[idx])

	cvar := math.Abs(stat.Mean(sorted[:idx+1], nil))

	return &VaRResult{
		VaR:             varValue,
		CVaR:            cvar,
		ConfidenceLevel: confidenceLevel,
		Method:          "historical",
	}, nil
}

// ParametricVaR computes Value-at-Risk assuming normally distributed
// returns.
//
// Description:
//
//	VaR is |mean - z*std| with the sample standard deviation and the
//	standard normal quantile z at 1 - confidence. CVaR uses the
//	closed-form normal tail expectation.
//
// Inputs:
//   - returns: Period returns. Must be non-empty.
//   - confidenceLevel: In (0, 1).
//
// Outputs:
//   - *VaRResult: VaR and CVaR as positive magnitudes.
//   - error: ErrEmptyReturns or ErrInvalidConfidence.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func ParametricVaR(returns []float64, confidenceLevel float64) (*VaRResult, error) {
	if len(returns) == 0 {
		return nil, ErrEmptyReturns
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return nil, ErrInvalidConfidence
	}

	mean := stat.Mean(returns, nil)
	std := stat.StdDev(returns, nil)
	z := math.Abs(distuv.UnitNormal.Quantile(1 - confidenceLevel))

	varValue := math.Abs(mean - z*std)
	cvar := math.Abs(mean - std*(math.Exp(-z*z/2)/(math.Sqrt(2*math.Pi)*(1-confidenceLevel))))

	return &VaRResult{
		VaR:             varValue,
		CVaR:            cvar,
		ConfidenceLevel: confidenceLevel,
		Method:          "parametric",
	}, nil
}

// ExpectedShortfallResult holds a historical expected shortfall
// computation.
type ExpectedShortfallResult struct {
	ExpectedShortfall float64
	VaRThreshold      float64
	ConfidenceLevel   float64
	TailReturns       int
	TotalReturns      int
}

// HistoricalExpectedShortfall computes expected shortfall from the
// empirical distribution: the mean of all returns at or below the
// historical VaR threshold, reported as a positive magnitude.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func HistoricalExpectedShortfall(returns []float64, confidenceLevel float64) (*ExpectedShortfallResult, error) {
	if len(returns) == 0 {
		return nil, ErrEmptyReturns
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return nil, ErrInvalidConfidence
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	idx := int((1 - confidenceLevel) * float64(len(sorted)))
	threshold := sorted[idx]

	tail := 0
	var sum float64
	for _, r := range sorted {
		if r <= threshold {
			sum += r
			tail++
		}
	}

	es := 0.0
	if tail > 0 {
		es = math.Abs(sum / float64(tail))
	}

	return &ExpectedShortfallResult{
		ExpectedShortfall: es,
		VaRThreshold:      math.Abs(threshold),
		ConfidenceLevel:   confidenceLevel,
		TailReturns:       tail,
		TotalReturns:      len(returns),
	}, nil
}

// ParametricExpectedShortfall computes expected shortfall under a
// normality assumption with the sample standard deviation.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func ParametricExpectedShortfall(returns []float64, confidenceLevel float64) (*ExpectedShortfallResult, error) {
	if len(returns) == 0 {
		return nil, ErrEmptyReturns
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return nil, ErrInvalidConfidence
	}

	mean := stat.Mean(returns, nil)
	std := stat.StdDev(returns, nil)
	z := math.Abs(distuv.UnitNormal.Quantile(1 - confidenceLevel))

	es := mean - std*(math.Exp(-z*z/2)/(math.Sqrt(2*math.Pi)*(1-confidenceLevel)))

	return &ExpectedShortfallResult{
		ExpectedShortfall: math.Abs(es),
		ConfidenceLevel:   confidenceLevel,
		TotalReturns:      len(returns),
	}, nil
}

// MonteCarloVaRResult holds a simulated Value-at-Risk computation.
type MonteCarloVaRResult struct {
	VaR               float64
	ExpectedShortfall float64
	ConfidenceLevel   float64
	Simulations       int
	MeanReturn        float64
	StdReturn         float64
}

// MonteCarloVaR computes Value-at-Risk by simulating normal returns
// fitted to the sample mean and sample standard deviation.
//
// Description:
//
//	The generator is seeded deterministically so repeated runs over the
//	same inputs report identical numbers.
//
// Inputs:
//   - returns: Period returns. Must be non-empty.
//   - confidenceLevel: In (0, 1).
//   - simulations: Number of draws; values < 1 default to 10000.
//
// Outputs:
//   - *MonteCarloVaRResult: Simulated VaR and expected shortfall.
//   - error: ErrEmptyReturns or ErrInvalidConfidence.
//
// Thread Safety: This function is stateless and safe for concurrent use.
func MonteCarloVaR(returns []float64, confidenceLevel float64, simulations int) (*MonteCarloVaRResult, error) {
	if len(returns) == 0 {
		return nil, ErrEmptyReturns
	}
	if confidenceLevel <= 0 || confidenceLevel >= 1 {
		return nil, ErrInvalidConfidence
	}
	if simulations < 1 {
		simulations = 10000
	}

	mean := stat.Mean(returns, nil)
	std := stat.StdDev(returns, nil)

	rng := rand.New(rand.NewSource(42))
	simulated := make([]float64, simulations)
	for i := range simulated {
		simulated[i] = mean + std*rng.NormFloat64()
	}
	sort.Float64s(simulated)

	idx := int((1 - confidenceLevel) * float64(simulations))
	varValue := math.Abs(simulated[idx])

	es := 0.0
	if idx > 0 {
		es = math.Abs(stat.Mean(simulated[:idx], nil))
	}

	return &MonteCarloVaRResult{
		VaR:               varValue,
		ExpectedShortfall: es,
		ConfidenceLevel:   confidenceLevel,
		Simulations:       simulations,
		MeanReturn:        mean,
		StdReturn:         std,
	}, nil
}
