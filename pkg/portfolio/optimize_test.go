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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolatility(t *testing.T) {
	t.Run("uncorrelated assets diversify", func(t *testing.T) {
		cov := [][]float64{
			{0.04, 0},
			{0, 0.04},
		}

		res, err := Volatility([]float64{0.5, 0.5}, cov)
		require.NoError(t, err)

		assert.InDelta(t, 0.02, res.PortfolioVariance, 1e-15)
		assert.InDelta(t, math.Sqrt(0.02), res.PortfolioVolatility, 1e-12)
		assert.Less(t, res.PortfolioVolatility, 0.2, "must beat a single 20%-vol asset")
		assert.InDelta(t, res.PortfolioVolatility*math.Sqrt(252), res.AnnualizedPortfolioVolatility, 1e-12)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := Volatility([]float64{0.5, 0.5}, [][]float64{{0.04}})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestMinimumVariance(t *testing.T) {
	expectedReturns := []float64{0.1, 0.05}

	t.Run("diagonal covariance closed form", func(t *testing.T) {
		// Inverse-variance weighting: variances 0.04 and 0.01 give
		// weights 25/125 and 100/125.
		cov := [][]float64{
			{0.04, 0},
			{0, 0.01},
		}

		res, err := MinimumVariance(expectedReturns, cov, 0, 0, 1)
		require.NoError(t, err)

		assert.InDelta(t, 0.2, res.Weights[0], 1e-9)
		assert.InDelta(t, 0.8, res.Weights[1], 1e-9)
		assert.InDelta(t, 0.06, res.ExpectedReturn, 1e-9)
		assert.InDelta(t, math.Sqrt(0.008), res.Volatility, 1e-9)
		assert.Equal(t, "minimumVariance", res.Method)
	})

	t.Run("bounds clip and renormalize", func(t *testing.T) {
		cov := [][]float64{
			{0.04, 0},
			{0, 0.01},
		}

		res, err := MinimumVariance(expectedReturns, cov, 0, 0.3, 0.7)
		require.NoError(t, err)

		assert.InDelta(t, 0.3, res.Weights[0], 1e-9)
		assert.InDelta(t, 0.7, res.Weights[1], 1e-9)
		assert.InDelta(t, 1.0, res.Weights[0]+res.Weights[1], 1e-12)
	})

	t.Run("singular covariance", func(t *testing.T) {
		cov := [][]float64{
			{0.04, 0.04},
			{0.04, 0.04},
		}
		_, err := MinimumVariance(expectedReturns, cov, 0, 0, 1)
		assert.ErrorIs(t, err, ErrSingularCovariance)
	})
}

func TestEqualWeights(t *testing.T) {
	weights, err := EqualWeights(4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, weights)

	_, err = EqualWeights(0)
	assert.ErrorIs(t, err, ErrInvalidAssetCount)
}
