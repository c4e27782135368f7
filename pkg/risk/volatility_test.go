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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEWMAVolatility(t *testing.T) {
	t.Run("two step recursion", func(t *testing.T) {
		res, err := EWMAVolatility([]float64{0.01, 0.02}, 0.94)
		require.NoError(t, err)

		// 0.94*0.01^2 + 0.06*0.02^2
		assert.InDelta(t, 1.18e-4, res.Variance, 1e-15)
		assert.InDelta(t, math.Sqrt(1.18e-4), res.Volatility, 1e-12)
		assert.Equal(t, 2, res.Periods)
	})

	t.Run("single return seeds the variance", func(t *testing.T) {
		res, err := EWMAVolatility([]float64{-0.03}, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 0.03, res.Volatility, 1e-12)
	})

	t.Run("lambda outside (0,1)", func(t *testing.T) {
		for _, lambda := range []float64{0, 1, -0.5, 1.5} {
			_, err := EWMAVolatility([]float64{0.01}, lambda)
			assert.ErrorIs(t, err, ErrInvalidLambda, "lambda=%v", lambda)
		}
	})

	t.Run("empty returns", func(t *testing.T) {
		_, err := EWMAVolatility(nil, 0.94)
		assert.ErrorIs(t, err, ErrEmptyReturns)
	})
}

func TestGarmanKlassVolatility(t *testing.T) {
	t.Run("single bar", func(t *testing.T) {
		res, err := GarmanKlassVolatility(
			[]float64{100}, []float64{102}, []float64{99}, []float64{101},
		)
		require.NoError(t, err)

		hl := math.Log(102.0 / 99.0)
		co := math.Log(101.0 / 100.0)
		want := 0.5*hl*hl - (2*math.Ln2-1)*co*co
		assert.InDelta(t, want, res.Variance, 1e-15)
		assert.InDelta(t, math.Sqrt(want), res.Volatility, 1e-12)
	})

	t.Run("negative variance clamps to zero", func(t *testing.T) {
		// Zero range with a close-to-open move drives the estimator
		// negative; it must clamp instead of producing NaN.
		res, err := GarmanKlassVolatility(
			[]float64{100}, []float64{100}, []float64{100}, []float64{101},
		)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Variance)
		assert.Equal(t, 0.0, res.Volatility)
	})

	t.Run("high below low", func(t *testing.T) {
		_, err := GarmanKlassVolatility(
			[]float64{100}, []float64{99}, []float64{100}, []float64{100},
		)
		assert.ErrorIs(t, err, ErrInvalidPrices)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := GarmanKlassVolatility(
			[]float64{100, 101}, []float64{102}, []float64{99}, []float64{101},
		)
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})
}

func TestParkinsonVolatility(t *testing.T) {
	t.Run("unit log range", func(t *testing.T) {
		// H/L = e gives ln(H/L) = 1 and variance exactly 1/(4 ln 2).
		res, err := ParkinsonVolatility([]float64{100 * math.E}, []float64{100})
		require.NoError(t, err)
		assert.InDelta(t, 1/(4*math.Ln2), res.Variance, 1e-12)
	})

	t.Run("non-positive price", func(t *testing.T) {
		_, err := ParkinsonVolatility([]float64{100}, []float64{0})
		assert.ErrorIs(t, err, ErrInvalidPrices)
	})

	t.Run("empty series", func(t *testing.T) {
		_, err := ParkinsonVolatility(nil, nil)
		assert.ErrorIs(t, err, ErrEmptyPrices)
	})
}
