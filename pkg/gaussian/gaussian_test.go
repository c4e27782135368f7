// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package gaussian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDF(t *testing.T) {
	t.Run("standard normal at mean", func(t *testing.T) {
		got, err := PDF(0, 0, 1)
		require.NoError(t, err)
		// 1/sqrt(2*pi)
		assert.InDelta(t, 0.3989422804014327, got, 1e-12)
	})

	t.Run("one standard deviation away", func(t *testing.T) {
		got, err := PDF(1, 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0.24197072451914337, got, 1e-12)
	})

	t.Run("wide variance flattens density", func(t *testing.T) {
		narrow, err := PDF(0, 0, 1)
		require.NoError(t, err)
		wide, err := PDF(0, 0, 100)
		require.NoError(t, err)
		assert.Less(t, wide, narrow)
	})

	t.Run("zero variance fails", func(t *testing.T) {
		_, err := PDF(0, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("negative variance fails", func(t *testing.T) {
		_, err := PDF(0, 0, -1)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestLogPDF(t *testing.T) {
	t.Run("agrees with log of direct density", func(t *testing.T) {
		direct, err := PDF(0.7, 0.2, 2.5)
		require.NoError(t, err)
		logged, err := LogPDF(0.7, 0.2, 2.5)
		require.NoError(t, err)
		assert.InDelta(t, math.Log(direct), logged, 1e-12)
	})

	t.Run("finite where direct density underflows", func(t *testing.T) {
		// 100 sigma out: exp(-5000) is exactly zero in float64.
		direct, err := PDF(100, 0, 1)
		require.NoError(t, err)
		assert.Zero(t, direct)

		logged, err := LogPDF(100, 0, 1)
		require.NoError(t, err)
		assert.False(t, math.IsInf(logged, -1))
		assert.InDelta(t, -5000.918938533205, logged, 1e-6)
	})

	t.Run("non-positive variance fails", func(t *testing.T) {
		_, err := LogPDF(0, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}

func TestMultivariatePDF(t *testing.T) {
	t.Run("product of univariate densities", func(t *testing.T) {
		x := []float64{0.1, -0.4}
		means := []float64{0, 0.5}
		variances := []float64{1, 2}

		want := 1.0
		for i := range x {
			p, err := PDF(x[i], means[i], variances[i])
			require.NoError(t, err)
			want *= p
		}

		got, err := MultivariatePDF(x, means, variances)
		require.NoError(t, err)
		assert.InEpsilon(t, want, got, 1e-12)
	})

	t.Run("mismatched means fails", func(t *testing.T) {
		_, err := MultivariatePDF([]float64{1, 2}, []float64{0}, []float64{1, 1})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("mismatched variances fails", func(t *testing.T) {
		_, err := MultivariatePDF([]float64{1, 2}, []float64{0, 0}, []float64{1})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestMultivariateLogPDF(t *testing.T) {
	t.Run("sum of univariate log densities", func(t *testing.T) {
		x := []float64{0.1, -0.4, 2.2}
		means := []float64{0, 0.5, 2}
		variances := []float64{1, 2, 0.5}

		var want float64
		for i := range x {
			lp, err := LogPDF(x[i], means[i], variances[i])
			require.NoError(t, err)
			want += lp
		}

		got, err := MultivariateLogPDF(x, means, variances)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	})

	t.Run("agrees with log of direct product", func(t *testing.T) {
		x := []float64{0.3, 0.9}
		means := []float64{0.1, 1.0}
		variances := []float64{1.5, 0.8}

		direct, err := MultivariatePDF(x, means, variances)
		require.NoError(t, err)
		logged, err := MultivariateLogPDF(x, means, variances)
		require.NoError(t, err)
		assert.InDelta(t, math.Log(direct), logged, 1e-9)
	})

	t.Run("dimension mismatch fails", func(t *testing.T) {
		_, err := MultivariateLogPDF([]float64{1}, []float64{0, 0}, []float64{1})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("non-positive variance fails", func(t *testing.T) {
		_, err := MultivariateLogPDF([]float64{1}, []float64{0}, []float64{-2})
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})
}
