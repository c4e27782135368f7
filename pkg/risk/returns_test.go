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

func TestReturns_Simple(t *testing.T) {
	res, err := Returns([]float64{100, 110, 99}, Simple)
	require.NoError(t, err)

	assert.InDelta(t, 0.1, res.Returns[0], 1e-12)
	assert.InDelta(t, -0.1, res.Returns[1], 1e-12)
	assert.Equal(t, 2, res.Periods)

	// 1.1 * 0.9 - 1
	assert.InDelta(t, -0.01, res.TotalReturn, 1e-12)
	assert.InDelta(t, 0.0, res.MeanReturn, 1e-12)
	assert.InDelta(t, 0.1, res.StandardDeviation, 1e-12) // population
}

func TestReturns_Log(t *testing.T) {
	res, err := Returns([]float64{100, 100 * math.E}, Log)
	require.NoError(t, err)

	require.Len(t, res.Returns, 1)
	assert.InDelta(t, 1.0, res.Returns[0], 1e-12)
	assert.InDelta(t, 1.0, res.TotalReturn, 1e-12)
}

func TestReturns_LogSumsAcrossPeriods(t *testing.T) {
	// Log returns telescope: the total depends only on the endpoints.
	res, err := Returns([]float64{100, 97, 113, 104}, Log)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(104.0/100.0), res.TotalReturn, 1e-12)
}

func TestReturns_Validation(t *testing.T) {
	t.Run("single price", func(t *testing.T) {
		_, err := Returns([]float64{100}, Simple)
		assert.ErrorIs(t, err, ErrEmptyPrices)
	})

	t.Run("non-positive price", func(t *testing.T) {
		_, err := Returns([]float64{100, -5, 110}, Log)
		assert.ErrorIs(t, err, ErrInvalidPrices)
	})
}
