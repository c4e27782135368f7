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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxDrawdown(t *testing.T) {
	t.Run("unrecovered drawdown", func(t *testing.T) {
		// prices: 100 -> 110 -> 88 -> 92.4
		res := MaxDrawdown([]float64{0.1, -0.2, 0.05})

		assert.InDelta(t, 22.0, res.MaxDrawdown, 1e-9)
		assert.InDelta(t, 0.2, res.MaxDrawdownPercent, 1e-12)
		assert.Equal(t, 1, res.PeakIndex)
		assert.Equal(t, 2, res.TroughIndex)
		assert.InDelta(t, 110.0, res.PeakValue, 1e-9)
		assert.InDelta(t, 88.0, res.TroughValue, 1e-9)
		assert.Equal(t, -1, res.RecoveryIndex)
		assert.Equal(t, -1, res.RecoveryDuration)
		assert.Equal(t, 1, res.DrawdownDuration)
	})

	t.Run("recovery to a new high", func(t *testing.T) {
		// prices: 100 -> 110 -> 88 -> 114.4
		res := MaxDrawdown([]float64{0.1, -0.2, 0.3})

		assert.InDelta(t, 0.2, res.MaxDrawdownPercent, 1e-12)
		assert.Equal(t, 2, res.TroughIndex)
		assert.Equal(t, 3, res.RecoveryIndex)
		assert.Equal(t, 1, res.RecoveryDuration)
	})

	t.Run("monotonic growth has zero drawdown", func(t *testing.T) {
		res := MaxDrawdown([]float64{0.01, 0.02, 0.03})
		assert.Equal(t, 0.0, res.MaxDrawdownPercent)
		assert.Equal(t, 0.0, res.MaxDrawdown)
	})

	t.Run("empty returns", func(t *testing.T) {
		res := MaxDrawdown(nil)
		assert.Equal(t, 0.0, res.MaxDrawdown)
		assert.InDelta(t, 100.0, res.PeakValue, 1e-12)
	})
}
