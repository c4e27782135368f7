// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package hmm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAll(t *testing.T) {
	model := stickyModel()
	ctx := context.Background()

	t.Run("matches sequential decoding in input order", func(t *testing.T) {
		sequences := [][][]float64{
			{{0.1}, {0.3}, {5.1}},
			{{4.9}, {5.2}},
			{{0.0}, {5.0}, {0.2}, {4.8}},
		}

		got, err := DecodeAll(ctx, sequences, model)
		require.NoError(t, err)
		require.Len(t, got, len(sequences))

		for k, seq := range sequences {
			want, err := Viterbi(seq, model)
			require.NoError(t, err)
			assert.Equal(t, want.Path, got[k].Path, "sequence %d", k)
			assert.InDelta(t, want.LogProbability, got[k].LogProbability, 1e-12, "sequence %d", k)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		got, err := DecodeAll(ctx, nil, model)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("one bad sequence fails the batch", func(t *testing.T) {
		sequences := [][][]float64{
			{{0.1}},
			{}, // empty sequence
		}
		_, err := DecodeAll(ctx, sequences, model)
		assert.ErrorIs(t, err, ErrEmptyObservations)
	})

	t.Run("invalid model fails before decoding", func(t *testing.T) {
		bad := stickyModel()
		bad.Initial = []float64{0.4, 0.4}
		_, err := DecodeAll(ctx, [][][]float64{{{0.1}}}, bad)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := DecodeAll(cancelled, [][][]float64{{{0.1}}, {{0.2}}}, model)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestModelValidate(t *testing.T) {
	t.Run("valid model passes", func(t *testing.T) {
		assert.NoError(t, stickyModel().Validate())
	})

	t.Run("no states", func(t *testing.T) {
		m := &Model{}
		assert.ErrorIs(t, m.Validate(), ErrInvalidParameter)
	})

	t.Run("negative probability", func(t *testing.T) {
		m := stickyModel()
		m.Transition[0] = []float64{1.1, -0.1}
		assert.ErrorIs(t, m.Validate(), ErrInvalidParameter)
	})

	t.Run("emission count mismatch", func(t *testing.T) {
		m := stickyModel()
		m.Emissions = m.Emissions[:1]
		assert.ErrorIs(t, m.Validate(), ErrDimensionMismatch)
	})

	t.Run("means variances length disagreement", func(t *testing.T) {
		m := stickyModel()
		m.Emissions[1].Variances = []float64{1, 1}
		assert.ErrorIs(t, m.Validate(), ErrDimensionMismatch)
	})
}
