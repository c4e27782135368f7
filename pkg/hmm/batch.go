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

	"golang.org/x/sync/errgroup"
)

// DecodeAll runs Viterbi decoding over independent sequences in parallel.
//
// Description:
//
//	Each recursion is sequential along its own time axis, but separate
//	sequences (multiple assets, multiple fixture cases) share no mutable
//	state: every call owns its own delta/psi matrices and decoded path,
//	and the model is read-only throughout. DecodeAll fans one goroutine
//	out per sequence and preserves input order in the results.
//
// Inputs:
//   - ctx: Context for cancellation. Must not be nil.
//   - sequences: Independent T_k x D observation matrices.
//   - model: The shared read-only model parameters.
//
// Outputs:
//   - []*ViterbiResult: One result per sequence, in input order.
//   - error: The first validation failure or context error; on error the
//     results slice is nil.
//
// Thread Safety: Safe for concurrent use.
func DecodeAll(ctx context.Context, sequences [][][]float64, model *Model) ([]*ViterbiResult, error) {
	// Validate once up front so a bad model fails fast instead of N times.
	if err := model.Validate(); err != nil {
		return nil, err
	}

	results := make([]*ViterbiResult, len(sequences))
	g, ctx := errgroup.WithContext(ctx)

	for k, seq := range sequences {
		k, seq := k, seq
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Viterbi(seq, model)
			if err != nil {
				return err
			}
			results[k] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
