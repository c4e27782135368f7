// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package hmm implements hidden Markov model inference over Gaussian
// emissions: the scaled forward and backward recursions and log-space
// Viterbi decoding.
//
// # Numerical approach
//
// Raw forward probabilities shrink geometrically with sequence length and
// underflow to exact zero within tens of steps in double precision. The
// forward pass therefore renormalizes each time step's row to sum to 1 and
// records the normalization constant; the sum of the logs of those scaling
// factors recovers the sequence log-likelihood. The backward pass consumes
// the same scaling factors, and Viterbi avoids the problem entirely by
// working in log-space with zero probabilities clamped to a large finite
// penalty.
//
// # Degenerate inputs
//
// A time step where every state has zero probability mass (an observation
// far outside every emission distribution) is tolerated, not fatal: the row
// is left unscaled, the step contributes nothing to the log-likelihood, and
// the occurrence is reported through ForwardResult.ZeroScaleSteps and a
// prometheus counter. Structural errors (shape disagreements, non-positive
// variances, non-stochastic rows) fail immediately instead.
//
// # Concurrency
//
// Each recursion is sequential along the time axis. A Model is read-only
// during inference and may be shared across concurrently running calls;
// DecodeAll exploits this to decode independent sequences in parallel.
//
// Parameter re-estimation (Baum-Welch) is deliberately out of scope.
package hmm
