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

import "errors"

// Package-level error definitions.
var (
	// ErrEmptyReturns indicates an empty required return series.
	ErrEmptyReturns = errors.New("returns cannot be empty")

	// ErrEmptyPrices indicates an empty required price series.
	ErrEmptyPrices = errors.New("prices cannot be empty")

	// ErrLengthMismatch indicates series that must align but do not.
	ErrLengthMismatch = errors.New("series lengths must match")

	// ErrInvalidLambda indicates an EWMA decay outside (0, 1).
	ErrInvalidLambda = errors.New("lambda must be between 0 and 1")

	// ErrInvalidConfidence indicates a confidence level outside (0, 1).
	ErrInvalidConfidence = errors.New("confidence level must be between 0 and 1")

	// ErrInvalidPrices indicates non-positive prices or high < low.
	ErrInvalidPrices = errors.New("invalid prices")

	// ErrEmptyCashFlows indicates an empty required cash-flow series.
	ErrEmptyCashFlows = errors.New("cash flows cannot be empty")

	// ErrInvalidCashFlows indicates cash flows that produce a non-positive
	// valuation denominator.
	ErrInvalidCashFlows = errors.New("invalid cash flows")

	// ErrNoConvergence indicates the IRR iteration failed to find a root.
	ErrNoConvergence = errors.New("irr did not converge")
)
