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

import "errors"

// Package-level error definitions.
var (
	// ErrEmptyInput indicates an empty return matrix or value series.
	ErrEmptyInput = errors.New("input cannot be empty")

	// ErrDimensionMismatch indicates inputs whose shapes disagree.
	ErrDimensionMismatch = errors.New("input dimensions must agree")

	// ErrInvalidAssetCount indicates a non-positive asset count.
	ErrInvalidAssetCount = errors.New("number of assets must be positive")

	// ErrSingularCovariance indicates a covariance matrix that cannot be
	// solved for minimum-variance weights.
	ErrSingularCovariance = errors.New("covariance matrix is singular")

	// ErrInvalidValues indicates portfolio values that are non-positive
	// where positive values are required.
	ErrInvalidValues = errors.New("invalid portfolio values")
)
