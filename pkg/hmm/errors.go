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
	"errors"
	"fmt"
)

// Sentinel errors for inference calls.
var (
	// ErrInvalidParameter indicates a model parameter outside its valid domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDimensionMismatch indicates disagreeing matrix or vector shapes.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrEmptyObservations indicates an observation sequence with no steps.
	// It matches ErrInvalidParameter under errors.Is.
	ErrEmptyObservations = fmt.Errorf("%w: empty observation sequence", ErrInvalidParameter)
)

// DimensionMismatchError reports a shape that disagrees with the declared
// state or feature counts.
type DimensionMismatchError struct {
	Field string
	Want  int
	Got   int
}

// Error implements the error interface.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: %s has length %d, want %d", e.Field, e.Got, e.Want)
}

// Unwrap returns the sentinel error.
func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}

// InvalidParameterError reports a parameter value outside its valid domain.
type InvalidParameterError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// Unwrap returns the sentinel error.
func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}
