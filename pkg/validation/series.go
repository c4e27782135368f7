// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validation

import (
	"fmt"
	"math"
)

// ValidatePrices checks that a price series is usable for return and
// volatility computation: at least minLength entries, every value
// positive and finite.
//
// Returns an error naming the first offending index.
func ValidatePrices(prices []float64, minLength int) error {
	if len(prices) < minLength {
		return fmt.Errorf("price series has %d entries, need at least %d", len(prices), minLength)
	}
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("price at index %d is not finite: %v", i, p)
		}
		if p <= 0 {
			return fmt.Errorf("price at index %d is not positive: %v", i, p)
		}
	}
	return nil
}

// ValidateReturns checks that a return series is finite throughout and
// has at least minLength entries. Returns may be negative; -100% or
// worse is rejected because it breaks compounding.
func ValidateReturns(returns []float64, minLength int) error {
	if len(returns) < minLength {
		return fmt.Errorf("return series has %d entries, need at least %d", len(returns), minLength)
	}
	for i, r := range returns {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("return at index %d is not finite: %v", i, r)
		}
		if r <= -1 {
			return fmt.Errorf("return at index %d is <= -100%%: %v", i, r)
		}
	}
	return nil
}
