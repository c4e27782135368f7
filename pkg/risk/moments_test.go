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
)

func TestKurtosis(t *testing.T) {
	t.Run("two point distribution", func(t *testing.T) {
		// +-1 alternating: every standardized deviation is exactly 1, so
		// the fourth moment ratio is 1 and excess kurtosis is -2.
		res := Kurtosis([]float64{1, -1, 1, -1})
		if math.Abs(res.Kurtosis-1) > 1e-12 {
			t.Errorf("Kurtosis = %v, want 1", res.Kurtosis)
		}
		if math.Abs(res.ExcessKurtosis+2) > 1e-12 {
			t.Errorf("ExcessKurtosis = %v, want -2", res.ExcessKurtosis)
		}
	})

	t.Run("fewer than four returns", func(t *testing.T) {
		if res := Kurtosis([]float64{0.1, 0.2, 0.3}); res.Kurtosis != 0 {
			t.Errorf("Kurtosis = %v, want 0", res.Kurtosis)
		}
	})

	t.Run("constant series", func(t *testing.T) {
		if res := Kurtosis([]float64{0.5, 0.5, 0.5, 0.5}); res.Kurtosis != 0 {
			t.Errorf("Kurtosis = %v, want 0", res.Kurtosis)
		}
	})
}

func TestSkewness(t *testing.T) {
	t.Run("symmetric series", func(t *testing.T) {
		if s := Skewness([]float64{-1, 0, 1}); math.Abs(s) > 1e-12 {
			t.Errorf("Skewness = %v, want 0", s)
		}
	})

	t.Run("right tail", func(t *testing.T) {
		// Three zeros and a single large positive value: population
		// skewness is exactly 2/sqrt(3).
		got := Skewness([]float64{0, 0, 0, 10})
		want := 2 / math.Sqrt(3)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("Skewness = %v, want %v", got, want)
		}
	})

	t.Run("fewer than three returns", func(t *testing.T) {
		if s := Skewness([]float64{0.1, 0.2}); s != 0 {
			t.Errorf("Skewness = %v, want 0", s)
		}
	})
}

func TestSemideviation(t *testing.T) {
	res := Semideviation([]float64{0.02, -0.01, 0.03, -0.02}, 0)

	want := math.Sqrt(1.25e-4)
	if math.Abs(res.Semideviation-want) > 1e-12 {
		t.Errorf("Semideviation = %v, want %v", res.Semideviation, want)
	}
	if res.DownsideCount != 2 || res.TotalCount != 4 {
		t.Errorf("counts = %d/%d, want 2/4", res.DownsideCount, res.TotalCount)
	}
	if res.DownsidePercentage != 50 {
		t.Errorf("DownsidePercentage = %v, want 50", res.DownsidePercentage)
	}
	if math.Abs(res.AnnualizedSemideviation-want*math.Sqrt(252)) > 1e-12 {
		t.Errorf("AnnualizedSemideviation = %v", res.AnnualizedSemideviation)
	}

	t.Run("no downside", func(t *testing.T) {
		res := Semideviation([]float64{0.01, 0.02, 0.03}, 0)
		if res.Semideviation != 0 || res.DownsideCount != 0 {
			t.Errorf("got %+v, want zero downside", res)
		}
	})

	t.Run("too short", func(t *testing.T) {
		res := Semideviation([]float64{-0.5}, 0)
		if res.Semideviation != 0 || res.TotalCount != 0 {
			t.Errorf("got %+v, want zero result", res)
		}
	})
}

func TestStandardDeviation(t *testing.T) {
	res := StandardDeviation([]float64{0.01, 0.03})

	if math.Abs(res.StandardDeviation-0.01) > 1e-12 {
		t.Errorf("StandardDeviation = %v, want 0.01 (population)", res.StandardDeviation)
	}
	if math.Abs(res.MeanReturn-0.02) > 1e-12 {
		t.Errorf("MeanReturn = %v, want 0.02", res.MeanReturn)
	}
	if math.Abs(res.AnnualizedStandardDeviation-0.01*math.Sqrt(252)) > 1e-12 {
		t.Errorf("AnnualizedStandardDeviation = %v", res.AnnualizedStandardDeviation)
	}

	if res := StandardDeviation([]float64{0.01}); res.StandardDeviation != 0 {
		t.Errorf("single return must yield zero, got %v", res.StandardDeviation)
	}
}
