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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// inferenceTotal counts inference calls by algorithm and result.
	inferenceTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fintk_hmm_inference_total",
		Help: "Total HMM inference calls by algorithm and result",
	}, []string{"algorithm", "result"})

	// inferenceDuration tracks inference latency by algorithm.
	inferenceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fintk_hmm_inference_duration_seconds",
		Help:    "HMM inference duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
	}, []string{"algorithm"})

	// zeroScaleSteps counts forward steps with zero total probability mass.
	zeroScaleSteps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fintk_hmm_zero_scale_steps_total",
		Help: "Total forward steps whose scaling factor was zero (degenerate observations)",
	})
)
