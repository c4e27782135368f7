// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/railpath/finance-toolkit/pkg/hmm"
)

// modelSpec is the on-disk YAML shape of a regime model.
//
// Example:
//
//	transition:
//	  - [0.95, 0.05]
//	  - [0.05, 0.95]
//	means:
//	  - [0.001, 0.01]   # calm: small returns, low volatility
//	  - [-0.002, 0.04]  # stressed
//	variances:
//	  - [0.0001, 0.0001]
//	  - [0.0004, 0.0004]
//	initial: [0.5, 0.5]
type modelSpec struct {
	Transition [][]float64 `yaml:"transition"`
	Means      [][]float64 `yaml:"means"`
	Variances  [][]float64 `yaml:"variances"`
	Initial    []float64   `yaml:"initial"`
}

// loadModel reads and validates a regime model YAML file.
func loadModel(path string) (*hmm.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}

	var spec modelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	if len(spec.Means) != len(spec.Variances) {
		return nil, fmt.Errorf("model %s: means and variances disagree on state count", path)
	}

	emissions := make([]hmm.EmissionParams, len(spec.Means))
	for i := range spec.Means {
		emissions[i] = hmm.EmissionParams{
			Means:     spec.Means[i],
			Variances: spec.Variances[i],
		}
	}

	model := &hmm.Model{
		Transition: spec.Transition,
		Emissions:  emissions,
		Initial:    spec.Initial,
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return model, nil
}
