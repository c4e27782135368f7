// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

// FintkConfig is the persisted CLI configuration, stored at
// ~/.fintk/fintk.yaml and created with defaults on first run.
type FintkConfig struct {
	// Analytics carries the defaults applied when a command flag is not
	// given.
	Analytics AnalyticsConfig `yaml:"analytics"`

	// Regime configures HMM regime decoding.
	Regime RegimeConfig `yaml:"regime"`

	// Logging configures the CLI logger.
	Logging LoggingConfig `yaml:"logging"`
}

type AnalyticsConfig struct {
	// AnnualizationFactor is the number of return periods per year.
	AnnualizationFactor int `yaml:"annualization_factor" validate:"gt=0"`

	// RiskFreeRate is the annualized risk-free rate used by ratio
	// metrics.
	RiskFreeRate float64 `yaml:"risk_free_rate" validate:"gte=0,lt=1"`

	// ConfidenceLevel is the default VaR confidence, in (0, 1).
	ConfidenceLevel float64 `yaml:"confidence_level" validate:"gt=0,lt=1"`

	// EWMALambda is the default EWMA decay factor, in (0, 1).
	EWMALambda float64 `yaml:"ewma_lambda" validate:"gt=0,lt=1"`
}

type RegimeConfig struct {
	// VolatilityWindow is the trailing window for the rolling
	// volatility feature.
	VolatilityWindow int `yaml:"volatility_window" validate:"gte=2"`
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// Dir enables file logging when non-empty. Supports ~ expansion.
	Dir string `yaml:"dir"`

	// JSON switches stderr logs to JSON.
	JSON bool `yaml:"json"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() FintkConfig {
	return FintkConfig{
		Analytics: AnalyticsConfig{
			AnnualizationFactor: 252,
			RiskFreeRate:        0.02,
			ConfidenceLevel:     0.95,
			EWMALambda:          0.94,
		},
		Regime: RegimeConfig{
			VolatilityWindow: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
