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

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := validator.New().Struct(DefaultConfig()); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analytics.AnnualizationFactor != 252 {
		t.Errorf("AnnualizationFactor = %d, want 252", cfg.Analytics.AnnualizationFactor)
	}
	if cfg.Analytics.ConfidenceLevel != 0.95 {
		t.Errorf("ConfidenceLevel = %v, want 0.95", cfg.Analytics.ConfidenceLevel)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestConfig_RoundTripsThroughYAML(t *testing.T) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	var cfg FintkConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}

func TestConfig_ValidatorRejectsBadValues(t *testing.T) {
	v := validator.New()

	cfg := DefaultConfig()
	cfg.Analytics.ConfidenceLevel = 1.5
	if err := v.Struct(cfg); err == nil {
		t.Error("confidence level 1.5 must fail validation")
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := v.Struct(cfg); err == nil {
		t.Error("unknown log level must fail validation")
	}

	cfg = DefaultConfig()
	cfg.Analytics.EWMALambda = 1.0
	if err := v.Struct(cfg); err == nil {
		t.Error("lambda of exactly 1 must fail validation")
	}
}
