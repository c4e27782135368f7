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

	"github.com/spf13/cobra"

	"github.com/railpath/finance-toolkit/cmd/fintk/config"
	"github.com/railpath/finance-toolkit/pkg/logging"
)

// --- Global Command Variables ---
var (
	jsonOutput bool

	// logger is initialized in PersistentPreRunE from the loaded config.
	logger = logging.Default()

	rootCmd = &cobra.Command{
		Use:   "fintk",
		Short: "A cli for market regime detection and portfolio risk analytics",
		Long: `Fintk decodes market regimes with Gaussian hidden Markov models
and computes risk and portfolio metrics from price and return series.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			logger = logging.New(logging.Config{
				Level:   parseLogLevel(config.Global.Logging.Level),
				LogDir:  config.Global.Logging.Dir,
				Service: "fintk",
				JSON:    config.Global.Logging.JSON,
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Close()
		},
	}
)

// parseLogLevel maps a config level string onto a logging.Level,
// defaulting to Info for anything unrecognized.
func parseLogLevel(level string) logging.Level {
	switch level {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output results as JSON")
}
