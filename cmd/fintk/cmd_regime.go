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
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/railpath/finance-toolkit/cmd/fintk/config"
	"github.com/railpath/finance-toolkit/pkg/features"
	"github.com/railpath/finance-toolkit/pkg/hmm"
	"github.com/railpath/finance-toolkit/pkg/validation"
)

var (
	regimeModelPath string
	regimeColumn    string
	regimeWindow    int
)

var regimeCmd = &cobra.Command{
	Use:   "regime [prices.csv...]",
	Short: "Decode market regimes from price series with a Gaussian HMM",
	Long: `Decode the most likely regime path for one or more price series.

Each CSV is turned into a return/volatility feature matrix, scored with
the scaled forward recursion, and decoded with Viterbi. Multiple files
are decoded concurrently.

The model file is YAML with transition, means, variances, and initial
blocks; run with a single file and --json for machine-readable output.

Examples:
  fintk regime prices.csv --model regimes.yaml
  fintk regime spy.csv qqq.csv --model regimes.yaml --window 20
  fintk regime prices.csv --model regimes.yaml --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRegimeCommand,
}

func init() {
	regimeCmd.Flags().StringVar(&regimeModelPath, "model", "",
		"Path to the regime model YAML (required)")
	regimeCmd.Flags().StringVar(&regimeColumn, "column", "",
		"CSV column holding prices (default: last column)")
	regimeCmd.Flags().IntVar(&regimeWindow, "window", 0,
		"Rolling volatility window (default: from config)")
	regimeCmd.MarkFlagRequired("model")

	rootCmd.AddCommand(regimeCmd)
}

// regimeReport is the per-file result emitted by the regime command.
type regimeReport struct {
	RunID          string  `json:"runId"`
	File           string  `json:"file"`
	Periods        int     `json:"periods"`
	LogLikelihood  float64 `json:"logLikelihood"`
	ZeroScaleSteps int     `json:"zeroScaleSteps"`
	CurrentState   int     `json:"currentState"`
	Path           []int   `json:"path"`
	Occupancy      []int   `json:"occupancy"`
}

func runRegimeCommand(cmd *cobra.Command, args []string) error {
	runID := uuid.NewString()
	log := logger.With("run_id", runID)

	window := regimeWindow
	if window == 0 {
		window = config.Global.Regime.VolatilityWindow
	}

	model, err := loadModel(regimeModelPath)
	if err != nil {
		return err
	}

	// Features must be computable: window returns plus one price to
	// anchor the first return.
	sequences := make([][][]float64, 0, len(args))
	for _, path := range args {
		prices, err := readFloatColumn(path, regimeColumn)
		if err != nil {
			return err
		}
		if err := validation.ValidatePrices(prices, window+2); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		obs, err := features.ExtractDefaultFeatures(prices, window)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		sequences = append(sequences, obs)
	}

	log.Info("decoding regimes",
		"files", len(sequences),
		"states", model.NumStates(),
		"window", window,
	)

	decoded, err := hmm.DecodeAll(cmd.Context(), sequences, model)
	if err != nil {
		return err
	}

	reports := make([]regimeReport, len(decoded))
	for i, res := range decoded {
		forward, err := hmm.Forward(sequences[i], model)
		if err != nil {
			return err
		}

		occupancy := make([]int, model.NumStates())
		for _, s := range res.Path {
			occupancy[s]++
		}

		reports[i] = regimeReport{
			RunID:          runID,
			File:           args[i],
			Periods:        len(res.Path),
			LogLikelihood:  forward.LogLikelihood,
			ZeroScaleSteps: forward.ZeroScaleSteps,
			CurrentState:   res.Path[len(res.Path)-1],
			Path:           res.Path,
			Occupancy:      occupancy,
		}
		if forward.ZeroScaleSteps > 0 {
			log.Warn("observations far outside model support",
				"file", args[i],
				"zero_scale_steps", forward.ZeroScaleSteps,
			)
		}
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(reports)
	}
	for _, r := range reports {
		fmt.Printf("%s: %d periods, current regime %d, log-likelihood %.4f\n",
			r.File, r.Periods, r.CurrentState, r.LogLikelihood)
		for state, count := range r.Occupancy {
			fmt.Printf("  state %d: %d periods (%.1f%%)\n",
				state, count, 100*float64(count)/float64(r.Periods))
		}
	}
	return nil
}
