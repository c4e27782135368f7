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

	"github.com/spf13/cobra"

	"github.com/railpath/finance-toolkit/cmd/fintk/config"
	"github.com/railpath/finance-toolkit/pkg/portfolio"
)

var (
	optimizeMinWeight float64
	optimizeMaxWeight float64

	rebalanceTarget string
	rebalanceValues string

	metricsColumn string
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Multi-asset analytics: optimization, rebalancing, and metrics",
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [returns.csv]",
	Short: "Compute minimum-variance weights from an asset return matrix",
	Long: `Compute the minimum-variance portfolio for the assets in a CSV whose
columns are per-asset return series.

Examples:
  fintk portfolio optimize returns.csv
  fintk portfolio optimize returns.csv --min-weight 0.05 --max-weight 0.4`,
	Args: cobra.ExactArgs(1),
	RunE: runOptimizeCommand,
}

var rebalanceCmd = &cobra.Command{
	Use:   "rebalance",
	Short: "Compute the trades that move holdings to target weights",
	Long: `Compute per-asset buy/sell notionals and the estimated transaction
cost for moving current holdings to a target allocation.

Examples:
  fintk portfolio rebalance --target 0.6,0.4 --values 55000,52000`,
	RunE: runRebalanceCommand,
}

var metricsCmd = &cobra.Command{
	Use:   "metrics [values.csv]",
	Short: "Summarize a portfolio value path",
	Long: `Compute total return, CAGR, drawdowns, volatility, Sharpe/Sortino,
and historical VaR from a portfolio value series.

Examples:
  fintk portfolio metrics equity_curve.csv
  fintk portfolio metrics equity_curve.csv --json`,
	Args: cobra.ExactArgs(1),
	RunE: runMetricsCommand,
}

func init() {
	optimizeCmd.Flags().Float64Var(&optimizeMinWeight, "min-weight", 0,
		"Lower bound per asset weight")
	optimizeCmd.Flags().Float64Var(&optimizeMaxWeight, "max-weight", 1,
		"Upper bound per asset weight")

	rebalanceCmd.Flags().StringVar(&rebalanceTarget, "target", "",
		"Comma-separated target weights (required)")
	rebalanceCmd.Flags().StringVar(&rebalanceValues, "values", "",
		"Comma-separated current notional values (required)")
	rebalanceCmd.MarkFlagRequired("target")
	rebalanceCmd.MarkFlagRequired("values")

	metricsCmd.Flags().StringVar(&metricsColumn, "column", "",
		"CSV column holding portfolio values (default: last column)")

	portfolioCmd.AddCommand(optimizeCmd)
	portfolioCmd.AddCommand(rebalanceCmd)
	portfolioCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(portfolioCmd)
}

func runOptimizeCommand(cmd *cobra.Command, args []string) error {
	returns, names, err := readFloatMatrix(args[0])
	if err != nil {
		return err
	}

	cov, err := portfolio.CovarianceMatrix(returns)
	if err != nil {
		return err
	}

	expected := make([]float64, len(returns))
	for i, series := range returns {
		var sum float64
		for _, r := range series {
			sum += r
		}
		expected[i] = sum / float64(len(series)) * float64(config.Global.Analytics.AnnualizationFactor)
	}

	result, err := portfolio.MinimumVariance(expected, cov.Matrix,
		config.Global.Analytics.RiskFreeRate, optimizeMinWeight, optimizeMaxWeight)
	if err != nil {
		return err
	}

	logger.Info("optimized portfolio",
		"assets", result.Assets,
		"volatility", result.Volatility,
	)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(struct {
			*portfolio.OptimizationResult
			Names []string `json:"names"`
		}{result, names})
	}
	fmt.Printf("Minimum-variance portfolio (%d assets)\n", result.Assets)
	for i, w := range result.Weights {
		fmt.Printf("  %-10s %7.2f%%\n", names[i], w*100)
	}
	fmt.Printf("  expected return %.4f, volatility %.4f, sharpe %.4f\n",
		result.ExpectedReturn, result.Volatility, result.SharpeRatio)
	return nil
}

func runRebalanceCommand(cmd *cobra.Command, args []string) error {
	target, err := parseFloatList(rebalanceTarget)
	if err != nil {
		return fmt.Errorf("--target: %w", err)
	}
	values, err := parseFloatList(rebalanceValues)
	if err != nil {
		return fmt.Errorf("--values: %w", err)
	}

	result, err := portfolio.Rebalance(target, values)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	fmt.Printf("Rebalancing %d assets (total value %.2f)\n", len(target), result.TotalValue)
	for i, trade := range result.Trades {
		action := "buy"
		if trade < 0 {
			action = "sell"
		}
		fmt.Printf("  asset %d: %s %.2f (%.2f%% -> %.2f%%)\n",
			i, action, abs(trade), result.CurrentWeights[i]*100, result.TargetWeights[i]*100)
	}
	fmt.Printf("  total traded %.2f, estimated cost %.2f\n", result.TotalTraded, result.Cost)
	return nil
}

func runMetricsCommand(cmd *cobra.Command, args []string) error {
	values, err := readFloatColumn(args[0], metricsColumn)
	if err != nil {
		return err
	}

	result, err := portfolio.Metrics(values,
		config.Global.Analytics.RiskFreeRate,
		config.Global.Analytics.AnnualizationFactor,
		config.Global.Analytics.ConfidenceLevel)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(result)
	}
	fmt.Printf("Portfolio metrics (%d periods)\n", result.Periods)
	fmt.Printf("  total return     %9.2f%%\n", result.TotalReturn*100)
	fmt.Printf("  CAGR             %9.2f%%\n", result.CAGR*100)
	fmt.Printf("  max drawdown     %9.2f%%\n", result.MaxDrawdownPercent*100)
	fmt.Printf("  current drawdown %9.2f%%\n", result.CurrentDrawdownPercent*100)
	fmt.Printf("  volatility       %9.4f\n", result.Volatility)
	fmt.Printf("  sharpe           %9.4f\n", result.SharpeRatio)
	fmt.Printf("  sortino          %9.4f\n", result.SortinoRatio)
	fmt.Printf("  VaR              %9.4f\n", result.VaR)
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
