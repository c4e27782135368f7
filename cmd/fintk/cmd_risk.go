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
	"github.com/railpath/finance-toolkit/pkg/risk"
	"github.com/railpath/finance-toolkit/pkg/validation"
)

var (
	riskFromPrices bool
	riskColumn     string
	riskTicker     string
	riskConfidence float64
	riskLambda     float64
	riskRiskFree   float64
)

var riskCmd = &cobra.Command{
	Use:   "risk [series.csv]",
	Short: "Compute a risk metric panel for a return series",
	Long: `Compute performance ratios, Value-at-Risk, drawdown, and moment
statistics for a single return series.

By default the CSV holds period returns. With --prices it holds prices
and simple returns are derived first.

Examples:
  fintk risk returns.csv
  fintk risk spy.csv --prices --ticker SPY
  fintk risk returns.csv --confidence 0.99 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runRiskCommand,
}

func init() {
	riskCmd.Flags().BoolVar(&riskFromPrices, "prices", false,
		"Treat the CSV as prices and derive simple returns")
	riskCmd.Flags().StringVar(&riskColumn, "column", "",
		"CSV column to read (default: last column)")
	riskCmd.Flags().StringVar(&riskTicker, "ticker", "",
		"Ticker label for the output")
	riskCmd.Flags().Float64Var(&riskConfidence, "confidence", 0,
		"VaR confidence level (default: from config)")
	riskCmd.Flags().Float64Var(&riskLambda, "lambda", 0,
		"EWMA decay factor (default: from config)")
	riskCmd.Flags().Float64Var(&riskRiskFree, "risk-free", -1,
		"Annualized risk-free rate (default: from config)")

	rootCmd.AddCommand(riskCmd)
}

// riskReport is the flat metric panel emitted by the risk command.
type riskReport struct {
	Ticker  string `json:"ticker,omitempty"`
	Periods int    `json:"periods"`

	MeanReturn           float64 `json:"meanReturn"`
	AnnualizedVolatility float64 `json:"annualizedVolatility"`
	SharpeRatio          float64 `json:"sharpeRatio"`
	SortinoRatio         float64 `json:"sortinoRatio"`
	CalmarRatio          float64 `json:"calmarRatio"`

	HistoricalVaR     float64 `json:"historicalVaR"`
	ExpectedShortfall float64 `json:"expectedShortfall"`
	ParametricVaR     float64 `json:"parametricVaR"`
	ConfidenceLevel   float64 `json:"confidenceLevel"`

	EWMAVolatility     float64 `json:"ewmaVolatility"`
	MaxDrawdownPercent float64 `json:"maxDrawdownPercent"`
	Skewness           float64 `json:"skewness"`
	ExcessKurtosis     float64 `json:"excessKurtosis"`
}

func runRiskCommand(cmd *cobra.Command, args []string) error {
	ticker := riskTicker
	if ticker != "" {
		var err error
		if ticker, err = validation.SanitizeTicker(ticker); err != nil {
			return err
		}
	}

	confidence := riskConfidence
	if confidence == 0 {
		confidence = config.Global.Analytics.ConfidenceLevel
	}
	lambda := riskLambda
	if lambda == 0 {
		lambda = config.Global.Analytics.EWMALambda
	}
	riskFree := riskRiskFree
	if riskFree < 0 {
		riskFree = config.Global.Analytics.RiskFreeRate
	}
	annualization := config.Global.Analytics.AnnualizationFactor

	returns, err := readFloatColumn(args[0], riskColumn)
	if err != nil {
		return err
	}
	if riskFromPrices {
		if err := validation.ValidatePrices(returns, 3); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		derived, err := risk.Returns(returns, risk.Simple)
		if err != nil {
			return err
		}
		returns = derived.Returns
	}
	if err := validation.ValidateReturns(returns, 2); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	logger.Info("computing risk panel",
		"file", args[0],
		"ticker", ticker,
		"periods", len(returns),
		"confidence", confidence,
	)

	sharpe, err := risk.Sharpe(returns, riskFree, annualization)
	if err != nil {
		return err
	}
	sortino, err := risk.Sortino(returns, riskFree, 0, annualization)
	if err != nil {
		return err
	}
	calmar, err := risk.Calmar(returns, annualization)
	if err != nil {
		return err
	}
	histVaR, err := risk.HistoricalVaR(returns, confidence)
	if err != nil {
		return err
	}
	paraVaR, err := risk.ParametricVaR(returns, confidence)
	if err != nil {
		return err
	}
	ewma, err := risk.EWMAVolatility(returns, lambda)
	if err != nil {
		return err
	}

	report := riskReport{
		Ticker:               ticker,
		Periods:              len(returns),
		MeanReturn:           sharpe.AnnualizedReturn,
		AnnualizedVolatility: sharpe.AnnualizedVolatility,
		SharpeRatio:          sharpe.SharpeRatio,
		SortinoRatio:         sortino.SortinoRatio,
		CalmarRatio:          calmar.CalmarRatio,
		HistoricalVaR:        histVaR.VaR,
		ExpectedShortfall:    histVaR.CVaR,
		ParametricVaR:        paraVaR.VaR,
		ConfidenceLevel:      confidence,
		EWMAVolatility:       ewma.Volatility,
		MaxDrawdownPercent:   risk.MaxDrawdown(returns).MaxDrawdownPercent,
		Skewness:             risk.Skewness(returns),
		ExcessKurtosis:       risk.Kurtosis(returns).ExcessKurtosis,
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	if report.Ticker != "" {
		fmt.Printf("Risk panel for %s (%d periods)\n", report.Ticker, report.Periods)
	} else {
		fmt.Printf("Risk panel (%d periods)\n", report.Periods)
	}
	fmt.Printf("  annualized return      %10.4f\n", report.MeanReturn)
	fmt.Printf("  annualized volatility  %10.4f\n", report.AnnualizedVolatility)
	fmt.Printf("  sharpe                 %10.4f\n", report.SharpeRatio)
	fmt.Printf("  sortino                %10.4f\n", report.SortinoRatio)
	fmt.Printf("  calmar                 %10.4f\n", report.CalmarRatio)
	fmt.Printf("  VaR %.0f%% (historical)  %10.4f\n", confidence*100, report.HistoricalVaR)
	fmt.Printf("  expected shortfall     %10.4f\n", report.ExpectedShortfall)
	fmt.Printf("  VaR %.0f%% (parametric)  %10.4f\n", confidence*100, report.ParametricVaR)
	fmt.Printf("  EWMA volatility        %10.4f\n", report.EWMAVolatility)
	fmt.Printf("  max drawdown           %9.2f%%\n", report.MaxDrawdownPercent*100)
	fmt.Printf("  skewness               %10.4f\n", report.Skewness)
	fmt.Printf("  excess kurtosis        %10.4f\n", report.ExcessKurtosis)
	return nil
}
