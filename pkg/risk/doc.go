// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package risk provides closed-form risk and performance metrics over
// return series: Sharpe/Sortino/Calmar ratios, historical and parametric
// Value-at-Risk with expected shortfall, drawdown analysis, higher moments,
// CAPM alpha/beta, and EWMA and range-based volatility estimators.
//
// Every function is a direct formula evaluation with no recursive state.
// The sample-vs-population standard deviation choice (ddof) is fixed per
// function and intentional: changing one silently changes reported numbers
// against established fixtures.
package risk
