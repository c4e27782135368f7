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
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readCSV reads all records from a CSV file.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	return records, nil
}

// hasHeader reports whether the first record fails to parse as numbers,
// which marks it as a header row.
func hasHeader(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
			return true
		}
	}
	return false
}

// readFloatColumn reads one numeric column from a CSV file. With an
// empty column name it takes the last column, which covers both bare
// single-column files and date,value exports.
func readFloatColumn(path, column string) ([]float64, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idx := len(records[0]) - 1
	start := 0
	if hasHeader(records[0]) {
		start = 1
		if column != "" {
			idx = -1
			for i, name := range records[0] {
				if strings.EqualFold(strings.TrimSpace(name), column) {
					idx = i
					break
				}
			}
			if idx < 0 {
				return nil, fmt.Errorf("%s has no column %q", path, column)
			}
		}
	} else if column != "" {
		return nil, fmt.Errorf("%s has no header row to resolve column %q", path, column)
	}

	values := make([]float64, 0, len(records)-start)
	for line := start; line < len(records); line++ {
		record := records[line]
		if idx >= len(record) {
			return nil, fmt.Errorf("%s line %d has %d fields, need %d", path, line+1, len(record), idx+1)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line+1, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s has no data rows", path)
	}
	return values, nil
}

// readFloatMatrix reads every column of a CSV file into an asset-major
// matrix: result[i] is the series of column i. Column names come from
// the header row, or col0..colN without one.
func readFloatMatrix(path string) ([][]float64, []string, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}

	cols := len(records[0])
	start := 0
	names := make([]string, cols)
	if hasHeader(records[0]) {
		start = 1
		for i, name := range records[0] {
			names[i] = strings.TrimSpace(name)
		}
	} else {
		for i := range names {
			names[i] = fmt.Sprintf("col%d", i)
		}
	}
	if start >= len(records) {
		return nil, nil, fmt.Errorf("%s has no data rows", path)
	}

	matrix := make([][]float64, cols)
	for i := range matrix {
		matrix[i] = make([]float64, 0, len(records)-start)
	}
	for line := start; line < len(records); line++ {
		record := records[line]
		if len(record) != cols {
			return nil, nil, fmt.Errorf("%s line %d has %d fields, want %d", path, line+1, len(record), cols)
		}
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s line %d: %w", path, line+1, err)
			}
			matrix[i] = append(matrix[i], v)
		}
	}
	return matrix, names, nil
}

// parseFloatList parses a comma-separated float list given on the
// command line, e.g. "0.5,0.3,0.2".
func parseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}
