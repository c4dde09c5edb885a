// Package dataset loads trial tables into contracts.Dataset.
//
// The text format mirrors the tool's input convention: a header row with
// one label per trial column, then one row per configuration holding the
// configuration parameter followed by the trial outcomes. Fields are
// separated by whitespace or commas; "NaN" or "-" marks a missing cell.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/wonny/stabrank/internal/contracts"
)

// Loader errors. Rows are never silently truncated or padded.
var (
	ErrEmptyInput    = errors.New("dataset: no header row")
	ErrShapeMismatch = errors.New("dataset: row width mismatch")
	ErrBadCell       = errors.New("dataset: non-numeric cell")
)

// Load reads a trial table from a file
func Load(path string) (*contracts.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads a trial table from r. source is recorded on the dataset
// for logging and run history.
func Parse(r io.Reader, source string) (*contracts.Dataset, error) {
	ds := &contracts.Dataset{Source: source}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitFields(line)

		// First data line is the header of trial labels.
		if ds.Labels == nil {
			ds.Labels = fields
			continue
		}

		if len(fields) != len(ds.Labels)+1 {
			return nil, fmt.Errorf("%w: line %d has %d fields, expected %d",
				ErrShapeMismatch, lineNo, len(fields), len(ds.Labels)+1)
		}

		param, err := parseCell(fields[0])
		if err != nil || math.IsNaN(param) {
			return nil, fmt.Errorf("%w: line %d parameter %q", ErrBadCell, lineNo, fields[0])
		}

		row := make([]float64, len(ds.Labels))
		for j, tok := range fields[1:] {
			v, err := parseCell(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q value %q",
					ErrBadCell, lineNo, ds.Labels[j], tok)
			}
			row[j] = v
		}

		ds.Params = append(ds.Params, param)
		ds.Values = append(ds.Values, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	if ds.Labels == nil {
		return nil, ErrEmptyInput
	}
	return ds, nil
}

// splitFields splits on whitespace or commas
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// parseCell parses one numeric cell. "-" and "NaN" (any case) mean
// missing; "Inf"/"+Inf"/"-Inf" are accepted as values.
func parseCell(tok string) (float64, error) {
	if tok == "-" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
