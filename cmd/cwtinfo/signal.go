package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-cwt/dsp/cwt"
)

// readSignal parses CSV with one row per sample and one column per channel.
// Lines starting with '#' are skipped, as is a leading header row in which
// no field is a number. Empty fields and "nan" read as NaN.
func readSignal(r io.Reader) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var rows [][]float64
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		row, err := parseRow(rec)
		if err != nil {
			if line == 1 && isHeader(rec) {
				continue
			}
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return cwt.FromRows(rows)
}

func parseRow(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for i, f := range rec {
		f = strings.TrimSpace(f)
		if f == "" {
			row[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		row[i] = x
	}
	return row, nil
}

func isHeader(rec []string) bool {
	for _, f := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err == nil {
			return false
		}
	}
	return true
}

// checkFinite reports the first NaN or infinite sample of m. NaN samples
// are accepted when they will be interpolated.
func checkFinite(m mat.Matrix, allowNaN bool) error {
	r, c := m.Dims()
	for i := range r {
		for j := range c {
			x := m.At(i, j)
			switch {
			case math.IsNaN(x) && !allowNaN:
				return fmt.Errorf("sample %d of channel %d is NaN (use --interp-nan to fill gaps)", i, j)
			case math.IsInf(x, 0):
				return fmt.Errorf("sample %d of channel %d is infinite", i, j)
			}
		}
	}
	return nil
}

// impulse returns a single-channel signal of length n with a unit sample
// at the middle.
func impulse(n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("impulse length must be positive, got %d", n)
	}
	x := make([]float64, n)
	x[n/2] = 1
	return cwt.FromChannels(x)
}
