// SPDX-License-Identifier: MIT

// Package matrix - the text notation: rendering (Format, FormatVec) and parsing
// (ParseMatrix, ParseVector).
//
// Notation:
//   - Vector: whitespace-separated decimal literals, e.g. "1 2.5 -3e2".
//   - Matrix: rows separated by '|' or line breaks, elements by whitespace,
//     e.g. "1 2 3 | 4 5 6". '[' and ']' are ignored, so rendered output
//     ("[ 1.000 2.000 ]\n[ 3.000 4.000 ]") parses back.
//   - Short rows are zero-padded on the right up to the longest row.
//
// Literal grammar: optional sign, digits with optional fraction (or a leading
// '.'), optional exponent. NaN, Inf, hex floats and digit separators are rejected.

package matrix

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// decimalLiteral is the accepted element grammar.
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

	// rowSeparator splits matrix text into rows.
	rowSeparator = regexp.MustCompile(`\r?\n|\|`)

	// bracketStripper blanks out the row decorations emitted by Format.
	bracketStripper = strings.NewReplacer("[", " ", "]", " ")
)

// clampPrecision keeps p within [0, MaxPrecision].
func clampPrecision(p int) int {
	if p < 0 {
		return 0
	}
	if p > MaxPrecision {
		return MaxPrecision
	}

	return p
}

// formatValue renders one element with p fractional digits.
func formatValue(v float64, p int) string {
	return strconv.FormatFloat(v, 'f', p, 64)
}

// Format renders m row by row as "[ v v v ]" with precision fractional digits,
// rows joined by "\n" (no trailing newline). Precision is clamped to
// [0, MaxPrecision]. A nil matrix renders as "".
// Complexity: O(r*c).
func Format(m Matrix, precision int) string {
	if m == nil {
		return ""
	}
	p := clampPrecision(precision)
	var sb strings.Builder
	var v float64
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("[ ")
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // in bounds
			sb.WriteString(formatValue(v, p))
			sb.WriteByte(' ')
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// FormatVec renders v as space-separated values with precision fractional digits.
// A nil vector renders as "".
// Complexity: O(n).
func FormatVec(v Vector, precision int) string {
	if v == nil {
		return ""
	}
	p := clampPrecision(precision)
	parts := make([]string, v.Dim())
	var x float64
	for i := range parts {
		x, _ = v.At(i) // in bounds
		parts[i] = formatValue(x, p)
	}

	return strings.Join(parts, " ")
}

// parseLiteral converts one token, enforcing the literal grammar.
func parseLiteral(tok string) (float64, error) {
	if !decimalLiteral.MatchString(tok) {
		return 0, fmt.Errorf("literal %q: %w", tok, ErrParse)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		// Only range errors reach here (the grammar already matched): 1e400 and friends.
		return 0, fmt.Errorf("literal %q out of range: %w", tok, ErrParse)
	}

	return v, nil
}

// parseFields converts whitespace-separated tokens.
func parseFields(s string) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, ErrParse
	}
	out := make([]float64, len(fields))
	var err error
	for k, tok := range fields {
		if out[k], err = parseLiteral(tok); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ParseVector parses whitespace-separated decimal literals into a *VecDense.
// Options are forwarded to NewVectorFrom (WithReadOnly is honored; WithShallowCopy is moot).
// Errors: ErrParse (empty input, malformed literal).
// Complexity: O(len(s)).
func ParseVector(s string, opts ...Option) (*VecDense, error) {
	values, err := parseFields(s)
	if err != nil {
		return nil, fmt.Errorf("ParseVector: %w", err)
	}
	v, err := NewVectorFrom(values, opts...)
	if err != nil {
		return nil, fmt.Errorf("ParseVector: %w", err)
	}

	return v, nil
}

// ParseMatrix parses the matrix notation into a *Dense.
// MAIN DESCRIPTION:
//   - Rows are separated by '|' or line breaks; '[' and ']' are ignored.
//
// Implementation:
//   - Stage 1: strip brackets, trim, reject empty input.
//   - Stage 2: split rows; every row must hold at least one literal.
//   - Stage 3: column count = longest row; shorter rows are zero-padded.
//
// Errors:
//   - ErrParse (empty input, empty row, malformed literal).
//
// Complexity:
//   - O(len(s) + r*c).
//
// AI-Hints:
//   - ParseMatrix(Format(m, p)) reproduces m within 10^-p.
func ParseMatrix(s string, opts ...Option) (*Dense, error) {
	text := strings.TrimSpace(bracketStripper.Replace(s))
	if text == "" {
		return nil, fmt.Errorf("ParseMatrix: empty input: %w", ErrParse)
	}

	lines := rowSeparator.Split(text, -1)
	rows := make([][]float64, len(lines))
	cols := 0
	var err error
	for i, line := range lines {
		if rows[i], err = parseFields(line); err != nil {
			return nil, fmt.Errorf("ParseMatrix: row %d: %w", i, err)
		}
		if len(rows[i]) > cols {
			cols = len(rows[i])
		}
	}

	// Pad here so that shallow construction sees complete rows too.
	for i := range rows {
		if len(rows[i]) < cols {
			padded := make([]float64, cols)
			copy(padded, rows[i])
			rows[i] = padded
		}
	}

	m, err := NewDenseFrom(len(rows), cols, rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("ParseMatrix: %w", err)
	}

	return m, nil
}
