package transform

import (
	"strings"

	"github.com/zeusync/measures/pkg/num"
)

// FormatMatrix renders rows as a grid with every column aligned on its decimal
// point. A non-empty suffix is written once, after the last row.
func FormatMatrix[N num.Float](rows [][]N, suffix string) string {
	type cell struct {
		whole, frac string
		dot         bool
	}
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	cells := make([][]cell, len(rows))
	wholeWidth := make([]int, cols)
	fracWidth := make([]int, cols)
	for i, row := range rows {
		cells[i] = make([]cell, len(row))
		for j, v := range row {
			s := num.Format(v)
			whole, frac, dot := strings.Cut(s, ".")
			cells[i][j] = cell{whole: whole, frac: frac, dot: dot}
			wholeWidth[j] = max(wholeWidth[j], len(whole))
			if dot {
				fracWidth[j] = max(fracWidth[j], len(frac))
			}
		}
	}

	var b strings.Builder
	for i, row := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("[ ")
		for j, c := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(strings.Repeat(" ", wholeWidth[j]-len(c.whole)))
			b.WriteString(c.whole)
			switch {
			case c.dot:
				b.WriteByte('.')
				b.WriteString(c.frac)
				b.WriteString(strings.Repeat(" ", fracWidth[j]-len(c.frac)))
			case fracWidth[j] > 0:
				b.WriteString(strings.Repeat(" ", fracWidth[j]+1))
			}
		}
		b.WriteString(" ]")
	}
	if suffix != "" {
		b.WriteByte(' ')
		b.WriteString(suffix)
	}
	return b.String()
}

// checkDeterminant reports ErrSingular when det is negligible relative to the
// magnitude of the coefficients.
func checkDeterminant[N num.Float](det N, rows ...[]N) error {
	var largest N
	for _, row := range rows {
		for _, c := range row {
			largest = max(largest, num.Abs(c))
		}
	}
	scale := num.Pow(largest, N(len(rows)))
	if !(num.Abs(det) > num.Epsilon[N]()*scale) {
		return num.NewDomainError("invert", float64(det), ErrSingular)
	}
	return nil
}
