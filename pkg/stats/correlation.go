package stats

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrEmpty is returned when a correlation is requested over no observations.
var ErrEmpty = errors.New("no observations")

// CorrelationMatrix computes pairwise Pearson correlations between the given
// columns. Every column must have the same length. Columns with zero variance
// produce NaN entries.
func CorrelationMatrix(cols [][]float64) (*mat.SymDense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrEmpty
	}
	rows := len(cols[0])
	x := mat.NewDense(rows, len(cols), nil)
	for j, col := range cols {
		x.SetCol(j, col)
	}
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, x, nil)
	return &corr, nil
}

// UpperTriangleMask marks the diagonal and every cell above it.
func UpperTriangleMask(n int) [][]bool {
	mask := make([][]bool, n)
	for i := range mask {
		mask[i] = make([]bool, n)
		for j := i; j < n; j++ {
			mask[i][j] = true
		}
	}
	return mask
}
