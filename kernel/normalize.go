package kernel

import (
	"fmt"

	"github.com/uyouii/geodesic-smoothing/common"
	"github.com/uyouii/geodesic-smoothing/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NormalizeRows scales every row of k in place so it sums to 1, turning the
// kernel into a weighted average. Rows summing to 0 (targets with no
// connected source) stay zero.
func NormalizeRows(k [][]float64) error {
	for i, row := range k {
		if err := normalizeRow(row); err != nil {
			return fmt.Errorf("normalize row %d: %w", i, err)
		}
	}
	return nil
}

func NormalizeRowsDense(k *mat.Dense) error {
	if k == nil || k.IsEmpty() {
		return nil
	}
	r, _ := k.Dims()
	for i := 0; i < r; i++ {
		if err := normalizeRow(k.RawRowView(i)); err != nil {
			return fmt.Errorf("normalize row %d: %w", i, err)
		}
	}
	return nil
}

func normalizeRow(row []float64) error {
	sum := floats.Sum(row)
	if !utils.IsFinite(sum) {
		return common.ErrorInvalidValue
	}
	if sum == 0 {
		return nil
	}
	floats.Scale(1/sum, row)
	return nil
}

// Smooth applies a kernel to per-point data:
// smoothed[target] = Σ_source k[target, source] * data[source].
func Smooth(k mat.Matrix, data []float64) ([]float64, error) {
	if k == nil {
		return nil, fmt.Errorf("nil kernel: %w", common.ErrorInvalidValue)
	}
	r, c := k.Dims()
	if len(data) != c {
		return nil, fmt.Errorf("got %d values for %d source points: %w",
			len(data), c, common.ErrorShapeMismatch)
	}
	if r == 0 || c == 0 {
		return make([]float64, r), nil
	}

	res := mat.NewVecDense(r, nil)
	res.MulVec(k, mat.NewVecDense(c, data))
	return res.RawVector().Data, nil
}
