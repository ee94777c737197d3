package kernel

import (
	"fmt"

	"github.com/uyouii/geodesic-smoothing/common"
	"github.com/uyouii/geodesic-smoothing/model"
	"gonum.org/v1/gonum/mat"
)

// Build converts an N×N distance matrix into a gaussian smoothing weight
// matrix. Row i holds the weights every source point j contributes to the
// target point i, so smoothed[i] = Σ_j kernel[i][j] * data[j].
//
// Negative distances mark unconnected pairs and map to 0. The result is not
// row normalized; see NormalizeRows. dist is never modified and the result
// shares no memory with it.
func Build(dist [][]float64, fwhm float64, opts ...Option) ([][]float64, error) {
	buf, _, err := build(dist, fwhm, opts)
	if err != nil {
		return nil, err
	}

	n := len(dist)
	res := make([][]float64, n)
	for i := range res {
		res[i] = buf[i*n : (i+1)*n : (i+1)*n]
	}
	return res, nil
}

// BuildDense is Build for gonum matrices. A 0×0 input gives an empty Dense.
func BuildDense(dist mat.Matrix, fwhm float64, opts ...Option) (*mat.Dense, error) {
	if dist == nil {
		return nil, fmt.Errorf("nil distance matrix: %w", common.ErrorInvalidValue)
	}
	r, c := dist.Dims()
	if r != c {
		return nil, &model.ShapeError{Rows: r, Cols: c, Row: -1}
	}
	k, err := NewGaussianKernel(fwhm)
	if err != nil {
		return nil, err
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	if r == 0 {
		return &mat.Dense{}, nil
	}

	res := mat.NewDense(r, r, nil)
	dst := res.RawMatrix()

	if rm, ok := dist.(mat.RawMatrixer); ok {
		src := rm.RawMatrix()
		evaluateRows(r, o, func(i int) {
			k.EvaluateRow(dst.Data[i*dst.Stride:i*dst.Stride+r], src.Data[i*src.Stride:i*src.Stride+r])
		})
		return res, nil
	}

	evaluateRows(r, o, func(i int) {
		row := dst.Data[i*dst.Stride : i*dst.Stride+r]
		for j := range row {
			row[j] = k.Weight(dist.At(i, j))
		}
	})
	return res, nil
}

// build validates the input and evaluates the kernel into one contiguous
// row-major buffer of len(dist)^2 values.
func build(dist [][]float64, fwhm float64, opts []Option) ([]float64, *GaussianKernel, error) {
	n := len(dist)
	for i, row := range dist {
		if len(row) != n {
			return nil, nil, &model.ShapeError{Rows: n, Cols: len(row), Row: i}
		}
	}
	k, err := NewGaussianKernel(fwhm)
	if err != nil {
		return nil, nil, err
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	buf := make([]float64, n*n)
	evaluateRows(n, o, func(i int) {
		k.EvaluateRow(buf[i*n:(i+1)*n], dist[i])
	})
	return buf, k, nil
}
