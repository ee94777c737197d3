package model

import (
	"fmt"

	"github.com/uyouii/geodesic-smoothing/common"
)

// KernelParams holds the bandwidth of a gaussian smoothing kernel and the
// quantities derived from it.
type KernelParams struct {
	FWHM float64 `json:"fwhm,omitempty"`
	Std  float64 `json:"std,omitempty"`
	Peak float64 `json:"peak,omitempty"` // 1 / (std * sqrt(2*pi))
}

func (p *KernelParams) DebugString() string {
	return fmt.Sprintf("fwhm: %v, std: %v, peak: %v", p.FWHM, p.Std, p.Peak)
}

// ShapeError reports a distance matrix that is not square.
// Row is the first row whose length differs from Rows, or -1 when the
// mismatch is between whole-matrix dimensions.
type ShapeError struct {
	Rows int
	Cols int
	Row  int
}

func (e *ShapeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("distance matrix is not square: %d rows but row %d has %d columns",
			e.Rows, e.Row, e.Cols)
	}
	return fmt.Sprintf("distance matrix is not square: %d rows, %d columns", e.Rows, e.Cols)
}

func (e *ShapeError) Unwrap() error {
	return common.ErrorShapeMismatch
}

type InvalidParameterError struct {
	Name  string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Name, e.Value)
}

func (e *InvalidParameterError) Unwrap() error {
	return common.ErrorInvalidParameter
}
