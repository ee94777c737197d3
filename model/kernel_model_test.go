package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uyouii/geodesic-smoothing/common"
)

func TestShapeError(t *testing.T) {
	err := error(&ShapeError{Rows: 3, Cols: 2, Row: -1})
	assert.True(t, errors.Is(err, common.ErrorShapeMismatch))
	assert.False(t, errors.Is(err, common.ErrorInvalidParameter))
	assert.Equal(t, "distance matrix is not square: 3 rows, 2 columns", err.Error())

	err = &ShapeError{Rows: 3, Cols: 1, Row: 2}
	assert.Equal(t, "distance matrix is not square: 3 rows but row 2 has 1 columns", err.Error())
}

func TestInvalidParameterError(t *testing.T) {
	err := error(&InvalidParameterError{Name: "fwhm", Value: -1})
	assert.True(t, errors.Is(err, common.ErrorInvalidParameter))
	assert.Equal(t, "invalid fwhm: -1", err.Error())
}

func TestKernelParams_DebugString(t *testing.T) {
	p := &KernelParams{FWHM: 2, Std: 0.5, Peak: 0.25}
	assert.Equal(t, "fwhm: 2, std: 0.5, peak: 0.25", p.DebugString())
}
