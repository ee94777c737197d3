package kernel

import (
	"math"

	"github.com/uyouii/geodesic-smoothing/model"
	"github.com/uyouii/geodesic-smoothing/utils"
)

// GaussianKernel maps a distance to the value of a zero-mean gaussian
// density whose width is given as a FWHM. Negative distances mean the two
// points are not connected and always get weight 0.
type GaussianKernel struct {
	fwhm float64
	std  float64
	peak float64
}

func NewGaussianKernel(fwhm float64) (*GaussianKernel, error) {
	if !utils.IsFinite(fwhm) || fwhm <= 0 {
		return nil, &model.InvalidParameterError{Name: "fwhm", Value: fwhm}
	}
	std := fwhm / FwhmToStdFactor
	return &GaussianKernel{
		fwhm: fwhm,
		std:  std,
		peak: 1 / (std * sqrt2Pi),
	}, nil
}

func (k *GaussianKernel) FWHM() float64 {
	return k.fwhm
}

func (k *GaussianKernel) Std() float64 {
	return k.std
}

// Peak is the kernel value at distance 0.
func (k *GaussianKernel) Peak() float64 {
	return k.peak
}

func (k *GaussianKernel) Params() model.KernelParams {
	return model.KernelParams{
		FWHM: k.fwhm,
		Std:  k.std,
		Peak: k.peak,
	}
}

// Weight returns the smoothing weight for distance d. NaN propagates.
func (k *GaussianKernel) Weight(d float64) float64 {
	if d < 0 {
		return 0
	}
	u := d / k.std
	return k.peak * math.Exp(-0.5*u*u)
}

// EvaluateRow writes Weight(src[j]) to dst[j]. dst and src must have the
// same length.
func (k *GaussianKernel) EvaluateRow(dst, src []float64) {
	for j, d := range src {
		dst[j] = k.Weight(d)
	}
}
