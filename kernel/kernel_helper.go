package kernel

import (
	"context"
	"fmt"

	"github.com/uyouii/geodesic-smoothing/common"
	"github.com/uyouii/geodesic-smoothing/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// BuildSmoothingKernel builds the kernel for dist and fwhm as a Dense and,
// when normalize is set, scales each row to sum to 1. Failures are logged
// with the logger carried by ctx.
func BuildSmoothingKernel(ctx context.Context, dist [][]float64, fwhm float64,
	normalize bool, opts ...Option) (res *mat.Dense, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("BuildSmoothingKernel recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("rows", len(dist)))
			res, err = nil, fmt.Errorf("recovered panic %v: %w", r, common.ErrorInvalidValue)
		}
	}()

	buf, k, err := build(dist, fwhm, opts)
	if err != nil {
		logger.Error("build smoothing kernel failed", zap.Error(err),
			zap.Int("rows", len(dist)), zap.Float64("fwhm", fwhm))
		return nil, err
	}

	n := len(dist)
	if n == 0 {
		return &mat.Dense{}, nil
	}
	res = mat.NewDense(n, n, buf)

	if normalize {
		if err := NormalizeRowsDense(res); err != nil {
			logger.Error("normalize smoothing kernel failed", zap.Error(err), zap.Int("rows", n))
			return nil, err
		}
	}

	params := k.Params()
	logger.Debug("smoothing kernel built", zap.Int("rows", n),
		zap.String("kernel", params.DebugString()),
		zap.Float64("std", utils.FormatFloat(k.Std(), 6)), zap.Bool("normalized", normalize))
	return res, nil
}
