package profile

import (
	"fmt"
	"math"
)

// DefaultShearExponent is the empirical power-law exponent for neutral
// stability over open terrain.
const DefaultShearExponent = 0.143

// WindSpeedAtHeight extrapolates wind speed from a reference measurement
// using the power-law wind profile:
//
//	v(h) = vRef * (h / hRef)^alpha
//
// refHeight must be strictly positive. Negative heights are rejected rather
// than clamped; height 0 is tolerated and yields 0 for positive alpha.
func WindSpeedAtHeight(height, refHeight, refSpeed, alpha float64) (float64, error) {
	if refHeight <= 0 {
		return 0, &DomainError{
			Op:     "WindSpeedAtHeight",
			Reason: fmt.Sprintf("reference height must be positive, got %g", refHeight),
		}
	}
	if height < 0 {
		return 0, &DomainError{
			Op:     "WindSpeedAtHeight",
			Reason: fmt.Sprintf("height must be non-negative, got %g", height),
		}
	}
	return refSpeed * math.Pow(height/refHeight, alpha), nil
}

// EstimateShearExponent fits the power-law exponent empirically from paired
// height/speed observations: ordinary least squares of log(speed) on
// log(height). The slope of the fit is the shear exponent alpha; the second
// return value is the squared Pearson correlation (R²) of the regression.
//
// Heights and speeds must be equal-length with at least two points and all
// strictly positive. All-identical heights make the regression undefined
// (zero-variance predictor) and return a *DomainError. Constant speeds fit
// a zero slope with R² 0.
func EstimateShearExponent(heights, speeds []float64) (float64, float64, error) {
	if len(heights) != len(speeds) || len(heights) < 2 {
		return 0, 0, &ShapeError{Op: "EstimateShearExponent", Heights: len(heights), Speeds: len(speeds)}
	}

	logH := make([]float64, len(heights))
	logS := make([]float64, len(speeds))
	for i := range heights {
		if heights[i] <= 0 {
			return 0, 0, &DomainError{
				Op:     "EstimateShearExponent",
				Reason: fmt.Sprintf("height at index %d must be positive, got %g", i, heights[i]),
			}
		}
		if speeds[i] <= 0 {
			return 0, 0, &DomainError{
				Op:     "EstimateShearExponent",
				Reason: fmt.Sprintf("speed at index %d must be positive, got %g", i, speeds[i]),
			}
		}
		logH[i] = math.Log(heights[i])
		logS[i] = math.Log(speeds[i])
	}

	n := float64(len(logH))
	var meanH, meanS float64
	for i := range logH {
		meanH += logH[i]
		meanS += logS[i]
	}
	meanH /= n
	meanS /= n

	var sxx, sxy, syy float64
	for i := range logH {
		dx := logH[i] - meanH
		dy := logS[i] - meanS
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}

	if sxx == 0 {
		return 0, 0, &DomainError{
			Op:     "EstimateShearExponent",
			Reason: "all heights are identical, regression predictor has zero variance",
		}
	}

	alpha := sxy / sxx
	var r2 float64
	if syy > 0 {
		r := sxy / math.Sqrt(sxx*syy)
		r2 = r * r
	}
	return alpha, r2, nil
}
