package colorspace

import "math"

// SRGB is the IEC 61966-2-1 sRGB transfer function. Encode compands a linear
// component to the nonlinear sRGB signal; Decode linearizes it. Inputs are
// not clamped.
var SRGB TransferFunction = srgbCurve{}

type srgbCurve struct{}

func (srgbCurve) Encode(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func (srgbCurve) Decode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
