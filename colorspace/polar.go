package colorspace

import (
	"math"

	"github.com/chromaticity/colorimetry/vecmat"
)

// toPolar maps a (lightness, axis1, axis2) vector to (lightness, chroma,
// hue). Hue is atan2(axis2, axis1) in degrees, wrapped into [0, 360).
func toPolar(v vecmat.Vec3) vecmat.Vec3 {
	h := math.Atan2(v[2], v[1]) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return vecmat.Vec3{v[0], math.Sqrt(v[1]*v[1] + v[2]*v[2]), h}
}

// fromPolar maps (lightness, chroma, hue in degrees) back to the Cartesian
// (lightness, axis1, axis2) form.
func fromPolar(v vecmat.Vec3) vecmat.Vec3 {
	rad := v[2] * math.Pi / 180
	return vecmat.Vec3{v[0], v[1] * math.Cos(rad), v[1] * math.Sin(rad)}
}
