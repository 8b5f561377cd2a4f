package colorspace

import (
	"math"

	"github.com/chromaticity/colorimetry/vecmat"
)

// CIE lightness constants. Values at or below Epsilon use the linear segment
// with slope Kappa; values above use the cube-root segment. The pair makes
// the piecewise lightness function continuous at the junction.
const (
	Epsilon = 216.0 / 24389.0 // CIE E, (6/29)³
	Kappa   = 24389.0 / 27.0  // CIE K
)

// XYZToLuv converts CIE XYZ tristimulus values to CIE Luv relative to the
// given reference white.
func XYZToLuv(xyz vecmat.Vec3, white Chromaticity) vecmat.Vec3 {
	X, Y, Z := xyz[0], xyz[1], xyz[2]
	ref := XYToXYZ(white)
	Xr, Yr, Zr := ref[0], ref[1], ref[2]

	yr := Y / Yr
	var L float64
	if yr > Epsilon {
		L = 116*math.Cbrt(yr) - 16
	} else {
		L = Kappa * yr
	}

	d := X + 15*Y + 3*Z
	dr := Xr + 15*Yr + 3*Zr
	u := 13 * L * (4*X/d - 4*Xr/dr)
	v := 13 * L * (9*Y/d - 9*Yr/dr)

	return vecmat.Vec3{L, u, v}
}

// LuvToXYZ converts CIE Luv values back to CIE XYZ relative to the given
// reference white.
//
// The lightness branch tests L against Kappa*Epsilon (= 8), not Epsilon:
// the inverse works in L units where the linear/cube junction sits at
// Kappa*Epsilon, while the forward tests the Y ratio against Epsilon
// directly. The asymmetry is part of the reference formulation.
func LuvToXYZ(luv vecmat.Vec3, white Chromaticity) vecmat.Vec3 {
	L, u, v := luv[0], luv[1], luv[2]
	ref := XYToXYZ(white)
	Xr, Yr, Zr := ref[0], ref[1], ref[2]

	var Y float64
	if L > Kappa*Epsilon {
		Y = math.Pow((L+16)/116, 3)
	} else {
		Y = L / Kappa
	}

	dr := Xr + 15*Yr + 3*Zr
	a := (52*L/(u+13*L*(4*Xr/dr)) - 1) / 3
	b := -5 * Y
	c := -1.0 / 3
	d := Y * (39*L/(v+13*L*(9*Yr/dr)) - 5)

	X := (d - b) / (a - c)
	Z := X*a + b

	return vecmat.Vec3{X, Y, Z}
}

// LuvToUV returns the u'v' chromaticity coordinates of the given CIE Luv
// value.
func LuvToUV(luv vecmat.Vec3, white Chromaticity) (u, v float64) {
	xyz := LuvToXYZ(luv, white)
	X, Y, Z := xyz[0], xyz[1], xyz[2]
	d := X + 15*Y + 3*Z
	return 4 * X / d, 9 * Y / d
}

// LuvUVToXY inverts the u'v' projection back to CIE xy chromaticity
// coordinates.
func LuvUVToXY(u, v float64) Chromaticity {
	d := 6*u - 16*v + 12
	return Chromaticity{9 * u / d, 4 * v / d}
}

// LuvToLCH re-expresses CIE Luv in polar (lightness, chroma, hue) form, with
// the hue in degrees in [0, 360).
func LuvToLCH(luv vecmat.Vec3) vecmat.Vec3 {
	return toPolar(luv)
}

// LCHToLuv converts the polar LCHuv form back to Cartesian CIE Luv.
func LCHToLuv(lch vecmat.Vec3) vecmat.Vec3 {
	return fromPolar(lch)
}
