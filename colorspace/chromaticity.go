// Package colorspace implements closed-form conversions between colorimetric
// representations of a single stimulus: CIE XYZ tristimulus values, xyY and
// xy chromaticities, device RGB, the CIE UCS, UVW, Luv and Lab uniform
// spaces with their polar LCH forms.
//
// Every conversion is a pure function over its arguments. Colors are
// vecmat.Vec3 values; chromaticity pairs are Chromaticity values. Functions
// that depend on a reference white take it explicitly; there is no hidden
// default resolved at call time. Pass D50 where the governing standard
// assumes the CIE 1931 2° D50 illuminant.
//
// Physically invalid inputs (negative tristimulus values, an illuminant with
// a zero denominator component) are not guarded: the formulas produce
// whatever IEEE arithmetic produces, including NaN. The only special cases
// are the degenerate chromaticity projections documented on XYZToXYY and
// XYYToXYZ.
package colorspace

import "github.com/chromaticity/colorimetry/vecmat"

// Chromaticity is an (x, y) chromaticity coordinate pair, typically
// identifying a reference white point.
type Chromaticity struct {
	X, Y float64
}

// Chromaticities of common standard illuminants under the CIE 1931 2°
// standard observer. The full illuminant registry is an external dataset;
// these are the values the conversion defaults are specified against.
var (
	D50 = Chromaticity{0.34567, 0.35850}
	D65 = Chromaticity{0.31271, 0.32902}
	A   = Chromaticity{0.44757, 0.40745}
	E   = Chromaticity{1.0 / 3.0, 1.0 / 3.0}
)

// XYZToXYY converts CIE XYZ tristimulus values to CIE xyY. A zero vector has
// no chromaticity of its own and projects to the reference white's instead,
// with Y preserved.
func XYZToXYY(xyz vecmat.Vec3, white Chromaticity) vecmat.Vec3 {
	X, Y, Z := xyz[0], xyz[1], xyz[2]
	if X == 0 && Y == 0 && Z == 0 {
		return vecmat.Vec3{white.X, white.Y, Y}
	}
	s := X + Y + Z
	return vecmat.Vec3{X / s, Y / s, Y}
}

// XYYToXYZ converts CIE xyY to CIE XYZ tristimulus values. A coordinate with
// y = 0 carries no luminance and maps to the zero vector.
func XYYToXYZ(xyy vecmat.Vec3) vecmat.Vec3 {
	x, y, Y := xyy[0], xyy[1], xyy[2]
	if y == 0 {
		return vecmat.Vec3{}
	}
	return vecmat.Vec3{x * Y / y, Y, (1 - x - y) * Y / y}
}

// XYToXYZ returns the XYZ tristimulus values of the given chromaticity at
// unit luminance.
func XYToXYZ(c Chromaticity) vecmat.Vec3 {
	return XYYToXYZ(vecmat.Vec3{c.X, c.Y, 1})
}

// XYZToXY projects CIE XYZ tristimulus values to their xy chromaticity.
func XYZToXY(xyz vecmat.Vec3, white Chromaticity) Chromaticity {
	xyy := XYZToXYY(xyz, white)
	return Chromaticity{xyy[0], xyy[1]}
}
