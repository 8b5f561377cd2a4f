package colorspace

import (
	"math"

	"github.com/chromaticity/colorimetry/vecmat"
)

// labForward is the CIE Lab compression function applied to a tristimulus
// ratio.
func labForward(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

// XYZToLab converts CIE XYZ tristimulus values to CIE Lab relative to the
// given reference white.
func XYZToLab(xyz vecmat.Vec3, white Chromaticity) vecmat.Vec3 {
	ref := XYToXYZ(white)

	fx := labForward(xyz[0] / ref[0])
	fy := labForward(xyz[1] / ref[1])
	fz := labForward(xyz[2] / ref[2])

	return vecmat.Vec3{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// LabToXYZ converts CIE Lab values back to CIE XYZ relative to the given
// reference white.
//
// The X and Z channels branch on the cube of the recovered f value against
// Epsilon; the Y channel branches on L against Kappa*Epsilon directly,
// matching the reference formulation.
func LabToXYZ(lab vecmat.Vec3, white Chromaticity) vecmat.Vec3 {
	L, a, b := lab[0], lab[1], lab[2]
	ref := XYToXYZ(white)

	fy := (L + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	var xr, yr, zr float64
	if fx3 := fx * fx * fx; fx3 > Epsilon {
		xr = fx3
	} else {
		xr = (116*fx - 16) / Kappa
	}
	if L > Kappa*Epsilon {
		yr = fy * fy * fy
	} else {
		yr = L / Kappa
	}
	if fz3 := fz * fz * fz; fz3 > Epsilon {
		zr = fz3
	} else {
		zr = (116*fz - 16) / Kappa
	}

	return vecmat.Vec3{xr * ref[0], yr * ref[1], zr * ref[2]}
}

// LabToLCH re-expresses CIE Lab in polar (lightness, chroma, hue) form, with
// the hue in degrees in [0, 360).
func LabToLCH(lab vecmat.Vec3) vecmat.Vec3 {
	return toPolar(lab)
}

// LCHToLab converts the polar LCHab form back to Cartesian CIE Lab.
func LCHToLab(lch vecmat.Vec3) vecmat.Vec3 {
	return fromPolar(lch)
}
