package colorspace

import (
	"math"

	"github.com/chromaticity/colorimetry/vecmat"
)

// XYZToUCS converts CIE XYZ tristimulus values to the CIE 1960 UCS
// colorspace. The relation is a fixed linear transform with no illuminant
// dependence.
func XYZToUCS(xyz vecmat.Vec3) vecmat.Vec3 {
	X, Y, Z := xyz[0], xyz[1], xyz[2]
	return vecmat.Vec3{2.0 / 3.0 * X, Y, (-X + 3*Y + Z) / 2}
}

// UCSToXYZ converts CIE 1960 UCS values back to CIE XYZ.
func UCSToXYZ(ucs vecmat.Vec3) vecmat.Vec3 {
	U, V, W := ucs[0], ucs[1], ucs[2]
	return vecmat.Vec3{3.0 / 2.0 * U, V, 3.0/2.0*U - 3*V + 2*W}
}

// UCSToUV projects CIE 1960 UCS values to their uv chromaticity.
func UCSToUV(ucs vecmat.Vec3) (u, v float64) {
	U, V, W := ucs[0], ucs[1], ucs[2]
	s := U + V + W
	return U / s, V / s
}

// UCSUVToXY inverts the uv projection back to CIE xy chromaticity
// coordinates.
func UCSUVToXY(u, v float64) Chromaticity {
	d := 2*u - 8*v + 4
	return Chromaticity{3 * u / d, 2 * v / d}
}

// XYZToUVW converts CIE XYZ tristimulus values to the CIE 1964 U*V*W*
// colorspace relative to the given reference white. Y follows the
// conventional 0-100 scale.
func XYZToUVW(xyz vecmat.Vec3, white Chromaticity) vecmat.Vec3 {
	Y := XYZToXYY(xyz, white)[2]
	u, v := UCSToUV(XYZToUCS(xyz))
	u0, v0 := UCSToUV(XYZToUCS(XYToXYZ(white)))

	W := 25*math.Cbrt(Y) - 17
	return vecmat.Vec3{13 * W * (u - u0), 13 * W * (v - v0), W}
}
