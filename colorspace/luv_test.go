package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chromaticity/colorimetry/vecmat"
)

func TestXYZToLuv(t *testing.T) {
	got := XYZToLuv(vecmat.Vec3{0.92193107, 1, 1.03744246}, D50)
	assertVec(t, vecmat.Vec3{100, -20.04304247, -19.81676035}, got, 1e-7)
}

func TestLuvToXYZ(t *testing.T) {
	got := LuvToXYZ(vecmat.Vec3{100, -20.04304247, -19.81676035}, D50)
	assertVec(t, vecmat.Vec3{0.92193107, 1, 1.03744246}, got, 1e-7)
}

func TestLuvRoundTrip(t *testing.T) {
	for _, tc := range roundTripXYZ {
		t.Run(tc.name, func(t *testing.T) {
			luv := XYZToLuv(tc.xyz, D50)
			assertVec(t, tc.xyz, LuvToXYZ(luv, D50), 1e-6)
		})
	}
}

func TestLuvLightnessBoundary(t *testing.T) {
	// The forward branch tests yr > Epsilon, the inverse tests
	// L > Kappa*Epsilon = 8. The two junctions coincide: yr = Epsilon maps to
	// L = 8 on the linear segment, and L = 8 maps back to Y = Epsilon.
	white := E

	luv := XYZToLuv(vecmat.Vec3{Epsilon, Epsilon, Epsilon}, white)
	assert.InDelta(t, 8, luv[0], 1e-12)

	back := LuvToXYZ(vecmat.Vec3{8, 0, 0}, white)
	assert.InDelta(t, Epsilon, back[1], 1e-12)

	// Both branch formulas agree at the junction.
	below := LuvToXYZ(vecmat.Vec3{8 - 1e-9, 0, 0}, white)
	above := LuvToXYZ(vecmat.Vec3{8 + 1e-9, 0, 0}, white)
	assert.InDelta(t, below[1], above[1], 1e-11)
}

func TestLuvToUV(t *testing.T) {
	u, v := LuvToUV(vecmat.Vec3{100, -20.04304247, -19.81676035}, D50)
	assert.InDelta(t, 0.19374142101133443, u, 1e-9)
	assert.InDelta(t, 0.47283165896068835, v, 1e-9)
}

func TestLuvUVToXY(t *testing.T) {
	c := LuvUVToXY(0.2033733344733139, 0.3140500001549052)
	assert.InDelta(t, 0.2233388334593085, c.X, 1e-12)
	assert.InDelta(t, 0.1532803607800318, c.Y, 1e-12)
}

func TestLuvUVXYConsistency(t *testing.T) {
	// u'v' of a sample projects to the same xy chromaticity the sample has.
	for _, tc := range roundTripXYZ {
		t.Run(tc.name, func(t *testing.T) {
			luv := XYZToLuv(tc.xyz, D50)
			u, v := LuvToUV(luv, D50)
			xy := LuvUVToXY(u, v)
			want := XYZToXY(tc.xyz, D50)
			assert.True(t, nearlyEqual(want.X, xy.X, 1e-6), "x: want %v got %v", want.X, xy.X)
			assert.True(t, nearlyEqual(want.Y, xy.Y, 1e-6), "y: want %v got %v", want.Y, xy.Y)
		})
	}
}

func TestLuvToLCH(t *testing.T) {
	got := LuvToLCH(vecmat.Vec3{100, -20.04304247, -19.81676035})
	assertVec(t, vecmat.Vec3{100, 28.18559104, 224.6747382}, got, 1e-7)
}

func TestLCHToLuv(t *testing.T) {
	got := LCHToLuv(vecmat.Vec3{100, 28.18559104, 224.6747382})
	assertVec(t, vecmat.Vec3{100, -20.04304247, -19.81676035}, got, 1e-7)
}

func TestLCHHueRange(t *testing.T) {
	// Hue must land in [0, 360) for every quadrant, including the ones where
	// atan2 is negative.
	cases := []vecmat.Vec3{
		{50, 10, 10},
		{50, -10, 10},
		{50, -10, -10},
		{50, 10, -10},
		{50, 0, -10},
		{50, 0, 10},
		{50, -10, 0},
	}
	for _, luv := range cases {
		lch := LuvToLCH(luv)
		h := lch[2]
		assert.True(t, h >= 0 && h < 360, "hue %v out of range for %v", h, luv)
		assertVec(t, luv, LCHToLuv(lch), 1e-9)
	}
}
