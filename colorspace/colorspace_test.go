package colorspace

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/chromaticity/colorimetry/vecmat"
)

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertVec(t *testing.T, want, got vecmat.Vec3, eps float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, eps)); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

// Sample tristimulus vectors spanning both sides of the CIE lightness
// threshold, used by the round-trip tests. Y conventionally 0-100 where the
// space expects it; the near-black entries sit below Epsilon.
var roundTripXYZ = []struct {
	name string
	xyz  vecmat.Vec3
}{
	{"mid luminance", vecmat.Vec3{11.80583421, 10.34, 5.15089229}},
	{"unit white-ish", vecmat.Vec3{0.92193107, 1, 1.03744246}},
	{"saturated blue", vecmat.Vec3{0.1805, 0.0722, 0.9505}},
	{"near black", vecmat.Vec3{0.007, 0.0078, 0.006}},
	{"dim warm", vecmat.Vec3{0.009, 0.008, 0.003}},
}
