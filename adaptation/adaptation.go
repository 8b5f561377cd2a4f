// Package adaptation builds chromatic adaptation matrices: 3x3 linear
// transforms that map CIE XYZ tristimulus values measured under one reference
// illuminant to the equivalent values under another.
//
// The transform sandwiches a diagonal von Kries-style gain between a cone
// response matrix and its inverse: M = C⁻¹ · diag(cone(dst)/cone(src)) · C.
// The matrix is rebuilt on every call; nothing is cached.
package adaptation

import (
	"fmt"

	"github.com/chromaticity/colorimetry/vecmat"
)

// Method selects the cone response transform used to build the adaptation
// matrix. An unrecognized method is a configuration error, never a silent
// default.
type Method string

const (
	Bradford   Method = "Bradford"
	VonKries   Method = "Von Kries"
	XYZScaling Method = "XYZ Scaling"
)

type coneTransform struct {
	forward vecmat.Mat3
	inverse vecmat.Mat3
}

// Forward and inverse cone response pairs. The inverses are the published
// constants rather than computed at runtime, so the matrices round-trip the
// same way the standards documents print them.
var coneTransforms = map[Method]coneTransform{
	Bradford: {
		forward: vecmat.Mat3{
			{0.8951, 0.2664, -0.1614},
			{-0.7502, 1.7135, 0.0367},
			{0.0389, -0.0685, 1.0296},
		},
		inverse: vecmat.Mat3{
			{0.9869929, -0.1470543, 0.1599627},
			{0.4323053, 0.5183603, 0.0492912},
			{-0.0085287, 0.0400428, 0.9684867},
		},
	},
	VonKries: {
		forward: vecmat.Mat3{
			{0.40024, 0.7076, -0.08081},
			{-0.2263, 1.16532, 0.0457},
			{0, 0, 0.91822},
		},
		inverse: vecmat.Mat3{
			{1.8599364, -1.1293816, 0.2198974},
			{0.3611914, 0.6388125, -0.0000064},
			{0, 0, 1.0890636},
		},
	},
	XYZScaling: {
		forward: vecmat.Identity,
		inverse: vecmat.Identity,
	},
}

// Methods returns the supported method tags.
func Methods() []Method {
	return []Method{Bradford, VonKries, XYZScaling}
}

// Matrix returns the adaptation matrix from sourceWhite to targetWhite, both
// given as XYZ tristimulus vectors. For any vector V measured under the
// source illuminant, Matrix(...).MulVec(V) is the corresponding vector under
// the target illuminant.
func Matrix(sourceWhite, targetWhite vecmat.Vec3, method Method) (vecmat.Mat3, error) {
	cone, ok := coneTransforms[method]
	if !ok {
		return vecmat.Mat3{}, fmt.Errorf("adaptation: unknown chromatic adaptation method %q", method)
	}

	src := cone.forward.MulVec(sourceWhite)
	dst := cone.forward.MulVec(targetWhite)
	var gain vecmat.Vec3
	for i := 0; i < 3; i++ {
		if src[i] == 0 {
			return vecmat.Mat3{}, fmt.Errorf("adaptation: source white %v has a zero cone response", sourceWhite)
		}
		gain[i] = dst[i] / src[i]
	}

	return cone.inverse.Mul(vecmat.Diagonal(gain).Mul(cone.forward)), nil
}
