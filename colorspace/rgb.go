package colorspace

import (
	"github.com/chromaticity/colorimetry/adaptation"
	"github.com/chromaticity/colorimetry/vecmat"
)

// TransferFunction is an opto-electronic / electro-optical codec pair applied
// element-wise at the RGB boundary of the XYZ transforms. Encode maps a
// linear value to its nonlinear signal representation; Decode is its exact
// inverse. Supplying both directions as one value keeps a conversion from
// being run with half of a mismatched pair.
type TransferFunction interface {
	Encode(v float64) float64
	Decode(v float64) float64
}

// XYZToRGB converts CIE XYZ tristimulus values to device RGB. The XYZ values
// are first adapted from whiteXYZ to the RGB color space's native whiteRGB
// using the given method, then mapped through fromXYZ, the inverse of the
// color space's normalized primary matrix. If tf is non-nil its Encode is
// applied element-wise to the result; otherwise the RGB values stay linear.
func XYZToRGB(xyz vecmat.Vec3, whiteXYZ, whiteRGB Chromaticity, method adaptation.Method, fromXYZ vecmat.Mat3, tf TransferFunction) (vecmat.Vec3, error) {
	cat, err := adaptation.Matrix(XYToXYZ(whiteXYZ), XYToXYZ(whiteRGB), method)
	if err != nil {
		return vecmat.Vec3{}, err
	}
	rgb := fromXYZ.MulVec(cat.MulVec(xyz))
	if tf != nil {
		rgb = rgb.Map(tf.Encode)
	}
	return rgb, nil
}

// RGBToXYZ converts device RGB to CIE XYZ tristimulus values, inverting the
// XYZToRGB pipeline: optional element-wise Decode, then toXYZ (the color
// space's normalized primary matrix), then adaptation from whiteRGB to
// whiteXYZ. Run with the same illuminants, method, NPM pair and transfer
// function as XYZToRGB, it reproduces the input to floating-point precision.
func RGBToXYZ(rgb vecmat.Vec3, whiteRGB, whiteXYZ Chromaticity, method adaptation.Method, toXYZ vecmat.Mat3, tf TransferFunction) (vecmat.Vec3, error) {
	if tf != nil {
		rgb = rgb.Map(tf.Decode)
	}
	xyz := toXYZ.MulVec(rgb)
	cat, err := adaptation.Matrix(XYToXYZ(whiteRGB), XYToXYZ(whiteXYZ), method)
	if err != nil {
		return vecmat.Vec3{}, err
	}
	return cat.MulVec(xyz), nil
}

// XYYToRGB converts CIE xyY to device RGB; see XYZToRGB.
func XYYToRGB(xyy vecmat.Vec3, whiteXYY, whiteRGB Chromaticity, method adaptation.Method, fromXYZ vecmat.Mat3, tf TransferFunction) (vecmat.Vec3, error) {
	return XYZToRGB(XYYToXYZ(xyy), whiteXYY, whiteRGB, method, fromXYZ, tf)
}

// RGBToXYY converts device RGB to CIE xyY; see RGBToXYZ.
func RGBToXYY(rgb vecmat.Vec3, whiteRGB, whiteXYY Chromaticity, method adaptation.Method, toXYZ vecmat.Mat3, tf TransferFunction) (vecmat.Vec3, error) {
	xyz, err := RGBToXYZ(rgb, whiteRGB, whiteXYY, method, toXYZ, tf)
	if err != nil {
		return vecmat.Vec3{}, err
	}
	return XYZToXYY(xyz, whiteXYY), nil
}
