// Package dcdm implements the Digital Cinema Distribution Master transfer
// function pair from the DCI Digital Cinema System Specification: the
// opto-electronic encoding of linear CIE XYZ tristimulus values to nonlinear
// XYZ' signal values and its electro-optical inverse.
//
// Values are never clamped; handling out-of-range signals is the caller's
// responsibility, as is rounding the integer-code variants to the device bit
// depth.
package dcdm

import "math"

const (
	peakLuminance = 52.37
	gamma         = 2.6
	maxCodeValue  = 4095 // 12-bit
)

// Encode applies the DCDM OETF: (v/52.37)^(1/2.6).
func Encode(v float64) float64 {
	return math.Pow(v/peakLuminance, 1/gamma)
}

// EncodeInt applies the DCDM OETF and scales the result to a 12-bit code
// value. The result is left as a float; rounding is up to the caller.
func EncodeInt(v float64) float64 {
	return Encode(v) * maxCodeValue
}

// Decode applies the DCDM EOTF: 52.37 * v'^2.6.
func Decode(vp float64) float64 {
	return peakLuminance * math.Pow(vp, gamma)
}

// DecodeInt treats the input as a 12-bit code value and applies the DCDM
// EOTF.
func DecodeInt(code float64) float64 {
	return Decode(code / maxCodeValue)
}

// Codec adapts the float-signal DCDM pair to the colorspace.TransferFunction
// interface for use at the RGB/XYZ' boundary of the RGB transforms.
type Codec struct{}

func (Codec) Encode(v float64) float64 { return Encode(v) }

func (Codec) Decode(v float64) float64 { return Decode(v) }
