/*
Package colorimetry provides deterministic conversions between colorimetric
representations of a single stimulus.

The module is organized as small leaf packages:

  - vecmat: the 3-vector and 3x3 matrix value types everything else is built
    on.
  - adaptation: chromatic adaptation matrices (Bradford, Von Kries, XYZ
    Scaling) between reference illuminants.
  - colorspace: the conversion graph: CIE XYZ, xyY and xy chromaticities,
    device RGB via normalized primary matrices, and the UCS, UVW, Luv and Lab
    uniform spaces with their polar LCH forms.
  - dcdm: the Digital Cinema Distribution Master transfer function pair.

All conversions are pure functions over their arguments, safe to call from
any number of goroutines.
*/
package colorimetry
