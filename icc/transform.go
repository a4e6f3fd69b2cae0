// seehuhn.de/go/colorspace - colour spaces and conversions between them
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package icc

import (
	"errors"
	"fmt"
	"math"
)

// Transform converts colours between the device colour space of a profile
// and the Profile Connection Space (CIE XYZ relative to D50).
//
// A Transform is safe for concurrent use.
type Transform struct {
	// NumComponents is the number of device colour components: 3 for RGB
	// profiles and 1 for grayscale profiles.
	NumComponents int

	// matrix/TRC profiles
	matrix    [9]float64 // linear device RGB to XYZ, row-major
	matrixInv [9]float64
	trc       [3]*Curve

	// grayscale profiles
	grayTRC    *Curve
	whitePoint [3]float64
}

// NewTransform creates a transform for a matrix/TRC or grayscale TRC
// profile.  Profiles using lookup tables are not supported.
func NewTransform(p *Profile) (*Transform, error) {
	if p.PCS != XYZSpace {
		return nil, fmt.Errorf("icc: unsupported PCS %s", p.PCS)
	}

	switch p.ColorSpace {
	case RGBSpace:
		return newMatrixTRC(p)
	case GraySpace:
		return newGrayTRC(p)
	default:
		return nil, fmt.Errorf("icc: unsupported colour space %s", p.ColorSpace)
	}
}

func newMatrixTRC(p *Profile) (*Transform, error) {
	t := &Transform{NumComponents: 3}

	var cols [3][3]float64
	for i, tag := range []TagType{RedMatrixColumn, GreenMatrixColumn, BlueMatrixColumn} {
		data, ok := p.TagData[tag]
		if !ok {
			return nil, fmt.Errorf("%w %s", errMissingTag, tag)
		}
		xyz, err := decodeXYZ(data)
		if err != nil {
			return nil, err
		}
		cols[i] = xyz
	}
	for row := range 3 {
		for col := range 3 {
			t.matrix[3*row+col] = cols[col][row]
		}
	}

	inv, ok := InvertMatrix3x3(t.matrix)
	if !ok {
		return nil, errSingularMatrix
	}
	t.matrixInv = inv

	for i, tag := range []TagType{RedTRC, GreenTRC, BlueTRC} {
		data, ok := p.TagData[tag]
		if !ok {
			return nil, fmt.Errorf("%w %s", errMissingTag, tag)
		}
		curve, err := DecodeCurve(data)
		if err != nil {
			return nil, err
		}
		t.trc[i] = curve
	}

	return t, nil
}

func newGrayTRC(p *Profile) (*Transform, error) {
	t := &Transform{NumComponents: 1, whitePoint: D50}

	data, ok := p.TagData[GrayTRC]
	if !ok {
		return nil, fmt.Errorf("%w %s", errMissingTag, GrayTRC)
	}
	curve, err := DecodeCurve(data)
	if err != nil {
		return nil, err
	}
	t.grayTRC = curve

	if data, ok := p.TagData[MediaWhitePoint]; ok {
		if wp, err := decodeXYZ(data); err == nil && wp[1] > 0 {
			t.whitePoint = wp
		}
	}

	return t, nil
}

// ToXYZ converts device colour values to PCS XYZ.
//
// Values outside the range [0, 1] are extended using the tone reproduction
// curves where possible, so that wide-gamut colours survive a round trip
// through the transform.
func (t *Transform) ToXYZ(device []float64) (X, Y, Z float64) {
	if t.grayTRC != nil {
		y := t.grayTRC.EvaluateSigned(device[0])
		return t.whitePoint[0] * y, t.whitePoint[1] * y, t.whitePoint[2] * y
	}

	r := t.trc[0].EvaluateSigned(device[0])
	g := t.trc[1].EvaluateSigned(device[1])
	b := t.trc[2].EvaluateSigned(device[2])
	m := &t.matrix
	return m[0]*r + m[1]*g + m[2]*b,
		m[3]*r + m[4]*g + m[5]*b,
		m[6]*r + m[7]*g + m[8]*b
}

// FromXYZ converts PCS XYZ values to device colour values.
// The result has NumComponents elements and is not clamped.
func (t *Transform) FromXYZ(X, Y, Z float64) []float64 {
	if t.grayTRC != nil {
		return []float64{t.grayTRC.InvertSigned(Y / t.whitePoint[1])}
	}

	m := &t.matrixInv
	r := m[0]*X + m[1]*Y + m[2]*Z
	g := m[3]*X + m[4]*Y + m[5]*Z
	b := m[6]*X + m[7]*Y + m[8]*Z
	return []float64{
		t.trc[0].InvertSigned(r),
		t.trc[1].InvertSigned(g),
		t.trc[2].InvertSigned(b),
	}
}

// WhitePoint returns the PCS XYZ values of the device white.
func (t *Transform) WhitePoint() [3]float64 {
	if t.grayTRC != nil {
		return t.whitePoint
	}
	X, Y, Z := t.ToXYZ([]float64{1, 1, 1})
	return [3]float64{X, Y, Z}
}

// InvertMatrix3x3 computes the inverse of a 3x3 matrix in row-major order.
// The second return value is false if the matrix is singular or nearly
// singular.
func InvertMatrix3x3(m [9]float64) ([9]float64, bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if math.Abs(det) < 1e-12 || math.IsNaN(det) {
		return [9]float64{}, false
	}
	invDet := 1 / det

	return [9]float64{
		(e*i - f*h) * invDet, (c*h - b*i) * invDet, (b*f - c*e) * invDet,
		(f*g - d*i) * invDet, (a*i - c*g) * invDet, (c*d - a*f) * invDet,
		(d*h - e*g) * invDet, (b*g - a*h) * invDet, (a*e - b*d) * invDet,
	}, true
}

var errSingularMatrix = errors.New("icc: singular colour matrix")
