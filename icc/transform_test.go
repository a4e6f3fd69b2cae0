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
	"math"
	"testing"
)

func TestInvertMatrix3x3(t *testing.T) {
	identity := [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	inv, ok := InvertMatrix3x3(identity)
	if !ok || inv != identity {
		t.Errorf("inverse of identity = %v, %v", inv, ok)
	}

	srgbToXYZ := [9]float64{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}
	inv, ok = InvertMatrix3x3(srgbToXYZ)
	if !ok {
		t.Fatal("matrix reported as singular")
	}
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += srgbToXYZ[i*3+k] * inv[k*3+j]
			}
			expected := 0.0
			if i == j {
				expected = 1.0
			}
			if math.Abs(sum-expected) > 1e-6 {
				t.Errorf("matrix * inverse[%d][%d] = %f, want %f", i, j, sum, expected)
			}
		}
	}

	singular := [9]float64{1, 2, 3, 2, 4, 6, 0, 0, 1}
	if _, ok := InvertMatrix3x3(singular); ok {
		t.Error("singular matrix was inverted")
	}
}

func TestGrayTransform(t *testing.T) {
	p := &Profile{
		Class:      DisplayDeviceProfile,
		ColorSpace: GraySpace,
		PCS:        XYZSpace,
		TagData: map[TagType][]byte{
			GrayTRC: (&Curve{Gamma: 2.2}).Encode(),
		},
	}
	tr, err := NewTransform(p)
	if err != nil {
		t.Fatal(err)
	}
	if tr.NumComponents != 1 {
		t.Errorf("NumComponents = %d, want 1", tr.NumComponents)
	}

	X, Y, Z := tr.ToXYZ([]float64{1})
	if math.Abs(X-D50[0]) > 1e-9 || math.Abs(Y-1) > 1e-9 || math.Abs(Z-D50[2]) > 1e-9 {
		t.Errorf("white -> XYZ = (%v, %v, %v)", X, Y, Z)
	}

	for _, g := range []float64{0, 0.2, 0.5, 0.8} {
		X, Y, Z := tr.ToXYZ([]float64{g})
		back := tr.FromXYZ(X, Y, Z)
		if math.Abs(back[0]-g) > 1e-6 {
			t.Errorf("round-trip %g -> %g", g, back[0])
		}
	}
}

func TestNewTransformErrors(t *testing.T) {
	tests := []struct {
		name string
		p    *Profile
	}{
		{"Lab PCS", &Profile{ColorSpace: RGBSpace, PCS: LabSpace}},
		{"CMYK", &Profile{ColorSpace: ColorSpace(0x434D594B), PCS: XYZSpace}},
		{"missing tags", &Profile{ColorSpace: RGBSpace, PCS: XYZSpace}},
		{"missing gray TRC", &Profile{ColorSpace: GraySpace, PCS: XYZSpace}},
	}
	for _, tt := range tests {
		if _, err := NewTransform(tt.p); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}

	_, err := NewTransform(&Profile{ColorSpace: RGBSpace, PCS: XYZSpace})
	if !errors.Is(err, errMissingTag) {
		t.Errorf("unexpected error %v", err)
	}
}
