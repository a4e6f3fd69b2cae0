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

import "time"

// SRGBCurve returns the transfer function of the sRGB colour space
// (IEC 61966-2-1), as a parametric curve of type 3.
func SRGBCurve() *Curve {
	return &Curve{
		FuncType: 3,
		Params:   []float64{2.4, 1 / 1.055, 0.055 / 1.055, 1 / 12.92, 0.04045},
	}
}

// SRGB returns a matrix/TRC display profile for the sRGB colour space.
//
// The matrix columns are the sRGB primaries, adapted to the D50 Profile
// Connection Space using the Bradford transform.
func SRGB() *Profile {
	trc := SRGBCurve().Encode()
	return &Profile{
		Version:      Version4_4_0,
		Class:        DisplayDeviceProfile,
		ColorSpace:   RGBSpace,
		PCS:          XYZSpace,
		CreationDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		TagData: map[TagType][]byte{
			RedMatrixColumn:   encodeXYZ([3]float64{0.4361, 0.2225, 0.0139}),
			GreenMatrixColumn: encodeXYZ([3]float64{0.3851, 0.7169, 0.0971}),
			BlueMatrixColumn:  encodeXYZ([3]float64{0.1431, 0.0606, 0.7141}),
			RedTRC:            trc,
			GreenTRC:          trc,
			BlueTRC:           trc,
			MediaWhitePoint:   encodeXYZ(D50),
		},
	}
}
