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

package colorspace

import (
	"math"

	"seehuhn.de/go/colorspace/icc"
)

// matrix3 is a 3x3 matrix in row-major order.
type matrix3 [9]float64

// apply returns the product of m and the column vector (x, y, z).
func (m *matrix3) apply(x, y, z float64) (float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*z,
		m[3]*x + m[4]*y + m[5]*z,
		m[6]*x + m[7]*y + m[8]*z
}

// invert returns the inverse of m.
// The function panics if m is singular; it is only used on the
// constant matrices of the built-in colour spaces.
func (m *matrix3) invert() *matrix3 {
	inv, ok := icc.InvertMatrix3x3(*m)
	if !ok {
		panic("colorspace: singular colour matrix")
	}
	res := matrix3(inv)
	return &res
}

// toPolar converts the Cartesian opponent axes a, b into chroma and hue.
// The hue is given in degrees, in the range [0, 360).
func toPolar(a, b float64) (chroma, hue float64) {
	chroma = math.Hypot(a, b)
	hue = math.Atan2(b, a) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	if hue >= 360 {
		hue -= 360
	}
	return chroma, hue
}

// fromPolar is the inverse of toPolar.
func fromPolar(chroma, hue float64) (a, b float64) {
	rad := hue * math.Pi / 180
	return chroma * math.Cos(rad), chroma * math.Sin(rad)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
