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

import "math"

var (
	// XYZ (D65) to LMS cone responses
	xyzToLMS = &matrix3{
		0.8190224379967030, 0.3619062600528904, -0.1288737815209879,
		0.0329836539323885, 0.9292868615863434, 0.0361446663506424,
		0.0481771893596242, 0.2642395317527308, 0.6335478284694309,
	}
	lmsToXYZ = xyzToLMS.invert()

	// non-linear LMS to OKLab
	lmsCbrtToOKLab = &matrix3{
		0.2104542683093140, 0.7936177747023054, -0.0040720430116193,
		1.9779985324311684, -2.4285922420485799, 0.4505937096174110,
		0.0259040424655478, 0.7827717124575296, -0.8086757549230774,
	}
	oklabToLMSCbrt = lmsCbrtToOKLab.invert()
)

func lmsToOKLab(l, m, s float64) (float64, float64, float64) {
	return lmsCbrtToOKLab.apply(math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))
}

func oklabToLMS(L, a, b float64) (float64, float64, float64) {
	l, m, s := oklabToLMSCbrt.apply(L, a, b)
	return l * l * l, m * m * m, s * s * s
}

func xyzToOKLab(c *Color, _ ...float64) *Color {
	L, a, b := lmsToOKLab(xyzToLMS.apply(c.V[0], c.V[1], c.V[2]))
	return c.withValues(OKLab, L, a, b)
}

func oklabToXYZ(c *Color, _ ...float64) *Color {
	X, Y, Z := lmsToXYZ.apply(oklabToLMS(c.V[0], c.V[1], c.V[2]))
	return c.withValues(XYZ, X, Y, Z)
}

func oklabToOKLCh(c *Color, _ ...float64) *Color {
	C, h := toPolar(c.V[1], c.V[2])
	return c.withValues(OKLCh, c.V[0], C, h)
}

func oklchToOKLab(c *Color, _ ...float64) *Color {
	a, b := fromPolar(c.V[1], c.V[2])
	return c.withValues(OKLab, c.V[0], a, b)
}
