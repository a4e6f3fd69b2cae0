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

// Bradford chromatic adaptation between D65 and D50
var (
	d65ToD50 = &matrix3{
		1.0479298208405488, 0.022946793341019088, -0.05019222954313557,
		0.029627815688159344, 0.990434484573249, -0.01707382502938514,
		-0.009243058152591178, 0.015055144896577895, 0.7518742899580008,
	}
	d50ToD65 = d65ToD50.invert()
)

func xyzToXYZD50(c *Color, _ ...float64) *Color {
	X, Y, Z := d65ToD50.apply(c.V[0], c.V[1], c.V[2])
	return c.withValues(XYZD50, X, Y, Z)
}

func xyzD50ToXYZ(c *Color, _ ...float64) *Color {
	X, Y, Z := d50ToD65.apply(c.V[0], c.V[1], c.V[2])
	return c.withValues(XYZ, X, Y, Z)
}

// d50White is the D50 white point used by CIE Lab, computed from the
// chromaticity coordinates (0.3457, 0.3585).
var d50White = [3]float64{
	0.3457 / 0.3585,
	1,
	(1 - 0.3457 - 0.3585) / 0.3585,
}

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

func xyzD50ToLab(c *Color, _ ...float64) *Color {
	f := func(t float64) float64 {
		if t > labEpsilon {
			return math.Cbrt(t)
		}
		return (labKappa*t + 16) / 116
	}
	fx := f(c.V[0] / d50White[0])
	fy := f(c.V[1] / d50White[1])
	fz := f(c.V[2] / d50White[2])
	return c.withValues(Lab, 116*fy-16, 500*(fx-fy), 200*(fy-fz))
}

func labToXYZD50(c *Color, _ ...float64) *Color {
	L, a, b := c.V[0], c.V[1], c.V[2]
	fy := (L + 16) / 116
	fx := fy + a/500
	fz := fy - b/200

	finv := func(t float64) float64 {
		if t3 := t * t * t; t3 > labEpsilon {
			return t3
		}
		return (116*t - 16) / labKappa
	}
	var y float64
	if L > labKappa*labEpsilon {
		y = fy * fy * fy
	} else {
		y = L / labKappa
	}
	return c.withValues(XYZD50,
		finv(fx)*d50White[0],
		y*d50White[1],
		finv(fz)*d50White[2])
}

func labToLCh(c *Color, _ ...float64) *Color {
	C, h := toPolar(c.V[1], c.V[2])
	return c.withValues(LCh, c.V[0], C, h)
}

func lchToLab(c *Color, _ ...float64) *Color {
	a, b := fromPolar(c.V[1], c.V[2])
	return c.withValues(Lab, c.V[0], a, b)
}
