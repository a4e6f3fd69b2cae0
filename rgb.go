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

import "seehuhn.de/go/colorspace/icc"

// srgbTRC is the transfer function shared by sRGB and Display P3.
// Values outside [0, 1] are handled by mirroring at zero and by extending
// the power segment above one.
var srgbTRC = icc.SRGBCurve()

func srgbToLinear(v float64) float64 {
	return srgbTRC.EvaluateSigned(v)
}

func linearToSRGB(v float64) float64 {
	return srgbTRC.InvertSigned(v)
}

// linear sRGB to CIE XYZ (D65)
var (
	linearSRGBToXYZ = &matrix3{
		0.41239079926595934, 0.357584339383878, 0.1804807884018343,
		0.21263900587151027, 0.715168678767756, 0.07219231536073371,
		0.01933081871559182, 0.11919477979462598, 0.9505321522496607,
	}
	xyzToLinearSRGB = linearSRGBToXYZ.invert()
)

func rgbToXYZ(c *Color, _ ...float64) *Color {
	r := srgbToLinear(c.V[0])
	g := srgbToLinear(c.V[1])
	b := srgbToLinear(c.V[2])
	X, Y, Z := linearSRGBToXYZ.apply(r, g, b)
	return c.withValues(XYZ, X, Y, Z)
}

func xyzToRGB(c *Color, _ ...float64) *Color {
	r, g, b := xyzToLinearSRGB.apply(c.V[0], c.V[1], c.V[2])
	return c.withValues(RGB, linearToSRGB(r), linearToSRGB(g), linearToSRGB(b))
}

// linear sRGB to LMS cone responses, as used for OKLab
var (
	linearSRGBToLMS = &matrix3{
		0.4122214708, 0.5363325363, 0.0514459929,
		0.2119034982, 0.6806995451, 0.1073969566,
		0.0883024619, 0.2817188376, 0.6299787005,
	}
	lmsToLinearSRGB = linearSRGBToLMS.invert()
)

func rgbToOKLab(c *Color, _ ...float64) *Color {
	r := srgbToLinear(c.V[0])
	g := srgbToLinear(c.V[1])
	b := srgbToLinear(c.V[2])
	L, A, B := lmsToOKLab(linearSRGBToLMS.apply(r, g, b))
	return c.withValues(OKLab, L, A, B)
}

func oklabToRGB(c *Color, _ ...float64) *Color {
	r, g, b := lmsToLinearSRGB.apply(oklabToLMS(c.V[0], c.V[1], c.V[2]))
	return c.withValues(RGB, linearToSRGB(r), linearToSRGB(g), linearToSRGB(b))
}

// linear Display P3 to CIE XYZ (D65)
var (
	linearP3ToXYZ = &matrix3{
		0.4865709486482162, 0.26566769316909306, 0.1982172852343625,
		0.2289745640697488, 0.6917385218365064, 0.079286914093745,
		0, 0.04511338185890264, 1.043944368900976,
	}
	xyzToLinearP3 = linearP3ToXYZ.invert()
)

func p3ToXYZ(c *Color, _ ...float64) *Color {
	r := srgbToLinear(c.V[0])
	g := srgbToLinear(c.V[1])
	b := srgbToLinear(c.V[2])
	X, Y, Z := linearP3ToXYZ.apply(r, g, b)
	return c.withValues(XYZ, X, Y, Z)
}

func xyzToP3(c *Color, _ ...float64) *Color {
	r, g, b := xyzToLinearP3.apply(c.V[0], c.V[1], c.V[2])
	return c.withValues(P3, linearToSRGB(r), linearToSRGB(g), linearToSRGB(b))
}
