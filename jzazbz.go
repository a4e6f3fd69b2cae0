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

// DefaultPeakLuminance is the luminance, in cd/m², of diffuse white used
// by the JzAzBz conversions when no peak luminance argument is given.
const DefaultPeakLuminance = 203.0

// JzAzBz constants, from Safdar et al., "Perceptually uniform color space
// for image signals including high dynamic range and wide gamut" (2017).
const (
	jzB  = 1.15
	jzG  = 0.66
	jzN  = 2610.0 / (1 << 14)
	jzC1 = 3424.0 / (1 << 12)
	jzC2 = 2413.0 / (1 << 7)
	jzC3 = 2392.0 / (1 << 7)
	jzP  = 1.7 * 2523.0 / (1 << 5)
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11
)

var (
	jzXYZToCone = &matrix3{
		0.41478972, 0.579999, 0.0146480,
		-0.2015100, 1.120649, 0.0531008,
		-0.0166008, 0.264800, 0.6684799,
	}
	jzConeToXYZ = jzXYZToCone.invert()

	jzConeToIab = &matrix3{
		0.5, 0.5, 0,
		3.524000, -4.066708, 0.542708,
		0.199076, 1.096799, -1.295875,
	}
	jzIabToCone = jzConeToIab.invert()
)

// peakLuminance returns the luminance of diffuse white from the extra
// arguments of a conversion.
func peakLuminance(args []float64) float64 {
	if len(args) > 0 && args[0] > 0 {
		return args[0]
	}
	return DefaultPeakLuminance
}

// pqEncode applies the perceptual quantizer to an absolute cone response.
func pqEncode(v float64) float64 {
	x := math.Pow(max(v, 0)/10000, jzN)
	return math.Pow((jzC1+jzC2*x)/(1+jzC3*x), jzP)
}

func pqDecode(v float64) float64 {
	x := math.Pow(max(v, 0), 1/jzP)
	ratio := (jzC1 - x) / (jzC3*x - jzC2)
	return 10000 * math.Pow(max(ratio, 0), 1/jzN)
}

// xyzToJzAzBz converts relative XYZ (D65) to JzAzBz.  The optional
// argument is the luminance of diffuse white in cd/m².
func xyzToJzAzBz(c *Color, args ...float64) *Color {
	yw := peakLuminance(args)
	Xa := max(c.V[0]*yw, 0)
	Ya := max(c.V[1]*yw, 0)
	Za := max(c.V[2]*yw, 0)

	Xm := jzB*Xa - (jzB-1)*Za
	Ym := jzG*Ya - (jzG-1)*Xa
	l, m, s := jzXYZToCone.apply(Xm, Ym, Za)
	Iz, az, bz := jzConeToIab.apply(pqEncode(l), pqEncode(m), pqEncode(s))

	Jz := (1+jzD)*Iz/(1+jzD*Iz) - jzD0
	return c.withValues(JzAzBz, Jz, az, bz)
}

func jzazbzToXYZ(c *Color, args ...float64) *Color {
	yw := peakLuminance(args)
	Jz, az, bz := c.V[0], c.V[1], c.V[2]

	Iz := (Jz + jzD0) / (1 + jzD - jzD*(Jz+jzD0))
	l, m, s := jzIabToCone.apply(Iz, az, bz)
	Xm, Ym, Za := jzConeToXYZ.apply(pqDecode(l), pqDecode(m), pqDecode(s))

	Xa := (Xm + (jzB-1)*Za) / jzB
	Ya := (Ym + (jzG-1)*Xa) / jzG
	return c.withValues(XYZ, Xa/yw, Ya/yw, Za/yw)
}

func jzazbzToJzCzHz(c *Color, _ ...float64) *Color {
	C, h := toPolar(c.V[1], c.V[2])
	return c.withValues(JzCzHz, c.V[0], C, h)
}

func jzczhzToJzAzBz(c *Color, _ ...float64) *Color {
	a, b := fromPolar(c.V[1], c.V[2])
	return c.withValues(JzAzBz, c.V[0], a, b)
}
