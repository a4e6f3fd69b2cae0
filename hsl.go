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

// rgbHue computes the hue of an sRGB colour, in degrees.
// Achromatic colours have hue 0.
func rgbHue(r, g, b, hi, d float64) float64 {
	if d == 0 {
		return 0
	}
	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return normalizeHue(h * 60)
}

func rgbToHSL(c *Color, _ ...float64) *Color {
	r, g, b := c.V[0], c.V[1], c.V[2]
	hi := max(r, g, b)
	lo := min(r, g, b)
	d := hi - lo
	h := rgbHue(r, g, b, hi, d)
	l := (hi + lo) / 2

	var s float64
	if d != 0 && l != 0 && l != 1 {
		s = (hi - l) / min(l, 1-l)
	}
	if s < 0 {
		// can only happen for colours outside the sRGB gamut
		h = normalizeHue(h + 180)
		s = -s
	}
	return c.withValues(HSL, h, s, l)
}

func hslToRGB(c *Color, _ ...float64) *Color {
	h, s, l := c.V[0], c.V[1], c.V[2]
	a := s * min(l, 1-l)
	f := func(n float64) float64 {
		k := posMod(n+h/30, 12)
		return l - a*max(-1, min(k-3, 9-k, 1))
	}
	return c.withValues(RGB, f(0), f(8), f(4))
}

func rgbToHSV(c *Color, _ ...float64) *Color {
	r, g, b := c.V[0], c.V[1], c.V[2]
	hi := max(r, g, b)
	d := hi - min(r, g, b)
	var s float64
	if hi != 0 {
		s = d / hi
	}
	return c.withValues(HSV, rgbHue(r, g, b, hi, d), s, hi)
}

func hsvToRGB(c *Color, _ ...float64) *Color {
	h, s, v := c.V[0], c.V[1], c.V[2]
	f := func(n float64) float64 {
		k := posMod(n+h/60, 6)
		return v - v*s*max(0, min(k, 4-k, 1))
	}
	return c.withValues(RGB, f(5), f(3), f(1))
}

func hsvToHWB(c *Color, _ ...float64) *Color {
	h, s, v := c.V[0], c.V[1], c.V[2]
	return c.withValues(HWB, h, (1-s)*v, 1-v)
}

func hwbToHSV(c *Color, _ ...float64) *Color {
	h, w, b := c.V[0], c.V[1], c.V[2]
	if w+b >= 1 {
		return c.withValues(HSV, h, 0, w/(w+b))
	}
	v := 1 - b
	var s float64
	if v != 0 {
		s = 1 - w/v
	}
	return c.withValues(HSV, h, s, v)
}

// posMod returns x modulo m, in the range [0, m).
func posMod(x, m float64) float64 {
	x = math.Mod(x, m)
	if x < 0 {
		x += m
	}
	return x
}
