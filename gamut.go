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

// IsUnbound reports whether every channel of the colour space of c is
// unbounded on both sides.  Colours in spaces without registered channel
// metadata are treated as unbound.
func IsUnbound(c *Color) bool {
	s := LookupSpace(c.Space)
	if s == nil {
		return true
	}
	for _, ch := range s.Channels {
		if !math.IsInf(ch.Min, -1) || !math.IsInf(ch.Max, +1) {
			return false
		}
	}
	return true
}

// InGamut reports whether all channel values of c lie within the ranges of
// the channels of its colour space.  The bounds are inclusive.
// Missing channel values are ignored.
func InGamut(c *Color) bool {
	s := LookupSpace(c.Space)
	if s == nil {
		return true
	}
	for i, ch := range s.Channels {
		v := c.V[i]
		if math.IsNaN(v) {
			continue
		}
		if v < ch.Min || v > ch.Max {
			return false
		}
	}
	return true
}

// Clip returns a copy of c where every channel value is clamped to the
// range of its channel.  Missing channel values and alpha are left
// unchanged.
func Clip(c *Color) *Color {
	res := *c
	s := LookupSpace(c.Space)
	if s == nil {
		return &res
	}
	for i, ch := range s.Channels {
		if v := res.V[i]; !math.IsNaN(v) {
			res.V[i] = clamp(v, ch.Min, ch.Max)
		}
	}
	return &res
}

// Parameters of the gamut mapping algorithm.
const (
	// JND is the OKLab colour difference below which two colours are
	// considered indistinguishable.
	JND = 0.02

	gamutEpsilon = 0.0001
)

// MapMinDeltaE converts c into the colour space target and, if the result
// is outside the gamut of target, finds a nearby colour inside the gamut.
//
// The algorithm is the one from CSS Color Module Level 4: working in
// OKLCh, lightness and hue are kept fixed while the chroma is reduced by
// bisection, until clipping the colour to the gamut changes it by less than
// [JND].  The result is always within the gamut of target.
//
// The extra arguments are passed to every conversion, as for
// [Catalog.Convert].  Colours with infinite channel values cannot be
// mapped; for these [ErrNotFinite] is returned.
func (cat *Catalog) MapMinDeltaE(c *Color, target ID, args ...float64) (*Color, error) {
	if !isFinite(c) {
		return nil, ErrNotFinite
	}
	lch, err := cat.Convert(c, OKLCh, args...)
	if err != nil {
		return nil, err
	}
	lch = lch.resolveMissing()
	if !isFinite(lch) {
		return nil, ErrNotFinite
	}

	L, C, h := lch.V[0], lch.V[1], lch.V[2]
	switch {
	case L >= 1:
		white, err := cat.Convert(lch.withValues(OKLab, 1, 0, 0), target, args...)
		if err != nil {
			return nil, err
		}
		return Clip(white), nil
	case L <= 0:
		black, err := cat.Convert(lch.withValues(OKLab, 0, 0, 0), target, args...)
		if err != nil {
			return nil, err
		}
		return Clip(black), nil
	}

	dest, err := cat.Convert(lch, target, args...)
	if err != nil {
		return nil, err
	}
	if InGamut(dest) {
		return dest, nil
	}

	clipped := Clip(dest)
	E, err := cat.euclidean(clipped, dest, OKLab, args...)
	if err != nil {
		return nil, err
	}
	if E < JND {
		return clipped, nil
	}

	lo, hi := 0.0, C
	minInGamut := true
	for hi-lo > gamutEpsilon {
		chroma := (lo + hi) / 2
		dest, err = cat.Convert(lch.withValues(OKLCh, L, chroma, h), target, args...)
		if err != nil {
			return nil, err
		}

		if minInGamut && InGamut(dest) {
			lo = chroma
			continue
		}

		clipped = Clip(dest)
		E, err = cat.euclidean(clipped, dest, OKLab, args...)
		if err != nil {
			return nil, err
		}
		if E < JND {
			if JND-E < gamutEpsilon {
				break
			}
			minInGamut = false
			lo = chroma
		} else {
			hi = chroma
		}
	}
	return clipped, nil
}

// MapMinDeltaE maps a colour into the gamut of the target space, using the
// [Default] catalog.  See [Catalog.MapMinDeltaE].
func MapMinDeltaE(c *Color, target ID, args ...float64) (*Color, error) {
	return Default.MapMinDeltaE(c, target, args...)
}

// isFinite reports whether no channel value of c is infinite.
// Missing (NaN) values are allowed.
func isFinite(c *Color) bool {
	for _, v := range c.V {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
