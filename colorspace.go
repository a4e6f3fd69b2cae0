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

// Package colorspace represents colours in a number of colour spaces and
// converts between them.
//
// Every colour space is identified by an [ID].  Conversions are registered
// as directed edges in a [Catalog]; colours can be converted between any two
// spaces which are connected by a chain of edges, even if no direct formula
// exists.  The built-in spaces are RGB (sRGB), HSL, HSV, HWB, CIE XYZ (D65
// and D50), CIE Lab and LCh, OKLab and OKLCh, JzAzBz and JzCzHz, and
// Display P3.
//
// # Converting Colours
//
//	c, err := colorspace.ParseCSS("oklch(70% 0.25 140)")
//	if err != nil {
//	    // handle error
//	}
//	rgb, err := colorspace.Convert(c, colorspace.RGB)
//
// The result of a conversion may lie outside the gamut of the target
// space.  Use [Clip] for a simple per-channel clamp, or [MapMinDeltaE]
// to find a perceptually close colour inside the gamut:
//
//	rgb, err := colorspace.MapMinDeltaE(c, colorspace.RGB)
//
// # Colour Strings
//
// [ParseCSS] reads the functional colour notations of CSS Color Module
// Level 4 (for example "rgb(255 0 255 / 0.5)" or "lab(50% 40 -20)"), hex
// colours and named colours.  [Color.String] produces strings which can be
// read back by [ParseCSS].
package colorspace

import (
	"errors"
	"math"
	"sync"
)

// ID identifies a colour space.
//
// The set of IDs is open: new colour spaces can be added at run time by
// registering conversions for a new ID with a [Catalog].
type ID string

// The built-in colour spaces.
const (
	RGB    ID = "rgb"        // sRGB, gamma encoded
	HSL    ID = "hsl"        // hue, saturation, lightness (sRGB)
	HSV    ID = "hsv"        // hue, saturation, value (sRGB)
	HWB    ID = "hwb"        // hue, whiteness, blackness (sRGB)
	XYZ    ID = "xyz-d65"    // CIE XYZ relative to D65
	XYZD50 ID = "xyz-d50"    // CIE XYZ relative to D50
	Lab    ID = "lab"        // CIE Lab (D50)
	LCh    ID = "lch"        // cylindrical CIE Lab
	OKLab  ID = "oklab"      // OKLab
	OKLCh  ID = "oklch"      // cylindrical OKLab
	JzAzBz ID = "jzazbz"     // JzAzBz
	JzCzHz ID = "jzczhz"     // cylindrical JzAzBz
	P3     ID = "display-p3" // Display P3, gamma encoded
)

// ChannelFlags describe how the value of a channel is written in colour
// strings.
type ChannelFlags uint8

// Possible values for ChannelFlags.
const (
	// Angle marks a hue channel, measured in degrees.
	Angle ChannelFlags = 1 << iota

	// Percentage marks a channel which must be written as a percentage.
	Percentage

	// OptionalPercentage marks a channel which may be written either as a
	// number or as a percentage.
	OptionalPercentage

	// MirrorPercentage marks a channel where -100% and 100% correspond to
	// -Ref and Ref.
	MirrorPercentage
)

// Channel describes one numeric component of a colour.
type Channel struct {
	Name string

	// Min and Max give the range of valid values.  Unbounded sides are
	// represented by infinite values.
	Min, Max float64

	Flags ChannelFlags

	// Ref is the channel value which corresponds to 100%.
	// A zero value is treated as 1.
	Ref float64

	// Scale converts channel values to the numbers used in colour strings,
	// for example 255 for the channels of sRGB.
	// A zero value is treated as 1.
	Scale float64
}

func (ch *Channel) ref() float64 {
	if ch.Ref == 0 {
		return 1
	}
	return ch.Ref
}

func (ch *Channel) scale() float64 {
	if ch.Scale == 0 {
		return 1
	}
	return ch.Scale
}

// Space describes a colour space.
type Space struct {
	ID       ID
	Channels [3]Channel

	// CSSName is the name used in colour strings.  This is either the name
	// of a CSS colour function like "rgb", or, if ColorFunction is set, the
	// name of a colour space used with the CSS color() function.
	CSSName       string
	ColorFunction bool
}

var (
	spacesMu sync.RWMutex
	spaces   = map[ID]*Space{}
)

// RegisterSpace makes the channel metadata of a colour space known to the
// package.  A later registration for the same ID replaces the earlier one.
//
// RegisterSpace is normally called during program initialisation.
func RegisterSpace(s *Space) {
	spacesMu.Lock()
	spaces[s.ID] = s
	spacesMu.Unlock()
}

// LookupSpace returns the description of the colour space with the given
// ID, or nil if the space is not known.
func LookupSpace(id ID) *Space {
	spacesMu.RLock()
	defer spacesMu.RUnlock()
	return spaces[id]
}

// lookupCSSName finds a registered colour space by the name used in colour
// strings.
func lookupCSSName(name string, colorFunction bool) *Space {
	spacesMu.RLock()
	defer spacesMu.RUnlock()
	for _, s := range spaces {
		if s.CSSName == name && s.ColorFunction == colorFunction {
			return s
		}
	}
	return nil
}

// Color is a colour value in a given colour space.
//
// Color values are treated as immutable: all functions in this package
// return newly allocated colours and never modify their arguments.
// A NaN channel value denotes a missing component.
type Color struct {
	Space ID
	V     [3]float64

	// Alpha is the opacity in the range [0, 1].  It is only used if HasAlpha
	// is true.
	Alpha    float64
	HasAlpha bool
}

// New returns a new, opaque colour in the given space.
func New(space ID, v0, v1, v2 float64) *Color {
	return &Color{Space: space, V: [3]float64{v0, v1, v2}}
}

// WithAlpha returns a copy of c with the given alpha value.
func (c *Color) WithAlpha(alpha float64) *Color {
	res := *c
	res.Alpha = alpha
	res.HasAlpha = true
	return &res
}

// withValues returns a colour in the given space which has the alpha value
// of c.
func (c *Color) withValues(space ID, v0, v1, v2 float64) *Color {
	return &Color{
		Space:    space,
		V:        [3]float64{v0, v1, v2},
		Alpha:    c.Alpha,
		HasAlpha: c.HasAlpha,
	}
}

// resolveMissing returns c with all missing channel values replaced by 0.
// If no channel is missing, c itself is returned.
func (c *Color) resolveMissing() *Color {
	if !c.hasMissing() {
		return c
	}
	res := *c
	for i, v := range res.V {
		if math.IsNaN(v) {
			res.V[i] = 0
		}
	}
	return &res
}

func (c *Color) hasMissing() bool {
	for _, v := range c.V {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Channels returns the channel metadata for the colour space of c.
// The result is nil if the colour space is not known.
func (c *Color) Channels() []Channel {
	s := LookupSpace(c.Space)
	if s == nil {
		return nil
	}
	channels := s.Channels
	return channels[:]
}

// Vector returns the channel values of c, followed by the alpha value if
// c has one.
func (c *Color) Vector() []float64 {
	res := make([]float64, 3, 4)
	copy(res, c.V[:])
	if c.HasAlpha {
		res = append(res, c.Alpha)
	}
	return res
}

// FromVector creates a colour from a vector of 3 channel values,
// or of 3 channel values followed by an alpha value.
func FromVector(space ID, v []float64) (*Color, error) {
	switch len(v) {
	case 3:
		return New(space, v[0], v[1], v[2]), nil
	case 4:
		return New(space, v[0], v[1], v[2]).WithAlpha(v[3]), nil
	default:
		return nil, ErrInvalidVectorLength
	}
}

// ErrInvalidVectorLength is returned by [FromVector] if the vector does not
// have 3 or 4 elements.
var ErrInvalidVectorLength = errors.New("colorspace: invalid vector length")

// ErrNotFinite is returned by [MapMinDeltaE] for colours with infinite
// channel values.
var ErrNotFinite = errors.New("colorspace: channel value is not finite")

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(+1)
)
