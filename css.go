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
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseCSS reads a colour given in CSS notation.
//
// The following forms are understood:
//   - colour functions like "rgb(255 0 0)", "hsl(120 50% 50% / 0.5)",
//     "lab(50% 40 -20)" or "oklch(0.7 0.1 140deg)", including the legacy
//     comma syntax "rgba(255, 0, 0, 0.5)"
//   - the color() function, for example "color(display-p3 1 0 0)"; colour
//     spaces registered with [RegisterProfile] are available as
//     "color(--name r g b)"
//   - hex colours "#rgb", "#rgba", "#rrggbb" and "#rrggbbaa"
//   - CSS named colours like "rebeccapurple", and "transparent"
//
// The keyword "none" can be used for missing channel values.
func ParseCSS(s string) (*Color, error) {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}
	if start < len(s) && s[start] == '#' {
		return parseHex(s, start)
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		return parseNamed(s)
	}
	name := strings.ToLower(s[start:open])

	switch name {
	case "color":
		return parseColorFunction(s, open+1)
	case "rgba":
		name = "rgb"
	case "hsla":
		name = "hsl"
	}
	space := lookupCSSName(name, false)
	if space == nil {
		return nil, &SyntaxError{Input: s, Offset: start, Reason: "unknown colour function " + strconv.Quote(name)}
	}
	return parseComponents(newComponentReader(s, open+1), space.ID, &space.Channels, false)
}

// parseComponents reads three channel values, an optional alpha value and
// the closing parenthesis.  If colorFunction is set, the Scale of the
// channels is ignored, as required for the CSS color() function.
func parseComponents(r *componentReader, id ID, channels *[3]Channel, colorFunction bool) (*Color, error) {
	var opts [3]componentOptions
	for i := range channels {
		opts[i] = channelOptions(&channels[i])
		if colorFunction {
			opts[i].divisor = 1
		}
	}

	v0, err := r.readComponent(opts[0])
	if err != nil {
		return nil, err
	}
	if err := r.detectDelimiter(); err != nil {
		return nil, err
	}
	v1, err := r.readComponent(opts[1])
	if err != nil {
		return nil, err
	}
	if err := r.consumeComma(); err != nil {
		return nil, err
	}
	v2, err := r.readComponent(opts[2])
	if err != nil {
		return nil, err
	}
	alpha, hasAlpha, err := r.optionalAlpha()
	if err != nil {
		return nil, err
	}
	if err := r.checkEnd(); err != nil {
		return nil, err
	}

	c := New(id, v0, v1, v2)
	if hasAlpha {
		c = c.WithAlpha(alpha)
	}
	return c, nil
}

// unboundChannels is used for colour spaces without channel metadata.
var unboundChannels = [3]Channel{
	{Name: "0", Min: negInf, Max: posInf},
	{Name: "1", Min: negInf, Max: posInf},
	{Name: "2", Min: negInf, Max: posInf},
}

func parseColorFunction(s string, start int) (*Color, error) {
	r := newComponentReader(s, start)
	nameStart := r.pos
	name, err := r.readIdent()
	if err != nil {
		return nil, err
	}
	if !isSpace(r.peek()) {
		return nil, r.fail(r.pos, "expected whitespace")
	}
	r.skipSpace()

	lower := strings.ToLower(name)
	switch lower {
	case "srgb":
		return parseComponents(r, RGB, &LookupSpace(RGB).Channels, true)
	case "xyz":
		lower = "xyz-d65"
	}
	if space := lookupCSSName(lower, true); space != nil {
		return parseComponents(r, space.ID, &space.Channels, true)
	}
	if space := lookupCSSName(name, true); space != nil {
		return parseComponents(r, space.ID, &space.Channels, true)
	}

	if id, ok := strings.CutPrefix(name, "--"); ok && id != "" {
		if space := LookupSpace(ID(id)); space != nil {
			return parseComponents(r, space.ID, &space.Channels, true)
		}
		return parseComponents(r, ID(id), &unboundChannels, true)
	}
	return nil, r.fail(nameStart, "unknown colour space "+strconv.Quote(name))
}

func parseHex(s string, start int) (*Color, error) {
	end := len(s)
	for end > start && isSpace(s[end-1]) {
		end--
	}
	digits := s[start+1 : end]

	var n, width int
	switch len(digits) {
	case 3, 4:
		n, width = len(digits), 1
	case 6, 8:
		n, width = len(digits)/2, 2
	default:
		return nil, &SyntaxError{Input: s, Offset: start, Reason: "invalid hex colour"}
	}

	var v [4]float64
	for i := range n {
		part := digits[i*width : (i+1)*width]
		x, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return nil, &SyntaxError{Input: s, Offset: start + 1 + i*width, Reason: "invalid hex digit"}
		}
		if width == 1 {
			x *= 17
		}
		v[i] = float64(x) / 255
	}

	c := New(RGB, v[0], v[1], v[2])
	if n == 4 {
		c = c.WithAlpha(v[3])
	}
	return c, nil
}

func parseNamed(s string) (*Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "transparent":
		return New(RGB, 0, 0, 0).WithAlpha(0), nil
	case "rebeccapurple": // CSS Color Level 4, missing from the SVG list
		return New(RGB, 0x66/255.0, 0x33/255.0, 0x99/255.0), nil
	}
	col, ok := colornames.Map[name]
	if !ok {
		return nil, &SyntaxError{Input: s, Offset: 0, Reason: "unknown colour name"}
	}
	return New(RGB,
		float64(col.R)/255,
		float64(col.G)/255,
		float64(col.B)/255), nil
}

// String returns the colour in CSS notation.  Channel values outside the
// range of their channel are clipped first, so that the result can be read
// by [ParseCSS].
func (c *Color) String() string {
	c = Clip(c)

	b := &strings.Builder{}
	s := LookupSpace(c.Space)
	channels := &unboundChannels
	colorFunction := true
	switch {
	case s == nil:
		b.WriteString("color(--" + string(c.Space) + " ")
	case s.ColorFunction:
		b.WriteString("color(" + s.CSSName + " ")
		channels = &s.Channels
	default:
		b.WriteString(s.CSSName + "(")
		channels = &s.Channels
		colorFunction = false
	}

	for i := range channels {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatChannel(c.V[i], &channels[i], colorFunction))
	}
	if c.HasAlpha {
		b.WriteString(" / ")
		b.WriteString(formatNumber(clamp(c.Alpha, 0, 1)))
	}
	b.WriteByte(')')
	return b.String()
}

func formatChannel(v float64, ch *Channel, colorFunction bool) string {
	switch {
	case math.IsNaN(v):
		return "none"
	case ch.Flags&Angle != 0:
		return formatNumber(v)
	case ch.Flags&Percentage != 0:
		return formatNumber(v/ch.ref()*100) + "%"
	case colorFunction:
		return formatNumber(v)
	default:
		return formatNumber(v * ch.scale())
	}
}
