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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// componentReader reads the numeric components of a colour function like
// "rgb(255 0 255 / 0.5)".  A reader is used for a single colour string.
type componentReader struct {
	src string
	pos int

	// commaSyntax is set by detectDelimiter if the components are separated
	// by commas rather than by whitespace.
	commaSyntax bool
}

// newComponentReader returns a reader which starts at byte offset start of
// src, typically just after the opening parenthesis.
func newComponentReader(src string, start int) *componentReader {
	r := &componentReader{src: src, pos: start}
	r.skipSpace()
	return r
}

// componentOptions describe which values are allowed for a component and
// how they are converted to channel values.
type componentOptions struct {
	hue         bool // angle in degrees, normalised to [0, 360)
	alpha       bool // number or percentage in [0, 1]
	percentOnly bool
	numberOnly  bool

	min, max float64 // range of the resulting channel value

	divisor    float64 // plain numbers are divided by this
	percentRef float64 // the channel value corresponding to 100%
}

// channelOptions returns the options for reading a value of the given
// channel.
func channelOptions(ch *Channel) componentOptions {
	opt := componentOptions{
		min:        ch.Min,
		max:        ch.Max,
		divisor:    ch.scale(),
		percentRef: ch.ref(),
	}
	switch {
	case ch.Flags&Angle != 0:
		opt.hue = true
	case ch.Flags&Percentage != 0:
		opt.percentOnly = true
	case ch.Flags&(OptionalPercentage|MirrorPercentage) == 0:
		opt.numberOnly = true
	}
	return opt
}

var alphaOptions = componentOptions{
	alpha:      true,
	min:        0,
	max:        1,
	divisor:    1,
	percentRef: 1,
}

// readComponent reads a single number, percentage or angle.
// The keyword "none" gives a missing value, represented by NaN.
func (r *componentReader) readComponent(opt componentOptions) (float64, error) {
	start := r.pos

	if !opt.alpha && r.hasPrefixFold("none") {
		r.pos += 4
		return math.NaN(), nil
	}

	if c := r.peek(); c == '+' || c == '-' {
		if c == '-' && opt.min >= 0 && !opt.hue {
			return 0, r.fail(start, "negative value not allowed")
		}
		r.pos++
	}

	numStart := r.pos
	seenDot := false
	seenDigit := false
loop:
	for r.pos < len(r.src) {
		switch c := r.src[r.pos]; {
		case c == '.':
			if seenDot {
				return 0, r.fail(r.pos, "multiple '.' in number")
			}
			seenDot = true
		case c >= '0' && c <= '9':
			seenDigit = true
		default:
			break loop
		}
		r.pos++
	}
	if !seenDigit {
		return 0, r.fail(numStart, "expected number")
	}
	text := r.src[start:r.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, r.fail(start, "invalid number")
	}

	isPercent := r.peek() == '%'
	if isPercent {
		r.pos++
	}

	switch {
	case opt.hue:
		if isPercent {
			return 0, r.fail(start, "percentage not allowed for hue")
		}
		if r.hasPrefixFold("deg") {
			r.pos += 3
		}
		return normalizeHue(v), nil

	case opt.alpha:
		if isPercent {
			v /= 100
		}
		if v < 0 || v > 1 {
			return 0, r.fail(start, "alpha value "+r.src[start:r.pos]+" out of range [0, 1]")
		}
		return v, nil

	case opt.percentOnly && !isPercent:
		return 0, r.fail(start, "expected percentage")

	case opt.numberOnly && isPercent:
		return 0, r.fail(start, "percentage not allowed")
	}

	if isPercent {
		v = v / 100 * opt.percentRef
	} else {
		v /= opt.divisor
	}
	if math.IsInf(v, 0) {
		return 0, r.fail(start, "invalid number")
	}

	if v < opt.min || v > opt.max {
		var lo, hi string
		if isPercent {
			lo = formatNumber(opt.min/opt.percentRef*100) + "%"
			hi = formatNumber(opt.max/opt.percentRef*100) + "%"
		} else {
			lo = formatNumber(opt.min * opt.divisor)
			hi = formatNumber(opt.max * opt.divisor)
		}
		reason := fmt.Sprintf("value %s out of range [%s, %s]", r.src[start:r.pos], lo, hi)
		return 0, r.fail(start, reason)
	}
	return v, nil
}

// detectDelimiter reads the separator after the first component.  A comma
// selects the legacy comma syntax for the rest of the colour, otherwise
// the components must be separated by whitespace.
func (r *componentReader) detectDelimiter() error {
	start := r.pos
	r.skipSpace()
	if r.peek() == ',' {
		r.pos++
		r.skipSpace()
		r.commaSyntax = true
		return nil
	}
	if r.pos > start {
		return nil
	}
	return r.fail(r.pos, "expected ',' or whitespace")
}

// consumeComma reads the separator between two components, using the
// syntax selected by detectDelimiter.
func (r *componentReader) consumeComma() error {
	start := r.pos
	r.skipSpace()
	if r.commaSyntax {
		if r.peek() != ',' {
			return r.fail(r.pos, "expected ','")
		}
		r.pos++
		r.skipSpace()
		return nil
	}
	if r.pos == start {
		return r.fail(r.pos, "expected whitespace")
	}
	return nil
}

// optionalAlpha reads an alpha value, if one is present.  The alpha value
// is introduced by "/", or by "," if the comma syntax is used.
func (r *componentReader) optionalAlpha() (float64, bool, error) {
	save := r.pos
	r.skipSpace()
	c := r.peek()
	if c != '/' && !(c == ',' && r.commaSyntax) {
		r.pos = save
		return 0, false, nil
	}
	r.pos++
	r.skipSpace()
	alpha, err := r.readComponent(alphaOptions)
	if err != nil {
		return 0, false, err
	}
	return alpha, true, nil
}

// checkEnd reads the closing parenthesis, which must be the last byte of
// the input.
func (r *componentReader) checkEnd() error {
	r.skipSpace()
	if r.peek() != ')' {
		return r.fail(r.pos, "missing ')'")
	}
	r.pos++
	if r.pos < len(r.src) {
		return r.fail(r.pos, "unexpected text after ')'")
	}
	return nil
}

// readIdent reads a CSS identifier, like the colour space name in
// "color(display-p3 1 0 0)".
func (r *componentReader) readIdent() (string, error) {
	start := r.pos
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_' {
			r.pos++
			continue
		}
		break
	}
	if r.pos == start {
		return "", r.fail(start, "expected colour space name")
	}
	return r.src[start:r.pos], nil
}

func (r *componentReader) peek() byte {
	if r.pos < len(r.src) {
		return r.src[r.pos]
	}
	return 0
}

func (r *componentReader) hasPrefixFold(prefix string) bool {
	end := r.pos + len(prefix)
	return end <= len(r.src) && strings.EqualFold(r.src[r.pos:end], prefix)
}

func (r *componentReader) skipSpace() {
	for r.pos < len(r.src) && isSpace(r.src[r.pos]) {
		r.pos++
	}
}

func (r *componentReader) fail(offset int, reason string) error {
	return &SyntaxError{Input: r.src, Offset: offset, Reason: reason}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// normalizeHue brings a hue angle into the range [0, 360).
func normalizeHue(h float64) float64 {
	if math.Abs(h) >= 360*1024 {
		h = math.Mod(h, 360)
	}
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func formatNumber(x float64) string {
	if x == 0 {
		x = 0 // no negative zero
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// SyntaxError is returned if a colour string cannot be parsed.
type SyntaxError struct {
	Input  string
	Offset int // byte offset of the problem in Input
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("colorspace: invalid colour %q (byte %d): %s", e.Input, e.Offset, e.Reason)
}
