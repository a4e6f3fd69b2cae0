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
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		want     [3]float64
		alpha    float64
		hasAlpha bool
	}{
		{"#f0f", [3]float64{1, 0, 1}, 0, false},
		{"#F0F8", [3]float64{1, 0, 1}, 136.0 / 255, true},
		{"#336699", [3]float64{0.2, 0.4, 0.6}, 0, false},
		{"  #ff000080 ", [3]float64{1, 0, 0}, 128.0 / 255, true},
	}
	for _, tt := range tests {
		c, err := ParseCSS(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, RGB, c.Space)
		assert.InDeltaSlice(t, tt.want[:], c.V[:], 1e-12, tt.in)
		assert.Equal(t, tt.hasAlpha, c.HasAlpha, tt.in)
		assert.InDelta(t, tt.alpha, c.Alpha, 1e-12, tt.in)
	}

	for _, in := range []string{"#", "#12", "#12345", "#1234567", "#ggg", "#+12"} {
		_, err := ParseCSS(in)
		var syntaxErr *SyntaxError
		assert.True(t, errors.As(err, &syntaxErr), "%q: %v", in, err)
	}
}

func TestParseNamed(t *testing.T) {
	c, err := ParseCSS("Red")
	require.NoError(t, err)
	assert.Equal(t, New(RGB, 1, 0, 0), c)

	c, err = ParseCSS("rebeccapurple")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.4, 0.2, 0.6}, c.V[:], 1e-12)

	c, err = ParseCSS("transparent")
	require.NoError(t, err)
	assert.True(t, c.HasAlpha)
	assert.Equal(t, 0.0, c.Alpha)

	_, err = ParseCSS("no-such-colour")
	assert.Error(t, err)
	_, err = ParseCSS("")
	assert.Error(t, err)
}

func TestParseColorFunction(t *testing.T) {
	tests := []struct {
		in    string
		space ID
		want  [3]float64
	}{
		{"color(srgb 1 0 0.5)", RGB, [3]float64{1, 0, 0.5}},
		{"color(srgb 100% 0% 50%)", RGB, [3]float64{1, 0, 0.5}},
		{"color(display-p3 0.5 0 1)", P3, [3]float64{0.5, 0, 1}},
		{"color(Display-P3 50% 0 1)", P3, [3]float64{0.5, 0, 1}},
		{"color(xyz 0.1 0.2 0.3)", XYZ, [3]float64{0.1, 0.2, 0.3}},
		{"color(xyz-d65 0.1 -0.2 3)", XYZ, [3]float64{0.1, -0.2, 3}},
		{"color(xyz-d50 0.1 0.2 0.3)", XYZD50, [3]float64{0.1, 0.2, 0.3}},
		{"color(--foo 1 -2 300)", "foo", [3]float64{1, -2, 300}},
		{"color(--oklab 0.5 0.1 -0.1)", OKLab, [3]float64{0.5, 0.1, -0.1}},
	}
	for _, tt := range tests {
		c, err := ParseCSS(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.space, c.Space, tt.in)
		assert.InDeltaSlice(t, tt.want[:], c.V[:], 1e-12, tt.in)
	}

	c, err := ParseCSS("color(--foo 1 2 3 / 0.5)")
	require.NoError(t, err)
	assert.True(t, c.HasAlpha)
	assert.Equal(t, 0.5, c.Alpha)

	_, err = ParseCSS("color(srgb 2 0 0)")
	assert.ErrorContains(t, err, "out of range [0, 1]")
	_, err = ParseCSS("color(--foo 1% 2 3)")
	assert.ErrorContains(t, err, "percentage not allowed")
}

func TestString(t *testing.T) {
	tests := []struct {
		c    *Color
		want string
	}{
		{New(RGB, 1, 0, 1), "rgb(255 0 255)"},
		{New(RGB, 1, 0, 1).WithAlpha(0.5), "rgb(255 0 255 / 0.5)"},
		{New(RGB, 1.5, -0.5, 0.5), "rgb(255 0 127.5)"},
		{New(RGB, 0, 0, 0).WithAlpha(2), "rgb(0 0 0 / 1)"},
		{New(HSL, 120, 1, 0.5), "hsl(120 100% 50%)"},
		{New(HWB, 0, 0.25, 0), "hwb(0 25% 0%)"},
		{New(Lab, 50, 40, -20), "lab(50% 40 -20)"},
		{New(LCh, 50, -10, 20), "lch(50% 0 20)"},
		{New(OKLCh, 0.7, 0.1, 140), "oklch(0.7 0.1 140)"},
		{New(P3, 1, 0, 0), "color(display-p3 1 0 0)"},
		{New(XYZ, 0.5, math.NaN(), 1), "color(xyz-d65 0.5 none 1)"},
		{New(XYZD50, -0.5, 0, 2), "color(xyz-d50 -0.5 0 2)"},
		{New("foo", 1, 2, 3), "color(--foo 1 2 3)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.String())
	}
}

func TestStringRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, s := range Default.Spaces() {
		for range 20 {
			c := mustConvert(t, randomRGB(rng), s)
			if rng.Intn(2) == 0 {
				c = c.WithAlpha(rng.Float64())
			}
			want := Clip(c)

			text := c.String()
			got, err := ParseCSS(text)
			require.NoError(t, err, text)
			assert.Equal(t, want.Space, got.Space, text)
			assert.InDeltaSlice(t, want.V[:], got.V[:], 1e-9, text)
			assert.Equal(t, want.HasAlpha, got.HasAlpha, text)
			assert.InDelta(t, want.Alpha, got.Alpha, 1e-12, text)
		}
	}
}

func FuzzParseCSS(f *testing.F) {
	f.Add("rgb(255 0 255)")
	f.Add("rgba(255, 0, 255, 0.5)")
	f.Add("hsl(120deg 50% 25% / 10%)")
	f.Add("hwb(none 10% 20%)")
	f.Add("lab(50% 40 -20)")
	f.Add("lch(50% 100 -30)")
	f.Add("oklch(70% 0.25 140)")
	f.Add("jzazbz(0.2 0.01 -0.01)")
	f.Add("color(display-p3 1 0 0)")
	f.Add("color(xyz 0.1 0.2 0.3)")
	f.Add("color(--foo 1 2 3 / 0)")
	f.Add("#abcd")
	f.Add("transparent")
	f.Fuzz(func(t *testing.T, s string) {
		c, err := ParseCSS(s)
		if err != nil {
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("%q: unexpected error type %T", s, err)
			}
			return
		}

		text := c.String()
		c2, err := ParseCSS(text)
		if err != nil {
			t.Fatalf("%q -> %q: %v", s, text, err)
		}
		if c2.Space != c.Space {
			t.Errorf("%q -> %q: space changed from %s to %s", s, text, c.Space, c2.Space)
		}
	})
}
