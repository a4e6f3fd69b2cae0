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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIsUnbound(t *testing.T) {
	tests := []struct {
		c    *Color
		want bool
	}{
		{New(XYZ, 0, 0, 0), true},
		{New(XYZD50, 0, 0, 0), true},
		{New(Lab, 0, 0, 0), true},
		{New(OKLab, 0, 0, 0), true},
		{New(RGB, 0, 0, 0), false},
		{New(HSL, 0, 0, 0), false},
		{New(OKLCh, 0, 0, 0), false},
		{New("no-such-space", 0, 0, 0), true},
	}
	for _, tt := range tests {
		if got := IsUnbound(tt.c); got != tt.want {
			t.Errorf("IsUnbound(%s) = %t, want %t", tt.c.Space, got, tt.want)
		}
	}
}

func TestInGamut(t *testing.T) {
	const tiny = 1e-12
	tests := []struct {
		c    *Color
		want bool
	}{
		{New(RGB, 0, 1, 0.5), true},
		{New(RGB, 0, 0, 0), true},
		{New(RGB, 1, 1, 1), true},
		{New(RGB, 1+tiny, 1, 1), false},
		{New(RGB, 0, -tiny, 0), false},
		{New(RGB, math.NaN(), 0.5, 1), true},
		{New(RGB, math.NaN(), 1.5, 1), false},
		{New(HSL, 720, 0.5, 0.5), true},
		{New(OKLCh, 0.5, -tiny, 0), false},
		{New(OKLCh, 0.5, 1e6, 0), true},
		{New(XYZ, -5, 100, 7), true},
		{New(RGB, 2, 2, 2).WithAlpha(7), false},
		{New(RGB, 0.5, 0.5, 0.5).WithAlpha(7), true},
	}
	for _, tt := range tests {
		if got := InGamut(tt.c); got != tt.want {
			t.Errorf("InGamut(%s %v) = %t, want %t", tt.c.Space, tt.c.V, got, tt.want)
		}
	}
}

func TestClip(t *testing.T) {
	opts := cmpopts.EquateNaNs()
	tests := []struct {
		in, want *Color
	}{
		{New(RGB, 0.1, 0.2, 0.3), New(RGB, 0.1, 0.2, 0.3)},
		{New(RGB, 1.2, -0.1, 0.5).WithAlpha(0.3), New(RGB, 1, 0, 0.5).WithAlpha(0.3)},
		{New(RGB, math.NaN(), 7, 0), New(RGB, math.NaN(), 1, 0)},
		{New(HSL, 400, 2, -1), New(HSL, 400, 1, 0)},
		{New(LCh, 50, -3, 10), New(LCh, 50, 0, 10)},
		{New(XYZ, -1, 2, 3), New(XYZ, -1, 2, 3)},
	}
	for _, tt := range tests {
		in := *tt.in
		got := Clip(tt.in)
		if d := cmp.Diff(tt.want, got, opts); d != "" {
			t.Errorf("Clip(%v) (-want +got):\n%s", tt.in.V, d)
		}
		if got == tt.in {
			t.Error("Clip returned its argument")
		}
		if d := cmp.Diff(&in, tt.in, opts); d != "" {
			t.Errorf("Clip modified its argument:\n%s", d)
		}
		if d := cmp.Diff(got, Clip(got), opts); d != "" {
			t.Errorf("Clip is not idempotent:\n%s", d)
		}
		if !InGamut(got) {
			t.Errorf("clipped colour %v is out of gamut", got.V)
		}
	}
}

func TestMapExtremes(t *testing.T) {
	tests := []struct {
		L    float64
		want [3]float64
	}{
		{1.1, [3]float64{1, 1, 1}},
		{1, [3]float64{1, 1, 1}},
		{-0.1, [3]float64{0, 0, 0}},
		{0, [3]float64{0, 0, 0}},
	}
	for _, tt := range tests {
		c := New(OKLCh, tt.L, 0.2, 30).WithAlpha(0.7)
		got, err := MapMinDeltaE(c, RGB)
		if err != nil {
			t.Fatal(err)
		}
		if got.Space != RGB {
			t.Errorf("result is in %s", got.Space)
		}
		approxEqual(t, got, tt.want, 1e-6)
		if !got.HasAlpha || got.Alpha != 0.7 {
			t.Errorf("alpha not preserved: %v", got)
		}
	}
}

func TestMapInGamut(t *testing.T) {
	c := New(RGB, 0.5, 0.5, 0.2)
	lch := mustConvert(t, c, OKLCh)
	got, err := MapMinDeltaE(lch, RGB)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual(t, got, c.V, 1e-9)
}

func TestMapGamutGuarantee(t *testing.T) {
	for _, target := range []ID{RGB, P3, HSL, HWB} {
		t.Run(string(target), func(t *testing.T) {
			for _, L := range []float64{0.05, 0.3, 0.5, 0.7, 0.95} {
				for h := 0.0; h < 360; h += 15 {
					c := New(OKLCh, L, 0.4, h)
					got, err := MapMinDeltaE(c, target)
					if err != nil {
						t.Fatal(err)
					}
					if got.Space != target {
						t.Fatalf("result is in %s", got.Space)
					}
					if !InGamut(got) {
						t.Errorf("oklch(%g 0.4 %g) mapped to %v", L, h, got.V)
					}
				}
			}
		})
	}
}

func TestMapPreservesLightness(t *testing.T) {
	// A colour just outside the gamut needs only a small change.
	c := New(OKLCh, 0.7, 0.25, 140)
	got, err := MapMinDeltaE(c, RGB)
	if err != nil {
		t.Fatal(err)
	}
	back := mustConvert(t, got, OKLCh)
	if math.Abs(back.V[0]-0.7) > 0.02 {
		t.Errorf("lightness changed from 0.7 to %g", back.V[0])
	}
	if hueDiff(back.V[2], 140) > 5 {
		t.Errorf("hue changed from 140 to %g", back.V[2])
	}
}

func TestMapFromOtherSpace(t *testing.T) {
	c := New(Lab, 60, 120, -120)
	got, err := MapMinDeltaE(c, RGB)
	if err != nil {
		t.Fatal(err)
	}
	if !InGamut(got) {
		t.Errorf("mapped to %v", got.V)
	}

	// unbound target spaces need no mapping
	got, err = MapMinDeltaE(c, XYZD50)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual(t, got, mustConvert(t, c, XYZD50).V, 1e-9)
}

func TestMapNotFinite(t *testing.T) {
	inputs := []*Color{
		New(OKLCh, 0.5, math.Inf(+1), 10),
		New(OKLCh, 0.5, 0.1, math.Inf(-1)),
		New(RGB, math.Inf(+1), 0, 0),
	}
	for _, c := range inputs {
		_, err := MapMinDeltaE(c, RGB)
		if !errors.Is(err, ErrNotFinite) {
			t.Errorf("%s %v: unexpected error %v", c.Space, c.V, err)
		}
	}

	// missing values are fine
	got, err := MapMinDeltaE(New(OKLCh, 0.5, math.NaN(), 10), RGB)
	if err != nil {
		t.Fatal(err)
	}
	if !InGamut(got) || got.hasMissing() {
		t.Errorf("unexpected result %v", got.V)
	}
}

func TestMapExtraArgs(t *testing.T) {
	c := New(RGB, 0.2, 0.4, 0.6)
	want := mustConvert(t, c, JzCzHz, 1000)
	got, err := MapMinDeltaE(c, JzCzHz, 1000)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual(t, got, want.V, 1e-5)

	noArgs, err := MapMinDeltaE(c, JzCzHz)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(noArgs.V[0]-got.V[0]) < 0.01 {
		t.Errorf("peak luminance ignored: %g vs %g", noArgs.V[0], got.V[0])
	}
}

func TestDeltaE(t *testing.T) {
	white := New(RGB, 1, 1, 1)
	black := New(RGB, 0, 0, 0)

	d, err := DeltaEOK(white, white)
	if err != nil || d != 0 {
		t.Errorf("DeltaEOK(white, white) = %g, %v", d, err)
	}
	d, err = DeltaEOK(white, black)
	if err != nil || math.Abs(d-1) > 1e-6 {
		t.Errorf("DeltaEOK(white, black) = %g, %v", d, err)
	}
	d, err = DeltaE76(white, black)
	if err != nil || math.Abs(d-100) > 1e-3 {
		t.Errorf("DeltaE76(white, black) = %g, %v", d, err)
	}

	d1, _ := DeltaEOK(New(OKLab, 0.5, 0, 0), New(OKLCh, 0.5, 0.1, 0))
	if math.Abs(d1-0.1) > 1e-12 {
		t.Errorf("DeltaEOK = %g, want 0.1", d1)
	}
}
