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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/colorspace/icc"
)

func TestRegisterProfile(t *testing.T) {
	p, err := icc.Decode(icc.SRGB().Encode())
	require.NoError(t, err)

	cat := NewCatalog()
	RegisterBuiltin(cat)
	const id ID = "my-srgb"
	require.NoError(t, RegisterProfile(cat, id, p))
	cat.Build()

	assert.Equal(t, []ID{RGB, XYZ, XYZD50, id}, cat.FindPath(RGB, id))

	for _, v := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0.2, 0.4, 0.6}, {1, 1, 1}} {
		in := New(RGB, v[0], v[1], v[2])
		out, err := cat.Convert(in, id)
		require.NoError(t, err)
		assert.Equal(t, id, out.Space)
		assert.InDeltaSlice(t, v[:], out.V[:], 1e-3, "%v", v)

		back, err := cat.Convert(out, RGB)
		require.NoError(t, err)
		assert.InDeltaSlice(t, v[:], back.V[:], 1e-9, "%v", v)
	}

	c, err := ParseCSS("color(--my-srgb 1 0 0 / 0.5)")
	require.NoError(t, err)
	assert.Equal(t, id, c.Space)
	assert.Equal(t, 0.5, c.Alpha)
	assert.Equal(t, "color(--my-srgb 1 0 0 / 0.5)", c.String())
	assert.False(t, IsUnbound(c))

	mapped, err := cat.MapMinDeltaE(New(OKLCh, 0.7, 0.4, 140), id)
	require.NoError(t, err)
	assert.True(t, InGamut(mapped))
}

func TestRegisterProfileGray(t *testing.T) {
	p := &icc.Profile{
		Version:    icc.Version4_4_0,
		Class:      icc.DisplayDeviceProfile,
		ColorSpace: icc.GraySpace,
		PCS:        icc.XYZSpace,
	}
	err := RegisterProfile(NewCatalog(), "gray", p)
	assert.ErrorContains(t, err, "Gray with 1 components")
}

func TestRegisterProfileExistingSpace(t *testing.T) {
	for _, id := range []ID{RGB, OKLCh, P3} {
		before := *LookupSpace(id)
		err := RegisterProfile(NewCatalog(), id, icc.SRGB())
		assert.Error(t, err, id)
		assert.Equal(t, before, *LookupSpace(id), id)
	}

	c, err := ParseCSS("rgb(255 0 0)")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 0, 0}, c.V)

	// a profile space may be registered again
	for range 2 {
		require.NoError(t, RegisterProfile(NewCatalog(), "repeated-srgb", icc.SRGB()))
	}
}

func TestRegisterProfileMissingTags(t *testing.T) {
	p := icc.SRGB()
	delete(p.TagData, icc.GreenTRC)
	err := RegisterProfile(NewCatalog(), "broken", p)
	assert.Error(t, err)
}
