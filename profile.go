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

	"seehuhn.de/go/colorspace/icc"
)

// RegisterProfile adds the device colour space of an ICC profile as a new
// colour space with the given ID.
//
// The profile must be an RGB matrix/TRC profile.  Conversions between the
// new space and CIE XYZ (D50) are registered with cat; the conversion graph
// of cat is not rebuilt.  In colour strings, the new space is written as
// "color(--id r g b)", with channel values in the range [0, 1].
//
// The ID must not belong to a built-in colour space or to a space
// registered with [RegisterSpace].  An ID which was used for an earlier
// profile can be reused.
func RegisterProfile(cat *Catalog, id ID, p *icc.Profile) error {
	if s := LookupSpace(id); s != nil && s.CSSName != "--"+string(id) {
		return fmt.Errorf("colorspace: profile %q: colour space already exists", id)
	}
	if p.ColorSpace != icc.RGBSpace {
		return fmt.Errorf("colorspace: profile %q: unsupported colour space %s with %d components",
			id, p.ColorSpace, p.ColorSpace.NumComponents())
	}
	t, err := icc.NewTransform(p)
	if err != nil {
		return fmt.Errorf("colorspace: profile %q: %w", id, err)
	}

	channel := func(name string) Channel {
		return Channel{Name: name, Min: 0, Max: 1, Flags: OptionalPercentage}
	}
	RegisterSpace(&Space{
		ID:            id,
		Channels:      [3]Channel{channel("r"), channel("g"), channel("b")},
		CSSName:       "--" + string(id),
		ColorFunction: true,
	})

	cat.Register(id, XYZD50, func(c *Color, _ ...float64) *Color {
		X, Y, Z := t.ToXYZ(c.V[:])
		return c.withValues(XYZD50, X, Y, Z)
	})
	cat.Register(XYZD50, id, func(c *Color, _ ...float64) *Color {
		v := t.FromXYZ(c.V[0], c.V[1], c.V[2])
		return c.withValues(id, v[0], v[1], v[2])
	})
	return nil
}
