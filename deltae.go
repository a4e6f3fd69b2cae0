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

// DeltaEOK returns the colour difference between a and b, measured as the
// Euclidean distance in OKLab.  A difference of 0.02 is about the smallest
// difference which can be noticed.
func (cat *Catalog) DeltaEOK(a, b *Color) (float64, error) {
	return cat.euclidean(a, b, OKLab)
}

// DeltaE76 returns the CIE 1976 colour difference between a and b, which
// is the Euclidean distance in CIE Lab.
func (cat *Catalog) DeltaE76(a, b *Color) (float64, error) {
	return cat.euclidean(a, b, Lab)
}

func (cat *Catalog) euclidean(a, b *Color, space ID, args ...float64) (float64, error) {
	a, err := cat.Convert(a, space, args...)
	if err != nil {
		return 0, err
	}
	b, err = cat.Convert(b, space, args...)
	if err != nil {
		return 0, err
	}
	a = a.resolveMissing()
	b = b.resolveMissing()
	d0 := a.V[0] - b.V[0]
	d1 := a.V[1] - b.V[1]
	d2 := a.V[2] - b.V[2]
	return math.Sqrt(d0*d0 + d1*d1 + d2*d2), nil
}

// DeltaEOK computes the OKLab colour difference using the [Default] catalog.
// See [Catalog.DeltaEOK].
func DeltaEOK(a, b *Color) (float64, error) {
	return Default.DeltaEOK(a, b)
}

// DeltaE76 computes the CIE 1976 colour difference using the [Default]
// catalog.  See [Catalog.DeltaE76].
func DeltaE76(a, b *Color) (float64, error) {
	return Default.DeltaE76(a, b)
}
