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

// Package icc implements the subset of ICC colour profiles needed to use
// a display profile as a colour space.
//
// Only matrix/TRC profiles (three tone reproduction curves followed by a
// 3x3 matrix, as used for most RGB displays) and grayscale TRC profiles are
// supported.  The Profile Connection Space of these profiles is CIE XYZ
// relative to the D50 illuminant.
//
//	p, err := icc.Decode(data)
//	if err != nil {
//	    // handle error
//	}
//	t, err := icc.NewTransform(p)
//	X, Y, Z := t.ToXYZ([]float64{r, g, b})
//	rgb := t.FromXYZ(X, Y, Z)
package icc

import (
	"fmt"
	"time"
)

// Profile represents an ICC colour profile.
//
// The TagData map contains the raw binary data for each tag in the
// profile.  Use [DecodeCurve] and [NewTransform] to interpret the tags.
type Profile struct {
	Version         Version
	Class           ProfileClass
	ColorSpace      ColorSpace // device colour space
	PCS             ColorSpace // Profile Connection Space
	CreationDate    time.Time
	RenderingIntent uint32

	// CheckSum indicates whether the profile's embedded checksum is valid.
	// This is only meaningful for profiles read using Decode.
	CheckSum CheckSum

	TagData map[TagType][]byte
}

// Version is a version of the ICC profile format.
type Version uint32

// Some well-known versions of the ICC profile format.
const (
	Version2_1_0 Version = 0x0210_0000 // Version 3.3 (November 1996)
	Version4_0_0 Version = 0x0400_0000 // ICC.1:2001-12
	Version4_4_0 Version = 0x0440_0000 // ICC.1:2022-05

	currentVersion = Version4_4_0
)

func (v Version) String() string {
	major := int(v >> 24)
	minor := int(v >> 20 & 0xF)
	bugfix := int(v >> 16 & 0xF)
	return fmt.Sprintf("%d.%d.%d", major, minor, bugfix)
}

// ProfileClass is the ICC profile or device class.
type ProfileClass uint32

// Profile classes which can describe a colour space.
const (
	InputDeviceProfile   ProfileClass = 0x73636E72 // "scnr"
	DisplayDeviceProfile ProfileClass = 0x6D6E7472 // "mntr"
	ColorSpaceProfile    ProfileClass = 0x73706163 // "spac"
)

func (c ProfileClass) String() string {
	switch c {
	case InputDeviceProfile:
		return "Input Device Profile"
	case DisplayDeviceProfile:
		return "Display Device Profile"
	case ColorSpaceProfile:
		return "ColorSpace Profile"
	default:
		return fmt.Sprintf("ProfileClass(%s)", signature(uint32(c)))
	}
}

// ColorSpace identifies a colour space in an ICC profile.
type ColorSpace uint32

// Colour spaces used by the supported profiles.
const (
	XYZSpace  ColorSpace = 0x58595A20 // "XYZ "
	LabSpace  ColorSpace = 0x4C616220 // "Lab "
	RGBSpace  ColorSpace = 0x52474220 // "RGB "
	GraySpace ColorSpace = 0x47524159 // "GRAY"
)

func (s ColorSpace) String() string {
	switch s {
	case XYZSpace:
		return "CIEXYZ"
	case LabSpace:
		return "CIELAB"
	case RGBSpace:
		return "RGB"
	case GraySpace:
		return "Gray"
	default:
		return fmt.Sprintf("ColorSpace(%s)", signature(uint32(s)))
	}
}

// NumComponents returns the number of colour components in the colour space,
// or 0 if the space is not one of the spaces listed above.
func (s ColorSpace) NumComponents() int {
	switch s {
	case XYZSpace, LabSpace, RGBSpace:
		return 3
	case GraySpace:
		return 1
	default:
		return 0
	}
}

// TagType identifies a tag in an ICC profile.
type TagType uint32

// The tags used by matrix/TRC profiles.
const (
	RedMatrixColumn   TagType = 0x7258595A // "rXYZ"
	GreenMatrixColumn TagType = 0x6758595A // "gXYZ"
	BlueMatrixColumn  TagType = 0x6258595A // "bXYZ"
	RedTRC            TagType = 0x72545243 // "rTRC"
	GreenTRC          TagType = 0x67545243 // "gTRC"
	BlueTRC           TagType = 0x62545243 // "bTRC"
	GrayTRC           TagType = 0x6B545243 // "kTRC"
	MediaWhitePoint   TagType = 0x77747074 // "wtpt"
)

func (t TagType) String() string {
	return signature(uint32(t))
}

// signature formats a four-byte signature, either as a quoted ASCII string
// or in hexadecimal.
func signature(x uint32) string {
	bb := []byte{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)}
	for _, c := range bb {
		if c < 0x20 || c > 0x7E {
			return fmt.Sprintf("0x%08X", x)
		}
	}
	return fmt.Sprintf("%q", string(bb))
}

// CheckSum contains information about the Profile ID field.
type CheckSum int

func (c CheckSum) String() string {
	switch c {
	case CheckSumValid:
		return "Valid"
	case CheckSumInvalid:
		return "Invalid"
	default:
		return "Missing"
	}
}

// Possible values of the CheckSum field.
const (
	CheckSumMissing CheckSum = iota
	CheckSumValid
	CheckSumInvalid
)

// D50 is the white point of the ICC Profile Connection Space.
var D50 = [3]float64{0.9642, 1.0, 0.8249}
