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

func init() {
	for _, s := range builtinSpaces() {
		RegisterSpace(s)
	}
	RegisterBuiltin(Default)
	Default.Build()
}

func builtinSpaces() []*Space {
	hueChannel := Channel{Name: "h", Min: negInf, Max: posInf, Flags: Angle}
	unitChannel := func(name string) Channel {
		return Channel{Name: name, Min: 0, Max: 1, Flags: Percentage}
	}
	rgbChannel := func(name string) Channel {
		return Channel{Name: name, Min: 0, Max: 1, Flags: OptionalPercentage, Scale: 255}
	}
	p3Channel := func(name string) Channel {
		return Channel{Name: name, Min: 0, Max: 1, Flags: OptionalPercentage}
	}
	xyzChannel := func(name string) Channel {
		return Channel{Name: name, Min: negInf, Max: posInf, Flags: OptionalPercentage}
	}
	opponent := func(name string, ref float64) Channel {
		return Channel{
			Name:  name,
			Min:   negInf,
			Max:   posInf,
			Flags: OptionalPercentage | MirrorPercentage,
			Ref:   ref,
		}
	}
	lightness := func(name string, flags ChannelFlags, ref float64) Channel {
		return Channel{Name: name, Min: negInf, Max: posInf, Flags: flags, Ref: ref}
	}
	chroma := func(name string, ref float64) Channel {
		return Channel{Name: name, Min: 0, Max: posInf, Flags: OptionalPercentage, Ref: ref}
	}

	return []*Space{
		{
			ID:       RGB,
			Channels: [3]Channel{rgbChannel("r"), rgbChannel("g"), rgbChannel("b")},
			CSSName:  "rgb",
		},
		{
			ID:       HSL,
			Channels: [3]Channel{hueChannel, unitChannel("s"), unitChannel("l")},
			CSSName:  "hsl",
		},
		{
			ID:       HSV,
			Channels: [3]Channel{hueChannel, unitChannel("s"), unitChannel("v")},
			CSSName:  "hsv",
		},
		{
			ID:       HWB,
			Channels: [3]Channel{hueChannel, unitChannel("w"), unitChannel("b")},
			CSSName:  "hwb",
		},
		{
			ID:            XYZ,
			Channels:      [3]Channel{xyzChannel("x"), xyzChannel("y"), xyzChannel("z")},
			CSSName:       "xyz-d65",
			ColorFunction: true,
		},
		{
			ID:            XYZD50,
			Channels:      [3]Channel{xyzChannel("x"), xyzChannel("y"), xyzChannel("z")},
			CSSName:       "xyz-d50",
			ColorFunction: true,
		},
		{
			ID: Lab,
			Channels: [3]Channel{
				lightness("l", Percentage, 100),
				opponent("a", 125),
				opponent("b", 125),
			},
			CSSName: "lab",
		},
		{
			ID: LCh,
			Channels: [3]Channel{
				lightness("l", Percentage, 100),
				chroma("c", 150),
				hueChannel,
			},
			CSSName: "lch",
		},
		{
			ID: OKLab,
			Channels: [3]Channel{
				lightness("l", OptionalPercentage, 1),
				opponent("a", 0.4),
				opponent("b", 0.4),
			},
			CSSName: "oklab",
		},
		{
			ID: OKLCh,
			Channels: [3]Channel{
				lightness("l", OptionalPercentage, 1),
				chroma("c", 0.4),
				hueChannel,
			},
			CSSName: "oklch",
		},
		{
			ID: JzAzBz,
			Channels: [3]Channel{
				lightness("jz", OptionalPercentage, 1),
				opponent("az", 0.5),
				opponent("bz", 0.5),
			},
			CSSName: "jzazbz",
		},
		{
			ID: JzCzHz,
			Channels: [3]Channel{
				lightness("jz", OptionalPercentage, 1),
				chroma("cz", 0.5),
				hueChannel,
			},
			CSSName: "jzczhz",
		},
		{
			ID:            P3,
			Channels:      [3]Channel{p3Channel("r"), p3Channel("g"), p3Channel("b")},
			CSSName:       "display-p3",
			ColorFunction: true,
		},
	}
}

// RegisterBuiltin registers the conversions between the built-in colour
// spaces with cat.  It is called automatically for the [Default] catalog.
//
// The order of registration determines which of several equally short
// conversion chains is used.
func RegisterBuiltin(cat *Catalog) {
	edges := []Edge{
		{RGB, HSL, rgbToHSL},
		{HSL, RGB, hslToRGB},
		{RGB, HSV, rgbToHSV},
		{HSV, RGB, hsvToRGB},
		{HSV, HWB, hsvToHWB},
		{HWB, HSV, hwbToHSV},
		{RGB, XYZ, rgbToXYZ},
		{XYZ, RGB, xyzToRGB},
		{RGB, OKLab, rgbToOKLab},
		{OKLab, RGB, oklabToRGB},
		{P3, XYZ, p3ToXYZ},
		{XYZ, P3, xyzToP3},
		{XYZ, XYZD50, xyzToXYZD50},
		{XYZD50, XYZ, xyzD50ToXYZ},
		{XYZD50, Lab, xyzD50ToLab},
		{Lab, XYZD50, labToXYZD50},
		{Lab, LCh, labToLCh},
		{LCh, Lab, lchToLab},
		{XYZ, OKLab, xyzToOKLab},
		{OKLab, XYZ, oklabToXYZ},
		{OKLab, OKLCh, oklabToOKLCh},
		{OKLCh, OKLab, oklchToOKLab},
		{XYZ, JzAzBz, xyzToJzAzBz},
		{JzAzBz, XYZ, jzazbzToXYZ},
		{JzAzBz, JzCzHz, jzazbzToJzCzHz},
		{JzCzHz, JzAzBz, jzczhzToJzAzBz},
	}
	for _, e := range edges {
		cat.Register(e.From, e.To, e.Convert)
	}
}
