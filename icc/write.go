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

package icc

import (
	"bytes"
	"cmp"
	"crypto/md5"
	"math"
	"slices"
	"time"
)

// Encode converts the profile to binary form.
//
// Tags with identical data are stored only once.
func (p *Profile) Encode() []byte {
	version := p.Version
	if version == 0 {
		version = currentVersion
	}

	type tagInfo struct {
		tagType   TagType
		data      []byte
		start     uint32
		duplicate bool
	}
	tags := make([]tagInfo, 0, len(p.TagData))
	for tagType, data := range p.TagData {
		tags = append(tags, tagInfo{tagType: tagType, data: data})
	}
	// sort by data so that duplicates are adjacent, and by tag type to
	// make the output deterministic
	slices.SortFunc(tags, func(a, b tagInfo) int {
		if c := bytes.Compare(a.data, b.data); c != 0 {
			return c
		}
		return cmp.Compare(a.tagType, b.tagType)
	})

	pos := headerSize + 4 + len(tags)*12
	for i := range tags {
		if i > 0 && bytes.Equal(tags[i].data, tags[i-1].data) {
			tags[i].start = tags[i-1].start
			tags[i].duplicate = true
		} else {
			tags[i].start = uint32(pos)
			pos += (len(tags[i].data) + 3) &^ 3
		}
	}

	buf := make([]byte, pos)
	putUint32(buf, 0, uint32(pos))
	putUint32(buf, 8, uint32(version))
	putUint32(buf, 12, uint32(p.Class))
	putUint32(buf, 16, uint32(p.ColorSpace))
	putUint32(buf, 20, uint32(p.PCS))
	putDateTime(buf, 24, p.CreationDate)
	putUint32(buf, 36, 0x61637370) // "acsp"
	putS15Fixed16(buf, 68, D50[0])
	putS15Fixed16(buf, 72, D50[1])
	putS15Fixed16(buf, 76, D50[2])

	putUint32(buf, headerSize, uint32(len(tags)))
	for i, tag := range tags {
		entry := headerSize + 4 + i*12
		putUint32(buf, entry, uint32(tag.tagType))
		putUint32(buf, entry+4, tag.start)
		putUint32(buf, entry+8, uint32(len(tag.data)))
		if !tag.duplicate {
			copy(buf[tag.start:], tag.data)
		}
	}

	if version >= Version4_0_0 {
		// The ID is computed while the rendering intent field is
		// still zero.
		h := md5.Sum(buf)
		copy(buf[84:], h[:])
	}
	putUint32(buf, 64, p.RenderingIntent)

	return buf
}

// encodeXYZ creates an XYZType tag containing a single XYZ value.
func encodeXYZ(xyz [3]float64) []byte {
	buf := make([]byte, 20)
	copy(buf, "XYZ ")
	putS15Fixed16(buf, 8, xyz[0])
	putS15Fixed16(buf, 12, xyz[1])
	putS15Fixed16(buf, 16, xyz[2])
	return buf
}

func putUint16(data []byte, offset int, value uint16) {
	data[offset] = byte(value >> 8)
	data[offset+1] = byte(value)
}

func putUint32(data []byte, offset int, value uint32) {
	data[offset] = byte(value >> 24)
	data[offset+1] = byte(value >> 16)
	data[offset+2] = byte(value >> 8)
	data[offset+3] = byte(value)
}

func putS15Fixed16(data []byte, offset int, value float64) {
	raw := int32(math.Round(value * 65536.0))
	putUint32(data, offset, uint32(raw))
}

func putDateTime(data []byte, offset int, t time.Time) {
	if t.IsZero() {
		return
	}
	putUint16(data, offset, uint16(t.Year()))
	putUint16(data, offset+2, uint16(t.Month()))
	putUint16(data, offset+4, uint16(t.Day()))
	putUint16(data, offset+6, uint16(t.Hour()))
	putUint16(data, offset+8, uint16(t.Minute()))
	putUint16(data, offset+10, uint16(t.Second()))
}
