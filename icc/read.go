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
	"crypto/md5"
	"errors"
	"fmt"
	"time"
)

// Decode reads an ICC profile from its binary representation.
// The tag data of the returned profile shares memory with data.
func Decode(data []byte) (*Profile, error) {
	if len(data) < headerSize+4 {
		return nil, invalidProfile(0, "profile is too short")
	}
	if string(data[36:40]) != "acsp" {
		return nil, invalidProfile(36, "missing 'acsp' signature")
	}

	numTags := getUint32(data, headerSize)
	if uint64(numTags) > uint64((len(data)-headerSize-4)/12) {
		return nil, invalidProfile(headerSize, "too many tags")
	}

	p := &Profile{
		Version:         Version(getUint32(data, 8)),
		Class:           ProfileClass(getUint32(data, 12)),
		ColorSpace:      ColorSpace(getUint32(data, 16)),
		PCS:             ColorSpace(getUint32(data, 20)),
		CreationDate:    getDateTime(data, 24),
		RenderingIntent: getUint32(data, 64),

		TagData: make(map[TagType][]byte),
	}

	if !isZero(data[84:100]) {
		var givenHash [16]byte
		copy(givenHash[:], data[84:100])

		// The ID is computed with the flags, rendering intent and
		// profile ID fields set to zero.  Work on a copy, so that
		// the caller's data is left unchanged.
		tmp := bytes.Clone(data)
		putUint32(tmp, 44, 0)
		putUint32(tmp, 64, 0)
		clear(tmp[84:100])

		computedHash := md5.Sum(tmp)
		if computedHash == givenHash {
			p.CheckSum = CheckSumValid
		} else {
			p.CheckSum = CheckSumInvalid
		}
	}

	minTagOffset := int64(headerSize) + 4 + int64(numTags)*12
	for i := range int(numTags) {
		offset := headerSize + 4 + i*12
		tagType := TagType(getUint32(data, offset))
		tagOffset := getUint32(data, offset+4)
		tagSize := getUint32(data, offset+8)
		if tagSize < 4 {
			return nil, invalidProfile(offset+8, "tag is too small")
		}

		start := int64(tagOffset)
		end := start + int64(tagSize)
		if start < minTagOffset || end > int64(len(data)) {
			return nil, invalidProfile(offset, "tag is out of bounds")
		}
		p.TagData[tagType] = data[start:end]
	}

	if p.Version == 0 {
		p.Version = currentVersion
	}

	return p, nil
}

const headerSize = 128

func isZero(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

func getUint16(data []byte, offset int) uint16 {
	return uint16(data[offset])<<8 | uint16(data[offset+1])
}

func getUint32(data []byte, offset int) uint32 {
	return uint32(data[offset])<<24 | uint32(data[offset+1])<<16 | uint32(data[offset+2])<<8 | uint32(data[offset+3])
}

func getS15Fixed16(data []byte, offset int) float64 {
	return float64(int32(getUint32(data, offset))) / 65536.0
}

func getDateTime(data []byte, offset int) time.Time {
	year := int(getUint16(data, offset))
	month := int(getUint16(data, offset+2))
	day := int(getUint16(data, offset+4))
	hour := int(getUint16(data, offset+6))
	minute := int(getUint16(data, offset+8))
	second := int(getUint16(data, offset+10))
	if year < 1970 || year > 3000 ||
		month < 1 || month > 12 ||
		day < 1 || day > 31 ||
		hour > 23 || minute > 59 || second > 61 {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}

// decodeXYZ reads an XYZType tag containing a single XYZ value.
func decodeXYZ(data []byte) ([3]float64, error) {
	if len(data) < 20 {
		return [3]float64{}, errInvalidTagData
	}
	if string(data[0:4]) != "XYZ " {
		return [3]float64{}, errUnexpectedType
	}
	return [3]float64{
		getS15Fixed16(data, 8),
		getS15Fixed16(data, 12),
		getS15Fixed16(data, 16),
	}, nil
}

// InvalidProfileError indicates that an ICC profile contains invalid binary
// data and cannot be decoded.
type InvalidProfileError struct {
	Offset int
	Reason string
}

func invalidProfile(offset int, reason string) error {
	return &InvalidProfileError{Offset: offset, Reason: reason}
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("icc: invalid profile (byte %d): %s", e.Offset, e.Reason)
}

var (
	errMissingTag     = errors.New("icc: missing tag")
	errUnexpectedType = errors.New("icc: unexpected tag data type")
	errInvalidTagData = errors.New("icc: invalid tag data")
)
