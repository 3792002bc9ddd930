// Copyright (c) 2025 Niema Moshiri and The Zaparoo Project.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-gameid.
//
// go-gameid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-gameid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-gameid.  If not, see <https://www.gnu.org/licenses/>.

// Package container parses a generic multi-codec hunk container: a fixed
// header, a hunk map table, and hunks independently compressed with one of
// a small set of registered codecs looked up by a 4-byte tag.
package container

import (
	"fmt"
	"io"

	"github.com/huffdat/datpack/internal/binary"
)

// headerSize is the fixed, single-version header length in bytes.
const headerSize = 56

// packMagic is the fixed magic word at the start of every container.
var packMagic = [4]byte{'D', 'P', 'A', 'K'}

// Header describes a container file: its codec slots, hunk geometry, and
// the offset of the hunk map table.
//
//	Offset 0x00: Magic (4 bytes, "DPAK")
//	Offset 0x04: Header size (4 bytes)
//	Offset 0x08: Version (4 bytes)
//	Offset 0x0C: Codec tags (4 x 4 bytes) - fourCC codec tags for HunkCompCodec0..3; a zero tag marks an empty slot
//	Offset 0x1C: Hunk bytes (4 bytes) - uncompressed size of one hunk
//	Offset 0x20: Hunk count (4 bytes)
//	Offset 0x24: Logical bytes (8 bytes) - total uncompressed size
//	Offset 0x2C: Map offset (8 bytes) - offset of the hunk map table
type Header struct {
	Version      uint32
	CodecTags    [4]uint32
	HunkBytes    uint32
	HunkCount    uint32
	LogicalBytes uint64
	MapOffset    uint64
}

// ParseHeader reads and validates a container header from r.
func ParseHeader(r io.ReaderAt) (*Header, error) {
	buf, err := binary.ReadBytesAt(r, 0, headerSize)
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var magic [4]byte
	copy(magic[:], buf[0:4])
	if magic != packMagic {
		return nil, ErrInvalidMagic
	}

	headerLen, err := binary.ReadUint32BEAt(r, 4)
	if err != nil {
		return nil, fmt.Errorf("read header size: %w", err)
	}
	if headerLen != headerSize {
		return nil, fmt.Errorf("%w: header size %d, want %d", ErrInvalidHeader, headerLen, headerSize)
	}

	h := &Header{}
	h.Version = beUint32(buf[8:12])
	if h.Version != 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	for i := range h.CodecTags {
		h.CodecTags[i] = beUint32(buf[12+i*4 : 16+i*4])
	}

	h.HunkBytes = beUint32(buf[28:32])
	h.HunkCount = beUint32(buf[32:36])
	if h.HunkCount > MaxHunkCount {
		return nil, fmt.Errorf("%w: too many hunks (%d > %d)", ErrInvalidHeader, h.HunkCount, MaxHunkCount)
	}
	h.LogicalBytes = beUint64(buf[36:44])
	h.MapOffset = beUint64(buf[44:52])

	return h, nil
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// CodecTagString renders a fourCC codec tag as its ASCII form, e.g. "zlib".
func CodecTagString(tag uint32) string {
	if tag == 0 {
		return "none"
	}
	b := []byte{byte(tag >> 24), byte(tag >> 16), byte(tag >> 8), byte(tag)}
	return string(b)
}
