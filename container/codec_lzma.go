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

package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

func init() {
	RegisterCodec(CodecLZMA, func() Codec { return &lzmaCodec{} })
}

// lzmaCodec decompresses a raw LZMA stream with no header: properties are
// synthesized from the hunk size, exactly as the chd package's
// computeLZMADictSize does for MAME's CHD LZMA hunks.
type lzmaCodec struct{}

// computeLZMADictSize mirrors chd's computeLZMADictSize: MAME's
// LzmaEncProps_Normalize picks the smallest 2<<i or 3<<i >= hunkBytes for a
// level-8 encode.
func computeLZMADictSize(hunkBytes uint32) uint32 {
	reduceSize := hunkBytes
	for i := uint32(11); i <= 30; i++ {
		if reduceSize <= (2 << i) {
			return 2 << i
		}
		if reduceSize <= (3 << i) {
			return 3 << i
		}
	}
	return 1 << 26
}

// Decompress decompresses a headerless LZMA hunk, synthesizing the 13-byte
// header the xz/lzma reader expects from the destination length.
func (*lzmaCodec) Decompress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, fmt.Errorf("%w: lzma: empty source", ErrDecompressFailed)
	}

	dictSize := computeLZMADictSize(uint32(len(dst)))

	// lc=3, lp=0, pb=2, encoded as (pb*5+lp)*9+lc = 0x5D.
	const propsLcLpPb = 0x5D

	header := make([]byte, 13)
	header[0] = propsLcLpPb
	binary.LittleEndian.PutUint32(header[1:5], dictSize)
	binary.LittleEndian.PutUint64(header[5:13], uint64(len(dst)))

	fullStream := make([]byte, 13+len(src))
	copy(fullStream[0:13], header)
	copy(fullStream[13:], src)

	reader, err := lzma.NewReader(bytes.NewReader(fullStream))
	if err != nil {
		return 0, fmt.Errorf("%w: lzma init: %w", ErrDecompressFailed, err)
	}

	n, err := io.ReadFull(reader, dst)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return n, fmt.Errorf("%w: lzma read: %w", ErrDecompressFailed, err)
	}
	return n, nil
}
