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
	"fmt"
	"sync"
)

// Codec tag constants (4-byte big-endian integers representing ASCII
// fourCCs), matching the chd package's codec tag convention.
const (
	// CodecNone indicates an uncompressed hunk.
	CodecNone uint32 = 0x00000000

	// CodecZlib is raw deflate, via compress/flate ("zlib").
	CodecZlib uint32 = 0x7a6c6962

	// CodecLZMA is a raw LZMA stream with properties synthesized from the
	// hunk size ("lzma").
	CodecLZMA uint32 = 0x6c7a6d61

	// CodecZstd is Zstandard ("zstd").
	CodecZstd uint32 = 0x7a737464

	// CodecFLAC is FLAC-encoded PCM, for audio asset hunks ("flac").
	CodecFLAC uint32 = 0x666c6163

	// CodecDict0 is this repository's own Huffman/LZ format, decoded by
	// dat.Decompress ("dat0").
	CodecDict0 uint32 = 0x64617430
)

// Codec decompresses one hunk's worth of data.
type Codec interface {
	// Decompress decompresses src into dst, which is pre-allocated to the
	// hunk's uncompressed size. Returns the number of bytes written.
	Decompress(dst, src []byte) (int, error)
}

var (
	codecRegistry   = make(map[uint32]func() Codec)
	codecRegistryMu sync.RWMutex
)

// RegisterCodec registers a codec factory for the given fourCC tag.
func RegisterCodec(tag uint32, factory func() Codec) {
	codecRegistryMu.Lock()
	defer codecRegistryMu.Unlock()
	codecRegistry[tag] = factory
}

// GetCodec returns a new codec instance for the given tag.
func GetCodec(tag uint32) (Codec, error) {
	codecRegistryMu.RLock()
	factory, ok := codecRegistry[tag]
	codecRegistryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: 0x%08x (%s)", ErrUnsupportedCodec, tag, CodecTagString(tag))
	}
	return factory(), nil
}
