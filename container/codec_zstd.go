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

	"github.com/klauspost/compress/zstd"
)

func init() {
	RegisterCodec(CodecZstd, func() Codec { return &zstdCodec{} })
}

// zstdCodec decompresses Zstandard-compressed hunks.
type zstdCodec struct {
	decoder *zstd.Decoder
}

// Decompress decompresses a Zstandard-compressed hunk.
func (z *zstdCodec) Decompress(dst, src []byte) (int, error) {
	if z.decoder == nil {
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return 0, fmt.Errorf("%w: zstd init: %w", ErrDecompressFailed, err)
		}
		z.decoder = decoder
	}

	result, err := z.decoder.DecodeAll(src, dst[:0])
	if err != nil {
		return 0, fmt.Errorf("%w: zstd: %w", ErrDecompressFailed, err)
	}
	if len(result) > len(dst) {
		return 0, fmt.Errorf("%w: zstd: output too large", ErrDecompressFailed)
	}
	if len(result) > 0 && &result[0] != &dst[0] {
		copy(dst, result)
	}
	return len(result), nil
}
