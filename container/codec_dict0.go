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

	"github.com/huffdat/datpack/dat"
)

func init() {
	RegisterCodec(CodecDict0, func() Codec { return &dict0Codec{} })
}

// dict0Codec registers this repository's own Huffman/LZ decompressor as
// just another hunk codec, keyed by the "dat0" fourCC.
type dict0Codec struct{}

// Decompress runs dat.Decompress over src, capping the produced length at
// len(dst) (the hunk's declared uncompressed size).
func (*dict0Codec) Decompress(dst, src []byte) (int, error) {
	result, err := dat.Decompress(src, len(dst), 0)
	if err != nil {
		return 0, fmt.Errorf("%w: dat0: %w", ErrDecompressFailed, err)
	}
	return copy(dst, result.Bytes[:result.Length]), nil
}
