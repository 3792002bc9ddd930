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

import "github.com/huffdat/datpack/internal/huffman"

// bitReader reads bits from a byte slice, MSB-first, filling an accumulator
// a byte at a time, zero-padding past the end of data. It backs both the
// hunk map's plain fixed-width fields (via read) and, through its
// Need/Peek/Drop methods, the shared canonical-Huffman decoder the
// comp-type stream uses.
type bitReader struct {
	data   []byte
	offset int
	bits   uint
	avail  int
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

// Need ensures at least n bits (1 <= n <= 32) are available, loading a byte
// at a time and zero-padding once data is exhausted.
func (br *bitReader) Need(n int) error {
	for br.avail < n {
		byteOff := br.offset / 8
		if byteOff >= len(br.data) {
			br.bits <<= 8
			br.avail += 8
			continue
		}
		br.bits = (br.bits << 8) | uint(br.data[byteOff])
		br.avail += 8
		br.offset += 8
	}
	return nil
}

// Peek returns the top n bits (1 <= n <= 32) of the pending window, right
// justified, without consuming them.
func (br *bitReader) Peek(n int) uint32 {
	mask := uint(1)<<uint(n) - 1
	return uint32((br.bits >> uint(br.avail-n)) & mask)
}

// Drop consumes the top n bits already returned by the most recent Peek.
func (br *bitReader) Drop(n int) {
	br.avail -= n
}

// read is the compound Need+Peek+Drop used for the hunk map's plain
// fixed-width fields (run counts, per-hunk lengths).
func (br *bitReader) read(count int) uint32 {
	_ = br.Need(count)
	v := br.Peek(count)
	br.Drop(count)
	return v
}

// importCompTypeTree reads a canonical code-length description encoded with
// run-length compression over per-symbol code lengths — a literal length-1
// symbol is escaped as the two-field sequence (1, 1) rather than the bare
// field value 1, which instead introduces a repeated-length run — and
// builds the resulting tree via the same canonical-Huffman builder dat's
// own per-block tree descriptions use.
func importCompTypeTree(br *bitReader, numCodes, maxBits int) (*huffman.Tree, error) {
	var numBits int
	switch {
	case maxBits >= 16:
		numBits = 5
	case maxBits >= 8:
		numBits = 4
	default:
		numBits = 3
	}

	nodeBits := make([]uint8, numCodes)
	for curNode := 0; curNode < numCodes; {
		bits := br.read(numBits)
		if bits != 1 {
			nodeBits[curNode] = uint8(bits)
			curNode++
			continue
		}
		bits = br.read(numBits)
		if bits == 1 {
			nodeBits[curNode] = 1
			curNode++
			continue
		}
		repCount := int(br.read(numBits)) + 3
		for i := 0; i < repCount && curNode < numCodes; i++ {
			nodeBits[curNode] = uint8(bits)
			curNode++
		}
	}

	builder := huffman.NewBuilder(numCodes)
	for symbol, length := range nodeBits {
		if length == 0 {
			continue
		}
		if err := builder.Insert(int(length), symbol); err != nil {
			return nil, err
		}
	}

	return builder.Build(), nil
}
