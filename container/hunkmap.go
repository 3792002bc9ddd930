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
	"io"
	"sync"

	"github.com/huffdat/datpack/internal/binary"
)

// Hunk comp-type values, adapted from the chd package's V5 map entry types:
// the parent/self-reference kinds (Self, Parent, ParSelf, Par0, Par1) are
// dropped outright since a standalone container file never has a parent to
// diff against.
const (
	HunkCompCodec0   = 0 // compressed with CodecTags[0]
	HunkCompCodec1   = 1 // compressed with CodecTags[1]
	HunkCompCodec2   = 2 // compressed with CodecTags[2]
	HunkCompCodec3   = 3 // compressed with CodecTags[3]
	HunkCompNone     = 4 // uncompressed
	HunkCompRLESmall = 5 // repeat last comp type, small count
	HunkCompRLELarge = 6 // repeat last comp type, large count
)

const (
	mapHeaderSize  = 16
	mapNumCodes    = 7
	mapMaxBits     = 8
	hunkMapMaxSize = MaxMapLen
)

// HunkMapEntry is a single parsed entry of the hunk map.
type HunkMapEntry struct {
	Offset     uint64
	CompLength uint32
	CompType   uint8
}

// HunkMap is the parsed, queryable hunk map of an open container.
type HunkMap struct {
	reader  io.ReaderAt
	header  *Header
	codecs  []Codec
	entries []HunkMapEntry

	cacheMu sync.RWMutex
	cache   map[uint32][]byte
}

// NewHunkMap parses the hunk map for header out of reader and resolves each
// declared codec slot via the package registry.
func NewHunkMap(reader io.ReaderAt, header *Header) (*HunkMap, error) {
	hm := &HunkMap{
		reader: reader,
		header: header,
		cache:  make(map[uint32][]byte),
	}

	for _, tag := range header.CodecTags {
		if tag == 0 {
			hm.codecs = append(hm.codecs, nil)
			continue
		}
		codec, err := GetCodec(tag)
		if err != nil {
			// Codec not available - continue without it. A hunk that
			// actually needs it will fail at decompress time with a clear
			// error, rather than failing the whole container to open.
			hm.codecs = append(hm.codecs, nil)
			continue
		}
		hm.codecs = append(hm.codecs, codec)
	}

	if err := hm.parseMap(); err != nil {
		return nil, fmt.Errorf("parse hunk map: %w", err)
	}
	return hm, nil
}

// parseMap reads the map header, decompresses the RLE-Huffman comp-type
// stream, and resolves each hunk's offset and length.
//
//nolint:gocyclo,cyclop // comp-type dispatch mirrors the source format's flat switch
func (hm *HunkMap) parseMap() error {
	numHunks := hm.header.HunkCount
	hm.entries = make([]HunkMapEntry, numHunks)

	mapHeader, err := binary.ReadBytesAt(hm.reader, int64(hm.header.MapOffset), mapHeaderSize)
	if err != nil {
		return fmt.Errorf("read map header: %w", err)
	}

	compMapLen := beUint32(mapHeader[0:4])
	if compMapLen > hunkMapMaxSize {
		return fmt.Errorf("%w: compressed map too large (%d > %d)", ErrInvalidHeader, compMapLen, hunkMapMaxSize)
	}
	firstOffset := beUint64(mapHeader[4:12])
	lengthBits := int(mapHeader[12])

	compMap, err := binary.ReadBytesAt(hm.reader, int64(hm.header.MapOffset)+mapHeaderSize, int(compMapLen))
	if err != nil {
		return fmt.Errorf("read compressed map: %w", err)
	}

	br := newBitReader(compMap)
	tree, err := importCompTypeTree(br, mapNumCodes, mapMaxBits)
	if err != nil {
		return fmt.Errorf("import comp-type tree: %w", err)
	}

	compTypes := make([]uint8, numHunks)
	var lastComp uint8
	var repCount int
	for i := range numHunks {
		if repCount > 0 {
			compTypes[i] = lastComp
			repCount--
			continue
		}
		val, err := tree.ReadCode(br)
		if err != nil {
			return fmt.Errorf("decode comp type %d: %w", i, err)
		}
		switch uint8(val) {
		case HunkCompRLESmall:
			compTypes[i] = lastComp
			rep, err := tree.ReadCode(br)
			if err != nil {
				return fmt.Errorf("decode RLE run count %d: %w", i, err)
			}
			repCount = 2 + int(rep)
		case HunkCompRLELarge:
			compTypes[i] = lastComp
			hi, err := tree.ReadCode(br)
			if err != nil {
				return fmt.Errorf("decode RLE run count %d: %w", i, err)
			}
			lo, err := tree.ReadCode(br)
			if err != nil {
				return fmt.Errorf("decode RLE run count %d: %w", i, err)
			}
			repCount = 2 + 16 + (int(hi) << 4)
			repCount += int(lo)
		default:
			compTypes[i] = uint8(val)
			lastComp = uint8(val)
		}
	}

	curOffset := firstOffset
	for i := range numHunks {
		compType := compTypes[i]
		var length uint32
		offset := curOffset

		switch compType {
		case HunkCompCodec0, HunkCompCodec1, HunkCompCodec2, HunkCompCodec3:
			length = br.read(lengthBits)
			curOffset += uint64(length)
		case HunkCompNone:
			length = hm.header.HunkBytes
			curOffset += uint64(length)
		default:
			return fmt.Errorf("%w: comp type %d", ErrInvalidHeader, compType)
		}

		hm.entries[i] = HunkMapEntry{CompType: compType, CompLength: length, Offset: offset}
	}

	return nil
}

// NumHunks returns the number of hunks in the container.
func (hm *HunkMap) NumHunks() uint32 {
	return uint32(len(hm.entries))
}

// HunkBytes returns the uncompressed size of each hunk.
func (hm *HunkMap) HunkBytes() uint32 {
	return hm.header.HunkBytes
}

// ReadHunk reads and decompresses the hunk at index, caching the result.
func (hm *HunkMap) ReadHunk(index uint32) ([]byte, error) {
	if index >= uint32(len(hm.entries)) {
		return nil, fmt.Errorf("%w: %d >= %d", ErrInvalidHunk, index, len(hm.entries))
	}

	hm.cacheMu.RLock()
	if data, ok := hm.cache[index]; ok {
		hm.cacheMu.RUnlock()
		return data, nil
	}
	hm.cacheMu.RUnlock()

	entry := hm.entries[index]
	data, err := hm.decompressHunk(entry)
	if err != nil {
		return nil, fmt.Errorf("decompress hunk %d: %w", index, err)
	}

	hm.cacheMu.Lock()
	hm.cache[index] = data
	hm.cacheMu.Unlock()

	return data, nil
}

// decompressHunk decompresses a single hunk map entry into a fresh buffer.
func (hm *HunkMap) decompressHunk(entry HunkMapEntry) ([]byte, error) {
	hunkSize := hm.header.HunkBytes
	if uint64(hunkSize) > MaxAllocation {
		return nil, fmt.Errorf("%w: hunk size %d", ErrAllocationTooLarge, hunkSize)
	}
	dst := make([]byte, hunkSize)

	if entry.CompType == HunkCompNone {
		if _, err := binary.ReadAt(hm.reader, int64(entry.Offset), dst); err != nil {
			return nil, fmt.Errorf("read uncompressed: %w", err)
		}
		return dst, nil
	}

	codecIdx := int(entry.CompType)
	if codecIdx >= len(hm.codecs) || hm.codecs[codecIdx] == nil {
		return nil, fmt.Errorf("%w: codec slot %d not available", ErrUnsupportedCodec, codecIdx)
	}

	compData, err := binary.ReadBytesAt(hm.reader, int64(entry.Offset), int(entry.CompLength))
	if err != nil {
		return nil, fmt.Errorf("read compressed: %w", err)
	}

	n, err := hm.codecs[codecIdx].Decompress(dst, compData)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return dst[:n], nil
}
