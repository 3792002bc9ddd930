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

import "io"

// Container is an opened, parsed pack file: a header plus a queryable hunk
// map. It never holds more than one hunk's worth of decompressed data in
// memory beyond the ReadHunk cache.
type Container struct {
	Header *Header
	hunks  *HunkMap
}

// Open parses the container header and hunk map from reader.
func Open(reader io.ReaderAt) (*Container, error) {
	header, err := ParseHeader(reader)
	if err != nil {
		return nil, err
	}

	hunks, err := NewHunkMap(reader, header)
	if err != nil {
		return nil, err
	}

	return &Container{Header: header, hunks: hunks}, nil
}

// NumHunks returns the number of hunks in the container.
func (c *Container) NumHunks() uint32 {
	return c.hunks.NumHunks()
}

// HunkBytes returns the uncompressed size of one hunk.
func (c *Container) HunkBytes() uint32 {
	return c.hunks.HunkBytes()
}

// ReadHunk reads and decompresses the hunk at index.
func (c *Container) ReadHunk(index uint32) ([]byte, error) {
	return c.hunks.ReadHunk(index)
}

// ReadAll decompresses every hunk in order and concatenates them, truncating
// the final hunk to LogicalBytes.
func (c *Container) ReadAll() ([]byte, error) {
	out := make([]byte, 0, c.Header.LogicalBytes)
	for i := range c.NumHunks() {
		hunk, err := c.ReadHunk(i)
		if err != nil {
			return nil, err
		}
		remaining := c.Header.LogicalBytes - uint64(len(out))
		if uint64(len(hunk)) > remaining {
			hunk = hunk[:remaining]
		}
		out = append(out, hunk...)
	}
	return out, nil
}
