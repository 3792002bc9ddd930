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

import "errors"

// Allocation limits to prevent DoS from malicious pack files, mirroring the
// chd package's MaxCompMapLen/MaxNumHunks guards.
const (
	// MaxHunkCount is the maximum number of hunks a header may declare.
	MaxHunkCount = 10_000_000

	// MaxMapLen is the maximum size, in bytes, of the compressed hunk map.
	MaxMapLen = 100 * 1024 * 1024

	// MaxAllocation is the maximum size, in bytes, of any single hunk
	// allocation this package will make on a caller's behalf.
	MaxAllocation = 1 << 30
)

// Common errors for container parsing.
var (
	// ErrInvalidMagic indicates the file does not start with the pack magic.
	ErrInvalidMagic = errors.New("container: invalid magic")

	// ErrInvalidHeader indicates the header structure is invalid.
	ErrInvalidHeader = errors.New("container: invalid header")

	// ErrUnsupportedVersion indicates an unsupported container version.
	ErrUnsupportedVersion = errors.New("container: unsupported version")

	// ErrUnsupportedCodec indicates an unregistered or unsupported codec tag.
	ErrUnsupportedCodec = errors.New("container: unsupported codec")

	// ErrInvalidHunk indicates an out-of-range hunk index.
	ErrInvalidHunk = errors.New("container: invalid hunk index")

	// ErrDecompressFailed indicates a codec failed to decompress a hunk.
	ErrDecompressFailed = errors.New("container: decompression failed")

	// ErrAllocationTooLarge indicates a declared size exceeded MaxAllocation.
	ErrAllocationTooLarge = errors.New("container: allocation too large")
)
