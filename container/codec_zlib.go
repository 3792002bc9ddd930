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
	"compress/flate"
	"errors"
	"fmt"
	"io"
)

func init() {
	RegisterCodec(CodecZlib, func() Codec { return &zlibCodec{} })
}

// zlibCodec decompresses raw-deflate hunks (RFC 1951, no zlib wrapper),
// matching the chd package's own zlibCodec.
type zlibCodec struct{}

// Decompress decompresses a deflate-compressed hunk.
func (*zlibCodec) Decompress(dst, src []byte) (int, error) {
	reader := flate.NewReader(bytes.NewReader(src))
	defer func() { _ = reader.Close() }()

	n, err := io.ReadFull(reader, dst)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return n, fmt.Errorf("%w: zlib: %w", ErrDecompressFailed, err)
	}
	return n, nil
}
