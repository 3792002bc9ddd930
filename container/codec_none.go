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

import "fmt"

func init() {
	RegisterCodec(CodecNone, func() Codec { return &noneCodec{} })
}

// noneCodec implements the "stored" pass-through codec.
type noneCodec struct{}

// Decompress copies src into dst unchanged.
func (*noneCodec) Decompress(dst, src []byte) (int, error) {
	if len(src) < len(dst) {
		return 0, fmt.Errorf("%w: none: source too small (%d < %d)", ErrDecompressFailed, len(src), len(dst))
	}
	return copy(dst, src[:len(dst)]), nil
}
