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
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

func init() {
	RegisterCodec(CodecFLAC, func() Codec { return &flacCodec{} })
}

// flacCodec decompresses FLAC-encoded PCM audio asset hunks into
// interleaved 16-bit big-endian samples.
type flacCodec struct{}

// Decompress decompresses a FLAC-encoded hunk.
func (*flacCodec) Decompress(dst, src []byte) (int, error) {
	stream, err := flac.New(bytes.NewReader(src))
	if err != nil {
		return 0, fmt.Errorf("%w: flac init: %w", ErrDecompressFailed, err)
	}
	defer func() { _ = stream.Close() }()

	return decodeFLACFrames(stream, dst)
}

// decodeFLACFrames decodes every frame of stream into dst, 16-bit
// big-endian, up to two channels interleaved.
func decodeFLACFrames(stream *flac.Stream, dst []byte) (int, error) {
	offset := 0
	for {
		audioFrame, err := stream.ParseNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return offset, fmt.Errorf("%w: flac frame: %w", ErrDecompressFailed, err)
		}
		offset = writeFLACFrameSamples(audioFrame, dst, offset)
	}
	return offset, nil
}

// writeFLACFrameSamples writes one frame's worth of samples to dst.
func writeFLACFrameSamples(audioFrame *frame.Frame, dst []byte, offset int) int {
	if len(audioFrame.Subframes) == 0 {
		return offset
	}

	numChannels := min(len(audioFrame.Subframes), 2)
	for i := range audioFrame.Subframes[0].NSamples {
		for ch := range numChannels {
			sample := audioFrame.Subframes[ch].Samples[i]
			if offset+2 <= len(dst) {
				dst[offset] = byte(sample >> 8)
				dst[offset+1] = byte(sample)
				offset += 2
			}
		}
	}
	return offset
}
