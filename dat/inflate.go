package dat

import "fmt"

// Result is the outcome of a successful Decompress call.
type Result struct {
	// Bytes is the output buffer. Its capacity equals customCap when a
	// non-zero customCap was requested, and len(declared-or-capped size)
	// otherwise.
	Bytes []byte

	// Length is the number of valid decoded bytes in Bytes, governed by
	// the caller's requested output length and the stream's own declared
	// size (whichever is smaller).
	Length int

	// DeclaredSize is the uncompressed payload size recorded in the
	// stream's header, regardless of any caller-supplied cap.
	DeclaredSize uint32
}

// Decompress reconstructs the uncompressed payload encoded in input.
//
// outputLen caps the number of bytes produced: 0 means "use the stream's
// declared size"; a non-zero value caps the produced size to min(outputLen,
// declared size). customCap, if non-zero, sizes the returned allocation
// exactly (letting a caller oversize the buffer) without affecting how many
// bytes are actually written; a customCap smaller than that target is
// rejected with ErrInvalidInput.
func Decompress(input []byte, outputLen int, customCap int) (Result, error) {
	if input == nil {
		return Result{}, fmt.Errorf("%w: nil input", ErrInvalidInput)
	}

	br, err := newBitReader(input)
	if err != nil {
		return Result{}, err
	}

	// Container header: discarded.
	if _, err := br.read(32); err != nil {
		return Result{}, err
	}

	declaredSize, err := br.read(32)
	if err != nil {
		return Result{}, err
	}

	target := int(declaredSize)
	if outputLen != 0 && outputLen < target {
		target = outputLen
	}

	allocSize := target
	if customCap > 0 {
		allocSize = customCap
	}
	if allocSize < target {
		return Result{}, fmt.Errorf("%w: custom cap %d smaller than target %d", ErrInvalidInput, customCap, target)
	}

	output := make([]byte, allocSize)
	if err := inflate(br, output[:target]); err != nil {
		return Result{}, err
	}

	return Result{Bytes: output, Length: target, DeclaredSize: declaredSize}, nil
}

// inflate runs the block loop, decoding literals and back-references into
// output until output is full.
func inflate(br *bitReader, output []byte) error {
	// Prelude: 4 reserved/ignored bits, then a 4-bit constant added to
	// every decoded back-reference length in the stream. The meaning of
	// the leading 4 bits is not documented by the format and they are
	// intentionally discarded.
	if err := br.need(8); err != nil {
		return err
	}
	br.drop(4)
	addition, err := br.read(4)
	if err != nil {
		return err
	}
	writeSizeConstantAddition := int(addition) + 1

	dict := dictionary()
	written := 0

	for written < len(output) {
		symbolTree, err := parseHuffmanTree(br, dict)
		if err != nil {
			return err
		}
		copyTree, err := parseHuffmanTree(br, dict)
		if err != nil {
			return err
		}

		maxCountBits, err := br.read(4)
		if err != nil {
			return err
		}
		maxCount := (int(maxCountBits) + 1) << 12

		for count := 0; count < maxCount && written < len(output); count++ {
			s, err := symbolTree.ReadCode(br)
			if err != nil {
				return err
			}

			if s < 0x100 {
				output[written] = byte(s)
				written++
				continue
			}

			writeSize, err := decodeWriteSize(br, int(s)-0x100)
			if err != nil {
				return err
			}
			writeSize += writeSizeConstantAddition

			d, err := copyTree.ReadCode(br)
			if err != nil {
				return err
			}
			writeOffset, err := decodeWriteOffset(br, int(d))
			if err != nil {
				return err
			}
			writeOffset++

			if writeOffset > written {
				return fmt.Errorf("%w: back-reference offset %d exceeds written length %d", ErrInvalidStream, writeOffset, written)
			}

			for already := 0; already < writeSize && written < len(output); already++ {
				output[written] = output[written-writeOffset]
				written++
			}
		}
	}

	return nil
}

// decodeWriteSize decodes the length-class symbol s' (already offset by
// -0x100) into a back-reference length, reading any trailing raw bits it
// requires from br.
func decodeWriteSize(br *bitReader, s int) (int, error) {
	q, r := s/4, s%4

	var writeSize int
	switch {
	case q == 0:
		writeSize = s
	case q < 7:
		writeSize = (1 << uint(q-1)) * (4 + r)
	case s == 28:
		writeSize = 0xFF
	default:
		return 0, fmt.Errorf("%w: length symbol %d", ErrInvalidStream, s)
	}

	if q > 1 && s != 28 {
		extraBits := q - 1
		extra, err := br.read(extraBits)
		if err != nil {
			return 0, err
		}
		writeSize |= int(extra)
	}

	return writeSize, nil
}

// decodeWriteOffset decodes the distance-class symbol d into a
// back-reference distance, reading any trailing raw bits it requires from
// br. The caller still needs to add 1 to the result.
func decodeWriteOffset(br *bitReader, d int) (int, error) {
	q, r := d/2, d%2

	var writeOffset int
	switch {
	case q == 0:
		writeOffset = d
	case q < 17:
		writeOffset = (1 << uint(q-1)) * (2 + r)
	default:
		return 0, fmt.Errorf("%w: distance symbol %d", ErrInvalidStream, d)
	}

	if q > 1 {
		extraBits := q - 1
		extra, err := br.read(extraBits)
		if err != nil {
			return 0, err
		}
		writeOffset |= int(extra)
	}

	return writeOffset, nil
}
