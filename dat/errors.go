package dat

import (
	"errors"

	"github.com/huffdat/datpack/internal/huffman"
)

// Sentinel errors returned by Decompress and its collaborators. Wrap with
// fmt.Errorf("%w: ...") at the call site rather than constructing new error
// types.
var (
	// ErrInvalidInput indicates a nil input or an input length that is not
	// a multiple of four bytes.
	ErrInvalidInput = errors.New("dat: invalid input")

	// ErrTruncated indicates the bit reader needed more bits than the
	// stream had remaining.
	ErrTruncated = errors.New("dat: truncated stream")

	// ErrInvalidTreeDescription indicates a per-block tree description
	// declared too many symbols, or assigned an out-of-range code length
	// or symbol index. Aliases the shared huffman package's sentinel so
	// errors.Is matches regardless of which layer produced it.
	ErrInvalidTreeDescription = huffman.ErrInvalidDescription

	// ErrEmptyTree indicates a decode was attempted against a HuffmanTree
	// that was never built.
	ErrEmptyTree = huffman.ErrEmptyTree

	// ErrInvalidStream indicates an unrecognized length/distance
	// quotient, a back-reference before the start of the output buffer,
	// a no-bucket-matches Huffman decode, or an internal bit-window
	// overflow.
	ErrInvalidStream = huffman.ErrInvalidStream

	// ErrOutOfMemory indicates an allocation for the decoder's internal
	// word buffer or output buffer could not be satisfied.
	ErrOutOfMemory = errors.New("dat: out of memory")
)
