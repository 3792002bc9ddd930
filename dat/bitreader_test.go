package dat

import (
	"errors"
	"testing"
)

func TestBitReaderReadAcrossRefill(t *testing.T) {
	t.Parallel()

	w := &bitWriter{}
	w.writeBits(0x5, 4)    // 0101
	w.writeBits(0x3, 2)    // 11
	w.writeBits(0xABCD, 16)
	w.writeBits(0x1A, 12) // last 2 bits spill into the second word
	w.writeBits(0, 32)    // second word, so the spill above has somewhere to land

	br, err := newBitReader(w.bytes())
	if err != nil {
		t.Fatalf("newBitReader: %v", err)
	}

	v, err := br.read(4)
	if err != nil || v != 0x5 {
		t.Fatalf("read(4) = %#x, %v; want 0x5, nil", v, err)
	}
	v, err = br.read(2)
	if err != nil || v != 0x3 {
		t.Fatalf("read(2) = %#x, %v; want 0x3, nil", v, err)
	}
	v, err = br.read(16)
	if err != nil || v != 0xABCD {
		t.Fatalf("read(16) = %#x, %v; want 0xABCD, nil", v, err)
	}
	// Only 10 bits remained available (32-4-2-16); this read forces a
	// mid-window refill from the second word.
	v, err = br.read(12)
	if err != nil || v != 0x1A {
		t.Fatalf("read(12) across refill = %#x, %v; want 0x1A, nil", v, err)
	}
}

func TestBitReaderPeekDoesNotConsume(t *testing.T) {
	t.Parallel()

	w := &bitWriter{}
	w.writeBits(0xDEAD, 16)
	w.writeBits(0, 16)

	br, err := newBitReader(w.bytes())
	if err != nil {
		t.Fatalf("newBitReader: %v", err)
	}

	if err := br.need(16); err != nil {
		t.Fatalf("need(16): %v", err)
	}
	first := br.peek(16)
	second := br.peek(16)
	if first != second || first != 0xDEAD {
		t.Fatalf("peek not idempotent: %#x, %#x; want 0xDEAD", first, second)
	}
}

func TestBitReaderInvalidLength(t *testing.T) {
	t.Parallel()

	_, err := newBitReader([]byte{0x01, 0x02, 0x03})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = newBitReader(nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil input, got %v", err)
	}
}

func TestBitReaderTruncated(t *testing.T) {
	t.Parallel()

	br, err := newBitReader([]byte{0x01, 0x02, 0x03, 0x04})
	if err != nil {
		t.Fatalf("newBitReader: %v", err)
	}

	if _, err := br.read(32); err != nil {
		t.Fatalf("first read(32): %v", err)
	}

	_, err = br.read(1)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated once words are exhausted, got %v", err)
	}
}

// TestBitReaderSkipsSentinelWord verifies that the word at every
// skipWordPeriod-word boundary is passed over rather than decoded.
func TestBitReaderSkipsSentinelWord(t *testing.T) {
	t.Parallel()

	words := make([]uint32, skipWordPeriod+1)
	for i := range words {
		words[i] = uint32(i + 1)
	}
	// The word at index skipWordPeriod-1 (the skipWordPeriod'th word) is the
	// sentinel and must be skipped; the word that follows it is the one
	// actually expected to be read next.
	words[skipWordPeriod-1] = 0xFFFFFFFF

	data := make([]byte, len(words)*4)
	for i, w := range words {
		data[i*4] = byte(w)
		data[i*4+1] = byte(w >> 8)
		data[i*4+2] = byte(w >> 16)
		data[i*4+3] = byte(w >> 24)
	}

	br, err := newBitReader(data)
	if err != nil {
		t.Fatalf("newBitReader: %v", err)
	}

	for i := 0; i < skipWordPeriod-1; i++ {
		v, err := br.read(32)
		if err != nil {
			t.Fatalf("read word %d: %v", i, err)
		}
		if v != words[i] {
			t.Fatalf("word %d = %#x, want %#x", i, v, words[i])
		}
	}

	v, err := br.read(32)
	if err != nil {
		t.Fatalf("read word after sentinel: %v", err)
	}
	if v != words[skipWordPeriod] {
		t.Fatalf("got %#x after skip, want sentinel-following word %#x", v, words[skipWordPeriod])
	}
}
