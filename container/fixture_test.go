package container

import "encoding/binary"

// buildHeaderBytes returns headerSize bytes encoding h in the on-disk layout
// ParseHeader expects.
func buildHeaderBytes(version, hunkBytes, hunkCount uint32, codecTags [4]uint32, logicalBytes, mapOffset uint64) []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:4], packMagic[:])
	binary.BigEndian.PutUint32(buf[4:8], headerSize)
	binary.BigEndian.PutUint32(buf[8:12], version)
	for i, tag := range codecTags {
		binary.BigEndian.PutUint32(buf[12+i*4:16+i*4], tag)
	}
	binary.BigEndian.PutUint32(buf[28:32], hunkBytes)
	binary.BigEndian.PutUint32(buf[32:36], hunkCount)
	binary.BigEndian.PutUint64(buf[36:44], logicalBytes)
	binary.BigEndian.PutUint64(buf[44:52], mapOffset)
	return buf
}

// buildMapHeaderBytes returns mapHeaderSize bytes encoding the hunk map
// header ParseMap expects.
func buildMapHeaderBytes(compMapLen uint32, firstOffset uint64, lengthBits uint8) []byte {
	buf := make([]byte, mapHeaderSize)
	binary.BigEndian.PutUint32(buf[0:4], compMapLen)
	binary.BigEndian.PutUint64(buf[4:12], firstOffset)
	buf[12] = lengthBits
	return buf
}

// singleNoneHunkCompMap is a hand-built RLE-Huffman comp-type stream
// declaring exactly one symbol (HunkCompNone, value 4) with a 1-bit code,
// followed by one decode of that symbol. See the accompanying derivation in
// container_test.go for how these five bytes were chosen.
var singleNoneHunkCompMap = []byte{0x00, 0x00, 0x11, 0x00, 0x80}
