package dat

import "sync"

var (
	dictionaryOnce sync.Once
	dictionaryTree *huffmanTree
)

// dictionary returns the process-wide dictionary Huffman tree, building it
// from dictionaryBits/dictionarySymbols on first use. The tree is built
// exactly once and is safe to share read-only across concurrent decoders.
func dictionary() *huffmanTree {
	dictionaryOnce.Do(func() {
		dictionaryTree = buildDictionaryTree()
	})
	return dictionaryTree
}

// buildDictionaryTree feeds the embedded (length, symbol) pairs directly
// to a treeBuilder: dictionaryBits and dictionarySymbols are already fully
// expanded, one entry per symbol, unlike the run-length-compressed
// descriptions parseHuffmanTree reads for per-block trees.
func buildDictionaryTree() *huffmanTree {
	builder := newTreeBuilder()

	for i, descriptor := range dictionaryBits {
		symbol := int(dictionarySymbols[i])
		length := int(descriptor)
		if err := builder.Insert(length, symbol); err != nil {
			// dictionaryBits/dictionarySymbols are a fixed, verified
			// constant of this format; a failure here means the
			// embedded table itself is corrupt.
			panic("dat: corrupt embedded dictionary table: " + err.Error())
		}
	}

	return builder.Build()
}
