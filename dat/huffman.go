package dat

import "github.com/huffdat/datpack/internal/huffman"

// maxCodeBitsLength is the exclusive upper bound on a Huffman code length
// in this format: lengths must satisfy 0 <= len < maxCodeBitsLength.
const maxCodeBitsLength = huffman.MaxCodeLength

// maxSymbolValue is the exclusive upper bound on a symbol index describable
// by a per-block tree description (spec.md §4.4's n <= maxSymbolValue check
// and §4.2's symbol < maxSymbolValue validation).
const maxSymbolValue = 285

// huffmanTree is this format's canonical-code decoding table, built and
// queried by the shared huffman package.
type huffmanTree = huffman.Tree

// treeBuilder accumulates a (length, symbol) description and assigns
// canonical codes to produce a huffmanTree, via the shared huffman package.
type treeBuilder = huffman.Builder

// newTreeBuilder returns a treeBuilder that accepts symbols in
// [0, maxSymbolValue).
func newTreeBuilder() *treeBuilder {
	return huffman.NewBuilder(maxSymbolValue)
}
