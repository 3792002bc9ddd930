package dat

import "fmt"

// parseHuffmanTree reads one per-block tree description from br, decoding
// each (length, run) code via dict, and builds the resulting huffmanTree.
//
// Symbols are assigned in decreasing index order: the description walks
// from n-1 down to 0, either skipping a run of code-less symbols or
// assigning a repeated code length to a run of symbols.
func parseHuffmanTree(br *bitReader, dict *huffmanTree) (*huffmanTree, error) {
	n, err := br.read(16)
	if err != nil {
		return nil, err
	}
	if n > maxSymbolValue {
		return nil, fmt.Errorf("%w: tree declares %d symbols, max is %d", ErrInvalidTreeDescription, n, maxSymbolValue)
	}

	builder := newTreeBuilder()

	remaining := int(n) - 1
	for remaining >= 0 {
		c, err := dict.ReadCode(br)
		if err != nil {
			return nil, err
		}

		codeLen := int(c & 0x1F)
		run := int(c>>5) + 1

		if codeLen == 0 {
			remaining -= run
			continue
		}

		for ; run > 0; run-- {
			if err := builder.Insert(codeLen, remaining); err != nil {
				return nil, err
			}
			remaining--
		}
	}

	return builder.Build(), nil
}
