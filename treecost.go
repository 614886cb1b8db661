// SPDX-License-Identifier: Apache-2.0
//
// Code-length-tree header cost, RFC 1951 §3.2.7. A dynamic Huffman block
// doesn't just code its symbols; it first has to describe the two trees
// it uses to do so, themselves run-length-encoded with a third, small
// Huffman code over a 19-symbol alphabet (16 literal code lengths plus
// three repeat codes: 16 repeats the previous length, 17 and 18 repeat a
// zero length). Grounded on original_source/src/zopfli/deflate.c's
// CalculateTreeSize/EncodeTree, stripped of the bit-writing half of
// EncodeTree since only its size-counting path is needed here.

package zopfli

// clAlphabetSize is the 19-symbol code-length alphabet RFC 1951 §3.2.7
// defines: literal code lengths 0..15 plus repeat codes 16, 17, 18.
const clAlphabetSize = 19

// clOrder is the order code-length code lengths are written in the
// block header, per RFC 1951 §3.2.7.
var clOrder = [clAlphabetSize]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// codeTreeCost returns the minimal number of bits needed to encode the
// literal/length and distance code-length trees: the HLIT/HDIST/HCLEN
// header fields, the code-length code lengths, and the run-length-coded
// sequence of tree code lengths itself. It tries all 8 combinations of
// which repeat codes (16, 17, 18) are enabled and returns the cheapest,
// mirroring CalculateTreeSize's exhaustive search over EncodeTree's
// use_16/use_17/use_18 flags.
func codeTreeCost(litLenLengths, distLengths []uint8) uint64 {
	var best uint64
	for i := 0; i < 8; i++ {
		size := encodeTreeSize(litLenLengths, distLengths, i&1 != 0, i&2 != 0, i&4 != 0)
		if i == 0 || size < best {
			best = size
		}
	}
	return best
}

// encodeTreeSize computes the bit cost of one repeat-code configuration,
// following EncodeTree's size_only path.
func encodeTreeSize(litLenLengths, distLengths []uint8, use16, use17, use18 bool) uint64 {
	hlit := 29
	for hlit > 0 && litLenLengths[257+hlit-1] == 0 {
		hlit--
	}
	hdist := 29
	for hdist > 0 && distLengths[1+hdist-1] == 0 {
		hdist--
	}
	hlit2 := hlit + 257
	lldTotal := hlit2 + hdist + 1

	symbolAt := func(i int) uint8 {
		if i < hlit2 {
			return litLenLengths[i]
		}
		return distLengths[i-hlit2]
	}

	var clcounts [clAlphabetSize]uint64

	for i := 0; i < lldTotal; {
		symbol := symbolAt(i)
		matchCount := 1
		if use16 || (symbol == 0 && (use17 || use18)) {
			j := i + 1
			for j < lldTotal && symbolAt(j) == symbol {
				matchCount++
				j++
			}
		}
		i += matchCount
		count := matchCount

		if symbol == 0 && count >= 3 {
			if use18 {
				for count >= 11 {
					take := count
					if take > 138 {
						take = 138
					}
					clcounts[18]++
					count -= take
				}
			}
			if use17 {
				for count >= 3 {
					take := count
					if take > 10 {
						take = 10
					}
					clcounts[17]++
					count -= take
				}
			}
		}

		if use16 && count >= 4 {
			count-- // the first occurrence is coded directly, not repeated
			clcounts[symbol]++
			for count >= 3 {
				take := count
				if take > 6 {
					take = 6
				}
				clcounts[16]++
				count -= take
			}
		}

		clcounts[symbol] += uint64(count)
	}

	clcl := buildCodeLengths(clcounts[:], 7)

	n := clAlphabetSize
	for n > 4 && clcl[clOrder[n-1]] == 0 {
		n--
	}

	bits := uint64(14) + uint64(n)*3 // HLIT + HDIST + HCLEN, then n code-length code lengths at 3 bits each
	for sym := 0; sym < clAlphabetSize; sym++ {
		bits += clcounts[sym] * uint64(clcl[sym])
	}
	bits += clcounts[16]*2 + clcounts[17]*3 + clcounts[18]*7 // repeat-code extra bits

	return bits
}
