// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package gaba

import "encoding/binary"

var be = binary.BigEndian

// matchASCIIWide is a wide-word variant of matchASCII: it loads 8 lanes at a
// time as a uint64 and compares whole words before falling back to per-byte
// lookup, following the same block-wise-then-byte-wise shape as the
// teacher's extend() (wfa.go) rather than touching assembly. It is
// numerically identical to matchASCII; it exists to keep the amd64 dispatch
// convention of Akron-fastpfor-go (a CPU-feature-gated fast path selected in
// an arch-tagged file) grounded without shipping unverifiable hand-written
// machine code in a build this exercise never compiles.
func matchASCIIWide(a, b []byte) Vec8 {
	var idx Vec8
	for i := 0; i < BW; i += 8 {
		wa := be.Uint64(a[i : i+8])
		wb := be.Uint64(b[i : i+8])
		if wa == wb {
			for j := 0; j < 8; j++ {
				c := asciiCode[a[i+j]]
				idx[i+j] = c<<2 | c
			}
			continue
		}
		for j := 0; j < 8; j++ {
			idx[i+j] = asciiCode[a[i+j]]<<2 | asciiCode[b[i+j]]
		}
	}
	return idx
}
