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

// dirRight and dirDown are the two band-advance choices: RIGHT consumes a
// symbol from A (slides the band's reference column), DOWN consumes a symbol
// from B (slides the band's reference row).
const (
	dirRight = 0
	dirDown  = 1
)

// direction is the dynamic band-advance state carried across fillBlock calls
// within one Block, grounded on original_source/dp.c's dir_t: a signed
// accumulator and a 32-bit rolling bit history of past decisions (LSB = most
// recent). The history is saved with each Block and carried into the next
// one through the phantom snapshot.
type direction struct {
	acc   int16
	array uint32
}

// initDirection returns the direction state immediately following the seed
// block, grounded on sea_init_create_dir: acc starts at zero, and the history
// is pre-loaded with a single DOWN decision. bit 0 (the LSB) is the most
// recent decision, so that decision is encoded as 0x00000001, not the top bit.
func initDirection() direction {
	return direction{acc: 0, array: 0x00000001}
}

// next consumes the extreme lanes of the just-computed delta vector and
// decides which way the band advances for the following column, grounded on
// original_source/dp.c's dir_next (the "dynamic" band determiner): the
// accumulator integrates the imbalance between the band's two edges, and its
// sign picks RIGHT (accumulator non-negative) or DOWN (accumulator negative).
func (d direction) next(delta Vec8) (direction, int) {
	d.acc += int16(delta[0]) - int16(delta[BW-1])

	dir := dirRight
	bit := uint32(0)
	if d.acc < 0 {
		dir = dirDown
		bit = 1
	}
	d.array = d.array<<1 | bit
	return d, dir
}

// bit reports the recorded direction taken `back` columns ago (0 = most
// recent), used by fillBlockN to pick the vector fed to next and by
// DumpDirections.
func (d direction) bit(back uint) int {
	return int((d.array >> back) & 1)
}

// load returns the DP-column advance amounts for the two sequences implied by
// a direction decision: RIGHT advances da=1,db=0; DOWN advances da=0,db=1.
func load(dir int) (da, db int) {
	if dir == dirRight {
		return 1, 0
	}
	return 0, 1
}
