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

// fillBlock advances the DP band by BLK columns from prev's snapshot,
// grounded on original_source/dp.c's fill_bulk_block (the 4x-unrolled
// direction-branching inner loop, here left column-at-a-time since Go gives
// the compiler no vector-unrolling hint to imitate). ra/rb are the sequence
// readers already positioned with prev's trailing window loaded; p is the
// absolute DP column prev's snapshot sits at.
func fillBlock(prev blockPrefix, ra, rb *seqReader, sc ScoreSchema, p int) Block {
	return fillBlockN(prev, ra, rb, sc, p, BLK)
}

// fillBlockN is fillBlock generalized to stop after `cols` columns instead of
// always running the full BLK, backing Phase C's per-column section-boundary
// test (spec §4.5): the caller passes however many columns remain before
// either sequence's section edge, and the loop also stops once both readers
// are exhausted. The unfilled mask entries stay at their zero value; the
// direction array is not shifted for unfilled columns, so its low bits keep
// the decisions actually made.
func fillBlockN(prev blockPrefix, ra, rb *seqReader, sc ScoreSchema, p int, cols int) Block {
	blk := Block{blockPrefix: prev, P: p}

	for col := 0; col < cols; col++ {
		if ra.remaining() == 0 && rb.remaining() == 0 {
			break
		}

		// The direction determiner is fed the vector its own previous
		// decision just advanced: dh after a RIGHT step, dv after a DOWN
		// step (original_source/dp.c's _fill_right/_fill_down each close
		// with _fill_update_delta on their own freshly-stepped vector).
		// blk.Dir.bit(0) reports that previous decision; initDirection's
		// seed (bit 0 = DOWN) makes the very first column read blk.Dv.
		var dir int
		if blk.Dir.bit(0) == dirRight {
			blk.Dir, dir = blk.Dir.next(blk.Dh)
		} else {
			blk.Dir, dir = blk.Dir.next(blk.Dv)
		}

		da, db := load(dir)
		if dir == dirRight {
			blk.Dh = blk.Dh.shiftLeftLane()
			ra.advance(da, true)
		} else {
			blk.Dv = blk.Dv.shiftRightLane()
			rb.advance(db, true)
		}

		idx := matchDispatch(ra.window(), rb.window())
		t := shuffle(idx, sc.Sub)
		t = t.max(blk.De).max(blk.Df)

		deNext := blk.De.max(blk.Dv)
		dfNext := blk.Df.max(blk.Dh)

		dhNew := t.sub(blk.Dv)
		dvNew := t.sub(blk.Dh)
		deNext = deNext.sub(blk.Dh)
		dfNext = dfNext.sub(blk.Dv)

		blk.Mask[col] = MaskPair{
			DhEqDf: dhNew.eqMask(dfNext),
			DvEqDe: dvNew.eqMask(deNext),
		}

		blk.De = deNext.add(sc.GEAV)
		blk.Df = dfNext.add(sc.GEBV)
		blk.Dh = dhNew
		blk.Dv = dvNew

		var step Vec8
		var gv Vec8
		if dir == dirRight {
			step, gv = blk.Dh, sc.GIAV
		} else {
			step, gv = blk.Dv, sc.GIBV
		}
		blk.Delta = blk.Delta.add(step).add(gv)
		blk.Max = blk.Max.max(blk.Delta)
	}

	updateOffset(&blk)
	return blk
}

// updateOffset implements _fill_update_offset: extracts the center lane of
// delta, folds it into the block's 32-bit offset, and rebases delta/max back
// towards zero so both stay within the 8-bit envelope (spec invariant #3).
func updateOffset(blk *Block) {
	cd := blk.Delta[center]
	blk.Offset += int32(cd)

	bias := broadcast8(cd)
	blk.Delta = blk.Delta.sub(bias)
	blk.Max = blk.Max.sub(bias)
}
