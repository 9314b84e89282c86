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

// Status is the chainer's termination status, spec §4.5.
type Status int

const (
	// StatusCont reports the tail is well-formed and the caller may extend
	// the chain with a further Fill call.
	StatusCont Status = iota
	// StatusTerm reports the chain ended, either because X-drop fired or
	// because the A section was empty; the tail is still well-formed. Fill
	// has no out-of-memory status: a failed arena allocation is a Go
	// runtime failure, not a returned status.
	StatusTerm
)

// FillResult is what Fill returns: the new chain tail and whether the chain
// may continue (spec §4.7, "fill ... returns {tail, status}").
type FillResult struct {
	Tail   *JointTail
	Status Status
}

// xdropFails reports whether the X-drop test fires for blk, grounded on
// spec §4.5: "tx − max[center] < 0".
func xdropFails(blk *Block, sc ScoreSchema) bool {
	return int16(sc.XDrop) - int16(blk.Max[center]) < 0
}

// createHead places a JointHead linking to prev and returns the phantom
// snapshot the first real Block of the new run resumes from, grounded on
// dp.c's create_head (spec §4.5).
func createHead(prev *JointTail) (*JointHead, blockPrefix) {
	head := &JointHead{Prev: prev}
	return head, prev.Block.blockPrefix
}

// createTail folds the last block's delta+offset through the owning
// MiddleDelta baseline and produces the JointTail a following Fill call
// resumes from, grounded on dp.c's create_tail (spec §4.5).
func createTail(last *Block, middle *Vec16, ra, rb *seqReader, p int, prevPsum int64) *JointTail {
	widened := last.Delta.widen()
	var absolute Vec16
	for i := range absolute {
		absolute[i] = widened[i] + int16(last.Offset) + middle[i]
	}

	t := &JointTail{
		Middle: middle,
		P:      int64(p),
		MP:     -1,
		MQ:     0,
		Psum:   prevPsum + int64(p),
		Max:    absolute.hmax(),
		Block:  PhantomBlock{blockPrefix: last.blockPrefix},
	}
	copy(t.WA[:], ra.window())
	copy(t.WB[:], rb.window())
	return t
}

// Fill runs the block chainer across sec, resuming from prev and bounded by
// pLimit, grounded on dp.c's fill() top level (spec §4.5/§4.7). It always
// runs the portable column-at-a-time fillBlock; the phase split below
// governs only which bound checks are evaluated per block; the spec's
// three-phase split exists to skip bound checks that cannot fire, which
// stays an optimization this Go port applies uniformly via the cheap
// checks below rather than duplicating fillBlock per phase.
func Fill(dp *DPContext, prev *JointTail, sec SectionPair, pLimit int64) FillResult {
	if sec.A.Len == 0 {
		return FillResult{Tail: &JointTail{
			Middle: prev.Middle,
			P:      prev.P,
			MP:     -1,
			Psum:   prev.Psum,
			Max:    prev.Max,
			WA:     prev.WA,
			WB:     prev.WB,
			Block:  prev.Block,
		}, Status: StatusTerm}
	}

	_, phantom := createHead(prev)

	ra := newSeqReader(sec.A)
	rb := newSeqReader(sec.B)
	ra.bulkFetch()
	rb.bulkFetch()

	p := 0
	status := StatusCont
	var last Block
	haveLast := false

	for int64(p) < pLimit {
		memHeadroom := dp.arena.size - dp.arena.chunks[len(dp.arena.chunks)-1].top
		seqHeadroomBlocks := min3(
			(sec.A.Len-ra.pos)/BLK,
			(sec.B.Len-rb.pos)/BLK,
			int((pLimit-int64(p))/BLK),
		)
		memHeadroomBlocks := memHeadroom / blockAllocSize

		// capPhase forces the bounds-checked path (Phase C, spec §4.5) once
		// either the remaining sequence or the current arena chunk can no
		// longer fit a full block; arena.alloc grows on demand, so this
		// only ever trades a few bounds-checked fetches for simplicity.
		capPhase := seqHeadroomBlocks < 1 || memHeadroomBlocks < 1

		var blk Block
		if capPhase {
			ra.capFetch()
			rb.capFetch()
			blk = fillBlockCapped(phantom, ra, rb, dp.Score, p, sec)
		} else {
			blk = fillBlock(phantom, ra, rb, dp.Score, p)
		}
		dp.arena.alloc(blockAllocSize)

		if xdropFails(&blk, dp.Score) {
			status = StatusTerm
			last = blk
			haveLast = true
			break
		}

		phantom = blk.blockPrefix
		last = blk
		haveLast = true
		p += BLK

		if capPhase && ra.remaining() == 0 && rb.remaining() == 0 {
			break
		}
	}

	if !haveLast {
		last = Block{blockPrefix: phantom, P: p}
	}

	tail := createTail(&last, prev.Middle, ra, rb, p, prev.Psum)
	if tail.Max < prev.Max {
		tail.Max = prev.Max
	}
	return FillResult{Tail: tail, Status: status}
}

// fillBlockCapped is the Phase C variant of fillBlock: it caps the block at
// the combined remaining length of both sequences and stops early once both
// are used up, returning a short block (spec §4.5, Phase C). Columns after
// only one sequence has run out still read that sequence's zero padding, and
// the direction array is not shifted for the columns left unfilled.
func fillBlockCapped(prev blockPrefix, ra, rb *seqReader, sc ScoreSchema, p int, sec SectionPair) Block {
	cols := min3(BLK, ra.remaining()+rb.remaining(), BLK)
	if cols <= 0 {
		cols = 0
	}
	return fillBlockN(prev, ra, rb, sc, p, cols)
}

// blockAllocSize approximates a Block's arena footprint for headroom
// accounting, grounded on dp.c sizing a stack allocation per block.
const blockAllocSize = int(unsafeSizeofBlockPrefix) + BLK*8

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
