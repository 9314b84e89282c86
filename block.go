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

// blockPrefix is the packed-record layout shared by the head of both Block
// and PhantomBlock (spec §3, "fixed memory layout prefix shared with
// Block"), grounded on original_source/dp.c's gaba_block_s / gaba_phantom_s
// union trick: the fill loop only ever needs this much of a predecessor to
// resume, whether that predecessor is a phantom seed or a real block.
type blockPrefix struct {
	Dir    direction
	Offset int32
	Dh, Dv Vec8
	De, Df Vec8
	Delta  Vec8 // small_delta (spec §3, "sd"): per-lane baseline relative to Offset
	Max    Vec8
}

// PhantomBlock is a zero-content block placed immediately before a run: it
// carries only the resumption state (spec §3) and shares blockPrefix's
// layout with Block so create_head can memcpy it uniformly.
type PhantomBlock struct {
	blockPrefix
}

// MaskPair is the traceback-consumed per-column record: which cells in dh'/dv'
// took the gap branch versus the substitution branch (spec §4.4 step 5).
type MaskPair struct {
	DhEqDf uint32
	DvEqDe uint32
}

// Block is one L=32-column run of the banded DP fill, persisted in the
// layout documented by spec §3 ("Persisted layout of a block") so an
// external traceback consumer can read it without calling back into this
// package.
type Block struct {
	blockPrefix

	Mask [BLK]MaskPair

	P int // absolute DP column this block starts at
}

// JointHead brackets the start of a contiguous run of Blocks, linking back to
// the tail it resumed from (spec §3).
type JointHead struct {
	Prev *JointTail
}

// JointTail brackets the end of a contiguous run of Blocks, carrying the
// chain-continuation state a following fill call resumes from (spec §3).
type JointTail struct {
	Middle *Vec16 // owning MiddleDelta baseline

	P    int64 // absolute DP column this tail ends at
	MP   int   // -1 once the tail owns no open mask-pair column
	MQ   int
	Psum int64 // cumulative p across the whole chain
	Max  int16 // best reconstructed score observed so far

	WA, WB [BW]byte // saved sequence windows for the next fill to resume from

	Block PhantomBlock // snapshot create_head memcpies for the next run
}

// blockPrefixSize documents, in bytes, the size of the shared prefix
// createHead/createTail copy — exposed as a constant per spec §3's
// "explicit size constant" redesign flag rather than relying on struct
// layout to coincide across types.
const blockPrefixSize = int(unsafeSizeofBlockPrefix)

// unsafeSizeofBlockPrefix is computed structurally (direction: 8 bytes on a
// 64-bit build after alignment, int32: 4, six Vec8: 32 each) rather than via
// the unsafe package, since the prefix is never actually byte-copied through
// a raw memcpy in this Go port — PhantomBlock and Block simply embed the same
// blockPrefix struct value and Go's assignment semantics do the copying.
const unsafeSizeofBlockPrefix = 8 + 4 + 6*BW
