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

// Section is one of the two input sequences' ASCII bytes plus the active
// subrange within it, mirroring the teacher's (seq []byte, from, to int)
// triples threaded through extend()/next() in wfa.go.
type Section struct {
	Seq  []byte
	From int
	Len  int
}

func (s Section) byteAt(pos int) byte {
	if pos < 0 || pos >= s.Len {
		return 0 // pad: out-of-range reads return byte 0, which asciiCode scores as A.
	}
	return s.Seq[s.From+pos]
}

// SectionPair bundles the two Sections a fill operation runs over, and is
// what a chained pair of DP extensions hands forward unchanged (spec §4.6).
type SectionPair struct {
	A, B Section
}

// NewSectionPair builds a SectionPair from two raw strands, grounded on §6's
// build_seq_pair(a, alen, b, blen). This is the Precondition check point
// spec §7 assigns to builder time: a pair with nothing at all to align, or a
// strand past MaxSequenceLen, is rejected here rather than surfacing as a
// confusing mid-fill failure. A single empty strand is not rejected — spec
// §8's boundary case ("zero-length A") is a legitimate chained-fill input
// handled by Fill itself, not a construction error.
func NewSectionPair(a, b []byte) (SectionPair, error) {
	if len(a) == 0 && len(b) == 0 {
		return SectionPair{}, ErrEmptySequence
	}
	if len(a) > MaxSequenceLen || len(b) > MaxSequenceLen {
		return SectionPair{}, ErrSequenceTooLong
	}
	return SectionPair{
		A: Section{Seq: a, Len: len(a)},
		B: Section{Seq: b, Len: len(b)},
	}, nil
}

// bufWidth is the width of the sliding fetch window: BW lanes of lookahead
// plus BLK columns of bulk advance plus BW lanes of lookbehind, grounded on
// original_source/dp.c's bulk-fetch margin (`BW + BLK + BW`).
const bufWidth = BW + BLK + BW

// seqReader is a sliding-window cursor over a Section's bytes, refilled a
// block at a time by bulkFetch/capFetch. It plays the role of the source's
// rd_t (sequence reader) structure: buf holds the currently-visible window,
// pos tracks how many bytes of the Section have been consumed so far.
type seqReader struct {
	sec Section
	pos int
	buf []byte
}

func newSeqReader(sec Section) *seqReader {
	return &seqReader{sec: sec, buf: make([]byte, bufWidth)}
}

// bulkFetch refills the whole buf with the Section's bytes [pos-BW,
// pos+BLK+BW), the Phase A/B path (spec §4.4). Every byte goes through
// byteAt's bounds check, so it is the same path capFetch takes.
func (r *seqReader) bulkFetch() {
	for i := 0; i < bufWidth; i++ {
		r.buf[i] = r.sec.byteAt(r.pos - BW + i)
	}
}

// capFetch is the bounds-checked counterpart used once the window can run
// past either end of the Section (Phase C, spec §4.4): every byte goes
// through byteAt's bounds check and pads with zero past either edge.
func (r *seqReader) capFetch() {
	r.bulkFetch()
}

// advance moves the reader forward by n bytes (the fill loop passes 1 per
// column it steps this strand) and refetches the window.
func (r *seqReader) advance(n int, bulk bool) {
	r.pos += n
	if bulk {
		r.bulkFetch()
	} else {
		r.capFetch()
	}
}

// window returns the BW-lane slice currently aligned with the fill engine's
// band, i.e. bytes [pos, pos+BW).
func (r *seqReader) window() []byte {
	return r.buf[BW : BW+BW]
}

// remaining reports how many unconsumed bytes are left in the Section,
// floored at zero; fillBlock/chainer use this for the ij-bound test.
func (r *seqReader) remaining() int {
	n := r.sec.Len - r.pos
	if n < 0 {
		return 0
	}
	return n
}
