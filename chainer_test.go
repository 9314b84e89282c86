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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDP(t *testing.T, cfg *Config) *DPContext {
	t.Helper()
	sc, err := Init(cfg)
	assert.NoError(t, err)
	dp := NewDPContext(sc)
	t.Cleanup(dp.Close)
	return dp
}

// Scenario 1 (spec §8): identical 16-base runs under the default scheme
// (m=1,x=1,gi=1,ge=1) terminate CONT with max == 16 — the round-trip law
// "identical inputs of length n report score = n·m" pins this exactly.
func TestFillIdenticalSequencesScenario(t *testing.T) {
	dp := newTestDP(t, NewConfig(WithXDrop(100)))

	a := repeatSeq("A", 16)
	b := repeatSeq("A", 16)
	sec := SectionPair{A: Section{Seq: a, Len: len(a)}, B: Section{Seq: b, Len: len(b)}}

	result := Fill(dp, dp.Root(), sec, 40)

	assert.Equal(t, StatusCont, result.Status)
	assert.Equal(t, int16(16), result.Tail.Max)
	assert.GreaterOrEqual(t, result.Tail.Psum, dp.Root().Psum)
}

// Scenario 2 (spec §8): a higher-reward scheme (m=2) over a 16-base identical
// ACGT run reports max == 32, matching the same n·m round-trip law scaled by
// the richer match reward.
func TestFillHigherRewardSchemeScenario(t *testing.T) {
	scheme := ScoreMatrix{
		Sub: [4][4]int8{
			{2, -3, -3, -3},
			{-3, 2, -3, -3},
			{-3, -3, 2, -3},
			{-3, -3, -3, 2},
		},
		GapOpenA: -5, GapOpenB: -5,
		GapExtendA: -1, GapExtendB: -1,
	}
	dp := newTestDP(t, NewConfig(WithXDrop(100), WithScoreMatrix(scheme)))

	a := repeatSeq("ACGT", 4)
	b := repeatSeq("ACGT", 4)
	sec := SectionPair{A: Section{Seq: a, Len: len(a)}, B: Section{Seq: b, Len: len(b)}}

	result := Fill(dp, dp.Root(), sec, 40)
	assert.Equal(t, int16(32), result.Tail.Max)
}

// Scenario 3 (spec §8): A and B share no aligned run at all (B is A
// reversed), so the best reconstructed score under the default scheme never
// exceeds a single match.
func TestFillNoSharedRunScenario(t *testing.T) {
	dp := newTestDP(t, NewConfig(WithXDrop(100)))

	a := []byte("ACGT")
	b := []byte("TGCA")
	sec := SectionPair{A: Section{Seq: a, Len: len(a)}, B: Section{Seq: b, Len: len(b)}}

	result := Fill(dp, dp.Root(), sec, 8)
	assert.LessOrEqual(t, result.Tail.Max, int16(1))
}

// Scenario 6 (spec §8): X-drop=1 against an all-mismatch pair terminates
// within the first couple of blocks rather than running to completion.
func TestFillXDropOneTerminatesEarly(t *testing.T) {
	dp := newTestDP(t, NewConfig(WithXDrop(1)))

	a := repeatSeq("A", 256)
	b := repeatSeq("C", 256) // every column mismatches
	sec := SectionPair{A: Section{Seq: a, Len: len(a)}, B: Section{Seq: b, Len: len(b)}}

	result := Fill(dp, dp.Root(), sec, int64(len(a)+len(b)))

	assert.Equal(t, StatusTerm, result.Status)
	assert.LessOrEqual(t, result.Tail.P, int64(2*BLK))
}

// Boundary (spec §8): a zero-length A section terminates immediately and
// leaves psum unchanged.
func TestFillZeroLengthASectionTerminates(t *testing.T) {
	dp := newTestDP(t, NewConfig())
	prev := dp.Root()

	sec := SectionPair{
		A: Section{Seq: nil, Len: 0},
		B: Section{Seq: repeatSeq("A", 16), Len: 16},
	}
	result := Fill(dp, prev, sec, 40)

	assert.Equal(t, StatusTerm, result.Status)
	assert.Equal(t, prev.Psum, result.Tail.Psum)
}

// Chaining law (spec §8, "round-trips"): filling a sequence as two
// consecutive half-length calls produces a second tail whose max is at least
// the first tail's (each call only ever raises max, never lowers it — spec
// invariant "max is monotonically non-decreasing"); the same sequence filled
// in one call reports a non-negative max.
func TestFillChainingNeverDecreasesMax(t *testing.T) {
	dp1 := newTestDP(t, NewConfig(WithXDrop(100)))
	a := repeatSeq("A", 64)
	b := repeatSeq("A", 64)
	whole := Fill(dp1, dp1.Root(), SectionPair{
		A: Section{Seq: a, Len: len(a)},
		B: Section{Seq: b, Len: len(b)},
	}, int64(len(a)+len(b)))

	dp2 := newTestDP(t, NewConfig(WithXDrop(100)))
	half := len(a) / 2
	firstHalf := Fill(dp2, dp2.Root(), SectionPair{
		A: Section{Seq: a[:half], Len: half},
		B: Section{Seq: b[:half], Len: half},
	}, int64(half*2))
	secondHalf := Fill(dp2, firstHalf.Tail, SectionPair{
		A: Section{Seq: a[half:], Len: len(a) - half},
		B: Section{Seq: b[half:], Len: len(b) - half},
	}, int64(len(a)+len(b)))

	assert.GreaterOrEqual(t, secondHalf.Tail.Max, firstHalf.Tail.Max)
	assert.GreaterOrEqual(t, whole.Tail.Max, int16(0))
}

func TestCreateHeadLinksToPrevTail(t *testing.T) {
	dp := newTestDP(t, NewConfig())
	prev := dp.Root()
	head, phantom := createHead(prev)
	assert.Same(t, prev, head.Prev)
	assert.Equal(t, prev.Block.blockPrefix, phantom)
}

func TestXdropFails(t *testing.T) {
	sc := ScoreSchema{XDrop: 10}
	var blk Block
	blk.Max[center] = 5
	assert.False(t, xdropFails(&blk, sc))

	blk.Max[center] = 20
	assert.True(t, xdropFails(&blk, sc))
}
