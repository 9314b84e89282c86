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

func TestSectionByteAt(t *testing.T) {
	sec := Section{Seq: []byte("ACGTACGT"), From: 2, Len: 4}
	assert.Equal(t, byte('G'), sec.byteAt(0))
	assert.Equal(t, byte('T'), sec.byteAt(1))
	assert.Equal(t, byte(0), sec.byteAt(-1))
	assert.Equal(t, byte(0), sec.byteAt(4))
}

func TestSeqReaderBulkFetchWindow(t *testing.T) {
	sec := Section{Seq: []byte("ACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT"), From: 0, Len: 48}
	r := newSeqReader(sec)
	r.bulkFetch()
	assert.Equal(t, BW, len(r.window()))
	assert.Equal(t, sec.Seq[:BW], r.window())
}

func TestSeqReaderAdvance(t *testing.T) {
	sec := Section{Seq: []byte("ACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT"), From: 0, Len: 48}
	r := newSeqReader(sec)
	r.bulkFetch()
	r.advance(1, true)
	assert.Equal(t, 1, r.pos)
	assert.Equal(t, sec.Seq[1:1+BW], r.window())
}

func TestSeqReaderRemaining(t *testing.T) {
	sec := Section{Seq: []byte("ACGT"), From: 0, Len: 4}
	r := newSeqReader(sec)
	assert.Equal(t, 4, r.remaining())
	r.pos = 4
	assert.Equal(t, 0, r.remaining())
	r.pos = 10
	assert.Equal(t, 0, r.remaining())
}

func TestNewSectionPairRejectsBothEmpty(t *testing.T) {
	_, err := NewSectionPair(nil, nil)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestNewSectionPairAllowsOneEmptyStrand(t *testing.T) {
	sec, err := NewSectionPair(nil, []byte("ACGT"))
	assert.NoError(t, err)
	assert.Equal(t, 0, sec.A.Len)
	assert.Equal(t, 4, sec.B.Len)
}

func TestNewSectionPairBuildsSections(t *testing.T) {
	sec, err := NewSectionPair([]byte("ACGT"), []byte("TTTT"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("ACGT"), sec.A.Seq)
	assert.Equal(t, 4, sec.A.Len)
	assert.Equal(t, []byte("TTTT"), sec.B.Seq)
	assert.Equal(t, 4, sec.B.Len)
}

func TestSeqReaderCapFetchPadsOutOfRange(t *testing.T) {
	sec := Section{Seq: []byte("ACGT"), From: 0, Len: 4}
	r := newSeqReader(sec)
	r.capFetch()
	w := r.window()
	assert.Equal(t, byte('A'), w[0])
	assert.Equal(t, byte(0), w[BW-1])
}
