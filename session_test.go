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

func TestInitRejectsNilConfig(t *testing.T) {
	_, err := Init(nil)
	assert.ErrorIs(t, err, ErrNilContext)
}

func TestInitRejectsGuidedMode(t *testing.T) {
	_, err := Init(NewConfig(WithGuided(true)))
	assert.ErrorIs(t, err, ErrGuidedModeUnsupported)
}

func TestInitRejectsNonASCIIFormat(t *testing.T) {
	_, err := Init(NewConfig(WithFormats(Format2Bit, FormatASCII)))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Init(NewConfig(WithFormats(FormatASCII, Format4BitPacked)))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestInitAppliesDefaultXDrop(t *testing.T) {
	sc, err := Init(NewConfig())
	assert.NoError(t, err)
	assert.Equal(t, DefaultXDrop, sc.Score.XDrop)
}

func TestNewDPContextSeedsRootTail(t *testing.T) {
	sc, err := Init(NewConfig())
	assert.NoError(t, err)

	dp := NewDPContext(sc)
	defer dp.Close()

	root := dp.Root()
	assert.EqualValues(t, 2, root.P)
	assert.EqualValues(t, 2, root.Psum)
	assert.Equal(t, -1, root.MP)
}

func TestDPContextCloseIsSafeToCallOnce(t *testing.T) {
	sc, err := Init(NewConfig())
	assert.NoError(t, err)

	dp := NewDPContext(sc)
	dp.Close()
	assert.Nil(t, dp.arena.chunks)
}
