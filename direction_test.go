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

func TestInitDirectionSeed(t *testing.T) {
	d := initDirection()
	assert.Equal(t, int16(0), d.acc)
	// LSB=1 means the step right after the seed was DOWN.
	assert.Equal(t, dirDown, d.bit(0))
}

func TestDirectionNextFavoursRightWhenBalanced(t *testing.T) {
	d := initDirection()
	var zero Vec8
	d, dir := d.next(zero)
	assert.Equal(t, dirRight, dir)
	assert.Equal(t, int16(0), d.acc)
}

func TestDirectionNextFavoursDownWhenBottomHeavy(t *testing.T) {
	d := initDirection()
	var delta Vec8
	delta[BW-1] = 10 // bottom edge far ahead of the top edge
	d, dir := d.next(delta)
	assert.Equal(t, dirDown, dir)
	assert.Less(t, d.acc, int16(0))
}

func TestDirectionNextFavoursRightWhenTopHeavy(t *testing.T) {
	d := initDirection()
	var delta Vec8
	delta[0] = 10
	d, dir := d.next(delta)
	assert.Equal(t, dirRight, dir)
	assert.Greater(t, d.acc, int16(0))
}

func TestDirectionHistoryAccumulates(t *testing.T) {
	d := initDirection()
	var right, down Vec8
	down[BW-1] = 1

	var dir int
	d, dir = d.next(right)
	assert.Equal(t, dirRight, dir)
	assert.Equal(t, dirRight, d.bit(0))

	d, dir = d.next(down)
	assert.Equal(t, dirDown, dir)
	assert.Equal(t, dirDown, d.bit(0))
	assert.Equal(t, dirRight, d.bit(1))
}

func TestLoad(t *testing.T) {
	da, db := load(dirRight)
	assert.Equal(t, 1, da)
	assert.Equal(t, 0, db)

	da, db = load(dirDown)
	assert.Equal(t, 0, da)
	assert.Equal(t, 1, db)
}
