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

// Package gaba implements a banded, affine-gap, semi-global sequence aligner
// with a differentially-encoded, chainable DP fill engine.
package gaba

// BW is the band width, the lane count of every vector in the fill engine.
const BW = 32

// BLK is the block length: the number of DP columns advanced by one fill call
// to fillBlock.
const BLK = 32

// center is the lane index the offset/score baseline is anchored to.
const center = BW / 2

// Vec8 is a 32-lane vector of signed 8-bit deltas: dh, dv, de, df, delta and
// max all live in this type. Lane 0 is the band's top edge, lane BW-1 its
// bottom edge, lane `center` its diagonal midpoint.
type Vec8 [BW]int8

// Vec16 is a 32-lane vector of signed 16-bit values, used for MiddleDelta and
// for widened reductions across a joint boundary.
type Vec16 [BW]int16

func broadcast8(v int8) Vec8 {
	var r Vec8
	for i := range r {
		r[i] = v
	}
	return r
}

func (a Vec8) add(b Vec8) Vec8 {
	var r Vec8
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a Vec8) sub(b Vec8) Vec8 {
	var r Vec8
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func saturate8(v int32) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}

func (a Vec8) addSaturate(b Vec8) Vec8 {
	var r Vec8
	for i := range r {
		r[i] = saturate8(int32(a[i]) + int32(b[i]))
	}
	return r
}

func (a Vec8) max(b Vec8) Vec8 {
	var r Vec8
	for i := range r {
		if a[i] >= b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

func (a Vec8) min(b Vec8) Vec8 {
	var r Vec8
	for i := range r {
		if a[i] <= b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

func (a Vec8) eqMask(b Vec8) uint32 {
	var mask uint32
	for i := range a {
		if a[i] == b[i] {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// shiftLeftLane shifts every lane one position towards index 0, discarding
// lane 0 and introducing a zero at lane BW-1. This backs the RIGHT-step
// update to dh: "shift dh left by one lane (discarding MSB, zeroing LSB)"
// where MSB/LSB refer to the direction-array bit convention, not array index;
// in array terms this moves data from lane i+1 into lane i.
func (a Vec8) shiftLeftLane() Vec8 {
	var r Vec8
	copy(r[:BW-1], a[1:])
	r[BW-1] = 0
	return r
}

// shiftRightLane is the DOWN-step counterpart: moves lane i into lane i+1,
// introducing a zero at lane 0.
func (a Vec8) shiftRightLane() Vec8 {
	var r Vec8
	copy(r[1:], a[:BW-1])
	r[0] = 0
	return r
}

// hmax performs a horizontal max reduction over all lanes.
func (a Vec8) hmax() int8 {
	m := a[0]
	for _, v := range a[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// widen converts a Vec8 to a Vec16 (sign-extending 8->16 bit lanes).
func (a Vec8) widen() Vec16 {
	var r Vec16
	for i := range a {
		r[i] = int16(a[i])
	}
	return r
}

func (a Vec16) add(b Vec16) Vec16 {
	var r Vec16
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a Vec16) hmax() int16 {
	m := a[0]
	for _, v := range a[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// subTable16 is the 16-entry (4x4) substitution lookup consumed by shuffle:
// index = (codeA<<2)|codeB where codeA/codeB are the 2-bit nucleotide codes.
type subTable16 [16]int8

// shuffle resolves each lane's substitution index (built by the match
// functor) against the substitution table, producing the per-lane
// match/mismatch reward. This is the Go stand-in for the SIMD PSHUFB/TBL
// table lookup used by the source's _shuf macro.
func shuffle(idx Vec8, table subTable16) Vec8 {
	var r Vec8
	for i, v := range idx {
		r[i] = table[v&0x0f]
	}
	return r
}

// matchFunc computes, for each of the BW lanes, the substitution-table index
// for the base pair currently loaded in bufa/bufb at that lane. The dispatch
// table is keyed by (direction, format) per spec §4.3; only the ASCII
// equality functor is mandatory.
type matchFunc func(a, b []byte) Vec8

// asciiCode maps an ASCII nucleotide byte to its 2-bit code. Anything outside
// ACGT/acgt maps to 0 (treated as A) — sequences are expected to be
// pre-validated by the caller, mirroring the teacher's lack of input
// validation in the hot path.
var asciiCode [256]int8

func init() {
	for i := range asciiCode {
		asciiCode[i] = 0
	}
	asciiCode['A'], asciiCode['a'] = 0, 0
	asciiCode['C'], asciiCode['c'] = 1, 1
	asciiCode['G'], asciiCode['g'] = 2, 2
	asciiCode['T'], asciiCode['t'] = 3, 3
}

// matchASCII is the mandatory FW_ONLY/ASCII match functor: it builds the
// 4-bit substitution index directly, skipping the separate "equality" step
// the source uses for pure presence/absence alphabets.
func matchASCII(a, b []byte) Vec8 {
	var idx Vec8
	for i := 0; i < BW; i++ {
		idx[i] = asciiCode[a[i]]<<2 | asciiCode[b[i]]
	}
	return idx
}

// matchDispatch is the active match functor for the ASCII/FW_ONLY path.
// vector_amd64.go may replace it at init time with matchASCIIWide once the
// CPU feature it relies on is confirmed present.
var matchDispatch matchFunc = matchASCII
