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

// ScoreSchema is the derived, vectorized form of a ScoreMatrix: the broadcast
// gap vectors, the substitution table, and the x-drop threshold, built once
// per ScoringContext and shared read-only by every DPContext (spec §5).
type ScoreSchema struct {
	Sub subTable16

	GIAV, GIBV Vec8 // broadcast gap-open cost, strand A / B
	GEAV, GEBV Vec8 // broadcast gap-extend cost, strand A / B

	XDrop int16
}

func extractMaxSub(m ScoreMatrix) int8 {
	max := m.Sub[0][0]
	for _, row := range m.Sub {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// buildScoreSchema derives the vectorized scoring schema from a ScoreMatrix
// and X-drop threshold, grounded on original_source/dp.c's
// sea_init_create_score_vector.
func buildScoreSchema(m ScoreMatrix, xdrop int16) ScoreSchema {
	var sub subTable16
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			sub[a<<2|b] = m.Sub[a][b]
		}
	}

	return ScoreSchema{
		Sub:   sub,
		GIAV:  broadcast8(m.GapOpenA),
		GIBV:  broadcast8(m.GapOpenB),
		GEAV:  broadcast8(m.GapExtendA),
		GEBV:  broadcast8(m.GapExtendB),
		XDrop: xdrop,
	}
}

// smallDeltaInit seeds the per-lane delta/max baseline of the very first phantom
// block, grounded on original_source/dp.c's sea_init_create_small_delta:
// the top half of the band (lanes < BW/2) is biased towards extending along
// A, the bottom half towards B. dp.c's ge_a/ge_b are positive gap-extend
// magnitudes; ScoreMatrix stores them pre-negated as costs, so every term
// below carries the sign flip the C formula doesn't need.
func smallDeltaInit(m ScoreMatrix) (delta, max Vec8) {
	maxSub := extractMaxSub(m)
	diffA := maxSub - m.GapExtendA
	diffB := m.GapExtendB

	for i := 0; i < BW/2; i++ {
		delta[i] = diffA
		delta[BW/2+i] = diffB
		max[i] = 0
		max[BW/2+i] = -diffB
	}
	return delta, max
}

// middleDeltaInit builds the block-invariant anti-drift baseline described in
// spec §3 ("Middle-delta"), grounded on sea_init_create_middle_delta. The
// center lane is forced to zero: per DESIGN.md's resolution of the §9 open
// question, the center cell is an absolute-zero baseline (matching invariant
// #2, "offset + delta[mid] == score at band center"), not a tie-breaker.
// As in smallDeltaInit, ScoreMatrix's pre-negated gap costs need the sign
// flipped back before they fit dp.c's positive-magnitude formula.
func middleDeltaInit(m ScoreMatrix) Vec16 {
	maxSub := int16(extractMaxSub(m))
	coefA := -maxSub + 2*int16(m.GapExtendA)
	coefB := -maxSub + 2*int16(m.GapExtendB)
	ofsA := int16(m.GapOpenA)
	ofsB := int16(m.GapOpenB)

	var md Vec16
	for i := 0; i < BW/2; i++ {
		md[i] = ofsA + coefA*int16(BW/2-i)
		md[BW/2+i] = ofsB + coefB*int16(i)
	}
	md[BW/2] = 0
	return md
}

// diffVecInit seeds dh/dv/de/df for the first phantom block, grounded on
// sea_init_create_diff_vectors; same pre-negated-cost adjustment as
// smallDeltaInit/middleDeltaInit.
func diffVecInit(m ScoreMatrix) (dh, dv, de, df Vec8) {
	maxSub := extractMaxSub(m)
	raiseDh := maxSub - 2*m.GapExtendB
	raiseDv := maxSub - 2*m.GapExtendA
	dropDe := m.GapOpenA - m.GapExtendA
	dropDf := m.GapOpenB - m.GapExtendB

	for i := 0; i < BW/2; i++ {
		dh[i] = 0
		dh[BW/2+i] = raiseDh
		dv[i] = raiseDv
		dv[BW/2+i] = 0
		de[i] = dropDe
		df[i] = dropDf
	}
	return dh, dv, de, df
}
