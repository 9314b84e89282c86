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

// ScoringContext is the immutable, once-per-alignment-run template built by
// Init, grounded on dp.c's init(): it is safe to share read-only across any
// number of concurrent DPContexts (spec §5).
type ScoringContext struct {
	Score    ScoreSchema
	Middle   Vec16
	template PhantomBlock
}

// Init builds a ScoringContext from cfg, grounded on dp.c's init(): it seeds
// the score schema, the MiddleDelta baseline, and the initial phantom block
// whose direction state reflects "step 0 → step 1 was DOWN" (initDirection).
// Guided mode is rejected outright: the source never wires a working guided
// fill path (original_source/variant/guided_impl.h has no reachable caller),
// so there is nothing faithful to reproduce.
func Init(cfg *Config) (*ScoringContext, error) {
	if cfg == nil {
		return nil, ErrNilContext
	}
	if cfg.Guided {
		return nil, ErrGuidedModeUnsupported
	}
	if cfg.SeqAFormat != FormatASCII || cfg.SeqBFormat != FormatASCII {
		return nil, ErrInvalidFormat
	}

	xdrop := cfg.XDrop
	if xdrop == 0 {
		xdrop = DefaultXDrop
	}
	sc := buildScoreSchema(cfg.ScoreMatrix, xdrop)
	middle := middleDeltaInit(cfg.ScoreMatrix)
	delta, max := smallDeltaInit(cfg.ScoreMatrix)
	dh, dv, de, df := diffVecInit(cfg.ScoreMatrix)

	template := PhantomBlock{blockPrefix: blockPrefix{
		Dir:    initDirection(),
		Offset: 0,
		Dh:     dh,
		Dv:     dv,
		De:     de,
		Df:     df,
		Delta:  delta,
		Max:    max,
	}}

	return &ScoringContext{Score: sc, Middle: middle, template: template}, nil
}

// DPContext is the mutable, per-alignment state threaded through Fill calls,
// grounded on dp.c's DpContext: its arena chain, the shared ScoreSchema, and
// the MiddleDelta baseline it was built against.
type DPContext struct {
	Score  ScoreSchema
	Middle Vec16
	arena  *arena

	root *JointTail
}

// NewDPContext allocates a fresh DPContext from sc, grounded on dp.c's
// dp_init: it copies the ScoringContext's template phantom block into a root
// JointTail seeded with two columns already consumed (p=2, psum=2, per spec
// §4.7), and initializes a fresh arena.
func NewDPContext(sc *ScoringContext) *DPContext {
	middle := sc.Middle
	root := &JointTail{
		Middle: &middle,
		P:      2,
		MP:     -1,
		Psum:   2,
		Max:    0,
		Block:  sc.template,
	}

	return &DPContext{
		Score:  sc.Score,
		Middle: sc.Middle,
		arena:  newArena(),
		root:   root,
	}
}

// Root returns the starting chain-status tail for the first Fill call,
// grounded on dp.c's dp_build_root.
func (dp *DPContext) Root() *JointTail {
	return dp.root
}

// Close releases the DPContext's arena chain, grounded on dp.c's dp_clean.
// It is always safe to call regardless of the status the last Fill returned.
func (dp *DPContext) Close() {
	dp.arena.release()
}
