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
	"fmt"
	"io"
)

// Dump writes a per-lane tab-delimited table of a Block's diff and baseline
// vectors to w, the fill-engine counterpart of the teacher's Plot (spec
// §4.9): there is no materialized score matrix to walk here, only the 32
// lanes carried across one block, so the table is lane x {dh,dv,de,df,delta,
// max} rather than row x column.
func (b *Block) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "p=%d offset=%d\nlane\tdh\tdv\tde\tdf\tdelta\tmax\n", b.P, b.Offset); err != nil {
		return err
	}
	for i := 0; i < BW; i++ {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			i, b.Dh[i], b.Dv[i], b.De[i], b.Df[i], b.Delta[i], b.Max[i]); err != nil {
			return err
		}
	}
	return nil
}

// DumpDirections writes the block's 32-bit direction history as a string of
// R/D characters, most recent last, for quick visual comparison against an
// expected chain of band-advance decisions.
func (b *Block) DumpDirections(w io.Writer) error {
	buf := make([]byte, 32)
	for i := 0; i < 32; i++ {
		if b.Dir.bit(uint(31-i)) == dirDown {
			buf[i] = 'D'
		} else {
			buf[i] = 'R'
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", buf)
	return err
}

// Dump writes the chain-continuation state of a JointTail, the fields an
// external traceback consumer reads to resume a chain (spec §3).
func (t *JointTail) Dump(w io.Writer) error {
	_, err := fmt.Fprintf(w, "p=%d mp=%d mq=%d psum=%d max=%d\n", t.P, t.MP, t.MQ, t.Psum, t.Max)
	return err
}
