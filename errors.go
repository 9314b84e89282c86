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

import "fmt"

// ErrEmptySequence means both sequences handed to NewSectionPair are empty,
// leaving nothing to align.
var ErrEmptySequence error = fmt.Errorf("gaba: invalid empty sequence")

// ErrSequenceTooLong means a sequence exceeds MaxSequenceLen.
var ErrSequenceTooLong error = fmt.Errorf("gaba: sequence longer than %d is not supported", MaxSequenceLen)

// ErrNilContext means a nil Config was passed to Init.
var ErrNilContext error = fmt.Errorf("gaba: nil context")

// ErrInvalidFormat means a seq_a_format/seq_b_format other than FormatASCII was requested.
var ErrInvalidFormat error = fmt.Errorf("gaba: invalid sequence format")

// ErrGuidedModeUnsupported means guided-mode direction determination was requested.
// The source never wires a working fill for guided mode (see DESIGN.md); this
// implementation rejects it outright at Init instead of guessing its semantics.
var ErrGuidedModeUnsupported error = fmt.Errorf("gaba: guided-mode direction determiner is not implemented")

// ErrOutOfMemory names an arena allocation failure. No function in this
// package returns it: the arena grows with make, whose failure is a Go
// runtime failure, so Fill never reports it as a status or a nil tail.
var ErrOutOfMemory error = fmt.Errorf("gaba: arena allocation failed")

// MaxSequenceLen is the longest sequence length the band position encoding supports.
const MaxSequenceLen int = 1<<28 - 1
