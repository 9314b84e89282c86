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

//go:build amd64

package gaba

import "golang.org/x/sys/cpu"

// hasWideMatch reports whether the 8-bytes-at-a-time matcher (matchASCIIWide,
// grounded on the teacher's extend()'s be.Uint64 XOR/leading-zero trick) is
// selected in place of the byte-at-a-time fallback. Gated on SSE4.1 since
// that's the floor the original C kernels (arch/x86_64_sse41) targeted; a
// hand-written AVX2 kernel was dropped in favor of this portable form (see
// DESIGN.md's note on avo).
var hasWideMatch = cpu.X86.HasSSE41

func init() {
	if hasWideMatch {
		matchDispatch = matchASCIIWide
	}
}
