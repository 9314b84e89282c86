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

// initStackSize is the arena's first chunk size, grounded on
// original_source/dp.c's INIT_STACK_SIZE (32 MiB).
const initStackSize = 32 << 20

// alignment is the minimum byte alignment dp_malloc guarantees, grounded on
// sea_dp_malloc's 16-byte rounding (so Block/vector stores stay SIMD-aligned
// even in the portable Go fallback).
const alignment = 16

func alignUp(n int) int {
	return (n + alignment - 1) &^ (alignment - 1)
}

// chunk is one bump-allocated slab; arena never frees or relocates a chunk
// while it is in use, so pointers handed out by alloc remain valid for the
// DpContext's lifetime (spec §5, "arenas are never relocated").
type chunk struct {
	mem  []byte
	top  int
}

// arena is the bump-pointer allocator backing a DpContext, grounded on
// original_source/dp.c's sea_dp_add_stack/sea_dp_malloc/sea_dp_clean: a
// doubling chain of chunks, individual frees are no-ops, and the whole chain
// is released at once when the owning DpContext closes.
type arena struct {
	chunks []*chunk
	size   int // capacity of the chunk about to be allocated, doubles each grow
}

func newArena() *arena {
	a := &arena{size: initStackSize}
	a.chunks = append(a.chunks, getChunk())
	return a
}

// alloc reserves n (rounded up to alignment) bytes from the current chunk,
// growing the arena if it doesn't fit. It never returns an error: OOM is only
// reachable in the source via a real malloc failure, which Go's allocator
// reports as a runtime failure rather than returning nil, so grow() doubles
// the size once and makes one new chunk, with no retry.
func (a *arena) alloc(n int) []byte {
	n = alignUp(n)
	cur := a.chunks[len(a.chunks)-1]
	if cur.top+n > len(cur.mem) {
		a.grow(n)
		cur = a.chunks[len(a.chunks)-1]
	}
	b := cur.mem[cur.top : cur.top+n]
	cur.top += n
	return b
}

// grow doubles the arena's chunk size (or grows to fit n if n alone exceeds
// double the previous size) and appends a new chunk, grounded on
// sea_dp_add_stack. The previous chunk, and every pointer already handed out
// from it, remains valid and untouched.
func (a *arena) grow(n int) {
	next := a.size * 2
	if n > next {
		next = alignUp(n)
	}
	a.size = next
	a.chunks = append(a.chunks, &chunk{mem: make([]byte, a.size)})
}

// free is a documented no-op: individual allocations are never released
// until the whole arena is (spec §4.6).
func (a *arena) free([]byte) {}

// release drops every chunk the arena holds, mirroring sea_dp_clean's walk
// over mem_array. Base-sized chunks go back to chunkPool for the next
// DPContext; anything grown past that is left for the GC.
func (a *arena) release() {
	for _, c := range a.chunks {
		putChunk(c)
	}
	a.chunks = nil
}
