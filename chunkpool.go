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

import "sync"

// chunkPool recycles arena chunks of exactly initStackSize bytes across
// DPContext lifetimes, adapted from the teacher's WaveFront pool
// (wfa_wavefront.go's poolWaveFront/NewWaveFront/RecycleWaveFront): a
// sync.Pool of pre-sized slices, reset on checkout instead of reallocated.
// Only the initial, most common chunk size is pooled; chunks created by a
// grow() past the first are arena-specific and released to the GC directly,
// same as the teacher never pools a WaveFront's grown offset slices
// separately from the base allocation.
var chunkPool = &sync.Pool{New: func() interface{} {
	return &chunk{mem: make([]byte, initStackSize)}
}}

// getChunk checks out a zeroed, initStackSize-sized chunk from the pool.
func getChunk() *chunk {
	c := chunkPool.Get().(*chunk)
	c.top = 0
	clear(c.mem)
	return c
}

// putChunk returns a chunk to the pool if it is eligible (only base-sized
// chunks are recycled; anything grown larger is left for the GC).
func putChunk(c *chunk) {
	if c != nil && len(c.mem) == initStackSize {
		chunkPool.Put(c)
	}
}
