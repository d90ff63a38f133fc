// Package bufpool implements a global segregated-fit pool of scratch
// buffers for the sanitizer's hot path: one buffer per scan, sized
// 2*len(sql), split by the caller into a sanitized half and a summary half.
//
// Modeled on the pgx driver's internal/iobufpool: buckets by power-of-two
// size so that calls over similarly-sized SQL text reuse the same bucket
// instead of contending on a single pool, and Get/Put take/return *[]byte
// to avoid the sync.Pool-with-slice-value allocation on Put.
package bufpool

import (
	"math/bits"
	"sync"
)

const minPoolExpOf2 = 6 // smallest bucket holds 64 bytes

var pools [20]*sync.Pool

func init() {
	for i := range pools {
		bufLen := 1 << (minPoolExpOf2 + i)
		pools[i] = &sync.Pool{
			New: func() any {
				buf := make([]byte, bufLen)
				return &buf
			},
		}
	}
}

// Get returns a *[]byte of len size. If size exceeds the largest bucket, a
// fresh slice is allocated directly: the pool must never fail a caller, it
// may only decline to recycle (spec's "buffer pool exhaustion" contract).
func Get(size int) *[]byte {
	i := poolIdxForGet(size)
	if i >= len(pools) {
		buf := make([]byte, size)
		return &buf
	}
	ptr := pools[i].Get().(*[]byte)
	*ptr = (*ptr)[:size]
	return ptr
}

func poolIdxForGet(size int) int {
	if size <= 1<<minPoolExpOf2 {
		return 0
	}
	idx := bits.Len(uint(size-1)) - minPoolExpOf2
	if idx < 0 {
		return 0
	}
	return idx
}

// Put returns buf to the pool it came from. Buffers whose capacity isn't an
// exact bucket size (i.e. the Get-time fallback allocation) are dropped
// instead of pooled.
func Put(buf *[]byte) {
	i := poolIdxForPut(cap(*buf))
	if i < 0 {
		return
	}
	pools[i].Put(buf)
}

func poolIdxForPut(size int) int {
	if size&(size-1) != 0 {
		return -1
	}
	exp := bits.TrailingZeros(uint(size))
	idx := exp - minPoolExpOf2
	if idx < 0 || idx >= len(pools) {
		return -1
	}
	return idx
}
