// Package allocator provides an allocator interface and a bump allocator over a caller-supplied
// buffer.
//
// The bump allocator hands out consecutive pieces of its buffer and never reclaims them: Free is
// accepted but does nothing, so the allocator only grows until it is exhausted.
package allocator

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// Align is the granularity of allocations. Every request is rounded up to a multiple of Align.
	Align = 4
	// HeaderSize is the number of bytes at the front of a Static allocator's buffer used for its
	// own bookkeeping.
	HeaderSize = 16
)

// ErrBufferTooSmall is returned by NewStatic when the buffer can't even hold the bookkeeping
// header.
var ErrBufferTooSmall = errors.New("buffer too small for allocator header")

// Allocator hands out memory.
type Allocator interface {
	// Alloc returns size bytes of memory, or nil if the allocator can't satisfy the request.
	Alloc(size int) []byte
	// Free returns memory obtained from Alloc. Allocators that can't reuse memory ignore it.
	Free(p []byte)
	// Capacity returns the total size of the memory managed by the allocator.
	Capacity() int
	// Available returns how many bytes are left to allocate.
	Available() int
}

// Static is a bump allocator. The first HeaderSize bytes of its buffer hold the buffer size and
// the offset of the next allocation, everything after that is handed out in order.
//
// Static's methods may not be called concurrently.
type Static struct {
	buf []byte
}

var _ Allocator = &Static{}

// NewStatic returns a Static allocator managing buf.
func NewStatic(buf []byte) (*Static, error) {
	if len(buf) <= HeaderSize {
		return nil, fmt.Errorf("allocator: %d bytes, need more than %d: %w", len(buf), HeaderSize, ErrBufferTooSmall)
	}
	a := &Static{buf: buf}
	binary.LittleEndian.PutUint64(buf[0:8], uint64(len(buf)))
	a.setUsed(HeaderSize)
	return a, nil
}

// Alloc returns a slice of exactly size bytes from the buffer, or nil if fewer than size bytes
// rounded up to Align are left. A failed Alloc has no effect.
//
// The returned slice's capacity ends at the next allocation, so appending to it past the rounded
// size reallocates instead of overwriting.
func (a *Static) Alloc(size int) []byte {
	if size < 0 {
		return nil
	}
	used := a.used()
	avail := a.Capacity() - used
	if size > avail {
		return nil
	}
	n := alignUp(size)
	if n > avail {
		return nil
	}
	a.setUsed(used + n)
	return a.buf[used : used+size : used+n]
}

// Free does nothing, a Static allocator never reuses memory.
func (a *Static) Free(p []byte) {}

func (a *Static) Capacity() int { return int(binary.LittleEndian.Uint64(a.buf[0:8])) }

func (a *Static) Available() int { return a.Capacity() - a.used() }

// Used returns the number of bytes consumed so far, including the header.
func (a *Static) Used() int { return a.used() }

func (a *Static) used() int { return int(binary.LittleEndian.Uint64(a.buf[8:16])) }

func (a *Static) setUsed(used int) { binary.LittleEndian.PutUint64(a.buf[8:16], uint64(used)) }

func alignUp(n int) int {
	return (n + Align - 1) &^ (Align - 1)
}
