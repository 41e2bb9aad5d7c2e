// File: pool/bytepool.go
// Package pool provides fixed-size request buffer pooling.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync"

// BytePool recycles fixed-size byte buffers across connection workers.
// All buffers in one pool share the same capacity.
type BytePool struct {
	p    sync.Pool
	size int
}

// NewBytePool creates a pool of buffers of exactly size bytes.
func NewBytePool(size int) *BytePool {
	bp := &BytePool{size: size}
	bp.p.New = func() any {
		buf := make([]byte, size)
		return &buf
	}
	return bp
}

// GetBuffer returns a full-length buffer from the pool.
func (b *BytePool) GetBuffer() []byte {
	return *(b.p.Get().(*[]byte))
}

// PutBuffer returns a buffer to the pool. Only buffers obtained from
// GetBuffer may be returned; foreign sizes are dropped.
func (b *BytePool) PutBuffer(buf []byte) {
	if cap(buf) != b.size {
		return
	}
	buf = buf[:b.size]
	b.p.Put(&buf)
}

// Size reports the fixed buffer capacity of this pool.
func (b *BytePool) Size() int { return b.size }
