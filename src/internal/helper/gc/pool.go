// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer is a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	io.Writer
	io.ReaderFrom
	io.WriterTo
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Reset()
}

// Pool hands out Buffers for reuse.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool.
type pool struct{ p *bytebufferpool.Pool }

// New returns an empty Pool backed by bytebufferpool.
func New() Pool { return &pool{p: &bytebufferpool.Pool{}} }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool. Buffers of other types are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the buffer pool shared by certificate input and record rendering.
//
// Reading a certificate file:
//
//	buf := gc.Default.Get()
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	if _, err := buf.ReadFrom(io.LimitReader(f, limit+1)); err != nil {
//		return nil, fmt.Errorf("reading certificate input: %w", err)
//	}
//	der := bytes.Clone(buf.Bytes())
//
// Rendering a record:
//
//	buf := gc.Default.Get()
//	defer func() {
//		buf.Reset()
//		gc.Default.Put(buf)
//	}()
//
//	fmt.Fprintf(buf, "%-22s %s\n", "Serial Number:", rec.SerialNumber)
//	return buf.String()
//
// Bytes returned by a Buffer are only valid until the buffer is reset, so
// copy them before putting the buffer back.
var Default = New()
