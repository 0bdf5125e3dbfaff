package handler

import (
	"bytes"
	"sync"
)

const (
	bufferInitialSize = 512
	// buffers that grew past this are dropped instead of pooled
	bufferMaxPooled = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, bufferInitialSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > bufferMaxPooled {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
