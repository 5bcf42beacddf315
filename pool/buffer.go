// Copyright 2022 The vireo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pool

import (
	"bytes"
	"sync"
)

// BufferPool represents a buffer pool container.
type BufferPool struct {
	p sync.Pool
}

// NewBufferPool returns a new buffer pool instance.
func NewBufferPool() *BufferPool {
	bp := BufferPool{
		p: sync.Pool{New: func() interface{} { return new(bytes.Buffer) }},
	}
	return &bp
}

// Get returns a buffer instance from the pool.
func (bp *BufferPool) Get() *bytes.Buffer {
	return bp.p.Get().(*bytes.Buffer)
}

// Put returns a buffer instance to the pool.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	buf.Reset()
	bp.p.Put(buf)
}
