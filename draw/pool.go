package draw

import "sync"

// StagingSize is the size of the staging buffer used to coalesce writes to
// tiled planes.
const StagingSize = 4096

// staging is a byte buffer pre-filled with one pixel value.
type staging struct {
	buf   []byte
	cpp   uint32
	value uint64
}

// Pool is a thread-safe pool of pre-filled staging buffers.
//
// Buffers are grouped by pixel size, pixel value and length, so a buffer
// taken from the pool already holds the repeated pixel and needs no refill.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*staging
	maxSize int // max buffers per bucket
}

type poolKey struct {
	cpp   uint32
	value uint64
	size  int
}

// NewPool creates a staging pool keeping at most maxPerBucket buffers per
// key. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*staging),
		maxSize: maxPerBucket,
	}
}

// get returns a buffer of size bytes filled with value.
func (p *Pool) get(cpp uint32, value uint64, size int) *staging {
	key := poolKey{cpp: cpp, value: value, size: size}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		s := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return s
	}
	p.mu.Unlock()

	s := &staging{buf: make([]byte, size), cpp: cpp, value: value}
	for i := 0; i+int(cpp) <= size; i += int(cpp) {
		putPixel(s.buf[i:], cpp, value)
	}
	return s
}

// put returns s to the pool. The buffer must not have been modified.
func (p *Pool) put(s *staging) {
	if s == nil {
		return
	}
	key := poolKey{cpp: s.cpp, value: s.value, size: len(s.buf)}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, s)
}

// Len returns the number of buffers held by the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultPool serves FillRect.
var defaultPool = NewPool(8)
