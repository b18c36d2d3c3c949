package tree

import (
	"runtime"
	"slices"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/codahale/sakura/hazmat/sponge"
)

// LeafFunc computes the chaining value of the chunk with the given index, writing it to cv. It must be safe to call
// concurrently with distinct cv buffers.
type LeafFunc func(index uint64, chunk, cv []byte)

// SpongeLeaf returns a LeafFunc which absorbs each chunk into a fresh sponge with parameters p and squeezes cvSize
// bytes. It panics if p is invalid.
func SpongeLeaf(p sponge.Params) LeafFunc {
	tmpl := *sponge.MustNew(p)
	return func(_ uint64, chunk, cv []byte) {
		s := tmpl
		_, _ = s.Write(chunk)
		_, _ = s.Read(cv)
	}
}

// parallelThreshold is the smallest batch, in bytes, hashed on more than one goroutine.
var parallelThreshold = 16 * 1024

// maxBatch bounds the number of chunks hashed between folds.
const maxBatch = 256

// DefaultWorkers returns the number of goroutines used for leaf hashing when none is configured: the number of
// logical cores, capped by GOMAXPROCS.
func DefaultWorkers() int {
	procs := runtime.GOMAXPROCS(0)
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return min(n, procs)
	}
	return procs
}

// Leaves splits a message into fixed-size chunks and computes their chaining values. Chunks are hashed concurrently
// but always folded in chunk order.
type Leaves struct {
	chunkSize int
	cvSize    int
	workers   int
	leaf      LeafFunc
	buf       []byte // partial chunk
	cvs       []byte // scratch space for one batch of chaining values
	count     uint64
}

// NewLeaves returns a new Leaves which hashes chunks of chunkSize bytes into cvSize-byte chaining values using leaf.
// A workers value of zero selects DefaultWorkers.
func NewLeaves(chunkSize, cvSize int, leaf LeafFunc, workers int) (*Leaves, error) {
	if chunkSize <= 0 {
		return nil, &sponge.ConfigError{Param: "chunk size", Value: chunkSize}
	}

	if cvSize <= 0 {
		return nil, &sponge.ConfigError{Param: "chaining value size", Value: cvSize}
	}

	if workers < 0 {
		return nil, &sponge.ConfigError{Param: "worker count", Value: workers}
	}

	if workers == 0 {
		workers = DefaultWorkers()
	}

	return &Leaves{chunkSize: chunkSize, cvSize: cvSize, workers: workers, leaf: leaf}, nil
}

// ChunkSize returns the chunk size in bytes.
func (l *Leaves) ChunkSize() int { return l.chunkSize }

// Count returns the number of chaining values folded so far.
func (l *Leaves) Count() uint64 { return l.count }

// Buffered returns the number of bytes held in the partial chunk.
func (l *Leaves) Buffered() int { return len(l.buf) }

// Write splits p into chunks, hashes every completed chunk, and passes each chaining value to fold in chunk order.
// The cv slice passed to fold is only valid for the duration of the call.
func (l *Leaves) Write(p []byte, fold func(cv []byte)) {
	if len(l.buf) > 0 {
		n := min(l.chunkSize-len(l.buf), len(p))
		l.buf = append(l.buf, p[:n]...)
		p = p[n:]
		if len(l.buf) < l.chunkSize {
			return
		}
		l.hash(l.buf, fold)
		l.buf = l.buf[:0]
	}

	if full := len(p) / l.chunkSize * l.chunkSize; full > 0 {
		l.hash(p[:full], fold)
		p = p[full:]
	}

	l.buf = append(l.buf, p...)
}

// Finish hashes the trailing partial chunk, if any. If atLeastOne is true and no chunks have been hashed, a single
// empty chunk is hashed.
func (l *Leaves) Finish(fold func(cv []byte), atLeastOne bool) {
	if len(l.buf) == 0 && (!atLeastOne || l.count > 0) {
		return
	}

	cv := make([]byte, l.cvSize)
	l.leaf(l.count, l.buf, cv)
	fold(cv)
	l.count++
	l.buf = l.buf[:0]
}

// Reset discards the partial chunk and the chunk count.
func (l *Leaves) Reset() {
	l.buf = l.buf[:0]
	l.count = 0
}

// Clone returns an independent copy of l.
func (l *Leaves) Clone() *Leaves {
	c := *l
	c.buf = slices.Clone(l.buf)
	c.cvs = nil
	return &c
}

// hash computes and folds the chaining values of data, which must be a whole number of chunks.
func (l *Leaves) hash(data []byte, fold func(cv []byte)) {
	for len(data) > 0 {
		n := min(len(data)/l.chunkSize, maxBatch)
		batch := data[:n*l.chunkSize]
		data = data[n*l.chunkSize:]

		if cap(l.cvs) < n*l.cvSize {
			l.cvs = make([]byte, maxBatch*l.cvSize)
		}
		cvs := l.cvs[:n*l.cvSize]

		l.compute(batch, cvs, n)
		for i := range n {
			fold(cvs[i*l.cvSize : (i+1)*l.cvSize])
		}
		l.count += uint64(n)
	}
}

// compute writes the chaining values of the n chunks in batch to cvs, splitting the batch into contiguous runs across
// at most l.workers goroutines.
func (l *Leaves) compute(batch, cvs []byte, n int) {
	run := func(from, to int) {
		for i := from; i < to; i++ {
			l.leaf(l.count+uint64(i), batch[i*l.chunkSize:(i+1)*l.chunkSize], cvs[i*l.cvSize:(i+1)*l.cvSize])
		}
	}

	workers := min(l.workers, n)
	if workers <= 1 || len(batch) < parallelThreshold {
		run(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	per := (n + workers - 1) / workers
	for from := 0; from < n; from += per {
		to := min(from+per, n)
		g.Go(func() error {
			run(from, to)
			return nil
		})
	}
	_ = g.Wait()
}
