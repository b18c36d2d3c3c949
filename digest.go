package sakura

import (
	"io"

	"github.com/codahale/sakura/hazmat/treemac"
	"github.com/codahale/sakura/internal/mem"
)

// engine is the shape shared by the sponge-based hashers in hazmat.
type engine[E any] interface {
	io.Writer
	io.Reader
	Reset()
	Clone() E
	BlockSize() int
}

// digest adapts an engine to XOF, fixing the size of Sum output.
type digest[E engine[E]] struct {
	e    E
	size int
}

func newDigest[E engine[E]](e E, size int) *digest[E] {
	return &digest[E]{e: e, size: size}
}

func (d *digest[E]) Write(p []byte) (int, error) { return d.e.Write(p) }

func (d *digest[E]) Read(p []byte) (int, error) { return d.e.Read(p) }

func (d *digest[E]) Sum(b []byte) []byte {
	return d.Clone().SumIn(b)
}

func (d *digest[E]) SumIn(b []byte) []byte {
	ret, out := mem.SliceForAppend(b, d.size)
	_, _ = d.e.Read(out)
	return ret
}

func (d *digest[E]) Reset() { d.e.Reset() }

func (d *digest[E]) Clone() Hash {
	return &digest[E]{e: d.e.Clone(), size: d.size}
}

func (d *digest[E]) NewEmpty() Hash {
	e := d.e.Clone()
	e.Reset()
	return &digest[E]{e: e, size: d.size}
}

func (d *digest[E]) Size() int { return d.size }

func (d *digest[E]) BlockSize() int { return d.e.BlockSize() }

// mac adapts a TreeMAC, whose tag has a fixed size and cannot be read as a stream.
type mac struct {
	m *treemac.MAC
}

func (m *mac) Write(p []byte) (int, error) { return m.m.Write(p) }

func (m *mac) Sum(b []byte) []byte { return m.m.Sum(b) }

// SumIn is Sum: the tag node is finalized on a copy either way.
func (m *mac) SumIn(b []byte) []byte { return m.m.Sum(b) }

func (m *mac) Reset() { m.m.Reset() }

func (m *mac) Clone() Hash { return &mac{m: m.m.Clone()} }

func (m *mac) NewEmpty() Hash {
	c := m.m.Clone()
	c.Reset()
	return &mac{m: c}
}

func (m *mac) Size() int { return m.m.Size() }

func (m *mac) BlockSize() int { return m.m.BlockSize() }

var _ Hash = (*mac)(nil)

// WithSize returns a copy of x whose Sum and SumIn append size bytes. The output stream is unchanged. It panics if
// size is not positive.
func WithSize(x XOF, size int) XOF {
	if size <= 0 {
		panic("sakura: non-positive digest size")
	}

	r, ok := x.(interface{ withSize(size int) XOF })
	if !ok {
		panic("sakura: WithSize called with a foreign XOF")
	}
	return r.withSize(size)
}

func (d *digest[E]) withSize(size int) XOF {
	return &digest[E]{e: d.e.Clone(), size: size}
}
