package testdata

// ErrReader is an io.Reader which always fails with Err.
type ErrReader struct {
	Err error
}

func (e *ErrReader) Read(_ []byte) (n int, err error) {
	return 0, e.Err
}
