package tokenizer

import (
	"fmt"
	"os"
)

// ReadFileFunc loads an entire file into memory. os.ReadFile is the default.
type ReadFileFunc func(path string) ([]byte, error)

// source is the text a Scanner reads from. It either borrows a caller's
// buffer or owns one it loaded itself; in both cases release drops it once.
type source struct {
	data  []byte
	owned bool
	freed bool
}

func borrowSource(data []byte) *source {
	return &source{data: data}
}

func loadSource(path string, read ReadFileFunc) (*source, error) {
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	if data == nil {
		data = []byte{}
	}
	return &source{data: data, owned: true}, nil
}

// size is zero once released.
func (s *source) size() int {
	return len(s.data)
}

// slice returns the view data[off:off+n], clamped to the buffer. Capacity
// is capped so appends cannot write into the source.
func (s *source) slice(off, n int) []byte {
	if off < 0 {
		off = 0
	}
	if off > len(s.data) {
		off = len(s.data)
	}
	end := off + n
	if end > len(s.data) {
		end = len(s.data)
	}
	return s.data[off:end:end]
}

func (s *source) release() {
	if s.freed {
		return
	}
	s.freed = true
	s.data = nil
}
