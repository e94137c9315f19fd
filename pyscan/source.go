package pyscan

import (
	"bytes"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
)

// Source is one unit of Python source text.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string

	// Read returns the full text. Any underlying handle is released before
	// Read returns.
	Read() ([]byte, error)
}

type fileSource struct {
	path string
}

// FileSource reads the file at path.
func FileSource(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Name() string { return s.path }

func (s fileSource) Read() ([]byte, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Errorf("open source: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Errorf("read %s: %w", s.path, err)
	}
	return normalize(data), nil
}

type readerSource struct {
	name string
	r    io.Reader
}

// ReaderSource reads r until EOF, typically standard input.
func ReaderSource(name string, r io.Reader) Source {
	return readerSource{name: name, r: r}
}

func (s readerSource) Name() string { return s.name }

func (s readerSource) Read() ([]byte, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, errors.Errorf("read %s: %w", s.name, err)
	}
	return normalize(data), nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalize applies universal newline translation and drops a leading
// byte order mark, matching how Python reads source in text mode.
func normalize(data []byte) []byte {
	data = bytes.TrimPrefix(data, utf8BOM)
	if bytes.IndexByte(data, '\r') < 0 {
		return data
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
}
