// Common package contains helpers shared by several tools.
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	g.Reader.Close()
	return g.f.Close()
}

type plainFile struct {
	*bufio.Reader
	f *os.File
}

func (p plainFile) Close() error {
	return p.f.Close()
}

// OpenInput opens path for reading and transparently decompresses it
// when the file starts with the gzip magic bytes.
func OpenInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gzipFile{Reader: gr, f: f}, nil
	}
	return plainFile{Reader: br, f: f}, nil
}

// CreateOutput creates path, truncating any existing file.
func CreateOutput(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}
