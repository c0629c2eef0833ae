/*
 * open.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package procar

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//PROCAR files from production runs are often kept compressed; the readers
//stack a decompressor over the raw file based on the name suffix, so the
//single forward pass works the same either way.

//*zstd.Decoder does not implement io.ReadCloser (its Close returns nothing),
//so it needs this little wrapper.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

// Close closes the decoder. It can not be used after this call.
func (z zstdql) Close() error {
	z.closeql()
	return nil
}

//stacked ties the life of the decompressor to that of the underlying file.
type stacked struct {
	io.ReadCloser
	f *os.File
}

func (s *stacked) Close() error {
	s.ReadCloser.Close()
	return s.f.Close()
}

// openReader opens name for streaming, transparently decompressing .gz and
// .zst files.
func openReader(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		r, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"openReader"}, true}
		}
		return &stacked{r, f}, nil
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		r, err := zstd.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"openReader"}, true}
		}
		return &stacked{zstdql{r.Close, r}, f}, nil
	}
	return f, nil
}
