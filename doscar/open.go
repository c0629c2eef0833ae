/*
 * open.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package doscar

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Same suffix-based decompression scheme as the procar package. DOSCAR files
//are much smaller than PROCARs, but runs archived with their outputs
//compressed should read the same way everywhere.

type zstdql struct {
	closeql func()
	*zstd.Decoder
}

// Close closes the decoder. It can not be used after this call.
func (z zstdql) Close() error {
	z.closeql()
	return nil
}

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
			return nil, err
		}
		return &stacked{r, f}, nil
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		r, err := zstd.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stacked{zstdql{r.Close, r}, f}, nil
	}
	return f, nil
}
