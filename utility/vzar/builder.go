// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vzar

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// NewBuilder creates a Builder for a new archive. Do not fill the Index in
// the header, it is computed when the archive is written out.
func NewBuilder(header Header) *Builder {
	header.Index = nil
	return &Builder{header: header}
}

// Builder assembles a vzar archive. Archives are immutable once written, so
// the Builder is the only way to create one. Add compresses each asset as
// it arrives; WriteTo lays out the index and bundles everything together.
type Builder struct {
	header Header

	mutex   sync.Mutex
	entries []pendingEntry
}

type pendingEntry struct {
	name string
	size int64
	blob []byte
}

// Add compresses the contents of r and schedules them under the given
// name. It blocks until lz4 finishes and is safe to call from multiple
// goroutines.
func (b *Builder) Add(name string, r io.Reader) error {
	var blob bytes.Buffer
	zw := lz4.NewWriter(&blob)
	size, err := io.Copy(zw, r)
	if err != nil {
		return fmt.Errorf("vzar: compressing %q: %w", name, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("vzar: compressing %q: %w", name, err)
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	for _, e := range b.entries {
		if e.name == name {
			return fmt.Errorf("vzar: duplicate entry %q", name)
		}
	}
	b.entries = append(b.entries, pendingEntry{name: name, size: size, blob: blob.Bytes()})
	return nil
}

// WriteTo writes the complete archive to w and implements io.WriterTo.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	header := b.header
	var offset int64
	for _, e := range b.entries {
		header.Index = append(header.Index, Entry{
			Name:           e.name,
			Offset:         offset,
			Size:           e.size,
			CompressedSize: int64(len(e.blob)),
		})
		offset += int64(len(e.blob))
	}

	rawHeader, err := encode(header)
	if err != nil {
		return 0, err
	}

	var written int64
	for _, chunk := range [][]byte{magic[:], putHeaderSize(int64(len(rawHeader))), rawHeader} {
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	for _, e := range b.entries {
		n, err := w.Write(e.blob)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
