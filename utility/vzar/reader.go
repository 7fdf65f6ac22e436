// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vzar

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// Open reads the archive layout from r. It validates the magic and decodes
// the index; entry data is only touched when an entry is opened.
func Open(r io.ReaderAt) (*Archive, error) {
	head := make([]byte, len(magic))
	if n, err := r.ReadAt(head, 0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	} else if n < len(magic) || !bytes.Equal(head, magic[:]) {
		return nil, ErrFormat
	}

	sizeRaw := make([]byte, headerSizeLength)
	if n, err := r.ReadAt(sizeRaw, int64(len(magic))); err != nil || n < headerSizeLength {
		return nil, ErrFormat
	}
	size := headerSize(sizeRaw)
	if size <= 0 || size > maxHeaderSize {
		return nil, ErrFormat
	}

	rawHeader := make([]byte, size)
	if n, err := r.ReadAt(rawHeader, int64(len(magic)+headerSizeLength)); err != nil || int64(n) < size {
		return nil, ErrFormat
	}
	var header Header
	if err := decode(&header, rawHeader); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	ar := &Archive{
		reader:    r,
		header:    header,
		dataStart: int64(len(magic)+headerSizeLength) + size,
		entries:   make(map[string]Entry, len(header.Index)),
	}
	for _, e := range header.Index {
		ar.entries[e.Name] = e
	}
	return ar, nil
}

// Archive provides concurrent access to the entries of a vzar file. Every
// opened entry reads through its own section of the underlying io.ReaderAt,
// so readers never interfere with each other.
type Archive struct {
	reader    io.ReaderAt
	header    Header
	dataStart int64
	entries   map[string]Entry
}

// Header returns the archive metadata, including the entry index.
func (a *Archive) Header() Header {
	return a.header
}

// Entry returns the index entry with the given name.
func (a *Archive) Entry(name string) (Entry, error) {
	e, ok := a.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e, nil
}

// Open returns a reader that streams and decompresses the named entry.
func (a *Archive) Open(name string) (*Reader, error) {
	e, err := a.Entry(name)
	if err != nil {
		return nil, err
	}
	section := io.NewSectionReader(a.reader, a.dataStart+e.Offset, e.CompressedSize)
	return &Reader{entry: e, zr: lz4.NewReader(section)}, nil
}

// ReadAll returns the entire decompressed contents of the named entry.
func (a *Archive) ReadAll(name string) ([]byte, error) {
	r, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, r.entry.Size)
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		data = append(data, buf[:n]...)
		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Reader streams one decompressed entry out of an Archive.
type Reader struct {
	entry Entry
	zr    *lz4.Reader
}

// Size returns the decompressed size of the entry.
func (r *Reader) Size() int64 {
	return r.entry.Size
}

// Read implements io.Reader with decompressed data.
func (r *Reader) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}
