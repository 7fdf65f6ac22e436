// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vzar implements the vizardry asset archive, used to ship shader
// sources and other node resources alongside a project. The index is stored
// uncompressed up front so entries can be located without scanning, while
// every entry is an independent lz4 frame that streams straight from its
// offset. Archives can be read from concurrently.
package vzar

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
)

// package errors
var (
	ErrFormat   = errors.New("vzar: corrupted or not a vzar archive")
	ErrNotFound = errors.New("vzar: no such entry")
)

var magic = [4]byte{'V', 'Z', 'A', 'R'}

// headerSizeLength is the width of the fixed little-endian field that
// carries the encoded header length.
const headerSizeLength = 8

// maxHeaderSize bounds the index allocation when opening an archive, so a
// corrupted length field can not demand arbitrary memory. 16 MiB of gob
// indexes far exceeds any real archive.
const maxHeaderSize = 16 << 20

// Entry locates one asset in the archive. Offset is relative to the start
// of the data section.
type Entry struct {
	Name           string
	Offset         int64
	Size           int64
	CompressedSize int64
}

// Header describes the archive and indexes its entries.
type Header struct {
	Creator  string
	Created  int64
	Revision int64
	Index    []Entry
}

func encode(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(obj interface{}, raw []byte) error {
	return gob.NewDecoder(bytes.NewReader(raw)).Decode(obj)
}

func putHeaderSize(size int64) []byte {
	raw := make([]byte, headerSizeLength)
	binary.LittleEndian.PutUint64(raw, uint64(size))
	return raw
}

func headerSize(raw []byte) int64 {
	return int64(binary.LittleEndian.Uint64(raw))
}
