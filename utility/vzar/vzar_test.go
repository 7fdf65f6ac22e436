// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vzar_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vizardry/vizardry/utility/vzar"
)

var (
	testShader1 = "#version 330 core\nvoid main() { gl_FragColor = vec4(1.0); }\n"
	testShader2 = strings.Repeat("// padding line to make this entry compress\n", 64)
)

func buildArchive(t *testing.T) *vzar.Archive {
	t.Helper()
	builder := vzar.NewBuilder(vzar.Header{
		Creator:  "vizardry",
		Created:  time.Now().Unix(),
		Revision: 1,
	})
	if err := builder.Add("shaders/plasma.frag", strings.NewReader(testShader1)); err != nil {
		t.Fatal(err)
	}
	if err := builder.Add("shaders/padding.frag", strings.NewReader(testShader2)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	written, err := builder.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if written != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", written, buf.Len())
	}

	ar, err := vzar.Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	return ar
}

func TestBuildAndReadAll(t *testing.T) {
	ar := buildArchive(t)

	got, err := ar.ReadAll("shaders/plasma.frag")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != testShader1 {
		t.Errorf("entry contents = %q", got)
	}

	got, err = ar.ReadAll("shaders/padding.frag")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != testShader2 {
		t.Error("large entry round trip failed")
	}
}

func TestStreamingReader(t *testing.T) {
	ar := buildArchive(t)

	r, err := ar.Open("shaders/padding.frag")
	if err != nil {
		t.Fatal(err)
	}
	if r.Size() != int64(len(testShader2)) {
		t.Errorf("Size = %d, want %d", r.Size(), len(testShader2))
	}

	var out bytes.Buffer
	if _, err := io.CopyBuffer(&out, r, make([]byte, 7)); err != nil {
		t.Fatal(err)
	}
	if out.String() != testShader2 {
		t.Error("streamed contents differ")
	}
}

func TestConcurrentReads(t *testing.T) {
	ar := buildArchive(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ar.ReadAll("shaders/plasma.frag")
			if err != nil || string(got) != testShader1 {
				t.Errorf("concurrent read: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestIndexAndErrors(t *testing.T) {
	ar := buildArchive(t)

	header := ar.Header()
	if header.Creator != "vizardry" || len(header.Index) != 2 {
		t.Errorf("header = %+v", header)
	}
	entry, err := ar.Entry("shaders/plasma.frag")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Size != int64(len(testShader1)) {
		t.Errorf("entry size = %d", entry.Size)
	}

	if _, err := ar.ReadAll("missing"); !errors.Is(err, vzar.ErrNotFound) {
		t.Errorf("missing entry error = %v", err)
	}
}

func TestDuplicateEntryRejected(t *testing.T) {
	builder := vzar.NewBuilder(vzar.Header{Creator: "vizardry"})
	if err := builder.Add("same", strings.NewReader("a")); err != nil {
		t.Fatal(err)
	}
	if err := builder.Add("same", strings.NewReader("b")); err == nil {
		t.Error("duplicate entry name must be rejected")
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	if _, err := vzar.Open(bytes.NewReader([]byte("definitely not an archive"))); !errors.Is(err, vzar.ErrFormat) {
		t.Errorf("garbage error = %v", err)
	}
	if _, err := vzar.Open(bytes.NewReader([]byte("VZ"))); !errors.Is(err, vzar.ErrFormat) {
		t.Errorf("short file error = %v", err)
	}
}

func TestOpenRejectsOversizedHeader(t *testing.T) {
	// Valid magic followed by a length field claiming a multi-gigabyte
	// header. Open must refuse before allocating for it.
	raw := append([]byte("VZAR"), []byte{0, 0, 0, 0, 1, 0, 0, 0}...)
	if _, err := vzar.Open(bytes.NewReader(raw)); !errors.Is(err, vzar.ErrFormat) {
		t.Errorf("oversized header error = %v", err)
	}
}
