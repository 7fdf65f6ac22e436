// Copyright (c) 2026 vizardry
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vizardry/vizardry/utility/vzar"
)

func init() {
	if u, err := user.Current(); err == nil {
		currentUserName = u.Name
	} else {
		currentUserName = "unknown"
	}
}

var (
	currentUserName string
	creator         = flag.String("creator", currentUserName, "Set the creator of the archive when packing")
	revision        = flag.Int64("revision", 1, "Archive revision number to create it with")
	pack            = flag.String("c", "", "Pack the given file/folder into an archive")
	extract         = flag.String("x", "", "Extract the named entry to stdout")
	list            = flag.Bool("l", false, "List the archive index")
	archiveFile     = flag.String("f", "out.vzar", "Archive file to operate on")
)

func main() {
	flag.Parse()

	ops := 0
	for _, active := range []bool{*pack != "", *extract != "", *list} {
		if active {
			ops++
		}
	}
	if ops > 1 {
		log.Fatal("only one operation at a time")
	}

	switch {
	case *pack != "":
		if err := packFiles(); err != nil {
			log.Fatal(err)
		}
	case *extract != "":
		if err := extractEntry(); err != nil {
			log.Fatal(err)
		}
	case *list:
		if err := listEntries(); err != nil {
			log.Fatal(err)
		}
	default:
		flag.PrintDefaults()
	}
}

func packFiles() error {
	if _, err := os.Stat(*archiveFile); err == nil {
		return errors.New("destination file exists, will not overwrite")
	}

	builder := vzar.NewBuilder(vzar.Header{
		Creator:  *creator,
		Created:  time.Now().Unix(),
		Revision: *revision,
	})

	root := filepath.Clean(*pack)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		name, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return builder.Add(filepath.ToSlash(name), f)
	})
	if err != nil {
		return err
	}

	dst, err := os.Create(*archiveFile)
	if err != nil {
		return err
	}
	defer dst.Close()

	written, err := builder.WriteTo(dst)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"archive": *archiveFile,
		"bytes":   written,
	}).Info("archive written")
	return nil
}

func openArchive() (*vzar.Archive, *os.File, error) {
	f, err := os.Open(*archiveFile)
	if err != nil {
		return nil, nil, err
	}
	ar, err := vzar.Open(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return ar, f, nil
}

func extractEntry() error {
	ar, f, err := openArchive()
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := ar.Open(*extract)
	if err != nil {
		return err
	}
	_, err = io.Copy(os.Stdout, r)
	return err
}

func listEntries() error {
	ar, f, err := openArchive()
	if err != nil {
		return err
	}
	defer f.Close()

	header := ar.Header()
	fmt.Printf("creator=%s revision=%d entries=%d\n", header.Creator, header.Revision, len(header.Index))
	for _, e := range header.Index {
		fmt.Printf("%12d %12d %s\n", e.Size, e.CompressedSize, e.Name)
	}
	return nil
}
