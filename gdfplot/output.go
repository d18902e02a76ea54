// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aclements/gdfplot/facet"
	"github.com/aclements/gdfplot/render"
)

// create opens path for writing, or returns standard output if path
// is "".
func create(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// writeFigures draws figs with backend to path. Backends that can put
// several figures in one document get all of them at once. Otherwise
// each figure goes to its own file named by figurePath, and the
// files are written concurrently.
func writeFigures(backend render.Backend, figs []*facet.Figure, path string) error {
	if multi, ok := backend.(render.MultiBackend); ok {
		return writeFile(path, func(w io.Writer) error {
			return multi.DrawAll(w, figs)
		})
	}
	if len(figs) == 1 {
		return writeFile(path, func(w io.Writer) error {
			return backend.Draw(w, figs[0])
		})
	}
	if path == "" {
		return fmt.Errorf("%d figures need an output file; use -o", len(figs))
	}

	var g errgroup.Group
	for i, fig := range figs {
		i, fig := i, fig
		g.Go(func() error {
			return writeFile(figurePath(path, i), func(w io.Writer) error {
				return backend.Draw(w, fig)
			})
		})
	}
	return g.Wait()
}

// writeFile draws a document and writes it to path, or to standard
// output if path is "". Nothing is written if draw fails, and a
// partially written file is removed.
func writeFile(path string, draw func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		return err
	}
	if path == "" {
		_, err := buf.WriteTo(os.Stdout)
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// figurePath returns the output path of the i'th figure (from 0):
// "out.svg" becomes "out-1.svg".
func figurePath(path string, i int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i+1, ext)
}
