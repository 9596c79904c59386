/*
 * tio.go, part of gothermo.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package tio reads the tables that feed a calculation (band energies, densities of states,
// lifetime curves, measured carrier concentrations) and writes the results as plain text
// tables. Files whose names end in ".zst" or ".gz" are transparently decompressed when read
// and compressed when written.
package tio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	thermo "github.com/rmera/gothermo"
)

// Error is the error type of the package. It unwraps to thermo.ErrShape when the
// contents of a file can't be understood.
type Error struct {
	message  string
	filename string //the file with problems, or empty string if none.
	deco     []string
	kind     error
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("tio: %s", err.message)
	}
	return fmt.Sprintf("tio: file %s: %s", err.filename, err.message)
}

// Decorate adds the caller to the chain and returns the chain.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error.
func (err Error) FileName() string { return err.filename }

func (err Error) Unwrap() error { return err.kind }

func formatError(filename, caller, format string, args ...interface{}) Error {
	return Error{message: fmt.Sprintf(format, args...), filename: filename, deco: []string{caller}, kind: thermo.ErrShape}
}

func ioError(filename, caller string, err error) Error {
	return Error{message: err.Error(), filename: filename, deco: []string{caller}, kind: err}
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Open opens the file for reading, decompressing it if the name ends in .zst or .gz.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, ioError(name, "Open", err)
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, ioError(name, "Open", err)
		}
		return &readCloser{Reader: z, closers: []func() error{func() error { z.Close(); return nil }, f.Close}}, nil
	case strings.HasSuffix(name, ".gz"):
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, ioError(name, "Open", err)
		}
		return &readCloser{Reader: z, closers: []func() error{z.Close, f.Close}}, nil
	}
	return f, nil
}

type writeCloser struct {
	io.Writer
	closers []func() error
}

func (w *writeCloser) Close() error {
	var err error
	for _, c := range w.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Create creates the file for writing, compressing it if the name ends in .zst or .gz.
// Closing the returned writer flushes the compressor and closes the file.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, ioError(name, "Create", err)
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		z, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, ioError(name, "Create", err)
		}
		return &writeCloser{Writer: z, closers: []func() error{z.Close, f.Close}}, nil
	case strings.HasSuffix(name, ".gz"):
		z := gzip.NewWriter(f)
		return &writeCloser{Writer: z, closers: []func() error{z.Close, f.Close}}, nil
	}
	return f, nil
}
