/*
 * tables.go, part of gothermo.
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

package tio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

// lines calls f with the fields of every line of r after the first skip ones. Empty lines
// and lines starting with # are ignored. f gets the line number (from 1).
func lines(r io.Reader, skip int, f func(n int, fields []string) error) error {
	in := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if n > skip {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
				if ferr := f(n, strings.Fields(trimmed)); ferr != nil {
					return ferr
				}
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

func parseFloats(fields []string, dst []float64) ([]float64, error) {
	dst = dst[:0]
	for _, v := range fields {
		//Fortran codes sometimes write 1.0D-03
		x, err := strconv.ParseFloat(strings.Replace(strings.Replace(v, "D", "E", 1), "d", "e", 1), 64)
		if err != nil {
			return nil, err
		}
		dst = append(dst, x)
	}
	return dst, nil
}

// ReadColumns reads a whitespace-separated numeric table, skipping the first skip lines,
// and returns it as a matrix with one row per line. Every row must have the same number of columns.
func ReadColumns(r io.Reader, skip int) (*mat.Dense, error) {
	var data []float64
	cols := -1
	rows := 0
	var buf []float64
	err := lines(r, skip, func(n int, fields []string) error {
		var err error
		buf, err = parseFloats(fields, buf)
		if err != nil {
			return formatError("", "ReadColumns", "line %d: %s", n, err.Error())
		}
		if cols < 0 {
			cols = len(buf)
		}
		if len(buf) != cols {
			return formatError("", "ReadColumns", "line %d has %d columns, expected %d", n, len(buf), cols)
		}
		data = append(data, buf...)
		rows++
		return nil
	})
	if err != nil {
		if e, ok := err.(Error); ok {
			return nil, e
		}
		return nil, ioError("", "ReadColumns", err)
	}
	if rows == 0 {
		return nil, formatError("", "ReadColumns", "no data")
	}
	return mat.NewDense(rows, cols, data), nil
}

// ReadColumnsFile is ReadColumns on a file, possibly compressed.
func ReadColumnsFile(name string, skip int) (*mat.Dense, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ReadColumns(f, skip)
	if e, ok := err.(Error); ok {
		e.filename = name
		return nil, e
	}
	return m, err
}

// ReadPairs reads columns x and y of a table, as for an (energy, lifetime) or a (temperature,
// concentration) curve. Negative column indexes count from the end, -1 being the last column.
func ReadPairs(r io.Reader, skip, x, y int) (xs, ys []float64, err error) {
	m, err := ReadColumns(r, skip)
	if err != nil {
		return nil, nil, err
	}
	_, c := m.Dims()
	if x < 0 {
		x += c
	}
	if y < 0 {
		y += c
	}
	if x < 0 || y < 0 || x >= c || y >= c {
		return nil, nil, formatError("", "ReadPairs", "columns %d and %d requested from a %d-column table", x, y, c)
	}
	return mat.Col(nil, x, m), mat.Col(nil, y, m), nil
}

// ReadPairsFile is ReadPairs on a file, possibly compressed.
func ReadPairsFile(name string, skip, x, y int) (xs, ys []float64, err error) {
	f, err := Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	xs, ys, err = ReadPairs(f, skip, x, y)
	if e, ok := err.(Error); ok {
		e.filename = name
		return nil, nil, e
	}
	return xs, ys, err
}

// WriteTable writes the columns as a text table, with a header of comment lines giving the run
// identifier (a new one if runID is empty) and the column names. ReadColumns reads it back.
func WriteTable(w io.Writer, runID string, names []string, cols ...[]float64) error {
	if len(names) != len(cols) {
		return formatError("", "WriteTable", "%d names for %d columns", len(names), len(cols))
	}
	rows := 0
	for i, c := range cols {
		if i == 0 {
			rows = len(c)
		}
		if len(c) != rows {
			return formatError("", "WriteTable", "column %s has %d rows, expected %d", names[i], len(c), rows)
		}
	}
	if runID == "" {
		runID = uuid.New().String()
	}
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "# run %s\n", runID)
	fmt.Fprintf(b, "# %s\n", strings.Join(names, " "))
	for i := 0; i < rows; i++ {
		for j, c := range cols {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(c[i], 'e', 10, 64))
		}
		b.WriteByte('\n')
	}
	if err := b.Flush(); err != nil {
		return ioError("", "WriteTable", err)
	}
	return nil
}

// WriteTableFile is WriteTable on a new file, compressed if the name ends in .zst or .gz.
func WriteTableFile(name, runID string, names []string, cols ...[]float64) error {
	f, err := Create(name)
	if err != nil {
		return err
	}
	if err = WriteTable(f, runID, names, cols...); err != nil {
		f.Close()
		if e, ok := err.(Error); ok {
			e.filename = name
			return e
		}
		return err
	}
	if err = f.Close(); err != nil {
		return ioError(name, "WriteTableFile", err)
	}
	return nil
}
