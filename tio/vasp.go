/*
 * vasp.go, part of gothermo.
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
	"errors"
	"io"
	"strconv"

	"github.com/rmera/gothermo/lattice"
	"gonum.org/v1/gonum/mat"
)

// Bands is a band structure as read from an EIGENVAL-like file.
type Bands struct {
	K        *lattice.Matrix //fractional coordinates of the reciprocal lattice, one k-point per row
	Energies *mat.Dense      //eV, one row per k-point, one column per band
}

// ReadBands reads an EIGENVAL-like file: after skip header lines, blocks made of a k-point line
// (three fractional coordinates and a weight) followed by one line per band (index, energy, and
// possibly occupations). Every k-point must have the same number of bands.
func ReadBands(r io.Reader, skip int) (*Bands, error) {
	var kp []float64
	var energies [][]float64
	var buf []float64
	err := lines(r, skip, func(n int, fields []string) error {
		_, intErr := strconv.Atoi(fields[0])
		if len(fields) == 4 && intErr != nil {
			var err error
			buf, err = parseFloats(fields, buf)
			if err != nil {
				return formatError("", "ReadBands", "line %d: %s", n, err.Error())
			}
			kp = append(kp, buf[:3]...)
			energies = append(energies, nil)
			return nil
		}
		if intErr != nil || len(fields) < 2 {
			return formatError("", "ReadBands", "line %d is neither a k-point nor a band energy", n)
		}
		if len(energies) == 0 {
			return formatError("", "ReadBands", "band energy in line %d before any k-point", n)
		}
		e, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return formatError("", "ReadBands", "line %d: %s", n, err.Error())
		}
		last := len(energies) - 1
		energies[last] = append(energies[last], e)
		return nil
	})
	if err != nil {
		if e, ok := err.(Error); ok {
			return nil, e
		}
		return nil, ioError("", "ReadBands", err)
	}
	if len(energies) == 0 {
		return nil, formatError("", "ReadBands", "no k-points")
	}
	nb := len(energies[0])
	E := mat.NewDense(len(energies), max(nb, 1), nil)
	for i, e := range energies {
		if len(e) != nb || nb == 0 {
			return nil, formatError("", "ReadBands", "k-point %d has %d bands, the first one has %d", i, len(e), nb)
		}
		E.SetRow(i, e)
	}
	K, err := lattice.NewMatrix(kp)
	if err != nil {
		return nil, formatError("", "ReadBands", "%s", err.Error())
	}
	return &Bands{K: K, Energies: E}, nil
}

// ReadBandsFile is ReadBands on a file, possibly compressed.
func ReadBandsFile(name string, skip int) (*Bands, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := ReadBands(f, skip)
	if e, ok := err.(Error); ok {
		e.filename = name
		return nil, e
	}
	return b, err
}

var errStop = errors.New("stop")

// ReadDoS reads the first n rows of a DOSCAR-like table after skip header lines, and returns its
// first two columns, the energies (eV) and the states per eV and cell. If n is 0 or less it reads
// until the number of columns changes, which in a DOSCAR is where the projected densities begin.
func ReadDoS(r io.Reader, skip, n int) (energies, counts []float64, err error) {
	var buf []float64
	cols := -1
	err = lines(r, skip, func(line int, fields []string) error {
		if n > 0 && len(energies) == n {
			return errStop
		}
		if cols < 0 {
			cols = len(fields)
		}
		if len(fields) != cols {
			if n <= 0 {
				return errStop
			}
			return formatError("", "ReadDoS", "line %d has %d columns, expected %d", line, len(fields), cols)
		}
		if cols < 2 {
			return formatError("", "ReadDoS", "line %d has less than 2 columns", line)
		}
		var err error
		buf, err = parseFloats(fields, buf)
		if err != nil {
			return formatError("", "ReadDoS", "line %d: %s", line, err.Error())
		}
		energies = append(energies, buf[0])
		counts = append(counts, buf[1])
		return nil
	})
	if err != nil && err != errStop {
		if e, ok := err.(Error); ok {
			return nil, nil, e
		}
		return nil, nil, ioError("", "ReadDoS", err)
	}
	if n > 0 && len(energies) < n {
		return nil, nil, formatError("", "ReadDoS", "%d rows requested, %d found", n, len(energies))
	}
	if len(energies) == 0 {
		return nil, nil, formatError("", "ReadDoS", "no data")
	}
	return energies, counts, nil
}

// ReadDoSFile is ReadDoS on a file, possibly compressed.
func ReadDoSFile(name string, skip, n int) (energies, counts []float64, err error) {
	f, err := Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	energies, counts, err = ReadDoS(f, skip, n)
	if e, ok := err.(Error); ok {
		e.filename = name
		return nil, nil, e
	}
	return energies, counts, err
}
