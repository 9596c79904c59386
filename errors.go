/*
 * errors.go, part of gothermo.
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

package thermo

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else. All errors also unwrap to one of the
// sentinel errors below, so errors.Is works as usual.
type Error interface {
	Error() string
	Decorate(string) []string //adds the caller name to the chain, returns the chain. An empty string only returns the chain.
}

// Sentinels. Every error returned by the library unwraps to one of these.
var (
	ErrShape          = errors.New("input shape error")                   //mismatched lengths, non-monotonic grids, NaN/Inf in inputs
	ErrTemperature    = errors.New("non-positive or non-finite temperature")
	ErrValley         = errors.New("band samples do not bracket a valley")
	ErrNonConvergence = errors.New("fermi level did not converge")
	ErrBracket        = errors.New("target concentration can't be bracketed")
	ErrDegenerate     = errors.New("zero transport moment")
	ErrWeight         = errors.New("invalid mechanism weight")
)

// TError is the general error type of the package.
type TError struct {
	message string
	kind    error
	deco    []string
}

func newError(kind error, caller string, format string, args ...interface{}) *TError {
	return &TError{message: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}}
}

func (err *TError) Error() string {
	return fmt.Sprintf("goThermo/%s: %s: %s", strings.Join(err.deco, "/"), err.kind.Error(), err.message)
}

func (err *TError) Unwrap() error { return err.kind }

func (err *TError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// ConvergenceError is returned when the Fermi level root finder hits its iteration
// cap. It is never returned together with a value, so a caller that gets it knows
// the level for that temperature was not found (and can retry with a wider bracket
// or a looser tolerance).
type ConvergenceError struct {
	Index       int     //index of the temperature in the series
	Temperature float64 //K
	Ef          float64 //last estimate, eV
	RelErr      float64 //last relative error in the concentration
	Iterations  int
	deco        []string
}

func (err *ConvergenceError) Error() string {
	return fmt.Sprintf("goThermo/%s: %s: T=%g K (index %d), last Ef=%g eV, relative error %g after %d iterations",
		strings.Join(err.deco, "/"), ErrNonConvergence.Error(), err.Temperature, err.Index, err.Ef, err.RelErr, err.Iterations)
}

func (err *ConvergenceError) Unwrap() error { return ErrNonConvergence }

func (err *ConvergenceError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// DegenerateError signals that the zeroth transport moment vanished for one temperature,
// so the Seebeck coefficient is undefined there.
type DegenerateError struct {
	Index       int
	Temperature float64
	Moment      float64
	deco        []string
}

func (err *DegenerateError) Error() string {
	return fmt.Sprintf("goThermo/%s: %s: T=%g K (index %d), zeroth moment %g",
		strings.Join(err.deco, "/"), ErrDegenerate.Error(), err.Temperature, err.Index, err.Moment)
}

func (err *DegenerateError) Unwrap() error { return ErrDegenerate }

func (err *DegenerateError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate is a helper function that decorates the error with the caller name, if
// the error implements Error. It returns the same error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
