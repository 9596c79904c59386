/*
 * lattice.go, part of gothermo.
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

/*Package lattice implements a Matrix type representing a row-major set of 3D vectors (i.e. a Nx3 matrix),
used for lattice vectors and k-points, and the conversions between real, reciprocal and cartesian
k-space that the band structure processing needs.
*/
package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 1e-300 //volumes equal or smaller than this are considered zero.

// Matrix is a set of vectors in 3D space. Within the package a "vector" is a row vector,
// i.e. one lattice vector or one k-point.
type Matrix struct {
	*mat.Dense
}

// NewMatrix generates and returns a Matrix with 3 columns from data. data is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

// Vec returns the i-th vector as an r3.Vec
func (F *Matrix) Vec(i int) r3.Vec {
	row := F.RawRowView(i)
	return r3.Vec{X: row[0], Y: row[1], Z: row[2]}
}

// SetVec sets the i-th vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	row := F.RawRowView(i)
	row[0], row[1], row[2] = v.X, v.Y, v.Z
}

// FCC returns the primitive vectors of a face-centered cubic lattice with
// conventional lattice constant a (m): a/2(1,1,0), a/2(0,1,1), a/2(1,0,1).
func FCC(a float64) *Matrix {
	h := a / 2
	L, _ := NewMatrix([]float64{
		h, h, 0,
		0, h, h,
		h, 0, h,
	})
	return L
}

// Reciprocal returns the reciprocal lattice vectors (rows) of the real-space lattice
// vectors given as the 3 rows of real: b1 = (a2 x a3)/(a1 . (a2 x a3)) and cyclic
// permutations. The 2 pi factor is not included.
func Reciprocal(real *Matrix) (*Matrix, error) {
	if real == nil || real.NVecs() != 3 {
		return nil, Error{"need exactly 3 real-space lattice vectors", []string{"Reciprocal"}}
	}
	a := [3]r3.Vec{real.Vec(0), real.Vec(1), real.Vec(2)}
	vol := r3.Dot(a[0], r3.Cross(a[1], a[2]))
	if math.Abs(vol) <= appzero || math.IsNaN(vol) {
		return nil, Error{fmt.Sprintf("lattice vectors are coplanar (volume %g)", vol), []string{"Reciprocal"}}
	}
	B := Zeros(3)
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		//a_i . (a_j x a_k) is the same volume for every cyclic permutation.
		B.SetVec(i, r3.Scale(1/vol, r3.Cross(a[j], a[k])))
	}
	return B, nil
}

// Volume returns the volume of the cell spanned by the 3 vectors of L.
func Volume(L *Matrix) float64 {
	return math.Abs(r3.Dot(L.Vec(0), r3.Cross(L.Vec(1), L.Vec(2))))
}

// Cartesian returns the k-points given in fractional coordinates of the reciprocal lattice
// (one per row of frac) in cartesian coordinates, 2*pi*frac*recip, in the inverse units of
// the real-space lattice (1/m if the lattice was given in m).
func Cartesian(frac, recip *Matrix) (*Matrix, error) {
	if frac == nil || recip == nil || recip.NVecs() != 3 {
		return nil, Error{"need fractional k-points and 3 reciprocal vectors", []string{"Cartesian"}}
	}
	K := Zeros(frac.NVecs())
	//the embedded Dense has to be passed, gonum sees the wrapper as a different matrix
	K.Dense.Mul(frac.Dense, recip.Dense)
	K.Dense.Scale(2*math.Pi, K.Dense)
	return K, nil
}

// Distances returns the euclidean distance of each vector in K to the ref-th one.
func Distances(K *Matrix, ref int) ([]float64, error) {
	n := K.NVecs()
	if ref < 0 || ref >= n {
		return nil, Error{fmt.Sprintf("reference index %d out of range [0,%d)", ref, n), []string{"Distances"}}
	}
	r := K.Vec(ref)
	d := make([]float64, n)
	for i := range d {
		d[i] = r3.Norm(r3.Sub(K.Vec(i), r))
	}
	return d, nil
}

//Errors

// Error is the error type of this package. It is the same as thermo.Error, but avoids a circular import.
type Error struct {
	message string
	deco    []string
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("goThermo/lattice: %s", err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
