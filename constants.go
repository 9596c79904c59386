/*
 * constants.go, part of gothermo.
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

// Constants is the table of physical constants used by every component.
// It is passed by value, so nobody can change it under somebody else's feet.
type Constants struct {
	KB   float64 //Boltzmann constant, eV/K
	HBar float64 //Reduced Planck constant, eV s
	E2C  float64 //Elementary charge, C (also J per eV)
	Eps0 float64 //Vacuum permittivity, F/m
	Me   float64 //Electron rest mass, kg
}

// DefaultConstants returns the CODATA 2014 values.
func DefaultConstants() Constants {
	return Constants{
		KB:   8.617330350e-5,
		HBar: 6.582119e-16,
		E2C:  1.6021765e-19,
		Eps0: 8.854187817e-12,
		Me:   9.10938356e-31,
	}
}

// KT returns kB*T in eV.
func (c Constants) KT(T float64) float64 {
	return c.KB * T
}

// HBarSI returns the reduced Planck constant in J s.
func (c Constants) HBarSI() float64 {
	return c.HBar * c.E2C
}
