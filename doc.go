/*
 * doc.go, part of gothermo.
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

/*
Package thermo is the main package of the goThermo library. It computes
the electronic transport coefficients (electrical conductivity, Seebeck
coefficient, power factor and electronic thermal conductivity) of a doped
semiconductor from first-principles band data, using the semiclassical
Boltzmann transport equation in the relaxation time approximation.

	**goThermo Capabilities**

    Fermi-Dirac occupation and Fermi window on a shared energy grid, for
	a whole temperature series at once.

    Group velocity of a conduction valley from k-resolved band energies.

    Density of states from binned state counts, with an effective-medium
	correction for pores or inclusions.

    Self-consistent electrochemical potential for a target carrier
	concentration: an analytic seed (Joyce-Dixon or tabulated Fermi-Dirac
	integrals, see the fdint package) refined with a bracketed root finder.

    Relaxation times for acoustic/intervalley phonons (parabolic and
	non-parabolic bands), strongly screened ionized impurities and any
	externally supplied lifetime curve, combined with Matthiessen's rule.

    Transport integrals and coefficients.

    A scenario pipeline that runs all of the above for one material and
	several doping/porosity variants.

The scan package sweeps a phenomenological scattering mechanism over a
2D parameter grid. The tio and tplot packages are thin file and plotting
adapters, the lattice package handles reciprocal lattices.

Units: energies in eV, temperatures in K, concentrations in 1/m^3, density
of states in 1/(eV m^3), velocities in m/s, times in s, everything else
in SI.

*/
package thermo
