/*
 * config.go, part of gothermo.
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

package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	thermo "github.com/rmera/gothermo"
	"github.com/rmera/gothermo/fdint"
	"github.com/rmera/gothermo/lattice"
	"github.com/rmera/gothermo/scan"
	"github.com/rmera/gothermo/tio"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/ini.v1"
)

// setup is everything a run of the program needs, as read from the configuration file.
type setup struct {
	Material  *thermo.Material
	Scenarios []thermo.Scenario
	Scan      *scanSetup //nil if no scan was requested
	Out       output
}

type scanSetup struct {
	Scenario    string //scenario whose kernel and lifetimes are scanned
	Temperature float64
	Options     scan.Options
}

type output struct {
	Dir      string
	Compress string //"", "zst" or "gz"
	Plots    bool
}

// table returns the path of a result table, with the compression extension if requested.
func (o output) table(name string) string {
	n := filepath.Join(o.Dir, name+".dat")
	if o.Compress != "" {
		n += "." + o.Compress
	}
	return n
}

// configureLog sets the level and format of l from the [log] section.
func configureLog(file *ini.File, l *log.Logger) error {
	sec := file.Section("log")
	level, err := log.ParseLevel(sec.Key("level").MustString("info"))
	if err != nil {
		return err
	}
	l.SetLevel(level)
	switch f := sec.Key("format").MustString("text"); f {
	case "json":
		l.SetFormatter(&log.JSONFormatter{})
	case "text":
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", f)
	}
	return nil
}

// load builds the setup from the configuration. Relative file names are taken from dir.
func load(file *ini.File, dir string, l *log.Logger) (*setup, error) {
	path := func(name string) string {
		if name == "" || filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}
	c := thermo.DefaultConstants()
	msec := file.Section("material")
	T, err := thermo.TemperatureRange(msec.Key("tmin").MustFloat64(300), msec.Key("tmax").MustFloat64(1200), msec.Key("tstep").MustFloat64(100))
	if err != nil {
		return nil, err
	}
	gsec := file.Section("grid")
	G, err := thermo.Linspace(gsec.Key("min").MustFloat64(0), gsec.Key("max").MustFloat64(1), gsec.Key("points").MustInt(2000))
	if err != nil {
		return nil, err
	}
	mass := msec.Key("mass").MustFloat64(1.08) * c.Me
	vmass := msec.Key("conductivity_mass").MustFloat64(msec.Key("mass").MustFloat64(1.08)) * c.Me
	alpha := msec.Key("alpha").MustFloat64(0)
	real := lattice.FCC(msec.Key("lattice").MustFloat64(5.431e-10))

	m := &thermo.Material{
		Name:       msec.Key("name").MustString("material"),
		Grid:       G,
		T:          T,
		Dielectric: msec.Key("dielectric").MustFloat64(11.7),
		Mass:       mass,
		Constants:  c,
		Log:        l,
	}
	if alpha > 0 {
		m.Alpha = make([]float64, len(T))
		for i := range m.Alpha {
			m.Alpha[i] = alpha
		}
	}

	//band structure
	bsec := file.Section("band")
	switch model := bsec.Key("model").MustString("parabolic"); model {
	case "parabolic":
		m.Velocity = thermo.ParabolicVelocity(G, vmass, c)
	case "kane":
		m.Velocity = thermo.KaneVelocity(G, vmass, alpha, c)
	case "file":
		bands, err := tio.ReadBandsFile(path(bsec.Key("file").String()), bsec.Key("skip").MustInt(7))
		if err != nil {
			return nil, err
		}
		B, err := thermo.NewBandStructure(bands.K, real, bands.Energies)
		if err != nil {
			return nil, err
		}
		V, err := B.Valley(thermo.ValleyOptions{Band: bsec.Key("band").MustInt(0), From: bsec.Key("from").MustInt(0), To: bsec.Key("to").MustInt(0)})
		if err != nil {
			return nil, err
		}
		m.Velocity = V.GroupVelocity(G, c)
	default:
		return nil, fmt.Errorf("unknown band model %q", model)
	}

	//density of states
	dsec := file.Section("dos")
	var d []float64
	switch model := dsec.Key("model").MustString("parabolic"); model {
	case "parabolic":
		d = thermo.ParabolicDoS(G, mass, c)
	case "kane":
		d = thermo.KaneDoS(G, mass, alpha, c)
	case "file":
		e, counts, err := tio.ReadDoSFile(path(dsec.Key("file").String()), dsec.Key("skip").MustInt(6), dsec.Key("rows").MustInt(0))
		if err != nil {
			return nil, err
		}
		D, err := thermo.NewDoS(G, thermo.DoSInput{
			Energies:   e,
			Counts:     counts,
			CellVolume: dsec.Key("cell_volume").MustFloat64(lattice.Volume(real)),
			Valley:     valleyBin(e, dsec.Key("valley_energy").MustFloat64(0)),
		}, 0)
		if err != nil {
			return nil, err
		}
		if D.Clamped() > 0 {
			l.WithField("points", D.Clamped()).Warn("negative DoS values set to zero")
		}
		d = D.Values()
	default:
		return nil, fmt.Errorf("unknown DoS model %q", model)
	}
	if m.DoS, err = thermo.DoSFromValues(G, d, 0); err != nil {
		return nil, err
	}

	ssec := file.Section("scattering")
	density := ssec.Key("density").MustFloat64(2329)
	m.Phonon = thermo.PhononParams{
		DA:         ssec.Key("da").MustFloat64(9.5),
		Dv:         ssec.Key("dv").MustFloat64(0),
		SoundSpeed: thermo.SoundSpeed(ssec.Key("bulk_modulus").MustFloat64(98), density),
		Density:    density,
	}

	m.Seed = thermo.SeedModel{NcCoeff: msec.Key("nc_coeff").MustFloat64(0)}
	if msec.Key("intrinsic").MustBool(false) {
		m.Seed.Intrinsic = &thermo.Intrinsic{
			Gap: thermo.Varshni{
				Eg0: msec.Key("gap").MustFloat64(thermo.SiliconGap.Eg0),
				A:   msec.Key("varshni_a").MustFloat64(thermo.SiliconGap.A),
				B:   msec.Key("varshni_b").MustFloat64(thermo.SiliconGap.B),
			},
			NcCoeff: msec.Key("intrinsic_nc").MustFloat64(thermo.SiliconIntrinsic.NcCoeff),
			NvCoeff: msec.Key("intrinsic_nv").MustFloat64(thermo.SiliconIntrinsic.NvCoeff),
		}
	}
	if msec.Key("fd_table").MustBool(true) {
		m.Seed.Table = fdint.Default()
	}
	sol := file.Section("solver")
	m.Solver = thermo.SolverOptions{
		RelTol:    sol.Key("rel_tol").MustFloat64(1e-6),
		MaxIter:   sol.Key("max_iter").MustInt(200),
		Window:    sol.Key("window").MustFloat64(0.2),
		MaxExpand: sol.Key("max_expand").MustInt(60),
	}

	S := &setup{Material: m}
	for _, sec := range file.Sections() {
		if !strings.HasPrefix(sec.Name(), "scenario.") {
			continue
		}
		s, err := loadScenario(sec, path)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", sec.Name(), err)
		}
		S.Scenarios = append(S.Scenarios, s)
	}
	if len(S.Scenarios) == 0 {
		return nil, fmt.Errorf("no [scenario.<name>] section in the configuration")
	}

	if sc := file.Section("scan"); sc.Key("enabled").MustBool(false) {
		n := sc.Key("tau_points").MustInt(20)
		tau0 := make([]float64, n)
		floats.LogSpan(tau0, sc.Key("tau_min").MustFloat64(1e-16), sc.Key("tau_max").MustFloat64(1e-13))
		S.Scan = &scanSetup{
			Scenario:    sc.Key("scenario").MustString(S.Scenarios[0].Name),
			Temperature: sc.Key("temperature").MustFloat64(T[0]),
			Options: scan.Options{
				U:               scan.Arange(sc.Key("u_min").MustFloat64(0.01), sc.Key("u_max").MustFloat64(0.3), sc.Key("u_step").MustFloat64(0.01)),
				Tau0:            tau0,
				BaselineWeight:  sc.Key("baseline_weight").MustInt(1),
				MechanismWeight: sc.Key("mechanism_weight").MustInt(1),
				Workers:         sc.Key("workers").MustInt(0),
				Log:             l,
			},
		}
	}
	osec := file.Section("output")
	S.Out = output{
		Dir:      path(osec.Key("dir").MustString("out")),
		Compress: osec.Key("compress").In("", []string{"", "zst", "gz"}),
		Plots:    osec.Key("plots").MustBool(true),
	}
	return S, nil
}

// loadScenario reads one [scenario.<name>] section.
func loadScenario(sec *ini.Section, path func(string) string) (thermo.Scenario, error) {
	s := thermo.Scenario{
		Name:                strings.TrimPrefix(sec.Name(), "scenario."),
		Direction:           sec.Key("direction").String(),
		Porosity:            sec.Key("porosity").MustFloat64(0),
		NonParabolic:        sec.Key("non_parabolic").MustBool(false),
		DegenerateScreening: sec.Key("degenerate_screening").MustBool(false),
		Weights: thermo.Weights{
			Phonon:   sec.Key("phonon_weight").MustInt(1),
			Impurity: sec.Key("impurity_weight").MustInt(1),
			External: sec.Key("external_weight").MustInt(1),
		},
	}
	switch {
	case sec.HasKey("carriers_file"):
		t, n, err := tio.ReadPairsFile(path(sec.Key("carriers_file").String()), sec.Key("carriers_skip").MustInt(0),
			sec.Key("carriers_t_col").MustInt(0), sec.Key("carriers_n_col").MustInt(1))
		if err != nil {
			return s, err
		}
		floats.Scale(sec.Key("carriers_scale").MustFloat64(1), n)
		s.Carriers = thermo.TabulatedCarriers{T: t, N: n}
	case sec.HasKey("carriers"):
		s.Carriers = thermo.ConstantCarriers(sec.Key("carriers").MustFloat64(0))
	default:
		return s, fmt.Errorf("needs either carriers or carriers_file")
	}
	if sec.HasKey("external_file") {
		e, tau, err := tio.ReadPairsFile(path(sec.Key("external_file").String()), sec.Key("external_skip").MustInt(0),
			sec.Key("external_e_col").MustInt(0), sec.Key("external_tau_col").MustInt(1))
		if err != nil {
			return s, err
		}
		s.External = &thermo.ExternalCurve{Energies: e, Lifetimes: tau}
	}
	return s, nil
}

// valleyBin returns the index of the first bin at or above the energy e0.
func valleyBin(e []float64, e0 float64) int {
	for i, v := range e {
		if v >= e0 {
			return i
		}
	}
	return 0
}

// nearest returns the index of the temperature closest to t.
func nearest(T thermo.Temperatures, t float64) int {
	best := 0
	for i, v := range T {
		if math.Abs(v-t) < math.Abs(T[best]-t) {
			best = i
		}
	}
	return best
}
