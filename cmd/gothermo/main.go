/*
 * main.go, part of gothermo.
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

// gothermo computes the thermoelectric transport coefficients of a material under the
// scenarios given in an ini configuration file, and optionally scans a phenomenological
// scattering mechanism on top of one of them.
//
//	gothermo [-workers n] silicon.ini
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	thermo "github.com/rmera/gothermo"
	"github.com/rmera/gothermo/scan"
	"github.com/rmera/gothermo/tio"
	"github.com/rmera/gothermo/tplot"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

func main() {
	workers := flag.Int("workers", -1, "goroutines for the scan, overrides the configuration if not negative")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "use: %s [flags] config.ini\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	l := log.New()
	file, err := ini.Load(flag.Arg(0))
	if err != nil {
		l.WithError(err).Fatal("can't read the configuration")
	}
	if err = configureLog(file, l); err != nil {
		l.WithError(err).Fatal("bad [log] section")
	}
	S, err := load(file, filepath.Dir(flag.Arg(0)), l)
	if err != nil {
		l.WithError(err).Fatal("bad configuration")
	}
	if S.Scan != nil && *workers >= 0 {
		S.Scan.Options.Workers = *workers
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err = run(ctx, S, l); err != nil {
		l.WithError(err).Fatal("run failed")
	}
}

// run computes every scenario and the scan, and writes the results.
func run(ctx context.Context, S *setup, l log.FieldLogger) error {
	if err := os.MkdirAll(S.Out.Dir, 0o755); err != nil {
		return err
	}
	results, err := thermo.RunAll(S.Material, S.Scenarios...)
	if err != nil {
		return err
	}
	for _, r := range results {
		if err := writeResult(S.Out, r); err != nil {
			return err
		}
	}
	if S.Out.Plots {
		if err := plotResults(S.Out, S.Material.Name, results); err != nil {
			return err
		}
	}
	if S.Scan == nil {
		return nil
	}
	var base *thermo.Result
	for _, r := range results {
		if r.Scenario.Name == S.Scan.Scenario {
			base = r
		}
	}
	if base == nil {
		return fmt.Errorf("scan requested on unknown scenario %q", S.Scan.Scenario)
	}
	sf, err := scan.Run(ctx, base.Kernel, base.Tau, S.Scan.Options)
	if err != nil {
		return err
	}
	ti := nearest(sf.T, S.Scan.Temperature)
	i, j, pf := sf.Best(ti)
	l.WithFields(log.Fields{
		"scenario": base.Scenario.Name,
		"T":        sf.T[ti],
		"U":        sf.U[i],
		"tau0":     sf.Tau0[j],
		"pf":       pf,
	}).Info("best power factor of the scan")
	if err := writeSurface(S.Out, base, sf, ti); err != nil {
		return err
	}
	if S.Out.Plots {
		return tplot.Surface(sf, ti, S.Material.Name+" "+base.Scenario.Name, filepath.Join(S.Out.Dir, "scan_"+base.Scenario.Name+".png"))
	}
	return nil
}

func writeResult(o output, r *thermo.Result) error {
	C := r.Coefficients
	names := []string{"T", "Ef", "n", "screening", "sigma", "seebeck", "pf", "kappa", "lorenz"}
	return tio.WriteTableFile(o.table(r.Scenario.Name), r.RunID, names,
		C.T, r.Fermi.Ef, r.Fermi.N, r.Screening, C.Sigma, C.Seebeck, C.PowerFactor, C.Kappa, C.Lorenz)
}

// writeSurface writes the scan at the ti-th temperature as a U, tau0, sigma, S, PF table.
func writeSurface(o output, base *thermo.Result, sf *scan.Surface, ti int) error {
	n := len(sf.U) * len(sf.Tau0)
	u, tau := make([]float64, 0, n), make([]float64, 0, n)
	for _, v := range sf.U {
		for _, t := range sf.Tau0 {
			u = append(u, v)
			tau = append(tau, t)
		}
	}
	//rows are U and columns tau0, like u and tau above
	sigma := sf.Sigma(ti).RawMatrix().Data
	seebeck := sf.Seebeck(ti).RawMatrix().Data
	pf := sf.PowerFactor(ti).RawMatrix().Data
	return tio.WriteTableFile(o.table("scan_"+base.Scenario.Name), base.RunID,
		[]string{"U", "tau0", "sigma", "seebeck", "pf"}, u, tau, sigma, seebeck, pf)
}

func plotResults(o output, title string, results []*thermo.Result) error {
	for _, q := range []struct {
		q    tplot.Quantity
		name string
	}{
		{tplot.Sigma, "sigma"},
		{tplot.Seebeck, "seebeck"},
		{tplot.PowerFactor, "pf"},
		{tplot.Kappa, "kappa"},
		{tplot.Lorenz, "lorenz"},
	} {
		curves := make([]tplot.Series, 0, len(results))
		for _, r := range results {
			curves = append(curves, tplot.FromCoefficients(r.Scenario.Name, q.q, r.Coefficients))
		}
		if err := tplot.Coefficients(q.q, title, filepath.Join(o.Dir, q.name+".png"), curves...); err != nil {
			return err
		}
	}
	return nil
}
