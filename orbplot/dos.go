/*
 * dos.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package orbplot

import (
	"image/color"
	"math"

	"github.com/staradutt/orbvis/config"
	"github.com/staradutt/orbvis/doscar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// GaussianSmooth convolves y with a normalized Gaussian kernel of standard
// deviation sigma, given in grid points. The kernel is truncated at 4 sigma
// and renormalized near the edges, so the curve does not droop at the ends
// of the energy window. A non-positive sigma returns the input unchanged.
func GaussianSmooth(y []float64, sigma float64) []float64 {
	if sigma <= 0 || len(y) == 0 {
		return y
	}
	radius := int(4*sigma + 0.5)
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	out := make([]float64, len(y))
	for i := range y {
		var sum, norm float64
		for j := -radius; j <= radius; j++ {
			k := i + j
			if k < 0 || k >= len(y) {
				continue
			}
			w := kernel[j+radius]
			sum += w * y[k]
			norm += w
		}
		out[i] = sum / norm
	}
	return out
}

//smoothedColumn extracts one column of a DOS matrix, smooths it, and
//optionally negates it (the display convention for the spin-down channel).
func smoothedColumn(m *mat.Dense, col int, sigma float64, negate bool) []float64 {
	r, _ := m.Dims()
	out := make([]float64, r)
	mat.Col(out, col, m)
	out = GaussianSmooth(out, sigma)
	if negate {
		for i := range out {
			out[i] = -out[i]
		}
	}
	return out
}

//readSelectionDOS sums the atom-orbital DOS of one selection into a single
//nedos x ispin matrix.
func readSelectionDOS(cfg *config.Params, sel config.OrbitalSelection) (*mat.Dense, error) {
	var acc *mat.Dense
	for _, atom := range sel.Atoms {
		for _, orb := range sel.Orbitals {
			m, err := doscar.ReadAtomOrbitalDOS(cfg.DoscarPath, cfg.Ispin, atom, orb)
			if err != nil {
				return nil, errDecorate(err, "readSelectionDOS")
			}
			if acc == nil {
				acc = m
				continue
			}
			acc.Add(acc, m)
		}
	}
	if acc == nil {
		return nil, Error{"empty orbital selection", []string{"readSelectionDOS"}}
	}
	return acc, nil
}

// DOS renders the total and orbital-projected density of states described by
// cfg and writes it to cfg.SaveAs. Energies are referenced to the Fermi
// level from the DOSCAR header (or an explicit EFERMI). In a spin-polarized
// run the down channel is drawn negated below the energy axis.
func DOS(cfg *config.Params) error {
	if err := cfg.ValidateDOS(); err != nil {
		return errDecorate(err, "DOS")
	}
	efermi, err := resolveFermi(cfg)
	if err != nil {
		return errDecorate(err, "DOS")
	}
	energies, total, err := doscar.ReadTotalDOS(cfg.DoscarPath, cfg.Ispin)
	if err != nil {
		return errDecorate(err, "DOS")
	}
	e := make([]float64, len(energies))
	for i, v := range energies {
		e[i] = v - efermi
	}

	cols, err := Colors(cfg.ColorScheme, len(cfg.OrbitalInfo))
	if err != nil {
		return errDecorate(err, "DOS")
	}
	alpha := cfg.Transparency / 100

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "E - Ef (eV)"
	p.Y.Label.Text = "DOS (states/eV)"

	var yAll [][]float64
	black := color.NRGBA{A: 0xff}
	if cfg.ShowTDOS {
		for s := 0; s < cfg.Ispin; s++ {
			y := smoothedColumn(total, s, cfg.Sigma, s == 1)
			yAll = append(yAll, y)
			if err := addLine(p, e, y, black, vg.Points(cfg.TDOSLineWidth)); err != nil {
				return err
			}
			if s == 0 {
				l, err := lineThumb(black, vg.Points(cfg.TDOSLineWidth))
				if err != nil {
					return err
				}
				p.Legend.Add("total", l)
			}
		}
	}
	for i, sel := range cfg.OrbitalInfo {
		m, err := readSelectionDOS(cfg, sel)
		if err != nil {
			return err
		}
		c := withAlpha(cols[i], alpha)
		for s := 0; s < cfg.Ispin; s++ {
			y := smoothedColumn(m, s, cfg.Sigma, s == 1)
			yAll = append(yAll, y)
			if err := addLine(p, e, y, c, vg.Points(cfg.PDOSLineWidth)); err != nil {
				return err
			}
		}
		l, err := lineThumb(c, vg.Points(cfg.PDOSLineWidth))
		if err != nil {
			return err
		}
		//DOSCAR blocks carry no "tot" column, so no index maps to it here
		p.Legend.Add(selectionLabel(sel, -1), l)
	}

	xmin, xmax, err := finiteRange(e)
	if err != nil {
		return err
	}
	if cfg.XMinSet {
		xmin = cfg.XMin
	}
	if cfg.XMaxSet {
		xmax = cfg.XMax
	}
	p.X.Min = xmin
	p.X.Max = xmax
	ymin, ymax, err := finiteRange(yAll...)
	if err != nil {
		return err
	}
	if cfg.Ispin == 1 {
		ymin = 0
	}
	pad := 0.05 * (ymax - ymin)
	p.Y.Min = ymin - pad
	p.Y.Max = ymax + pad

	gray := color.NRGBA{0x80, 0x80, 0x80, 0xff}
	if err := addVLine(p, 0, p.Y.Min, p.Y.Max, gray); err != nil {
		return err
	}
	if cfg.Ispin == 2 {
		//zero line separating the up and down channels
		if err := addLine(p, []float64{xmin, xmax}, []float64{0, 0}, gray, vg.Points(0.5)); err != nil {
			return err
		}
	}
	legendPosition(p, cfg.LegendLoc)

	return SavePlots([]*plot.Plot{p}, cfg)
}
