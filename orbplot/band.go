/*
 * band.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

// Package orbplot turns the extracted band and DOS tensors into figures.
// It resolves run-file color schemes, reduces the k-point list to a 1D
// path coordinate, and renders orbital-projected band structures and
// densities of states with gonum/plot.
package orbplot

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"

	orbvis "github.com/staradutt/orbvis"
	"github.com/staradutt/orbvis/config"
	"github.com/staradutt/orbvis/doscar"
	"github.com/staradutt/orbvis/kpath"
	"github.com/staradutt/orbvis/procar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//tolerance for merging ticks that land on the same scaled position
const tickTol = 1e-5

//resolveFermi returns the reference energy: an explicit EFERMI wins, then
//the DOSCAR value, then zero with a head-up.
func resolveFermi(cfg *config.Params) (float64, error) {
	if cfg.EFermiSet {
		return cfg.EFermi, nil
	}
	if cfg.DoscarPath != "" {
		ef, err := doscar.ReadFermiEnergy(cfg.DoscarPath)
		if err != nil {
			return 0, errDecorate(err, "resolveFermi")
		}
		return ef, nil
	}
	log.Printf("orbvis: no EFERMI or DOSCAR_PATH given, energies will not be Fermi-referenced")
	return 0, nil
}

//selectionLabel builds the legend entry for one orbital selection, e.g.
//"Fe-dxy+dyz" or "O-tot".
func selectionLabel(sel config.OrbitalSelection, totIndex int) string {
	names := make([]string, 0, len(sel.Orbitals))
	for _, orb := range sel.Orbitals {
		if orb == totIndex {
			names = append(names, "tot")
			continue
		}
		if name, ok := orbvis.OrbitalLabels[orb]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("orb%d", orb))
		}
	}
	return sel.Element + "-" + strings.Join(names, "+")
}

//readProjection reads and sums the projection weights of one selection.
func readProjection(cfg *config.Params, sel config.OrbitalSelection) (*orbvis.Bands, error) {
	var acc *orbvis.Bands
	for _, atom := range sel.Atoms {
		for _, orb := range sel.Orbitals {
			var w *orbvis.Bands
			var err error
			if cfg.SOC {
				w, err = procar.ReadOrbitalBandsSOC(cfg.ProcarPath, atom, orb)
			} else {
				w, err = procar.ReadOrbitalBands(cfg.ProcarPath, atom, orb, cfg.Ispin)
			}
			if err != nil {
				return nil, errDecorate(err, "readProjection")
			}
			if acc == nil {
				acc = w
				continue
			}
			if err := acc.Accumulate(w); err != nil {
				return nil, errDecorate(err, "readProjection")
			}
		}
	}
	if acc == nil {
		return nil, Error{"empty orbital selection", []string{"readProjection"}}
	}
	return acc, nil
}

//pathTicks turns the high-symmetry indices into merged tick positions and
//labels. With no KLABELS given the points are numbered K0..Kn.
func pathTicks(coords *kpath.PathData, hs []int, klabels []string) ([]float64, []string, error) {
	labels := klabels
	if len(labels) == 0 {
		labels = make([]string, len(hs))
		for i := range hs {
			labels[i] = fmt.Sprintf("K%d", i)
		}
	}
	if len(labels) != len(hs) {
		return nil, nil, Error{fmt.Sprintf("%s: %d labels for %d points", BadLabels, len(labels), len(hs)), []string{"pathTicks"}}
	}
	vals := make([]float64, len(hs))
	for i, idx := range hs {
		v, ok := coords.Position(idx)
		if !ok {
			return nil, nil, Error{fmt.Sprintf("high-symmetry k-point %d missing from the cleaned path", idx), []string{"pathTicks"}}
		}
		vals[i] = v
	}
	vals, labels, err := kpath.MergeCloseTicks(vals, labels, tickTol)
	if err != nil {
		return nil, nil, errDecorate(err, "pathTicks")
	}
	return vals, labels, nil
}

//scatterFor builds the per-selection glyph cloud of one spin channel. In
//scatter mode (PLOT_OPTION 0) the glyph radius grows with the projection
//weight; in parametric mode the radius is fixed and a colormap encodes the
//weight instead.
func scatterFor(cfg *config.Params, x []float64, bands, proj *orbvis.Bands, spin int, base color.NRGBA) (*plotter.Scatter, error) {
	alpha := cfg.Transparency / 100
	pts := make(plotter.XYs, 0, len(x)*bands.NBands())
	ws := make([]float64, 0, len(x)*bands.NBands())
	for b := 0; b < bands.NBands(); b++ {
		e := bands.Row(spin, b)
		w := proj.Row(spin, b)
		for k := range x {
			if math.IsNaN(x[k]) || math.IsNaN(e[k]) {
				continue
			}
			if e[k] < cfg.YMin || e[k] > cfg.YMax {
				continue
			}
			pts = append(pts, plotter.XY{X: x[k], Y: e[k]})
			ws = append(ws, w[k])
		}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, Error{err.Error(), []string{"scatterFor"}}
	}
	col := withAlpha(base, alpha)
	sc.GlyphStyle = draw.GlyphStyle{Color: col, Radius: vg.Points(2), Shape: draw.CircleGlyph{}}
	if cfg.PlotOption == 1 {
		//weight modulates opacity rather than size
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			w := ws[i]
			if w < 0 {
				w = -w
			}
			if w > 1 {
				w = 1
			}
			return draw.GlyphStyle{
				Color:  withAlpha(base, alpha*w),
				Radius: vg.Points(2),
				Shape:  draw.CircleGlyph{},
			}
		}
		return sc, nil
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		w := ws[i]
		if w < 0 {
			w = -w
		}
		return draw.GlyphStyle{
			Color:  col,
			Radius: vg.Points(2 * math.Sqrt(cfg.Scale*w)),
			Shape:  draw.CircleGlyph{},
		}
	}
	return sc, nil
}

// BandScatter renders the orbital-projected band structure described by cfg
// and writes it to cfg.SaveAs. A spin-polarized run produces two panels,
// up and down, side by side in the same image.
func BandScatter(cfg *config.Params) error {
	if err := cfg.ValidateBand(); err != nil {
		return errDecorate(err, "BandScatter")
	}
	totIndex, err := procar.TotColumnIndex(cfg.ProcarPath)
	if err != nil {
		return errDecorate(err, "BandScatter")
	}
	if err := cfg.ValidateOrbitals(totIndex); err != nil {
		return errDecorate(err, "BandScatter")
	}
	var bands *orbvis.Bands
	var kl orbvis.KList
	if cfg.SOC {
		bands, kl, err = procar.ReadBandsAndKListSOC(cfg.ProcarPath)
	} else {
		bands, kl, err = procar.ReadBandsAndKList(cfg.ProcarPath, cfg.Ispin)
	}
	if err != nil {
		return errDecorate(err, "BandScatter")
	}
	efermi, err := resolveFermi(cfg)
	if err != nil {
		return errDecorate(err, "BandScatter")
	}
	cleaned, hs, err := kpath.CleanDefault(kl)
	if err != nil {
		return errDecorate(err, "BandScatter")
	}
	coords, err := kpath.Coordinates(cleaned, cfg.XScale, kpath.DefaultJumpCutoff)
	if err != nil {
		return errDecorate(err, "BandScatter")
	}
	tickVals, tickLabels, err := pathTicks(coords, hs, cfg.KLabels)
	if err != nil {
		return err
	}
	keep, scaled := coords.Reduced()
	cuts := kpath.Discontinuities(scaled)
	x := kpath.InsertGaps(scaled, cuts)
	bands = kpath.InsertGapBands(bands.SelectColumns(keep).Shift(efermi), cuts)

	projections := make([]*orbvis.Bands, len(cfg.OrbitalInfo))
	labels := make([]string, len(cfg.OrbitalInfo))
	for i, sel := range cfg.OrbitalInfo {
		proj, err := readProjection(cfg, sel)
		if err != nil {
			return err
		}
		projections[i] = kpath.InsertGapBands(proj.SelectColumns(keep), cuts)
		labels[i] = selectionLabel(sel, totIndex)
	}
	cols, err := Colors(cfg.ColorScheme, len(cfg.OrbitalInfo))
	if err != nil {
		return errDecorate(err, "BandScatter")
	}

	black := color.NRGBA{A: 0xff}
	plots := make([]*plot.Plot, bands.NSpins())
	for s := range plots {
		p := plot.New()
		p.Title.Text = cfg.Title
		if bands.NSpins() == 2 {
			if s == 0 {
				p.Title.Text += " (spin up)"
			} else {
				p.Title.Text += " (spin down)"
			}
		}
		p.Y.Label.Text = "E - Ef (eV)"
		p.Y.Min = cfg.YMin
		p.Y.Max = cfg.YMax
		p.X.Min = 0
		p.X.Max = cfg.XScale
		applyTicks(p, tickVals, tickLabels)
		for b := 0; b < bands.NBands(); b++ {
			if err := addLine(p, x, bands.Row(s, b), black, vg.Points(cfg.LineWidth)); err != nil {
				return err
			}
		}
		//vertical guides at the high-symmetry points
		gray := color.NRGBA{0x80, 0x80, 0x80, 0xff}
		for _, v := range tickVals {
			if err := addVLine(p, v, cfg.YMin, cfg.YMax, gray); err != nil {
				return err
			}
		}
		for i := range projections {
			sc, err := scatterFor(cfg, x, bands, projections[i], s, cols[i])
			if err != nil {
				return err
			}
			p.Add(sc)
			if s == 0 {
				p.Legend.Add(labels[i], sc)
			}
		}
		legendPosition(p, cfg.LegendLoc)
		plots[s] = p
	}
	return SavePlots(plots, cfg)
}
