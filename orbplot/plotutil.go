/*
 * plotutil.go, part of orbvis.
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
	"os"
	"strings"

	"github.com/staradutt/orbvis/config"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//splitAtNaN breaks parallel x/y series into contiguous finite runs, so a
//NaN path gap never becomes a drawn segment.
func splitAtNaN(x, y []float64) []plotter.XYs {
	var runs []plotter.XYs
	var cur plotter.XYs
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

func addLine(p *plot.Plot, x, y []float64, c color.Color, width vg.Length) error {
	for _, run := range splitAtNaN(x, y) {
		l, err := plotter.NewLine(run)
		if err != nil {
			return Error{err.Error(), []string{"addLine"}}
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = width
		p.Add(l)
	}
	return nil
}

//addVLine draws a dashed vertical marker spanning [ymin,ymax] at x.
func addVLine(p *plot.Plot, x, ymin, ymax float64, c color.Color) error {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
	if err != nil {
		return Error{err.Error(), []string{"addVLine"}}
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(0.5)
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(l)
	return nil
}

//lineThumb is a zero-length line carrying only a style, used as a legend
//thumbnail for series that are drawn in NaN-split pieces.
func lineThumb(c color.Color, width vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{})
	if err != nil {
		return nil, Error{err.Error(), []string{"lineThumb"}}
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	return l, nil
}

func applyTicks(p *plot.Plot, vals []float64, labels []string) {
	ticks := make([]plot.Tick, len(vals))
	for i := range vals {
		ticks[i] = plot.Tick{Value: vals[i], Label: labels[i]}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
}

//legendPosition translates a matplotlib-style corner name ("lower right",
//"upper left", ...) into gonum legend placement. Unknown words keep the
//default corner.
func legendPosition(p *plot.Plot, loc string) {
	loc = strings.ToLower(loc)
	p.Legend.Top = strings.Contains(loc, "upper") || strings.Contains(loc, "top")
	p.Legend.Left = strings.Contains(loc, "left")
}

//finiteRange returns the min and max over every finite value of the given
//series.
func finiteRange(series ...[]float64) (float64, float64, error) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if min > max {
		return 0, 0, Error{NoFiniteData, []string{"finiteRange"}}
	}
	return min, max, nil
}

// SavePlots renders one or more plots side by side into a single image file.
// The format follows the file extension: .png or anything else as JPEG, which
// matches the run-file contract that SAVEAS ends in .png or .jpg. Figure size
// is in inches and the DPI setting controls the pixel density, like the
// matplotlib conventions the run files were written for.
func SavePlots(plots []*plot.Plot, cfg *config.Params) error {
	w := vg.Length(cfg.FigSizeX) * vg.Inch
	h := vg.Length(cfg.FigSizeY) * vg.Inch
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(cfg.DPI)))
	dc := draw.New(c)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(plots),
		PadX: vg.Millimeter * 2,
	}
	row := make([][]*plot.Plot, 1)
	row[0] = plots
	canvases := plot.Align(row, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}
	f, err := os.Create(cfg.SaveAs)
	if err != nil {
		return Error{UnableToWrite + ": " + err.Error(), []string{"SavePlots"}}
	}
	defer f.Close()
	if strings.HasSuffix(strings.ToLower(cfg.SaveAs), ".png") {
		_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(f)
	} else {
		_, err = vgimg.JpegCanvas{Canvas: c}.WriteTo(f)
	}
	if err != nil {
		return Error{UnableToWrite + ": " + err.Error(), []string{"SavePlots"}}
	}
	return nil
}
