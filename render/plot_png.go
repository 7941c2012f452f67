// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math"

	"github.com/carbocation/pfx"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/GmoreiraVet/Guitools/cluster"
	"github.com/GmoreiraVet/Guitools/rarefy"
)

// DendrogramPNG draws dg with its leaves labeled by names, in the
// dendrogram's display order, and saves the plot to path.
func DendrogramPNG(dg *cluster.Dendrogram, names []string, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Bray-Curtis dissimilarity"
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	for _, s := range dg.Segments() {
		ln, err := plotter.NewLine(plotter.XYs{{X: s.X0, Y: s.Y0}, {X: s.X1, Y: s.Y1}})
		if err != nil {
			return pfx.Err(err)
		}
		p.Add(ln)
	}

	ordered := make([]string, 0, len(names))
	for _, leaf := range dg.Leaves() {
		ordered = append(ordered, names[leaf])
	}
	p.NominalX(ordered...)

	width := vg.Length(len(names))*vg.Centimeter + 4*vg.Centimeter
	if err := p.Save(width, 12*vg.Centimeter, path); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// RarefactionPNG draws one line per sample curve and saves the plot to
// path.
func RarefactionPNG(curves []SampleCurve, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Number of Reads Sampled"
	p.Y.Label.Text = "Distinct Taxa"
	p.Legend.Top = true
	p.Legend.Left = true

	for i, c := range curves {
		ln, err := plotter.NewLine(curveXYs(c.Points))
		if err != nil {
			return pfx.Err(err)
		}
		ln.Color = plotutil.Color(i)
		p.Add(ln)
		p.Legend.Add(c.Name, ln)
	}

	if err := p.Save(24*vg.Centimeter, 16*vg.Centimeter, path); err != nil {
		return pfx.Err(err)
	}
	return nil
}

func curveXYs(pts []rarefy.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: float64(p.Depth), Y: p.Richness}
	}
	return xys
}
