// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"github.com/GmoreiraVet/Guitools/abundance"
	"github.com/GmoreiraVet/Guitools/beta"
	"github.com/GmoreiraVet/Guitools/rarefy"
)

// Heatmap builds an abundance heatmap figure: samples across, taxa
// down, cells colored by relative abundance on the mint ramp.
func Heatmap(m *abundance.Matrix, title string) *Figure {
	return &Figure{
		traces: []trace{{
			Type:       "heatmap",
			X:          m.Samples,
			Y:          m.Taxa,
			Z:          m.Values,
			Colorscale: mintScale(),
			ColorBar:   &colorBar{Title: "Relative Abundance"},
		}},
		layout: layout{
			Title: title,
			XAxis: &axis{Title: "Sample ID", TickAngle: -45},
			YAxis: &axis{Title: "Taxon"},
		},
	}
}

// StackedBar builds a stacked relative-abundance bar figure with one
// bar segment series per taxon row. The Other rollup row renders grey.
func StackedBar(m *abundance.Matrix, title string) *Figure {
	f := &Figure{
		layout: layout{
			Title:   title,
			BarMode: "stack",
			XAxis: &axis{
				Title:         "Sample ID",
				TickAngle:     -45,
				CategoryOrder: "array",
				CategoryArray: append([]string(nil), m.Samples...),
			},
			YAxis: &axis{Title: "Relative Abundance"},
		},
	}
	for i, taxon := range m.Taxa {
		color := seriesColor(i)
		if taxon == abundance.Other {
			color = otherColor
		}
		f.traces = append(f.traces, trace{
			Type:   "bar",
			Name:   taxon,
			X:      m.Samples,
			Y:      m.Values[i],
			Marker: &marker{Color: color},
		})
	}
	return f
}

// Bubble builds a bubble figure: samples across, taxa down, marker area
// proportional to abundance.
func Bubble(m *abundance.Matrix, title string) *Figure {
	const maxDiameter = 60
	sizeRef := 2 * m.Max() / (maxDiameter * maxDiameter)
	f := &Figure{
		layout: layout{
			Title: title,
			XAxis: &axis{Title: "Sample ID", TickAngle: -45},
			YAxis: &axis{Title: "Taxon"},
		},
	}
	for i, taxon := range m.Taxa {
		color := seriesColor(i)
		if taxon == abundance.Other {
			color = otherColor
		}
		ys := make([]string, len(m.Samples))
		for j := range ys {
			ys[j] = taxon
		}
		f.traces = append(f.traces, trace{
			Type: "scatter",
			Name: taxon,
			Mode: "markers",
			X:    m.Samples,
			Y:    ys,
			Marker: &marker{
				Color:    color,
				Size:     m.Values[i],
				SizeMode: "area",
				SizeRef:  sizeRef,
			},
		})
	}
	return f
}

// Ordination builds a PCoA scatter figure from the first two axes of
// ord, labeling each axis with its percentage of variance explained and
// each point with its sample name.
func Ordination(ord *beta.Ordination, title string) *Figure {
	xs := make([]float64, len(ord.Names))
	ys := make([]float64, len(ord.Names))
	colors := make([]string, len(ord.Names))
	for i := range ord.Names {
		xs[i] = ord.Coords[i][0]
		if len(ord.Coords[i]) > 1 {
			ys[i] = ord.Coords[i][1]
		}
		colors[i] = seriesColor(i)
	}
	yTitle := "PC2"
	if len(ord.Explained) > 1 {
		yTitle = fmt.Sprintf("PC2 (%.2f%%)", ord.Explained[1])
	}
	return &Figure{
		traces: []trace{{
			Type:         "scatter",
			Mode:         "markers+text",
			X:            xs,
			Y:            ys,
			Text:         append([]string(nil), ord.Names...),
			TextPosition: "bottom center",
			Marker: &marker{
				Color: colors,
				Size:  12,
				Line:  &line{Color: "DarkSlateGrey", Width: 2},
			},
		}},
		layout: layout{
			Title:      title,
			XAxis:      &axis{Title: fmt.Sprintf("PC1 (%.2f%%)", ord.Explained[0])},
			YAxis:      &axis{Title: yTitle},
			ShowLegend: boolPtr(false),
		},
	}
}

// SampleCurve is one sample's rarefaction curve plus the spread used
// for its shaded band.
type SampleCurve struct {
	Name   string
	Points []rarefy.Point
	Spread float64
}

// Rarefaction builds a line figure of rarefaction curves, one line and
// one translucent ± spread band per sample.
func Rarefaction(curves []SampleCurve, title string) *Figure {
	f := &Figure{
		layout: layout{
			Title: title,
			XAxis: &axis{Title: "Number of Reads Sampled"},
			YAxis: &axis{Title: "Distinct Taxa"},
		},
	}
	for i, c := range curves {
		color := seriesColor(i)
		xs := make([]float64, len(c.Points))
		ys := make([]float64, len(c.Points))
		for k, p := range c.Points {
			xs[k] = float64(p.Depth)
			ys[k] = p.Richness
		}
		f.traces = append(f.traces, trace{
			Type: "scatter",
			Mode: "lines",
			Name: c.Name,
			X:    xs,
			Y:    ys,
			Line: &line{Color: color},
		})
		if c.Spread <= 0 {
			continue
		}
		bandX := make([]float64, 0, 2*len(xs))
		bandY := make([]float64, 0, 2*len(ys))
		for k := range xs {
			bandX = append(bandX, xs[k])
			bandY = append(bandY, ys[k]+c.Spread)
		}
		for k := len(xs) - 1; k >= 0; k-- {
			bandX = append(bandX, xs[k])
			bandY = append(bandY, ys[k]-c.Spread)
		}
		f.traces = append(f.traces, trace{
			Type:       "scatter",
			Mode:       "lines",
			Name:       c.Name + " ± SD",
			X:          bandX,
			Y:          bandY,
			Fill:       "toself",
			FillColor:  rgba(color, 0.2),
			Line:       &line{Color: "rgba(255, 255, 255, 0)"},
			ShowLegend: boolPtr(false),
		})
	}
	return f
}

// mintScale is the continuous color ramp shared by the HTML and PNG
// heatmaps.
func mintScale() [][2]interface{} {
	scale := make([][2]interface{}, len(mintRamp))
	for i, c := range mintRamp {
		scale[i] = [2]interface{}{float64(i) / float64(len(mintRamp)-1), c}
	}
	return scale
}
