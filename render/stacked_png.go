// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/GmoreiraVet/Guitools/abundance"
)

// StackedBarPNG draws the abundance matrix as a static stacked bar
// chart, one bar per sample with one segment per taxon row, and writes
// it to path.
func StackedBarPNG(m *abundance.Matrix, title, path string) error {
	bars := make([]chart.StackedBar, len(m.Samples))
	for j, sample := range m.Samples {
		values := make([]chart.Value, 0, len(m.Taxa))
		for i, taxon := range m.Taxa {
			v := m.Values[i][j]
			if v <= 0 {
				continue
			}
			fill := drawing.ColorFromHex(strings.TrimPrefix(seriesColor(i), "#"))
			if taxon == abundance.Other {
				fill = chart.ColorAlternateGray
			}
			values = append(values, chart.Value{
				Value: v,
				Style: chart.Style{FillColor: fill, StrokeWidth: 1, StrokeColor: drawing.ColorWhite},
			})
		}
		bars[j] = chart.StackedBar{Name: sample, Width: 50, Values: values}
	}

	sbc := chart.StackedBarChart{
		Title:      title,
		Width:      120 + 70*len(m.Samples),
		Height:     720,
		XAxis:      chart.Shown(),
		YAxis:      chart.Shown(),
		Background: chart.Style{Padding: chart.Box{Top: 50}},
		Bars:       bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()
	if err := sbc.Render(chart.PNG, f); err != nil {
		return pfx.Err(err)
	}
	return nil
}
