// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render writes the toolkit's chart files: interactive HTML
// documents carrying a plotly payload, and static PNG images.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"

	"github.com/carbocation/pfx"
)

// trace mirrors a plotly trace object; only the fields a figure sets
// are emitted.
type trace struct {
	Type         string      `json:"type"`
	Name         string      `json:"name,omitempty"`
	X            interface{} `json:"x,omitempty"`
	Y            interface{} `json:"y,omitempty"`
	Z            [][]float64 `json:"z,omitempty"`
	Text         []string    `json:"text,omitempty"`
	TextPosition string      `json:"textposition,omitempty"`
	Mode         string      `json:"mode,omitempty"`
	Fill         string      `json:"fill,omitempty"`
	FillColor    string      `json:"fillcolor,omitempty"`
	ShowLegend   *bool       `json:"showlegend,omitempty"`
	Colorscale   interface{} `json:"colorscale,omitempty"`
	ColorBar     *colorBar   `json:"colorbar,omitempty"`
	Marker       *marker     `json:"marker,omitempty"`
	Line         *line       `json:"line,omitempty"`
}

type marker struct {
	Color    interface{} `json:"color,omitempty"`
	Size     interface{} `json:"size,omitempty"`
	SizeMode string      `json:"sizemode,omitempty"`
	SizeRef  float64     `json:"sizeref,omitempty"`
	Line     *line       `json:"line,omitempty"`
}

type line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type colorBar struct {
	Title string `json:"title,omitempty"`
}

type axis struct {
	Title         string    `json:"title,omitempty"`
	TickAngle     float64   `json:"tickangle,omitempty"`
	CategoryOrder string    `json:"categoryorder,omitempty"`
	CategoryArray []string  `json:"categoryarray,omitempty"`
	Range         []float64 `json:"range,omitempty"`
}

type layout struct {
	Title      string `json:"title,omitempty"`
	BarMode    string `json:"barmode,omitempty"`
	XAxis      *axis  `json:"xaxis,omitempty"`
	YAxis      *axis  `json:"yaxis,omitempty"`
	ShowLegend *bool  `json:"showlegend,omitempty"`
}

// Figure is an interactive chart ready to be written as a
// self-contained HTML document.
type Figure struct {
	traces []trace
	layout layout
}

var page = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
</head>
<body>
<div id="figure"></div>
<script>
Plotly.newPlot("figure", {{.Data}}, {{.Layout}}, {responsive: true});
</script>
</body>
</html>
`))

// WriteHTML writes the figure as a standalone HTML document at path.
func (f *Figure) WriteHTML(path string) error {
	data, err := json.Marshal(f.traces)
	if err != nil {
		return pfx.Err(err)
	}
	lay, err := json.Marshal(f.layout)
	if err != nil {
		return pfx.Err(err)
	}
	var buf bytes.Buffer
	err = page.Execute(&buf, struct {
		Title        string
		Data, Layout template.JS
	}{
		Title:  f.layout.Title,
		Data:   template.JS(data),
		Layout: template.JS(lay),
	})
	if err != nil {
		return pfx.Err(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// palette is the qualitative series color cycle, matched to the pastel
// cycle the original plots used. Series beyond its length wrap around.
var palette = []string{
	"#66C5CC", "#F6CF71", "#F89C74", "#DCB0F2", "#87C55F", "#9EB9F3",
	"#FE88B1", "#C9DB74", "#8BE0A4", "#B497E7", "#D3B484", "#B3B3B3",
}

// otherColor is used for the Other rollup series.
const otherColor = "gray"

func seriesColor(i int) string { return palette[i%len(palette)] }

// rgba converts a #rrggbb hex color to an rgba() string with the given
// alpha, for translucent fill areas.
func rgba(hex string, alpha float64) string {
	var r, g, b int
	fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}

func boolPtr(b bool) *bool { return &b }
