// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"math"

	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/GmoreiraVet/Guitools/abundance"
)

// mintRamp is the light-to-deep teal ramp of the original clustergram
// palette.
var mintRamp = []string{"#E3F0E0", "#AED6C9", "#7CB7AE", "#539895", "#30797A", "#0E5960"}

// mintAt interpolates the mint ramp at t in [0,1].
func mintAt(t float64) color.Color {
	if math.IsNaN(t) || t <= 0 {
		return hexColor(mintRamp[0])
	}
	if t >= 1 {
		return hexColor(mintRamp[len(mintRamp)-1])
	}
	f := t * float64(len(mintRamp)-1)
	i := int(f)
	frac := f - float64(i)
	a := hexColor(mintRamp[i]).(color.RGBA)
	b := hexColor(mintRamp[i+1]).(color.RGBA)
	lerp := func(x, y uint8) uint8 { return uint8(float64(x) + frac*(float64(y)-float64(x))) }
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xff}
}

func hexColor(hex string) color.Color {
	var r, g, b uint8
	for i, p := range []*uint8{&r, &g, &b} {
		*p = hexByte(hex[1+2*i])<<4 | hexByte(hex[2+2*i])
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func hexByte(c byte) uint8 {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// HeatmapPNG draws the abundance matrix as a raster heatmap with square
// cells, taxon labels on the left and sample labels below, and writes
// it to path. Cell color is the mint ramp scaled to the matrix maximum.
func HeatmapPNG(m *abundance.Matrix, title, path string) error {
	const (
		cell   = 36
		charW  = 7 // advance of the basicfont face
		lineH  = 13
		margin = 12
	)

	maxTaxon := 0
	for _, t := range m.Taxa {
		if len(t) > maxTaxon {
			maxTaxon = len(t)
		}
	}
	maxSample := 0
	for _, s := range m.Samples {
		if len(s) > maxSample {
			maxSample = len(s)
		}
	}
	left := margin + charW*maxTaxon + margin
	top := margin + 2*lineH
	bottom := margin + charW*maxSample
	width := left + cell*len(m.Samples) + margin
	height := top + cell*len(m.Taxa) + bottom

	ctx := gg.NewContext(width, height)
	ctx.SetFontFace(basicfont.Face7x13)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	ctx.SetRGB(0, 0, 0)
	if title != "" {
		ctx.DrawStringAnchored(title, float64(width)/2, float64(margin)+lineH/2, 0.5, 0.5)
	}

	max := m.Max()
	for i := range m.Taxa {
		for j := range m.Samples {
			var t float64
			if max > 0 {
				t = m.Values[i][j] / max
			}
			ctx.SetColor(mintAt(t))
			ctx.DrawRectangle(float64(left+j*cell), float64(top+i*cell), cell, cell)
			ctx.Fill()
		}
	}

	ctx.SetRGB(0, 0, 0)
	for i, taxon := range m.Taxa {
		y := float64(top + i*cell + cell/2)
		ctx.DrawStringAnchored(taxon, float64(left-margin), y, 1, 0.5)
	}
	for j, sample := range m.Samples {
		x := float64(left + j*cell + cell/2)
		y := float64(top + len(m.Taxa)*cell + margin)
		// Slanted to keep long sample names from colliding.
		ctx.Push()
		ctx.RotateAbout(gg.Radians(-45), x, y)
		ctx.DrawStringAnchored(sample, x, y, 1, 0.5)
		ctx.Pop()
	}

	if err := ctx.SavePNG(path); err != nil {
		return pfx.Err(err)
	}
	return nil
}
