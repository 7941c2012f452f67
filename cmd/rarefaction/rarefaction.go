// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rarefaction renders per-sample rarefaction curves: expected distinct
// taxa as a function of subsampled read depth, with a shaded spread
// band per sample.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/montanaflynn/stats"

	"github.com/GmoreiraVet/Guitools/bracken"
	"github.com/GmoreiraVet/Guitools/rarefy"
	"github.com/GmoreiraVet/Guitools/render"
)

var (
	in      = flag.String("in", "", "input directory holding bracken report files (required)")
	out     = flag.String("out", "rarefaction_curve.html", "output HTML file name")
	pattern = flag.String("pattern", bracken.DefaultSuffix, "report filename suffix")
	points  = flag.Int("points", 50, "number of subsample depths per curve")
	pngOut  = flag.String("png", "", "also write a static PNG of the curves to this file")
	title   = flag.String("title", "Rarefaction Curves", "plot title")
)

func main() {
	flag.Parse()
	if *in == "" {
		fmt.Fprintln(os.Stderr, "invalid argument: must have input directory set")
		flag.Usage()
		os.Exit(1)
	}

	set, err := bracken.LoadDir(*in, *pattern)
	if err != nil {
		log.Fatalf("failed to load reports: %v", err)
	}

	var curves []render.SampleCurve
	for _, sample := range set.Samples {
		counts := bracken.Reads(set.Records[sample])
		total := rarefy.Total(counts)
		if total == 0 {
			log.Printf("skipping %s: no reads", sample)
			continue
		}
		pts := rarefy.Curve(counts, rarefy.Depths(total, *points))
		richness := make([]float64, len(pts))
		for i, p := range pts {
			richness[i] = p.Richness
		}
		sd, err := stats.StandardDeviation(richness)
		if err != nil {
			log.Fatalf("failed spread calculation for %s: %v", sample, err)
		}
		curves = append(curves, render.SampleCurve{Name: sample, Points: pts, Spread: sd})
	}
	if len(curves) == 0 {
		log.Fatal("no sample carries reads; nothing to plot")
	}

	if err := render.Rarefaction(curves, *title).WriteHTML(*out); err != nil {
		log.Fatalf("failed to write rarefaction curves: %v", err)
	}
	log.Printf("rarefaction curves saved to %s", *out)

	if *pngOut != "" {
		if err := render.RarefactionPNG(curves, *title, *pngOut); err != nil {
			log.Fatalf("failed to write png rarefaction curves: %v", err)
		}
		log.Printf("rarefaction curves saved to %s", *pngOut)
	}
}
