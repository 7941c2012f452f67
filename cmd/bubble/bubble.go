// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bubble renders a bubble chart of taxon abundance across samples,
// marker area proportional to relative abundance.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/GmoreiraVet/Guitools/abundance"
	"github.com/GmoreiraVet/Guitools/bracken"
	"github.com/GmoreiraVet/Guitools/render"
)

var (
	in      = flag.String("in", "", "input directory holding bracken report files (required)")
	out     = flag.String("out", "taxonomic_abundance_bubble_chart.html", "output HTML file name")
	pattern = flag.String("pattern", bracken.DefaultSuffix, "report filename suffix")
	rank    = flag.String("rank", "G", "taxonomic rank to keep (e.g. G, S, F, O or all)")
	top     = flag.Int("top", 15, "number of most abundant taxa to keep before the Other rollup")
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
	m := abundance.Assemble(set, *rank, abundance.Fraction)
	if len(m.Taxa) == 0 {
		log.Fatalf("no data found for rank %q", *rank)
	}
	m = m.TopWithOther(*top)

	fig := render.Bubble(m, "Taxonomic Abundance Bubble Chart Across Samples")
	if err := fig.WriteHTML(*out); err != nil {
		log.Fatalf("failed to write bubble chart: %v", err)
	}
	log.Printf("bubble chart saved to %s", *out)
}
