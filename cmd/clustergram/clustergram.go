// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// clustergram renders a clustered abundance heatmap: samples and taxa
// are each ordered by average-linkage clustering of their Bray-Curtis
// dissimilarities, and the sample dendrogram is written alongside the
// reordered heatmap.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/GmoreiraVet/Guitools/abundance"
	"github.com/GmoreiraVet/Guitools/beta"
	"github.com/GmoreiraVet/Guitools/bracken"
	"github.com/GmoreiraVet/Guitools/cluster"
	"github.com/GmoreiraVet/Guitools/render"
)

var (
	in      = flag.String("in", "", "input directory holding bracken report files (required)")
	out     = flag.String("out", "taxonomic_abundance_clustergram.png", "output PNG file name")
	treeOut = flag.String("tree", "sample_dendrogram.png", "output PNG file name for the sample dendrogram")
	pattern = flag.String("pattern", bracken.DefaultSuffix, "report filename suffix")
	rank    = flag.String("rank", "G", "taxonomic rank to keep (e.g. G, S, F, O or all)")
	top     = flag.Int("top", 15, "number of most abundant taxa to keep")
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
	m = m.Top(*top)

	samples := cluster.Average(beta.BrayCurtis(m))
	taxa := cluster.Average(beta.BrayCurtis(m.Transposed()))
	ordered := m.Reorder(taxa.Leaves(), samples.Leaves())

	if err := render.HeatmapPNG(ordered, "Taxonomic Abundance Clustergram", *out); err != nil {
		log.Fatalf("failed to write clustergram: %v", err)
	}
	log.Printf("clustergram saved to %s", *out)

	if err := render.DendrogramPNG(samples, m.Samples, "Sample Clustering (Bray-Curtis, average linkage)", *treeOut); err != nil {
		log.Fatalf("failed to write dendrogram: %v", err)
	}
	log.Printf("dendrogram saved to %s", *treeOut)
}
