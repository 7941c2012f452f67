// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pcoa renders a principal coordinate analysis plot of the Bray-Curtis
// dissimilarities between samples, annotated with the variance
// explained by each axis.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/GmoreiraVet/Guitools/abundance"
	"github.com/GmoreiraVet/Guitools/beta"
	"github.com/GmoreiraVet/Guitools/bracken"
	"github.com/GmoreiraVet/Guitools/render"
)

var (
	in      = flag.String("in", "", "input directory holding bracken report files (required)")
	out     = flag.String("out", "pcoa_bray_curtis.html", "output HTML file name")
	pattern = flag.String("pattern", bracken.DefaultSuffix, "report filename suffix")
	rank    = flag.String("rank", abundance.RankAll, "taxonomic rank to keep (e.g. G, S, F, O or all)")
	axes    = flag.Int("axes", 5, "number of principal coordinate axes to compute")
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
	m := abundance.Assemble(set, *rank, abundance.Reads)
	if len(m.Taxa) == 0 {
		log.Fatalf("no data found for rank %q", *rank)
	}

	ord, err := beta.PCoA(beta.BrayCurtis(m), *axes)
	if err != nil {
		log.Fatalf("failed ordination: %v", err)
	}
	for i, pct := range ord.Explained {
		log.Printf("PC%d explains %.2f%% of variance", i+1, pct)
	}

	const title = "Principal Coordinate Analysis (PCoA) of Bray-Curtis Dissimilarity"
	if err := render.Ordination(ord, title).WriteHTML(*out); err != nil {
		log.Fatalf("failed to write pcoa plot: %v", err)
	}
	log.Printf("pcoa plot saved to %s", *out)
}
