// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rarefy computes rarefaction curves from per-taxon read
// counts.
//
// Rather than Monte Carlo subsampling, the curve is the exact expected
// richness under drawing reads without replacement: for a pool of N
// reads where taxon i contributes cᵢ, the chance that taxon i is absent
// from a subsample of depth d is C(N-cᵢ,d)/C(N,d), so the expected
// number of distinct taxa observed is Σᵢ 1 - C(N-cᵢ,d)/C(N,d). The
// result is deterministic and monotonically non-decreasing in d.
package rarefy

import "math"

// Point is one rarefaction curve sample: the expected number of
// distinct taxa observed in a subsample of Depth reads.
type Point struct {
	Depth    int64
	Richness float64
}

// Curve returns the expected richness at each requested depth. Depths
// that are not positive or exceed the pool total are skipped. Taxa with
// non-positive counts do not contribute.
func Curve(counts []int64, depths []int64) []Point {
	var total int64
	for _, c := range counts {
		if c > 0 {
			total += c
		}
	}
	var pts []Point
	for _, d := range depths {
		if d <= 0 || d > total {
			continue
		}
		var expect float64
		for _, c := range counts {
			if c <= 0 {
				continue
			}
			expect += 1 - absentProb(total, c, d)
		}
		pts = append(pts, Point{Depth: d, Richness: expect})
	}
	return pts
}

// absentProb is the hypergeometric probability that a taxon with count
// c contributes no read to a subsample of depth d from a pool of total
// reads.
func absentProb(total, c, d int64) float64 {
	if total-c < d {
		return 0
	}
	return math.Exp(lchoose(total-c, d) - lchoose(total, d))
}

// lchoose is log C(n, k).
func lchoose(n, k int64) float64 {
	ln, _ := math.Lgamma(float64(n + 1))
	lk, _ := math.Lgamma(float64(k + 1))
	lnk, _ := math.Lgamma(float64(n - k + 1))
	return ln - lk - lnk
}

// Depths returns an evenly spaced grid of subsample depths ending
// exactly at total. At most points depths are returned; the step is
// never below one read.
func Depths(total int64, points int) []int64 {
	if total <= 0 || points <= 0 {
		return nil
	}
	step := total / int64(points)
	if step < 1 {
		step = 1
	}
	var depths []int64
	for d := step; d < total; d += step {
		depths = append(depths, d)
	}
	return append(depths, total)
}

// Total returns the summed read pool of counts, ignoring non-positive
// entries.
func Total(counts []int64) int64 {
	var total int64
	for _, c := range counts {
		if c > 0 {
			total += c
		}
	}
	return total
}
