// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cluster implements average-linkage agglomerative clustering
// over a dissimilarity matrix, producing the tree a dendrogram renderer
// draws and the leaf order a clustered heatmap uses.
package cluster

import (
	"math"

	"github.com/GmoreiraVet/Guitools/beta"
)

// Merge records one agglomeration step. A and B are node ids: ids below
// the leaf count are leaves, id N+i is the cluster created by merge i.
type Merge struct {
	A, B   int
	Height float64
	Size   int
}

// Dendrogram is the result of clustering N leaves: N-1 merges in
// non-decreasing height order.
type Dendrogram struct {
	N      int
	Merges []Merge
}

// Average clusters d with average linkage (UPGMA). When several pairs
// are equally close the pair encountered first in index order is
// merged, so the tree is stable for a given input.
func Average(d *beta.DistanceMatrix) *Dendrogram {
	n := d.Len()
	dg := &Dendrogram{N: n}

	type node struct{ id, size int }
	active := make([]node, n)
	for i := range active {
		active[i] = node{id: i, size: 1}
	}
	w := make([][]float64, n)
	for i := range w {
		w[i] = append([]float64(nil), d.D[i]...)
	}

	next := n
	for len(active) > 1 {
		bi, bj := 0, 1
		best := math.Inf(1)
		for i := 0; i < len(active); i++ {
			for j := i + 1; j < len(active); j++ {
				if w[i][j] < best {
					best, bi, bj = w[i][j], i, j
				}
			}
		}
		a, b := active[bi], active[bj]
		dg.Merges = append(dg.Merges, Merge{A: a.id, B: b.id, Height: best, Size: a.size + b.size})

		// Average-linkage distance update, stored at bi; bj is removed.
		for k := range active {
			if k == bi || k == bj {
				continue
			}
			upd := (float64(a.size)*w[bi][k] + float64(b.size)*w[bj][k]) / float64(a.size+b.size)
			w[bi][k] = upd
			w[k][bi] = upd
		}
		active[bi] = node{id: next, size: a.size + b.size}
		next++

		active = append(active[:bj], active[bj+1:]...)
		w = append(w[:bj], w[bj+1:]...)
		for i := range w {
			w[i] = append(w[i][:bj], w[i][bj+1:]...)
		}
	}
	return dg
}

// Leaves returns the leaf indices in dendrogram display order, left to
// right.
func (dg *Dendrogram) Leaves() []int {
	if dg.N == 0 {
		return nil
	}
	if len(dg.Merges) == 0 {
		return []int{0}
	}
	var walk func(id int) []int
	walk = func(id int) []int {
		if id < dg.N {
			return []int{id}
		}
		m := dg.Merges[id-dg.N]
		return append(walk(m.A), walk(m.B)...)
	}
	return walk(dg.N + len(dg.Merges) - 1)
}

// Segment is one straight piece of a dendrogram outline. Leaves sit at
// x = 0..N-1 in display order and merge heights run up the y axis.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Segments returns the U-shaped merge outlines of the dendrogram as
// drawable line segments, three per merge.
func (dg *Dendrogram) Segments() []Segment {
	pos := make([]float64, dg.N+len(dg.Merges))
	height := make([]float64, dg.N+len(dg.Merges))
	for i, leaf := range dg.Leaves() {
		pos[leaf] = float64(i)
	}
	segs := make([]Segment, 0, 3*len(dg.Merges))
	for i, m := range dg.Merges {
		id := dg.N + i
		pos[id] = (pos[m.A] + pos[m.B]) / 2
		height[id] = m.Height
		segs = append(segs,
			Segment{pos[m.A], height[m.A], pos[m.A], m.Height},
			Segment{pos[m.A], m.Height, pos[m.B], m.Height},
			Segment{pos[m.B], m.Height, pos[m.B], height[m.B]},
		)
	}
	return segs
}
