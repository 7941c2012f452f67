// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"math"
	"reflect"
	"sort"
	"testing"

	"github.com/GmoreiraVet/Guitools/beta"
)

func TestAverage(t *testing.T) {
	d := &beta.DistanceMatrix{
		Names: []string{"a", "b", "c"},
		D: [][]float64{
			{0, 0.1, 0.9},
			{0.1, 0, 0.95},
			{0.9, 0.95, 0},
		},
	}
	dg := Average(d)
	if len(dg.Merges) != 2 {
		t.Fatalf("unexpected merge count: got %d want 2", len(dg.Merges))
	}
	first := dg.Merges[0]
	if first.A != 0 || first.B != 1 || math.Abs(first.Height-0.1) > 1e-12 {
		t.Errorf("unexpected first merge: %+v", first)
	}
	second := dg.Merges[1]
	if second.A != 3 || second.B != 2 {
		t.Errorf("unexpected second merge: %+v", second)
	}
	// Average of 0.9 and 0.95.
	if math.Abs(second.Height-0.925) > 1e-12 {
		t.Errorf("unexpected second merge height: got %v want 0.925", second.Height)
	}
	if second.Size != 3 {
		t.Errorf("unexpected final cluster size: got %d want 3", second.Size)
	}
}

func TestAverageHeightsNonDecreasing(t *testing.T) {
	d := &beta.DistanceMatrix{
		Names: []string{"a", "b", "c", "d", "e"},
		D: [][]float64{
			{0, 0.2, 0.7, 0.9, 0.5},
			{0.2, 0, 0.8, 0.85, 0.45},
			{0.7, 0.8, 0, 0.3, 0.6},
			{0.9, 0.85, 0.3, 0, 0.65},
			{0.5, 0.45, 0.6, 0.65, 0},
		},
	}
	dg := Average(d)
	for i := 1; i < len(dg.Merges); i++ {
		if dg.Merges[i].Height < dg.Merges[i-1].Height {
			t.Errorf("merge %d height %v below previous %v", i, dg.Merges[i].Height, dg.Merges[i-1].Height)
		}
	}
}

func TestAverageTieBreak(t *testing.T) {
	// All pairs equidistant: merges must proceed in index order.
	n := 4
	d := &beta.DistanceMatrix{Names: make([]string, n), D: make([][]float64, n)}
	for i := range d.D {
		d.D[i] = make([]float64, n)
		for j := range d.D[i] {
			if i != j {
				d.D[i][j] = 0.5
			}
		}
	}
	dg := Average(d)
	want := []Merge{
		{A: 0, B: 1, Height: 0.5, Size: 2},
		{A: 4, B: 2, Height: 0.5, Size: 3},
		{A: 5, B: 3, Height: 0.5, Size: 4},
	}
	if !reflect.DeepEqual(dg.Merges, want) {
		t.Errorf("unexpected merges:\ngot: %+v\nwant:%+v", dg.Merges, want)
	}
}

func TestLeaves(t *testing.T) {
	d := &beta.DistanceMatrix{
		Names: []string{"a", "b", "c", "d"},
		D: [][]float64{
			{0, 0.9, 0.1, 0.8},
			{0.9, 0, 0.85, 0.2},
			{0.1, 0.85, 0, 0.75},
			{0.8, 0.2, 0.75, 0},
		},
	}
	dg := Average(d)
	leaves := dg.Leaves()
	if len(leaves) != 4 {
		t.Fatalf("unexpected leaf count: got %d want 4", len(leaves))
	}
	sorted := append([]int(nil), leaves...)
	sort.Ints(sorted)
	if !reflect.DeepEqual(sorted, []int{0, 1, 2, 3}) {
		t.Errorf("leaves are not a permutation: %v", leaves)
	}
	// The near pairs (0,2) and (1,3) must be adjacent in display order.
	pos := make(map[int]int)
	for i, l := range leaves {
		pos[l] = i
	}
	if diff := pos[0] - pos[2]; diff != 1 && diff != -1 {
		t.Errorf("leaves 0 and 2 not adjacent: %v", leaves)
	}
	if diff := pos[1] - pos[3]; diff != 1 && diff != -1 {
		t.Errorf("leaves 1 and 3 not adjacent: %v", leaves)
	}
}

func TestLeavesSingle(t *testing.T) {
	d := &beta.DistanceMatrix{Names: []string{"a"}, D: [][]float64{{0}}}
	if got := Average(d).Leaves(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("unexpected leaves: got %v want [0]", got)
	}
}

func TestSegments(t *testing.T) {
	d := &beta.DistanceMatrix{
		Names: []string{"a", "b", "c"},
		D: [][]float64{
			{0, 0.1, 0.9},
			{0.1, 0, 0.95},
			{0.9, 0.95, 0},
		},
	}
	dg := Average(d)
	segs := dg.Segments()
	if len(segs) != 3*len(dg.Merges) {
		t.Fatalf("unexpected segment count: got %d want %d", len(segs), 3*len(dg.Merges))
	}
	var maxY float64
	for _, s := range segs {
		for _, y := range []float64{s.Y0, s.Y1} {
			if y > maxY {
				maxY = y
			}
		}
		for _, x := range []float64{s.X0, s.X1} {
			if x < 0 || x > float64(dg.N-1) {
				t.Errorf("segment x out of leaf range: %+v", s)
			}
		}
	}
	if math.Abs(maxY-dg.Merges[len(dg.Merges)-1].Height) > 1e-12 {
		t.Errorf("unexpected top height: got %v want %v", maxY, dg.Merges[len(dg.Merges)-1].Height)
	}
}
