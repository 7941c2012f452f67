// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rarefy

import (
	"math"
	"reflect"
	"testing"
)

func TestCurveMonotone(t *testing.T) {
	counts := []int64{1000, 200, 50, 3, 1}
	pts := Curve(counts, Depths(Total(counts), 40))
	if len(pts) == 0 {
		t.Fatal("expected curve points")
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Richness < pts[i-1].Richness {
			t.Errorf("richness decreases at depth %d: %v -> %v", pts[i].Depth, pts[i-1].Richness, pts[i].Richness)
		}
		if pts[i].Depth <= pts[i-1].Depth {
			t.Errorf("depths not increasing at %d", i)
		}
	}
}

func TestCurveFullDepth(t *testing.T) {
	counts := []int64{10, 5, 1, 0}
	total := Total(counts)
	pts := Curve(counts, []int64{total})
	if len(pts) != 1 {
		t.Fatalf("unexpected point count: got %d want 1", len(pts))
	}
	// Drawing the whole pool must observe every taxon with reads.
	if math.Abs(pts[0].Richness-3) > 1e-9 {
		t.Errorf("unexpected richness at full depth: got %v want 3", pts[0].Richness)
	}
}

func TestCurveSkipsExcessDepths(t *testing.T) {
	counts := []int64{10, 6}
	pts := Curve(counts, []int64{-1, 0, 4, 100})
	if len(pts) != 1 || pts[0].Depth != 4 {
		t.Errorf("unexpected points: %+v", pts)
	}
}

func TestCurveExpectation(t *testing.T) {
	// Two taxa with one read each: a single draw sees exactly one.
	pts := Curve([]int64{1, 1}, []int64{1})
	if math.Abs(pts[0].Richness-1) > 1e-12 {
		t.Errorf("unexpected expected richness: got %v want 1", pts[0].Richness)
	}
	// Nine reads of one taxon plus a singleton, depth 2: the dominant
	// taxon is always seen, the singleton with chance 1 - C(9,2)/C(10,2).
	pts = Curve([]int64{9, 1}, []int64{2})
	if math.Abs(pts[0].Richness-1.2) > 1e-9 {
		t.Errorf("unexpected expected richness: got %v want 1.2", pts[0].Richness)
	}
}

func TestDepths(t *testing.T) {
	tests := []struct {
		total  int64
		points int
		want   []int64
	}{
		{total: 100, points: 10, want: []int64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
		{total: 5, points: 10, want: []int64{1, 2, 3, 4, 5}},
		{total: 7, points: 3, want: []int64{2, 4, 6, 7}},
		{total: 0, points: 10, want: nil},
		{total: 10, points: 0, want: nil},
	}
	for _, test := range tests {
		got := Depths(test.total, test.points)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Depths(%d, %d): got %v want %v", test.total, test.points, got, test.want)
		}
	}
}

func TestTotal(t *testing.T) {
	if got := Total([]int64{3, -2, 0, 7}); got != 10 {
		t.Errorf("unexpected total: got %d want 10", got)
	}
}
