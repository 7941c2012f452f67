// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abundance

import (
	"reflect"
	"testing"

	"github.com/GmoreiraVet/Guitools/bracken"
)

func testSet() *bracken.ReportSet {
	return &bracken.ReportSet{
		Samples: []string{"s1", "s2"},
		Records: map[string][]bracken.Record{
			"s1": {
				{Name: "A", Rank: "G", Reads: 10, Fraction: 10},
				{Name: "B", Rank: "G", Reads: 5, Fraction: 5},
				{Name: "X", Rank: "S", Reads: 99, Fraction: 99},
			},
			"s2": {
				{Name: "B", Rank: "G", Reads: 15, Fraction: 15},
			},
		},
	}
}

func TestAssemble(t *testing.T) {
	m := Assemble(testSet(), "G", Fraction)

	if want := []string{"A", "B"}; !reflect.DeepEqual(m.Taxa, want) {
		t.Errorf("unexpected taxa: got %v want %v", m.Taxa, want)
	}
	if want := []string{"s1", "s2"}; !reflect.DeepEqual(m.Samples, want) {
		t.Errorf("unexpected samples: got %v want %v", m.Samples, want)
	}
	want := [][]float64{{10, 0}, {5, 15}}
	if !reflect.DeepEqual(m.Values, want) {
		t.Errorf("unexpected values: got %v want %v", m.Values, want)
	}
	for i, row := range m.Values {
		for j, v := range row {
			if v < 0 {
				t.Errorf("negative abundance at %d,%d: %v", i, j, v)
			}
		}
	}
}

func TestAssembleRankAll(t *testing.T) {
	m := Assemble(testSet(), RankAll, Reads)
	if want := []string{"A", "B", "X"}; !reflect.DeepEqual(m.Taxa, want) {
		t.Errorf("unexpected taxa: got %v want %v", m.Taxa, want)
	}
	if got := m.Values[2][0]; got != 99 {
		t.Errorf("unexpected X reads in s1: got %v want 99", got)
	}
}

func TestAssembleEmptyRank(t *testing.T) {
	m := Assemble(testSet(), "F", Fraction)
	if len(m.Taxa) != 0 {
		t.Errorf("expected no taxa for rank F, got %v", m.Taxa)
	}
	if len(m.Samples) != 2 {
		t.Errorf("expected sample columns to survive, got %v", m.Samples)
	}
}

func topTestMatrix() *Matrix {
	return &Matrix{
		Taxa:    []string{"A", "B", "C", "D"},
		Samples: []string{"s1", "s2"},
		Values: [][]float64{
			{1, 1}, // A: 2
			{5, 5}, // B: 10
			{3, 4}, // C: 7
			{0, 1}, // D: 1
		},
	}
}

func TestTop(t *testing.T) {
	m := topTestMatrix().Top(2)
	if want := []string{"B", "C"}; !reflect.DeepEqual(m.Taxa, want) {
		t.Errorf("unexpected taxa: got %v want %v", m.Taxa, want)
	}
	want := [][]float64{{5, 5}, {3, 4}}
	if !reflect.DeepEqual(m.Values, want) {
		t.Errorf("unexpected values: got %v want %v", m.Values, want)
	}
}

func TestTopTies(t *testing.T) {
	m := &Matrix{
		Taxa:    []string{"A", "B", "C"},
		Samples: []string{"s1"},
		Values:  [][]float64{{1}, {1}, {1}},
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(m.Top(2).Taxa, want) {
		t.Errorf("unexpected tie-break: got %v want %v", m.Top(2).Taxa, want)
	}
}

func TestTopWithOther(t *testing.T) {
	m := topTestMatrix().TopWithOther(2)
	if want := []string{"B", "C", Other}; !reflect.DeepEqual(m.Taxa, want) {
		t.Errorf("unexpected taxa: got %v want %v", m.Taxa, want)
	}
	// Other holds A+D per sample.
	if want := []float64{1, 2}; !reflect.DeepEqual(m.Values[2], want) {
		t.Errorf("unexpected Other row: got %v want %v", m.Values[2], want)
	}
}

func TestTopWithOtherNothingDropped(t *testing.T) {
	m := topTestMatrix().TopWithOther(10)
	if len(m.Taxa) != 4 {
		t.Errorf("expected no Other row when nothing dropped, got taxa %v", m.Taxa)
	}
}

func TestTransposed(t *testing.T) {
	m := topTestMatrix().Transposed()
	if want := []string{"s1", "s2"}; !reflect.DeepEqual(m.Taxa, want) {
		t.Errorf("unexpected transposed rows: got %v want %v", m.Taxa, want)
	}
	want := [][]float64{{1, 5, 3, 0}, {1, 5, 4, 1}}
	if !reflect.DeepEqual(m.Values, want) {
		t.Errorf("unexpected transposed values: got %v want %v", m.Values, want)
	}
}

func TestReorder(t *testing.T) {
	m := topTestMatrix().Reorder([]int{2, 0}, []int{1, 0})
	if want := []string{"C", "A"}; !reflect.DeepEqual(m.Taxa, want) {
		t.Errorf("unexpected taxa: got %v want %v", m.Taxa, want)
	}
	if want := []string{"s2", "s1"}; !reflect.DeepEqual(m.Samples, want) {
		t.Errorf("unexpected samples: got %v want %v", m.Samples, want)
	}
	want := [][]float64{{4, 3}, {1, 1}}
	if !reflect.DeepEqual(m.Values, want) {
		t.Errorf("unexpected values: got %v want %v", m.Values, want)
	}
}

func TestMax(t *testing.T) {
	if got := topTestMatrix().Max(); got != 5 {
		t.Errorf("unexpected max: got %v want 5", got)
	}
	empty := &Matrix{}
	if got := empty.Max(); got != 0 {
		t.Errorf("unexpected max for empty matrix: got %v want 0", got)
	}
}
