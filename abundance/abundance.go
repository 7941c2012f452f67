// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abundance assembles parsed Bracken reports into a dense
// taxon by sample abundance matrix shared by all the visualizations.
package abundance

import (
	"sort"

	"github.com/GmoreiraVet/Guitools/bracken"
)

// Mode selects which report column fills the matrix.
type Mode int

const (
	Fraction Mode = iota // fraction_total_reads
	Reads                // new_est_reads
)

// RankAll disables taxonomic rank filtering in Assemble.
const RankAll = "all"

// Other is the name of the rollup row added by TopWithOther.
const Other = "Other"

// Matrix is a dense abundance table with one row per taxon and one
// column per sample. Rows hold the union of taxa over all samples in
// lexicographic order; columns keep the natural sample order of the
// source ReportSet. Cells for taxa absent from a sample are zero.
type Matrix struct {
	Taxa    []string
	Samples []string
	Values  [][]float64 // indexed [taxon][sample]
}

// Assemble pivots the reports in set into a Matrix, keeping only rows
// at the given taxonomic rank unless rank is RankAll. Rows repeated
// within one report accumulate.
func Assemble(set *bracken.ReportSet, rank string, mode Mode) *Matrix {
	index := make(map[string]int)
	var taxa []string
	for _, sample := range set.Samples {
		for _, rec := range set.Records[sample] {
			if rank != RankAll && rec.Rank != rank {
				continue
			}
			if _, ok := index[rec.Name]; !ok {
				index[rec.Name] = -1
				taxa = append(taxa, rec.Name)
			}
		}
	}
	sort.Strings(taxa)
	for i, t := range taxa {
		index[t] = i
	}

	m := &Matrix{
		Taxa:    taxa,
		Samples: append([]string(nil), set.Samples...),
		Values:  make([][]float64, len(taxa)),
	}
	for i := range m.Values {
		m.Values[i] = make([]float64, len(m.Samples))
	}
	for j, sample := range set.Samples {
		for _, rec := range set.Records[sample] {
			if rank != RankAll && rec.Rank != rank {
				continue
			}
			v := rec.Fraction
			if mode == Reads {
				v = float64(rec.Reads)
			}
			m.Values[index[rec.Name]][j] += v
		}
	}
	return m
}

// Column returns a copy of sample column j.
func (m *Matrix) Column(j int) []float64 {
	col := make([]float64, len(m.Taxa))
	for i, row := range m.Values {
		col[i] = row[j]
	}
	return col
}

// Top returns a matrix keeping only the n taxa with the largest total
// abundance summed over all samples, ties broken lexicographically.
// Row order of the kept taxa is preserved.
func (m *Matrix) Top(n int) *Matrix {
	keep := m.topIndices(n)
	t := &Matrix{
		Taxa:    make([]string, 0, len(keep)),
		Samples: append([]string(nil), m.Samples...),
		Values:  make([][]float64, 0, len(keep)),
	}
	for _, i := range keep {
		t.Taxa = append(t.Taxa, m.Taxa[i])
		t.Values = append(t.Values, append([]float64(nil), m.Values[i]...))
	}
	return t
}

// TopWithOther is Top with an extra final row, named Other, holding the
// per-sample sum of the dropped taxa. No Other row is added when
// nothing was dropped.
func (m *Matrix) TopWithOther(n int) *Matrix {
	t := m.Top(n)
	if len(t.Taxa) == len(m.Taxa) {
		return t
	}
	kept := make(map[string]bool, len(t.Taxa))
	for _, name := range t.Taxa {
		kept[name] = true
	}
	other := make([]float64, len(m.Samples))
	for i, name := range m.Taxa {
		if kept[name] {
			continue
		}
		for j, v := range m.Values[i] {
			other[j] += v
		}
	}
	t.Taxa = append(t.Taxa, Other)
	t.Values = append(t.Values, other)
	return t
}

func (m *Matrix) topIndices(n int) []int {
	if n >= len(m.Taxa) {
		n = len(m.Taxa)
	}
	sums := make([]float64, len(m.Taxa))
	for i, row := range m.Values {
		for _, v := range row {
			sums[i] += v
		}
	}
	order := make([]int, len(m.Taxa))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool {
		if sums[order[x]] != sums[order[y]] {
			return sums[order[x]] > sums[order[y]]
		}
		return m.Taxa[order[x]] < m.Taxa[order[y]]
	})
	keep := append([]int(nil), order[:n]...)
	sort.Ints(keep)
	return keep
}

// Transposed returns a copy of m with rows and columns swapped, so that
// operations defined over sample columns apply to taxa instead.
func (m *Matrix) Transposed() *Matrix {
	t := &Matrix{
		Taxa:    append([]string(nil), m.Samples...),
		Samples: append([]string(nil), m.Taxa...),
		Values:  make([][]float64, len(m.Samples)),
	}
	for i := range t.Values {
		t.Values[i] = make([]float64, len(m.Taxa))
		for j := range t.Values[i] {
			t.Values[i][j] = m.Values[j][i]
		}
	}
	return t
}

// Reorder returns a copy of m with rows and columns permuted. A nil
// permutation leaves that axis unchanged.
func (m *Matrix) Reorder(rows, cols []int) *Matrix {
	if rows == nil {
		rows = identity(len(m.Taxa))
	}
	if cols == nil {
		cols = identity(len(m.Samples))
	}
	r := &Matrix{
		Taxa:    make([]string, len(rows)),
		Samples: make([]string, len(cols)),
		Values:  make([][]float64, len(rows)),
	}
	for j, c := range cols {
		r.Samples[j] = m.Samples[c]
	}
	for i, row := range rows {
		r.Taxa[i] = m.Taxa[row]
		r.Values[i] = make([]float64, len(cols))
		for j, c := range cols {
			r.Values[i][j] = m.Values[row][c]
		}
	}
	return r
}

// Max returns the largest cell value in m, or zero for an empty matrix.
func (m *Matrix) Max() float64 {
	var max float64
	for _, row := range m.Values {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

func identity(n int) []int {
	id := make([]int, n)
	for i := range id {
		id[i] = i
	}
	return id
}
