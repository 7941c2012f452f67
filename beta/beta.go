// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package beta computes between-sample diversity measures from an
// abundance matrix: Bray-Curtis dissimilarity and its principal
// coordinate decomposition.
package beta

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/mat"

	"github.com/GmoreiraVet/Guitools/abundance"
)

// DistanceMatrix is a symmetric pairwise dissimilarity matrix with a
// zero diagonal. Names labels its rows and columns.
type DistanceMatrix struct {
	Names []string
	D     [][]float64
}

// Len returns the number of entities the matrix compares.
func (d *DistanceMatrix) Len() int { return len(d.Names) }

// BrayCurtis returns the pairwise Bray-Curtis dissimilarity between the
// sample columns of m:
//
//	1 - 2·Σᵢ min(aᵢ,bᵢ) / (Σᵢ aᵢ + Σᵢ bᵢ)
//
// Values are bounded to [0,1]. A pair of all-zero columns is defined to
// have dissimilarity zero.
func BrayCurtis(m *abundance.Matrix) *DistanceMatrix {
	n := len(m.Samples)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var shared, total float64
			for _, row := range m.Values {
				a, b := row[i], row[j]
				shared += math.Min(a, b)
				total += a + b
			}
			var bc float64
			if total > 0 {
				bc = 1 - 2*shared/total
			}
			d[i][j] = bc
			d[j][i] = bc
		}
	}
	return &DistanceMatrix{Names: append([]string(nil), m.Samples...), D: d}
}

// Ordination holds principal coordinates for a set of samples. Coords
// is indexed [sample][axis]; Explained gives the percentage of variance
// carried by each axis.
type Ordination struct {
	Names     []string
	Coords    [][]float64
	Explained []float64
}

// PCoA performs principal coordinate analysis of d, returning up to k
// axes. The Gower-centered matrix -½d² is eigen-decomposed and the
// coordinates are eigenvectors scaled by the square root of their
// eigenvalue. Axes with non-positive eigenvalues carry no metric
// information and are discarded, from the variance denominator as well,
// so fewer than k axes may be returned.
func PCoA(d *DistanceMatrix, k int) (*Ordination, error) {
	n := d.Len()
	if n < 2 {
		return nil, pfx.Err(fmt.Errorf("beta: pcoa needs at least two samples, got %d", n))
	}
	if k < 1 {
		return nil, pfx.Err(fmt.Errorf("beta: pcoa needs at least one axis, got %d", k))
	}

	// Gower double centering: B = J·(-½d²)·J with J = I - 11ᵀ/n.
	a := make([][]float64, n)
	rowMean := make([]float64, n)
	var grand float64
	for i := range a {
		a[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			a[i][j] = -0.5 * d.D[i][j] * d.D[i][j]
			rowMean[i] += a[i][j] / float64(n)
		}
		grand += rowMean[i] / float64(n)
	}
	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			b.SetSym(i, j, a[i][j]-rowMean[i]-rowMean[j]+grand)
		}
	}

	var es mat.EigenSym
	if !es.Factorize(b, true) {
		return nil, pfx.Err(errors.New("beta: eigendecomposition failed"))
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool { return vals[order[x]] > vals[order[y]] })

	var sumPos float64
	for _, v := range vals {
		if v > 0 {
			sumPos += v
		}
	}
	if sumPos == 0 {
		return nil, pfx.Err(errors.New("beta: distance matrix carries no variance"))
	}

	ord := &Ordination{
		Names:  append([]string(nil), d.Names...),
		Coords: make([][]float64, n),
	}
	for i := range ord.Coords {
		ord.Coords[i] = make([]float64, 0, k)
	}
	for _, ax := range order {
		if len(ord.Explained) == k || vals[ax] <= 0 {
			break
		}
		scale := math.Sqrt(vals[ax])
		for i := range ord.Coords {
			ord.Coords[i] = append(ord.Coords[i], vecs.At(i, ax)*scale)
		}
		ord.Explained = append(ord.Explained, 100*vals[ax]/sumPos)
	}
	return ord, nil
}
