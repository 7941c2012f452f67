// Copyright ©2026 the Guitools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bracken reads Bracken abundance report files.
//
// A Bracken report is a tab-separated table with a header row carrying
// the columns name, taxonomy_id, taxonomy_lvl, kraken_assigned_reads,
// added_reads, new_est_reads and fraction_total_reads. One report file
// describes one sample.
package bracken

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// DefaultSuffix is the filename suffix Bracken gives its report files.
// The sample name is the part of the filename before the suffix.
const DefaultSuffix = "_bracken.txt"

// ErrNoReports is returned by LoadDir when no report file in the
// directory could be used.
var ErrNoReports = errors.New("bracken: no bracken reports found")

// Record is one row of a Bracken abundance report.
type Record struct {
	Name        string  `csv:"name"`
	TaxID       string  `csv:"taxonomy_id"`
	Rank        string  `csv:"taxonomy_lvl"`
	KrakenReads int64   `csv:"kraken_assigned_reads"`
	AddedReads  int64   `csv:"added_reads"`
	Reads       int64   `csv:"new_est_reads"`
	Fraction    float64 `csv:"fraction_total_reads"`
}

// required lists the header columns a report must carry to be usable.
var required = []string{"name", "taxonomy_lvl", "new_est_reads", "fraction_total_reads"}

// ReadReport parses a tab-separated Bracken report. A report whose
// header does not carry the required columns is rejected.
func ReadReport(r io.Reader) ([]Record, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}
	header, _, ok := strings.Cut(strings.TrimPrefix(string(b), "\ufeff"), "\n")
	if !ok {
		return nil, pfx.Err(errors.New("bracken: missing report header"))
	}
	have := make(map[string]bool)
	for _, c := range strings.Split(strings.TrimRight(header, "\r"), "\t") {
		have[c] = true
	}
	for _, c := range required {
		if !have[c] {
			return nil, pfx.Err(fmt.Errorf("bracken: report missing %q column", c))
		}
	}

	// Tell gocsv to use tab as the delimiter.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		tr := csv.NewReader(in)
		tr.Comma = '\t'
		tr.LazyQuotes = true
		return tr
	})

	var recs []Record
	if err := gocsv.UnmarshalBytes(b, &recs); err != nil {
		return nil, pfx.Err(err)
	}
	return recs, nil
}

// ReportSet holds the parsed reports of a directory scan. Samples keeps
// sample names in natural order; Records maps each sample name to its
// report rows.
type ReportSet struct {
	Samples []string
	Records map[string][]Record
}

// LoadDir scans dir, non-recursively, for files named *<suffix> and
// parses each as a Bracken report. A file that cannot be read or parsed
// is reported to the log and skipped without failing the scan. LoadDir
// returns an error wrapping ErrNoReports when no report was usable.
func LoadDir(dir, suffix string) (*ReportSet, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*"+suffix))
	if err != nil {
		return nil, pfx.Err(err)
	}
	set := &ReportSet{Records: make(map[string][]Record)}
	for _, path := range paths {
		recs, err := readFile(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			continue
		}
		name := strings.TrimSuffix(filepath.Base(path), suffix)
		set.Samples = append(set.Samples, name)
		set.Records[name] = recs
	}
	if len(set.Samples) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoReports, dir)
	}
	sort.Sort(byNaturalName(set.Samples))
	return set, nil
}

func readFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadReport(f)
}

// Reads returns the new_est_reads counts of recs.
func Reads(recs []Record) []int64 {
	counts := make([]int64, len(recs))
	for i, r := range recs {
		counts[i] = r.Reads
	}
	return counts
}

// byNaturalName orders sample names by leading integer when one is
// present, falling back to lexicographic order. Names without a leading
// integer sort after those with one, matching run-order naming such as
// 1_gut, 2_gut, 10_gut.
type byNaturalName []string

func (s byNaturalName) Len() int      { return len(s) }
func (s byNaturalName) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s byNaturalName) Less(i, j int) bool {
	ni, oki := leadingInt(s[i])
	nj, okj := leadingInt(s[j])
	switch {
	case oki && okj:
		if ni != nj {
			return ni < nj
		}
	case oki:
		return true
	case okj:
		return false
	}
	return s[i] < s[j]
}

func leadingInt(s string) (int, bool) {
	var i int
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
