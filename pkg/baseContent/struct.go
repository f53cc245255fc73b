package baseContent

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	math2 "github.com/liserjrqlxue/goUtil/math"
	"github.com/liserjrqlxue/goUtil/textUtil"
)

// Bases is the counted symbol universe and the table column order.
const Bases = "ACGTN"

// BaseContent holds the per-position base tally of one run. Count and Total
// are only filled when counting from FASTQ; Freq is the percentage table both
// input modes converge on before plotting and export.
type BaseContent struct {
	Name     string
	NumBases int

	Count [][5]int
	Total []int
	Freq  [][5]float64

	// 1-based x labels of a focused view; nil means 1..len(Freq)
	Positions []int

	// value:weight -> length:count
	Histogram map[int]int
}

func New(name string, numBases int) *BaseContent {
	return &BaseContent{
		Name:      name,
		NumBases:  numBases,
		Count:     make([][5]int, numBases),
		Total:     make([]int, numBases),
		Freq:      make([][5]float64, numBases),
		Histogram: make(map[int]int),
	}
}

func BaseIndex(c byte) int {
	switch c {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	case 'N':
		return 4
	}
	return -1
}

// Add tallies one read. Symbols outside Bases are skipped and do not count
// toward the position total.
func (bc *BaseContent) Add(seq []byte) {
	var n = min(bc.NumBases, len(seq))
	for i := 0; i < n; i++ {
		var j = BaseIndex(seq[i])
		if j < 0 {
			continue
		}
		bc.Count[i][j]++
		bc.Total[i]++
	}
	bc.Histogram[len(seq)]++
}

// CalFreq derives percentages from Count/Total. Positions no read reached
// stay all zero.
func (bc *BaseContent) CalFreq() {
	for i := range bc.Count {
		if bc.Total[i] == 0 {
			continue
		}
		for j := range bc.Count[i] {
			bc.Freq[i][j] = 100 * math2.DivisionInt(bc.Count[i][j], bc.Total[i])
		}
	}
}

func (bc *BaseContent) position(i int) int {
	if bc.Positions != nil {
		return bc.Positions[i]
	}
	return i + 1
}

func (bc *BaseContent) Title() string {
	if bc.Positions != nil {
		return fmt.Sprintf(
			"Base Content at Positions %d-%d in %s",
			bc.Positions[0], bc.Positions[len(bc.Positions)-1], bc.Name,
		)
	}
	return fmt.Sprintf("Base Content in %s (First %d Bases)", bc.Name, len(bc.Freq))
}

// WriteTable writes the percentage table as csv, one row per position.
func (bc *BaseContent) WriteTable(w io.Writer) {
	fmtUtil.Fprintf(w, "Position,%s\n", strings.Join(strings.Split(Bases, ""), ","))
	for i, freq := range bc.Freq {
		fmtUtil.Fprintf(w, "%d", bc.position(i))
		for _, v := range freq {
			fmtUtil.Fprintf(w, ",%.4f", v)
		}
		fmtUtil.Fprintf(w, "\n")
	}
}

// LoadTable loads a table written by WriteTable. All five symbol columns are
// required; extra columns are ignored; a table longer than numBases is
// truncated to its first numBases rows.
func LoadTable(path string, numBases int) (*BaseContent, error) {
	var rows = textUtil.File2Slice(path, ",")
	if len(rows) < 2 {
		return nil, fmt.Errorf("table %s: no data rows", path)
	}
	var col = make(map[string]int)
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	for j := 0; j < len(Bases); j++ {
		if _, ok := col[string(Bases[j])]; !ok {
			return nil, fmt.Errorf("table %s: missing column %c", path, Bases[j])
		}
	}

	var bc = &BaseContent{Histogram: make(map[int]int)}
	for i, row := range rows[1:] {
		if numBases > 0 && len(bc.Freq) == numBases {
			break
		}
		if len(row) == 1 && row[0] == "" {
			continue
		}
		var freq [5]float64
		for j := 0; j < len(Bases); j++ {
			var c = col[string(Bases[j])]
			if c >= len(row) {
				return nil, fmt.Errorf("table %s: row %d: missing column %c", path, i+2, Bases[j])
			}
			var v, err = strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
			if err != nil {
				return nil, fmt.Errorf("table %s: row %d: %v", path, i+2, err)
			}
			freq[j] = v
		}
		bc.Freq = append(bc.Freq, freq)
	}
	if len(bc.Freq) == 0 {
		return nil, fmt.Errorf("table %s: no data rows", path)
	}
	bc.NumBases = len(bc.Freq)
	return bc, nil
}

// ParsePositions parses comma separated 1-based positions. Exactly two values
// are an inclusive range, any other count an explicit list. Positions outside
// [1,max] are an error, never clamped.
func ParsePositions(s string, max int) ([]int, error) {
	var positions []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		var p, err = strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad position %q: %v", f, err)
		}
		positions = append(positions, p)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("no positions in %q", s)
	}
	if len(positions) == 2 {
		var start, end = positions[0], positions[1]
		if start > end {
			return nil, fmt.Errorf("bad range %d,%d", start, end)
		}
		positions = nil
		for p := start; p <= end; p++ {
			positions = append(positions, p)
		}
	}
	for _, p := range positions {
		if p < 1 || p > max {
			return nil, fmt.Errorf("position %d out of range [1,%d]", p, max)
		}
	}
	return positions, nil
}

// Select returns a focused view over the given 1-based positions, sharing the
// already derived percentage rows.
func (bc *BaseContent) Select(positions []int) *BaseContent {
	var sub = &BaseContent{
		Name:      bc.Name,
		NumBases:  bc.NumBases,
		Positions: positions,
	}
	for _, p := range positions {
		sub.Freq = append(sub.Freq, bc.Freq[p-1])
	}
	return sub
}
