package baseContent

import (
	"bufio"
	"regexp"
	"sort"
	"strings"

	// "compress/gzip"
	gzip "github.com/klauspost/pgzip"

	"github.com/liserjrqlxue/DNA/pkg/util"
	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

var gz = regexp.MustCompile(`\.gz$`)

// CountFastq streams one FASTQ file through Add and derives the percentage
// table. Sequences are uppercased; useRC counts the reverse complement of
// each read instead.
func (bc *BaseContent) CountFastq(fq string, useRC bool) {
	var (
		file    = osUtil.Open(fq)
		scanner *bufio.Scanner
		n       = -1
	)
	defer simpleUtil.DeferClose(file)
	if gz.MatchString(fq) {
		var gr = simpleUtil.HandleError(gzip.NewReader(file))
		defer simpleUtil.DeferClose(gr)
		scanner = bufio.NewScanner(gr)
	} else {
		scanner = bufio.NewScanner(file)
	}
	for scanner.Scan() {
		n++
		if n%4 != 1 {
			continue
		}
		var seq = strings.ToUpper(scanner.Text())
		if useRC {
			seq = util.ReverseComplement(seq)
		}
		bc.Add([]byte(seq))
	}
	simpleUtil.CheckErr(scanner.Err(), fq)
	bc.CalFreq()
}

// WriteHistogram sorts the read length histogram and writes it to path with
// title [length weight]
func (bc *BaseContent) WriteHistogram(path string) {
	var out = osUtil.Create(path)
	fmtUtil.Fprintln(out, "length\tweight")
	var seqLengths []int
	for k := range bc.Histogram {
		seqLengths = append(seqLengths, k)
	}
	sort.Ints(seqLengths)
	for _, k := range seqLengths {
		fmtUtil.Fprintf(out, "%d\t%d\n", k, bc.Histogram[k])
	}
	simpleUtil.CheckErr(out.Close())
}
