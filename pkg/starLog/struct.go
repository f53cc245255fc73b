package starLog

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// Metric maps one STAR Log.final.out label to its canonical short name.
type Metric struct {
	Key   string
	Label string
}

// Metrics is the fixed set of extracted metrics, in output column order.
var Metrics = []Metric{
	{"input_reads", "Number of input reads"},
	{"avg_input_length", "Average input read length"},
	{"uniq_mapped_reads", "Uniquely mapped reads number"},
	{"uniq_mapped_pct", "Uniquely mapped reads %"},
	{"avg_mapped_length", "Average mapped length"},
	{"splices_total", "Number of splices: Total"},
	{"mismatch_rate_pct", "Mismatch rate per base, %"},
	{"multi_loci_reads", "Number of reads mapped to multiple loci"},
	{"multi_loci_pct", "% of reads mapped to multiple loci"},
	{"unmapped_short_pct", "% of reads unmapped: too short"},
	{"chimeric_pct", "% of chimeric reads"},
}

func Labels() []string {
	var labels []string
	for _, m := range Metrics {
		labels = append(labels, m.Label)
	}
	return labels
}

// 构建Aho-Corasick自动机
var matcher = ahocorasick.NewStringMatcher(Labels())

// FindFinalOut locates the single *.final.out summary in dir.
func FindFinalOut(dir string) (string, error) {
	var hits, err = filepath.Glob(filepath.Join(dir, "*.final.out"))
	if err != nil {
		return "", err
	}
	if len(hits) == 0 {
		return "", fmt.Errorf("no *.final.out in %s", dir)
	}
	if len(hits) > 1 {
		return "", fmt.Errorf("multiple *.final.out in %s: %v", dir, hits)
	}
	return hits[0], nil
}

// ParseFinalOut scans the summary line by line and extracts the known
// metrics. Section headers and unknown labels are ignored; absent metrics are
// simply missing from the result.
func ParseFinalOut(r io.Reader) map[string]string {
	var (
		values  = make(map[string]string)
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		var line = scanner.Text()
		if !strings.Contains(line, "|") {
			continue
		}
		var hits = matcher.Match([]byte(line))
		if len(hits) == 0 {
			continue
		}
		var a = strings.SplitN(line, "|", 2)
		var key = strings.TrimSpace(a[0])
		for _, i := range hits {
			if Metrics[i].Label == key {
				values[Metrics[i].Key] = strings.TrimSpace(a[1])
			}
		}
	}
	simpleUtil.CheckErr(scanner.Err())
	return values
}

// WriteRow writes the single-row record: a header line and the sample row.
// Missing metrics stay empty fields.
func WriteRow(w io.Writer, name string, values map[string]string) {
	var (
		title = []string{"sample"}
		row   = []string{name}
	)
	for _, m := range Metrics {
		title = append(title, m.Key)
		row = append(row, values[m.Key])
	}
	fmtUtil.Fprintln(w, strings.Join(title, "\t"))
	fmtUtil.Fprintln(w, strings.Join(row, "\t"))
}
