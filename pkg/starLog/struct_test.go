package starLog

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var finalOut = `                                 Started job on |	Sep 01 10:00:00
                              Started mapping on |	Sep 01 10:05:00
                                     Finished on |	Sep 01 10:20:00
                          Number of input reads |	1000000
                      Average input read length |	150
                                    UNIQUE READS:
                   Uniquely mapped reads number |	925000
                        Uniquely mapped reads % |	92.50%
                          Average mapped length |	149.50
                       Number of splices: Total |	50000
            Number of splices: Annotated (sjdb) |	48000
                      Mismatch rate per base, % |	0.25%
                             MULTI-MAPPING READS:
        Number of reads mapped to multiple loci |	40000
             % of reads mapped to multiple loci |	4.00%
                                  UNMAPPED READS:
                  % of reads unmapped: too short |	3.00%
                                  CHIMERIC READS:
                             % of chimeric reads |	0.10%
`

func TestParseFinalOut(t *testing.T) {
	values := ParseFinalOut(strings.NewReader(finalOut))
	expected := map[string]string{
		"input_reads":        "1000000",
		"avg_input_length":   "150",
		"uniq_mapped_reads":  "925000",
		"uniq_mapped_pct":    "92.50%",
		"avg_mapped_length":  "149.50",
		"splices_total":      "50000",
		"mismatch_rate_pct":  "0.25%",
		"multi_loci_reads":   "40000",
		"multi_loci_pct":     "4.00%",
		"unmapped_short_pct": "3.00%",
		"chimeric_pct":       "0.10%",
	}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("values = %v; want %v", values, expected)
	}
}

func TestParseFinalOutMissing(t *testing.T) {
	// only one known line, the rest of the metrics stay absent
	values := ParseFinalOut(strings.NewReader("    Uniquely mapped reads % |	92.50%\n"))
	expected := map[string]string{"uniq_mapped_pct": "92.50%"}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("values = %v; want %v", values, expected)
	}
}

func TestWriteRow(t *testing.T) {
	var buf bytes.Buffer
	WriteRow(&buf, "sampleA", map[string]string{"uniq_mapped_pct": "92.50%"})

	expected := "sample\tinput_reads\tavg_input_length\tuniq_mapped_reads\tuniq_mapped_pct\t" +
		"avg_mapped_length\tsplices_total\tmismatch_rate_pct\tmulti_loci_reads\tmulti_loci_pct\t" +
		"unmapped_short_pct\tchimeric_pct\n" +
		"sampleA\t\t\t\t92.50%\t\t\t\t\t\t\t\n"
	if buf.String() != expected {
		t.Errorf("Unexpected record.\nExpected: %q\nActual: %q", expected, buf.String())
	}
}

func TestFindFinalOut(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty directory is fatal", func(t *testing.T) {
		if _, err := FindFinalOut(dir); err == nil {
			t.Error("Expected an error, but got nil")
		}
	})

	t.Run("single summary is found", func(t *testing.T) {
		path := filepath.Join(dir, "sampleA.final.out")
		if err := os.WriteFile(path, []byte(finalOut), 0644); err != nil {
			t.Fatalf("Failed to write summary: %v", err)
		}
		got, err := FindFinalOut(dir)
		if err != nil {
			t.Fatalf("FindFinalOut: %v", err)
		}
		if got != path {
			t.Errorf("FindFinalOut = %q; want %q", got, path)
		}
	})

	t.Run("multiple summaries are fatal", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "sampleB.final.out"), []byte(finalOut), 0644); err != nil {
			t.Fatalf("Failed to write summary: %v", err)
		}
		if _, err := FindFinalOut(dir); err == nil {
			t.Error("Expected an error, but got nil")
		}
	})
}
