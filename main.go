package main

import (
	"flag"
	"log"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"SeqStats/pkg/baseContent"
)

// flag
var (
	inputFile = flag.String(
		"input_file",
		"",
		"input FASTQ, support .gz",
	)
	tableInput = flag.String(
		"table_input",
		"",
		"existing base content table to use as input instead of a FASTQ",
	)
	outputPrefix = flag.String(
		"output_prefix",
		"",
		"output file name prefix",
	)
	numBases = flag.Int(
		"num_bases",
		85,
		"number of bases to analyze",
	)
	specificPositions = flag.String(
		"specific_positions",
		"",
		"specific base positions, comma separated; two values mean an inclusive range (e.g. 8,16)",
	)
	specificOutputPrefix = flag.String(
		"specific_output_prefix",
		"",
		"output file name prefix for the specific positions plot",
	)
	interactive = flag.Bool(
		"interactive",
		false,
		"generate an interactive HTML plot",
	)
	addPercentage = flag.Bool(
		"add_percentage",
		false,
		"add percentage labels to the static image",
	)
	rc = flag.Bool(
		"rc",
		false,
		"count the reverse complement of each read",
	)
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if *outputPrefix == "" {
		flag.PrintDefaults()
		log.Fatal("-output_prefix required!")
	}
	if (*inputFile == "") == (*tableInput == "") {
		flag.PrintDefaults()
		log.Fatal("exactly one of -input_file/-table_input required!")
	}

	var bc *baseContent.BaseContent
	if *tableInput != "" {
		var err error
		bc, err = baseContent.LoadTable(*tableInput, *numBases)
		if err != nil {
			log.Fatalf("load table with error:[%v]", err)
		}
		bc.Name = Name(*tableInput)
		slog.Info("table loaded", "path", *tableInput, "positions", len(bc.Freq))
	} else {
		bc = baseContent.New(Name(*inputFile), *numBases)
		bc.CountFastq(*inputFile, *rc)
		slog.Info("fastq counted", "path", *inputFile, "positions", len(bc.Freq))

		var out = osUtil.Create(*outputPrefix + ".csv")
		bc.WriteTable(out)
		simpleUtil.CheckErr(out.Close())
		bc.SaveXlsx(*outputPrefix + ".xlsx")
		bc.WriteHistogram(*outputPrefix + ".histogram.txt")
	}

	if *specificPositions != "" {
		var positions, err = baseContent.ParsePositions(*specificPositions, len(bc.Freq))
		if err != nil {
			log.Fatalf("specific positions with error:[%v]", err)
		}
		var prefix = *specificOutputPrefix
		if prefix == "" {
			prefix = *outputPrefix + ".specific"
		}
		var sub = bc.Select(positions)
		sub.PlotPNG(prefix+".png", *addPercentage)
		if *interactive {
			sub.PlotHTML(prefix + ".html")
		}
	}

	bc.PlotPNG(*outputPrefix+".png", *addPercentage)
	if *interactive {
		bc.PlotHTML(*outputPrefix + ".html")
	}

	slog.Info("Done", "time", time.Since(t0))
}

// Name strips the directory and everything from the first dot.
func Name(path string) string {
	var base = filepath.Base(path)
	if i := strings.Index(base, "."); i >= 0 {
		return base[:i]
	}
	return base
}
