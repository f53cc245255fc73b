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

	"SeqStats/pkg/starLog"
)

func main() {
	t0 := time.Now()
	flag.Parse()
	if flag.NArg() != 2 {
		flag.PrintDefaults()
		log.Fatal("usage: starFormat <directory> <output_name>")
	}
	var (
		dir        = flag.Arg(0)
		outputName = flag.Arg(1)
	)

	var path, err = starLog.FindFinalOut(dir)
	if err != nil {
		log.Fatalf("find summary with error:[%v]", err)
	}

	var in = osUtil.Open(path)
	var values = starLog.ParseFinalOut(in)
	simpleUtil.CheckErr(in.Close())
	slog.Info("summary parsed", "path", path, "metrics", len(values))

	var out = osUtil.Create(outputName)
	starLog.WriteRow(out, Sample(outputName), values)
	simpleUtil.CheckErr(out.Close())

	slog.Info("Done", "time", time.Since(t0))
}

// Sample strips the directory and extension from the output name to label the
// record row.
func Sample(name string) string {
	var base = filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
