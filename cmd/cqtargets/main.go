// cqtargets lists the target genes present in a qPCR export, with well and
// base-sample counts per target, so you can see which -target values
// cqsummary will accept.
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/kclab/qpcr/compileinfo"
	"github.com/kclab/qpcr/cqio"
)

var (
	STDOUT = bufio.NewWriterSize(os.Stdout, 4096)
)

func main() {
	defer STDOUT.Flush()
	compileinfo.PrintToStdErr()

	var file string
	var sampleCol, targetCol, cqCol string
	var sheet string

	flag.StringVar(&file, "file", "", "Path (or URL) to the measurement table: delimited text, .xls, or .xlsx, one row per well.")
	flag.StringVar(&sampleCol, "sample-col", "Sample", "Column name holding the sample name.")
	flag.StringVar(&targetCol, "target-col", "Target", "Column name holding the target gene.")
	flag.StringVar(&cqCol, "cq-col", "Cq", "Column name holding the Cq value.")
	flag.StringVar(&sheet, "sheet", "", "Workbook sheet to read. Defaults to the first sheet. Ignored for text input.")
	flag.Parse()

	if file == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	cols := cqio.Columns{Sample: sampleCol, Target: targetCol, Cq: cqCol}

	if err := run(file, sheet, cols); err != nil {
		log.Fatalln(err)
	}
}

func run(file, sheet string, cols cqio.Columns) error {
	rows, info, err := cqio.ReadMeasurementsSheet(file, sheet, cols)
	if err != nil {
		return err
	}

	log.Printf("Loaded %d wells from %s\n", info.Wells, info.Path)
	if info.WellsNoCq > 0 {
		log.Printf("Dropped %d wells with no Cq value\n", info.WellsNoCq)
	}

	wells := make(map[string]int)
	samples := make(map[string]map[string]struct{})
	for _, row := range rows {
		wells[row.Target]++
		if samples[row.Target] == nil {
			samples[row.Target] = make(map[string]struct{})
		}
		samples[row.Target][row.BaseSample()] = struct{}{}
	}

	targets := make([]string, 0, len(wells))
	for target := range wells {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	w := csv.NewWriter(STDOUT)
	w.Comma = '\t'

	w.Write([]string{"target", "wells", "base_samples"})
	for _, target := range targets {
		w.Write([]string{target, strconv.Itoa(wells[target]), strconv.Itoa(len(samples[target]))})
	}

	w.Flush()

	return w.Error()
}
