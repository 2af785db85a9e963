// cqsummary collapses technical duplicates in a qPCR export. It loads per-well
// Cq measurements, keeps one target gene, strips trailing _<digits> replicate
// suffixes to group wells by biological sample, and prints mean Cq, standard
// deviation, and replicate count per sample.
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/kclab/qpcr/compileinfo"
	"github.com/kclab/qpcr/cq"
	"github.com/kclab/qpcr/cqio"
	"github.com/kclab/qpcr/cqplot"
)

var (
	STDOUT = bufio.NewWriterSize(os.Stdout, 4096)
)

func main() {
	defer STDOUT.Flush()
	compileinfo.PrintToStdErr()

	var file, target, out string
	var sampleCol, targetCol, cqCol string
	var sheet string
	var plotFile, replicatesFile, htmlFile string
	var barColor string
	var hist bool

	flag.StringVar(&file, "file", "", "Path (or URL) to the measurement table: delimited text, .xls, or .xlsx, one row per well.")
	flag.StringVar(&target, "target", "", "Target gene to summarize. Matching is exact and case sensitive.")
	flag.StringVar(&out, "out", "", "Optional path to also write the summary table to (.csv for commas, .tsv or .txt for tabs).")
	flag.StringVar(&sampleCol, "sample-col", "Sample", "Column name holding the sample name.")
	flag.StringVar(&targetCol, "target-col", "Target", "Column name holding the target gene.")
	flag.StringVar(&cqCol, "cq-col", "Cq", "Column name holding the Cq value.")
	flag.StringVar(&sheet, "sheet", "", "Workbook sheet to read. Defaults to the first sheet. Ignored for text input.")
	flag.StringVar(&plotFile, "plot", "", "Optional path for a PNG bar chart of the summary (mean Cq with SD error bars).")
	flag.StringVar(&replicatesFile, "replicates", "", "Optional path for a PNG scatter of the individual wells.")
	flag.StringVar(&htmlFile, "html", "", "Optional path for a standalone HTML report.")
	flag.StringVar(&barColor, "barcolor", cqplot.DefaultBarColor, "Hex fill color for the bar chart.")
	flag.BoolVar(&hist, "hist", false, "Print a text histogram of the matched Cq values to stderr.")
	flag.Parse()

	if file == "" || target == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	cols := cqio.Columns{Sample: sampleCol, Target: targetCol, Cq: cqCol}

	if err := run(file, target, out, sheet, plotFile, replicatesFile, htmlFile, barColor, hist, cols); err != nil {
		log.Fatalln(err)
	}
}

func run(file, target, out, sheet, plotFile, replicatesFile, htmlFile, barColor string, hist bool, cols cqio.Columns) error {
	rows, info, err := cqio.ReadMeasurementsSheet(file, sheet, cols)
	if err != nil {
		return err
	}

	logProvenance(info)

	matched := cq.FilterTarget(rows, target)
	if len(matched) == 0 {
		log.Printf("No wells matched target %q; emitting an empty summary\n", target)
	}

	sums, err := cq.Summarize(matched)
	if err != nil {
		return err
	}

	if len(matched) > 0 {
		dist := cq.Describe(matched)
		log.Printf("%s: %d wells across %d samples, Cq %.2f-%.2f (median %.2f)\n",
			target, dist.N, len(sums), dist.Min, dist.Max, dist.Median)
	}

	if err := printSummaries(sums); err != nil {
		return err
	}

	if hist {
		if err := cqplot.PrintHistogram(os.Stderr, matched, 10); err != nil {
			return err
		}
	}

	if out != "" {
		if err := cqio.WriteSummaries(out, sums); err != nil {
			return err
		}
		log.Println("Wrote", out)
	}

	if len(sums) == 0 && (plotFile != "" || replicatesFile != "" || htmlFile != "") {
		log.Println("Skipping plots since no wells matched")
		return nil
	}

	if plotFile != "" {
		if err := cqplot.BarChart(plotFile, target, sums, barColor); err != nil {
			return err
		}
		log.Println("Wrote", plotFile)
	}

	if replicatesFile != "" {
		if err := cqplot.ReplicateScatter(replicatesFile, target, matched); err != nil {
			return err
		}
		log.Println("Wrote", replicatesFile)
	}

	if htmlFile != "" {
		if err := cqplot.WriteHTMLReport(htmlFile, target, sums, matched, cq.Describe(matched)); err != nil {
			return err
		}
		log.Println("Wrote", htmlFile)
	}

	return nil
}

func logProvenance(info cqio.FileInfo) {
	if info.Sheet != "" {
		log.Printf("Loaded %d wells from %s (sheet %q)\n", info.Wells, info.Path, info.Sheet)
	} else {
		log.Printf("Loaded %d wells from %s (delimiter %q)\n", info.Wells, info.Path, info.Delimiter)
	}

	if info.WellsNoCq > 0 {
		log.Printf("Dropped %d wells with no Cq value\n", info.WellsNoCq)
	}

	if info.RunDate.Valid {
		log.Println("Run date:", info.RunDate.Time.Format("2006-01-02 15:04:05"))
	}
}

func printSummaries(sums []cq.Summary) error {
	w := csv.NewWriter(STDOUT)
	w.Comma = '\t'

	w.Write([]string{"base_sample", "mean_cq", "std_cq", "n"})
	for _, s := range sums {
		w.Write([]string{
			s.BaseSample,
			strconv.FormatFloat(s.MeanCq, 'f', -1, 64),
			s.StdCq.String(),
			strconv.Itoa(s.N),
		})
	}

	w.Flush()

	return w.Error()
}
