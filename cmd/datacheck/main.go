// Command datacheck loads a season dataset and reports whether it can serve
// every endpoint: key column coverage, descriptive statistics and the fit
// behind each tracked pairing.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"gridiron/adapters/tabular"
	"gridiron/domain/table"
	"gridiron/internal/analysis"
)

func main() {
	in := flag.String("in", "", "input dataset path (.xlsx or .csv)")
	asJSON := flag.Bool("json", false, "print the stats payload as JSON instead of a text report")
	flag.Parse()

	if strings.TrimSpace(*in) == "" {
		fmt.Fprintln(os.Stderr, "-in is required")
		os.Exit(2)
	}

	tbl, err := tabular.NewDataReader(*in).ReadData()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading dataset:", err)
		os.Exit(1)
	}

	summary := analysis.Summarize(tbl, *in, analysis.SummaryColumns())

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			fmt.Fprintln(os.Stderr, "error encoding summary:", err)
			os.Exit(1)
		}
		return
	}

	report(tbl, summary)
}

func report(tbl *table.Table, summary *analysis.DatasetSummary) {
	fmt.Println("=== Dataset Health Report ===")
	fmt.Printf("Dataset: %s\n", summary.DatasetPath)
	fmt.Printf("rows=%d | columns=%d\n", summary.NumRows, summary.NumColumns)

	fmt.Println("\n-- Key column coverage --")
	for _, col := range analysis.SummaryColumns() {
		cs, ok := summary.NumericSummary[col]
		if !ok {
			fmt.Printf("%s: MISSING\n", col)
			continue
		}
		line := fmt.Sprintf("%s: count=%.0f", col, cs.Count)
		if cs.Mean != nil {
			line += fmt.Sprintf(" mean=%.2f", *cs.Mean)
		}
		if cs.Min != nil && cs.Max != nil {
			line += fmt.Sprintf(" range=[%.1f, %.1f]", *cs.Min, *cs.Max)
		}
		fmt.Println(line)
	}

	fmt.Println("\n-- Tracked pairings --")
	for _, pairing := range analysis.Pairings {
		result, err := analysis.AnalyzePair(tbl, analysis.KeyMetricColumn, pairing.XColumn)
		if err != nil {
			fmt.Printf("%s ~ %s: %v\n", analysis.KeyMetricColumn, pairing.XColumn, err)
			continue
		}
		fmt.Printf("%s ~ %s | slope=%.4f intercept=%.4f r=%.3f n=%d\n",
			analysis.KeyMetricColumn, pairing.XColumn,
			result.Slope, result.Intercept, result.Correlation, result.SampleSize)
	}
}
