package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"gridiron/domain/table"
)

// ColumnSummary holds describe-style statistics for one numeric column.
// Count is the number of cells that parsed as numbers; the other fields are
// omitted from JSON when too few values exist to define them, never emitted
// as NaN.
type ColumnSummary struct {
	Count  float64  `json:"count"`
	Mean   *float64 `json:"mean,omitempty"`
	Std    *float64 `json:"std,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Q25    *float64 `json:"25%,omitempty"`
	Median *float64 `json:"50%,omitempty"`
	Q75    *float64 `json:"75%,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

// DatasetSummary is the overview payload for the loaded dataset
type DatasetSummary struct {
	DatasetPath    string                   `json:"dataset_path"`
	NumRows        int                      `json:"n_rows"`
	NumColumns     int                      `json:"n_columns"`
	Columns        []string                 `json:"columns"`
	NumericSummary map[string]ColumnSummary `json:"numeric_summary"`
}

// Summarize builds the dataset overview: dimensions, the full column list,
// and descriptive statistics for each key column present in the table. Key
// columns missing from the table are skipped silently. The result is a pure
// function of the inputs.
func Summarize(tbl *table.Table, datasetPath string, keyColumns []string) *DatasetSummary {
	summary := &DatasetSummary{
		DatasetPath:    datasetPath,
		NumRows:        tbl.NumRows(),
		NumColumns:     tbl.NumColumns(),
		Columns:        append([]string(nil), tbl.Headers...),
		NumericSummary: make(map[string]ColumnSummary),
	}

	for _, column := range keyColumns {
		if !tbl.HasColumn(column) {
			continue
		}
		values := table.ValidValues(table.CoerceColumn(tbl.Column(column)))
		summary.NumericSummary[column] = summarizeColumn(values)
	}

	return summary
}

// summarizeColumn computes descriptive statistics over the parsed values.
// The sample standard deviation needs two values; everything but count needs
// one.
func summarizeColumn(values []float64) ColumnSummary {
	cs := ColumnSummary{Count: float64(len(values))}
	if len(values) == 0 {
		return cs
	}

	mean, _ := stats.Mean(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	median, _ := stats.Median(values)
	q25 := interpolatedQuantile(values, 0.25)
	q75 := interpolatedQuantile(values, 0.75)

	cs.Mean = &mean
	cs.Min = &min
	cs.Max = &max
	cs.Median = &median
	cs.Q25 = &q25
	cs.Q75 = &q75

	if len(values) >= 2 {
		std, _ := stats.StandardDeviationSample(values)
		cs.Std = &std
	}

	return cs
}

// interpolatedQuantile computes the p-quantile with linear interpolation
// between the two closest ranks. stats.Percentile cannot serve here: it
// errors out whenever p*n <= 1, so small columns would lose their lower
// quartile. Requires at least one value.
func interpolatedQuantile(values []float64, p float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if frac == 0 {
		return sorted[lo]
	}
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}
