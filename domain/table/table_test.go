package table

import (
	"strings"
	"testing"

	"gridiron/internal/errors"
)

func sampleTable() *Table {
	return &Table{
		Headers: []string{"Team", "Points Per Game", "Pass Touchdowns"},
		Rows: []Row{
			{"Team": "Air Force", "Points Per Game": "30.5", "Pass Touchdowns": "8"},
			{"Team": "Akron", "Points Per Game": "15.1", "Pass Touchdowns": "14"},
			{"Team": "Alabama", "Points Per Game": "35.4", "Pass Touchdowns": "30"},
		},
	}
}

func TestHasColumnExactMatch(t *testing.T) {
	tbl := sampleTable()

	tests := []struct {
		name   string
		column string
		want   bool
	}{
		{"present with spaces", "Points Per Game", true},
		{"present single word", "Team", true},
		{"case mismatch", "points per game", false},
		{"trailing space", "Points Per Game ", false},
		{"absent", "Rushing TD", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tbl.HasColumn(tt.column); got != tt.want {
				t.Errorf("HasColumn(%q) = %v, want %v", tt.column, got, tt.want)
			}
		})
	}
}

func TestRequireAllPresent(t *testing.T) {
	tbl := sampleTable()

	if err := tbl.Require("Points Per Game", "Pass Touchdowns"); err != nil {
		t.Errorf("Expected no error for present columns, got %v", err)
	}
}

func TestRequireReportsMissingInOrder(t *testing.T) {
	tbl := sampleTable()

	err := tbl.Require("Off Yards", "Points Per Game", "Turnover Margin")
	if err == nil {
		t.Fatal("Expected error for missing columns, got nil")
	}

	if errors.GetCode(err) != errors.CodeValidationError {
		t.Errorf("Expected code %s, got %s", errors.CodeValidationError, errors.GetCode(err))
	}

	msg := err.Error()
	if !strings.Contains(msg, "Off Yards") || !strings.Contains(msg, "Turnover Margin") {
		t.Errorf("Error message should name every missing column, got %q", msg)
	}
	if strings.Contains(msg, "Points Per Game") {
		t.Errorf("Error message should not name present columns, got %q", msg)
	}
	if strings.Index(msg, "Off Yards") > strings.Index(msg, "Turnover Margin") {
		t.Errorf("Missing columns should be listed in requested order, got %q", msg)
	}
}

func TestColumnPreservesRowOrder(t *testing.T) {
	tbl := sampleTable()

	got := tbl.Column("Points Per Game")
	want := []string{"30.5", "15.1", "35.4"}

	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Column value %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestColumnMissingKeyYieldsEmpty(t *testing.T) {
	tbl := &Table{
		Headers: []string{"A", "B"},
		Rows: []Row{
			{"A": "1", "B": "2"},
			{"A": "3"}, // short row, no B
		},
	}

	got := tbl.Column("B")
	if got[1] != "" {
		t.Errorf("Expected empty string for absent cell, got %q", got[1])
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValue float64
		wantValid bool
	}{
		{"integer", "30", 30, true},
		{"decimal", "24.5", 24.5, true},
		{"negative", "-7", -7, true},
		{"padded", "  12.25  ", 12.25, true},
		{"scientific", "1e3", 1000, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"text", "Air Force", 0, false},
		{"mixed", "12abc", 0, false},
		{"nan literal", "NaN", 0, false},
		{"inf literal", "Inf", 0, false},
		{"negative inf literal", "-Infinity", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := ParseNumeric(tt.raw)
			if cell.Valid != tt.wantValid {
				t.Errorf("ParseNumeric(%q).Valid = %v, want %v", tt.raw, cell.Valid, tt.wantValid)
			}
			if cell.Valid && cell.Value != tt.wantValue {
				t.Errorf("ParseNumeric(%q).Value = %f, want %f", tt.raw, cell.Value, tt.wantValue)
			}
		})
	}
}

func TestCoerceColumnPreservesOrder(t *testing.T) {
	cells := CoerceColumn([]string{"3", "bad", "1", ""})

	if len(cells) != 4 {
		t.Fatalf("Expected 4 cells, got %d", len(cells))
	}
	if !cells[0].Valid || cells[0].Value != 3 {
		t.Errorf("Expected cell 0 to be 3, got %+v", cells[0])
	}
	if cells[1].Valid || cells[3].Valid {
		t.Errorf("Expected unparseable cells to be absent, got %+v and %+v", cells[1], cells[3])
	}
	if !cells[2].Valid || cells[2].Value != 1 {
		t.Errorf("Expected cell 2 to be 1, got %+v", cells[2])
	}
}

func TestValidValues(t *testing.T) {
	cells := CoerceColumn([]string{"5", "x", "7", " ", "9"})

	got := ValidValues(cells)
	want := []float64{5, 7, 9}

	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Value %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestDropMissingPairs(t *testing.T) {
	xs := CoerceColumn([]string{"1", "2", "bad", "4", "5"})
	ys := CoerceColumn([]string{"10", "", "30", "40", "50"})

	xClean, yClean := DropMissingPairs(xs, ys)

	wantX := []float64{1, 4, 5}
	wantY := []float64{10, 40, 50}

	if len(xClean) != len(wantX) || len(yClean) != len(wantY) {
		t.Fatalf("Expected %d cleaned pairs, got %d and %d", len(wantX), len(xClean), len(yClean))
	}
	for i := range wantX {
		if xClean[i] != wantX[i] || yClean[i] != wantY[i] {
			t.Errorf("Pair %d = (%f, %f), want (%f, %f)", i, xClean[i], yClean[i], wantX[i], wantY[i])
		}
	}
}

func TestDropMissingPairsAllAbsent(t *testing.T) {
	xs := CoerceColumn([]string{"a", "b"})
	ys := CoerceColumn([]string{"1", "2"})

	xClean, yClean := DropMissingPairs(xs, ys)
	if len(xClean) != 0 || len(yClean) != 0 {
		t.Errorf("Expected empty result when one side never parses, got %v and %v", xClean, yClean)
	}
}
