package analysis

// KeyMetricColumn is the fixed y axis of every tracked pairing
const KeyMetricColumn = "Points Per Game"

// Pairing names one tracked x column, the short slug used in route paths,
// and the chart title rendered for it
type Pairing struct {
	Slug    string
	XColumn string
	Title   string
}

// Pairings lists the column pairs tracked against the key metric. Column
// names must match the dataset headers exactly, including case and spaces.
var Pairings = []Pairing{
	{Slug: "pass-tds", XColumn: "Pass Touchdowns", Title: "Points Per Game vs Pass Touchdowns (All Teams)"},
	{Slug: "rush-tds", XColumn: "Rushing TD", Title: "Points Per Game vs Rush Touchdowns (All Teams)"},
	{Slug: "total-yds", XColumn: "Off Yards", Title: "Points Per Game vs Offense Yards (All Teams)"},
	{Slug: "turnovers", XColumn: "Turnover Margin", Title: "Points Per Game vs Turnover Margin (All Teams)"},
}

// SummaryColumns lists the columns the dataset summary covers: the key
// metric plus every tracked x column
func SummaryColumns() []string {
	cols := []string{KeyMetricColumn}
	for _, pairing := range Pairings {
		cols = append(cols, pairing.XColumn)
	}
	return cols
}
