package report

import (
	"fmt"
	"strings"

	"riskprofile/internal/classification"
)

const (
	// DocumentTitle is written into the rendered file's metadata.
	DocumentTitle = "Risk Profile Report"

	ChartAssetKey = "box_whisker_summary"
	ChartWidth    = 420
	ChartHeight   = 220
)

// profileRows holds historical average return and annual volatility, in
// percent, per band.
var profileRows = []ProfileRow{
	{Band: classification.Conservative, HistoricalReturn: 9.9, HistoricalVolatility: 5.6},
	{Band: classification.ModeratelyConservative, HistoricalReturn: 10.5, HistoricalVolatility: 6.8},
	{Band: classification.Moderate, HistoricalReturn: 11.0, HistoricalVolatility: 8.4},
	{Band: classification.ModeratelyAggressive, HistoricalReturn: 11.6, HistoricalVolatility: 10.3},
	{Band: classification.Aggressive, HistoricalReturn: 12.1, HistoricalVolatility: 12.2},
}

// ProfileRows returns a copy of the risk and return table.
func ProfileRows() []ProfileRow {
	out := make([]ProfileRow, len(profileRows))
	for i, r := range profileRows {
		r.Label = r.Band.ShortLabel()
		out[i] = r
	}
	return out
}

// Allocation is a band's asset mix in percent
type Allocation struct {
	LocalEquity  int
	GlobalEquity int
	LocalBonds   int
}

var allocations = map[classification.Band]Allocation{
	classification.Conservative:           {20, 10, 70},
	classification.ModeratelyConservative: {30, 15, 55},
	classification.Moderate:               {40, 20, 40},
	classification.ModeratelyAggressive:   {50, 25, 25},
	classification.Aggressive:             {60, 30, 10},
}

// AllocationFor returns the asset mix behind band b.
func AllocationFor(b classification.Band) (Allocation, bool) {
	a, ok := allocations[b]
	return a, ok
}

// NotesText is the methodology note printed on the last page.
func NotesText() string {
	var sb strings.Builder
	sb.WriteString("Notes: Each risk profile reflects a different blend of local and global equities versus local bonds: ")
	for i, b := range classification.Bands {
		a := allocations[b]
		if i == 0 {
			fmt.Fprintf(&sb, "%s (%d%% local equity, %d%% global equity, %d%% local bonds)",
				b.ShortLabel(), a.LocalEquity, a.GlobalEquity, a.LocalBonds)
			continue
		}
		fmt.Fprintf(&sb, "; %s (%d%%/%d%%/%d%%)", b.ShortLabel(), a.LocalEquity, a.GlobalEquity, a.LocalBonds)
	}
	sb.WriteString(". Results are based on 20 years of daily data using rolling one-year periods.")
	return sb.String()
}
