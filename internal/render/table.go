package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"

	"coinex-screener-bot/internal/utils"
	"coinex-screener-bot/pkg/models"
)

var tableHeader = []string{"SYM", "F", "S", "%", "%4H"}

// PctMarker renders a rounded percent change with its sentiment marker:
// red at or below -3, green at or above +3, yellow in between.
func PctMarker(pct float64) string {
	rounded := int(math.Round(pct))
	marker := "🟡"
	switch {
	case rounded <= -3:
		marker = "🔴"
	case rounded >= 3:
		marker = "🟢"
	}
	return fmt.Sprintf("%+d%% %s", rounded, marker)
}

// Table renders one tier as a Markdown message: bold title plus a pipe
// table in a code fence. F and S are whole millions of USD. An empty
// tier renders a placeholder instead of a table.
func Table(tier models.Tier, title string) string {
	if len(tier) == 0 {
		return fmt.Sprintf("*%s*: _None_\n", title)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s*:\n```\n", title)
	writeRows(&sb, tier)
	sb.WriteString("```\n")
	return sb.String()
}

// SingleRow renders the one-row table used by ticker lookup.
func SingleRow(entry models.AssetEntry, title string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s*:\n```\n", title)
	writeRows(&sb, models.Tier{entry})
	sb.WriteString("```\n")
	return sb.String()
}

func writeRows(sb *strings.Builder, tier models.Tier) {
	table := tablewriter.NewWriter(sb)
	table.SetHeader(tableHeader)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	for _, e := range tier {
		table.Append([]string{
			strings.ToUpper(e.Base),
			utils.RoundMillions(e.FuturesUSD),
			utils.RoundMillions(e.SpotUSD),
			PctMarker(e.Pct24h),
			PctMarker(e.Pct4h),
		})
	}
	table.Render()
}
