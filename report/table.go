package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// SummaryTable renders summaries as a text table with one row per joint and component.
func SummaryTable(summaries []JointSummary) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Joint", "Component", "Frames", "Mean", "Min", "Max"})
	for _, s := range summaries {
		for _, c := range Components {
			r := s.Range(c)
			if r == nil {
				t.AppendRow(table.Row{s.Joint, c, 0, "-", "-", "-"})
				continue
			}
			t.AppendRow(table.Row{
				s.Joint, c, r.Frames,
				fmt.Sprintf("%.2f", r.Mean),
				fmt.Sprintf("%.2f", r.Min),
				fmt.Sprintf("%.2f", r.Max),
			})
		}
	}
	return t.Render()
}
