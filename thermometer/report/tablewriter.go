/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/professorwug/legal-pedagogy/thermometer"
)

// summaryHeader is the column layout of the rendered summary table
var summaryHeader = []string{"Judge", "Question", "Mean", "Std", "Valid", "Rejection"}

// cells renders one summary row for table display, question text truncated
// so a long question cannot blow out the layout.
func (r Row) cells() []string {
	return []string{
		r.Judge,
		truncate(r.Question, 60),
		fmt.Sprintf("%.3f", r.Mean),
		fmt.Sprintf("%.3f", r.Std),
		fmt.Sprintf("%d/%d", r.ValidCount, r.TotalCount),
		fmt.Sprintf("%.1f%%", r.RejectionRate*100),
	}
}

// newSummaryTable builds the markdown table every report renders into:
// left-aligned cells, wrapping off so each pair stays on one line, side
// borders only.
func newSummaryTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
			MaxWidth: 120,
			Behavior: tw.Behavior{TrimSpace: tw.Off},
		}),
		tablewriter.WithHeader(summaryHeader),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// WriteTable renders a markdown summary table of results to w
func WriteTable(w io.Writer, results *thermometer.BeliefResults) error {
	table := newSummaryTable(w)

	for _, row := range Summarize(results) {
		if err := table.Append(row.cells()); err != nil {
			return fmt.Errorf("appending table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}
