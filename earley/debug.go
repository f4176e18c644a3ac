package earley

import (
	"bytes"
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/olekukonko/tablewriter"
	"github.com/takuoki/clmconv"
)

// traceState writes one predictor/scanner/completer action to cfg's
// logger, pretty-printing the state with pp instead of Go's default %+v
// so nested fields like OriginatingStates stay readable.
func traceState(cfg *config, action string, s *State) {
	cfg.logger.Printf("%s: %s", action, pp.Sprint(s))
}

// DumpChart renders the states in each chart as a table, one column per
// chart position (labelled spreadsheet-style via clmconv) and one row
// per state occupying that column.
func DumpChart(charts []*Chart) string {
	buf := bytes.NewBuffer(nil)
	w := tablewriter.NewWriter(buf)

	headers := make([]string, 0, len(charts))
	columns := make([][]string, 0, len(charts))
	maxRows := 0
	for i, chart := range charts {
		if chart == nil {
			continue
		}
		headers = append(headers, clmconv.Itoa(i))
		rows := make([]string, chart.Len())
		for j, s := range chart.States() {
			rows[j] = fmt.Sprintf("%s -> %s [%d:%d]", s.LeftHand, renderDot(s), s.StartIndex, s.EndIndex)
		}
		columns = append(columns, rows)
		if len(rows) > maxRows {
			maxRows = len(rows)
		}
	}
	w.SetHeader(headers)

	for r := 0; r < maxRows; r++ {
		row := make([]string, len(columns))
		for c, rows := range columns {
			if r < len(rows) {
				row[c] = rows[r]
			}
		}
		w.Append(row)
	}
	w.Render()

	return buf.String()
}

func renderDot(s *State) string {
	out := ""
	for i, cat := range s.RightHand {
		if i == s.DotIndex-1 {
			out += "• "
		}
		out += cat + " "
	}
	if s.DotIndex-1 == len(s.RightHand) {
		out += "•"
	}
	return out
}
