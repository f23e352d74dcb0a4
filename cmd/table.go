package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/s0up4200/popcorn/yts"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

var movieHeaders = []string{"#", "Title", "Year", "Rating", "Runtime", "Files", "Seeds"}

var movieAligns = []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignRight}

// renderMovies renders search results as a table, one row per movie
func renderMovies(movies []yts.Movie) string {
	rows := make([][]string, 0, len(movies))
	for i, m := range movies {
		rows = append(rows, movieRow(i+1, m))
	}
	return renderTable(movieHeaders, rows, movieAligns)
}

func movieRow(n int, m yts.Movie) []string {
	row := []string{strconv.Itoa(n), valueOr(m.Title, "-"), "-", "-", "-", "-", "-"}

	if m.Year != nil {
		row[2] = strconv.Itoa(*m.Year)
	}
	if m.Rating != nil {
		row[3] = fmt.Sprintf("%.1f", *m.Rating)
	}
	if label := m.RuntimeLabel(); label != "" {
		row[4] = label
	}

	var files []string
	for _, f := range m.Files {
		label := valueOr(f.Quality, "?")
		if f.Type != nil && *f.Type != "" {
			label += " " + *f.Type
		}
		files = append(files, label)
	}
	if len(files) > 0 {
		row[5] = strings.Join(files, ", ")
		row[6] = strconv.Itoa(m.MaxSeeds())
	}

	return row
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(toRow(headers, columns))
	for _, row := range rows {
		tw.AppendRow(toRow(row, columns))
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// toRow pads or cuts cells to exactly columns entries
func toRow(cells []string, columns int) table.Row {
	r := make(table.Row, columns)
	for i := range columns {
		if i < len(cells) {
			r[i] = cells[i]
		} else {
			r[i] = ""
		}
	}
	return r
}
