package cmd

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	formatTable outputFormat = "table"
	formatCSV   outputFormat = "csv"
)

// outputFormat is a pflag.Value accepting table or csv.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(s); v {
	case formatTable, formatCSV:
		*f = v
		return nil
	default:
		return errors.Errorf("unknown format %q, want %s or %s", s, formatTable, formatCSV)
	}
}

func (f *outputFormat) Type() string { return "format" }

// writeRows renders a header and rows in the selected format.
func writeRows(w io.Writer, f outputFormat, header []string, rows [][]string) error {
	if f == formatCSV {
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return errors.Wrap(err, "failed to write csv header")
		}
		if err := cw.WriteAll(rows); err != nil {
			return errors.Wrap(err, "failed to write csv rows")
		}
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
