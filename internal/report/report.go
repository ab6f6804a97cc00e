// Package report renders a solved partition problem for the lvpart CLI.
//
// Four formats are supported: plain (just the optimal cost, one line),
// table (segments rendered with go-pretty), json and yaml (a Summary
// document).
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpart/hull"
	"github.com/katalvlaran/lvpart/partition"
)

// ErrUnknownFormat is returned by ParseFormat and Write for unsupported formats.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names an output rendering.
type Format string

// Supported formats.
const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPlain, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Coefficients mirrors partition.Cost with serialization tags.
type Coefficients struct {
	A int64 `json:"a" yaml:"a"`
	B int64 `json:"b" yaml:"b"`
	C int64 `json:"c" yaml:"c"`
}

// Stats mirrors hull.Stats with serialization tags.
type Stats struct {
	Inserts   int `json:"inserts" yaml:"inserts"`
	Pushes    int `json:"pushes" yaml:"pushes"`
	Pops      int `json:"pops" yaml:"pops"`
	Discarded int `json:"discarded" yaml:"discarded"`
	Queries   int `json:"queries" yaml:"queries"`
}

// Summary is the document rendered by every format.
type Summary struct {
	Objective string              `json:"objective" yaml:"objective"`
	N         int                 `json:"n" yaml:"n"`
	Coeffs    Coefficients        `json:"coefficients" yaml:"coefficients"`
	Cost      int64               `json:"cost" yaml:"cost"`
	Segments  []partition.Segment `json:"segments" yaml:"segments"`
	Stats     Stats               `json:"stats" yaml:"stats"`
	Verified  bool                `json:"verified,omitempty" yaml:"verified,omitempty"`
}

// NewSummary assembles a Summary from a solved problem.
func NewSummary(n int, cost partition.Cost, obj partition.Objective, res partition.Result) Summary {
	segs := res.Segments
	if segs == nil {
		segs = []partition.Segment{}
	}

	return Summary{
		Objective: obj.String(),
		N:         n,
		Coeffs:    Coefficients{A: cost.A, B: cost.B, C: cost.C},
		Cost:      res.Cost,
		Segments:  segs,
		Stats:     statsOf(res.Stats),
	}
}

func statsOf(s hull.Stats) Stats {
	return Stats{
		Inserts:   s.Inserts,
		Pushes:    s.Pushes,
		Pops:      s.Pops,
		Discarded: s.Discarded,
		Queries:   s.Queries,
	}
}

// Write renders s to w in format f.
func Write(w io.Writer, f Format, s Summary) error {
	switch f {
	case FormatPlain:
		_, err := fmt.Fprintln(w, s.Cost)

		return err
	case FormatTable:
		_, err := fmt.Fprintln(w, renderTable(s))

		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(s); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// renderTable lists one row per segment with a total footer.
func renderTable(s Summary) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("%s  n=%s  cost=%d·s²%+d·s%+d",
		s.Objective, humanize.Comma(int64(s.N)), s.Coeffs.A, s.Coeffs.B, s.Coeffs.C))

	tbl.AppendHeader(table.Row{"#", "Range", "Len", "Sum", "Cost"})

	for i, seg := range s.Segments {
		tbl.AppendRow(table.Row{
			i + 1,
			fmt.Sprintf("[%d, %d)", seg.Start, seg.End),
			humanize.Comma(int64(seg.End - seg.Start)),
			humanize.Comma(seg.Sum),
			humanize.Comma(seg.Cost),
		})
	}

	tbl.AppendFooter(table.Row{"", "", "", "Total", humanize.Comma(s.Cost)})

	return tbl.Render()
}
