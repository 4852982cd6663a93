package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const barWidth = 20

// Printer writes command output.
type Printer struct {
	out       io.Writer
	useColors bool
}

// NewPrinter honours NO_COLOR and TERM=dumb on top of the configured value.
func NewPrinter(out io.Writer, configColors bool) *Printer {
	useColors := configColors
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		useColors = false
	}
	if os.Getenv("TERM") == "dumb" {
		useColors = false
	}
	return &Printer{out: out, useColors: useColors}
}

func (p *Printer) paint(attr color.Attribute, s string) string {
	if !p.useColors {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

// Title prints a bold heading.
func (p *Printer) Title(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.paint(color.Bold, fmt.Sprintf(format, args...)))
}

// Line prints a plain line.
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	if p.useColors {
		fmt.Fprintln(p.out, p.paint(color.FgGreen, "✓ "+fmt.Sprintf(format, args...)))
		return
	}
	fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
}

// Muted prints secondary text such as empty-state hints.
func (p *Printer) Muted(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.paint(color.FgHiBlack, fmt.Sprintf(format, args...)))
}

// Stars colors a star string.
func (p *Printer) Stars(s string) string {
	return p.paint(color.FgYellow, s)
}

// JSON writes v indented.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table renders rows under headers without borders.
func (p *Printer) Table(headers []string, rows [][]string) {
	table := tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.Off,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	table.Header(headers)
	table.Bulk(rows)
	table.Render()
}

// PercentBar draws a fixed-width bar filled to percent.
func PercentBar(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent/100*barWidth + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
