// Package ui - Terminal user interface
// Plain-text quote output with optional colours and locale-aware amounts.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// RuleWidth is the width of section rules
const RuleWidth = 60

// Writer is the UI output destination
type Writer struct {
	out      io.Writer
	noColor  bool
	printer  *message.Printer
	currency string
}

// NewWriter creates a UI writer. locale is a BCP 47 tag; an invalid tag
// falls back to Swedish.
func NewWriter(out io.Writer, noColor bool, locale string) *Writer {
	if out == nil {
		out = os.Stdout
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Swedish
	}
	return &Writer{
		out:      out,
		noColor:  noColor,
		printer:  message.NewPrinter(tag),
		currency: "kr",
	}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Blank writes an empty line
func (w *Writer) Blank() {
	fmt.Fprintln(w.out)
}

// Banner prints a title framed by double rules
func (w *Writer) Banner(title string) {
	rule := strings.Repeat("=", RuleWidth)
	w.Println("%s", rule)
	w.Println("%s", w.color(Bold, title))
	w.Println("%s", rule)
}

// Rule prints a double rule
func (w *Writer) Rule() {
	w.Println("%s", strings.Repeat("=", RuleWidth))
}

// Section prints a numbered section header underlined by a single rule
func (w *Writer) Section(n int, title string) {
	w.Println("%s", w.color(Bold+Cyan, fmt.Sprintf("%d. %s", n, title)))
	w.Println("%s", strings.Repeat("-", RuleWidth))
}

// SubHeader prints a subsection title
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.color(Bold, title))
}

// Field prints an indented "label: value" line
func (w *Writer) Field(label, value string) {
	w.Println("  %s: %s", label, value)
}

// Bullet prints an indented bullet line
func (w *Writer) Bullet(format string, args ...interface{}) {
	w.Println("  • "+format, args...)
}

// Highlight prints an emphasised line
func (w *Writer) Highlight(format string, args ...interface{}) {
	w.Println("%s", w.color(Bold+Green, fmt.Sprintf(format, args...)))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Yellow, "⚠ ")+msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Red, "✗ ")+msg)
}

// Number formats d with locale grouping and at most two decimals
func (w *Writer) Number(d decimal.Decimal) string {
	return w.printer.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

// Amount formats d as a currency amount, e.g. "468 000 kr"
func (w *Writer) Amount(d decimal.Decimal) string {
	return w.Number(d) + " " + w.currency
}

// Multiplier formats a price factor as written in the catalog, with at
// least one decimal: 1.0x, 1.3x, 1.25x
func (w *Writer) Multiplier(d decimal.Decimal) string {
	places := int32(1)
	if exp := -d.Exponent(); exp > places {
		places = exp
	}
	return d.StringFixed(places) + "x"
}

// Monthly formats d as a monthly amount
func (w *Writer) Monthly(d decimal.Decimal) string {
	return w.Amount(d) + "/mån"
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.color(Bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}

// line pads by rune count; %-*s pads by bytes and misaligns å, ä and ö
func (t *Table) line(cells []string) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = c + strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(c))
	}
	return strings.TrimRight(strings.Join(padded, " │ "), " ")
}
