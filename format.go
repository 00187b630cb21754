package datadiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	colorClose   = "\x1b[0m"
	colorNeutral = "\x1b[37m"
	colorInsert  = "\x1b[32m"
	colorDelete  = "\x1b[31m"
	colorUpdate  = "\x1b[34m"
	colorMove    = "\x1b[33m"
)

// markers prefix every pretty-printed entry
var markers = map[Status]string{
	StatusEqual:   " ",
	StatusAdded:   "+",
	StatusDeleted: "-",
	StatusUpdated: "~",
	StatusMoved:   ">",
}

// FormatPrettyString is a convenience wrapper that outputs to a string instead of
// an io.Writer
func FormatPrettyString(r Result, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, r, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w. if colorTTY is true it will add
// red "-" for deletions
// green "+" for insertions
// blue "~" for updates
// yellow ">" for moves
func FormatPretty(w io.Writer, r Result, colorTTY bool) error {
	f := &formatter{w: w}
	if colorTTY {
		f.colors = map[Status]string{
			StatusEqual:   colorNeutral,
			StatusAdded:   colorInsert,
			StatusDeleted: colorDelete,
			StatusUpdated: colorUpdate,
			StatusMoved:   colorMove,
		}
	}
	if err := r.formatPretty(f); err != nil {
		return err
	}
	return f.err
}

type formatter struct {
	w      io.Writer
	colors map[Status]string
	err    error
}

func (f *formatter) printf(format string, a ...interface{}) {
	if f.err != nil {
		return
	}
	_, f.err = fmt.Fprintf(f.w, format, a...)
}

// open & close wrap text in the color for st, when colors are enabled
func (f *formatter) open(st Status) string {
	return f.colors[st]
}

func (f *formatter) close() string {
	if f.colors == nil {
		return ""
	}
	return colorClose
}

func (d *ObjectDiff) formatPretty(f *formatter) error {
	return formatObjectEntries(f, d.Diff, 0)
}

func formatObjectEntries(f *formatter, entries []*ObjectEntry, indent int) error {
	for _, e := range entries {
		pad := strings.Repeat("  ", indent)
		if e.Children != nil && e.Status != StatusEqual {
			f.printf("%s%s%s %s:%s\n", pad, f.open(e.Status), markers[e.Status], e.Key, f.close())
			if err := formatObjectEntries(f, e.Children, indent+1); err != nil {
				return err
			}
			continue
		}

		var (
			data string
			err  error
		)
		switch e.Status {
		case StatusAdded:
			data, err = jsonString(e.CurrentValue)
		case StatusDeleted:
			data, err = jsonString(e.PreviousValue)
		case StatusUpdated:
			var prev, curr string
			if prev, err = jsonString(e.PreviousValue); err == nil {
				curr, err = jsonString(e.CurrentValue)
			}
			data = prev + " -> " + curr
		default:
			data, err = jsonString(e.CurrentValue)
		}
		if err != nil {
			return err
		}
		f.printf("%s%s%s %s: %s%s\n", pad, f.open(e.Status), markers[e.Status], e.Key, data, f.close())
	}
	return nil
}

func (d *ListDiff[T]) formatPretty(f *formatter) error {
	values := make([]string, len(d.Diff))
	width := 0
	for i, e := range d.Diff {
		data, err := jsonString(e.Value)
		if err != nil {
			return err
		}
		values[i] = data
		if w := runewidth.StringWidth(data); w > width {
			width = w
		}
	}

	for i, e := range d.Diff {
		f.printf("%s%s %s  %s -> %s%s\n", f.open(e.Status), markers[e.Status],
			runewidth.FillRight(values[i], width),
			indexString(e.PreviousIndex), indexString(e.CurrentIndex), f.close())
	}
	return nil
}

func (d *TextDiff) formatPretty(f *formatter) error {
	sep := " "
	if d.separation == SeparationCharacter {
		sep = ""
	}

	for i, e := range d.Diff {
		if i > 0 {
			f.printf("%s", sep)
		}
		switch e.Status {
		case StatusAdded:
			f.printf("%s{+%s+}%s", f.open(e.Status), e.Value, f.close())
		case StatusDeleted:
			f.printf("%s[-%s-]%s", f.open(e.Status), e.Value, f.close())
		case StatusUpdated:
			f.printf("%s[-%s-]{+%s+}%s", f.open(e.Status), e.PreviousValue, e.Value, f.close())
		case StatusMoved:
			f.printf("%s{>%s<}%s", f.open(e.Status), e.Value, f.close())
		default:
			f.printf("%s", e.Value)
		}
	}
	if len(d.Diff) > 0 {
		f.printf("\n")
	}
	return nil
}

func jsonString(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func indexString(i *int) string {
	if i == nil {
		return "-"
	}
	return strconv.Itoa(*i)
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(diffStat *Stats) string {
	return formatStats(diffStat, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(diffStat *Stats) string {
	return formatStats(diffStat, true)
}

func formatStats(ds *Stats, color bool) string {
	var (
		neutralColor, insertColor, deleteColor, updateColor, moveColor, closeColor string
	)

	if ds == nil {
		return "<nil>"
	}

	if color {
		neutralColor = colorNeutral
		insertColor = colorInsert
		deleteColor = colorDelete
		updateColor = colorUpdate
		moveColor = colorMove
		closeColor = colorClose
	}

	buf := &bytes.Buffer{}

	elsColor := insertColor
	change := ds.NodeChange()
	elementsWord := "elements"
	sign := "+"
	if change < 0 {
		elsColor = deleteColor
		sign = ""
	} else if change == 0 {
		elsColor = neutralColor
		sign = ""
	}
	if change == 1 || change == -1 {
		elementsWord = "element"
	}

	buf.WriteString(fmt.Sprintf("%s%s%d %s%s%s%s.",
		elsColor, sign, change, closeColor,
		neutralColor, elementsWord, closeColor,
	))

	buf.WriteString(fmt.Sprintf(" %s%d %s.%s", insertColor, ds.Inserts, plural(ds.Inserts, "insert"), closeColor))
	buf.WriteString(fmt.Sprintf(" %s%d %s.%s", deleteColor, ds.Deletes, plural(ds.Deletes, "delete"), closeColor))
	buf.WriteString(fmt.Sprintf(" %s%d %s.%s", updateColor, ds.Updates, plural(ds.Updates, "update"), closeColor))

	if ds.Moves > 0 {
		buf.WriteString(fmt.Sprintf(" %s%d %s.%s", moveColor, ds.Moves, plural(ds.Moves, "move"), closeColor))
	}

	buf.WriteRune('\n')

	return buf.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
