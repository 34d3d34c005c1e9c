package format

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/maxima"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// ErrNilFunction is returned when asked to format a nil function.
var ErrNilFunction = errors.New("format: function is nil")

// displayWidth returns the width of s on a fixed width output device, in ‘en’s.
func displayWidth(s string, context *uax11.Context) int {
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		w += graphemeWidth(gstr.Nth(i), context)
	}
	return w
}

// graphemeWidth is 1 for a grapheme consisting of a single ASCII character.
// uax11 counts digits, '#' and '*' as emoji, i.e. wide, but terminals print
// them narrow unless followed by a presentation selector.
func graphemeWidth(g string, context *uax11.Context) int {
	if len(g) == 1 && g[0] < utf8.RuneSelf {
		return 1
	}
	return uax11.Width([]byte(g), context)
}

func pad(b *bufio.Writer, n int) {
	for ; n > 0; n-- {
		b.WriteByte(' ')
	}
}

type row struct {
	arg, value string
	isMax      bool
}

// Table outputs every point of f on a line of its own, in ascending order of
// arguments. Columns are aligned by display width and local maxima are
// flagged with config.Marker.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties.
func Table[A, V any](w io.Writer, f *maxima.Function[A, V], config *Config) error {
	if f == nil {
		return ErrNilFunction
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	c := config.normalized()
	rows := make([]row, 0, f.Len())
	argw, valw := displayWidth("arg", c.Context), displayWidth("value", c.Context)
	for p, isMax := range f.Annotated() {
		r := row{arg: fmt.Sprint(p.Arg()), value: fmt.Sprint(p.Value()), isMax: isMax}
		argw = max(argw, displayWidth(r.arg, c.Context))
		valw = max(valw, displayWidth(r.value, c.Context))
		rows = append(rows, r)
	}
	T().P("format", "table").Debugf("%d rows, column widths %d|%d", len(rows), argw, valw)
	b := bufio.NewWriter(w)
	cell := func(s string, width int, highlight bool) {
		pad(b, width-displayWidth(s, c.Context))
		if highlight {
			b.WriteString(c.Highlight.Sprint(s))
		} else {
			b.WriteString(s)
		}
	}
	cell("arg", argw, false)
	b.WriteString("  ")
	cell("value", valw, false)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", argw+valw+2+1+displayWidth(c.Marker, c.Context)))
	b.WriteByte('\n')
	for _, r := range rows {
		cell(r.arg, argw, r.isMax)
		b.WriteString("  ")
		cell(r.value, valw, r.isMax)
		if r.isMax {
			b.WriteByte(' ')
			b.WriteString(c.Highlight.Sprint(c.Marker))
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

// MaximaList outputs the local maxima of f in maxima order, i.e. by value
// descending, as a list of `(arg,value)` items. Lines are broken first-fit
// at config.LineWidth.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties.
func MaximaList[A, V any](w io.Writer, f *maxima.Function[A, V], config *Config) error {
	if f == nil {
		return ErrNilFunction
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	c := config.normalized()
	b := bufio.NewWriter(w)
	spaceleft := c.LineWidth
	linestart := true
	for p := range f.Maxima() {
		item := p.String()
		itemlen := displayWidth(item, c.Context)
		if !linestart {
			if itemlen+1 > spaceleft { // item overshoots line
				b.WriteByte('\n')
				spaceleft = c.LineWidth
				linestart = true
			} else {
				b.WriteByte(' ')
				spaceleft--
			}
		}
		b.WriteString(c.Highlight.Sprint(item))
		spaceleft -= itemlen
		linestart = false
	}
	if !linestart { // we have a partial line to finish
		b.WriteByte('\n')
	}
	return b.Flush()
}
