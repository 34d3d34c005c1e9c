package format

import (
	"fmt"
	"io"

	"github.com/npillmayer/maxima"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MaximumClass is the CSS class of table rows holding a local maximum.
const MaximumClass = "maximum"

// HTMLTable outputs the points of f as an HTML `<table>`, one row per point in
// ascending order of arguments. Rows of local maxima carry
// `class="maximum"`, leaving their visual representation to a style sheet.
func HTMLTable[A, V any](w io.Writer, f *maxima.Function[A, V]) error {
	if f == nil {
		return ErrNilFunction
	}
	table := element(atom.Table)
	thead := element(atom.Thead)
	thead.AppendChild(tableRow(atom.Th, "argument", "value"))
	table.AppendChild(thead)
	tbody := element(atom.Tbody)
	for p, isMax := range f.Annotated() {
		tr := tableRow(atom.Td, fmt.Sprint(p.Arg()), fmt.Sprint(p.Value()))
		if isMax {
			tr.Attr = append(tr.Attr, html.Attribute{Key: "class", Val: MaximumClass})
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	T().P("format", "html").Debugf("rendering table with %d rows", f.Len())
	return html.Render(w, table)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}

func tableRow(cell atom.Atom, texts ...string) *html.Node {
	tr := element(atom.Tr)
	for _, s := range texts {
		c := element(cell)
		c.AppendChild(&html.Node{Type: html.TextNode, Data: s})
		tr.AppendChild(c)
	}
	return tr
}
