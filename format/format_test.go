package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/maxima"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func makeFunction(t *testing.T, values ...int) *maxima.Function[int, int] {
	t.Helper()
	f := maxima.NewOrdered[int, int]()
	for a, v := range values {
		require.NoError(t, f.SetValue(a, v))
	}
	return f
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maxima")
	defer teardown()
	//
	f := makeFunction(t, 1, 3, 2)
	var bf bytes.Buffer
	err := Table(&bf, f, &Config{Context: uax11.LatinContext})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(bf.String(), "\n"), "\n")
	t.Logf("\n%s", bf.String())
	require.Len(t, lines, 5)
	assert.Equal(t, "arg  value", lines[0])
	assert.Equal(t, strings.Repeat("-", 12), lines[1])
	assert.Equal(t, "  0      1", lines[2])
	assert.Equal(t, "  1      3 *", lines[3])
	assert.Equal(t, "  2      2", lines[4])
}

func TestTableColors(t *testing.T) {
	f := makeFunction(t, 1, 3, 2)
	var bf bytes.Buffer
	require.NoError(t, Table(&bf, f, &Config{Color: true, Marker: "<"}))
	out := bf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "<")
	bf.Reset()
	require.NoError(t, Table(&bf, f, &Config{Color: false}))
	assert.NotContains(t, bf.String(), "\x1b[")
}

func TestTableLeavesCallerColorAlone(t *testing.T) {
	f := makeFunction(t, 1, 3, 2)
	blue := color.New(color.FgBlue)
	blue.EnableColor()
	var bf bytes.Buffer
	require.NoError(t, Table(&bf, f, &Config{Highlight: blue, Color: false}))
	assert.NotContains(t, bf.String(), "\x1b[")
	assert.Contains(t, blue.Sprint("x"), "\x1b[")
	//
	blue.DisableColor()
	bf.Reset()
	require.NoError(t, MaximaList(&bf, f, &Config{Highlight: blue, Color: true}))
	assert.Contains(t, bf.String(), "\x1b[34m")
	assert.Equal(t, "x", blue.Sprint("x"))
}

func TestDisplayWidth(t *testing.T) {
	for _, tc := range []struct {
		s string
		w int
	}{
		{"", 0},
		{"0", 1},
		{"12", 2},
		{"*", 1},
		{"arg", 3},
		{"(0,1)", 5},
		{"-42", 3},
		{"世", 2},
		{"(世,1)", 6},
		{"😀", 2},
	} {
		assert.Equal(t, tc.w, displayWidth(tc.s, uax11.LatinContext), "width of %q", tc.s)
	}
}

func TestTableAlignsWideArguments(t *testing.T) {
	f := maxima.NewOrdered[string, int]()
	require.NoError(t, f.SetValue("a", 10))
	require.NoError(t, f.SetValue("世界", 2))
	var bf bytes.Buffer
	require.NoError(t, Table(&bf, f, &Config{Context: uax11.LatinContext}))
	lines := strings.Split(strings.TrimRight(bf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, " arg  value", lines[0])
	assert.Equal(t, strings.Repeat("-", 13), lines[1])
	assert.Equal(t, "   a     10 *", lines[2])
	assert.Equal(t, "世界      2", lines[3])
}

func TestTableRejectsNil(t *testing.T) {
	var bf bytes.Buffer
	assert.ErrorIs(t, Table[int, int](&bf, nil, nil), ErrNilFunction)
	assert.ErrorIs(t, MaximaList[int, int](&bf, nil, nil), ErrNilFunction)
	assert.ErrorIs(t, HTMLTable[int, int](&bf, nil), ErrNilFunction)
}

func TestMaximaListWrapsLines(t *testing.T) {
	f := makeFunction(t, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0)
	var bf bytes.Buffer
	err := MaximaList(&bf, f, &Config{LineWidth: 12})
	require.NoError(t, err)
	assert.Equal(t, "(0,1) (2,1)\n(4,1) (6,1)\n(8,1)\n", bf.String())
	//
	bf.Reset()
	require.NoError(t, MaximaList(&bf, f, &Config{LineWidth: 11}))
	assert.Equal(t, "(0,1) (2,1)\n(4,1) (6,1)\n(8,1)\n", bf.String())
	bf.Reset()
	require.NoError(t, MaximaList(&bf, f, &Config{LineWidth: 10}))
	assert.Equal(t, "(0,1)\n(2,1)\n(4,1)\n(6,1)\n(8,1)\n", bf.String())
}

func TestMaximaListEmpty(t *testing.T) {
	var bf bytes.Buffer
	require.NoError(t, MaximaList(&bf, maxima.NewOrdered[int, int](), &Config{}))
	assert.Empty(t, bf.String())
}

func TestHTMLTable(t *testing.T) {
	f := makeFunction(t, 1, 3, 2, 5)
	var bf bytes.Buffer
	require.NoError(t, HTMLTable(&bf, f))
	t.Logf("%s", bf.String())
	doc, err := html.Parse(strings.NewReader(bf.String()))
	require.NoError(t, err)
	var rows, marked []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			first := n.FirstChild.FirstChild.Data
			rows = append(rows, first)
			for _, a := range n.Attr {
				if a.Key == "class" && a.Val == MaximumClass {
					marked = append(marked, first)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	assert.Equal(t, []string{"argument", "0", "1", "2", "3"}, rows)
	assert.Equal(t, []string{"1", "3"}, marked)
}
