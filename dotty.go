package maxima

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/maxima/index"
)

// dotEscaper quotes characters which would end a DOT string or start an
// escape sequence.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Function2Dot outputs the internal structure of a Function's domain index in
// Graphviz DOT format (for debugging purposes). Local maxima are highlighted.
func Function2Dot[A, V any](f *Function[A, V], w io.Writer) {
	if f == nil {
		T().Errorf("function DOT: nil function")
		return
	}
	index.ToDot(f.domain, w,
		func(e *entry[A, V]) string {
			return dotEscaper.Replace(fmt.Sprint(e.pt.arg)) + `\n` + dotEscaper.Replace(fmt.Sprint(e.pt.value))
		},
		func(e *entry[A, V]) bool {
			return e.max != nil
		},
	)
}
