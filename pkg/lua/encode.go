// Package lua renders parsed database tables as Lua table constructors.
package lua

import (
	"fmt"
	"strings"

	"github.com/wh3lua/pkg/tsv"
)

// Options control how a table is rendered.
type Options struct {
	MapColumns bool // key record fields by column name instead of position
	AddReturn  bool // prefix the output with "return " so it can be required
	Checksum   bool // wrap the records in a checksum envelope
}

// Encode renders t as a Lua table constructor. A table with no rows renders
// as an empty constructor whatever the options say, so the output is always
// a loadable expression.
func Encode(t *tsv.Table, opts Options) string {
	var out string
	switch {
	case len(t.Rows) == 0:
		out = "{}"
	case opts.Checksum:
		out = encodeChecksummed(t, opts)
	default:
		out = encodePlain(t, opts)
	}

	if opts.AddReturn {
		out = "return " + out
	}
	return out
}

func encodePlain(t *tsv.Table, opts Options) string {
	var b strings.Builder
	b.WriteString("{\n  ")
	writeRecords(&b, t, opts, ",\n  ")
	b.WriteString("\n}")
	return b.String()
}

// encodeChecksummed nests the records one level down and puts an md5 of the
// table contents alongside them, so scripts can tell at load time whether
// two exports carry the same data.
func encodeChecksummed(t *tsv.Table, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "{\n  [\"checksum\"]=%q,\n  [\"records\"]={\n    ", tableDigest(t.Rows))
	writeRecords(&b, t, opts, ",\n    ")
	b.WriteString("\n  }\n}")
	return b.String()
}

func writeRecords(b *strings.Builder, t *tsv.Table, opts Options, delim string) {
	for i, row := range t.Rows {
		if i > 0 {
			b.WriteString(delim)
		}
		fmt.Fprintf(b, "[%d] = %s", i+1, record(row, t.Columns, opts.MapColumns))
	}
}

// record renders one row as an inline constructor, e.g. {[1]=[=[key]=],[2]=5}
// or, with MapColumns, {["unit"]=[=[key]=],["cost"]=5}.
func record(row, columns []string, mapColumns bool) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, cell := range row {
		if i > 0 {
			b.WriteByte(',')
		}
		if mapColumns {
			fmt.Fprintf(&b, "[%q]=", columns[i])
		} else {
			fmt.Fprintf(&b, "[%d]=", i+1)
		}
		b.WriteString(formatValue(cell, i+1))
	}
	b.WriteByte('}')
	return b.String()
}
