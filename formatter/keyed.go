package formatter

import (
	"fmt"
	"strconv"
)

// Field is one named value in a keyed record. Value may be a string, an
// integer or float scalar, or a nested Record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered set of fields. Order is preserved on the wire.
type Record []Field

// WriteRecord renders rec as a container element holding one child
// element per field, recursing into nested records.
func WriteRecord(w *XMLWriter, name string, rec Record) {
	w.Open(name)
	for _, f := range rec {
		switch v := f.Value.(type) {
		case Record:
			WriteRecord(w, f.Name, v)
		case string:
			w.Element(f.Name, v)
		case int:
			w.Int(f.Name, v)
		case int64:
			w.Int64(f.Name, v)
		case float64:
			w.Element(f.Name, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			w.Element(f.Name, strconv.FormatBool(v))
		case nil:
			w.Empty(f.Name)
		default:
			w.Element(f.Name, fmt.Sprint(v))
		}
	}
	w.Close()
}
