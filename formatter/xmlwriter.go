package formatter

import (
	"strconv"
	"strings"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

// cdataEscape splits any "]]>" so the value can be carried in a CDATA
// section unmodified otherwise.
func cdataEscape(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}

// Attr is one XML attribute.
type Attr struct {
	Name  string
	Value string
}

// IntAttr builds an integer-valued attribute, the common case for entity
// ids.
func IntAttr(name string, v int) Attr {
	return Attr{Name: name, Value: strconv.Itoa(v)}
}

// XMLWriter builds XML fragments. Every Open is tracked on an element
// stack so closing tags always match, and all text passes through
// escaping or CDATA wrapping. The zero value writes compact output;
// NewIndentWriter produces pretty-printed documents.
type XMLWriter struct {
	b      strings.Builder
	stack  []string
	indent string
}

// NewXMLWriter returns a compact writer.
func NewXMLWriter() *XMLWriter {
	return &XMLWriter{}
}

// NewIndentWriter returns a writer that places each element on its own
// line, indented by unit per depth level.
func NewIndentWriter(unit string) *XMLWriter {
	return &XMLWriter{indent: unit}
}

func (w *XMLWriter) newline() {
	if w.indent == "" {
		return
	}
	if w.b.Len() > 0 {
		w.b.WriteString("\n")
	}
	w.b.WriteString(strings.Repeat(w.indent, len(w.stack)))
}

func (w *XMLWriter) writeOpenTag(name string, attrs []Attr) {
	w.b.WriteString("<")
	w.b.WriteString(name)
	for _, a := range attrs {
		w.b.WriteString(" ")
		w.b.WriteString(a.Name)
		w.b.WriteString("=\"")
		w.b.WriteString(xmlEscape(a.Value))
		w.b.WriteString("\"")
	}
	w.b.WriteString(">")
}

// Open starts a container element. It must be matched by Close.
func (w *XMLWriter) Open(name string, attrs ...Attr) {
	w.newline()
	w.writeOpenTag(name, attrs)
	w.stack = append(w.stack, name)
}

// Close ends the most recently opened element. Closing with nothing open
// is a programming error and writes nothing.
func (w *XMLWriter) Close() {
	if len(w.stack) == 0 {
		return
	}
	name := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.newline()
	w.b.WriteString("</")
	w.b.WriteString(name)
	w.b.WriteString(">")
}

// Element writes a complete element with escaped text content.
func (w *XMLWriter) Element(name, text string, attrs ...Attr) {
	w.newline()
	w.writeOpenTag(name, attrs)
	w.b.WriteString(xmlEscape(text))
	w.b.WriteString("</")
	w.b.WriteString(name)
	w.b.WriteString(">")
}

// Int writes an integer-valued element.
func (w *XMLWriter) Int(name string, v int) {
	w.Element(name, strconv.Itoa(v))
}

// Int64 writes a 64-bit integer-valued element.
func (w *XMLWriter) Int64(name string, v int64) {
	w.Element(name, strconv.FormatInt(v, 10))
}

// Float writes a float-valued element without a fixed precision.
func (w *XMLWriter) Float(name string, v float64) {
	w.Element(name, strconv.FormatFloat(v, 'f', -1, 64))
}

// CDATA writes a complete element whose free-text content is wrapped in a
// CDATA section.
func (w *XMLWriter) CDATA(name, text string, attrs ...Attr) {
	w.newline()
	w.writeOpenTag(name, attrs)
	w.b.WriteString("<![CDATA[")
	w.b.WriteString(cdataEscape(text))
	w.b.WriteString("]]>")
	w.b.WriteString("</")
	w.b.WriteString(name)
	w.b.WriteString(">")
}

// Empty writes a self-closing element.
func (w *XMLWriter) Empty(name string, attrs ...Attr) {
	w.newline()
	w.b.WriteString("<")
	w.b.WriteString(name)
	for _, a := range attrs {
		w.b.WriteString(" ")
		w.b.WriteString(a.Name)
		w.b.WriteString("=\"")
		w.b.WriteString(xmlEscape(a.Value))
		w.b.WriteString("\"")
	}
	w.b.WriteString(" />")
}

// Depth reports how many elements are currently open.
func (w *XMLWriter) Depth() int {
	return len(w.stack)
}

// String returns the fragment. Unclosed elements are closed first so the
// output is always balanced.
func (w *XMLWriter) String() string {
	for len(w.stack) > 0 {
		w.Close()
	}
	return w.b.String()
}
