// Package formatter provides the output-mode envelopes and low-level
// document building for catalog serialization.
//
// This package is organized into:
// - mode.go: output-mode state machine (envelope header/footer selection)
// - xmlwriter.go: XML writing with balancing enforced by an element stack
// - keyed.go: ordered keyed records rendered as nested XML elements
// - json.go: pretty JSON and the JSON error envelope
//
// All XML is written manually for precise control over the output format;
// the envelope dialects (plist, XSPF, RSS) and CDATA wrapping are part of
// the wire contract and cannot be reproduced with encoding/xml.
package formatter
