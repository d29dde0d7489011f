// Package serializer renders catalog entity collections into finished
// JSON and XML documents.
//
// A Serializer instance owns its pagination window, output mode and
// context token, so concurrent logical requests each use their own
// instance instead of sharing process-wide state. Each collection call
// windows the id set, warms decoration caches once per batch, formats
// every resolvable entity, and wraps the result in the active envelope
// (XML) or a pretty-printed array (JSON).
package serializer
