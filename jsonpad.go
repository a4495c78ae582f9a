// Package jsonpad implements the core of a JSON viewing/editing tool:
// validation with located errors, formatting and minification, path
// resolution, tree flattening, structural search, cursor-context analysis,
// and document-derived autocompletion.
//
// Every operation is a pure, synchronous computation over an immutable
// document snapshot. Nothing is cached between calls, so the host may
// freely coalesce, repeat, or discard invocations; the raw document text is
// owned by the host editor and passed by value into each entry point.
package jsonpad
