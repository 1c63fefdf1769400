// Package logging is the diagnostic facade used by xgxmeta buffers.
//
// A Logger gates records by severity and hands fully rendered text to a Sink.
// Sinks only move bytes: Nop discards, WriterSink streams to an io.Writer,
// RingSink keeps the most recent chunks in memory and MultiSink fans out.
//
// Records use the layout
//
//	[LEVEL]:<timestamp>:<file>:<line>: <message>\n\r
//
// and hex dumps render two uppercase digits per byte, a space after each
// octet, an extra space after every 8th byte and "\n\r" after every 16th.
//
// A nil *Logger is valid and discards everything, so code holding an
// optional logger never needs a nil check.
package logging
