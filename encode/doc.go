// Package encode renders ir nodes as JSON text.
//
// The default rendering is the canonical compact form used for derived
// document text: no insignificant whitespace, double-quoted strings,
// canonical decimal numbers.  Indent produces a pretty-printed variant
// and EncodeColors a colorized one; both are for display only and are
// never used where canonical text is required.
package encode
