// Package logx prints tagged console lines. Output goes through the builtin
// println so it works on MCU targets without fmt; Mirror receives a copy.
package logx

import "io"

// Mirror, when set, receives every line terminated with CRLF (e.g. a UART).
var Mirror io.Writer

// Line prints "[tag] part part ...".
func Line(tag string, parts ...string) {
	b := format(tag, parts)
	println(string(b))
	if Mirror != nil {
		_, _ = Mirror.Write(append(b, '\r', '\n'))
	}
}

func format(tag string, parts []string) []byte {
	n := len(tag) + 2
	for _, p := range parts {
		n += len(p) + 1
	}
	b := make([]byte, 0, n)
	b = append(b, '[')
	b = append(b, tag...)
	b = append(b, ']')
	for _, p := range parts {
		b = append(b, ' ')
		b = append(b, p...)
	}
	return b
}
