package engine

import "log"

// Logf receives run diagnostics: the chosen selector, the drawn parameters
// and the files written. The CLI routes it to stderr under -verbose.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger installs f as Logf; nil discards diagnostics.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
