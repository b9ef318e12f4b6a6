// Package core defines the shared types used across gatelog.
//
// It provides the Level type with its syslog-style severity ranks and
// the name/number registry, plus the Callsite type describing where a
// log call originated (module, function, line, and process id).
//
// Levels use inverted ordering: lower ranks are more severe, with
// emergency at 0 and debug at 7. The sentinel NoneLevel (-1) is a
// threshold that admits nothing. Registry lookups are total over this
// fixed set and report absence with an ok boolean instead of guessing.
//
// Callsite values are captured fresh per log call via runtime.Caller
// and consumed immediately; they are never retained.
package core
