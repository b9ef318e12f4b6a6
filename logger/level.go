package logger

import "github.com/kvesel/gatelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoneLevel      = core.NoneLevel
	EmergencyLevel = core.EmergencyLevel
	AlertLevel     = core.AlertLevel
	CriticalLevel  = core.CriticalLevel
	ErrorLevel     = core.ErrorLevel
	WarningLevel   = core.WarningLevel
	NoticeLevel    = core.NoticeLevel
	InfoLevel      = core.InfoLevel
	DebugLevel     = core.DebugLevel
)

// ParseLevel converts a string to a Level, reporting absence for
// unrecognized names.
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}
