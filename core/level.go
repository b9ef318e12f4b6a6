package core

import "strings"

// Level represents the severity of a log call using syslog-style
// ranks. Lower numeric values indicate higher severity.
type Level int8

const (
	// NoneLevel is a sentinel threshold that suppresses all logging.
	// It is never a valid call-site level.
	NoneLevel Level = -1
	// EmergencyLevel for unusable-system conditions
	EmergencyLevel Level = 0
	// AlertLevel for conditions requiring immediate action
	AlertLevel Level = 1
	// CriticalLevel for critical conditions
	CriticalLevel Level = 2
	// ErrorLevel for error conditions
	ErrorLevel Level = 3
	// WarningLevel for warning conditions
	WarningLevel Level = 4
	// NoticeLevel for normal but significant conditions
	NoticeLevel Level = 5
	// InfoLevel for informational messages (default threshold)
	InfoLevel Level = 6
	// DebugLevel for detailed debugging information
	DebugLevel Level = 7
)

// String returns the name of the level, or "unknown" for ranks
// outside the defined set.
func (l Level) String() string {
	switch l {
	case NoneLevel:
		return "none"
	case EmergencyLevel:
		return "emergency"
	case AlertLevel:
		return "alert"
	case CriticalLevel:
		return "critical"
	case ErrorLevel:
		return "error"
	case WarningLevel:
		return "warning"
	case NoticeLevel:
		return "notice"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	default:
		return "unknown"
	}
}

// Valid reports whether l is within the defined set, including the
// NoneLevel sentinel.
func (l Level) Valid() bool {
	return l >= NoneLevel && l <= DebugLevel
}

// ParseLevel converts a level name to a Level. The second return
// value is false for any string outside the defined set; no
// best-effort fallback is applied.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "none":
		return NoneLevel, true
	case "emergency":
		return EmergencyLevel, true
	case "alert":
		return AlertLevel, true
	case "critical":
		return CriticalLevel, true
	case "error":
		return ErrorLevel, true
	case "warning":
		return WarningLevel, true
	case "notice":
		return NoticeLevel, true
	case "info":
		return InfoLevel, true
	case "debug":
		return DebugLevel, true
	default:
		return 0, false
	}
}

// LevelName converts a numeric rank to its level name. The second
// return value is false for ranks outside [-1, 7].
func LevelName(n int) (string, bool) {
	l := Level(int8(n))
	if int(l) != n || !l.Valid() {
		return "", false
	}
	return l.String(), true
}

// LevelNum converts a level name to its numeric rank. The second
// return value is false for unrecognized names.
func LevelNum(name string) (int, bool) {
	l, ok := ParseLevel(name)
	if !ok {
		return 0, false
	}
	return int(l), true
}
