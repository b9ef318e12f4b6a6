package core

import (
	"testing"
)

var allLevelNames = []string{
	"emergency", "alert", "critical", "error",
	"warning", "notice", "info", "debug", "none",
}

func TestLevel_RoundTrip(t *testing.T) {
	for _, name := range allLevelNames {
		t.Run(name, func(t *testing.T) {
			num, ok := LevelNum(name)
			if !ok {
				t.Fatalf("LevelNum(%q) reported absent", name)
			}
			got, ok := LevelName(num)
			if !ok {
				t.Fatalf("LevelName(%d) reported absent", num)
			}
			if got != name {
				t.Errorf("round trip of %q = %q", name, got)
			}
		})
	}
}

func TestLevel_Ranks(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"none", -1},
		{"emergency", 0},
		{"alert", 1},
		{"critical", 2},
		{"error", 3},
		{"warning", 4},
		{"notice", 5},
		{"info", 6},
		{"debug", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LevelNum(tt.name)
			if !ok {
				t.Fatalf("LevelNum(%q) reported absent", tt.name)
			}
			if got != tt.want {
				t.Errorf("LevelNum(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestLevelName_OutOfRange(t *testing.T) {
	for _, n := range []int{-2, 8, 100, -100, 1 << 20} {
		if name, ok := LevelName(n); ok {
			t.Errorf("LevelName(%d) = %q, want absent", n, name)
		}
	}
}

func TestParseLevel_Unrecognized(t *testing.T) {
	for _, s := range []string{"", "bogus", "warn", "informational", "7", "fatal"} {
		if l, ok := ParseLevel(s); ok {
			t.Errorf("ParseLevel(%q) = %v, want absent", s, l)
		}
	}
}

func TestParseLevel_CaseInsensitive(t *testing.T) {
	l, ok := ParseLevel("WARNING")
	if !ok || l != WarningLevel {
		t.Errorf("ParseLevel(WARNING) = %v, %v, want WarningLevel", l, ok)
	}
}

func TestLevel_String_Unknown(t *testing.T) {
	if got := Level(42).String(); got != "unknown" {
		t.Errorf("Level(42).String() = %q, want unknown", got)
	}
}

func TestLevel_Valid(t *testing.T) {
	for l := NoneLevel; l <= DebugLevel; l++ {
		if !l.Valid() {
			t.Errorf("Level(%d).Valid() = false", l)
		}
	}
	if Level(-2).Valid() || Level(8).Valid() {
		t.Error("out-of-range level reported valid")
	}
}
