package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	oldCommit, oldDate := Commit, Date
	t.Cleanup(func() { Commit, Date = oldCommit, oldDate })

	Commit, Date = "unknown", "unknown"
	if got := String(); !strings.HasPrefix(got, "palettex version dev (") {
		t.Errorf("String() = %q", got)
	}

	tests := []struct {
		name   string
		commit string
		want   string
	}{
		{name: "full hash", commit: "0123456789abcdef", want: "commit: 01234567,"},
		{name: "short hash", commit: "abc", want: "commit: abc,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Commit, Date = tt.commit, "2025-01-01T00:00:00Z"
			if got := String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Platform == "" || info.GoVersion == "" {
		t.Errorf("GetInfo() = %+v", info)
	}
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}
