package scheduler

import "testing"

func TestVersionSupported(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"23.02.6", true},
		{"20.11.9", true},
		{"17.11.0", true}, // exact minimum
		{"17.02.11", false},
		{"16.05.10", false},
		{"", true},        // unknown version: skip the check
		{"unknown", true}, // unparseable: skip the check
	}

	for _, tt := range tests {
		if got := VersionSupported(tt.version); got != tt.want {
			t.Errorf("VersionSupported(%q) = %v; want %v", tt.version, got, tt.want)
		}
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2 string
		want   int
		ok     bool
	}{
		{"23.02.6", "17.11.0", 1, true},
		{"17.11.0", "17.11.0", 0, true},
		{"16.05.1", "17.11.0", -1, true},
		{"v21.08.8", "21.08.8", 0, true},
		{"garbage", "17.11.0", 0, false},
	}

	for _, tt := range tests {
		got, ok := compareVersions(tt.v1, tt.v2)
		if ok != tt.ok {
			t.Errorf("compareVersions(%q, %q) ok = %v; want %v", tt.v1, tt.v2, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("compareVersions(%q, %q) = %d; want %d", tt.v1, tt.v2, got, tt.want)
		}
	}
}
