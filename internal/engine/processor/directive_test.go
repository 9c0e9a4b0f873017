package processor

import "testing"

func TestScanIncludeName(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{name: "well formed", line: `#include "common.glsl"`, want: "common.glsl", wantOK: true},
		{name: "empty name", line: `#include ""`, want: "", wantOK: true},
		{name: "extra quoted token", line: `#include "a" "b"`, want: `a" "b`, wantOK: true},
		{name: "no quotes", line: `#include common.glsl`, wantOK: false},
		{name: "missing closing quote", line: `#include "common.glsl`, wantOK: false},
		{name: "bare directive", line: `#include`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := scanIncludeName(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("scanIncludeName(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("scanIncludeName(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
