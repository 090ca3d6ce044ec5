package utils

import "testing"

func TestFormatFamilyID(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "F0001"},
		{42, "F0042"},
		{1000, "F1000"},
	}
	for _, tt := range tests {
		if got := FormatFamilyID(tt.seq); got != tt.want {
			t.Errorf("FormatFamilyID(%d) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}

func TestFormatUserID(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "U0000001"},
		{123, "U0000123"},
		{9999999, "U9999999"},
	}
	for _, tt := range tests {
		if got := FormatUserID(tt.seq); got != tt.want {
			t.Errorf("FormatUserID(%d) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}
