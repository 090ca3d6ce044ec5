package controllers

import (
	"testing"
	"time"
)

func TestFillMonths(t *testing.T) {
	series := fillMonths([]monthBucket{
		{Month: 2, Count: 3, Amount: 1500},
		{Month: 11, Count: 7, Amount: 900, Complete: 4},
	})

	if len(series) != 12 {
		t.Fatalf("series length = %d, want 12", len(series))
	}
	for i, b := range series {
		if b.Month != int32(i+1) {
			t.Errorf("series[%d].Month = %d, want %d", i, b.Month, i+1)
		}
	}
	if series[1].Count != 3 || series[1].Amount != 1500 {
		t.Errorf("February bucket = %+v, want count 3 amount 1500", series[1])
	}
	if series[10].Complete != 4 {
		t.Errorf("November complete = %d, want 4", series[10].Complete)
	}
	if series[0].Count != 0 || series[5].Count != 0 {
		t.Error("absent months should default to zero")
	}
}

func TestFillMonthsIgnoresOutOfRange(t *testing.T) {
	series := fillMonths([]monthBucket{{Month: 0, Count: 5}, {Month: 13, Count: 9}})
	for _, b := range series {
		if b.Count != 0 {
			t.Fatalf("out-of-range bucket leaked into series: %+v", b)
		}
	}
}

func TestTargetYear(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		raw  string
		want int
	}{
		{"2024", 2024},
		{"", 2025},
		{"abc", 2025},
	}
	for _, tt := range tests {
		if got := targetYear(tt.raw, now); got != tt.want {
			t.Errorf("targetYear(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestYearRange(t *testing.T) {
	start, end := yearRange(2024)
	if !start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want 2024-01-01", start)
	}
	if !end.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v, want 2025-01-01", end)
	}
}
